package catalogmanager

import (
	"context"
	"fmt"

	"github.com/mugiliam/brewcatalogsrv/pkg/apperrors"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"
)

var ErrInvalidBeerList apperrors.Error = ErrInvalidBeer.Msg("invalid beer list").SetExpandError(true)

// ImportBeers creates one beer per element of a YAML (or JSON) list. Each
// element goes through the same validation as a single create. It stops at
// the first failure; beers stored before it are kept. It returns the number
// of beers stored.
func ImportBeers(ctx context.Context, data []byte) (int, apperrors.Error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return 0, ErrInvalidBeerList.Err(err)
	}
	list := gjson.ParseBytes(j)
	if !list.IsArray() {
		return 0, ErrInvalidBeerList.Msg("expected a list of beers")
	}

	var (
		stored int
		appErr apperrors.Error
	)
	list.ForEach(func(_, item gjson.Result) bool {
		bm, err := NewBeerManager(ctx, []byte(item.Raw))
		if err == nil {
			err = bm.Save(ctx)
		}
		if err != nil {
			appErr = err.Msg(fmt.Sprintf("beer %d: %s", stored, err.ErrorAll()))
			return false
		}
		stored++
		return true
	})
	return stored, appErr
}
