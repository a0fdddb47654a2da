package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mugiliam/brewcatalogsrv/internal/apis"
	"github.com/mugiliam/brewcatalogsrv/internal/config"
	"github.com/mugiliam/brewcatalogsrv/internal/db"
	"github.com/mugiliam/brewcatalogsrv/internal/server/middleware"
	"github.com/mugiliam/brewcatalogsrv/pkg/api"
	"github.com/mugiliam/brewcatalogsrv/pkg/httpx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type BrewCatalogServer struct {
	Router *chi.Mux
	config config.ServerConfig
	store  db.DB_
}

func CreateNewServer(cfg config.ServerConfig, store db.DB_) (*BrewCatalogServer, error) {
	if store == nil {
		return nil, fmt.Errorf("beer store is required")
	}
	s := &BrewCatalogServer{
		config: cfg,
		store:  store,
	}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *BrewCatalogServer) MountHandlers() {
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(chimiddleware.RealIP)
	s.Router.Use(middleware.Recoverer)
	if s.config.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.NotFound(notFound)
	s.Router.MethodNotAllowed(methodNotAllowed)

	s.Router.Route("/api", s.mountBeerHandlers)
	if s.config.StaticDir != "" {
		s.mountStaticFiles()
	}

	if zerolog.GlobalLevel() <= zerolog.TraceLevel {
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			log.Trace().Str("method", method).Str("route", route).Msg("route")
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			log.Error().Err(err).Msg("unable to walk routes")
		}
	}
}

func (s *BrewCatalogServer) mountBeerHandlers(r chi.Router) {
	r.Use(middleware.LoadDB(s.store))
	r.Get("/version", s.getVersion)
	apis.Router(r)
}

// mountStaticFiles serves the web front end. Paths under /api never reach
// it; unknown files fall back to index.html so client side routes work.
func (s *BrewCatalogServer) mountStaticFiles() {
	dir := http.Dir(s.config.StaticDir)
	fs := http.FileServer(dir)
	s.Router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if f, err := dir.Open(r.URL.Path); err == nil {
			f.Close()
			fs.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			notFound(w, r)
			return
		}
		http.ServeFile(w, r, strings.TrimRight(s.config.StaticDir, "/")+"/index.html")
	})
}

func (s *BrewCatalogServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &api.GetVersionRsp{
		ServerVersion: api.ServerVersion,
		ApiVersion:    api.ApiVersion_1_0,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *BrewCatalogServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.config.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Location, X-Request-ID")

		if r.Method == http.MethodOptions {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httpx.ErrNotFound().Send(w)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.ErrMethodNotAllowed().Send(w)
}
