package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBeerId(t *testing.T) {
	tests := []struct {
		in    string
		id    BeerId
		valid bool
	}{
		{"1", 1, true},
		{"0", 0, true},
		{"0042", 42, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"9223372036854775808", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{" 1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			id, ok := ParseBeerId(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestBeerIdLocation(t *testing.T) {
	assert.Equal(t, "/api/beer/17", BeerId(17).Location())
	assert.Equal(t, "17", BeerId(17).String())
}
