package cliutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"pNext", "pNext", 0},
		{"srcAcessMask", "srcAccessMask", 1},
		{"stageMask", "srcStageMask", 3},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, levenshtein(tt.b, tt.a))
		})
	}
}

func TestSuggest(t *testing.T) {
	commands := []string{"render", "vuid", "list", "mcp", "version", "help"}

	tests := []struct {
		input string
		want  string
	}{
		{"rendr", "render"},
		{"vuld", "vuid"},
		{"lsit", "list"},
		{"versoin", "version"},
		{"hep", "help"},
		{"mpc", "mcp"},
		{"validate", ""},
		{"xyz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, commands, 2))
		})
	}
}

func TestSuggest_Empty(t *testing.T) {
	assert.Empty(t, Suggest("anything", nil, 5))
}
