package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchEntity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		pos       int
		wantOK    bool
		wantWidth int
	}{
		{name: "named entity", input: "&nbsp;", pos: 0, wantOK: true, wantWidth: 6},
		{name: "entity mid string", input: "a&lt;b", pos: 1, wantOK: true, wantWidth: 4},
		{name: "decimal entity", input: "&#123;", pos: 0, wantOK: true, wantWidth: 6},
		{name: "hex entity lowercase", input: "&#x7B;", pos: 0, wantOK: true, wantWidth: 6},
		{name: "hex entity uppercase marker", input: "&#X7B;", pos: 0, wantOK: true, wantWidth: 6},
		{name: "unknown name", input: "&invalid;", pos: 0, wantOK: false},
		{name: "empty body", input: "&;", pos: 0, wantOK: false},
		{name: "missing semicolon", input: "&nbsp", pos: 0, wantOK: false},
		{name: "hash only", input: "&#;", pos: 0, wantOK: false},
		{name: "hex marker only", input: "&#x;", pos: 0, wantOK: false},
		{name: "decimal with letter", input: "&#12a;", pos: 0, wantOK: false},
		{name: "hex with non hex digit", input: "&#xZZ;", pos: 0, wantOK: false},
		{name: "body too long", input: "&abcdefghijkl;", pos: 0, wantOK: false},
		{name: "body at length limit", input: "&#x12345678;", pos: 0, wantOK: true, wantWidth: 12},
		{name: "invalid character in body", input: "&nb sp;", pos: 0, wantOK: false},
		{name: "ampersand at end", input: "x&", pos: 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, width := matchEntity(tt.input, tt.pos)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantWidth, width)
			} else {
				assert.Zero(t, width)
			}
		})
	}
}
