package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePrefix(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{"plain keyword", "go tips", "go tips"},
		{"percent", "100%", `100\%`},
		{"underscore", "_oo", `\_oo`},
		{"backslash", `C:\temp`, `C:\\temp`},
		{"all metacharacters", `50%_\`, `50\%\_\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePrefix(tt.keyword))
		})
	}
}
