package runner

import (
	"strings"
	"testing"

	"github.com/aretw0/trackline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int
		want    string
		wantErr error
	}{
		{name: "plain", input: "AB123456789CD", want: "AB123456789CD"},
		{name: "keeps emoji", input: "📦", want: "📦"},
		{name: "keeps tab and newline", input: "a\tb\nc", want: "a\tb\nc"},
		{name: "strips ansi escape", input: "\x1b[31myes\x1b[0m", want: "[31myes[0m"},
		{name: "strips nul and bel", input: "y\x00e\x07s", want: "yes"},
		{name: "at limit", input: "12345", limit: 5, want: "12345"},
		{name: "over limit", input: "123456", limit: 5, wantErr: domain.ErrInputTooLarge},
		{name: "default limit", input: strings.Repeat("a", DefaultMaxInputSize+1), wantErr: domain.ErrInputTooLarge},
		{name: "invalid utf8", input: "ab\xffcd", wantErr: domain.ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
