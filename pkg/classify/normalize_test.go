package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, in := range []string{"y", "yes", "yeah", "yep", "yess", "  YES ", "Yeah"} {
		assert.Equal(t, Yes, Normalize(in), "input %q", in)
	}
	for _, in := range []string{"n", "no", "nah", "nope", "NO", " Nope\t"} {
		assert.Equal(t, No, Normalize(in), "input %q", in)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"AB123456789CD", "ab123456789cd"},
		{"  Yes please ", "yes please"},
		{"nooo", "nooo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}
