package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClampName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short name unchanged", input: "Ann", want: "Ann"},
		{name: "exact limit unchanged", input: strings.Repeat("a", MaxNameLength), want: strings.Repeat("a", MaxNameLength)},
		{name: "ascii overflow cut", input: strings.Repeat("a", MaxNameLength+1), want: strings.Repeat("a", MaxNameLength)},
		{name: "multibyte counted as characters", input: strings.Repeat("名", MaxNameLength+5), want: strings.Repeat("名", MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampName(tt.input)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
