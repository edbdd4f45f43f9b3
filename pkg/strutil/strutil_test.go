package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"3자 이하는 전체 마스킹", "abc", "***"},
		{"12자 이하는 앞 4자만 표시", "secret123", "secr***"},
		{"긴 토큰은 앞뒤 4자 표시", "abcdefghijklmnop", "abcd***mnop"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Mask(tt.input))
		})
	}
}

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", NormalizeSpaces("  hello   world  "))
	assert.Equal(t, "", NormalizeSpaces("   "))
	assert.Equal(t, "a b c", NormalizeSpaces("a\tb\nc"))
}
