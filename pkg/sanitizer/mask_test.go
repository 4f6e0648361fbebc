package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevFelipeRT/logmask/pkg/sanitizer"
)

func TestValidateMaskToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare word", input: "mask", expected: "[MASK]"},
		{name: "already bracketed", input: "[mask]", expected: "[MASK]"},
		{name: "already canonical", input: "[MASK]", expected: "[MASK]"},
		{name: "surrounding whitespace", input: "  hidden  ", expected: "[HIDDEN]"},
		{name: "double brackets collapse", input: "[[mask]]", expected: "[MASK]"},
		{name: "stray brackets stripped", input: "ma[sk]ed", expected: "[MASKED]"},
		{name: "mixed case upper-cased", input: "ReDacted", expected: "[REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := sanitizer.ValidateMaskToken(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestValidateMaskToken_Idempotent(t *testing.T) {
	once, err := sanitizer.ValidateMaskToken("mask")
	require.NoError(t, err)
	twice, err := sanitizer.ValidateMaskToken(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestValidateMaskToken_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "", expected: sanitizer.ErrEmptyMaskToken},
		{name: "whitespace only", input: "   ", expected: sanitizer.ErrEmptyMaskToken},
		{name: "brackets only", input: "[]", expected: sanitizer.ErrEmptyMaskToken},
		{name: "too long", input: strings.Repeat("x", 41), expected: sanitizer.ErrMaskTokenTooLong},
		{name: "control character", input: "mask\x00ed", expected: sanitizer.ErrForbiddenMaskToken},
		{name: "base64 substring", input: "base64mask", expected: sanitizer.ErrForbiddenMaskToken},
		{name: "script substring any case", input: "MyScriptToken", expected: sanitizer.ErrForbiddenMaskToken},
		{name: "php substring", input: "phpmask", expected: sanitizer.ErrForbiddenMaskToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sanitizer.ValidateMaskToken(tt.input)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, sanitizer.ErrInvalidConfig)
		})
	}
}
