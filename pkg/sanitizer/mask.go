package sanitizer

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaskToken replaces sensitive values when no custom token is
// configured.
const DefaultMaskToken = "[MASKED]"

// maxMaskTokenLength bounds the trimmed token before bracket handling.
const maxMaskTokenLength = 40

// ValidateMaskToken validates a mask token against the default forbidden
// pattern and renders it in canonical form: upper-cased and wrapped in a
// single pair of brackets. Validation is idempotent, so an already
// canonical token passes through unchanged.
//
// Example:
//
//	sanitizer.ValidateMaskToken("mask")   // "[MASK]", nil
//	sanitizer.ValidateMaskToken("[mask]") // "[MASK]", nil
func ValidateMaskToken(token string) (string, error) {
	return validateMaskToken(token, defaultForbiddenRegex)
}

// validateMaskToken rejects empty, overlong and forbidden tokens, then
// normalizes brackets and case. A broken token would silently fail to
// protect sensitive data, so every rejection is a hard error.
func validateMaskToken(token string, forbidden *regexp.Regexp) (string, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", errors.Join(ErrInvalidConfig, ErrEmptyMaskToken)
	}
	if utf8.RuneCountInString(trimmed) > maxMaskTokenLength {
		return "", errors.Join(ErrInvalidConfig, ErrMaskTokenTooLong)
	}
	if forbidden != nil && forbidden.MatchString(trimmed) {
		return "", errors.Join(ErrInvalidConfig, ErrForbiddenMaskToken)
	}

	inner := trimmed
	if strings.HasPrefix(inner, "[") && strings.HasSuffix(inner, "]") && len(inner) > 1 {
		inner = inner[1 : len(inner)-1]
	}
	inner = strings.NewReplacer("[", "", "]", "").Replace(inner)
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return "", errors.Join(ErrInvalidConfig, ErrEmptyMaskToken)
	}
	return "[" + strings.ToUpper(inner) + "]", nil
}

// unwrapMaskToken strips the canonical bracket pair from a token, used to
// build the "_ORIGINAL_VALUE" marker for values that already equal the
// mask token.
func unwrapMaskToken(token string) string {
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") && len(token) > 1 {
		return token[1 : len(token)-1]
	}
	return token
}

// maskedOriginalMarker distinguishes "the value happened to equal the mask
// token" from "the value was masked" on re-sanitization.
func maskedOriginalMarker(token string) string {
	return "[" + unwrapMaskToken(token) + "_ORIGINAL_VALUE]"
}
