package sanitizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode compatibility normalization (NFKC) and trims
// leading and trailing whitespace. It is a total function: invalid UTF-8
// input skips normalization and is only trimmed, so the result is always
// safe to compare and log.
//
// Example:
//
//	sanitizer.Normalize("  ﬁle name  ") // "file name"
func Normalize(s string) string {
	if !utf8.ValidString(s) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(norm.NFKC.String(s))
}
