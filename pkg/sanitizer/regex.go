package sanitizer

import "regexp"

// Pre-compiled regular expressions shared across the package.
var (
	// Latin-script vowels, plain and accented (Portuguese diacritics
	// included). Used for the vowel-stripped key variant.
	vowelRegex = regexp.MustCompile(`(?i)[aeiouáéíóúàèìòùãõâêîôûäëïöü]`)

	// Default forbidden content for mask tokens: control characters or
	// substrings commonly abused to smuggle payloads into log output.
	defaultForbiddenRegex = regexp.MustCompile(`[[:cntrl:]]|(?i:base64|script|php)`)
)

// defaultForbiddenPattern is the source form of defaultForbiddenRegex,
// exposed through Config documentation and reused when callers pass an
// empty override.
const defaultForbiddenPattern = `[[:cntrl:]]|(?i:base64|script|php)`
