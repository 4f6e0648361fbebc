// Package sanitizer detects and masks sensitive data (credentials, PII)
// in arbitrary values before they reach persisted log output.
//
// The package is organised as a small pipeline of focused components:
//
//   - KeyDetector – fuzzy matching of field names against a prepared set of
//     sensitive keys. Matching is case-, diacritic- and separator-insensitive
//     and tolerates vowel-stripped abbreviations ("pswrd" matches "password").
//
//   - PatternSet – regular-expression signatures for content that is
//     sensitive by shape alone (CPF numbers, 16-digit card numbers, email
//     addresses), compiled once at construction.
//
//   - PhraseSanitizer – masks only the value token of credential phrases in
//     free text ("password: abc123" becomes "password: [MASKED]"), matching
//     forward (key before value) and falling back to backward (value before
//     key) when the forward pass replaced nothing.
//
//   - Service – the facade. It dispatches on the runtime shape of the input
//     (string, map, list, object, scalar), walks composites recursively with
//     cycle detection and depth limiting, and exposes the two operations
//     collaborators need: Sanitize and IsSensitive.
//
// # Usage
//
//	import "github.com/DevFelipeRT/logmask/pkg/sanitizer"
//
//	svc, err := sanitizer.New(sanitizer.Config{
//	    SensitiveKeys: []string{"session_id"},
//	})
//	if err != nil {
//	    // broken configuration, fail fast
//	}
//
//	safe := svc.Sanitize(map[string]any{
//	    "user":     "jane",
//	    "password": "hunter2",
//	    "note":     "card 4111 1111 1111 1111",
//	})
//	// map[user:jane password:[MASKED] note:card [MASKED]]
//
// # Error handling
//
// Construction is the only failing operation: every error wraps
// ErrInvalidConfig, because a sanitizer built from broken configuration
// would silently fail to protect data. Sanitize and IsSensitive never
// fail. Traversal faults – reference cycles, nesting beyond the configured
// depth – degrade into sentinel placeholders (SentinelCircular, a
// SentinelHalted entry) inside the returned value.
//
// # Concurrency
//
// A Service is immutable after New. Recursion state is allocated per call
// and never shared, so a single Service may be used from any number of
// goroutines concurrently without locking.
package sanitizer
