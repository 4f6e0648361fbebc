package sanitizer

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultSeparators are the tokens accepted between a key and its value in
// a credential phrase. Word separators cover English and Portuguese
// copulas ("is", "foi", "é").
var defaultSeparators = []string{":", "=", "-", "->", "=>", "|", "/", ";", ",", "is", "foi", "é"}

// valueTokenClass matches one value token: a run of characters up to
// whitespace or common phrase punctuation.
const valueTokenClass = `[^\s,;:."]+`

var wordSeparatorRegex = regexp.MustCompile(`^\w+$`)

// PhraseSanitizer masks the value token of credential phrases such as
// "password: abc123" inside free text, leaving the surrounding words
// untouched. Two patterns are compiled at construction: a forward one
// (key, up to three intermediate words, separator, value) and a backward
// one (value, separator, up to three intermediate words, key). The
// backward pattern only runs when the forward pass replaced nothing in the
// entire string; a string mixing both phrasings therefore masks only the
// forward occurrences. That asymmetry is long-standing observed behavior
// and is kept deliberately.
//
// Immutable after construction, safe for concurrent use.
type PhraseSanitizer struct {
	forward  *regexp.Regexp
	backward *regexp.Regexp
}

// NewPhraseSanitizer builds the phrase patterns from a prepared key set
// (see KeyDetector.PreparedKeys) and an optional list of extra separators
// merged with the defaults. Separators must be non-empty and free of
// whitespace. An empty key set is valid and yields a no-op sanitizer.
func NewPhraseSanitizer(preparedKeys, separators []string) (*PhraseSanitizer, error) {
	seps := make([]string, 0, len(defaultSeparators)+len(separators))
	seps = append(seps, defaultSeparators...)
	for _, sep := range separators {
		if sep == "" || strings.ContainsAny(sep, " \t\n\r") {
			return nil, errors.Join(ErrInvalidConfig, ErrInvalidSeparator, fmt.Errorf("separator %q", sep))
		}
		seps = append(seps, sep)
	}

	keys := make([]string, 0, len(preparedKeys))
	for _, k := range preparedKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return &PhraseSanitizer{}, nil
	}

	keyAlt := alternation(keys, false)
	sepAlt := alternation(seps, true)

	forward, err := regexp.Compile(
		`(?i)\b(?:` + keyAlt + `)\b(?:\s+\w+){0,3}\s*(?:` + sepAlt + `)\s*(` + valueTokenClass + `)`)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	backward, err := regexp.Compile(
		`(?i)(` + valueTokenClass + `)\s+(?:` + sepAlt + `)(?:\s+\w+){0,3}\s+(?:` + keyAlt + `)\b`)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &PhraseSanitizer{forward: forward, backward: backward}, nil
}

// alternation quotes and joins tokens into a regex alternation, longest
// first so that "->" wins over "-". Word-only separators get their own
// boundaries to avoid matching inside larger words ("is" in "issued").
func alternation(tokens []string, boundWords bool) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	parts := make([]string, 0, len(sorted))
	for _, tok := range sorted {
		quoted := regexp.QuoteMeta(tok)
		if boundWords && wordSeparatorRegex.MatchString(tok) {
			quoted = `\b` + quoted + `\b`
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, "|")
}

// Mask replaces the value token of every credential phrase in value with
// maskToken. With no configured keys the input is returned unchanged.
func (p *PhraseSanitizer) Mask(value, maskToken string) string {
	if p.forward == nil {
		return value
	}

	replaced := 0
	out := p.forward.ReplaceAllStringFunc(value, func(m string) string {
		idx := p.forward.FindStringSubmatchIndex(m)
		if idx == nil || idx[2] < 0 {
			return m
		}
		replaced++
		// The value group runs to the end of the match.
		return m[:idx[2]] + maskToken
	})
	if replaced > 0 {
		return out
	}

	return p.backward.ReplaceAllStringFunc(value, func(m string) string {
		idx := p.backward.FindStringSubmatchIndex(m)
		if idx == nil || idx[2] < 0 {
			return m
		}
		// The value group starts the match.
		return maskToken + m[idx[3]:]
	})
}
