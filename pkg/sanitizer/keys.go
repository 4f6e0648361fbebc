package sanitizer

import (
	"errors"
	"sort"
	"strings"
)

// separatorReplacer strips the separator characters tolerated in fuzzy key
// matching, so "api_key", "api-key" and "api@key" collapse to "apikey".
var separatorReplacer = strings.NewReplacer("_", "", "-", "", "@", "")

// KeyDetector answers whether a field or property name denotes sensitive
// data. It is built once from a base key list and precomputes a flat set of
// fuzzy variants per key: the lowercased trimmed form, its NFKC-normalized
// form, a separator-stripped form and a vowel-stripped form. A candidate
// matches when any of its own variants is present in the set, which makes
// detection case-, diacritic- and separator-insensitive.
//
// The detector is immutable after construction and safe for concurrent use.
type KeyDetector struct {
	prepared map[string]struct{}
}

// NewKeyDetector builds a detector from the given key list. Keys that are
// empty after trimming are skipped; construction fails when no usable key
// remains, because an empty set would silently disable key-based masking.
func NewKeyDetector(keys []string) (*KeyDetector, error) {
	prepared := make(map[string]struct{}, len(keys)*4)
	for _, key := range keys {
		for _, variant := range keyVariants(key) {
			prepared[variant] = struct{}{}
		}
	}
	if len(prepared) == 0 {
		return nil, errors.Join(ErrInvalidConfig, ErrNoSensitiveKeys)
	}
	return &KeyDetector{prepared: prepared}, nil
}

// keyVariants computes the fuzzy variants of a raw key. Empty variants are
// dropped so the prepared set only ever holds non-empty strings.
func keyVariants(key string) []string {
	base := strings.ToLower(strings.TrimSpace(key))
	if base == "" {
		return nil
	}

	variants := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	add(base)
	add(strings.ToLower(Normalize(base)))
	add(separatorReplacer.Replace(base))
	add(collapseRepeats(vowelRegex.ReplaceAllString(base, "")))
	return variants
}

// collapseRepeats squeezes runs of the same rune into one, so the
// vowel-stripped variants of "password" ("psswrd") and of an already
// abbreviated "pswrd" land on the same set entry.
func collapseRepeats(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// IsSensitiveKey reports whether the candidate key matches any prepared
// variant. The candidate goes through the same variant expansion as the
// configured keys, so "Password", "PASSWORD ", "pswrd" and "pass_word" all
// match a configured "password" while "passenger" does not.
func (d *KeyDetector) IsSensitiveKey(key string) bool {
	for _, variant := range keyVariants(key) {
		if _, ok := d.prepared[variant]; ok {
			return true
		}
	}
	return false
}

// PreparedKeys returns the prepared variant set in sorted order. The phrase
// sanitizer consumes this to build its patterns without recomputing the
// variant expansion.
func (d *KeyDetector) PreparedKeys() []string {
	keys := make([]string, 0, len(d.prepared))
	for k := range d.prepared {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
