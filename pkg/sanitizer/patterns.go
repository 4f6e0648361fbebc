package sanitizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// defaultSensitivePatterns describe the shape of sensitive content
// independent of any key name: CPF-shaped digit groups, 16-digit card
// numbers (plain or grouped by space, dot or dash) and email addresses.
var defaultSensitivePatterns = []string{
	`\b\d{3}\.?\d{3}\.?\d{3}-?\d{2}\b`,
	`\b\d{4}[ .-]?\d{4}[ .-]?\d{4}[ .-]?\d{4}\b`,
	`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
}

// PatternSet holds an ordered list of regular-expression bodies matching
// sensitive content. Each body is compiled individually for membership
// checks, plus once more as a single case-insensitive alternation used for
// masking. The set is immutable after construction and safe for concurrent
// use.
type PatternSet struct {
	bodies   []string
	compiled []*regexp.Regexp
	unified  *regexp.Regexp
}

// NewPatternSet compiles the given pattern bodies. Regex-literal forms such
// as "/\d+/i" are stripped to their bodies first; trailing flags are
// discarded because the unified pattern always runs case-insensitive.
// Duplicates are kept as configured. A body that does not compile fails
// construction.
//
// An empty list is valid and produces a set whose Mask is a normalizing
// pass-through.
func NewPatternSet(patterns []string) (*PatternSet, error) {
	set := &PatternSet{
		bodies:   make([]string, 0, len(patterns)),
		compiled: make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, raw := range patterns {
		body := cleanPatternBody(raw)
		if body == "" {
			return nil, errors.Join(ErrInvalidConfig, ErrInvalidPattern, fmt.Errorf("empty pattern body in %q", raw))
		}
		re, err := regexp.Compile("(?i)" + body)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, ErrInvalidPattern, err)
		}
		set.bodies = append(set.bodies, body)
		set.compiled = append(set.compiled, re)
	}
	if len(set.bodies) > 0 {
		unified, err := regexp.Compile("(?i)(?:" + strings.Join(set.bodies, ")|(?:") + ")")
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, ErrInvalidPattern, err)
		}
		set.unified = unified
	}
	return set, nil
}

// cleanPatternBody strips one pair of regex-literal delimiters and any
// trailing flags, e.g. "/\d{11}/iu" becomes `\d{11}`. Plain bodies pass
// through unchanged.
func cleanPatternBody(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '/' {
		if end := strings.LastIndexByte(s[1:], '/'); end >= 0 {
			return s[1 : 1+end]
		}
	}
	return s
}

// Patterns returns the configured pattern bodies in order.
func (p *PatternSet) Patterns() []string {
	out := make([]string, len(p.bodies))
	copy(out, p.bodies)
	return out
}

// Matches reports whether any configured pattern matches the value.
func (p *PatternSet) Matches(value string) bool {
	for _, re := range p.compiled {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// Mask normalizes the value and replaces every pattern match with the mask
// token. With no configured patterns the normalized value is returned
// unchanged.
func (p *PatternSet) Mask(value, maskToken string) string {
	value = Normalize(value)
	if p.unified == nil {
		return value
	}
	return p.unified.ReplaceAllLiteralString(value, maskToken)
}
