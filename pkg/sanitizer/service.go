package sanitizer

import (
	"errors"
	"reflect"
	"regexp"
)

// DefaultMaxDepth bounds recursive traversal when Config.MaxDepth is not
// set.
const DefaultMaxDepth = 8

// defaultSensitiveKeys seed the key detector. English and Portuguese
// credential vocabulary, matching the data this pipeline most commonly
// sees in log payloads.
var defaultSensitiveKeys = []string{
	"password", "token", "api_key", "secret", "authorization",
	"credit_card", "ssn",
	"senha", "chave_api", "segredo", "autorizacao", "cartao_credito",
	"cpf", "cnpj", "acesso_token",
}

// Config is the external configuration surface of the sanitizer. Values
// are merged with built-in defaults at construction; the resulting Service
// is immutable.
type Config struct {
	// SensitiveKeys are merged with the built-in default key list.
	SensitiveKeys []string
	// SensitivePatterns are merged with the built-in default patterns
	// (CPF, 16-digit card numbers, emails). Bodies or /body/flags literals.
	SensitivePatterns []string
	// Separators are merged with the default phrase separators.
	Separators []string
	// MaxDepth bounds recursive traversal; DefaultMaxDepth when <= 0.
	MaxDepth int
	// MaskToken replaces sensitive content; DefaultMaskToken when empty.
	MaskToken string
	// MaskTokenForbiddenPattern overrides the default forbidden-content
	// pattern (control characters, "base64", "script", "php").
	MaskTokenForbiddenPattern string
}

// Service is the sanitization facade. It routes any input value to the
// right sanitizer by runtime shape and answers sensitivity queries. All
// state is built once in New and read-only afterwards, so one Service may
// be shared across goroutines without locking.
type Service struct {
	keys      *KeyDetector
	patterns  *PatternSet
	phrase    *PhraseSanitizer
	forbidden *regexp.Regexp
	maskToken string
	maxDepth  int
}

// New builds a Service from cfg. Construction fails fast on any broken
// configuration (mask token, pattern bodies, separators): a sanitizer that
// cannot mask correctly must not be handed out.
//
// One defensive exception: a default mask token that is itself sensitive
// (say, a caller configures "password" as the token) silently falls back
// to DefaultMaskToken instead of failing, since the intent is unmistakable
// and the fallback is strictly safer.
func New(cfg Config) (*Service, error) {
	forbidden := defaultForbiddenRegex
	if cfg.MaskTokenForbiddenPattern != "" {
		re, err := regexp.Compile(cfg.MaskTokenForbiddenPattern)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, ErrInvalidForbiddenPattern, err)
		}
		forbidden = re
	}

	keys, err := NewKeyDetector(append(append([]string{}, defaultSensitiveKeys...), cfg.SensitiveKeys...))
	if err != nil {
		return nil, err
	}

	patterns, err := NewPatternSet(append(append([]string{}, defaultSensitivePatterns...), cfg.SensitivePatterns...))
	if err != nil {
		return nil, err
	}

	phrase, err := NewPhraseSanitizer(keys.PreparedKeys(), cfg.Separators)
	if err != nil {
		return nil, err
	}

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	s := &Service{
		keys:      keys,
		patterns:  patterns,
		phrase:    phrase,
		forbidden: forbidden,
		maskToken: DefaultMaskToken,
		maxDepth:  maxDepth,
	}

	if cfg.MaskToken != "" {
		token, err := validateMaskToken(cfg.MaskToken, forbidden)
		if err != nil {
			return nil, err
		}
		// Self-check on the raw configured token: a token that is itself
		// sensitive would mask values with the very thing being hidden.
		if s.IsSensitive(cfg.MaskToken) {
			token = DefaultMaskToken
		}
		s.maskToken = token
	}

	return s, nil
}

// MaskToken returns the effective default mask token.
func (s *Service) MaskToken() string {
	return s.maskToken
}

// Sanitize returns a copy of value with sensitive content masked. An
// optional per-call mask token overrides the instance default; an invalid
// override falls back to the default, so Sanitize never fails and its
// result is always safe to persist.
//
// Traversal faults never abort the call: cycles and over-deep nesting are
// rendered as sentinel placeholders in the output.
//
// Example:
//
//	svc.Sanitize(map[string]any{"password": "hunter2"})
//	// map[string]any{"password": "[MASKED]"}
func (s *Service) Sanitize(value any, maskToken ...string) any {
	token := s.maskToken
	if len(maskToken) > 0 {
		if validated, err := validateMaskToken(maskToken[0], s.forbidden); err == nil {
			token = validated
		}
	}
	return s.sanitizeValue(reflect.ValueOf(value), 1, token, newVisitedSet())
}

// IsSensitive reports whether value contains sensitive content: a string
// matching a sensitive pattern or equal to a sensitive key, or a composite
// holding a sensitive key name or a sensitive value at any reachable
// depth. It never mutates its input.
func (s *Service) IsSensitive(value any) bool {
	return s.isSensitiveValue(reflect.ValueOf(value), 1, newVisitedSet())
}

// IsSensitiveKey exposes fuzzy key matching for collaborators that route
// on field names, such as logging handlers.
func (s *Service) IsSensitiveKey(key string) bool {
	return s.keys.IsSensitiveKey(key)
}

// SanitizeString applies the string pipeline (normalize, phrase mask,
// pattern mask) with the instance mask token.
func (s *Service) SanitizeString(value string) string {
	return s.sanitizeStringValue(value, s.maskToken)
}
