package sanitizer

// sanitizeString runs the full string pipeline: Unicode normalization,
// credential-phrase masking, then pattern masking. Phrase masking runs
// first so pattern masking never cuts through a phrase boundary that was
// already rewritten.
func (s *Service) sanitizeString(value, maskToken string) string {
	value = Normalize(value)
	value = s.phrase.Mask(value, maskToken)
	return s.patterns.Mask(value, maskToken)
}
