package lexicon

// SynonymSet is the expansion of one token: the token itself plus every
// related token the source knows. Sets handed out by the Expander are cached
// and shared; callers must not modify them.
type SynonymSet map[string]struct{}

// Contains reports whether token is in the set.
func (s SynonymSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Intersects reports whether the two sets share at least one token.
func (s SynonymSet) Intersects(other SynonymSet) bool {
	a, b := s, other
	if len(a) > len(b) {
		a, b = b, a
	}
	for token := range a {
		if _, ok := b[token]; ok {
			return true
		}
	}
	return false
}
