// Package lexicon provides synonym expansion over an external lexical
// relationship source and the length-normalized similarity scorer built on
// top of it. Sources only enumerate raw relations; the Expander owns the
// reflexive closure, the unknown-token fallback and the per-token cache.
package lexicon

import "context"

// Source enumerates the tokens semantically related to a normalized token.
// Implementations return an empty slice (not an error) for unknown tokens;
// errors are reserved for the backing resource being unreadable. Sources must
// be safe for repeated calls with the same token.
type Source interface {
	Lookup(ctx context.Context, token string) ([]string, error)
}

// EmptySource is a Source with no relations. Expansion over it degrades to
// exact-token matching, which is also the behavior for any token the real
// sources don't know.
type EmptySource struct{}

func (EmptySource) Lookup(ctx context.Context, token string) ([]string, error) {
	return nil, nil
}
