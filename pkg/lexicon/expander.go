package lexicon

import (
	"context"
	"strings"
	"sync"

	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Expander turns a normalized token into its SynonymSet: the reflexive
// closure of the source's relations for that token. Unknown tokens expand to
// just themselves, and so do tokens whose lookup fails — a broken lexical
// resource degrades matching quality but never aborts a session.
//
// Results are cached per token for the Expander's lifetime. The cache is
// unbounded; the token vocabulary of a transcript is small enough that no
// eviction is needed. The mutex makes the write-once-per-key discipline hold
// if callers ever query in parallel.
type Expander struct {
	source Source

	mu    sync.Mutex
	cache map[string]SynonymSet
}

// NewExpander creates an Expander over the given source.
func NewExpander(source Source) *Expander {
	return &Expander{
		source: source,
		cache:  map[string]SynonymSet{},
	}
}

// Expand returns the synonym set for token. The returned set always contains
// the token itself, so a literal match scores regardless of the source. The
// set is shared with the cache and must not be modified.
func (e *Expander) Expand(ctx context.Context, token string) SynonymSet {
	e.mu.Lock()
	defer e.mu.Unlock()

	if set, ok := e.cache[token]; ok {
		return set
	}

	set := SynonymSet{token: {}}

	synonyms, err := e.source.Lookup(ctx, token)
	if err != nil {
		// Recoverable per the error contract: log and fall back to the bare
		// token. The fallback is cached too, so a dead source is hit at most
		// once per token.
		logging.From(ctx).Warn("lexicon lookup failed, falling back to exact match",
			"token", token,
			"error", goerr.Wrap(model.ErrLexiconLookup, err.Error()),
		)
	}

	for _, syn := range synonyms {
		syn = strings.ToLower(syn)
		if syn != "" {
			set[syn] = struct{}{}
		}
	}

	e.cache[token] = set
	return set
}

// ExpandLine expands every token of a line, preserving position order.
func (e *Expander) ExpandLine(ctx context.Context, tokens []string) []SynonymSet {
	if len(tokens) == 0 {
		return nil
	}

	sets := make([]SynonymSet, len(tokens))
	for i, token := range tokens {
		sets[i] = e.Expand(ctx, token)
	}
	return sets
}
