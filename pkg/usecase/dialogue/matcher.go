// Package dialogue implements the retrieval side of conversation: matching a
// query against a transcript, walking to the reply, and the session loops
// that drive interactive chat and unattended two-persona dialogue.
package dialogue

import (
	"context"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/m-mizutani/goerr/v2"
)

// Matcher finds the transcript line most similar to a query.
type Matcher struct {
	scorer *lexicon.Scorer
}

// NewMatcher creates a Matcher over the given scorer.
func NewMatcher(scorer *lexicon.Scorer) *Matcher {
	return &Matcher{scorer: scorer}
}

// FindBest scans every line of the store and returns the best-scoring one.
// Ties are broken toward the lowest index, so the result is stable across
// runs for an unchanged transcript. A best score of 0 is still a result —
// absence of lexical overlap is a weak match, not an error; callers wanting
// stricter behavior apply their own threshold. Only an empty store fails,
// with model.ErrNoMatch.
func (m *Matcher) FindBest(ctx context.Context, store *transcript.Store, queryTokens []string) (model.MatchResult, error) {
	if store.Len() == 0 {
		return model.MatchResult{}, goerr.Wrap(model.ErrNoMatch, "transcript is empty")
	}

	best := model.MatchResult{Index: 0, Score: 0}
	for i := 0; i < store.Len(); i++ {
		score := m.scorer.Score(ctx, queryTokens, store.Get(i).Tokens)
		if score > best.Score {
			best = model.MatchResult{Index: i, Score: score}
		}
	}

	return best, nil
}
