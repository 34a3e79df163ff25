package lexicon

import (
	"context"

	"github.com/antzucaro/matchr"
)

// ScorerOption is a functional option for configuring a Scorer.
type ScorerOption func(*Scorer)

// WithFuzzy enables Jaro-Winkler coverage as a fallback for query tokens with
// no synonym-set intersection: such a token still counts as covered when its
// similarity with some candidate token reaches threshold. A threshold of 0
// disables the fallback, which is the default; IM transcripts are full of
// typos, and this option trades strictness for recall.
func WithFuzzy(threshold float64) ScorerOption {
	return func(s *Scorer) {
		s.fuzzyThreshold = threshold
	}
}

// Scorer computes the length-normalized similarity of two token sequences
// after synonym expansion. Score is pure with respect to its inputs: the only
// state it touches is the Expander's cache.
type Scorer struct {
	expander       *Expander
	fuzzyThreshold float64
}

// NewScorer creates a Scorer over the given Expander.
func NewScorer(expander *Expander, opts ...ScorerOption) *Scorer {
	s := &Scorer{expander: expander}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Score returns a value in [0, 1]. A query token is covered when its synonym
// set intersects the synonym set of any candidate token. The covered count is
// normalized by the longer of the two sequences: a long candidate cannot look
// strong merely by containing many unrelated tokens, and a long query cannot
// trivially blanket a short candidate. Either side being empty scores 0 —
// there are no vacuous perfect matches.
func (s *Scorer) Score(ctx context.Context, queryTokens, candidateTokens []string) float64 {
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return 0
	}

	candidateSets := s.expander.ExpandLine(ctx, candidateTokens)

	covered := 0
	for _, queryToken := range queryTokens {
		querySet := s.expander.Expand(ctx, queryToken)
		if s.isCovered(queryToken, querySet, candidateTokens, candidateSets) {
			covered++
		}
	}

	longer := len(queryTokens)
	if len(candidateTokens) > longer {
		longer = len(candidateTokens)
	}

	return float64(covered) / float64(longer)
}

func (s *Scorer) isCovered(queryToken string, querySet SynonymSet, candidateTokens []string, candidateSets []SynonymSet) bool {
	for _, candidateSet := range candidateSets {
		if querySet.Intersects(candidateSet) {
			return true
		}
	}

	if s.fuzzyThreshold > 0 {
		for _, candidateToken := range candidateTokens {
			if matchr.JaroWinkler(queryToken, candidateToken, false) >= s.fuzzyThreshold {
				return true
			}
		}
	}

	return false
}
