package dialogue_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/caprica-im/caprica/pkg/usecase/dialogue"
	"github.com/m-mizutani/gt"
)

// staticSource is a fixed relation table for testing
type staticSource struct {
	relations map[string][]string
}

func (s *staticSource) Lookup(ctx context.Context, token string) ([]string, error) {
	return s.relations[token], nil
}

func loadTestStore(t *testing.T, content string) *transcript.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := transcript.Load(path)
	gt.NoError(t, err)
	return store
}

func exactScorer() *lexicon.Scorer {
	return lexicon.NewScorer(lexicon.NewExpander(lexicon.EmptySource{}))
}

func TestFindBest(t *testing.T) {
	store := loadTestStore(t,
		"1,100,a,are you free tonight\n"+
			"1,101,b,yeah what time\n")
	matcher := dialogue.NewMatcher(exactScorer())

	match, err := matcher.FindBest(context.Background(), store, transcript.Tokenize("free tonight"))
	gt.NoError(t, err)
	gt.Equal(t, match.Index, 0)
	gt.Equal(t, match.Score, 0.5)
}

func TestFindBestDeterministic(t *testing.T) {
	store := loadTestStore(t,
		"1,100,a,hello there\n"+
			"1,101,b,something else entirely\n"+
			"1,102,a,hello there\n")
	matcher := dialogue.NewMatcher(exactScorer())

	// Lines 0 and 2 tie; the earliest must win, on every call.
	for i := 0; i < 5; i++ {
		match, err := matcher.FindBest(context.Background(), store, transcript.Tokenize("hello there"))
		gt.NoError(t, err)
		gt.Equal(t, match.Index, 0)
		gt.Equal(t, match.Score, 1.0)
	}
}

func TestFindBestNoOverlap(t *testing.T) {
	store := loadTestStore(t,
		"1,100,a,hello\n"+
			"1,101,b,goodbye\n")
	matcher := dialogue.NewMatcher(exactScorer())

	// Zero overlap is a weak match, not an error: the earliest line wins.
	match, err := matcher.FindBest(context.Background(), store, transcript.Tokenize("xylophone"))
	gt.NoError(t, err)
	gt.Equal(t, match.Index, 0)
	gt.Equal(t, match.Score, 0.0)
}

func TestFindBestEmptyStore(t *testing.T) {
	store := loadTestStore(t, "")
	matcher := dialogue.NewMatcher(exactScorer())

	_, err := matcher.FindBest(context.Background(), store, transcript.Tokenize("hello"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrNoMatch))
}

func TestFindBestWithSynonyms(t *testing.T) {
	store := loadTestStore(t,
		"1,100,a,want to see some photos\n"+
			"1,101,b,sure send them over\n")
	scorer := lexicon.NewScorer(lexicon.NewExpander(&staticSource{relations: map[string][]string{
		"pics": {"photos", "pictures"},
	}}))
	matcher := dialogue.NewMatcher(scorer)

	match, err := matcher.FindBest(context.Background(), store, transcript.Tokenize("pics"))
	gt.NoError(t, err)
	gt.Equal(t, match.Index, 0)
	gt.True(t, match.Score > 0)
}
