package dialogue

import (
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/m-mizutani/goerr/v2"
)

// FindResponse walks forward from the matched line and returns the first
// following utterance by a different author — "the next thing someone else
// said". Consecutive same-author lines are skipped, so the rule holds whether
// or not the transcript was chunked upstream. Fails with model.ErrNoResponse
// when no differing-author line exists through the end of the store.
func FindResponse(store *transcript.Store, matchedIndex int) (*model.Utterance, error) {
	matchedAuthor := store.AuthorAt(matchedIndex)

	for i := matchedIndex + 1; i < store.Len(); i++ {
		if store.AuthorAt(i) != matchedAuthor {
			return store.Get(i), nil
		}
	}

	return nil, goerr.Wrap(model.ErrNoResponse, "no differing-author line after match",
		goerr.V("matchedIndex", matchedIndex),
		goerr.V("matchedAuthor", matchedAuthor),
	)
}
