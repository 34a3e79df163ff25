// Package transcript loads normalized chat logs into immutable, ordered
// stores. A transcript file holds one record per line in the form
// CHATID,TIMESTAMP,AUTHOR,TEXT; the first three commas are field separators
// and TEXT keeps any further commas verbatim.
package transcript

import (
	"bufio"
	"os"
	"strings"

	"github.com/caprica-im/caprica/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

const recordFields = 4

// Store is an ordered, read-only sequence of utterances for one persona.
// Indices are dense (0..Len()-1) and assigned at load time. A Store is safe
// to share across sessions because nothing mutates it after Load returns.
type Store struct {
	lines []*model.Utterance
}

// Load reads a transcript file into a Store. A missing path yields
// model.ErrTranscriptNotFound. Any non-empty line that does not split into
// four fields aborts the whole load with model.ErrMalformedRecord; a
// partially loaded transcript would silently shift line indices, so no
// partial Store is ever returned. Blank lines are not records and are
// skipped.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(model.ErrTranscriptNotFound, "failed to open transcript", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to open transcript", goerr.V("path", path))
	}
	defer f.Close()

	store := &Store{}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		parts := strings.SplitN(raw, ",", recordFields)
		if len(parts) < recordFields {
			return nil, goerr.Wrap(model.ErrMalformedRecord, "record has fewer than four fields",
				goerr.V("path", path),
				goerr.V("line", lineNo),
				goerr.V("record", raw),
			)
		}

		text := strings.TrimSpace(parts[3])
		store.lines = append(store.lines, &model.Utterance{
			ChatID:    parts[0],
			Timestamp: parts[1],
			Author:    parts[2],
			Text:      text,
			Tokens:    Tokenize(text),
			Index:     len(store.lines),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read transcript", goerr.V("path", path))
	}

	return store, nil
}

// Len returns the number of utterances in the store.
func (s *Store) Len() int {
	return len(s.lines)
}

// Get returns the utterance at index i. It panics on an out-of-range index,
// which is a programming error: all indices handed around the engine
// originate from this store.
func (s *Store) Get(i int) *model.Utterance {
	return s.lines[i]
}

// AuthorAt returns the author of the utterance at index i.
func (s *Store) AuthorAt(i int) string {
	return s.lines[i].Author
}
