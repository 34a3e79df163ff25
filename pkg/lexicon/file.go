package lexicon

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FileSource serves synonym relations from a plain-text thesaurus file with
// one headword per line: "word,syn1,syn2,...". The whole file is read into
// memory at construction; thesaurus files are a few megabytes at most.
type FileSource struct {
	relations map[string][]string
}

// NewFileSource loads the thesaurus at path. Lines that are empty or carry no
// synonyms after the headword are ignored.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open thesaurus file", goerr.V("path", path))
	}
	defer f.Close()

	src := &FileSource{
		relations: map[string][]string{},
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}

		word := strings.ToLower(strings.TrimSpace(parts[0]))
		if word == "" {
			continue
		}

		for _, raw := range parts[1:] {
			syn := strings.ToLower(strings.TrimSpace(raw))
			if syn != "" {
				src.relations[word] = append(src.relations[word], syn)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read thesaurus file", goerr.V("path", path))
	}

	return src, nil
}

func (s *FileSource) Lookup(ctx context.Context, token string) ([]string, error) {
	return s.relations[token], nil
}
