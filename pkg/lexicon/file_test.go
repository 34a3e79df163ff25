package lexicon_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/m-mizutani/gt"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thesaurus.txt")
	content := "free,complimentary,gratis\n" +
		"HAPPY, Glad ,joyful\n" +
		"\n" +
		"loner\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))

	src, err := lexicon.NewFileSource(path)
	gt.NoError(t, err)

	ctx := context.Background()

	syns, err := src.Lookup(ctx, "free")
	gt.NoError(t, err)
	gt.Equal(t, syns, []string{"complimentary", "gratis"})

	// Headwords and synonyms are lower-cased and trimmed.
	syns, err = src.Lookup(ctx, "happy")
	gt.NoError(t, err)
	gt.Equal(t, syns, []string{"glad", "joyful"})

	// A headword without synonyms and unknown words both come back empty.
	syns, err = src.Lookup(ctx, "loner")
	gt.NoError(t, err)
	gt.Equal(t, len(syns), 0)

	syns, err = src.Lookup(ctx, "zzyzx")
	gt.NoError(t, err)
	gt.Equal(t, len(syns), 0)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := lexicon.NewFileSource(filepath.Join(t.TempDir(), "nope.txt"))
	gt.Error(t, err)
}
