package lexicon_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/m-mizutani/gt"
	_ "modernc.org/sqlite"
)

func newSynonymDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synonyms.db")

	db, err := sql.Open("sqlite", path)
	gt.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE synonyms (word TEXT NOT NULL, synonym TEXT NOT NULL)`)
	gt.NoError(t, err)
	_, err = db.Exec(`CREATE INDEX idx_synonyms_word ON synonyms (word)`)
	gt.NoError(t, err)

	rows := [][2]string{
		{"free", "complimentary"},
		{"free", "gratis"},
		{"tonight", "tonite"},
	}
	for _, row := range rows {
		_, err = db.Exec(`INSERT INTO synonyms (word, synonym) VALUES (?, ?)`, row[0], row[1])
		gt.NoError(t, err)
	}

	return path
}

func TestSQLiteSource(t *testing.T) {
	path := newSynonymDB(t)

	src, err := lexicon.NewSQLiteSource(path)
	gt.NoError(t, err)
	defer src.Close()

	ctx := context.Background()

	syns, err := src.Lookup(ctx, "free")
	gt.NoError(t, err)
	gt.Equal(t, syns, []string{"complimentary", "gratis"})

	syns, err = src.Lookup(ctx, "zzyzx")
	gt.NoError(t, err)
	gt.Equal(t, len(syns), 0)
}

func TestSQLiteSourceMissing(t *testing.T) {
	_, err := lexicon.NewSQLiteSource(filepath.Join(t.TempDir(), "nope.db"))
	gt.Error(t, err)
}
