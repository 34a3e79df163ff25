package lexicon

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteSource serves synonym relations from an embedded relationship
// database with the schema:
//
//	CREATE TABLE synonyms (word TEXT NOT NULL, synonym TEXT NOT NULL);
//	CREATE INDEX idx_synonyms_word ON synonyms (word);
//
// The database is opened read-only; the engine never writes to the lexical
// resource.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLiteSource opens the synonym database at path.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open synonym database", goerr.V("path", path))
	}

	// sql.Open defers the actual file access; fail now rather than on the
	// first mid-session lookup.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to reach synonym database", goerr.V("path", path))
	}

	return &SQLiteSource{db: db}, nil
}

func (s *SQLiteSource) Lookup(ctx context.Context, token string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT synonym FROM synonyms WHERE word = ? ORDER BY synonym
	`, token)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query synonyms", goerr.V("token", token))
	}
	defer rows.Close()

	var synonyms []string
	for rows.Next() {
		var syn string
		if err := rows.Scan(&syn); err != nil {
			return nil, goerr.Wrap(err, "failed to scan synonym row", goerr.V("token", token))
		}
		synonyms = append(synonyms, syn)
	}

	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate synonym rows", goerr.V("token", token))
	}

	return synonyms, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
