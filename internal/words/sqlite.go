// internal/words/sqlite.go
//
// SQLite dictionary source.
// Reads the vocabulary from a `words` table (one word per row) so large
// curated dictionaries can be shipped as a single database file instead
// of flat text. The database is opened read-only; the same 5-letter
// normalization is applied row by row, so a dictionary may freely mix
// word lengths.

package words

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// FromDB loads the word list from the SQLite database at path.
// Schema expectation: a table `words` with a TEXT column `word`.
func FromDB(path string) ([]string, error) {
	// sql.Open is lazy; stat first so a missing file fails up front
	// instead of surfacing as an opaque query error.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("words: open db %s: %w", path, err)
	}
	db, err := sql.Open("sqlite3", path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("words: open db %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("words: query %s: %w", path, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("words: scan %s: %w", path, err)
		}
		if w, ok := normalize(raw); ok {
			out = append(out, w)
		}
	}
	return out, rows.Err()
}
