// internal/words/sqlite_test.go

package words

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictDB(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE words (word TEXT NOT NULL)`)
	require.NoError(t, err)
	for _, w := range rows {
		_, err = db.Exec(`INSERT INTO words(word) VALUES(?)`, w)
		require.NoError(t, err)
	}
	return path
}

func TestFromDB(t *testing.T) {
	path := newDictDB(t, []string{"crane", "SLATE", "toolong", "x", "aud1o", "brick"})

	got, err := FromDB(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "brick"}, got)
}

func TestFromDBMissingFile(t *testing.T) {
	_, err := FromDB(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

func TestFromDBWrongSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = FromDB(path)
	assert.Error(t, err)
}
