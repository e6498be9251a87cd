// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Load the candidate vocabulary from a text file, a SQLite dictionary
//     database, or fall back to the embedded default list.
//   - Normalize entries: lowercase, exactly 5 ASCII letters; everything
//     else is silently skipped.
//   - Supply Random/Daily answer selection for simulation mode.
//
// Resolution order (Load):
//   1. Explicit file path (flag).
//   2. Explicit database path (flag).
//   3. WORDS_FILE environment variable.
//   4. WORDS_DB environment variable.
//   5. Embedded default list.
//
// Failure to open or read a configured source is returned to the caller
// and treated as fatal at startup; there is no partial fallback once a
// source is named.

package words

import (
	"bufio"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/robalobadob/wordle-helper/internal/feedback"
)

//go:embed default_words.txt
var embeddedWords string

// Config selects the word source. Zero value means embedded defaults.
type Config struct {
	File string // path to a one-word-per-line text file
	DB   string // path to a SQLite dictionary database
}

// Load resolves the configured source and returns the normalized word
// list plus a label describing where it came from. An empty resulting
// list is an error: a session cannot start with no vocabulary.
func Load(cfg Config) ([]string, string, error) {
	var (
		list   []string
		source string
		err    error
	)
	switch {
	case cfg.File != "":
		source = "file:" + cfg.File
		list, err = FromFile(cfg.File)
	case cfg.DB != "":
		source = "db:" + cfg.DB
		list, err = FromDB(cfg.DB)
	case os.Getenv("WORDS_FILE") != "":
		source = "file:" + os.Getenv("WORDS_FILE")
		list, err = FromFile(os.Getenv("WORDS_FILE"))
	case os.Getenv("WORDS_DB") != "":
		source = "db:" + os.Getenv("WORDS_DB")
		list, err = FromDB(os.Getenv("WORDS_DB"))
	default:
		source = "embedded"
		list = normalizeLines(embeddedWords)
	}
	if err != nil {
		return nil, source, err
	}
	if len(list) == 0 {
		return nil, source, fmt.Errorf("words: %s yielded no usable words", source)
	}
	return list, source, nil
}

// FromFile loads one word per line from a file, lowercases, trims, and
// keeps only valid 5-letter alphabetic words.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader scans r line by line with the same filtering as FromFile.
func FromReader(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize lowercases and trims a raw line, accepting it only when it is
// exactly 5 ASCII letters.
func normalize(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != feedback.WordLen || !feedback.IsAlpha(w) {
		return "", false
	}
	return w, true
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalize(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// Random returns a cryptographically random word from list, or an error
// for an empty list.
func Random(list []string) (string, error) {
	if len(list) == 0 {
		return "", errors.New("words: empty list")
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", err
	}
	return list[nBig.Int64()], nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns the deterministic word-of-the-day for date: the list
// entry at HMAC(salt, YYYY-MM-DD) % len(list). Everybody running with
// the same list and salt gets the same answer on the same day.
func Daily(list []string, date time.Time, salt string) (string, error) {
	if len(list) == 0 {
		return "", errors.New("words: empty list")
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return list[n%uint64(len(list))], nil
}
