// internal/solver/candidates.go
//
// Candidate set management for a solving session.
// Responsibilities:
//   - Hold the words still consistent with all feedback seen so far.
//   - Filter by (guess, pattern) into a fresh set; never mutate in place.
//   - Pattern search: find candidates whose feedback against a fixed
//     answer equals a desired pattern (art mode).
//
// Notes:
//   - Insertion order is preserved and duplicates are dropped, so display
//     order and suggestion tie-breaking stay deterministic.
//   - An empty set after filtering is a valid, reportable state (the
//     feedback history is contradictory or the answer is outside the
//     loaded vocabulary), not an error.

package solver

import "github.com/robalobadob/wordle-helper/internal/feedback"

// Candidates is an insertion-ordered, value-unique collection of words.
// The zero value is an empty set ready for use.
type Candidates struct {
	words []string
	seen  map[string]struct{}
}

// NewCandidates builds a set from words, keeping first occurrences in
// order. Words are assumed already normalized by the loading layer.
func NewCandidates(words []string) *Candidates {
	c := &Candidates{
		words: make([]string, 0, len(words)),
		seen:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		c.add(w)
	}
	return c
}

func (c *Candidates) add(w string) {
	if _, dup := c.seen[w]; dup {
		return
	}
	c.seen[w] = struct{}{}
	c.words = append(c.words, w)
}

// Len returns the number of candidate words.
func (c *Candidates) Len() int { return len(c.words) }

// Contains reports whether w is in the set.
func (c *Candidates) Contains(w string) bool {
	_, ok := c.seen[w]
	return ok
}

// Words returns a copy of the candidate words in insertion order.
func (c *Candidates) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Filter returns a new set holding only the candidates consistent with
// guess having produced pattern. The receiver is left untouched; an
// empty result is returned as-is for the caller to report.
func (c *Candidates) Filter(guess string, pattern feedback.Pattern) *Candidates {
	out := &Candidates{
		words: make([]string, 0, len(c.words)),
		seen:  make(map[string]struct{}, len(c.words)),
	}
	for _, w := range c.words {
		if feedback.Consistent(w, guess, pattern) {
			out.add(w)
		}
	}
	return out
}

// FindMatching returns, in set order, every candidate whose computed
// feedback against answer equals desired. The set is not modified.
func (c *Candidates) FindMatching(answer string, desired feedback.Pattern) []string {
	var out []string
	for _, w := range c.words {
		if feedback.Compute(w, answer) == desired {
			out = append(out, w)
		}
	}
	return out
}
