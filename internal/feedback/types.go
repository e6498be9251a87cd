// internal/feedback/types.go
//
// Core type definitions for the feedback engine.
// Defines:
//   - Symbol: per-letter result of comparing a guess to the answer.
//   - Pattern: the ordered 5-symbol outcome for one whole guess.
//   - Word parsing/validation and the g/y/b pattern encoding.

package feedback

import (
	"errors"
	"strings"
)

// WordLen is the fixed puzzle word length.
const WordLen = 5

// Symbol represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Correct:   letter is correct and in the correct position (green).
//   - Misplaced: letter exists in the answer but in a different position (yellow).
//   - Absent:    no unaccounted occurrence of the letter remains (grey).
type Symbol uint8

const (
	Absent Symbol = iota
	Misplaced
	Correct
)

// Pattern is the positional feedback for one guess, aligned letter by letter.
type Pattern [WordLen]Symbol

var (
	ErrWordLength      = errors.New("feedback: word must be exactly 5 letters")
	ErrWordChar        = errors.New("feedback: word must be ASCII letters a-z")
	ErrPatternEncoding = errors.New("feedback: pattern must be 5 chars of g/y/b (or r for grey)")
)

// ParseWord normalizes raw input to a canonical puzzle word.
// Trims surrounding space, lowercases, and requires exactly WordLen
// ASCII alphabetic characters.
func ParseWord(s string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLen {
		return "", ErrWordLength
	}
	if !IsAlpha(w) {
		return "", ErrWordChar
	}
	return w, nil
}

// IsAlpha reports whether s consists only of lowercase a-z.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ParsePattern decodes user-observed feedback into a Pattern.
// Accepted per character: g/G → Correct, y/Y → Misplaced, b/B/r/R → Absent.
// Any other character, or a string of the wrong length, is rejected with
// ErrPatternEncoding and no partial result.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	var p Pattern
	if len(s) != WordLen {
		return Pattern{}, ErrPatternEncoding
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g', 'G':
			p[i] = Correct
		case 'y', 'Y':
			p[i] = Misplaced
		case 'b', 'B', 'r', 'R':
			p[i] = Absent
		default:
			return Pattern{}, ErrPatternEncoding
		}
	}
	return p, nil
}

// String renders the pattern in the same g/y/b encoding ParsePattern accepts.
func (p Pattern) String() string {
	var b strings.Builder
	for _, s := range p {
		switch s {
		case Correct:
			b.WriteByte('g')
		case Misplaced:
			b.WriteByte('y')
		default:
			b.WriteByte('b')
		}
	}
	return b.String()
}

// AllCorrect reports whether every position is Correct.
func (p Pattern) AllCorrect() bool {
	for _, s := range p {
		if s != Correct {
			return false
		}
	}
	return true
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a-z elsewhere.
func idx(b byte) int { return int(b - 'a') }
