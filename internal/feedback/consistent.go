// internal/feedback/consistent.go
//
// Consistency predicate: decides whether a candidate word could still be
// the hidden answer, knowing only that a guess produced a pattern. No
// access to the true answer.
//
// Per-position rules:
//   - Correct:   candidate must repeat the guess letter at that position.
//   - Misplaced: candidate must contain the guess letter, but not there.
//   - Absent:    candidate must not contain the guess letter at all,
//     UNLESS another position of the guess carries the same letter with a
//     Correct/Misplaced mark. Then the Absent only caps the count of that
//     letter, and the candidate is not rejected for containing it.
//
// The accounted-elsewhere carve-out is the historically bug-prone part
// (a letter doubled in the guess but single in the answer gets one
// Correct/Misplaced mark and one Absent mark), so it lives in its own
// helper with its own tests.

package feedback

import "strings"

// Consistent reports whether candidate is compatible with guess having
// produced pattern p. All inputs must be ParseWord-normalized words.
func Consistent(candidate, guess string, p Pattern) bool {
	for i := 0; i < WordLen; i++ {
		switch p[i] {
		case Correct:
			if candidate[i] != guess[i] {
				return false
			}
		case Misplaced:
			if candidate[i] == guess[i] {
				return false
			}
			if strings.IndexByte(candidate, guess[i]) < 0 {
				return false
			}
		case Absent:
			if accountedElsewhere(guess, p, i) {
				continue
			}
			if strings.IndexByte(candidate, guess[i]) >= 0 {
				return false
			}
		}
	}
	return true
}

// accountedElsewhere reports whether the letter at guess position i also
// appears at some other guess position with a Correct or Misplaced mark.
// When it does, an Absent at i no longer forbids the letter outright: the
// other occurrence already accounts for its presence in the answer.
func accountedElsewhere(guess string, p Pattern, i int) bool {
	for j := 0; j < WordLen; j++ {
		if j == i || guess[j] != guess[i] {
			continue
		}
		if p[j] == Correct || p[j] == Misplaced {
			return true
		}
	}
	return false
}
