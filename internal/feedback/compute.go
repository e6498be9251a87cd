// internal/feedback/compute.go
//
// Feedback computation: scores a guess against a known answer with the
// classic two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct and consume those answer positions.
//
// Pass 2:
//   - For each non-Correct guess letter, scan the answer left to right for
//     an unconsumed position holding the same letter; consume it and mark
//     Misplaced, or mark Absent when none remains.
//
// The consumption discipline is what keeps repeated letters honest: a
// guess letter can only claim as many Misplaced marks as the answer has
// unconsumed occurrences (guess "speed" vs answer "abide" yields a single
// mark for the doubled e).

package feedback

// Compute returns the feedback pattern produced when guess is played
// against answer. Pure function of its inputs; both words must already be
// ParseWord-normalized.
func Compute(guess, answer string) Pattern {
	var p Pattern
	var consumed [WordLen]bool

	// First pass: exact matches.
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = Correct
			consumed[i] = true
		}
	}

	// Second pass: displaced matches against unconsumed answer positions.
	for i := 0; i < WordLen; i++ {
		if p[i] == Correct {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !consumed[j] && answer[j] == guess[i] {
				p[i] = Misplaced
				consumed[j] = true
				break
			}
		}
	}
	return p
}
