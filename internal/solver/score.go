// internal/solver/score.go
//
// Letter-frequency scoring heuristic and guess suggestion.
// A word earns (FrequencyBase - rank) per distinct letter, where rank is
// the letter's position in freqOrder (most to least common in English),
// plus DistinctBonus when no letter repeats. Greedy and cheap; this is
// deliberately not an information-theoretic optimizer.

package solver

// freqOrder lists the 26 letters from most to least common English usage.
const freqOrder = "etaoinshrdlcumwfgypbvkjxqz"

// freqRank maps letter index (b - 'a') to its 0-based rank in freqOrder.
var freqRank = func() [26]int {
	var r [26]int
	for i := range r {
		r[i] = -1
	}
	for rank := 0; rank < len(freqOrder); rank++ {
		r[freqOrder[rank]-'a'] = rank
	}
	return r
}()

// Weights holds the tunable scoring constants. They are heuristic knobs,
// not correctness invariants.
type Weights struct {
	// FrequencyBase is the value a rank-0 letter contributes; each rank
	// down the frequency order contributes one less.
	FrequencyBase float64
	// DistinctBonus is added once when all letters of the word differ.
	DistinctBonus float64
}

// DefaultWeights are the stock constants used by the CLI.
var DefaultWeights = Weights{FrequencyBase: 26, DistinctBonus: 10}

// Score computes the heuristic desirability of word. Repeated letters
// count once; a letter outside a-z contributes nothing. Pure function.
func (wt Weights) Score(word string) float64 {
	var seen [26]bool
	total := 0.0
	distinct := true
	for i := 0; i < len(word); i++ {
		b := word[i]
		if b < 'a' || b > 'z' {
			continue
		}
		j := int(b - 'a')
		if seen[j] {
			distinct = false
			continue
		}
		seen[j] = true
		if rank := freqRank[j]; rank >= 0 {
			total += wt.FrequencyBase - float64(rank)
		}
	}
	if distinct {
		total += wt.DistinctBonus
	}
	return total
}

// Suggest picks the best next guess from the set under wt.
// Returns false for an empty set; the sole member for a singleton;
// otherwise the strictly highest-scoring word, ties broken by insertion
// order so repeated runs suggest identically.
func Suggest(c *Candidates, wt Weights) (string, bool) {
	switch c.Len() {
	case 0:
		return "", false
	case 1:
		return c.words[0], true
	}
	best := c.words[0]
	bestScore := wt.Score(best)
	for _, w := range c.words[1:] {
		if s := wt.Score(w); s > bestScore {
			best, bestScore = w, s
		}
	}
	return best, true
}
