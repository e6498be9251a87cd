// internal/feedback/compute_test.go
//
// Two-pass computation tests: concrete duplicate-letter scenarios plus
// randomized checks of the structural properties (exact-match count,
// per-letter mark ceiling, agreement with the consistency predicate).

package feedback

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   string // g/y/b encoding
	}{
		{
			name:   "all correct",
			guess:  "crane",
			answer: "crane",
			want:   "ggggg",
		},
		{
			name:   "no shared letters",
			guess:  "fuzzy",
			answer: "crane",
			want:   "bbbbb",
		},
		{
			name:   "simple misplacements",
			guess:  "alert",
			answer: "later",
			want:   "yyyyy",
		},
		{
			name:   "doubled guess letter single answer occurrence",
			guess:  "speed",
			answer: "abide",
			want:   "bbyby",
		},
		{
			name:   "doubled guess letter doubled answer occurrence",
			guess:  "spree",
			answer: "erase",
			want:   "ybyyg",
		},
		{
			name:   "exact match consumes before misplaced",
			guess:  "eerie",
			answer: "where",
			want:   "ybybg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.guess, tt.answer)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// randomWord draws 5 letters from a deliberately small alphabet so
// repeated letters show up constantly.
func randomWord(rng *rand.Rand) string {
	const alphabet = "abcde"
	var b strings.Builder
	for i := 0; i < WordLen; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func TestComputeExactMatchCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 5000; n++ {
		guess, answer := randomWord(rng), randomWord(rng)
		p := Compute(guess, answer)

		wantCorrect := 0
		for i := 0; i < WordLen; i++ {
			if guess[i] == answer[i] {
				wantCorrect++
			}
		}
		gotCorrect := 0
		for _, s := range p {
			if s == Correct {
				gotCorrect++
			}
		}
		require.Equalf(t, wantCorrect, gotCorrect, "guess=%s answer=%s pattern=%s", guess, answer, p)
	}
}

func TestComputeMarksNeverExceedAnswerCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 5000; n++ {
		guess, answer := randomWord(rng), randomWord(rng)
		p := Compute(guess, answer)

		// Correct+Misplaced marks for a letter may not exceed its count
		// in the answer.
		var marked, inAnswer [26]int
		for i := 0; i < WordLen; i++ {
			inAnswer[idx(answer[i])]++
			if p[i] != Absent {
				marked[idx(guess[i])]++
			}
		}
		for l := 0; l < 26; l++ {
			require.LessOrEqualf(t, marked[l], inAnswer[l],
				"letter %c over-marked: guess=%s answer=%s pattern=%s", 'a'+l, guess, answer, p)
		}
	}
}

func TestAnswerAlwaysConsistentWithOwnFeedback(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 5000; n++ {
		guess, answer := randomWord(rng), randomWord(rng)
		p := Compute(guess, answer)
		require.Truef(t, Consistent(answer, guess, p),
			"answer rejected by its own feedback: guess=%s answer=%s pattern=%s", guess, answer, p)
	}
}

func TestComputeIsPure(t *testing.T) {
	a := Compute("spree", "erase")
	b := Compute("spree", "erase")
	assert.Equal(t, a, b)
}
