// cmd_words.go
//
// Word source diagnostics: where the vocabulary came from, how many
// entries survived normalization, and the top-scoring starter words
// under the default heuristic weights.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

func runWords(cmd *cobra.Command, args []string) error {
	list, source, err := loadVocabulary()
	if err != nil {
		return err
	}
	fmt.Printf("source: %s\nwords:  %d\n", source, len(list))

	if topStarter <= 0 {
		return nil
	}

	type scored struct {
		word  string
		score float64
	}
	ranked := make([]scored, 0, len(list))
	for _, w := range list {
		ranked = append(ranked, scored{w, solver.DefaultWeights.Score(w)})
	}
	// Stable keeps insertion order between equal scores, matching the
	// tie-break used by Suggest.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	n := topStarter
	if n > len(ranked) {
		n = len(ranked)
	}
	fmt.Printf("top %d starters:\n", n)
	for _, r := range ranked[:n] {
		fmt.Printf("  %s  %s\n", ui.Suggestion(r.word), ui.Muted(fmt.Sprintf("%.0f", r.score)))
	}
	return nil
}
