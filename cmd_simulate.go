// cmd_simulate.go
//
// Self-play mode: pick a hidden word (random, daily, or --answer), then
// repeatedly take the solver's own suggestion, compute its feedback, and
// filter. Ends when the suggestion hits, or the set empties (which only
// happens if the hidden word is outside the vocabulary).

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/ui"
	"github.com/robalobadob/wordle-helper/internal/words"
)

func runSimulate(cmd *cobra.Command, args []string) error {
	list, source, err := loadVocabulary()
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Int("words", len(list)).Msg("vocabulary loaded")

	answer, err := pickAnswer(list)
	if err != nil {
		return err
	}

	c := newConsole()
	candidates := solver.NewCandidates(list)
	for round := 1; ; round++ {
		guess, ok := solver.Suggest(candidates, solver.DefaultWeights)
		if !ok {
			c.println(ui.Warn("no candidates remain; the hidden word is not in the vocabulary"))
			return nil
		}
		pattern := feedback.Compute(guess, answer)
		c.printf("round %d: %s  %s\n", round, ui.Tiles(guess, pattern), ui.Muted(fmt.Sprintf("%d candidates", candidates.Len())))
		if pattern.AllCorrect() {
			c.printf("solved in %d rounds\n", round)
			return nil
		}
		candidates = candidates.Filter(guess, pattern)
	}
}

// pickAnswer resolves the hidden word for the simulation.
func pickAnswer(list []string) (string, error) {
	if simAnswer != "" {
		return feedback.ParseWord(simAnswer)
	}
	if simDaily {
		return words.Daily(list, time.Now(), getEnv("DAILY_SALT", "wordle-helper"))
	}
	return words.Random(list)
}
