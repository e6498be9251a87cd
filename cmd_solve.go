// cmd_solve.go
//
// Interactive solver loop. Each round: show the candidate count and a
// suggested guess, read the guess actually played and the feedback the
// puzzle showed for it, then filter the candidate set. `list` prints the
// surviving candidates; quit/ctrl-d ends the session.

package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

func runSolve(cmd *cobra.Command, args []string) error {
	list, source, err := loadVocabulary()
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Int("words", len(list)).Msg("vocabulary loaded")

	c := newConsole()
	candidates := solver.NewCandidates(list)
	c.printf("%s\n", ui.Muted("loaded "+source))
	c.println(ui.Muted("enter each guess you played and its feedback (g=green y=yellow b=grey); `list` shows candidates, `quit` exits"))

	for {
		c.printf("\n%d candidates remain\n", candidates.Len())
		if suggestion, ok := solver.Suggest(candidates, solver.DefaultWeights); ok {
			c.printf("suggested guess: %s\n", ui.Suggestion(suggestion))
		} else {
			c.println(ui.Warn("no candidates remain: the feedback so far is contradictory or the answer is not in the loaded vocabulary"))
			return nil
		}

		guess, ok := readGuessOrList(c, candidates)
		if !ok {
			return nil
		}
		pattern, ok := c.readPattern("feedback>")
		if !ok {
			return nil
		}

		c.println(ui.Tiles(guess, pattern))
		if pattern.AllCorrect() {
			c.println(ui.Suggestion(guess) + " it is. Nice.")
			return nil
		}

		candidates = candidates.Filter(guess, pattern)
		log.Debug().Str("guess", guess).Str("pattern", pattern.String()).
			Int("remaining", candidates.Len()).Msg("filtered")
	}
}

// readGuessOrList reads the played guess, handling the `list` command
// inline so the user can inspect candidates between rounds.
func readGuessOrList(c *console, candidates *solver.Candidates) (string, bool) {
	for {
		line, ok := c.readLine("guess>")
		if !ok {
			return "", false
		}
		if strings.EqualFold(line, "list") || line == "p" {
			printCandidates(c, candidates)
			continue
		}
		w, err := feedback.ParseWord(line)
		if err != nil {
			c.println(ui.Error(err.Error()))
			continue
		}
		return w, true
	}
}

// printCandidates lists surviving words, capped so a barely-filtered set
// does not flood the terminal.
func printCandidates(c *console, candidates *solver.Candidates) {
	const maxListed = 50
	ws := candidates.Words()
	for i, w := range ws {
		if i == maxListed {
			c.println(ui.Muted("... and more"))
			return
		}
		c.println("  " + w)
	}
}
