// cmd_art.go
//
// Art mode: the hidden word is fixed and known, and the question runs the
// other way round — which playable words would light up a chosen feedback
// pattern against it? Useful for painting deliberate tile pictures on the
// shared board. Reuses the feedback computation; the candidate set is
// never narrowed here.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-helper/internal/solver"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

func runArt(cmd *cobra.Command, args []string) error {
	list, source, err := loadVocabulary()
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Int("words", len(list)).Msg("vocabulary loaded")

	c := newConsole()
	candidates := solver.NewCandidates(list)
	c.println(ui.Muted("enter the target word and the pattern you want to paint (g=green y=yellow b=grey); `quit` exits"))

	for {
		target, ok := c.readWord("target>")
		if !ok {
			return nil
		}
		desired, ok := c.readPattern("pattern>")
		if !ok {
			return nil
		}

		matches := candidates.FindMatching(target, desired)
		if len(matches) == 0 {
			c.println(ui.Warn("no word in the vocabulary paints that pattern"))
			continue
		}
		c.printf("%d matching words:\n", len(matches))
		for _, w := range matches {
			c.println("  " + ui.Tiles(w, desired))
		}
	}
}
