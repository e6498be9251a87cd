// internal/ui/ui.go
//
// Terminal presentation for the helper: lipgloss styles for feedback
// tiles (green/yellow/grey), prompts, and errors. Pure formatting; all
// results come in as structured values from the core packages.

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle-helper/internal/feedback"
)

var (
	tileCorrect = lipgloss.NewStyle().
			Background(lipgloss.Color("#538D4E")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).Padding(0, 1)
	tileMisplaced = lipgloss.NewStyle().
			Background(lipgloss.Color("#B59F3B")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).Padding(0, 1)
	tileAbsent = lipgloss.NewStyle().
			Background(lipgloss.Color("#3A3A3C")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6AAA64")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7")).Bold(true)
)

// Tiles renders word with one colored tile per letter according to p.
func Tiles(word string, p feedback.Pattern) string {
	var b strings.Builder
	for i := 0; i < len(word) && i < feedback.WordLen; i++ {
		letter := strings.ToUpper(string(word[i]))
		switch p[i] {
		case feedback.Correct:
			b.WriteString(tileCorrect.Render(letter))
		case feedback.Misplaced:
			b.WriteString(tileMisplaced.Render(letter))
		default:
			b.WriteString(tileAbsent.Render(letter))
		}
		if i < feedback.WordLen-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Prompt formats an input prompt.
func Prompt(s string) string { return promptStyle.Render(s) + " " }

// Muted formats secondary information such as candidate counts.
func Muted(s string) string { return mutedStyle.Render(s) }

// Warn formats a recoverable condition, e.g. contradictory feedback.
func Warn(s string) string { return warnStyle.Render(s) }

// Error formats a rejected-input message.
func Error(s string) string { return errStyle.Render(s) }

// Suggestion formats the recommended next guess.
func Suggestion(s string) string { return suggestStyle.Render(strings.ToUpper(s)) }
