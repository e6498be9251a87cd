// session.go
//
// Line-oriented console helpers shared by the interactive modes.
// Reading stops cleanly on EOF (ctrl-d) or an explicit quit word.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle-helper/internal/feedback"
	"github.com/robalobadob/wordle-helper/internal/ui"
)

type console struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsole() *console {
	return &console{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readLine prompts and returns one trimmed input line.
// ok is false on EOF or when the user types quit/exit/q.
func (c *console) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, ui.Prompt(prompt))
	raw, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", false
		}
		return "", false
	}
	line = strings.TrimSpace(raw)
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return "", false
	}
	return line, true
}

// readWord prompts until a valid 5-letter word is entered.
// Invalid input is reported and reprompted; no state changes.
func (c *console) readWord(prompt string) (string, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return "", false
		}
		w, err := feedback.ParseWord(line)
		if err != nil {
			c.println(ui.Error(err.Error()))
			continue
		}
		return w, true
	}
}

// readPattern prompts until a valid g/y/b feedback string is entered.
func (c *console) readPattern(prompt string) (feedback.Pattern, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return feedback.Pattern{}, false
		}
		p, err := feedback.ParsePattern(line)
		if err != nil {
			c.println(ui.Error(err.Error()))
			continue
		}
		return p, true
	}
}
