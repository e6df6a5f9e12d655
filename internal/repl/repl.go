// Package repl plays the adventure on a terminal.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"GO-dungeon/internal/game"
)

const separator = "--------------------------------------------------"

// Game is the part of *game.Game the terminal drives.
type Game interface {
	State() game.State
	Start(ctx context.Context) error
	Submit(ctx context.Context, text string) (game.Message, error)
}

// REPL reads player actions line by line and prints the narrator's replies.
type REPL struct {
	game    Game
	prompts game.Prompts
	in      io.Reader
	out     io.Writer
}

func New(g Game, prompts game.Prompts, in io.Reader, out io.Writer) *REPL {
	return &REPL{game: g, prompts: prompts, in: in, out: out}
}

// Run starts the adventure and loops until the input ends or ctx is done.
// It returns the start error when the adventure cannot begin.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Generating opening scene...")
	if err := r.game.Start(ctx); err != nil {
		r.printLast()
		return err
	}
	r.printLast()

	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}

		input := scanner.Text()
		if strings.TrimSpace(input) == "" {
			continue
		}
		fmt.Fprintln(r.out, r.prompts.Writing)
		_, err := r.game.Submit(ctx, input)
		switch {
		case err == nil:
			r.printLast()
		case errors.Is(err, game.ErrInvalidInput):
		default:
			r.printFailure(err)
		}
	}
	return scanner.Err()
}

func (r *REPL) printLast() {
	msgs := r.game.State().Messages
	if len(msgs) == 0 {
		return
	}
	r.printBlock(msgs[len(msgs)-1].Text)
}

// printFailure shows the diagnostic the game produced for a failed turn.
func (r *REPL) printFailure(err error) {
	st := r.game.State()
	switch {
	case st.Notice != "":
		r.printBlock(st.Notice)
	case len(st.Messages) > 0 && st.Messages[len(st.Messages)-1].Role == game.RoleNarrator:
		r.printBlock(st.Messages[len(st.Messages)-1].Text)
	default:
		r.printBlock(err.Error())
	}
}

func (r *REPL) printBlock(text string) {
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, text)
	fmt.Fprintln(r.out, separator)
}
