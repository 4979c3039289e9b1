package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/move"
)

// Human asks a person to choose, listing the moves on out and reading a
// 1-based choice from in. If in runs dry it returns nil, which the game
// treats as an invalid move.
type Human struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

func NewHuman(name string, in io.Reader, out io.Writer) *Human {
	return &Human{name: name, in: bufio.NewReader(in), out: out}
}

func (h *Human) Name() string { return h.name }

func (h *Human) SelectMove(b *board.Board, moves []*move.Move, white bool) *move.Move {
	fmt.Fprint(h.out, b.ToDisplayText())
	for i, m := range moves {
		fmt.Fprintf(h.out, "%d: %v\n", i+1, m)
	}
	for {
		fmt.Fprint(h.out, "Please select a move: ")
		line, err := h.in.ReadString('\n')
		if choice, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil &&
			choice >= 1 && choice <= len(moves) {
			return moves[choice-1]
		}
		if err != nil {
			return nil
		}
	}
}
