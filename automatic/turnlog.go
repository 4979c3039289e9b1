package automatic

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/domino14/royalur/game"
)

var turnLogHeader = []string{
	"gameID", "white", "black", "turn", "player", "color", "roll", "move", "flags", "seed",
}

// TurnLogger is a game observer that writes one CSV row per turn.
type TurnLogger struct {
	game.NopObserver
	w   *csv.Writer
	err error
}

// NewTurnLogger writes the CSV header and returns a logger ready to be
// attached to games.
func NewTurnLogger(w io.Writer) (*TurnLogger, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(turnLogHeader); err != nil {
		return nil, err
	}
	return &TurnLogger{w: cw}, nil
}

func (l *TurnLogger) MoveApplied(g *game.Game, t game.Turn) {
	if l.err != nil {
		return
	}
	white, black := g.Players()
	color, mv, flags := "black", "pass", ""
	if t.White {
		color = "white"
	}
	if !t.Passed() {
		mv = t.Move.From().Name() + "-" + t.Move.To().Name()
		flags = t.Move.Flags().String()
	}
	l.err = l.w.Write([]string{
		g.ID().String(),
		white.Name(),
		black.Name(),
		strconv.Itoa(t.Number),
		t.Player,
		color,
		strconv.Itoa(t.Roll),
		mv,
		flags,
		strconv.FormatUint(t.Seed, 10),
	})
}

// Flush writes any buffered rows and returns the first error seen.
func (l *TurnLogger) Flush() error {
	l.w.Flush()
	if l.err != nil {
		return l.err
	}
	return l.w.Error()
}
