package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/domino14/royalur/game"
	"github.com/domino14/royalur/player"
)

// lineReader feeds readline input to a reader, one line at a time.
type lineReader struct {
	l   *readline.Instance
	buf []byte
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.buf) == 0 {
		line, err := r.l.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				return 0, io.EOF
			}
			return 0, err
		}
		r.buf = []byte(line + "\n")
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// narrator prints what the computer player does.
type narrator struct {
	game.NopObserver
	w     io.Writer
	human string
}

func (n narrator) MoveApplied(g *game.Game, t game.Turn) {
	if t.Player == n.human && !t.Passed() {
		return
	}
	switch {
	case t.Roll == 0:
		fmt.Fprintf(n.w, "%s rolled 0 and passes\n", t.Player)
	case t.Passed():
		fmt.Fprintf(n.w, "%s rolled %d but cannot move\n", t.Player, t.Roll)
	default:
		fmt.Fprintf(n.w, "%s rolled %d: %s\n", t.Player, t.Roll, t.Move.Description())
	}
}

func (n narrator) GameEnded(g *game.Game, result game.PlayState) {
	fmt.Fprint(n.w, g.Board().ToDisplayText())
	fmt.Fprintf(n.w, "game over, %v after %d turns\n", result, g.Turn())
}

// vs plays a game from the current board between the person at the shell
// and a computer player.
func (sc *ShellController) vs(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) < 1 || len(cmd.args) > 2 {
		return nil, errors.New("usage: vs <player> [white|black]")
	}
	bot, err := player.New(cmd.args[0], sc.rng)
	if err != nil {
		return nil, err
	}
	humanWhite := true
	if len(cmd.args) == 2 {
		if humanWhite, err = parseColor(cmd.args[1]); err != nil {
			return nil, err
		}
	}
	if sc.board.IsEndState() {
		return nil, game.ErrGameOver
	}
	if sc.l != nil {
		sc.l.SetPrompt("move> ")
		defer sc.l.SetPrompt(prompt)
	}
	name := strings.TrimSpace(cmd.options.String("name"))
	if name == "" {
		name = "you"
	}
	human := player.NewHuman(name, sc.in, sc.out)
	white, black := player.Player(human), bot
	if !humanWhite {
		white, black = bot, human
	}
	g, err := game.NewGame(white, black,
		game.WithSeed(sc.board.Encode()),
		game.WithRNG(sc.rng),
		game.WithObserver(narrator{w: sc.out, human: name}))
	if err != nil {
		return nil, err
	}
	state, err := g.Play()
	sc.board = g.Board()
	sc.lastMoves = nil
	if errors.Is(err, game.ErrInvalidMoveOnBoard) {
		return msg(fmt.Sprintf("game abandoned after %d turns", g.Turn())), nil
	}
	if err != nil {
		return nil, err
	}
	return msg(state.String()), nil
}
