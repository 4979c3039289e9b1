// Package player holds the strategies that choose which move to play.
package player

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/move"
)

var ErrInvalidPlayer = errors.New("invalid player")

// A Player picks one of the offered moves. It is only asked when at least
// one move is available, and must return one of the moves it was given.
type Player interface {
	Name() string
	SelectMove(b *board.Board, moves []*move.Move, white bool) *move.Move
}

type constructor func(rng *frand.RNG) Player

var registry = map[string]constructor{
	"first":  func(*frand.RNG) Player { return First{} },
	"random": func(rng *frand.RNG) Player { return &Random{rng: rng} },
	"greedy": func(rng *frand.RNG) Player { return &Greedy{rng: rng} },
	"casper": func(rng *frand.RNG) Player { return &Casper{rng: rng} },
}

// New builds a computer player by name. Strategies that break ties randomly
// draw from rng; a nil rng uses a fresh, unseeded generator.
func New(name string, rng *frand.RNG) (Player, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: no player named %q (have %v)", ErrInvalidPlayer, name, Names())
	}
	if rng == nil {
		rng = frand.New()
	}
	return c(rng), nil
}

// Names lists the registered computer players.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

func pickRandom(rng *frand.RNG, moves []*move.Move) *move.Move {
	return moves[rng.Intn(len(moves))]
}

// firstWith returns the first move satisfying pred, or nil.
func firstWith(moves []*move.Move, pred func(*move.Move) bool) *move.Move {
	m, ok := lo.Find(moves, pred)
	if !ok {
		return nil
	}
	return m
}
