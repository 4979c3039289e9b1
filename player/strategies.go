package player

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/move"
)

// First always plays the first move offered. It is mostly useful in tests,
// since its games are fully determined by the dice.
type First struct{}

func (First) Name() string { return "first" }

func (First) SelectMove(_ *board.Board, moves []*move.Move, _ bool) *move.Move {
	return moves[0]
}

// Random plays any move with equal probability.
type Random struct {
	rng *frand.RNG
}

func (r *Random) Name() string { return "random" }

func (r *Random) SelectMove(_ *board.Board, moves []*move.Move, _ bool) *move.Move {
	return pickRandom(r.rng, moves)
}

// Greedy ascends whenever it can, then takes rosettes, then captures, and
// otherwise moves at random.
type Greedy struct {
	rng *frand.RNG
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) SelectMove(_ *board.Board, moves []*move.Move, _ bool) *move.Move {
	for _, pred := range []func(*move.Move) bool{
		(*move.Move).IsAscension,
		(*move.Move).IsRosette,
		(*move.Move).IsCapture,
	} {
		if m := firstWith(moves, pred); m != nil {
			return m
		}
	}
	return pickRandom(g.rng, moves)
}

// Casper holds the center rosette. It takes the center whenever it can and
// is reluctant to leave it. After that it prefers rosettes, entering pieces
// when the opponent has more pieces in its entry squares, and captures.
type Casper struct {
	rng *frand.RNG
}

func (c *Casper) Name() string { return "casper" }

func (c *Casper) SelectMove(b *board.Board, moves []*move.Move, white bool) *move.Move {
	if m := firstWith(moves, func(m *move.Move) bool { return m.To() == cell.Center }); m != nil {
		return m
	}
	if len(moves) == 1 {
		return moves[0]
	}
	candidates := lo.Filter(moves, func(m *move.Move, _ int) bool {
		return m.From() != cell.Center
	})
	if len(candidates) == 0 {
		candidates = moves
	}

	if m := firstWith(candidates, (*move.Move).IsRosette); m != nil {
		return m
	}

	color := cell.ColorFor(white)
	if atBack(b, color.Opponent()) > atBack(b, color) {
		if m := firstWith(candidates, (*move.Move).IsOnboard); m != nil {
			return m
		}
	}
	if m := firstWith(candidates, (*move.Move).IsCapture); m != nil {
		return m
	}
	return pickRandom(c.rng, candidates)
}

// atBack counts a color's pieces on its four entry squares.
func atBack(b *board.Board, color cell.Status) int {
	track := cell.Track(color)
	return lo.CountBy(track[:4], func(id cell.ID) bool {
		return b.StatusOf(id) == color
	})
}
