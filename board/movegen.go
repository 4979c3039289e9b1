package board

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/move"
)

// AvailableMoves lists the legal moves for the given color and dice roll, in
// generation order: onboarding first, then ascension, then moves along the
// track from the entry squares toward the exit. A roll outside [1, 4] is a
// programming error and panics. A finished game has no moves.
func (b *Board) AvailableMoves(white bool, roll int) []*move.Move {
	if roll < 1 || roll > 4 {
		panic(fmt.Sprintf("roll %d is outside [1, 4]", roll))
	}
	if b.IsEndState() {
		return []*move.Move{}
	}
	color := cell.ColorFor(white)
	opponent := color.Opponent()
	track := cell.Track(color)
	moves := make([]*move.Move, 0, 8)

	start := cell.StartReserve(color)
	if entry := track[roll-1]; b.Count(start) > 0 && b.StatusOf(entry) == cell.Empty {
		flags := move.Onboard
		if entry.IsRosette() {
			flags |= move.Rosette
		}
		moves = append(moves, move.NewUnchecked(start, entry, flags))
	}

	if exit := track[cell.TrackLen-roll]; b.StatusOf(exit) == color {
		moves = append(moves, move.NewUnchecked(exit, cell.EndReserve(color), move.Ascension))
	}

	for i := 0; i < cell.TrackLen-roll; i++ {
		from := track[i]
		if b.StatusOf(from) != color {
			continue
		}
		to := track[i+roll]
		switch b.StatusOf(to) {
		case cell.Empty:
			flags := move.Plain
			if to.IsRosette() {
				flags = move.Rosette
			}
			moves = append(moves, move.NewUnchecked(from, to, flags))
		case opponent:
			if to != cell.Center {
				moves = append(moves, move.NewUnchecked(from, to, move.Capture))
				continue
			}
			// The center rosette is safe. A piece that would land on it
			// hops to the square just past it instead, if that is free.
			if beyond := track[i+roll+1]; b.StatusOf(beyond) == cell.Empty {
				moves = append(moves, move.NewUnchecked(from, beyond, move.Plain))
			}
		}
	}

	return lo.UniqBy(moves, func(m *move.Move) move.Key {
		return m.Key()
	})
}
