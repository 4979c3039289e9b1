package codec

import (
	"errors"
	"fmt"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
)

// The alternate layout, least significant bit first:
//
//	bits  0-27  two bits per square along white's track, W1 to W14
//	bits 28-55  two bits per square along black's track, B1 to B14
//	bits 56-58  pieces in WS
//	bits 59-61  pieces in BS
//	bits 62-63  outcome: 01 white won, 10 black won, 11 in progress
//
// The shared squares 5 to 12 appear in both halves. End reserves are not
// stored; they hold whatever pieces are not accounted for elsewhere.
const (
	whiteTrackShift = 0
	blackTrackShift = 28
	wsShift         = 56
	bsShift         = 59
	outcomeShift    = 62

	trackFieldBits = 2
	trackFieldMask = (1 << trackFieldBits) - 1
	startMask      = 0b111

	// Each half's copy of the shared squares.
	whitePublicShift = whiteTrackShift + 4*trackFieldBits
	blackPublicShift = blackTrackShift + 4*trackFieldBits
	publicMask       = (1 << (8 * trackFieldBits)) - 1

	outcomeWhiteWon   = 0b01
	outcomeBlackWon   = 0b10
	outcomeInProgress = 0b11

	// AlternateLogicalMask covers the bits of an alternate seed that
	// describe the position itself, leaving out the outcome.
	AlternateLogicalMask uint64 = 1<<outcomeShift - 1
)

var halves = []struct {
	color cell.Status
	shift int
}{
	{cell.White, whiteTrackShift},
	{cell.Black, blackTrackShift},
}

var ErrMirrorMismatch = errors.New("shared squares differ between the white and black halves")

type alternate struct{}

func (alternate) Name() string { return "alternate" }
func (alternate) Width() int { return 64 }

func (alternate) Encode(b *board.Board) uint64 {
	var seed uint64
	switch b.Winner() {
	case cell.White:
		seed |= outcomeWhiteWon << outcomeShift
	case cell.Black:
		seed |= outcomeBlackWon << outcomeShift
	default:
		seed |= outcomeInProgress << outcomeShift
	}
	seed |= uint64(b.Count(cell.WS)) << wsShift
	seed |= uint64(b.Count(cell.BS)) << bsShift
	for _, h := range halves {
		for i, id := range cell.Track(h.color) {
			seed |= b.StatusOf(id).Bits() << (h.shift + i*trackFieldBits)
		}
	}
	return seed
}

// Decode reads an alternate seed. The outcome bits are ignored. With verify
// set, the two copies of the shared squares must agree and private squares
// may only hold their owner's pieces. A seed implying a negative number of
// pieces in an end reserve is always rejected.
func (alternate) Decode(seed uint64, verify bool) (*board.Board, error) {
	if verify && seed>>whitePublicShift&publicMask != seed>>blackPublicShift&publicMask {
		return nil, fmt.Errorf("%w: seed %d", ErrMirrorMismatch, seed)
	}
	b, err := board.Decode(0, false)
	if err != nil {
		return nil, err
	}
	field := func(shift, i int) (cell.Status, error) {
		return cell.StatusFromBits(seed >> (shift + i*trackFieldBits) & trackFieldMask)
	}

	for _, h := range halves {
		color := h.color
		for i, id := range cell.Track(color) {
			if id.IsPublic() {
				continue
			}
			st, err := field(h.shift, i)
			if err != nil && verify {
				return nil, fmt.Errorf("square %v: %w", id, err)
			}
			if st != color {
				if verify && st != cell.Empty {
					return nil, fmt.Errorf("square %v cannot hold a %v piece", id, st)
				}
				continue
			}
			if err := b.SetStatus(id, color); err != nil {
				return nil, err
			}
		}
	}
	for i, id := range cell.Track(cell.White) {
		if !id.IsPublic() {
			continue
		}
		st, err := field(whiteTrackShift, i)
		if err != nil {
			return nil, fmt.Errorf("square %v: %w", id, err)
		}
		if err := b.SetStatus(id, st); err != nil {
			return nil, err
		}
	}

	starts := map[cell.Status]int{
		cell.White: int(seed >> wsShift & startMask),
		cell.Black: int(seed >> bsShift & startMask),
	}
	for _, color := range []cell.Status{cell.White, cell.Black} {
		start := starts[color]
		onBoard := b.PieceCount(color)
		end := cell.PiecesPerColor - onBoard - start
		if end < 0 {
			return nil, &board.InvalidPieceCountError{Color: color, Actual: onBoard + start}
		}
		if err := b.SetCount(cell.StartReserve(color), start); err != nil {
			return nil, err
		}
		if err := b.SetCount(cell.EndReserve(color), end); err != nil {
			return nil, err
		}
	}
	return b, nil
}
