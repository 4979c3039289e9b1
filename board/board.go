// Package board holds the state of a Royal Game of Ur board and the rules for
// moving pieces around it.
package board

import (
	"errors"
	"fmt"

	"github.com/domino14/royalur/cell"
)

// DefaultSeed is the canonical seed of a board with all fourteen pieces
// waiting in their start reserves.
const DefaultSeed uint64 = 122138132480

// Canonical seed layout, least significant bit first.
const (
	whitePrivateShift = 0
	blackPrivateShift = 6
	publicShift       = 12
	reserveShift      = 28

	publicFieldBits  = 2
	reserveFieldBits = 3

	publicFieldMask  = (1 << publicFieldBits) - 1
	reserveFieldMask = (1 << reserveFieldBits) - 1

	// SeedBits is the width of a canonical seed.
	SeedBits = reserveShift + cell.NumReserves*reserveFieldBits
)

var ErrInvalidPieceCount = errors.New("invalid piece count")

// InvalidPieceCountError is returned when a color does not have exactly
// seven pieces on the board and in its reserves.
type InvalidPieceCountError struct {
	Color  cell.Status
	Actual int
}

func (e *InvalidPieceCountError) Error() string {
	return fmt.Sprintf("invalid total number of %v pieces (%d expected, %d actual)",
		e.Color, cell.PiecesPerColor, e.Actual)
}

func (e *InvalidPieceCountError) Is(target error) bool {
	return target == ErrInvalidPieceCount
}

// Board owns the twenty squares and four reserves of a game in progress.
// The zero value is not usable; build one with New or Decode.
type Board struct {
	squares  [cell.NumSquares]cell.Square
	reserves [cell.NumReserves]cell.Reserve
}

func empty() *Board {
	b := &Board{}
	for i := range b.squares {
		b.squares[i] = cell.NewSquare(cell.ID(i), cell.Empty)
	}
	for i := range b.reserves {
		// A count of zero can never fail.
		b.reserves[i], _ = cell.NewReserve(cell.WS+cell.ID(i), 0)
	}
	return b
}

// New returns the starting board.
func New() *Board {
	b, err := Decode(DefaultSeed, true)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode unpacks a canonical seed. With verify set, a board that does not
// hold exactly seven pieces of each color is rejected with an
// *InvalidPieceCountError, checking white first.
func Decode(seed uint64, verify bool) (*Board, error) {
	if seed>>SeedBits != 0 {
		return nil, fmt.Errorf("seed %d does not fit in %d bits", seed, SeedBits)
	}
	b := empty()
	for i, id := range cell.PrivateSquares(cell.White) {
		if seed>>(whitePrivateShift+i)&1 == 1 {
			b.squares[id].SetStatus(cell.White)
		}
	}
	for i, id := range cell.PrivateSquares(cell.Black) {
		if seed>>(blackPrivateShift+i)&1 == 1 {
			b.squares[id].SetStatus(cell.Black)
		}
	}
	for i, id := range cell.PublicSquares() {
		bits := seed >> (publicShift + i*publicFieldBits) & publicFieldMask
		st, err := cell.StatusFromBits(bits)
		if err != nil {
			return nil, fmt.Errorf("square %v: %w", id, err)
		}
		b.squares[id].SetStatus(st)
	}
	for i := range b.reserves {
		count := seed >> (reserveShift + i*reserveFieldBits) & reserveFieldMask
		// Three bits always fit within [0, 7].
		b.reserves[i].SetCount(int(count))
	}
	if verify {
		if err := b.Verify(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Verify checks that each color has exactly seven pieces.
func (b *Board) Verify() error {
	for _, color := range []cell.Status{cell.White, cell.Black} {
		if n := b.PieceCount(color); n != cell.PiecesPerColor {
			return &InvalidPieceCountError{Color: color, Actual: n}
		}
	}
	return nil
}

// Encode packs the board into its canonical seed.
func (b *Board) Encode() uint64 {
	var seed uint64
	for i, id := range cell.PrivateSquares(cell.White) {
		if b.squares[id].Status() != cell.Empty {
			seed |= 1 << (whitePrivateShift + i)
		}
	}
	for i, id := range cell.PrivateSquares(cell.Black) {
		if b.squares[id].Status() != cell.Empty {
			seed |= 1 << (blackPrivateShift + i)
		}
	}
	for i, id := range cell.PublicSquares() {
		seed |= b.squares[id].Status().Bits() << (publicShift + i*publicFieldBits)
	}
	for i := range b.reserves {
		seed |= uint64(b.reserves[i].Count()) << (reserveShift + i*reserveFieldBits)
	}
	return seed
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Equal compares two boards by their encodings.
func (b *Board) Equal(o *Board) bool {
	return b.Encode() == o.Encode()
}

// Square returns the square with the given ID. Reserve IDs are out of range
// and panic.
func (b *Board) Square(id cell.ID) *cell.Square {
	return &b.squares[id]
}

// Reserve returns the reserve with the given ID. It panics for squares.
func (b *Board) Reserve(id cell.ID) *cell.Reserve {
	return &b.reserves[id-cell.WS]
}

// StatusOf is the occupancy of a square. Reserves are always Empty.
func (b *Board) StatusOf(id cell.ID) cell.Status {
	if id.IsReserve() {
		return cell.Empty
	}
	return b.squares[id].Status()
}

// Count is the number of pieces in a reserve, and 0 or 1 for a square.
func (b *Board) Count(id cell.ID) int {
	if id.IsReserve() {
		return b.reserves[id-cell.WS].Count()
	}
	if b.squares[id].Status() == cell.Empty {
		return 0
	}
	return 1
}

// SetStatus places or removes a piece directly. It is meant for tooling and
// tests; nothing checks that the result is reachable in play.
func (b *Board) SetStatus(id cell.ID, st cell.Status) error {
	if id.IsReserve() {
		return fmt.Errorf("%v is a reserve, not a square", id)
	}
	if owner := id.Owner(); owner != cell.Empty && st != cell.Empty && st != owner {
		return fmt.Errorf("%v cannot hold a %v piece", id, st)
	}
	b.squares[id].SetStatus(st)
	return nil
}

// SetCount sets the number of pieces in a reserve.
func (b *Board) SetCount(id cell.ID, count int) error {
	if !id.IsReserve() {
		return fmt.Errorf("%v is a square, not a reserve", id)
	}
	return b.reserves[id-cell.WS].SetCount(count)
}

// PieceCount totals a color's pieces on its track and in both its reserves.
func (b *Board) PieceCount(color cell.Status) int {
	total := b.Count(cell.StartReserve(color)) + b.Count(cell.EndReserve(color))
	for _, id := range cell.Track(color) {
		if b.squares[id].Status() == color {
			total++
		}
	}
	return total
}

// IsEndState reports whether either color has brought all of its pieces
// home.
func (b *Board) IsEndState() bool {
	return b.Winner() != cell.Empty
}

// Winner returns the color whose end reserve is full, or Empty if the game
// is still going.
func (b *Board) Winner() cell.Status {
	switch {
	case b.Count(cell.WE) == cell.PiecesPerColor:
		return cell.White
	case b.Count(cell.BE) == cell.PiecesPerColor:
		return cell.Black
	}
	return cell.Empty
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(%d)", b.Encode())
}
