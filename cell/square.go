package cell

import (
	"errors"
	"fmt"
)

const (
	RosetteGlyph    = "\U0001f3f5"
	WhitePieceGlyph = "○"
	BlackPieceGlyph = "●"
	CaptureGlyph    = "⚔"
	AscensionGlyph  = "\U0001f680"
)

var ErrInvalidCellCount = errors.New("invalid cell count")

// InvalidCellCountError is returned when a reserve is given a piece count
// outside [0, 7].
type InvalidCellCountError struct {
	Count int
}

func (e *InvalidCellCountError) Error() string {
	return fmt.Sprintf("%d is not a valid number of pieces, the valid range is [0, %d]",
		e.Count, PiecesPerColor)
}

func (e *InvalidCellCountError) Is(target error) bool {
	return target == ErrInvalidCellCount
}

// A Square holds at most one piece. Whether it is a rosette is fixed by its
// ID; only the status changes during play.
type Square struct {
	id     ID
	status Status
}

func NewSquare(id ID, status Status) Square {
	return Square{id: id, status: status}
}

func (s *Square) ID() ID { return s.id }
func (s *Square) Name() string { return s.id.Name() }
func (s *Square) IsRosette() bool { return s.id.IsRosette() }
func (s *Square) Status() Status { return s.status }
func (s *Square) SetStatus(st Status) { s.status = st }

// DisplayLines renders the square as a 3x3 block of text.
func (s *Square) DisplayLines() [3]string {
	glyph := " "
	switch {
	case s.status == White:
		glyph = WhitePieceGlyph
	case s.status == Black:
		glyph = BlackPieceGlyph
	case s.IsRosette():
		glyph = RosetteGlyph
	}
	return [3]string{"---", "|" + glyph + "|", "---"}
}

// A Reserve counts the pieces waiting to enter, or done with, the track.
type Reserve struct {
	id    ID
	count uint8
}

func NewReserve(id ID, count int) (Reserve, error) {
	if count < 0 || count > PiecesPerColor {
		return Reserve{}, &InvalidCellCountError{Count: count}
	}
	return Reserve{id: id, count: uint8(count)}, nil
}

func (r *Reserve) ID() ID { return r.id }
func (r *Reserve) Name() string { return r.id.Name() }
func (r *Reserve) Count() int { return int(r.count) }

// SetCount replaces the number of pieces in the reserve.
func (r *Reserve) SetCount(count int) error {
	if count < 0 || count > PiecesPerColor {
		return &InvalidCellCountError{Count: count}
	}
	r.count = uint8(count)
	return nil
}

func (r *Reserve) add(delta int) {
	r.count = uint8(int(r.count) + delta)
}

// Increment and Decrement are used when applying moves that are already
// known to be legal, so they do not check bounds.
func (r *Reserve) Increment() { r.add(1) }
func (r *Reserve) Decrement() { r.add(-1) }

func (r *Reserve) DisplayLines() [3]string {
	return [3]string{"   ", fmt.Sprintf(" %d ", r.count), "   "}
}
