package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/royalur/cell"
)

// Flags describe what a move does besides relocating a piece. A move with no
// flags is a plain move.
type Flags uint8

const (
	Onboard Flags = 1 << iota
	Rosette
	Capture
	Ascension

	Plain Flags = 0
)

var ErrImpossibleMove = errors.New("impossible move")

func (f Flags) String() string {
	if f == Plain {
		return "plain"
	}
	parts := make([]string, 0, 2)
	if f&Onboard != 0 {
		parts = append(parts, "onboard")
	}
	if f&Rosette != 0 {
		parts = append(parts, "rosette")
	}
	if f&Capture != 0 {
		parts = append(parts, "capture")
	}
	if f&Ascension != 0 {
		parts = append(parts, "ascension")
	}
	return strings.Join(parts, "|")
}

// Move relocates one piece from one cell to another. Moves are immutable once
// built.
type Move struct {
	from  cell.ID
	to    cell.ID
	flags Flags
}

// New builds a move, rejecting combinations that can never occur on a board.
func New(from, to cell.ID, flags Flags) (*Move, error) {
	if err := validate(from, to, flags); err != nil {
		return nil, err
	}
	return &Move{from: from, to: to, flags: flags}, nil
}

// NewUnchecked builds a move without validation. The move generator uses
// this, since everything it emits is legal by construction.
func NewUnchecked(from, to cell.ID, flags Flags) *Move {
	return &Move{from: from, to: to, flags: flags}
}

// FromNames is like New but takes cell names, e.g. FromNames("W4", "8", Rosette).
func FromNames(from, to string, flags Flags) (*Move, error) {
	f, err := cell.ByName(from)
	if err != nil {
		return nil, err
	}
	t, err := cell.ByName(to)
	if err != nil {
		return nil, err
	}
	return New(f, t, flags)
}

func validate(from, to cell.ID, flags Flags) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: unknown cell in %v -> %v", ErrImpossibleMove, from, to)
	}
	exclusive := 0
	for _, f := range []Flags{Rosette, Capture, Ascension} {
		if flags&f != 0 {
			exclusive++
		}
	}
	if exclusive > 1 {
		return fmt.Errorf("%w: %v -> %v cannot be %v at once",
			ErrImpossibleMove, from, to, flags)
	}
	if from == to {
		return fmt.Errorf("%w: %v -> %v does not go anywhere", ErrImpossibleMove, from, to)
	}
	fo, to2 := from.Owner(), to.Owner()
	if fo != cell.Empty && to2 != cell.Empty && fo != to2 {
		return fmt.Errorf("%w: %v and %v belong to different players",
			ErrImpossibleMove, from, to)
	}
	if flags&Onboard != 0 && !from.IsStart() {
		return fmt.Errorf("%w: onboarding from %v, which is not a start reserve",
			ErrImpossibleMove, from)
	}
	if flags&Ascension != 0 && !to.IsEnd() {
		return fmt.Errorf("%w: ascending to %v, which is not an end reserve",
			ErrImpossibleMove, to)
	}
	if flags&Rosette != 0 && !to.IsRosette() {
		return fmt.Errorf("%w: %v is not a rosette", ErrImpossibleMove, to)
	}
	return nil
}

func (m *Move) From() cell.ID { return m.from }
func (m *Move) To() cell.ID { return m.to }
func (m *Move) Flags() Flags { return m.flags }

func (m *Move) IsOnboard() bool { return m.flags&Onboard != 0 }
func (m *Move) IsRosette() bool { return m.flags&Rosette != 0 }
func (m *Move) IsCapture() bool { return m.flags&Capture != 0 }
func (m *Move) IsAscension() bool { return m.flags&Ascension != 0 }

// Equals compares origin and destination. Flags are descriptive only and do
// not take part.
func (m *Move) Equals(o *Move) bool {
	return m.from == o.from && m.to == o.to
}

// String is the short form used in move lists, e.g. "W4 -> 8 🏵".
func (m *Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.from.Name())
	sb.WriteString(" -> ")
	sb.WriteString(m.to.Name())
	sb.WriteString(" ")
	if m.IsRosette() {
		sb.WriteString(cell.RosetteGlyph)
	}
	if m.IsCapture() {
		sb.WriteString(cell.CaptureGlyph)
	}
	if m.IsAscension() {
		sb.WriteString(cell.AscensionGlyph)
	}
	return sb.String()
}

// Description is a sentence describing the move for a human reader.
func (m *Move) Description() string {
	var desc string
	switch {
	case m.IsOnboard() && !m.IsRosette():
		desc = fmt.Sprintf("Moved a piece onto the board at %s.", m.to.Name())
	case m.IsAscension():
		return fmt.Sprintf("Ascended a piece from %s! %s", m.from.Name(), cell.AscensionGlyph)
	default:
		desc = fmt.Sprintf("Moved from %s to %s.", m.from.Name(), m.to.Name())
	}
	if m.IsRosette() {
		desc += " Claimed a rosette! " + cell.RosetteGlyph
	}
	if m.IsCapture() {
		desc += " Captured a piece! " + cell.CaptureGlyph
	}
	return desc
}
