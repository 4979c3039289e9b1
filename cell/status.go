package cell

import "fmt"

// Status is the occupancy of a square. The zero value is an empty square.
// White and Black double as the two piece colors throughout the engine.
type Status uint8

const (
	Empty Status = iota
	White
	Black
)

// The bit patterns used by the seed layouts. These are kept apart from the
// enum values so that reordering the constants above can never silently
// change an encoding.
var statusBits = [...]uint64{
	Empty: 0b00,
	White: 0b01,
	Black: 0b10,
}

// Bits returns the two-bit field value for this status.
func (s Status) Bits() uint64 {
	return statusBits[s]
}

// StatusFromBits is the inverse of Bits. The pattern 0b11 is not a status.
func StatusFromBits(bits uint64) (Status, error) {
	switch bits {
	case 0b00:
		return Empty, nil
	case 0b01:
		return White, nil
	case 0b10:
		return Black, nil
	}
	return Empty, fmt.Errorf("%#b is not a valid square status", bits)
}

// Opponent returns the other color. Empty has no opponent.
func (s Status) Opponent() Status {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ColorFor maps a turn flag to its color.
func ColorFor(white bool) Status {
	if white {
		return White
	}
	return Black
}
