// Package cell describes the individual locations of a Royal Game of Ur
// board: the twenty squares pieces stand on and the four off-board reserves.
//
// Locations are laid out as follows:
//
//	white (W):  W4 W3 W2 W1 WS WE  W14  W13
//	public:      5  6  7  8  9 10   11   12
//	black (B):  B4 B3 B2 B1 BS BE  B14  B13
package cell

import "fmt"

// ID identifies one of the 24 board locations. IDs are ordered the way the
// canonical seed lays them out.
type ID uint8

const (
	W1 ID = iota
	W2
	W3
	W4
	W13
	W14
	B1
	B2
	B3
	B4
	B13
	B14
	P5
	P6
	P7
	P8
	P9
	P10
	P11
	P12
	WS
	WE
	BS
	BE

	NumIDs
)

const (
	// NumSquares is the number of locations that hold a single piece.
	NumSquares = int(WS)

	// NumReserves is the number of start/end reserves.
	NumReserves = int(NumIDs - WS)

	// TrackLen is the number of squares a piece crosses between its
	// start and end reserves.
	TrackLen = 14

	// PiecesPerColor is the number of pieces each side owns.
	PiecesPerColor = 7

	// Center is the shared rosette. Pieces on it cannot be captured.
	Center = P8
)

var names = [NumIDs]string{
	W1: "W1", W2: "W2", W3: "W3", W4: "W4", W13: "W13", W14: "W14",
	B1: "B1", B2: "B2", B3: "B3", B4: "B4", B13: "B13", B14: "B14",
	P5: "5", P6: "6", P7: "7", P8: "8", P9: "9", P10: "10", P11: "11", P12: "12",
	WS: "WS", WE: "WE", BS: "BS", BE: "BE",
}

var byName map[string]ID

func init() {
	byName = make(map[string]ID, NumIDs)
	for id, name := range names {
		byName[name] = ID(id)
	}
}

var (
	whitePrivate = [...]ID{W1, W2, W3, W4, W13, W14}
	blackPrivate = [...]ID{B1, B2, B3, B4, B13, B14}
	public       = [...]ID{P5, P6, P7, P8, P9, P10, P11, P12}

	whiteTrack = [TrackLen]ID{W1, W2, W3, W4, P5, P6, P7, P8, P9, P10, P11, P12, W13, W14}
	blackTrack = [TrackLen]ID{B1, B2, B3, B4, P5, P6, P7, P8, P9, P10, P11, P12, B13, B14}
)

// ByName looks up a location by its name, e.g. "W4", "8" or "BE".
func ByName(name string) (ID, error) {
	id, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown cell %q", name)
	}
	return id, nil
}

func (id ID) Name() string {
	if id >= NumIDs {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	return names[id]
}

func (id ID) String() string {
	return id.Name()
}

func (id ID) Valid() bool {
	return id < NumIDs
}

// IsReserve is true for WS, WE, BS and BE.
func (id ID) IsReserve() bool {
	return id >= WS && id < NumIDs
}

func (id ID) IsStart() bool {
	return id == WS || id == BS
}

func (id ID) IsEnd() bool {
	return id == WE || id == BE
}

func (id ID) IsPublic() bool {
	return id >= P5 && id <= P12
}

// IsRosette reports whether landing on this location earns another turn.
func (id ID) IsRosette() bool {
	switch id {
	case W4, B4, P8, W14, B14:
		return true
	}
	return false
}

// Owner is the only color allowed on this location. Public squares return
// Empty since both colors share them. Reserves belong to their color.
func (id ID) Owner() Status {
	switch {
	case id <= W14, id == WS, id == WE:
		return White
	case id <= B14, id == BS, id == BE:
		return Black
	}
	return Empty
}

// Track returns the path a piece of the given color follows, from the first
// entry square to the last square before its end reserve.
func Track(color Status) [TrackLen]ID {
	if color == White {
		return whiteTrack
	}
	return blackTrack
}

// PrivateSquares returns a color's six private squares in seed order.
func PrivateSquares(color Status) []ID {
	if color == White {
		return whitePrivate[:]
	}
	return blackPrivate[:]
}

// PublicSquares returns the shared squares "5" through "12".
func PublicSquares() []ID {
	return public[:]
}

func StartReserve(color Status) ID {
	if color == White {
		return WS
	}
	return BS
}

func EndReserve(color Status) ID {
	if color == White {
		return WE
	}
	return BE
}
