package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/royalur/cell"
)

type impossibleMoveTest struct {
	from, to string
	flags    Flags
}

var impossibleMoves = []impossibleMoveTest{
	{"W4", "8", Rosette | Capture},
	{"7", "W14", Capture | Ascension},
	{"5", "5", Plain},
	{"W3", "B4", Plain},
	{"WS", "B1", Onboard},
	{"B13", "WE", Ascension},
	{"5", "W1", Onboard},
	{"W13", "W14", Ascension},
	{"6", "7", Rosette},
}

func TestImpossibleMoves(t *testing.T) {
	is := is.New(t)
	for _, tc := range impossibleMoves {
		_, err := FromNames(tc.from, tc.to, tc.flags)
		is.True(errors.Is(err, ErrImpossibleMove)) // expected impossible
	}
}

func TestValidMoves(t *testing.T) {
	is := is.New(t)
	for _, tc := range []impossibleMoveTest{
		{"WS", "W4", Onboard | Rosette},
		{"BS", "B2", Onboard},
		{"W14", "WE", Ascension},
		{"7", "8", Rosette},
		{"W4", "5", Capture},
		{"12", "B13", Plain},
	} {
		m, err := FromNames(tc.from, tc.to, tc.flags)
		is.NoErr(err)
		is.Equal(m.From().Name(), tc.from)
		is.Equal(m.To().Name(), tc.to)
		is.Equal(m.Flags(), tc.flags)
	}
}

func TestUnknownName(t *testing.T) {
	is := is.New(t)
	_, err := FromNames("W5", "8", Plain)
	is.True(err != nil)
}

func TestString(t *testing.T) {
	is := is.New(t)
	m := NewUnchecked(cell.W4, cell.P8, Rosette)
	is.Equal(m.String(), "W4 -> 8 "+cell.RosetteGlyph)
	m = NewUnchecked(cell.W14, cell.WE, Ascension)
	is.Equal(m.String(), "W14 -> WE "+cell.AscensionGlyph)
	m = NewUnchecked(cell.P9, cell.P10, Plain)
	is.Equal(m.String(), "9 -> 10 ")
}

func TestDescription(t *testing.T) {
	is := is.New(t)
	is.Equal(NewUnchecked(cell.WS, cell.W2, Onboard).Description(),
		"Moved a piece onto the board at W2.")
	is.Equal(NewUnchecked(cell.BS, cell.B4, Onboard|Rosette).Description(),
		"Moved from BS to B4. Claimed a rosette! "+cell.RosetteGlyph)
	is.Equal(NewUnchecked(cell.P6, cell.P7, Capture).Description(),
		"Moved from 6 to 7. Captured a piece! "+cell.CaptureGlyph)
	is.Equal(NewUnchecked(cell.B14, cell.BE, Ascension).Description(),
		"Ascended a piece from B14! "+cell.AscensionGlyph)
}

func TestKeys(t *testing.T) {
	is := is.New(t)
	a := NewUnchecked(cell.P7, cell.P8, Rosette)
	b := NewUnchecked(cell.P7, cell.P8, Plain)
	is.Equal(a.Key(), b.Key())
	is.True(a.Equals(b))

	seen := map[Key]bool{}
	for from := cell.ID(0); from < cell.NumIDs; from++ {
		for to := cell.ID(0); to < cell.NumIDs; to++ {
			k := NewUnchecked(from, to, Plain).Key()
			is.True(!seen[k])
			seen[k] = true
		}
	}
}

func TestFlagsString(t *testing.T) {
	is := is.New(t)
	is.Equal(Plain.String(), "plain")
	is.Equal((Onboard | Rosette).String(), "onboard|rosette")
}
