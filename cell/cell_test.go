package cell

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestRejectInvalidReserve(t *testing.T) {
	is := is.New(t)
	_, err := NewReserve(WS, -1)
	is.True(errors.Is(err, ErrInvalidCellCount))
	_, err = NewReserve(BE, 10)
	var countErr *InvalidCellCountError
	is.True(errors.As(err, &countErr))
	is.Equal(countErr.Count, 10)

	r, err := NewReserve(WE, 5)
	is.NoErr(err)
	is.Equal(r.Count(), 5)
	is.True(r.SetCount(8) != nil)
	is.Equal(r.Count(), 5)
}

func TestDisplayLines(t *testing.T) {
	is := is.New(t)
	r, err := NewReserve(WE, 3)
	is.NoErr(err)
	is.Equal(r.DisplayLines(), [3]string{"   ", " 3 ", "   "})

	sq := NewSquare(W3, Empty)
	is.Equal(sq.DisplayLines(), [3]string{"---", "| |", "---"})

	sq = NewSquare(P8, Empty)
	is.Equal(sq.DisplayLines()[1], "|"+RosetteGlyph+"|")

	sq.SetStatus(White)
	is.Equal(sq.DisplayLines()[1], "|"+WhitePieceGlyph+"|")

	sq.SetStatus(Black)
	is.Equal(sq.DisplayLines()[1], "|"+BlackPieceGlyph+"|")
}

func TestNames(t *testing.T) {
	is := is.New(t)
	for id := ID(0); id < NumIDs; id++ {
		got, err := ByName(id.Name())
		is.NoErr(err)
		is.Equal(got, id)
	}
	_, err := ByName("W5")
	is.True(err != nil)
	is.Equal(P12.Name(), "12")
}

func TestOwnersAndRosettes(t *testing.T) {
	is := is.New(t)
	is.Equal(W13.Owner(), White)
	is.Equal(WE.Owner(), White)
	is.Equal(B1.Owner(), Black)
	is.Equal(BS.Owner(), Black)
	is.Equal(P5.Owner(), Empty)

	rosettes := []ID{}
	for id := ID(0); id < NumIDs; id++ {
		if id.IsRosette() {
			rosettes = append(rosettes, id)
		}
	}
	is.Equal(rosettes, []ID{W4, W14, B4, B14, P8})
}

func TestTracks(t *testing.T) {
	is := is.New(t)
	wt, bt := Track(White), Track(Black)
	is.Equal(wt[0], W1)
	is.Equal(wt[3], W4)
	is.Equal(wt[4], P5)
	is.Equal(wt[7], Center)
	is.Equal(wt[13], W14)
	is.Equal(bt[12], B13)
	// Public stretch is shared.
	is.Equal(wt[4:12], bt[4:12])
}

func TestStatusBits(t *testing.T) {
	is := is.New(t)
	for _, s := range []Status{Empty, White, Black} {
		got, err := StatusFromBits(s.Bits())
		is.NoErr(err)
		is.Equal(got, s)
	}
	_, err := StatusFromBits(0b11)
	is.True(err != nil)
	is.Equal(White.Opponent(), Black)
	is.Equal(ColorFor(false), Black)
}
