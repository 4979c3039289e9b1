package player

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/move"
)

func testRNG() *frand.RNG {
	return frand.NewCustom(make([]byte, 32), 1024, 12)
}

func TestNew(t *testing.T) {
	is := is.New(t)
	for _, name := range []string{"first", "random", "greedy", "casper"} {
		p, err := New(name, testRNG())
		is.NoErr(err)
		is.Equal(p.Name(), name)
	}
	_, err := New("minimax", nil)
	is.True(errors.Is(err, ErrInvalidPlayer))
	is.Equal(Names(), []string{"casper", "first", "greedy", "random"})
}

func mustMove(is *is.I, from, to string, flags move.Flags) *move.Move {
	m, err := move.FromNames(from, to, flags)
	is.NoErr(err)
	return m
}

func TestGreedyPriorities(t *testing.T) {
	is := is.New(t)
	p, err := New("greedy", testRNG())
	is.NoErr(err)
	b := board.MidGame.Board()

	// Roll 1: ascension beats the rosette and the capture.
	is.Equal(p.SelectMove(b, b.AvailableMoves(true, 1), true).String(), "W14 -> WE "+cell.AscensionGlyph)
	// Roll 4: rosette beats capture.
	is.Equal(p.SelectMove(b, b.AvailableMoves(true, 4), true).To(), cell.P8)
	// Roll 2: captures only, the first one is taken.
	is.Equal(p.SelectMove(b, b.AvailableMoves(true, 2), true).From(), cell.W3)
}

func TestRandomStaysInOfferedSet(t *testing.T) {
	is := is.New(t)
	p, err := New("random", testRNG())
	is.NoErr(err)
	b := board.MidGame.Board()
	moves := b.AvailableMoves(false, 3)
	counts := map[move.Key]int{}
	for i := 0; i < 400; i++ {
		m := p.SelectMove(b, moves, false)
		counts[m.Key()]++
	}
	is.Equal(len(counts), len(moves)) // every move gets picked eventually
}

func TestCasperTakesCenter(t *testing.T) {
	is := is.New(t)
	p, err := New("casper", testRNG())
	is.NoErr(err)
	b := board.MidGame.Board()
	// Black rolling 2 can capture on 7 or take the center from 6.
	m := p.SelectMove(b, b.AvailableMoves(false, 2), false)
	is.Equal(m.From(), cell.P6)
	is.Equal(m.To(), cell.P8)
}

func TestCasperKeepsCenter(t *testing.T) {
	is := is.New(t)
	p, err := New("casper", testRNG())
	is.NoErr(err)
	b := board.CenterGuarded.Board()
	// Black on 8 with a roll of 1 can leave the center or enter a piece.
	moves := b.AvailableMoves(false, 1)
	is.Equal(len(moves), 2)
	for i := 0; i < 20; i++ {
		is.Equal(p.SelectMove(b, moves, false).From(), cell.BS)
	}
	// With no alternative it leaves.
	only := []*move.Move{mustMove(is, "8", "9", move.Plain)}
	is.Equal(p.SelectMove(b, only, false), only[0])
}

func TestCasperOnboardsWhenBehind(t *testing.T) {
	is := is.New(t)
	p, err := New("casper", testRNG())
	is.NoErr(err)
	b := board.New()
	is.NoErr(b.SetStatus(cell.B1, cell.Black))
	is.NoErr(b.SetStatus(cell.B2, cell.Black))
	is.NoErr(b.SetCount(cell.BS, 5))
	is.NoErr(b.SetStatus(cell.P5, cell.White))
	is.NoErr(b.SetCount(cell.WS, 6))
	is.NoErr(b.Verify())

	moves := b.AvailableMoves(true, 2)
	// WS -> W2 and 5 -> 7; black has more pieces at the back.
	is.Equal(len(moves), 2)
	is.True(p.SelectMove(b, moves, true).IsOnboard())
}

func TestFirst(t *testing.T) {
	is := is.New(t)
	p, err := New("first", nil)
	is.NoErr(err)
	b := board.MidGame.Board()
	moves := b.AvailableMoves(true, 3)
	is.Equal(p.SelectMove(b, moves, true), moves[0])
}

func TestHuman(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	h := NewHuman("cesar", strings.NewReader("abc\n9\n2\n"), &out)
	is.Equal(h.Name(), "cesar")
	b := board.MidGame.Board()
	moves := b.AvailableMoves(true, 3)
	is.Equal(h.SelectMove(b, moves, true), moves[1])
	is.True(strings.Contains(out.String(), "2: 7 -> 10 "))
	is.Equal(strings.Count(out.String(), "Please select a move: "), 3)

	// Nothing left to read.
	is.Equal(h.SelectMove(b, moves, true), nil)
}
