package codec

import "github.com/domino14/royalur/board"

type canonical struct{}

func (canonical) Name() string { return "canonical" }
func (canonical) Width() int { return board.SeedBits }

func (canonical) Encode(b *board.Board) uint64 {
	return b.Encode()
}

func (canonical) Decode(seed uint64, verify bool) (*board.Board, error) {
	return board.Decode(seed, verify)
}
