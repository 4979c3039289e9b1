package board

import (
	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/move"
)

// Apply plays a move on the board in place. The move is trusted: it should
// come from AvailableMoves for this board.
func (b *Board) Apply(m *move.Move) {
	from, to := m.From(), m.To()
	switch {
	case m.IsOnboard():
		b.Reserve(from).Decrement()
		b.Square(to).SetStatus(from.Owner())
	case m.IsAscension():
		b.Square(from).SetStatus(cell.Empty)
		b.Reserve(to).Increment()
	default:
		src, dst := b.Square(from), b.Square(to)
		if captured := dst.Status(); m.IsCapture() && captured != cell.Empty {
			b.Reserve(cell.StartReserve(captured)).Increment()
		}
		dst.SetStatus(src.Status())
		src.SetStatus(cell.Empty)
	}
}
