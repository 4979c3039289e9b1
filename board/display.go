package board

import (
	"strings"

	"github.com/domino14/royalur/cell"
)

var displayRows = [3][8]cell.ID{
	{cell.W4, cell.W3, cell.W2, cell.W1, cell.WS, cell.WE, cell.W14, cell.W13},
	{cell.P5, cell.P6, cell.P7, cell.P8, cell.P9, cell.P10, cell.P11, cell.P12},
	{cell.B4, cell.B3, cell.B2, cell.B1, cell.BS, cell.BE, cell.B14, cell.B13},
}

func (b *Board) displayLines(id cell.ID) [3]string {
	if id.IsReserve() {
		return b.Reserve(id).DisplayLines()
	}
	return b.squares[id].DisplayLines()
}

// ToDisplayText draws the board as nine lines of text, three per row, with
// the white side on top.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for _, row := range displayRows {
		for line := 0; line < 3; line++ {
			parts := make([]string, len(row))
			for i, id := range row {
				parts[i] = b.displayLines(id)[line]
			}
			sb.WriteString(strings.Join(parts, " "))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
