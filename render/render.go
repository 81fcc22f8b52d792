/*
Package render draws an ASCII picture of a pijersi board for human
diagnostics.

Not a stable wire format — only for humans reading test failures and perft
output.
*/
package render

import (
	"strings"

	"github.com/pijersi-engine/pijersi"
)

// rows lists, top to bottom, the row letter and its hex count: rows
// alternate between 6 and 7 hexes across the board.
var rows = []struct {
	letter string
	width  int
}{
	{"g", 6}, {"f", 7}, {"e", 6}, {"d", 7}, {"c", 6}, {"b", 7}, {"a", 6},
}

func sortLetter(s pijersi.CubeSort) byte {
	switch s {
	case pijersi.Rock:
		return 'R'
	case pijersi.Paper:
		return 'P'
	case pijersi.Scissors:
		return 'S'
	default:
		return 'W'
	}
}

func cubeLetter(s pijersi.CubeSort, player pijersi.Player) byte {
	l := sortLetter(s)
	if player == pijersi.Black {
		l += 'a' - 'A'
	}
	return l
}

// cellString renders one cell's code as exactly two characters: ".."
// empty, ".X" a single cube X, "YX" a stack with bottom X and top Y.
func cellString(code int) string {
	h := pijersi.DecodeHexState(code)
	if h.Empty {
		return ".."
	}
	if !h.HasStack {
		return string([]byte{'.', cubeLetter(h.Bottom, h.Player)})
	}
	return string([]byte{cubeLetter(h.Top, h.Player), cubeLetter(h.Bottom, h.Player)})
}

// Board renders board as a multi-line ASCII hex grid, with odd-width rows
// (the 7-wide ones) indented by half a cell so the hexagonal packing is
// visually legible.
func Board(board pijersi.BoardCodes) string {
	var b strings.Builder

	for _, row := range rows {
		if row.width == 7 {
			b.WriteByte(' ')
		}
		for col := 1; col <= row.width; col++ {
			name := row.letter + itoa(col)
			idx := pijersi.HexIndexByName(name)
			b.WriteString(cellString(int(board[idx])))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func itoa(n int) string {
	if n < 10 {
		return string([]byte{byte('0' + n)})
	}
	return string([]byte{'1', byte('0' + n - 10)})
}
