// Package boardfmt renders a Position as a human-readable board diagram,
// for the UCI "info string" diagnostic stream.
package boardfmt

import (
	"strings"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

var pieceSymbols = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

// FormatBoard renders p's piece placement as an 8x8 diagram with file/rank
// labels, a1 at the bottom left.
func FormatBoard(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := pieces.Square(rank*8 + file)
			symbol := rune('.')
			if p.SquareOccupied[sq] {
				symbol = pieceSymbols[p.SquareColor[sq]][p.SquarePiece[sq]]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// FormatBitboard renders a single bitboard as an 8x8 grid of 'x'/'.'.
func FormatBitboard(bb uint64) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := uint(rank*8 + file)
			symbol := byte('.')
			if bb&(1<<sq) != 0 {
				symbol = 'x'
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}
