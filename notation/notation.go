// Package notation converts between long algebraic move text (as used on
// the UCI wire) and pieces.Move values, synthesizing the EnPassant and
// castling special tags that the move generator itself never emits.
package notation

import (
	"fmt"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

var promotionLetters = map[byte]pieces.SpecialTag{
	'n': pieces.KnightPromotion,
	'b': pieces.BishopPromotion,
	'r': pieces.RookPromotion,
	'q': pieces.QueenPromotion,
}

// Decode parses a long algebraic move such as "e2e4" or "e7e8q" against
// p, inferring en passant (a pawn moving diagonally onto an empty square)
// and castling (a king moving two files) from the board itself, since
// neither tag appears in the wire text.
func Decode(p *position.Position, text string) (pieces.Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return pieces.Move{}, fmt.Errorf("notation: malformed move %q", text)
	}

	start := pieces.ParseSquare(text[0:2])
	end := pieces.ParseSquare(text[2:4])
	if start == pieces.NoSquare || end == pieces.NoSquare {
		return pieces.Move{}, fmt.Errorf("notation: invalid square in move %q", text)
	}

	m := pieces.Move{Start: start, End: end}

	if len(text) == 5 {
		tag, ok := promotionLetters[text[4]]
		if !ok {
			return pieces.Move{}, fmt.Errorf("notation: invalid promotion letter %q in %q", text[4], text)
		}
		m.Special = tag
		return m, nil
	}

	kind := p.SquarePiece[start]
	switch kind {
	case pieces.Pawn:
		if start.File() != end.File() && !p.SquareOccupied[end] {
			m.Special = pieces.EnPassant
		}
	case pieces.King:
		if end-start == 2 {
			m.Special = pieces.CastleKingside
		} else if start-end == 2 {
			m.Special = pieces.CastleQueenside
		}
	}

	return m, nil
}

// Encode renders m as long algebraic text, e.g. "e2e4" or "e7e8q".
func Encode(m pieces.Move) string {
	text := m.Start.String() + m.End.String()
	switch m.Special {
	case pieces.KnightPromotion:
		text += "n"
	case pieces.BishopPromotion:
		text += "b"
	case pieces.RookPromotion:
		text += "r"
	case pieces.QueenPromotion:
		text += "q"
	}
	return text
}
