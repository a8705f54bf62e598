// Package fenload parses Forsyth-Edwards Notation board strings into a
// position.Position plus the side to move.
package fenload

import (
	"fmt"
	"strings"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// StartFEN is the FEN for a fresh game.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceSymbols = map[byte]pieces.Kind{
	'p': pieces.Pawn, 'n': pieces.Knight, 'b': pieces.Bishop,
	'r': pieces.Rook, 'q': pieces.Queen, 'k': pieces.King,
}

// Parse reads a FEN string's piece placement, active color and castling
// fields into a fresh Position. The en passant, halfmove and fullmove
// fields are accepted if present but not retained: the engine never
// stores en passant state between moves (see the position package), and
// move counters play no role in search.
func Parse(fen string) (*position.Position, pieces.Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, 0, fmt.Errorf("fenload: need at least piece placement and active color, got %q", fen)
	}

	p := position.New()
	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, 0, err
	}

	var active pieces.Color
	switch fields[1] {
	case "w":
		active = pieces.White
	case "b":
		active = pieces.Black
	default:
		return nil, 0, fmt.Errorf("fenload: active color must be %q or %q, got %q", "w", "b", fields[1])
	}

	if len(fields) >= 3 {
		parseCastling(p, fields[2])
	}

	p.RefreshMoves()
	return p, active, nil
}

func parsePlacement(p *position.Position, placement string) error {
	square := 56
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			kind, ok := pieceSymbols[lower(c)]
			if !ok {
				return fmt.Errorf("fenload: invalid piece symbol %q", c)
			}
			color := pieces.White
			if c >= 'a' && c <= 'z' {
				color = pieces.Black
			}
			if square < 0 || square > 63 {
				return fmt.Errorf("fenload: piece placement overruns the board at %q", placement)
			}
			p.PlacePiece(color, kind, pieces.Square(square))
			square++
		}
	}
	return nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func parseCastling(p *position.Position, field string) {
	if field == "-" {
		return
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.CastleRights[position.WhiteKingside] = true
		case 'Q':
			p.CastleRights[position.WhiteQueenside] = true
		case 'k':
			p.CastleRights[position.BlackKingside] = true
		case 'q':
			p.CastleRights[position.BlackQueenside] = true
		}
	}
}
