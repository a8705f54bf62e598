// Package eval scores a position in pawn units from White's perspective:
// positive favors White, negative favors Black.
package eval

import (
	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// pieceValues are material values in pawn units for Pawn..King. King's
// value is never added into a material sum (see Score); it exists so
// search and SEE callers can look up a uniform PieceValue table without
// special-casing the king index.
var pieceValues = [6]float64{1.0, 3.0, 3.25, 5.0, 9.0, 10000.0}

// PieceValue returns the material value of k in pawn units.
func PieceValue(k pieces.Kind) float64 {
	if k == pieces.NoPiece {
		return 0
	}
	return pieceValues[k]
}

// Mate is the score magnitude reported for a checkmate, far outside any
// reachable material+positional score.
const Mate = 10000.0

// Score evaluates p from White's perspective. sideToMove identifies whose
// turn it is, needed only to test for stalemate (a side not to move is
// never stalemated).
//
// Checkmate and stalemate are terminal and checked before any material
// walk: a position where White's king is mated scores -Mate and one
// where Black's is mated scores +Mate, regardless of whose turn produced
// the position, because a mated king is equally bad for that side no
// matter which ply discovered it. Stalemate for the side to move scores
// a flat draw (0).
func Score(p *position.Position, sideToMove pieces.Color) float64 {
	if position.InStalemate(p, sideToMove) {
		return 0
	}
	if position.InCheckmate(p, pieces.White) {
		return -Mate
	}
	if position.InCheckmate(p, pieces.Black) {
		return Mate
	}

	var score float64
	for k := pieces.Pawn; k <= pieces.Queen; k++ {
		whiteCount := float64(popcount(p.Pieces[pieces.White][k]))
		blackCount := float64(popcount(p.Pieces[pieces.Black][k]))
		score += whiteCount * pieceValues[k]
		score -= blackCount * pieceValues[k]

		for sq := 0; sq < 64; sq++ {
			if !p.SquareOccupied[sq] || p.SquarePiece[sq] != k {
				continue
			}
			if p.SquareColor[sq] == pieces.White {
				score += float64(pieceSquareTables[k][sq]) / 100.0
			} else {
				score -= float64(pieceSquareTables[k][63-sq]) / 100.0
			}
		}
	}
	return score
}

func popcount(bb uint64) int {
	count := 0
	for bb != 0 {
		bb &= bb - 1
		count++
	}
	return count
}
