// Package perft walks the move-generation tree to a fixed depth and
// counts visited leaf nodes, for validating GenMove/Legal against
// known node counts rather than hand-picked positions.
//
// See https://www.chessprogramming.org/Perft_Results
package perft

import (
	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// Count returns the number of legal move sequences of length depth
// reachable from p with c to move. Count(p, c, 1) is the legal move
// count itself.
func Count(p *position.Position, c pieces.Color, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := legalMoves(p, c)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		tok := p.Make(c, m)
		nodes += Count(p, c.Opponent(), depth-1)
		p.Unmake(c, m, tok)
	}
	return nodes
}

func legalMoves(p *position.Position, c pieces.Color) []pieces.Move {
	var moves []pieces.Move
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[pieces.Square(sq)] || p.SquareColor[pieces.Square(sq)] != c {
			continue
		}
		for _, m := range p.MovesCache[sq].Slice() {
			if p.Legal(c, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
