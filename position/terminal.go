package position

import "github.com/benthic/plankton/pieces"

// InCheckmate reports whether c is in checkmate: in check, with no legal
// move for any of its pieces.
func InCheckmate(p *Position, c pieces.Color) bool {
	if !p.InCheck(c) {
		return false
	}
	return !hasLegalMove(p, c)
}

// InStalemate reports whether c has no legal move while not in check.
func InStalemate(p *Position, c pieces.Color) bool {
	if p.InCheck(c) {
		return false
	}
	return !hasLegalMove(p, c)
}

// GameOver reports whether c has no legal move, by checkmate or
// stalemate.
func GameOver(p *Position, c pieces.Color) bool {
	return InCheckmate(p, c) || InStalemate(p, c)
}

func hasLegalMove(p *Position, c pieces.Color) bool {
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[sq] || p.SquareColor[sq] != c {
			continue
		}
		for _, m := range p.MovesCache[sq].Slice() {
			if p.Legal(c, m) {
				return true
			}
		}
	}
	return false
}
