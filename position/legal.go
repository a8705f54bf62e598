package position

import "github.com/benthic/plankton/pieces"

// Legal reports whether m, played by color c, is a fully legal move in p:
// the destination isn't friendly-occupied, a castle doesn't move through
// or into check, and playing the move doesn't leave c's own king in
// check. It mutates and restores p via Make/Unmake to test the result.
func (p *Position) Legal(c pieces.Color, m pieces.Move) bool {
	if p.SquareOccupied[m.End] && p.SquareColor[m.End] == c {
		return false
	}

	switch m.Special {
	case pieces.CastleKingside:
		if p.SquareOccupied[m.Start+1] || p.SquareOccupied[m.Start+2] {
			return false
		}
		mid := pieces.Move{Start: m.Start, End: m.Start + 1}
		tok := p.Make(c, mid)
		blocked := tok.WasCapture || p.InCheck(c)
		p.Unmake(c, mid, tok)
		if blocked {
			return false
		}

	case pieces.CastleQueenside:
		if p.SquareOccupied[m.Start-1] || p.SquareOccupied[m.Start-2] || p.SquareOccupied[m.Start-3] {
			return false
		}
		mid := pieces.Move{Start: m.Start, End: m.Start - 1}
		tok := p.Make(c, mid)
		blocked := tok.WasCapture || p.InCheck(c)
		p.Unmake(c, mid, tok)
		if blocked {
			return false
		}
	}

	tok := p.Make(c, m)
	inCheck := p.InCheck(c)
	p.Unmake(c, m, tok)
	return !inCheck
}
