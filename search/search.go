// Package search implements white-relative alpha-beta search over
// Position's make/unmake protocol: white plays Max, black plays Min, each
// falling through to quiescence at the horizon, with SEE pruning losing
// captures in quiescence and root moves distributed round-robin across
// worker goroutines for iterative deepening.
package search

import (
	"time"

	"github.com/benthic/plankton/eval"
	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

// legalMoves walks p's move cache for color c and yields only the legal
// ones, in square-major, then generation order — the same order the
// reference search iterates moves in.
func legalMoves(p *position.Position, c pieces.Color) []pieces.Move {
	var moves []pieces.Move
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[sq] || p.SquareColor[sq] != c {
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

// deadlineExceeded reports whether the wall clock has passed deadline.
func deadlineExceeded(deadline time.Time) bool {
	return time.Now().After(deadline)
}

// Max is white's half of the alpha-beta search: white maximizes the
// white-relative score. A nil return signals the deadline expired during
// this call or a descendant; the caller must treat it as an upward abort
// rather than a real score.
func Max(p *position.Position, alpha, beta float64, depth int, deadline time.Time) *float64 {
	if position.GameOver(p, pieces.White) {
		return f(eval.Score(p, pieces.White))
	}
	if depth <= 0 {
		return QMax(p, alpha, beta, deadline)
	}

	for _, m := range legalMoves(p, pieces.White) {
		if deadlineExceeded(deadline) {
			return nil
		}
		tok := p.Make(pieces.White, m)
		score := Min(p, alpha, beta, depth-1, deadline)
		p.Unmake(pieces.White, m, tok)
		if score == nil {
			return nil
		}
		if *score >= beta {
			return f(beta)
		}
		if *score > alpha {
			alpha = *score
		}
	}
	return f(alpha)
}

// Min is black's half of the alpha-beta search: black minimizes the
// white-relative score.
func Min(p *position.Position, alpha, beta float64, depth int, deadline time.Time) *float64 {
	if position.GameOver(p, pieces.Black) {
		return f(eval.Score(p, pieces.Black))
	}
	if depth <= 0 {
		return QMin(p, alpha, beta, deadline)
	}

	for _, m := range legalMoves(p, pieces.Black) {
		if deadlineExceeded(deadline) {
			return nil
		}
		tok := p.Make(pieces.Black, m)
		score := Max(p, alpha, beta, depth-1, deadline)
		p.Unmake(pieces.Black, m, tok)
		if score == nil {
			return nil
		}
		if *score <= alpha {
			return f(alpha)
		}
		if *score < beta {
			beta = *score
		}
	}
	return f(beta)
}

// capturesOf filters moves down to those landing on an occupied square.
func capturesOf(p *position.Position, moves []pieces.Move) []pieces.Move {
	var out []pieces.Move
	for _, m := range moves {
		if p.SquareOccupied[m.End] {
			out = append(out, m)
		}
	}
	return out
}

// QMax is white's quiescence search: it extends Max over captures only,
// pruning any capture SEE judges losing for white.
func QMax(p *position.Position, alpha, beta float64, deadline time.Time) *float64 {
	standPat := eval.Score(p, pieces.White)
	if position.GameOver(p, pieces.White) {
		return f(standPat)
	}
	if standPat >= beta {
		return f(beta)
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, m := range capturesOf(p, legalMoves(p, pieces.White)) {
		if deadlineExceeded(deadline) {
			return nil
		}
		if SEE(p, pieces.White, m) < 0 {
			continue
		}
		tok := p.Make(pieces.White, m)
		score := QMin(p, alpha, beta, deadline)
		p.Unmake(pieces.White, m, tok)
		if score == nil {
			return nil
		}
		if *score >= beta {
			return f(beta)
		}
		if *score > alpha {
			alpha = *score
		}
	}
	return f(alpha)
}

// QMin is black's quiescence search, mirroring QMax.
func QMin(p *position.Position, alpha, beta float64, deadline time.Time) *float64 {
	standPat := eval.Score(p, pieces.Black)
	if position.GameOver(p, pieces.Black) {
		return f(standPat)
	}
	if standPat <= alpha {
		return f(alpha)
	}
	if standPat < beta {
		beta = standPat
	}

	for _, m := range capturesOf(p, legalMoves(p, pieces.Black)) {
		if deadlineExceeded(deadline) {
			return nil
		}
		if SEE(p, pieces.Black, m) > 0 {
			continue
		}
		tok := p.Make(pieces.Black, m)
		score := QMax(p, alpha, beta, deadline)
		p.Unmake(pieces.Black, m, tok)
		if score == nil {
			return nil
		}
		if *score <= alpha {
			return f(alpha)
		}
		if *score < beta {
			beta = *score
		}
	}
	return f(beta)
}

// SEE estimates the net material swing of playing m for color c on its
// target square, in white-relative pawn units, by recursively replaying
// the capture sequence through make/unmake. Because each Make rebuilds
// the move cache, attackers uncovered behind a capturing piece are found
// on the next step. Each side always recaptures with its lowest-kind
// legal attacker while one exists; a losing recapture is never declined.
func SEE(p *position.Position, c pieces.Color, m pieces.Move) float64 {
	sign := 1.0
	if c == pieces.Black {
		sign = -1.0
	}
	score := eval.PieceValue(p.SquarePiece[m.End]) * sign

	tok := p.Make(c, m)
	defer p.Unmake(c, m, tok)

	opponent := c.Opponent()
	var lowestSq pieces.Square = pieces.NoSquare
	var lowestMove pieces.Move
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[sq] || p.SquareColor[sq] != opponent {
			continue
		}
		capture, found := findCaptureTo(p, pieces.Square(sq), m.End)
		if !found || !p.Legal(opponent, capture) {
			continue
		}
		if lowestSq == pieces.NoSquare || p.SquarePiece[sq] < p.SquarePiece[lowestSq] {
			lowestSq = pieces.Square(sq)
			lowestMove = capture
			if p.SquarePiece[sq] == pieces.Pawn {
				break
			}
		}
	}

	if lowestSq != pieces.NoSquare {
		score += SEE(p, opponent, lowestMove)
	}
	return score
}

// findCaptureTo looks up the cached pseudo-legal move from sq to target,
// if any.
func findCaptureTo(p *position.Position, sq, target pieces.Square) (pieces.Move, bool) {
	for _, m := range p.MovesCache[sq].Slice() {
		if m.Start == sq && m.End == target {
			return m, true
		}
	}
	return pieces.Move{}, false
}

func f(v float64) *float64 { return &v }
