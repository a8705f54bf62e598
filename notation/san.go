package notation

import (
	"strings"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

var pieceLetters = [6]byte{0, 'N', 'B', 'R', 'Q', 'K'}

// EncodeSAN renders m as Standard Algebraic Notation, disambiguating
// against legalMoves (the full set of legal moves available to the
// side that owns m) the way a PGN writer would: a same-kind piece
// that could also reach m.End forces a source file, or a source rank
// if the file doesn't disambiguate.
//
// isCheck and isCheckmate are supplied by the caller, since that
// requires making the move and probing the resulting position -
// outside what a pure formatter should do.
func EncodeSAN(p *position.Position, m pieces.Move, legalMoves []pieces.Move, isCheck, isCheckmate bool) string {
	if m.Special == pieces.CastleKingside {
		return sanCheckSuffix("O-O", isCheck, isCheckmate)
	}
	if m.Special == pieces.CastleQueenside {
		return sanCheckSuffix("O-O-O", isCheck, isCheckmate)
	}

	kind := p.SquarePiece[m.Start]
	isCapture := p.SquareOccupied[m.End] || m.Special == pieces.EnPassant

	var b strings.Builder

	if letter := pieceLetters[kind]; letter != 0 {
		b.WriteByte(letter)
		if disambig, ok := sanDisambiguate(p, kind, m, legalMoves); ok {
			b.WriteString(disambig)
		}
	} else if isCapture {
		b.WriteByte("abcdefgh"[m.Start.File()])
	}

	if isCapture {
		b.WriteByte('x')
	}
	b.WriteString(m.End.String())

	if promoted := m.Special.PromotedKind(); promoted != pieces.NoPiece {
		b.WriteByte('=')
		b.WriteByte(pieceLetters[promoted])
	}

	return sanCheckSuffix(b.String(), isCheck, isCheckmate)
}

func sanCheckSuffix(s string, isCheck, isCheckmate bool) string {
	switch {
	case isCheckmate:
		return s + "#"
	case isCheck:
		return s + "+"
	default:
		return s
	}
}

// sanDisambiguate reports the file and/or rank prefix needed so m
// isn't confused with another legal move of the same kind landing on
// the same square, per PGN_standard_1994-03-12 section 8.2.3.
func sanDisambiguate(p *position.Position, kind pieces.Kind, m pieces.Move, legalMoves []pieces.Move) (string, bool) {
	if kind == pieces.Pawn {
		return "", false
	}

	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legalMoves {
		if other.Start == m.Start || other.End != m.End {
			continue
		}
		if p.SquarePiece[other.Start] != kind {
			continue
		}
		ambiguous = true
		if other.Start.File() == m.Start.File() {
			sameFile = true
		}
		if other.Start.Rank() == m.Start.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return "", false
	}

	var b strings.Builder
	if !sameFile {
		b.WriteByte("abcdefgh"[m.Start.File()])
	} else if !sameRank {
		b.WriteByte("12345678"[m.Start.Rank()])
	} else {
		b.WriteByte("abcdefgh"[m.Start.File()])
		b.WriteByte("12345678"[m.Start.Rank()])
	}
	return b.String(), true
}
