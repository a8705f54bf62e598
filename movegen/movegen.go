// Package movegen generates pseudo-legal moves per piece per square. The
// legality filter that narrows them to fully legal moves is
// Position.Legal, in the position package.
package movegen

import (
	"github.com/benthic/plankton/internal/bitutil"
	"github.com/benthic/plankton/magic"
	"github.com/benthic/plankton/pieces"
)

// GenMove returns the pseudo-legal moves for the piece of kind k and color
// c sitting on sq, given the full-board occupancy and the side's current
// castling rights. Friendly-occupied destinations are not filtered out
// here — Legal rejects those.
//
// En passant is never emitted by GenMove: the EnPassant tag is synthesized
// by the caller applying an externally supplied move, once it can compare
// the destination square against the board (see the notation package).
func GenMove(c pieces.Color, k pieces.Kind, sq pieces.Square, occupancy uint64, castleRights [4]bool) pieces.MoveCache {
	switch k {
	case pieces.Pawn:
		return genPawn(c, sq, occupancy)
	case pieces.Knight:
		return bitboardToMoves(sq, magic.KnightAttacks(sq))
	case pieces.Bishop:
		return bitboardToMoves(sq, magic.BishopAttacks(sq, occupancy))
	case pieces.Rook:
		return bitboardToMoves(sq, magic.RookAttacks(sq, occupancy))
	case pieces.Queen:
		return bitboardToMoves(sq, magic.QueenAttacks(sq, occupancy))
	case pieces.King:
		return genKing(c, sq, occupancy, castleRights)
	default:
		return pieces.MoveCache{}
	}
}

// bitboardToMoves expands an attack bitboard into a MoveCache of plain
// (non-special) moves from sq.
func bitboardToMoves(sq pieces.Square, attacks uint64) pieces.MoveCache {
	var mc pieces.MoveCache
	for attacks != 0 {
		to := pieces.Square(bitutil.PopLSB(&attacks))
		mc.Push(pieces.Move{Start: sq, End: to})
	}
	return mc
}

var promotionTags = [4]pieces.SpecialTag{
	pieces.KnightPromotion, pieces.BishopPromotion, pieces.RookPromotion, pieces.QueenPromotion,
}

// genPawn generates single/double pushes and diagonal captures (promotion
// expanded to four tagged moves on the last rank), per the direction
// `+8` for white and `-8` for black.
func genPawn(c pieces.Color, sq pieces.Square, occupancy uint64) pieces.MoveCache {
	var mc pieces.MoveCache

	step := 8
	if c == pieces.Black {
		step = -8
	}

	dest := int(sq) + step
	isPromotion := dest >= 56 || dest < 8

	addMove := func(to int) {
		if isPromotion {
			for _, tag := range promotionTags {
				mc.Push(pieces.Move{Start: sq, End: pieces.Square(to), Special: tag})
			}
			return
		}
		mc.Push(pieces.Move{Start: sq, End: pieces.Square(to)})
	}

	if dest >= 0 && dest < 64 && occupancy&(1<<uint(dest)) == 0 {
		addMove(dest)

		rank := int(sq) / 8
		onStartRank := (c == pieces.White && rank == 1) || (c == pieces.Black && rank == 6)
		doubleDest := dest + step
		if onStartRank && occupancy&(1<<uint(doubleDest)) == 0 {
			addMove(doubleDest)
		}
	}

	file := int(sq) % 8
	destEast := dest + 1
	if destEast >= 0 && destEast < 64 && file != 7 && occupancy&(1<<uint(destEast)) != 0 {
		addMove(destEast)
	}
	destWest := dest - 1
	if destWest >= 0 && destWest < 64 && file != 0 && occupancy&(1<<uint(destWest)) != 0 {
		addMove(destWest)
	}

	return mc
}

// genKing generates the one-step king moves plus castling candidates.
// Kingside requires castleRights[2*c] and squares sq+1, sq+2 empty.
// Queenside requires castleRights[2*c+1] and squares sq-1, sq-2 empty; the
// b-file square (sq-3) is checked by Legal, not here.
func genKing(c pieces.Color, sq pieces.Square, occupancy uint64, castleRights [4]bool) pieces.MoveCache {
	mc := bitboardToMoves(sq, magic.KingAttacks(sq))

	if castleRights[2*int(c)] &&
		occupancy&(1<<uint(sq+1)) == 0 &&
		occupancy&(1<<uint(sq+2)) == 0 {
		mc.Push(pieces.Move{Start: sq, End: sq + 2, Special: pieces.CastleKingside})
	}
	if castleRights[2*int(c)+1] &&
		occupancy&(1<<uint(sq-1)) == 0 &&
		occupancy&(1<<uint(sq-2)) == 0 {
		mc.Push(pieces.Move{Start: sq, End: sq - 2, Special: pieces.CastleQueenside})
	}

	return mc
}
