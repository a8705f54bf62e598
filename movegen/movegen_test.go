package movegen

import (
	"testing"

	"github.com/benthic/plankton/pieces"
)

func TestGenPawnSinglePush(t *testing.T) {
	sq := pieces.ParseSquare("e2")
	mc := GenMove(pieces.White, pieces.Pawn, sq, sq.Bitboard(), [4]bool{})
	if mc.Count != 2 {
		t.Fatalf("Count = %d, want 2 (single+double push)", mc.Count)
	}
	wantFirst := pieces.ParseSquare("e3")
	wantSecond := pieces.ParseSquare("e4")
	if mc.Moves[0].End != wantFirst || mc.Moves[1].End != wantSecond {
		t.Errorf("moves = %+v, want pushes to e3,e4", mc.Slice())
	}
}

func TestGenPawnBlockedDoublePush(t *testing.T) {
	sq := pieces.ParseSquare("e2")
	blocker := pieces.ParseSquare("e4")
	occ := sq.Bitboard() | blocker.Bitboard()
	mc := GenMove(pieces.White, pieces.Pawn, sq, occ, [4]bool{})
	if mc.Count != 1 {
		t.Fatalf("Count = %d, want 1 (single push only)", mc.Count)
	}
}

func TestGenPawnPromotion(t *testing.T) {
	sq := pieces.ParseSquare("e7")
	mc := GenMove(pieces.White, pieces.Pawn, sq, sq.Bitboard(), [4]bool{})
	if mc.Count != 4 {
		t.Fatalf("Count = %d, want 4 promotion moves", mc.Count)
	}
	wantTags := []pieces.SpecialTag{
		pieces.KnightPromotion, pieces.BishopPromotion, pieces.RookPromotion, pieces.QueenPromotion,
	}
	for i, tag := range wantTags {
		if mc.Moves[i].Special != tag {
			t.Errorf("move %d special = %v, want %v", i, mc.Moves[i].Special, tag)
		}
	}
}

func TestGenPawnCaptureNoFileWrap(t *testing.T) {
	sq := pieces.ParseSquare("h2")
	occ := sq.Bitboard() | pieces.ParseSquare("a4").Bitboard()
	mc := GenMove(pieces.White, pieces.Pawn, sq, occ, [4]bool{})
	for _, m := range mc.Slice() {
		if m.End == pieces.ParseSquare("a4") {
			t.Errorf("pawn on h-file should not capture wrapping to a-file")
		}
	}
}

func TestGenKnightCorner(t *testing.T) {
	sq := pieces.ParseSquare("a1")
	mc := GenMove(pieces.White, pieces.Knight, sq, sq.Bitboard(), [4]bool{})
	if mc.Count != 2 {
		t.Fatalf("Count = %d, want 2", mc.Count)
	}
}

func TestGenKingCastlingCandidates(t *testing.T) {
	sq := pieces.ParseSquare("e1")
	rights := [4]bool{true, true, false, false}
	mc := GenMove(pieces.White, pieces.King, sq, sq.Bitboard(), rights)
	found := map[pieces.Square]pieces.SpecialTag{}
	for _, m := range mc.Slice() {
		if m.Special == pieces.CastleKingside || m.Special == pieces.CastleQueenside {
			found[m.End] = m.Special
		}
	}
	if found[pieces.ParseSquare("g1")] != pieces.CastleKingside {
		t.Errorf("expected kingside castle candidate to g1")
	}
	if found[pieces.ParseSquare("c1")] != pieces.CastleQueenside {
		t.Errorf("expected queenside castle candidate to c1")
	}
}

func TestGenKingCastlingBlockedByOccupant(t *testing.T) {
	sq := pieces.ParseSquare("e1")
	rights := [4]bool{true, false, false, false}
	occ := sq.Bitboard() | pieces.ParseSquare("f1").Bitboard()
	mc := GenMove(pieces.White, pieces.King, sq, occ, rights)
	for _, m := range mc.Slice() {
		if m.Special == pieces.CastleKingside {
			t.Errorf("kingside castle should be blocked when f1 is occupied")
		}
	}
}

func TestGenMoveNeverEmitsEnPassant(t *testing.T) {
	sq := pieces.ParseSquare("e5")
	occ := sq.Bitboard() | pieces.ParseSquare("d5").Bitboard()
	mc := GenMove(pieces.White, pieces.Pawn, sq, occ, [4]bool{})
	for _, m := range mc.Slice() {
		if m.Special == pieces.EnPassant {
			t.Errorf("GenMove must never emit EnPassant directly")
		}
	}
}
