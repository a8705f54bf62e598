package notation

import (
	"testing"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

func TestDecodeQuietMove(t *testing.T) {
	p := position.StartingPosition()
	m, err := Decode(p, "e2e4")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if m.Start != pieces.ParseSquare("e2") || m.End != pieces.ParseSquare("e4") || m.Special != pieces.None {
		t.Errorf("Decode(e2e4) = %+v", m)
	}
}

func TestDecodePromotion(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.White, pieces.Pawn, pieces.ParseSquare("e7"))
	p.RefreshMoves()

	m, err := Decode(p, "e7e8q")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if m.Special != pieces.QueenPromotion {
		t.Errorf("Decode(e7e8q).Special = %v, want QueenPromotion", m.Special)
	}
}

func TestDecodeInfersEnPassant(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.White, pieces.Pawn, pieces.ParseSquare("e5"))
	p.PlacePiece(pieces.Black, pieces.Pawn, pieces.ParseSquare("d5"))
	p.RefreshMoves()

	m, err := Decode(p, "e5d6")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if m.Special != pieces.EnPassant {
		t.Errorf("Decode(e5d6) should infer EnPassant, got %+v", m)
	}
}

func TestDecodeDiagonalPawnMoveWithoutCaptureIsNotEnPassant(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.White, pieces.Pawn, pieces.ParseSquare("e5"))
	p.PlacePiece(pieces.Black, pieces.Pawn, pieces.ParseSquare("d6"))
	p.RefreshMoves()

	m, err := Decode(p, "e5d6")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if m.Special == pieces.EnPassant {
		t.Errorf("a diagonal move onto an occupied square is an ordinary capture, not en passant")
	}
}

func TestDecodeInfersCastling(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("e1"))
	p.PlacePiece(pieces.White, pieces.Rook, pieces.ParseSquare("h1"))
	p.CastleRights = [4]bool{true, false, false, false}
	p.RefreshMoves()

	m, err := Decode(p, "e1g1")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if m.Special != pieces.CastleKingside {
		t.Errorf("Decode(e1g1) should infer CastleKingside, got %+v", m)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	m := pieces.Move{Start: pieces.ParseSquare("a7"), End: pieces.ParseSquare("a8"), Special: pieces.RookPromotion}
	if got := Encode(m); got != "a7a8r" {
		t.Errorf("Encode(%+v) = %q, want %q", m, got, "a7a8r")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	p := position.StartingPosition()
	if _, err := Decode(p, "e2"); err == nil {
		t.Errorf("expected an error for a too-short move string")
	}
	if _, err := Decode(p, "z9e4"); err == nil {
		t.Errorf("expected an error for an invalid square")
	}
}
