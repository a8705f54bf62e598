package search

import (
	"testing"
	"time"

	"github.com/benthic/plankton/pieces"
	"github.com/benthic/plankton/position"
)

func farDeadline() time.Time {
	return time.Now().Add(10 * time.Second)
}

// Back-rank mate: black king a1 (sq 0), white king a3, white rook h2
// (sq 15). White to move, depth 1, best move h2->h1 (15->7), score
// +10000.
func TestBestMoveBackRankMate(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.Black, pieces.King, pieces.ParseSquare("a1"))
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("a3"))
	p.PlacePiece(pieces.White, pieces.Rook, pieces.ParseSquare("h2"))
	p.RefreshMoves()

	move, score, ok := BestMove(p, pieces.White, 1, farDeadline())
	if !ok {
		t.Fatalf("search did not complete")
	}
	want := pieces.Move{Start: pieces.ParseSquare("h2"), End: pieces.ParseSquare("h1")}
	if move.Start != want.Start || move.End != want.End {
		t.Errorf("best move = %+v, want h2->h1", move)
	}
	if score != 10000 {
		t.Errorf("score = %v, want 10000", score)
	}
}

// Avoid stalemate: black king a1 (sq 0), black bishop c2, white queen
// d2, white king h8. White to move, depth 1, best move must not be
// d2->c2 (the queen would cover a2/b1/b2, the king's only escapes).
func TestBestMoveAvoidsStalemate(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.Black, pieces.King, pieces.ParseSquare("a1"))
	p.PlacePiece(pieces.Black, pieces.Bishop, pieces.ParseSquare("c2"))
	p.PlacePiece(pieces.White, pieces.Queen, pieces.ParseSquare("d2"))
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("h8"))
	p.RefreshMoves()

	move, _, ok := BestMove(p, pieces.White, 1, farDeadline())
	if !ok {
		t.Fatalf("search did not complete")
	}
	stalemating := pieces.Move{Start: pieces.ParseSquare("d2"), End: pieces.ParseSquare("c2")}
	if move.Start == stalemating.Start && move.End == stalemating.End {
		t.Errorf("best move should not be the stalemating d2->c2")
	}
}

// Material gain at depth 3: black king a1 (sq 0), black queen a3,
// white king h8, white knight e1 (sq 4). Best move e1->c2 (4->10)
// forks the king and queen.
func TestBestMoveFindsKnightFork(t *testing.T) {
	p := position.New()
	p.PlacePiece(pieces.Black, pieces.King, pieces.ParseSquare("a1"))
	p.PlacePiece(pieces.Black, pieces.Queen, pieces.ParseSquare("a3"))
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("h8"))
	p.PlacePiece(pieces.White, pieces.Knight, pieces.ParseSquare("e1"))
	p.RefreshMoves()

	move, _, ok := BestMove(p, pieces.White, 3, farDeadline())
	if !ok {
		t.Fatalf("search did not complete")
	}
	want := pieces.Move{Start: pieces.ParseSquare("e1"), End: pieces.ParseSquare("c2")}
	if move.Start != want.Start || move.End != want.End {
		t.Errorf("best move = %+v, want e1->c2", move)
	}
}

func TestSEERookForPawnLoss(t *testing.T) {
	// White king a1, black king c1, black pawn h7, white rook g6, white
	// pawn f5. h7xg6 wins the rook but loses the pawn back to f5.
	p := position.New()
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("a1"))
	p.PlacePiece(pieces.Black, pieces.King, pieces.ParseSquare("c1"))
	p.PlacePiece(pieces.Black, pieces.Pawn, pieces.ParseSquare("h7"))
	p.PlacePiece(pieces.White, pieces.Rook, pieces.ParseSquare("g6"))
	p.PlacePiece(pieces.White, pieces.Pawn, pieces.ParseSquare("f5"))
	p.RefreshMoves()

	m := pieces.Move{Start: pieces.ParseSquare("h7"), End: pieces.ParseSquare("g6")}
	got := SEE(p, pieces.Black, m)
	if got > -3 || got < -5 {
		t.Errorf("SEE(h7xg6) = %v, want roughly -4 (rook won, pawn lost back)", got)
	}
}

func TestSEENonCaptureOnStartingPositionIsZero(t *testing.T) {
	p := position.StartingPosition()
	m := pieces.Move{Start: pieces.ParseSquare("e2"), End: pieces.ParseSquare("e4")}
	if got := SEE(p, pieces.White, m); got != 0 {
		t.Errorf("SEE(non-capture) = %v, want 0", got)
	}
}

func TestSearchLeavesRootPositionUnmodified(t *testing.T) {
	p := position.StartingPosition()
	before := *p

	BestMove(p, pieces.White, 2, farDeadline())

	if *p != before {
		t.Errorf("search must leave the root position unmodified")
	}
}
