// Package position implements the mutable board representation: piece
// bitboards, per-square mirrors, castling rights and the per-square
// pseudo-legal move cache, along with the make/unmake mutation protocol the
// search tree walks.
package position

import (
	"github.com/benthic/plankton/movegen"
	"github.com/benthic/plankton/pieces"
)

// Castling right indices into Position.CastleRights.
const (
	WhiteKingside = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Position is the engine's board state. All fields are exported so the
// search and evaluation packages can read them directly; mutation must go
// through Make/Unmake so the move cache and mirrors stay consistent.
type Position struct {
	// Pieces holds one bitboard per color per kind: Pieces[color][kind].
	Pieces [2][6]uint64

	// SquareColor, SquarePiece and SquareOccupied mirror Pieces for O(1)
	// "what's on this square" lookups, avoiding a 12-bitboard scan per
	// query.
	SquareColor    [64]pieces.Color
	SquarePiece    [64]pieces.Kind
	SquareOccupied [64]bool

	// CastleRights is indexed by WhiteKingside..BlackQueenside.
	CastleRights [4]bool

	// MovesCache[sq] holds the pseudo-legal moves of whatever piece sits
	// on sq. It is rebuilt in full by RefreshMoves after every mutation.
	MovesCache [64]pieces.MoveCache
}

// ReversalToken carries exactly the information Unmake needs to reverse a
// Make call: the captured piece (if any) and the castling rights that were
// in effect before the move. It deliberately does not record en passant
// state; see Unmake's doc comment.
type ReversalToken struct {
	CapturedKind pieces.Kind
	WasCapture   bool
	PriorRights  [4]bool
}

// New returns an empty Position with no pieces placed.
func New() *Position {
	p := &Position{}
	for sq := 0; sq < 64; sq++ {
		p.SquarePiece[sq] = pieces.NoPiece
	}
	return p
}

// StartingPosition returns a Position set up for a new game.
func StartingPosition() *Position {
	p := New()
	for file := 0; file < 8; file++ {
		p.PlacePiece(pieces.White, pieces.Pawn, pieces.Square(8+file))
		p.PlacePiece(pieces.Black, pieces.Pawn, pieces.Square(48+file))
	}
	p.PlacePiece(pieces.White, pieces.Knight, pieces.ParseSquare("b1"))
	p.PlacePiece(pieces.White, pieces.Knight, pieces.ParseSquare("g1"))
	p.PlacePiece(pieces.White, pieces.Bishop, pieces.ParseSquare("c1"))
	p.PlacePiece(pieces.White, pieces.Bishop, pieces.ParseSquare("f1"))
	p.PlacePiece(pieces.White, pieces.Rook, pieces.ParseSquare("a1"))
	p.PlacePiece(pieces.White, pieces.Rook, pieces.ParseSquare("h1"))
	p.PlacePiece(pieces.White, pieces.Queen, pieces.ParseSquare("d1"))
	p.PlacePiece(pieces.White, pieces.King, pieces.ParseSquare("e1"))
	p.PlacePiece(pieces.Black, pieces.Knight, pieces.ParseSquare("b8"))
	p.PlacePiece(pieces.Black, pieces.Knight, pieces.ParseSquare("g8"))
	p.PlacePiece(pieces.Black, pieces.Bishop, pieces.ParseSquare("c8"))
	p.PlacePiece(pieces.Black, pieces.Bishop, pieces.ParseSquare("f8"))
	p.PlacePiece(pieces.Black, pieces.Rook, pieces.ParseSquare("a8"))
	p.PlacePiece(pieces.Black, pieces.Rook, pieces.ParseSquare("h8"))
	p.PlacePiece(pieces.Black, pieces.Queen, pieces.ParseSquare("d8"))
	p.PlacePiece(pieces.Black, pieces.King, pieces.ParseSquare("e8"))
	p.CastleRights = [4]bool{true, true, true, true}
	p.RefreshMoves()
	return p
}

// PlacePiece puts a piece of the given color and kind on sq, without
// touching the move cache. Callers that finish placement in bulk (FEN
// loading, StartingPosition) must call RefreshMoves once afterwards.
func (p *Position) PlacePiece(c pieces.Color, k pieces.Kind, sq pieces.Square) {
	p.Pieces[c][k] |= sq.Bitboard()
	p.SquareColor[sq] = c
	p.SquarePiece[sq] = k
	p.SquareOccupied[sq] = true
}

// RemovePiece clears whatever piece sits on sq, if any.
func (p *Position) RemovePiece(sq pieces.Square) {
	if !p.SquareOccupied[sq] {
		return
	}
	c, k := p.SquareColor[sq], p.SquarePiece[sq]
	p.Pieces[c][k] &^= sq.Bitboard()
	p.SquarePiece[sq] = pieces.NoPiece
	p.SquareOccupied[sq] = false
}

// Occupied returns the full-board occupancy bitboard.
func (p *Position) Occupied() uint64 {
	var bb uint64
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			bb |= p.Pieces[c][k]
		}
	}
	return bb
}

// Clone returns an independent copy of p. Search workers each clone the
// root position once so they can Make/Unmake without racing each other,
// per the no-shared-mutable-state concurrency model.
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// Make applies move m, played by color c, mutating p in place and
// returning a ReversalToken that Unmake consumes to reverse it. It follows
// the reference engine's make_move: mirrors and bitboards are
// updated directly (no clone/restore), castling rook hops and promotions
// are special-cased inline, and the move cache is rebuilt before
// returning. A king move revokes only the mover's own two castling
// rights.
//
// Make does not synthesize en passant or castling tags itself; the move
// source (movegen.GenMove for castling, or a UCI move decoder) must set
// m.Special before Make is called.
func (p *Position) Make(c pieces.Color, m pieces.Move) ReversalToken {
	kind := p.SquarePiece[m.Start]
	opponent := c.Opponent()

	p.SquareOccupied[m.Start] = false
	p.SquarePiece[m.Start] = pieces.NoPiece

	var captured pieces.Kind = pieces.NoPiece
	wasCapture := false
	if p.SquareOccupied[m.End] {
		captured = p.SquarePiece[m.End]
		wasCapture = true
		p.Pieces[opponent][captured] &^= m.End.Bitboard()
	}

	p.SquareOccupied[m.End] = true
	p.SquareColor[m.End] = c
	p.SquarePiece[m.End] = kind
	p.Pieces[c][kind] &^= m.Start.Bitboard()
	p.Pieces[c][kind] |= m.End.Bitboard()

	priorRights := p.CastleRights

	switch kind {
	case pieces.King:
		if c == pieces.White {
			p.CastleRights[WhiteKingside] = false
			p.CastleRights[WhiteQueenside] = false
		} else {
			p.CastleRights[BlackKingside] = false
			p.CastleRights[BlackQueenside] = false
		}
		switch m.Special {
		case pieces.CastleKingside:
			p.moveRook(c, m.End+1, m.End-1)
		case pieces.CastleQueenside:
			p.moveRook(c, m.End-2, m.End+1)
		}

	case pieces.Rook:
		switch m.Start {
		case pieces.ParseSquare("h1"):
			p.CastleRights[WhiteKingside] = false
		case pieces.ParseSquare("a1"):
			p.CastleRights[WhiteQueenside] = false
		case pieces.ParseSquare("h8"):
			p.CastleRights[BlackKingside] = false
		case pieces.ParseSquare("a8"):
			p.CastleRights[BlackQueenside] = false
		}

	case pieces.Pawn:
		if promoted := m.Special.PromotedKind(); promoted != pieces.NoPiece {
			p.Pieces[c][pieces.Pawn] &^= m.End.Bitboard()
			p.Pieces[c][promoted] |= m.End.Bitboard()
			p.SquarePiece[m.End] = promoted
		} else if m.Special == pieces.EnPassant {
			capturedSq := epCapturedSquare(c, m)
			p.Pieces[opponent][pieces.Pawn] &^= capturedSq.Bitboard()
			p.SquareOccupied[capturedSq] = false
			p.SquarePiece[capturedSq] = pieces.NoPiece
		}
	}

	p.RefreshMoves()

	return ReversalToken{
		CapturedKind: captured,
		WasCapture:   wasCapture,
		PriorRights:  priorRights,
	}
}

// Unmake reverses the effect of Make(c, m), given the ReversalToken Make
// returned.
//
// En passant needs special handling here: the captured pawn never sits on
// m.End (that square is empty by definition of the capture), so it isn't
// covered by the token's CapturedKind/WasCapture fields. Unmake
// recomputes its square the same way Make removed it and restores it
// directly, rather than threading it through the token.
func (p *Position) Unmake(c pieces.Color, m pieces.Move, tok ReversalToken) {
	kind := p.SquarePiece[m.End]
	opponent := c.Opponent()

	p.SquareOccupied[m.End] = false
	p.SquarePiece[m.End] = pieces.NoPiece

	if tok.WasCapture {
		p.Pieces[opponent][tok.CapturedKind] |= m.End.Bitboard()
		p.SquareOccupied[m.End] = true
		p.SquareColor[m.End] = opponent
		p.SquarePiece[m.End] = tok.CapturedKind
	}

	origKind := kind
	if promoted := m.Special.PromotedKind(); promoted != pieces.NoPiece {
		origKind = pieces.Pawn
	}

	p.SquareOccupied[m.Start] = true
	p.SquareColor[m.Start] = c
	p.SquarePiece[m.Start] = origKind
	p.Pieces[c][origKind] |= m.Start.Bitboard()
	p.Pieces[c][kind] &^= m.End.Bitboard()

	p.CastleRights = tok.PriorRights

	switch kind {
	case pieces.King:
		switch m.Special {
		case pieces.CastleKingside:
			p.moveRook(c, m.End-1, m.End+1)
		case pieces.CastleQueenside:
			p.moveRook(c, m.End+1, m.End-2)
		}
	case pieces.Pawn:
		if m.Special == pieces.EnPassant {
			capturedSq := epCapturedSquare(c, m)
			p.Pieces[opponent][pieces.Pawn] |= capturedSq.Bitboard()
			p.SquareOccupied[capturedSq] = true
			p.SquareColor[capturedSq] = opponent
			p.SquarePiece[capturedSq] = pieces.Pawn
		}
	}

	p.RefreshMoves()
}

// moveRook relocates the castling rook from `from` to `to`, used by both
// Make and Unmake to perform the rook hop side of castling.
func (p *Position) moveRook(c pieces.Color, from, to pieces.Square) {
	p.Pieces[c][pieces.Rook] &^= from.Bitboard()
	p.Pieces[c][pieces.Rook] |= to.Bitboard()
	p.SquareOccupied[from] = false
	p.SquarePiece[from] = pieces.NoPiece
	p.SquareOccupied[to] = true
	p.SquareColor[to] = c
	p.SquarePiece[to] = pieces.Rook
}

// epCapturedSquare returns the square of the pawn captured en passant by
// a pawn moving m.Start -> m.End for color c.
func epCapturedSquare(c pieces.Color, m pieces.Move) pieces.Square {
	diff := int(m.End) - int(m.Start)
	if c == pieces.White {
		if diff == 7 {
			return m.Start - 1
		}
		return m.Start + 1
	}
	if diff == -7 {
		return m.Start + 1
	}
	return m.Start - 1
}

// RefreshMoves recomputes MovesCache for every occupied square from
// scratch. It is called after every Make/Unmake and after bulk piece
// placement; InCheck and the search's move enumeration both read the
// cache it produces rather than regenerating moves themselves.
func (p *Position) RefreshMoves() {
	occupied := p.Occupied()
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[sq] {
			p.MovesCache[sq] = pieces.MoveCache{}
			continue
		}
		p.MovesCache[sq] = movegen.GenMove(
			p.SquareColor[sq],
			p.SquarePiece[sq],
			pieces.Square(sq),
			occupied,
			p.CastleRights,
		)
	}
}

// InCheck reports whether color c's king is attacked in the current
// position. It scans the opponent's cached pseudo-legal moves rather than
// generating attacks fresh, matching the reference engine's approach.
func (p *Position) InCheck(c pieces.Color) bool {
	opponent := c.Opponent()
	kingBB := p.Pieces[c][pieces.King]
	for sq := 0; sq < 64; sq++ {
		if !p.SquareOccupied[sq] || p.SquareColor[sq] != opponent {
			continue
		}
		for _, m := range p.MovesCache[sq].Slice() {
			if m.End.Bitboard()&kingBB != 0 {
				return true
			}
		}
	}
	return false
}
