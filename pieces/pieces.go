// Package pieces contains the core value types shared across the engine:
// colors, piece kinds, squares, moves and the bounded per-square move list.
package pieces

// Color identifies the side to move or the owner of a piece.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Kind identifies a piece type. The ordering is fixed and matters for SEE:
// a lower index means lower material value among attackers.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// NoPiece marks the absence of a piece on a square.
	NoPiece Kind = -1
)

// Symbol returns the standard single-letter piece symbol, uppercase for
// white and lowercase for black. Panics if k is NoPiece.
func (k Kind) Symbol(c Color) byte {
	symbols := [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	s := symbols[k]
	if c == Black {
		s += 'a' - 'A'
	}
	return s
}

// Square is a board index in [0,63]. Square 0 is a1; file = square%8,
// rank = square/8.
type Square int

const NoSquare Square = -1

// File returns the file of s, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank of s, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return int(s) / 8 }

// Bitboard returns the single-bit bitboard for s.
func (s Square) Bitboard() uint64 { return 1 << uint(s) }

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic name of s, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return squareNames[s]
}

// ParseSquare parses an algebraic square name such as "e4" into a Square.
// Returns NoSquare if str is not a valid square name.
func ParseSquare(str string) Square {
	if len(str) != 2 {
		return NoSquare
	}
	file := str[0] - 'a'
	rank := str[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare
	}
	return Square(int(rank)*8 + int(file))
}

// SpecialTag marks a move as something other than a quiet move or a plain
// capture.
type SpecialTag int

const (
	None SpecialTag = iota
	KnightPromotion
	BishopPromotion
	RookPromotion
	QueenPromotion
	EnPassant
	CastleKingside
	CastleQueenside
)

// PromotedKind returns the piece kind a pawn promotes to for tag, or
// NoPiece if tag is not a promotion.
func (tag SpecialTag) PromotedKind() Kind {
	switch tag {
	case KnightPromotion:
		return Knight
	case BishopPromotion:
		return Bishop
	case RookPromotion:
		return Rook
	case QueenPromotion:
		return Queen
	default:
		return NoPiece
	}
}

// Move is the triple (start square, end square, special tag) describing a
// single half-move. It carries no piece or capture information — that is
// read from the Position at apply time.
type Move struct {
	Start   Square
	End     Square
	Special SpecialTag
}

// MaxMovesPerSquare bounds the number of pseudo-legal moves a single piece
// on a single square can have: the queen's 27 destinations, plus one slot
// of headroom for a castling candidate alongside a king's 8 destinations.
const MaxMovesPerSquare = 28

// MoveCache holds the pseudo-legal moves of a single piece on a single
// square, as a fixed-capacity array to avoid per-ply heap allocation.
type MoveCache struct {
	Moves [MaxMovesPerSquare]Move
	Count int
}

// Push appends m to the cache. The caller must ensure Count never exceeds
// MaxMovesPerSquare.
func (mc *MoveCache) Push(m Move) {
	mc.Moves[mc.Count] = m
	mc.Count++
}

// Slice returns the populated prefix of Moves.
func (mc *MoveCache) Slice() []Move {
	return mc.Moves[:mc.Count]
}
