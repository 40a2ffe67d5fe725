// Package chess provides the board model shared by the rules engine and its hosts.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter maps a letter in either case to its piece type.
func PieceTypeFromLetter(letter byte) (PieceType, bool) {
	switch letter {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoPiece, false
}

// Piece is an immutable (type, colour) pair. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// Empty is the contents of an unoccupied square.
var Empty = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether the piece is the empty value.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(t PieceType, c Colour) bool {
	return p.Type == t && p.Colour == c
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		return l + ('a' - 'A')
	}
	return l
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// MoveType classifies an accepted move. Attack is a non-capturing advance.
type MoveType int

const (
	Attack MoveType = iota
	Capture
	Castling
	EnPassant
)

func (t MoveType) String() string {
	switch t {
	case Attack:
		return "attack"
	case Capture:
		return "capture"
	case Castling:
		return "castling"
	case EnPassant:
		return "en passant"
	}
	return "unknown"
}

// GameState describes the position for the side to move.
type GameState int

const (
	Regular GameState = iota
	Check
	Checkmate
	Stalemate
)

func (s GameState) String() string {
	switch s {
	case Regular:
		return "regular"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// CastlingRights is a bit set of the castling options still allowed by a
// position's setup. History can only take rights away.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the flag for a colour and side.
func CastlingRight(c Colour, kingside bool) CastlingRights {
	switch {
	case c == White && kingside:
		return WhiteKingside
	case c == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// Back ranks and starting pawn ranks, zero-indexed.
	WhiteBackRank = 0
	BlackBackRank = BoardSize - 1
	WhitePawnRank = 1
	BlackPawnRank = BoardSize - 2

	KingFile      = 4
	QueenRookFile = 0
	KingRookFile  = BoardSize - 1
)

// BackRank returns the home rank of a colour's pieces.
func BackRank(c Colour) int {
	if c == White {
		return WhiteBackRank
	}
	return BlackBackRank
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
