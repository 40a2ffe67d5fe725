package chess

// Board is an 8x8 arena of pieces plus the moves played on it.
// The zero value is not ready for use; call NewBoard.
type Board struct {
	squares [BoardSize * BoardSize]Piece

	// Moves applied to this board, oldest first. Append-only.
	History []Move

	// The side to move when History is empty.
	InitialToMove Colour

	// Castling options allowed by the setup. History can only remove them.
	Castling CastlingRights

	// Is an en passant capture possible before any move was played?
	// If so EPSquare is the square the capturing pawn lands on.
	EnPassant bool
	EPSquare  Coordinate

	// Move counters of the setup position, as read from FEN.
	MoveNumber    int
	HalfmoveClock int
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	return &Board{
		InitialToMove: White,
		Castling:      AllCastling,
		MoveNumber:    1,
	}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// clears the history.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize * BoardSize]Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(file, WhiteBackRank), W(backRank[file]))
		b.Set(Sq(file, WhitePawnRank), W(Pawn))
		b.Set(Sq(file, BlackPawnRank), B(Pawn))
		b.Set(Sq(file, BlackBackRank), B(backRank[file]))
	}

	b.History = nil
	b.InitialToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.MoveNumber = 1
	b.HalfmoveClock = 0
}

// Get returns the piece on c, or Empty if c is off the board.
func (b *Board) Get(c Coordinate) Piece {
	if !c.OnBoard() {
		return Empty
	}
	return b.squares[c.index()]
}

// Set places a piece on c. Off-board coordinates are ignored.
func (b *Board) Set(c Coordinate, p Piece) {
	if !c.OnBoard() {
		return
	}
	if p.Type == NoPiece {
		p = Empty
	}
	b.squares[c.index()] = p
}

// Clear empties c.
func (b *Board) Clear(c Coordinate) {
	b.Set(c, Empty)
}

// Clone returns a deep copy: the squares are copied by value and the
// history gets its own backing array.
func (b *Board) Clone() *Board {
	nb := *b
	if b.History != nil {
		nb.History = make([]Move, len(b.History))
		copy(nb.History, b.History)
	}
	return &nb
}

// SideToMove derives whose turn it is from the initial side and the
// number of moves played.
func (b *Board) SideToMove() Colour {
	if len(b.History)%2 == 0 {
		return b.InitialToMove
	}
	return b.InitialToMove.Opposite()
}

// LastMove returns the most recent move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.History) == 0 {
		return Move{}, false
	}
	return b.History[len(b.History)-1], true
}

// AppendMove records a move in the history without touching the squares.
func (b *Board) AppendMove(m Move) {
	b.History = append(b.History, m)
}

// Ply returns the number of moves played.
func (b *Board) Ply() int {
	return len(b.History)
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(c Colour) (Coordinate, bool) {
	for i, p := range b.squares {
		if p.Is(King, c) {
			return Sq(i%BoardSize, i/BoardSize), true
		}
	}
	return Coordinate{}, false
}

// Occupied returns the squares holding pieces of colour c, in a1..h8 order.
func (b *Board) Occupied(c Colour) []Coordinate {
	var squares []Coordinate
	for i, p := range b.squares {
		if !p.IsEmpty() && p.Colour == c {
			squares = append(squares, Sq(i%BoardSize, i/BoardSize))
		}
	}
	return squares
}

// PieceMoved reports whether a history entry moved a piece equal to p.
func (b *Board) PieceMoved(p Piece) bool {
	for _, m := range b.History {
		if m.Piece == p {
			return true
		}
	}
	return false
}

// SquareTouched reports whether any history entry started or ended on sq.
func (b *Board) SquareTouched(sq Coordinate) bool {
	for _, m := range b.History {
		if m.Touches(sq) {
			return true
		}
	}
	return false
}

// AllSquares returns every on-board coordinate in a1..h8 order.
func AllSquares() []Coordinate {
	squares := make([]Coordinate, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, Sq(file, rank))
		}
	}
	return squares
}
