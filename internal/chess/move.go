package chess

// Move is a validated, classified move. It is only produced by the rules
// engine and is the element type of a board's history.
type Move struct {
	From  Coordinate
	To    Coordinate
	Piece Piece
	Type  MoveType
}

// UCI returns the move in coordinate notation, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.String() + m.To.String()
}

// String returns the coordinate notation of the move.
func (m Move) String() string {
	return m.UCI()
}

// IsCapture returns true if this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == EnPassant
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == Castling
}

// IsDoublePawnPush reports whether the move is a pawn's two-square advance.
func (m Move) IsDoublePawnPush() bool {
	if m.Piece.Type != Pawn || m.From.File != m.To.File {
		return false
	}
	d := m.To.Rank - m.From.Rank
	return d == 2 || d == -2
}

// Touches reports whether sq is the origin or destination of the move.
func (m Move) Touches(sq Coordinate) bool {
	return m.From == sq || m.To == sq
}
