package testutil

import "github.com/lgbarn/chessrules-go/internal/chess"

// Placement puts a piece on a square.
type Placement struct {
	Square chess.Coordinate
	Piece  chess.Piece
}

// At is a Placement at (file, rank), both zero-indexed.
func At(file, rank int, piece chess.Piece) Placement {
	return Placement{Square: chess.Sq(file, rank), Piece: piece}
}

// BoardWith returns an otherwise empty board holding the given pieces,
// White to move and no history.
func BoardWith(placements ...Placement) *chess.Board {
	b := chess.NewBoard()
	for _, p := range placements {
		b.Set(p.Square, p.Piece)
	}
	return b
}

// PlaceholderMove is a history entry that touches no square and moves no
// piece. It only advances the turn.
var PlaceholderMove = chess.Move{From: chess.Sq(-1, -1), To: chess.Sq(-1, -1)}

// PadHistory appends n placeholder moves to b.
func PadHistory(b *chess.Board, n int) {
	for i := 0; i < n; i++ {
		b.AppendMove(PlaceholderMove)
	}
}
