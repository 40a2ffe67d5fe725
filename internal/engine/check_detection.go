package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move onto sq.
func IsSquareAttacked(board *chess.Board, sq chess.Coordinate, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		if attacks(board, from, sq) {
			return true
		}
	}
	return false
}

// WouldExposeOwnKing reports whether playing from -> to would leave the
// king of colour attacked. The move is simulated on a clone of the board,
// including the rook of a castling move and the pawn taken en passant.
func WouldExposeOwnKing(board *chess.Board, colour chess.Colour, from, to chess.Coordinate) bool {
	piece := board.Get(from)
	move := chess.Move{From: from, To: to, Piece: piece, Type: chess.Attack}
	switch {
	case piece.Type == chess.Pawn && from.File != to.File && IsEmpty(board, to):
		move.Type = chess.EnPassant
	case piece.Type == chess.King && abs(to.File-from.File) == 2 && from.Rank == to.Rank:
		move.Type = chess.Castling
	case !IsEmpty(board, to):
		move.Type = chess.Capture
	}
	return moveExposesKing(board, colour, move)
}

func moveExposesKing(board *chess.Board, colour chess.Colour, move chess.Move) bool {
	sim := board.Clone()
	placeMove(sim, move)
	sim.AppendMove(move)
	return IsInCheck(sim, colour)
}
