package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var allSquares = chess.AllSquares()

// HasAnyLegalMove returns true if the given colour has at least one legal
// move, ignoring whose turn it is.
func HasAnyLegalMove(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour) {
		for _, to := range allSquares {
			if _, err := ValidateMove(board, from, to, false); err == nil {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move of colour, ordered by source square
// and then destination square (a1..h8).
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		moves = append(moves, LegalMovesFrom(board, from)...)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece standing on from.
func LegalMovesFrom(board *chess.Board, from chess.Coordinate) []chess.Move {
	if IsEmpty(board, from) {
		return nil
	}
	var moves []chess.Move
	for _, to := range allSquares {
		if move, err := ValidateMove(board, from, to, false); err == nil {
			moves = append(moves, move)
		}
	}
	return moves
}
