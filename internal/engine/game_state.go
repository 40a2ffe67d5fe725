package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasAnyLegalMove(board, colour)
}

// Status evaluates the position for the side to move.
func Status(board *chess.Board) chess.GameState {
	return StateFor(board, board.SideToMove())
}

// StateFor evaluates the position for colour.
func StateFor(board *chess.Board, colour chess.Colour) chess.GameState {
	inCheck := IsInCheck(board, colour)
	canMove := HasAnyLegalMove(board, colour)
	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case inCheck:
		return chess.Check
	case !canMove:
		return chess.Stalemate
	}
	return chess.Regular
}
