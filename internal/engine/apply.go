package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ApplyMove applies an already validated move to the board and records it
// in the history. Castling also moves the rook, and an en passant capture
// removes the pawn that was passed.
func ApplyMove(board *chess.Board, move chess.Move) {
	placeMove(board, move)
	board.AppendMove(move)
}

// Play validates from -> to for the side to move and applies it.
// The board is left untouched when the move is rejected.
func Play(board *chess.Board, from, to chess.Coordinate) (chess.Move, error) {
	move, err := ValidateMove(board, from, to, true)
	if err != nil {
		return chess.Move{}, err
	}
	ApplyMove(board, move)
	return move, nil
}

// placeMove updates the squares for move without touching the history.
func placeMove(board *chess.Board, move chess.Move) {
	board.Clear(move.From)
	board.Set(move.To, move.Piece)

	switch move.Type {
	case chess.Castling:
		rookFrom, rookTo := castlingRookMove(move)
		rook := board.Get(rookFrom)
		board.Clear(rookFrom)
		board.Set(rookTo, rook)
	case chess.EnPassant:
		board.Clear(enPassantVictim(move.To, move.Piece.Colour))
	}
}
