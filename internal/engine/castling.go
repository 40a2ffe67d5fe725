package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castle validates a two-square king move along its home rank.
func (v *validation) castle() (chess.Move, error) {
	colour := v.piece.Colour
	kingside := v.to.File > v.from.File
	rookHome := rookHomeSquare(colour, kingside)

	if v.from != kingHomeSquare(colour) {
		return v.reject(ReasonCastlingSetup)
	}
	if !isPathClear(v.board, v.from, rookHome) || !IsEmpty(v.board, v.to) {
		return v.reject(ReasonCastlingBlocked)
	}
	if !v.board.Get(rookHome).Is(chess.Rook, colour) {
		return v.reject(ReasonCastlingSetup)
	}
	if !castlingRightIntact(v.board, colour, kingside) {
		return v.reject(ReasonCastlingRights)
	}

	passed := chess.Sq(v.from.File+sign(v.to.File-v.from.File), v.from.Rank)
	if IsInCheck(v.board, colour) ||
		moveExposesKing(v.board, colour, chess.Move{From: v.from, To: passed, Piece: v.piece}) ||
		moveExposesKing(v.board, colour, chess.Move{From: v.from, To: v.to, Piece: v.piece}) {
		return v.reject(ReasonCastlingAttacked)
	}

	return chess.Move{From: v.from, To: v.to, Piece: v.piece, Type: chess.Castling}, nil
}

// castlingRightIntact reports whether neither the king nor the rook for the
// given side has moved, according to the setup rights and the history.
func castlingRightIntact(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !board.Castling.Has(chess.CastlingRight(colour, kingside)) {
		return false
	}
	if board.PieceMoved(chess.Piece{Type: chess.King, Colour: colour}) {
		return false
	}
	return !board.SquareTouched(rookHomeSquare(colour, kingside))
}

// CastlingAvailable reports whether colour still holds the castling right
// for the given side: the right is intact and the king and rook stand on
// their home squares. Attacks and obstructions are not considered.
func CastlingAvailable(board *chess.Board, colour chess.Colour, kingside bool) bool {
	return board.Get(kingHomeSquare(colour)).Is(chess.King, colour) &&
		board.Get(rookHomeSquare(colour, kingside)).Is(chess.Rook, colour) &&
		castlingRightIntact(board, colour, kingside)
}

func kingHomeSquare(colour chess.Colour) chess.Coordinate {
	return chess.Sq(chess.KingFile, chess.BackRank(colour))
}

func rookHomeSquare(colour chess.Colour, kingside bool) chess.Coordinate {
	if kingside {
		return chess.Sq(chess.KingRookFile, chess.BackRank(colour))
	}
	return chess.Sq(chess.QueenRookFile, chess.BackRank(colour))
}

// castlingRookMove returns the rook's from and to squares for a castling
// king move.
func castlingRookMove(king chess.Move) (chess.Coordinate, chess.Coordinate) {
	if king.To.File > king.From.File {
		return chess.Sq(chess.KingRookFile, king.From.Rank), chess.Sq(king.To.File-1, king.From.Rank)
	}
	return chess.Sq(chess.QueenRookFile, king.From.Rank), chess.Sq(king.To.File+1, king.From.Rank)
}
