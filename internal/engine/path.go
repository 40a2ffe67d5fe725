package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction returns the unit step from one square toward another.
func direction(from, to chess.Coordinate) (int, int) {
	return sign(to.File - from.File), sign(to.Rank - from.Rank)
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Coordinate) bool {
	df, dr := direction(from, to)

	sq := chess.Sq(from.File+df, from.Rank+dr)
	for sq != to {
		if !IsEmpty(board, sq) {
			return false
		}
		sq = chess.Sq(sq.File+df, sq.Rank+dr)
	}

	return true
}

// isRunClear checks that every square after from up to and including to
// is empty.
func isRunClear(board *chess.Board, from, to chess.Coordinate) bool {
	return isPathClear(board, from, to) && IsEmpty(board, to)
}
