package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// The predicates below are the vocabulary of the validator. They look at
// coordinates and pieces only and never consult move history.

// OutOfBoard reports whether either coordinate is off the board.
func OutOfBoard(from, to chess.Coordinate) bool {
	return !from.OnBoard() || !to.OnBoard()
}

// SameSquare reports whether from and to are the same square.
func SameSquare(from, to chess.Coordinate) bool {
	return from == to
}

// TooLong reports whether the delta along either axis exceeds maxRange.
func TooLong(from, to chess.Coordinate, maxRange int) bool {
	return abs(to.File-from.File) > maxRange || abs(to.Rank-from.Rank) > maxRange
}

// IsStraight reports whether exactly one axis changes.
func IsStraight(from, to chess.Coordinate) bool {
	return (from.File == to.File) != (from.Rank == to.Rank)
}

// IsDiagonal reports whether both axes change by the same amount.
func IsDiagonal(from, to chess.Coordinate) bool {
	return abs(to.File-from.File) == abs(to.Rank-from.Rank)
}

// IsLShaped reports whether the move is a knight jump.
func IsLShaped(from, to chess.Coordinate) bool {
	df := abs(to.File - from.File)
	dr := abs(to.Rank - from.Rank)
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

// ForwardFor reports whether to lies strictly ahead of from for colour.
func ForwardFor(colour chess.Colour, from, to chess.Coordinate) bool {
	if colour == chess.White {
		return to.Rank > from.Rank
	}
	return to.Rank < from.Rank
}

// FirstPawnRank reports whether c is on the starting pawn rank of colour.
func FirstPawnRank(colour chess.Colour, c chess.Coordinate) bool {
	if colour == chess.White {
		return c.Rank == chess.WhitePawnRank
	}
	return c.Rank == chess.BlackPawnRank
}

// IsEnemy reports whether a and b are both pieces and of different colours.
func IsEnemy(a, b chess.Piece) bool {
	return !a.IsEmpty() && !b.IsEmpty() && a.Colour != b.Colour
}

// IsEmpty reports whether c is an empty square.
func IsEmpty(board *chess.Board, c chess.Coordinate) bool {
	return board.Get(c).IsEmpty()
}
