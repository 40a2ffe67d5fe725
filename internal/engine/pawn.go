package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

func (v *validation) pawn() (chess.Move, error) {
	colour := v.piece.Colour
	if !ForwardFor(colour, v.from, v.to) {
		return v.reject(ReasonPawnBackward)
	}

	switch {
	case IsStraight(v.from, v.to):
		if v.probe {
			// Pawns never attack along their file.
			return v.reject(ReasonGeometry)
		}
		maxRange := 1
		if FirstPawnRank(colour, v.from) {
			maxRange = 2
		}
		if TooLong(v.from, v.to, maxRange) {
			return v.reject(ReasonTooFar)
		}
		if !isRunClear(v.board, v.from, v.to) {
			return v.reject(ReasonPawnBlocked)
		}
		return v.accept(chess.Attack)

	case IsDiagonal(v.from, v.to):
		if TooLong(v.from, v.to, 1) {
			return v.reject(ReasonTooFar)
		}
		target := v.board.Get(v.to)
		if !target.IsEmpty() {
			return v.capture(target)
		}
		if v.probe {
			return v.accept(chess.Capture)
		}
		if !enPassantAvailable(v.board, colour, v.to) {
			return v.reject(ReasonNoEnPassant)
		}
		return v.accept(chess.EnPassant)
	}

	return v.reject(ReasonGeometry)
}

// enPassantAvailable reports whether a pawn of colour may capture en
// passant by moving to target. The opposing pawn must have just made a
// two-square advance to the square directly behind target. Before any
// move is played the board's setup en passant square is used instead.
func enPassantAvailable(board *chess.Board, colour chess.Colour, target chess.Coordinate) bool {
	victim := enPassantVictim(target, colour)
	enemyPawn := chess.Piece{Type: chess.Pawn, Colour: colour.Opposite()}

	last, ok := board.LastMove()
	if !ok {
		return board.EnPassant && board.EPSquare == target && board.Get(victim) == enemyPawn
	}
	return last.Piece == enemyPawn && last.IsDoublePawnPush() && last.To == victim
}

// enPassantVictim returns the square of the pawn taken by an en passant
// capture landing on target.
func enPassantVictim(target chess.Coordinate, colour chess.Colour) chess.Coordinate {
	return chess.Sq(target.File, target.Rank-chess.ColourOffset(colour))
}

// EnPassantTarget returns the square a pawn would land on to capture en
// passant in the current position, if the last move was a double push (or,
// before any move, if the setup named one). It does not check that a
// capturing pawn exists.
func EnPassantTarget(board *chess.Board) (chess.Coordinate, bool) {
	last, ok := board.LastMove()
	switch {
	case ok && last.IsDoublePawnPush():
		return chess.Sq(last.To.File, (last.From.Rank+last.To.Rank)/2), true
	case !ok && board.EnPassant:
		return board.EPSquare, true
	}
	return chess.Coordinate{}, false
}
