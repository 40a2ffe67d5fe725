// Package engine decides whether moves are legal, classifies them, and
// answers check, checkmate and stalemate questions about a board.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Rejection reasons carried by *errors.MoveError.
const (
	ReasonOffBoard         = "square is off the board"
	ReasonNotYourTurn      = "piece does not belong to the side to move"
	ReasonEmptySource      = "source square is empty"
	ReasonNullMove         = "source and destination are the same square"
	ReasonGeometry         = "piece cannot move that way"
	ReasonTooFar           = "move is too long for this piece"
	ReasonObstructed       = "path is obstructed"
	ReasonOwnPiece         = "destination holds a friendly piece"
	ReasonKingCapture      = "kings cannot be captured"
	ReasonPawnBackward     = "pawns only move forward"
	ReasonPawnBlocked      = "pawn advance is blocked"
	ReasonNoEnPassant      = "en passant is not available"
	ReasonCastlingSetup    = "king or rook is not on its home square"
	ReasonCastlingBlocked  = "castling path is obstructed"
	ReasonCastlingRights   = "king or rook has already moved"
	ReasonCastlingAttacked = "king would cross an attacked square"
	ReasonKingExposed      = "move leaves the king attacked"
)

// validation holds the state of a single validator run.
//
// A probe run answers "does the piece on from attack to": it skips the turn
// check, the king-safety check and castling, and it may land on a king.
type validation struct {
	board       *chess.Board
	from, to    chess.Coordinate
	piece       chess.Piece
	enforceTurn bool
	probe       bool
}

// ValidateMove checks the move from -> to on board and returns it
// classified. With enforceTurn the piece must belong to the side to move.
//
// Rejections are *errors.MoveError wrapping errors.ErrIllegalMove for rule
// violations or errors.ErrKingInCheck when the move would expose the
// mover's king. The board is never modified.
func ValidateMove(board *chess.Board, from, to chess.Coordinate, enforceTurn bool) (chess.Move, error) {
	v := validation{board: board, from: from, to: to, enforceTurn: enforceTurn}
	return v.run()
}

// attacks reports whether the piece on from could move onto to, ignoring
// whose turn it is and the safety of its own king.
func attacks(board *chess.Board, from, to chess.Coordinate) bool {
	v := validation{board: board, from: from, to: to, probe: true}
	_, err := v.run()
	return err == nil
}

func (v *validation) run() (chess.Move, error) {
	if OutOfBoard(v.from, v.to) {
		return v.reject(ReasonOffBoard)
	}

	v.piece = v.board.Get(v.from)
	if v.enforceTurn && !v.piece.IsEmpty() && v.piece.Colour != v.board.SideToMove() {
		return v.reject(ReasonNotYourTurn)
	}
	if v.piece.IsEmpty() {
		return v.reject(ReasonEmptySource)
	}
	if SameSquare(v.from, v.to) {
		return v.reject(ReasonNullMove)
	}

	switch v.piece.Type {
	case chess.King:
		return v.king()
	case chess.Queen:
		if !IsStraight(v.from, v.to) && !IsDiagonal(v.from, v.to) {
			return v.reject(ReasonGeometry)
		}
		return v.slide()
	case chess.Bishop:
		if !IsDiagonal(v.from, v.to) {
			return v.reject(ReasonGeometry)
		}
		return v.slide()
	case chess.Rook:
		if !IsStraight(v.from, v.to) {
			return v.reject(ReasonGeometry)
		}
		return v.slide()
	case chess.Knight:
		if !IsLShaped(v.from, v.to) {
			return v.reject(ReasonGeometry)
		}
		return v.finish()
	case chess.Pawn:
		return v.pawn()
	}
	return v.reject(ReasonGeometry)
}

func (v *validation) king() (chess.Move, error) {
	if !v.probe && abs(v.to.File-v.from.File) == 2 && v.to.Rank == v.from.Rank {
		return v.castle()
	}
	if TooLong(v.from, v.to, 1) {
		return v.reject(ReasonTooFar)
	}
	return v.finish()
}

func (v *validation) slide() (chess.Move, error) {
	if !isPathClear(v.board, v.from, v.to) {
		return v.reject(ReasonObstructed)
	}
	return v.finish()
}

// finish classifies a non-pawn, non-castling move by what stands on the
// destination square.
func (v *validation) finish() (chess.Move, error) {
	target := v.board.Get(v.to)
	if target.IsEmpty() {
		return v.accept(chess.Attack)
	}
	return v.capture(target)
}

func (v *validation) capture(target chess.Piece) (chess.Move, error) {
	if !IsEnemy(v.piece, target) {
		return v.reject(ReasonOwnPiece)
	}
	if target.Type == chess.King && !v.probe {
		return v.reject(ReasonKingCapture)
	}
	return v.accept(chess.Capture)
}

// accept builds the move and, outside probes, runs the king-safety check.
func (v *validation) accept(t chess.MoveType) (chess.Move, error) {
	move := chess.Move{From: v.from, To: v.to, Piece: v.piece, Type: t}
	if v.probe {
		return move, nil
	}
	if moveExposesKing(v.board, v.piece.Colour, move) {
		return chess.Move{}, &errors.MoveError{
			Err:    errors.ErrKingInCheck,
			Reason: ReasonKingExposed,
			From:   v.from.String(),
			To:     v.to.String(),
		}
	}
	return move, nil
}

func (v *validation) reject(reason string) (chess.Move, error) {
	return chess.Move{}, &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Reason: reason,
		From:   v.from.String(),
		To:     v.to.String(),
	}
}
