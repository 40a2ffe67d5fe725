package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Only the piece
// placement field is required; missing fields take their usual defaults.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many fields (%d): %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// MustBoardFromFEN is NewBoardFromFEN for positions known to be valid.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewInitialBoard()
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pieceType, ok := chess.PieceTypeFromLetter(byte(c))
			if !ok || c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.Sq(file, rank), chess.Piece{Type: pieceType, Colour: colour})
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.InitialToMove = chess.White
	case "b":
		board.InitialToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	board.Castling = chess.NoCastling
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling |= chess.WhiteKingside
		case 'Q':
			board.Castling |= chess.WhiteQueenside
		case 'k':
			board.Castling |= chess.BlackKingside
		case 'q':
			board.Castling |= chess.BlackQueenside
		default:
			return fmt.Errorf("invalid castling availability: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil || strings.Contains(parts[3], ",") {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	wantRank := 5
	if board.InitialToMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank != wantRank {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = n
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling availability and
// the en passant square take the move history into account.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", halfmoveClock(board), fullmoveNumber(board))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, opt := range []struct {
		colour   chess.Colour
		kingside bool
		letter   byte
	}{
		{chess.White, true, 'K'},
		{chess.White, false, 'Q'},
		{chess.Black, true, 'k'},
		{chess.Black, false, 'q'},
	} {
		if CastlingAvailable(board, opt.colour, opt.kingside) {
			sb.WriteByte(opt.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := EnPassantTarget(board); ok {
		sb.WriteString(target.String())
		return
	}
	sb.WriteByte('-')
}

// halfmoveClock counts plies since the last pawn move or capture.
func halfmoveClock(board *chess.Board) int {
	n := board.HalfmoveClock
	for _, m := range board.History {
		if m.Piece.Type == chess.Pawn || m.IsCapture() {
			n = 0
			continue
		}
		n++
	}
	return n
}

func fullmoveNumber(board *chess.Board) int {
	plies := board.Ply()
	if board.InitialToMove == chess.Black {
		plies++
	}
	return board.MoveNumber + plies/2
}
