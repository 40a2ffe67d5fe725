package output

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var unicodeGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

const boardBorder = "  +-----------------+\n"

// RenderBoard draws the board with rank 8 at the top. Pieces are FEN
// letters, or chess glyphs when unicode is set; empty squares are dots.
func RenderBoard(board *chess.Board, unicode bool) string {
	var sb strings.Builder
	sb.WriteString(boardBorder)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString(" |")
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteString(pieceGlyph(board.Get(chess.Sq(file, rank)), unicode))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString(boardBorder)
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}

func pieceGlyph(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return unicodeGlyphs[p]
	}
	return string(p.FENLetter())
}
