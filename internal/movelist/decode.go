package movelist

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// isCol returns true if c is a valid file letter.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank digit.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isSeparator(c byte) bool {
	return c == '-' || c == 'x'
}

// DecodeMove splits a move token into its source and destination squares.
// Check and annotation suffixes are dropped. Numeric squares may lie off
// the board; the rules engine rejects those.
func DecodeMove(text string) (from, to chess.Coordinate, err error) {
	move := strings.ToLower(strings.TrimRight(text, "+#!?"))
	if strings.Contains(move, ",") {
		return decodeNumeric(text, move)
	}

	switch {
	case len(move) == 4:
	case len(move) == 5 && isSeparator(move[2]):
		move = move[:2] + move[3:]
	default:
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidScript)
	}
	if !isCol(move[0]) || !isRank(move[1]) || !isCol(move[2]) || !isRank(move[3]) {
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidScript)
	}
	from = chess.Sq(int(move[0]-'a'), int(move[1]-'1'))
	to = chess.Sq(int(move[2]-'a'), int(move[3]-'1'))
	return from, to, nil
}

// decodeNumeric handles "file,rank-file,rank". The separator is the first
// '-' or 'x' following the first square's rank digits.
func decodeNumeric(text, move string) (from, to chess.Coordinate, err error) {
	comma := strings.IndexByte(move, ',')
	i := comma + 1
	if i < len(move) && move[i] == '-' {
		i++
	}
	for i < len(move) && move[i] >= '0' && move[i] <= '9' {
		i++
	}
	if i >= len(move) || !isSeparator(move[i]) {
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidScript)
	}
	from, err = chess.ParseSquare(move[:i])
	if err != nil {
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidScript)
	}
	to, err = chess.ParseSquare(move[i+1:])
	if err != nil || !strings.Contains(move[i+1:], ",") {
		return from, to, fmt.Errorf("move %q: %w", text, errors.ErrInvalidScript)
	}
	return from, to, nil
}

// EncodeMove writes a move in the canonical script form. Squares off the
// board use the numeric form.
func EncodeMove(from, to chess.Coordinate) string {
	if from.OnBoard() && to.OnBoard() {
		return from.String() + to.String()
	}
	return fmt.Sprintf("%d,%d-%d,%d", from.File, from.Rank, to.File, to.Rank)
}
