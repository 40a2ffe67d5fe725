package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Coordinate is a (file, rank) pair. Both are valid in [0,7]; other values
// can be represented and must be range-checked before use.
type Coordinate struct {
	File int
	Rank int
}

// Sq creates a coordinate.
func Sq(file, rank int) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

// OnBoard reports whether both components are in range.
func (c Coordinate) OnBoard() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// String returns algebraic notation ("e4"), or "(file,rank)" off the board.
func (c Coordinate) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte('a' + c.File), byte('1' + c.Rank)})
}

func (c Coordinate) index() int {
	return c.Rank*BoardSize + c.File
}

// ParseSquare parses a square in algebraic ("e2") or numeric ("4,1") form.
// Numeric coordinates outside the board are returned as-is so validation can
// reject them; algebraic ones must be on the board.
func ParseSquare(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if file, rank, ok := strings.Cut(s, ","); ok {
		f, ferr := strconv.Atoi(strings.TrimSpace(file))
		r, rerr := strconv.Atoi(strings.TrimSpace(rank))
		if ferr != nil || rerr != nil {
			return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
		}
		return Sq(f, r), nil
	}
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := strings.ToLower(s)[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return Sq(int(file-'a'), int(rank-'1')), nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Coordinate {
	c, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return c
}
