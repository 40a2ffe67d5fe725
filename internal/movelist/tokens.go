// Package movelist reads and writes move scripts: plain text files of
// coordinate moves grouped into named games.
//
// A script looks like
//
//	# comment
//	game scholars-mate
//	fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
//	1. e2e4 e7e5 2. f1c4 b8c6 3. d1h5 g8f6 4. h5xf7 1-0
//
// Moves are written "e2e4", "e2-e4", "e2xe4" or zero-based "4,1-4,3".
// Move numbers and game results are accepted and ignored.
package movelist

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	GameToken
	FENToken
	MoveToken
	MoveNumber
	TerminatingResult
	ErrorToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	GameToken:         "GAME",
	FENToken:          "FEN",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical token. Text holds the directive argument for GameToken
// and FENToken, and the raw word otherwise.
type Token struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// Directive keywords. They are only recognised as the first word of a line.
const (
	gameDirective = "game"
	fenDirective  = "fen"
	commentChar   = '#'
)

var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}
