package movelist

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MoveText is one move of a script as written in the source.
type MoveText struct {
	From chess.Coordinate
	To   chess.Coordinate
	Text string
	Line int
}

// Script is one recorded game: an optional name and starting position and
// the moves to replay from it. An empty FEN means the standard start.
type Script struct {
	Name  string
	FEN   string
	Moves []MoveText
	Line  int
}

// Parser groups lexer tokens into scripts.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	file         string
}

// NewParser creates a new parser for the given reader. file is only used
// in error messages.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// Next parses a single script from the input.
// Returns nil, nil if no more scripts are available.
func (p *Parser) Next() (*Script, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	// Skip result and move number tokens between games
	for p.currentToken.Type == TerminatingResult || p.currentToken.Type == MoveNumber {
		p.nextToken()
	}
	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	script := &Script{Line: p.currentToken.Line}
	if p.currentToken.Type == GameToken {
		script.Name = p.currentToken.Text
		p.nextToken()
	}

	for {
		tok := p.currentToken
		switch tok.Type {
		case EOFToken, GameToken:
			return script, nil

		case FENToken:
			if script.FEN != "" || len(script.Moves) > 0 {
				// A new position starts a new unnamed game
				return script, nil
			}
			if tok.Text == "" {
				return nil, p.errorAt(tok, "FEN", "end of line")
			}
			script.FEN = tok.Text

		case MoveToken:
			from, to, err := DecodeMove(tok.Text)
			if err != nil {
				return nil, p.errorAt(tok, "move", tok.Text)
			}
			script.Moves = append(script.Moves, MoveText{From: from, To: to, Text: tok.Text, Line: tok.Line})

		case MoveNumber, TerminatingResult:

		default:
			return nil, p.errorAt(tok, "move", tok.Text)
		}
		p.nextToken()
	}
}

// errorAt builds a parse error for tok and skips to the next game so the
// caller may continue.
func (p *Parser) errorAt(tok *Token, expected, got string) error {
	err := &errors.ParseError{
		Err:      errors.ErrInvalidScript,
		File:     p.file,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
	p.skipToNextGame()
	return err
}

// skipToNextGame skips tokens until a game directive or the end of input.
func (p *Parser) skipToNextGame() {
	p.nextToken()
	for p.currentToken.Type != EOFToken && p.currentToken.Type != GameToken {
		p.nextToken()
	}
}

// Parse reads every script in r, stopping at the first error. Scripts read
// before the error are returned with it.
func Parse(r io.Reader, file string) ([]Script, error) {
	p := NewParser(r, file)
	var scripts []Script
	for {
		script, err := p.Next()
		if err != nil {
			return scripts, err
		}
		if script == nil {
			return scripts, nil
		}
		scripts = append(scripts, *script)
	}
}
