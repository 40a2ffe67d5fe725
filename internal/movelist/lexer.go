package movelist

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes move scripts one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		l.eof = true
		return false
	}
	l.line = strings.TrimRight(line, "\r\n")
	l.pos = 0
	l.lineNum++
	return true
}

// skipSpace advances past blanks and reports whether anything is left on
// the line.
func (l *Lexer) skipSpace() bool {
	for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
		l.pos++
	}
	return l.pos < len(l.line)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\v'
}

// word returns the next blank-delimited word on the line.
func (l *Lexer) word() string {
	start := l.pos
	for l.pos < len(l.line) && !isSpace(l.line[l.pos]) {
		l.pos++
	}
	return l.line[start:l.pos]
}

// NextToken returns the next token from the input. Comments and blank
// lines produce no tokens.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) && !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		if !l.skipSpace() {
			l.pos = len(l.line)
			continue
		}
		if l.line[l.pos] == commentChar {
			l.pos = len(l.line)
			continue
		}

		atLineStart := strings.TrimSpace(l.line[:l.pos]) == ""
		column := l.pos + 1
		text := l.word()

		if atLineStart {
			if tok := l.directive(text, column); tok != nil {
				return tok
			}
		}
		return &Token{Type: classify(text), Text: text, Line: l.lineNum, Column: column}
	}
}

// directive consumes the rest of the line for game and fen directives.
func (l *Lexer) directive(keyword string, column int) *Token {
	var typ TokenType
	switch strings.ToLower(keyword) {
	case gameDirective:
		typ = GameToken
	case fenDirective:
		typ = FENToken
	default:
		return nil
	}
	arg := strings.TrimSpace(l.line[l.pos:])
	l.pos = len(l.line)
	return &Token{Type: typ, Text: arg, Line: l.lineNum, Column: column}
}

// classify identifies a word that is not a directive.
func classify(text string) TokenType {
	switch {
	case results[text]:
		return TerminatingResult
	case isMoveNumber(text):
		return MoveNumber
	case moveSeemsValid(text):
		return MoveToken
	}
	return ErrorToken
}

// isMoveNumber matches "12." and "12...".
func isMoveNumber(text string) bool {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i == len(text) {
		return false
	}
	return strings.Trim(text[i:], ".") == ""
}

// moveSeemsValid is a cheap character check; DecodeMove does the real work.
func moveSeemsValid(text string) bool {
	if len(text) < 4 {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'h', c >= 'A' && c <= 'H', c >= '0' && c <= '9':
		case c == '-', c == 'x', c == ',', c == '+', c == '#', c == '!', c == '?':
		default:
			return false
		}
	}
	return true
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
