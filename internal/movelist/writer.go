package movelist

import (
	"bufio"
	"io"
)

const maxLineLength = 79

// Write writes scripts in the format Parse reads, one game per block.
func Write(w io.Writer, scripts []Script) error {
	bw := bufio.NewWriter(w)
	for i, s := range scripts {
		if i > 0 {
			bw.WriteByte('\n')
		}
		if s.Name != "" {
			bw.WriteString(gameDirective + " " + s.Name + "\n")
		}
		if s.FEN != "" {
			bw.WriteString(fenDirective + " " + s.FEN + "\n")
		}
		writeMoves(bw, s.Moves)
	}
	return bw.Flush()
}

// writeMoves writes the moves wrapped at maxLineLength.
func writeMoves(bw *bufio.Writer, moves []MoveText) {
	length := 0
	for _, m := range moves {
		text := EncodeMove(m.From, m.To)
		if length > 0 && length+1+len(text) > maxLineLength {
			bw.WriteByte('\n')
			length = 0
		}
		if length > 0 {
			bw.WriteByte(' ')
			length++
		}
		bw.WriteString(text)
		length += len(text)
	}
	if length > 0 {
		bw.WriteByte('\n')
	}
}
