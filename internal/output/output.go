// Package output formats replay reports and move lists.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// WriteMoveList writes moves in coordinate notation, wrapped at 80 columns.
func WriteMoveList(w io.Writer, moves []chess.Move) {
	ow := NewOutputWriter(w, 80)
	for _, m := range moves {
		ow.Write(m.UCI())
	}
	ow.NewLine()
}

// WriteReport writes a replay report as text.
func WriteReport(w io.Writer, report *replay.Report, cfg *config.OutputConfig) {
	fmt.Fprintf(w, "Game %d", report.GameNum)
	if report.Name != "" {
		fmt.Fprintf(w, ": %s", report.Name)
	}
	fmt.Fprintln(w)

	if cfg.ShowFEN && report.StartFEN != "" {
		fmt.Fprintf(w, "Start: %s\n", report.StartFEN)
	}

	for _, p := range report.Plies {
		writePly(w, p, cfg)
	}

	fmt.Fprintf(w, "Result: %s\n", resultLine(report))
	fmt.Fprintln(w)
}

// writePly writes one line per ply, followed by the board when requested.
func writePly(w io.Writer, p replay.Ply, cfg *config.OutputConfig) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%4d. %-6s %-5s %-6s %-10s %s",
		p.Number, p.Move.UCI(),
		strings.ToLower(p.Move.Piece.Colour.String()),
		strings.ToLower(p.Move.Piece.Type.String()),
		p.Move.Type, p.State)
	if cfg.ShowFEN {
		fmt.Fprintf(&sb, "  %s", p.FEN)
	}
	if cfg.ShowKeys {
		fmt.Fprintf(&sb, "  %016x", p.Key)
	}
	fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))

	if cfg.ShowBoard {
		if board, err := engine.NewBoardFromFEN(p.FEN); err == nil {
			fmt.Fprint(w, RenderBoard(board, cfg.Unicode))
		}
	}
}

// resultLine summarises how the replay ended.
func resultLine(report *replay.Report) string {
	plies := len(report.Plies)
	switch {
	case report.Err != nil:
		return fmt.Sprintf("rejected after %d plies: %v", plies, report.Err)
	case report.Truncated:
		return fmt.Sprintf("%s after %d plies (truncated)", report.State, plies)
	}
	return fmt.Sprintf("%s after %d plies", report.State, plies)
}

// WriteSummary writes totals for a run.
func WriteSummary(w io.Writer, s replay.Summary) {
	fmt.Fprintf(w, "%d games, %d plies, %d rejected, %d checkmates, %d stalemates\n",
		s.Games, s.Plies, s.Rejected, s.Checkmates, s.Stalemates)
}
