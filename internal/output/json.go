package output

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// JSONReport represents a replay report in JSON format.
type JSONReport struct {
	Game      int        `json:"game"`
	Name      string     `json:"name,omitempty"`
	StartFEN  string     `json:"startFEN,omitempty"`
	Plies     []JSONPly  `json:"plies"`
	State     string     `json:"state,omitempty"`
	FinalFEN  string     `json:"finalFEN,omitempty"`
	Truncated bool       `json:"truncated,omitempty"`
	Error     *JSONError `json:"error,omitempty"`
}

// JSONPly represents one accepted move in JSON format.
type JSONPly struct {
	Ply   int    `json:"ply"`
	UCI   string `json:"uci"`
	Text  string `json:"text,omitempty"`
	Color string `json:"color"`
	Piece string `json:"piece"`
	Type  string `json:"type"`
	State string `json:"state"`
	FEN   string `json:"fen,omitempty"`
	Key   string `json:"key,omitempty"`
}

// JSONError describes why a replay stopped early.
type JSONError struct {
	Message string `json:"message"`
	Ply     int    `json:"ply,omitempty"`
	Move    string `json:"move,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games   []*JSONReport `json:"games"`
	Summary *JSONSummary  `json:"summary,omitempty"`
}

// JSONSummary is replay.Summary in JSON format.
type JSONSummary struct {
	Games      int `json:"games"`
	Plies      int `json:"plies"`
	Rejected   int `json:"rejected"`
	Checkmates int `json:"checkmates"`
	Stalemates int `json:"stalemates"`
}

// ReportToJSON converts a replay report to JSON format.
func ReportToJSON(report *replay.Report, cfg *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Game:      report.GameNum,
		Name:      report.Name,
		Plies:     make([]JSONPly, 0, len(report.Plies)),
		Truncated: report.Truncated,
	}
	if cfg.ShowFEN {
		jr.StartFEN = report.StartFEN
		jr.FinalFEN = report.FinalFEN()
	}
	if report.Board != nil {
		jr.State = report.State.String()
	}

	for _, p := range report.Plies {
		jp := JSONPly{
			Ply:   p.Number,
			UCI:   p.Move.UCI(),
			Color: strings.ToLower(p.Move.Piece.Colour.String()),
			Piece: strings.ToLower(p.Move.Piece.Type.String()),
			Type:  p.Move.Type.String(),
			State: p.State.String(),
		}
		if p.Text != jp.UCI {
			jp.Text = p.Text
		}
		if cfg.ShowFEN {
			jp.FEN = p.FEN
		}
		if cfg.ShowKeys {
			jp.Key = fmt.Sprintf("%016x", p.Key)
		}
		jr.Plies = append(jr.Plies, jp)
	}

	if report.Err != nil {
		jr.Error = &JSONError{Message: report.Err.Error()}
		var gerr *errors.GameError
		if stderrors.As(report.Err, &gerr) {
			jr.Error.Ply = gerr.PlyNum
			jr.Error.Move = gerr.MoveText
		}
	}
	return jr
}

// SummaryToJSON converts run totals to JSON format.
func SummaryToJSON(s replay.Summary) *JSONSummary {
	return &JSONSummary{
		Games:      s.Games,
		Plies:      s.Plies,
		Rejected:   s.Rejected,
		Checkmates: s.Checkmates,
		Stalemates: s.Stalemates,
	}
}

// OutputReportJSON writes a single report as indented JSON.
func OutputReportJSON(w io.Writer, report *replay.Report, cfg *config.OutputConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(report, cfg))
}
