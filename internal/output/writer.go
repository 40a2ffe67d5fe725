package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/replay"
)

// ReportWriter is the interface for writing replay reports.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(report *replay.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON) this also
	// writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for cfg.Format.
func NewReportWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg.Format == config.JSONReport {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as text.
type TextWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	summary replay.Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(report *replay.Report) error {
	tw.summary.Add(report)
	WriteReport(tw.w, report, tw.cfg)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the run summary.
func (tw *TextWriter) Close() error {
	if tw.summary.Games > 1 {
		WriteSummary(tw.w, tw.summary)
	}
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	reports []*JSONReport
	summary replay.Summary
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(report *replay.Report) error {
	if jw.single {
		return OutputReportJSON(jw.w, report, jw.cfg)
	}
	jw.summary.Add(report)
	jw.reports = append(jw.reports, ReportToJSON(report, jw.cfg))
	return nil
}

// Flush writes all buffered reports as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{
		Games:   jw.reports,
		Summary: SummaryToJSON(jw.summary),
	})

	jw.reports = jw.reports[:0]
	jw.summary = replay.Summary{}
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
