// processor.go - Script replay and report output
package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/movelist"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/pgnimport"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ProcessingContext holds all processing state.
// Only the goroutine consuming replay results touches it.
type ProcessingContext struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector
	writer   output.ReportWriter
	// scripts receives the parsed scripts when -S is given (may be nil)
	scripts io.Writer
	pgn     bool

	total      int
	reported   int
	rejected   int
	duplicates int
	stopped    bool
}

// newProcessingContext creates a context writing reports to cfg.OutputFile.
func newProcessingContext(cfg *config.Config, detector *hashing.ThreadSafeDuplicateDetector) *ProcessingContext {
	return &ProcessingContext{
		cfg:      cfg,
		detector: detector,
		writer:   output.NewReportWriter(cfg.OutputFile, cfg.Output),
	}
}

// readScripts parses one input. Parse problems are logged; the scripts
// read before them are still returned.
func readScripts(r io.Reader, name string, ctx *ProcessingContext) []movelist.Script {
	var scripts []movelist.Script
	var err error
	if ctx.pgn {
		scripts, err = pgnimport.Import(r, name)
	} else {
		scripts, err = movelist.Parse(r, name)
	}
	if err != nil {
		fmt.Fprintf(ctx.cfg.LogFile, "Error parsing %s: %v\n", name, err)
	}
	return scripts
}

// processInput reads, optionally re-emits, and replays the scripts of one input.
func processInput(r io.Reader, name string, ctx *ProcessingContext) {
	scripts := readScripts(r, name, ctx)
	if ctx.scripts != nil && len(scripts) > 0 {
		if err := movelist.Write(ctx.scripts, scripts); err != nil {
			fmt.Fprintf(ctx.cfg.LogFile, "Error writing scripts: %v\n", err)
		}
	}

	if ctx.cfg.Replay.ListOnly {
		listStartMoves(scripts, ctx)
		return
	}
	replayScripts(scripts, name, ctx)
}

// replayScripts replays scripts, in parallel when worthwhile, and writes
// the reports in input order.
func replayScripts(scripts []movelist.Script, file string, ctx *ProcessingContext) {
	if ctx.stopped || len(scripts) == 0 {
		return
	}
	base := ctx.total
	ctx.total += len(scripts)

	opts := replay.Options{MaxPlies: ctx.cfg.Replay.MaxPlies}
	numWorkers := ctx.cfg.Replay.Workers

	if numWorkers > 1 && len(scripts) > 2 {
		replayParallel(scripts, file, base, opts, numWorkers, ctx)
		return
	}

	for i, script := range scripts {
		o := opts
		o.GameNum = base + i + 1
		o.File = file
		if !handleReport(replay.Run(script, o), ctx) {
			return
		}
	}
}

// replayParallel fans the scripts out to a worker pool. Results are
// collected and reported in input order by this goroutine only.
func replayParallel(scripts []movelist.Script, file string, base int, opts replay.Options, numWorkers int, ctx *ProcessingContext) {
	bufferSize := len(scripts)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(worker.ReplayFunc(opts),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, script := range scripts {
			if !pool.Submit(worker.WorkItem{Script: script, Index: base + i, File: file}) {
				break
			}
		}
		pool.Close()
	}()

	for _, result := range worker.Collect(pool.Results()) {
		if result.Report == nil {
			continue
		}
		if !handleReport(result.Report, ctx) {
			return
		}
	}
}

// handleReport applies duplicate detection and writes one report.
// It returns false once processing should stop.
func handleReport(report *replay.Report, ctx *ProcessingContext) bool {
	cfg := ctx.cfg

	if ctx.detector != nil && report.Err == nil && report.Board != nil {
		if ctx.detector.CheckAndAdd(report.Board) {
			ctx.duplicates++
			if cfg.Duplicate.DuplicateFile != nil {
				fmt.Fprintf(cfg.Duplicate.DuplicateFile, "%d\t%s\t%s\n", report.GameNum, report.Name, report.FinalFEN())
			}
			if cfg.Duplicate.Suppress {
				return true
			}
		}
	}

	if err := ctx.writer.WriteReport(report); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing report: %v\n", err)
	}
	ctx.reported++

	if report.Err != nil {
		ctx.rejected++
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%v\n", report.Err)
		}
		if cfg.Replay.StopOnError {
			ctx.stopped = true
			return false
		}
	}
	return true
}

// listStartMoves writes the legal moves of each script's start position.
func listStartMoves(scripts []movelist.Script, ctx *ProcessingContext) {
	w := ctx.cfg.OutputFile
	for _, script := range scripts {
		ctx.total++
		fen := script.FEN
		if fen == "" {
			fen = engine.InitialFEN
		}
		fmt.Fprintf(w, "Game %d: %s\n", ctx.total, script.Name)
		if err := writeLegalMoves(w, fen); err != nil {
			ctx.rejected++
			fmt.Fprintf(w, "  %v\n", err)
		}
		ctx.reported++
	}
}

// writeLegalMoves writes the side to move, the game state and the legal
// moves of the position fen.
func writeLegalMoves(w io.Writer, fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	moves := engine.LegalMoves(board, board.SideToMove())
	fmt.Fprintf(w, "%s to move, %s, %d legal move(s)\n", board.SideToMove(), engine.Status(board), len(moves))
	if len(moves) > 0 {
		output.WriteMoveList(w, moves)
	}
	return nil
}

// finish flushes the report writer.
func (ctx *ProcessingContext) finish() error {
	if err := ctx.writer.Flush(); err != nil {
		return err
	}
	return ctx.writer.Close()
}
