// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output reports in JSON format")
	showBoard    = flag.Bool("board", false, "Print the board after every ply")
	unicodeBoard = flag.Bool("unicode", false, "Draw boards with chess glyphs")
	noFEN        = flag.Bool("nofen", false, "Don't print the FEN after every ply")
	showKeys     = flag.Bool("keys", false, "Print the position key after every ply")
	scriptOutput = flag.String("S", "", "Write the parsed scripts to this file in script format")

	// Input options
	pgnInput     = flag.Bool("pgn", false, "Read input files as PGN instead of move scripts")
	fileListFile = flag.String("f", "", "File containing list of input files to process (one per line)")
	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")

	// Replay options
	maxPlies    = flag.Int("maxply", 0, "Stop each replay after N plies (0 = no limit)")
	stopOnError = flag.Bool("stoponerror", false, "Stop at the first rejected move")
	listOnly    = flag.Bool("list", false, "List the legal moves of each script's start position instead of replaying")

	// Position queries
	movesFEN = flag.String("moves", "", "List the legal moves in this FEN position and exit")

	// Interactive mode
	interactive = flag.Bool("i", false, "Start an interactive session")
	startFEN    = flag.String("fen", "", "Starting position for the interactive session")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress scripts ending in an already reported position")
	duplicateFile      = flag.String("d", "", "Write the names of duplicate scripts to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no script count)")
	verbose = flag.Bool("v", false, "Report every rejected move on the log")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)
	applyDuplicateFlags(cfg)

	if *quiet {
		cfg.Verbosity = 0
	}
	if *verbose {
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONReport
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Unicode = *unicodeBoard
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ShowKeys = *showKeys
	cfg.OutputFilename = *outputFile
}

// applyReplayFlags configures replay settings.
func applyReplayFlags(cfg *config.Config) {
	switch {
	case *workers > 0:
		cfg.Replay.Workers = *workers
	case cfg.Replay.Workers <= 1:
		cfg.Replay.Workers = runtime.NumCPU()
	}
	cfg.Replay.MaxPlies = *maxPlies
	cfg.Replay.StopOnError = *stopOnError
	cfg.Replay.ListOnly = *listOnly
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
}
