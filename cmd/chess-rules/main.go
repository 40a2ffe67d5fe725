// chess-rules replays move scripts and PGN games through the chess rules
// engine and reports every accepted and rejected move.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

const programVersion = "0.1.0"

func main() {
	fileArgs := loadArgsFromFileIfSpecified()

	flag.Usage = usage
	_ = flag.CommandLine.Parse(append(fileArgs, os.Args[1:]...)) // ExitOnError

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if *movesFEN != "" {
		if err := writeLegalMoves(cfg.OutputFile, *movesFEN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *interactive {
		if err := runREPL(cfg, *startFEN); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := newProcessingContext(cfg, setupDuplicateDetector(cfg))
	ctx.pgn = *pgnInput
	if closer := setupScriptOutput(ctx); closer != nil {
		defer closer.Close() //nolint:errcheck // best-effort close on exit
	}

	processAllInputs(ctx, inputFiles())
	if err := ctx.finish(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(ctx)
	}
	if ctx.stopped {
		os.Exit(2)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// setupDuplicateDetector creates the duplicate detector when -D or -d is given.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.Duplicate.Suppress && cfg.Duplicate.DuplicateFile == nil {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(false, *duplicateCapacity)
}

// setupScriptOutput opens the -S file and returns it for closing.
func setupScriptOutput(ctx *ProcessingContext) *os.File {
	if *scriptOutput == "" {
		return nil
	}
	file, err := os.Create(*scriptOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating script file %s: %v\n", *scriptOutput, err)
		os.Exit(1)
	}
	ctx.scripts = file
	return file
}

// inputFiles returns the positional arguments followed by the -f list.
func inputFiles() []string {
	files := flag.Args()
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		files = append(files, listed...)
	}
	return files
}

// processAllInputs processes all input files or stdin.
func processAllInputs(ctx *ProcessingContext, files []string) {
	if len(files) == 0 {
		processInput(os.Stdin, "stdin", ctx)
		return
	}

	for _, filename := range files {
		if ctx.stopped {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		processInput(file, filename, ctx)

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(ctx *ProcessingContext) {
	w := ctx.cfg.LogFile
	if ctx.detector != nil {
		fmt.Fprintf(w, "%d script(s) reported, %d rejected, %d duplicate(s) out of %d.\n",
			ctx.reported, ctx.rejected, ctx.duplicates, ctx.total)
		return
	}
	fmt.Fprintf(w, "%d script(s) reported, %d rejected out of %d.\n", ctx.reported, ctx.rejected, ctx.total)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports which moves the rules allow.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  game <name>     start a new script\n")
	fmt.Fprintf(os.Stderr, "  fen <fen>       starting position (default: standard)\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e7-e5 ...  moves as square pairs, or file,rank pairs like 4,1-4,3\n")
	fmt.Fprintf(os.Stderr, "  # comment       ignored to end of line\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %s_WORKERS, %s_VERBOSITY override the defaults\n", config.EnvPrefix, config.EnvPrefix)
}
