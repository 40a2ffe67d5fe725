package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.TextReport {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
		if !cfg.Output.ShowFEN {
			t.Error("ShowFEN = false; want true")
		}
		if cfg.Output.ShowBoard || cfg.Output.ShowKeys || cfg.Output.Unicode {
			t.Errorf("board/keys/unicode = %v/%v/%v; want all false",
				cfg.Output.ShowBoard, cfg.Output.ShowKeys, cfg.Output.Unicode)
		}
	})

	t.Run("all set", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreBool(unicodeBoard, true)()
		defer saveRestoreBool(noFEN, true)()
		defer saveRestoreBool(showKeys, true)()
		defer saveRestoreString(outputFile, "report.json")()

		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSONReport {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
		if cfg.Output.ShowFEN {
			t.Error("ShowFEN = true; want false")
		}
		if !cfg.Output.ShowBoard || !cfg.Output.ShowKeys || !cfg.Output.Unicode {
			t.Errorf("board/keys/unicode = %v/%v/%v; want all true",
				cfg.Output.ShowBoard, cfg.Output.ShowKeys, cfg.Output.Unicode)
		}
		if cfg.OutputFilename != "report.json" {
			t.Errorf("OutputFilename = %q; want report.json", cfg.OutputFilename)
		}
	})
}

func TestApplyReplayFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		defer saveRestoreInt(maxPlies, 40)()
		defer saveRestoreBool(stopOnError, true)()
		defer saveRestoreBool(listOnly, true)()

		cfg := config.NewConfig()
		applyReplayFlags(cfg)
		want := config.ReplayConfig{Workers: 3, MaxPlies: 40, StopOnError: true, ListOnly: true}
		if *cfg.Replay != want {
			t.Errorf("Replay = %+v; want %+v", *cfg.Replay, want)
		}
	})

	t.Run("auto workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		applyReplayFlags(cfg)
		if cfg.Replay.Workers != runtime.NumCPU() {
			t.Errorf("Workers = %d; want %d", cfg.Replay.Workers, runtime.NumCPU())
		}
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyDuplicateFlags(t *testing.T) {
	defer saveRestoreBool(suppressDuplicates, true)()
	cfg := config.NewConfig()
	applyDuplicateFlags(cfg)
	if !cfg.Duplicate.Suppress {
		t.Error("Suppress = false; want true")
	}
}
