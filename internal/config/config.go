// Package config provides the settings shared by the chess-rules CLI and
// the chessd daemon.
package config

import (
	"io"
	"os"
)

// ReportFormat selects how replay reports are written.
type ReportFormat int

const (
	TextReport ReportFormat = iota // Human readable, one line per ply
	JSONReport                     // One JSON document per script
)

// String returns the flag spelling of the format.
func (f ReportFormat) String() string {
	if f == JSONReport {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
// Settings are grouped by concern in the embedded sub-configs.
type Config struct {
	// Verbosity: 0=nothing, 1=script count, 2=running commentary
	Verbosity int

	Output    *OutputConfig
	Replay    *ReplayConfig
	Duplicate *DuplicateConfig
	Server    *ServerConfig
	Storage   *StorageConfig

	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		Duplicate:  NewDuplicateConfig(),
		Server:     NewServerConfig(),
		Storage:    NewStorageConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}
