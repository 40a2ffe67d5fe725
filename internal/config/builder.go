package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithReportFormat sets the report format.
func (b *ConfigBuilder) WithReportFormat(format ReportFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBoard enables an ASCII board after every ply.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithKeys enables position keys in reports.
func (b *ConfigBuilder) WithKeys(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowKeys = enabled
	return b
}

// WithWorkers sets the number of parallel replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithMaxPlies limits every replay to n plies.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Replay.MaxPlies = n
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithAddr sets the HTTP listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithShutdownTimeout sets how long the daemon waits for requests on exit.
func (b *ConfigBuilder) WithShutdownTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.ShutdownTimeout = d
	return b
}

// WithSQLite stores games in the SQLite file at path.
func (b *ConfigBuilder) WithSQLite(path string) *ConfigBuilder {
	b.cfg.Storage.Driver = StorageSQLite
	b.cfg.Storage.Path = path
	return b
}

// WithMongo stores games in a MongoDB collection.
func (b *ConfigBuilder) WithMongo(uri, database, collection string) *ConfigBuilder {
	b.cfg.Storage.Driver = StorageMongo
	b.cfg.Storage.MongoURI = uri
	b.cfg.Storage.MongoDatabase = database
	b.cfg.Storage.MongoCollection = collection
	return b
}

// WithoutStorage keeps games in memory only.
func (b *ConfigBuilder) WithoutStorage() *ConfigBuilder {
	b.cfg.Storage.Driver = StorageNone
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
