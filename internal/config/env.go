package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "CHESSRULES"

// envSpec mirrors the settings that may come from the environment.
// It is seeded from the current config so unset variables keep their value.
type envSpec struct {
	Verbosity int `envconfig:"VERBOSITY"`
	Workers   int `envconfig:"WORKERS"`

	Addr            string        `envconfig:"ADDR"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	AllowOrigins    string        `envconfig:"ALLOW_ORIGINS"`
	AccessLog       bool          `envconfig:"ACCESS_LOG"`

	StorageDriver   string        `envconfig:"STORAGE_DRIVER"`
	StoragePath     string        `envconfig:"STORAGE_PATH"`
	StorageTimeout  time.Duration `envconfig:"STORAGE_TIMEOUT"`
	MongoURI        string        `envconfig:"MONGO_URI"`
	MongoDatabase   string        `envconfig:"MONGO_DATABASE"`
	MongoCollection string        `envconfig:"MONGO_COLLECTION"`
}

// LoadEnv overlays CHESSRULES_* environment variables onto cfg and
// validates the result.
func LoadEnv(cfg *Config) error {
	spec := envSpec{
		Verbosity:       cfg.Verbosity,
		Workers:         cfg.Replay.Workers,
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		AllowOrigins:    cfg.Server.AllowOrigins,
		AccessLog:       cfg.Server.AccessLog,
		StorageDriver:   cfg.Storage.Driver,
		StoragePath:     cfg.Storage.Path,
		StorageTimeout:  cfg.Storage.Timeout,
		MongoURI:        cfg.Storage.MongoURI,
		MongoDatabase:   cfg.Storage.MongoDatabase,
		MongoCollection: cfg.Storage.MongoCollection,
	}
	if err := envconfig.Process(EnvPrefix, &spec); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	cfg.Verbosity = spec.Verbosity
	cfg.Replay.Workers = spec.Workers
	cfg.Server.Addr = spec.Addr
	cfg.Server.ReadTimeout = spec.ReadTimeout
	cfg.Server.WriteTimeout = spec.WriteTimeout
	cfg.Server.ShutdownTimeout = spec.ShutdownTimeout
	cfg.Server.AllowOrigins = spec.AllowOrigins
	cfg.Server.AccessLog = spec.AccessLog
	cfg.Storage.Driver = spec.StorageDriver
	cfg.Storage.Path = spec.StoragePath
	cfg.Storage.Timeout = spec.StorageTimeout
	cfg.Storage.MongoURI = spec.MongoURI
	cfg.Storage.MongoDatabase = spec.MongoDatabase
	cfg.Storage.MongoCollection = spec.MongoCollection

	return cfg.Validate()
}
