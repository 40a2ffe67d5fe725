package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Storage drivers.
const (
	StorageNone   = "none"
	StorageSQLite = "sqlite"
	StorageMongo  = "mongo"
)

// StorageConfig selects and configures game persistence.
type StorageConfig struct {
	Driver string

	// SQLite database file
	Path string

	// MongoDB connection
	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	// Timeout bounds every storage call
	Timeout time.Duration
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		Driver:          StorageSQLite,
		Path:            "chessrules.db",
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "chessrules",
		MongoCollection: "games",
		Timeout:         5 * time.Second,
	}
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	switch s.Driver {
	case StorageNone:
		return nil
	case StorageSQLite:
		if s.Path == "" {
			return fmt.Errorf("sqlite storage needs a path: %w", errors.ErrInvalidConfig)
		}
	case StorageMongo:
		if s.MongoURI == "" || s.MongoDatabase == "" || s.MongoCollection == "" {
			return fmt.Errorf("mongo storage needs uri, database and collection: %w", errors.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown storage driver %q: %w", s.Driver, errors.ErrInvalidConfig)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("storage timeout must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
