// Package storage persists daemon games so they survive a restart. A game
// is stored as its starting position plus the moves played, and is
// rebuilt by replaying them.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameRecord is a stored game.
type GameRecord struct {
	ID        string    `bson:"_id"`
	StartFEN  string    `bson:"start_fen"`
	Moves     []string  `bson:"moves"` // coordinate notation, oldest first
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store is implemented by every storage backend.
// Lookups of unknown ids return errors.ErrGameNotFound.
type Store interface {
	CreateGame(ctx context.Context, rec GameRecord) error
	// AppendMove records the move played at ply (1-based).
	AppendMove(ctx context.Context, id string, ply int, uci string) error
	LoadGame(ctx context.Context, id string) (GameRecord, error)
	DeleteGame(ctx context.Context, id string) error
	ListGames(ctx context.Context) ([]string, error)
	Close() error
}

// Open returns the backend selected by cfg.Driver, or nil for
// config.StorageNone.
func Open(ctx context.Context, cfg *config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageNone:
		return nil, nil
	case config.StorageSQLite:
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMongo:
		s, err := NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("storage driver %q: %w", cfg.Driver, errors.ErrInvalidConfig)
}
