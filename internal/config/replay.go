package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of scripts replayed in parallel
	Workers int

	// MaxPlies stops each replay after this many plies (0 = no limit)
	MaxPlies int

	// StopOnError stops the whole run at the first rejected move
	StopOnError bool

	// ListOnly reports legal moves for the start position instead of replaying
	ListOnly bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{Workers: 1}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.MaxPlies < 0 {
		return fmt.Errorf("max plies must not be negative, got %d: %w", r.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
