package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ServerConfig holds settings for the chessd HTTP service.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// AllowOrigins is the CORS origin list, comma separated
	AllowOrigins string

	// AccessLog enables per-request logging
	AccessLog bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		AllowOrigins:    "*",
		AccessLog:       true,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("server address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout %v is negative: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	return nil
}
