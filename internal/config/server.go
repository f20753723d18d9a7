package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/hourglass/internal/errors"
)

// ServerConfig holds settings for the HTTP and websocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// MaxDepth caps the depth clients may request from /api/best and /ws.
	MaxDepth int

	// ReadTimeout and WriteTimeout bound a single HTTP exchange.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		MaxDepth:     4,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxDepth < 1 || s.MaxDepth > MaxSearchDepth {
		return fmt.Errorf("server max depth %d outside 1..%d: %w",
			s.MaxDepth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}
