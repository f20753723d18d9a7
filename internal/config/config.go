// Package config provides configuration for the hourglass command and server.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
)

// LogFormat selects the slog handler used for diagnostics.
type LogFormat int

const (
	TextLog LogFormat = iota // key=value lines
	JSONLog                  // one JSON object per line
)

// String returns the flag spelling of the format.
func (f LogFormat) String() string {
	if f == JSONLog {
		return "json"
	}
	return "text"
}

// ParseLogFormat parses "text" or "json".
func ParseLogFormat(name string) (LogFormat, error) {
	switch name {
	case "text", "":
		return TextLog, nil
	case "json":
		return JSONLog, nil
	}
	return TextLog, fmt.Errorf("unknown log format %q: %w", name, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// Sub-configurations
	Search *SearchConfig
	Perft  *PerftConfig
	Server *ServerConfig

	// FEN is the starting position; empty means the standard initial position.
	FEN string

	// Diagnostics
	Verbosity int // 0=warnings only, 1=progress, 2=debug
	LogFormat LogFormat

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Perft:      NewPerftConfig(),
		Server:     NewServerConfig(),
		Verbosity:  1,
		LogFormat:  TextLog,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer command results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// StartPosition returns the configured starting position.
func (c *Config) StartPosition() (*chess.Position, error) {
	if c.FEN == "" {
		return engine.NewInitialPosition(), nil
	}
	return engine.NewPositionFromFEN(c.FEN)
}

// LogLevel maps Verbosity onto a slog level.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= 0:
		return slog.LevelWarn
	case c.Verbosity == 1:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// NewLogger builds the slog logger described by LogFile, LogFormat and Verbosity.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.LogFormat == JSONLog {
		return slog.New(slog.NewJSONHandler(c.LogFile, opts))
	}
	return slog.New(slog.NewTextHandler(c.LogFile, opts))
}
