package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/hourglass/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies counted.
	Depth int

	// Workers is the number of goroutines sharing the root moves.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) < 0: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
