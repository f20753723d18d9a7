// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/hourglass/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Starting position in FEN (default: initial position)")

	// Search and perft
	depth      = flag.Int("depth", -1, "Plies to search or count (default: 3 for best, 4 for perft)")
	workers    = flag.Int("workers", 0, "Goroutines for perft and divide (0 = one per CPU)")
	scorerName = flag.String("scorer", "material", "Evaluation for best: material, random")
	seed       = flag.Int64("seed", 1, "Seed for the random scorer")

	// Diagram
	flip = flag.Bool("flip", false, "Draw the svg diagram from Black's side")

	// Server
	addr     = flag.String("addr", ":8080", "Listen address for serve")
	maxDepth = flag.Int("maxdepth", 4, "Deepest search a serve client may request")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("log", "", "Log file (default: stderr)")
	logFormat  = flag.String("logformat", "text", "Log format: text, json")
	quiet      = flag.Bool("q", false, "Only log warnings and errors")
	verbose    = flag.Bool("v", false, "Log debug detail")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenString
	applySearchFlags(cfg)
	applyServerFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	format, err := config.ParseLogFormat(*logFormat)
	if err != nil {
		return err
	}
	cfg.LogFormat = format
	return nil
}

// applySearchFlags configures search and perft settings.
func applySearchFlags(cfg *config.Config) {
	if *depth >= 0 {
		cfg.Search.Depth = *depth
		cfg.Perft.Depth = *depth
	}
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Search.Scorer = *scorerName
	cfg.Search.Seed = *seed
}

// applyServerFlags configures the server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.MaxDepth = *maxDepth
}
