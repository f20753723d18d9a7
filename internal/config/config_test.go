package config

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
	"github.com/lgbarn/hourglass/internal/testutil"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want 3", cfg.Depth)
	}
	if cfg.Scorer != engine.ScorerMaterial {
		t.Errorf("Scorer = %q, want %q", cfg.Scorer, engine.ScorerMaterial)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default SearchConfig invalid: %v", err)
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

// TestServerConfig_Defaults verifies ServerConfig has sensible defaults
func TestServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxDepth != 4 {
		t.Errorf("MaxDepth = %d, want 4", cfg.MaxDepth)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		t.Error("timeouts should be positive by default")
	}
}

// TestConfig_Validate verifies validation of every sub-config
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"depth zero", func(c *Config) { c.Search.Depth = 0 }, false},
		{"random scorer", func(c *Config) { c.Search.Scorer = engine.ScorerRandom }, false},
		{"negative search depth", func(c *Config) { c.Search.Depth = -1 }, true},
		{"search depth too large", func(c *Config) { c.Search.Depth = MaxSearchDepth + 1 }, true},
		{"unknown scorer", func(c *Config) { c.Search.Scorer = "minimax" }, true},
		{"negative perft depth", func(c *Config) { c.Perft.Depth = -2 }, true},
		{"no workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"empty address", func(c *Config) { c.Server.Addr = "" }, true},
		{"server max depth zero", func(c *Config) { c.Server.MaxDepth = 0 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_StartPosition(t *testing.T) {
	cfg := NewConfig()
	pos, err := cfg.StartPosition()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, engine.PositionToFEN(pos), engine.InitialFEN)

	cfg.FEN = testutil.KiwipeteFEN
	pos, err = cfg.StartPosition()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, engine.PositionToFEN(pos), testutil.KiwipeteFEN)

	cfg.FEN = "not a fen"
	_, err = cfg.StartPosition()
	if !stderrors.Is(err, errors.ErrInvalidFEN) {
		t.Errorf("StartPosition() error = %v, want ErrInvalidFEN", err)
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    LogFormat
		wantErr bool
	}{
		{"", TextLog, false},
		{"text", TextLog, false},
		{"json", JSONLog, false},
		{"xml", TextLog, true},
	}

	for _, tt := range tests {
		got, err := ParseLogFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	testutil.AssertEqual(t, JSONLog.String(), "json")
	testutil.AssertEqual(t, TextLog.String(), "text")
}

func TestConfig_LogLevel(t *testing.T) {
	cfg := NewConfig()
	for verbosity, want := range map[int]slog.Level{
		0: slog.LevelWarn,
		1: slog.LevelInfo,
		2: slog.LevelDebug,
		5: slog.LevelDebug,
	} {
		cfg.Verbosity = verbosity
		testutil.AssertEqual(t, cfg.LogLevel(), want, "verbosity %d", verbosity)
	}
}

func TestConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithLogFile(&buf).
		WithLogFormat(JSONLog).
		WithVerbosity(1).
		Build()

	logger := cfg.NewLogger()
	logger.Debug("hidden")
	logger.Info("perft finished", "nodes", 20)

	out := buf.String()
	testutil.AssertNotContains(t, out, "hidden")
	testutil.AssertContains(t, out, `"msg":"perft finished"`)
	testutil.AssertContains(t, out, `"nodes":20`)
	testutil.AssertEqual(t, strings.Count(out, "\n"), 1)
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithFEN(testutil.EndgameFEN).
		WithSearchDepth(2).
		WithScorer(engine.ScorerRandom, 99).
		WithPerftDepth(5).
		WithWorkers(3).
		WithAddr("127.0.0.1:9000").
		WithMaxDepth(2).
		WithOutput(&out).
		Build()

	testutil.AssertEqual(t, cfg.FEN, testutil.EndgameFEN)
	testutil.AssertEqual(t, cfg.Search.Depth, 2)
	testutil.AssertEqual(t, cfg.Search.Scorer, engine.ScorerRandom)
	testutil.AssertEqual(t, cfg.Search.Seed, int64(99))
	testutil.AssertEqual(t, cfg.Perft.Depth, 5)
	testutil.AssertEqual(t, cfg.Perft.Workers, 3)
	testutil.AssertEqual(t, cfg.Server.Addr, "127.0.0.1:9000")
	testutil.AssertEqual(t, cfg.Server.MaxDepth, 2)
	testutil.AssertTrue(t, cfg.OutputFile == &out, "WithOutput did not set OutputFile")
	testutil.AssertNoError(t, cfg.Validate())

	scorer, err := cfg.Search.NewScorer()
	testutil.AssertNoError(t, err)
	if _, ok := scorer.(*engine.RandomScorer); !ok {
		t.Errorf("NewScorer() = %T, want *engine.RandomScorer", scorer)
	}
}
