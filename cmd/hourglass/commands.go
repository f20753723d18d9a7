package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/config"
	"github.com/lgbarn/hourglass/internal/diagram"
	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
	"github.com/lgbarn/hourglass/internal/server"
)

// command runs one subcommand against the configured start position.
type command func(ctx context.Context, cfg *config.Config, logger *slog.Logger, pos *chess.Position, args []string) error

var commands = map[string]command{
	"perft":  runPerft,
	"divide": runDivide,
	"moves":  runMoves,
	"best":   runBest,
	"fen":    runFEN,
	"svg":    runSVG,
	"serve":  runServe,
}

// run dispatches args[0] to its subcommand.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command given (want one of perft, divide, moves, best, fen, svg, serve)")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", args[0])
	}
	pos, err := cfg.StartPosition()
	if err != nil {
		return err
	}
	if !pos.HasKing(chess.White) || !pos.HasKing(chess.Black) {
		return errors.Wrap(errors.ErrInvalidFEN, "both kings are required")
	}
	return cmd(ctx, cfg, logger, pos, args[1:])
}

func runPerft(_ context.Context, cfg *config.Config, logger *slog.Logger, pos *chess.Position, _ []string) error {
	start := time.Now()
	nodes := engine.Perft(pos, cfg.Perft.Depth)
	logger.Info("perft", "depth", cfg.Perft.Depth, "nodes", nodes, "elapsed", time.Since(start))
	_, err := fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)
	return err
}

func runDivide(ctx context.Context, cfg *config.Config, logger *slog.Logger, pos *chess.Position, _ []string) error {
	start := time.Now()
	counts, err := engine.ParallelPerftDivideContext(ctx, pos, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		logger.Warn("divide interrupted", "finished", len(counts), "error", err)
		return err
	}
	logger.Info("divide", "depth", cfg.Perft.Depth, "workers", cfg.Perft.Workers,
		"moves", len(counts), "elapsed", time.Since(start))
	_, err = fmt.Fprint(cfg.OutputFile, engine.FormatDivide(counts))
	return err
}

func runMoves(_ context.Context, cfg *config.Config, _ *slog.Logger, pos *chess.Position, args []string) error {
	moves := engine.GenerateLegalMoves(pos)
	if len(args) > 0 {
		sq, ok := chess.ParseSquare(args[0])
		if !ok {
			return fmt.Errorf("bad square %q", args[0])
		}
		moves = engine.LegalMovesFrom(pos, sq)
	}
	for _, m := range moves {
		if _, err := fmt.Fprintln(cfg.OutputFile, m); err != nil {
			return err
		}
	}
	return nil
}

func runBest(_ context.Context, cfg *config.Config, logger *slog.Logger, pos *chess.Position, _ []string) error {
	scorer, err := cfg.Search.NewScorer()
	if err != nil {
		return err
	}
	start := time.Now()
	m, ok := engine.BestMove(pos, cfg.Search.Depth, scorer)
	logger.Info("search", "depth", cfg.Search.Depth, "scorer", cfg.Search.Scorer, "elapsed", time.Since(start))
	if !ok {
		_, err = fmt.Fprintf(cfg.OutputFile, "bestmove (none) %s\n", engine.Status(pos))
		return err
	}
	_, err = fmt.Fprintf(cfg.OutputFile, "bestmove %s\n", m)
	return err
}

func runFEN(_ context.Context, cfg *config.Config, logger *slog.Logger, pos *chess.Position, args []string) error {
	moves, err := parseMoves(args)
	if err != nil {
		return err
	}
	draws, err := engine.AnalyzeDrawRules(pos, moves)
	if err != nil {
		return errors.Wrapf(err, "ply %d", draws.Plies+1)
	}
	*pos = draws.Position
	logger.Debug("draw rules", "plies", draws.Plies,
		"fivefold", draws.Has5FoldRepetition, "seventyfive", draws.Has75MoveRule,
		"materialOdds", draws.HasMaterialOdds)

	fmt.Fprintln(cfg.OutputFile, engine.PositionToFEN(pos))
	fmt.Fprintf(cfg.OutputFile, "status: %s\n", engine.Status(pos))
	if draws.Has5FoldRepetition {
		fmt.Fprintln(cfg.OutputFile, "draw: fivefold repetition")
	}
	if draws.Has75MoveRule {
		fmt.Fprintln(cfg.OutputFile, "draw: seventy-five move rule")
	}
	return nil
}

func runSVG(_ context.Context, cfg *config.Config, _ *slog.Logger, pos *chess.Position, args []string) error {
	moves, err := parseMoves(args)
	if err != nil {
		return err
	}
	if err := playMoves(pos, moves); err != nil {
		return err
	}
	opts := diagram.DefaultOptions()
	opts.Flip = *flip
	if len(moves) > 0 {
		last := moves[len(moves)-1]
		opts.Highlight = []chess.Square{last.From, last.To}
	}
	return diagram.Render(cfg.OutputFile, pos, opts)
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger, _ *chess.Position, _ []string) error {
	return server.New(cfg, logger).ListenAndServe(ctx)
}

// parseMoves reads coordinate moves with an optional promotion letter,
// e.g. "e2e4" or "a7a8q".
func parseMoves(args []string) ([]chess.Move, error) {
	moves := make([]chess.Move, 0, len(args))
	for _, text := range args {
		text = strings.TrimSpace(text)
		if len(text) != 4 && len(text) != 5 {
			return nil, fmt.Errorf("move %q: %w", text, errors.ErrInvalidMoveText)
		}
		m, err := chess.ParseMove(text[:4])
		if err != nil {
			return nil, err
		}
		if len(text) == 5 {
			promote, ok := chess.PromotionFromLetter(text[4])
			if !ok {
				return nil, fmt.Errorf("move %q has a bad promotion: %w", text, errors.ErrInvalidMoveText)
			}
			m = m.WithPromotion(promote)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// playMoves applies moves in order, stopping at the first illegal one.
func playMoves(pos *chess.Position, moves []chess.Move) error {
	for i, m := range moves {
		if err := engine.TryMove(pos, m); err != nil {
			return errors.Wrapf(err, "ply %d", i+1)
		}
	}
	return nil
}
