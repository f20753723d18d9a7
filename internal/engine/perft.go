package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/hashing"
	"github.com/lgbarn/hourglass/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Depth 0 counts the position itself.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := *pos
		applyMove(&next, m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move.
// The values sum to Perft(pos, depth).
func PerftDivide(pos *chess.Position, depth int) map[chess.Move]uint64 {
	counts := make(map[chess.Move]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range GenerateLegalMoves(pos) {
		next := *pos
		applyMove(&next, m)
		counts[m] = Perft(&next, depth-1)
	}
	return counts
}

// perftCacheCapacity bounds the node cache shared by ParallelPerftDivide.
const perftCacheCapacity = 1 << 20

// ParallelPerftDivide computes the same counts as PerftDivide, spreading the
// root moves over a pool of workers. Each worker owns its own copy of the
// position after its root move; subtrees reached by transposition are counted
// once and shared through a node cache.
func ParallelPerftDivide(pos *chess.Position, depth, workers int) map[chess.Move]uint64 {
	counts, _ := ParallelPerftDivideContext(context.Background(), pos, depth, workers)
	return counts
}

// ParallelPerftDivideContext is ParallelPerftDivide that stops handing out
// root moves once ctx is cancelled. It then returns ctx.Err() and the counts
// of the root moves finished so far.
func ParallelPerftDivideContext(ctx context.Context, pos *chess.Position, depth, workers int) (map[chess.Move]uint64, error) {
	counts := make(map[chess.Move]uint64)
	if depth <= 0 {
		return counts, nil
	}
	moves := GenerateLegalMoves(pos)

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Position: *Apply(pos, m), Move: m, Depth: depth - 1}
	}

	cache := hashing.NewNodeCache(perftCacheCapacity)
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: cachedPerft(&item.Position, item.Depth, cache),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))

	results, err := pool.Run(ctx, items)
	for i, result := range results {
		if result.Move == moves[i] {
			counts[result.Move] = result.Nodes
		}
	}
	return counts, err
}

// cachedPerft is Perft with a node cache. Leaves one ply out are counted
// directly since generating them is cheaper than a cache lookup.
func cachedPerft(pos *chess.Position, depth int, cache *hashing.NodeCache) uint64 {
	if depth <= 1 {
		return Perft(pos, depth)
	}
	if nodes, ok := cache.Get(pos, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range GenerateLegalMoves(pos) {
		next := *pos
		applyMove(&next, m)
		nodes += cachedPerft(&next, depth-1, cache)
	}
	cache.Put(pos, depth, nodes)
	return nodes
}

// SortedMoves returns the keys of a divide map ordered by their coordinate text.
func SortedMoves(counts map[chess.Move]uint64) []chess.Move {
	moves := maps.Keys(counts)
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].String() < moves[j].String()
	})
	return moves
}

// FormatDivide renders a divide map one "move: count" line per root move,
// followed by the total.
func FormatDivide(counts map[chess.Move]uint64) string {
	var sb strings.Builder
	var total uint64
	for _, m := range SortedMoves(counts) {
		fmt.Fprintf(&sb, "%s: %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Fprintf(&sb, "\nNodes searched: %d\n", total)
	return sb.String()
}
