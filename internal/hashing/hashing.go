// Package hashing provides Zobrist keys for positions and the tables that
// count or cache positions by key.
package hashing

import (
	"github.com/lgbarn/hourglass/internal/chess"
)

// pieceSlots covers every packed piece value (colour bit | type).
const pieceSlots = 32

var (
	pieceKeys   [chess.NumSquares][pieceSlots]uint64
	castleKeys  [16]uint64
	epFileKeys  [chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	// A fixed seed keeps keys stable between runs.
	state := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}

	for sq := range pieceKeys {
		for p := range pieceKeys[sq] {
			pieceKeys[sq][p] = next()
		}
	}
	for i := range castleKeys {
		castleKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
	blackToMove = next()
}

// Key returns the Zobrist key of a position. Two positions with the same
// placement, side to move, castling rights and en passant target share a
// key; the move clocks are not part of it.
func Key(pos *chess.Position) uint64 {
	var key uint64
	for sq, piece := range pos.Squares {
		if piece != chess.Empty {
			key ^= pieceKeys[sq][piece%pieceSlots]
		}
	}
	key ^= castleKeys[pos.CastleRights&0x0f]
	if ep, ok := pos.EnPassantTarget(); ok {
		key ^= epFileKeys[ep.File()]
	}
	if pos.ToMove == chess.Black {
		key ^= blackToMove
	}
	return key
}

// RepetitionTable counts how often each position has occurred.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of pos and returns its count so far.
func (t *RepetitionTable) Add(pos *chess.Position) int {
	key := Key(pos)
	t.counts[key]++
	return t.counts[key]
}
