package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/diagram"
	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
)

// stateResponse describes a position for API clients.
type stateResponse struct {
	FEN    string   `json:"fen"`
	ToMove string   `json:"toMove"`
	Check  bool     `json:"check"`
	Status string   `json:"status"`
	Moves  []string `json:"moves"`
}

func newState(pos *chess.Position) stateResponse {
	return stateResponse{
		FEN:    engine.PositionToFEN(pos),
		ToMove: strings.ToLower(pos.ActiveColor().String()),
		Check:  engine.IsInCheck(pos, pos.ToMove),
		Status: engine.Status(pos).String(),
		Moves:  moveStrings(engine.GenerateLegalMoves(pos)),
	}
}

type movesResponse struct {
	Moves []string `json:"moves"`
}

// bestResponse carries a search result. Score is omitted when a forced mate
// was found; Mate is then +1 for the side to move and -1 against it.
type bestResponse struct {
	Move  string   `json:"move,omitempty"`
	Found bool     `json:"found"`
	Depth int      `json:"depth"`
	Score *float64 `json:"score,omitempty"`
	Mate  int      `json:"mate,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

// parsePosition loads a FEN string, defaulting to the initial position.
// Positions without both kings are rejected; the move generator needs them.
func parsePosition(fen string) (*chess.Position, error) {
	if fen == "" {
		return engine.NewInitialPosition(), nil
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	if !pos.HasKing(chess.White) || !pos.HasKing(chess.Black) {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "both kings are required")
	}
	return pos, nil
}

// parseDepth reads the depth query parameter, defaulting to def.
func parseDepth(r *http.Request, def, max int) (int, error) {
	text := r.URL.Query().Get("depth")
	if text == "" {
		return min(def, max), nil
	}
	depth, err := strconv.Atoi(text)
	if err != nil || depth < 0 || depth > max {
		return 0, fmt.Errorf("depth %q must be an integer in 0..%d", text, max)
	}
	return depth, nil
}

func (s *Server) fenHandler(w http.ResponseWriter, r *http.Request) {
	pos, err := parsePosition(r.URL.Query().Get("fen"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, newState(pos))
}

func (s *Server) movesHandler(w http.ResponseWriter, r *http.Request) {
	pos, err := parsePosition(r.URL.Query().Get("fen"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	from := r.URL.Query().Get("from")
	if from == "" {
		writeJSON(w, http.StatusOK, movesResponse{Moves: moveStrings(engine.GenerateLegalMoves(pos))})
		return
	}
	sq, ok := chess.ParseSquare(from)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad square %q", from))
		return
	}
	writeJSON(w, http.StatusOK, movesResponse{Moves: moveStrings(engine.LegalMovesFrom(pos, sq))})
}

func (s *Server) bestHandler(w http.ResponseWriter, r *http.Request) {
	pos, err := parsePosition(r.URL.Query().Get("fen"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	depth, err := parseDepth(r, s.cfg.Search.Depth, s.cfg.Server.MaxDepth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := s.search(pos, depth)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// search runs the configured scorer. Each call gets a fresh scorer so that
// seeded scorers are not shared between requests.
func (s *Server) search(pos *chess.Position, depth int) (bestResponse, error) {
	scorer, err := s.cfg.Search.NewScorer()
	if err != nil {
		return bestResponse{}, err
	}
	resp := bestResponse{Depth: depth}
	moves := engine.GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return resp, nil
	}

	index, score := engine.Search(pos, depth, scorer)
	resp.Move = moves[index].String()
	resp.Found = true
	switch {
	case math.IsInf(score, 1):
		resp.Mate = 1
	case math.IsInf(score, -1):
		resp.Mate = -1
	default:
		resp.Score = &score
	}
	s.logger.Debug("search", "fen", engine.PositionToFEN(pos), "depth", depth, "move", resp.Move)
	return resp, nil
}

func (s *Server) boardHandler(w http.ResponseWriter, r *http.Request) {
	pos, err := parsePosition(r.URL.Query().Get("fen"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := diagram.DefaultOptions()
	if flip := r.URL.Query().Get("flip"); flip != "" {
		if opts.Flip, err = strconv.ParseBool(flip); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad flip %q", flip))
			return
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := diagram.Render(w, pos, opts); err != nil {
		s.logger.Warn("render board", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
