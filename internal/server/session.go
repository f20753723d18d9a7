package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
)

// Message types exchanged over /ws.
const (
	msgMove  = "move"
	msgReset = "reset"
	msgFEN   = "fen"
	msgBest  = "best"
	msgState = "state"
	msgError = "error"
)

// clientMessage is a request from a play session client, e.g.
// {"type":"move","move":"e7e8","promote":"q"}.
type clientMessage struct {
	Type    string `json:"type"`
	Move    string `json:"move,omitempty"`
	Promote string `json:"promote,omitempty"`
	FEN     string `json:"fen,omitempty"`
	Depth   *int   `json:"depth,omitempty"`
}

// serverMessage is sent after every request: the session position, plus the
// search result for "best" or the reason for an "error".
type serverMessage struct {
	Type  string        `json:"type"`
	Error string        `json:"error,omitempty"`
	Best  *bestResponse `json:"best,omitempty"`
	stateResponse
}

// session is one websocket client playing on its own position.
type session struct {
	server *Server
	conn   *websocket.Conn

	mu  sync.Mutex
	pos *chess.Position
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.logger.Warn("websocket upgrade", "error", err)
		return
	}
	sess := &session{
		server: s,
		conn:   conn,
		pos:    engine.NewInitialPosition(),
	}
	s.addSession(sess)
	s.logger.Info("session opened", "remote", conn.RemoteAddr().String())

	defer func() {
		s.removeSession(sess)
		sess.close()
		s.logger.Info("session closed", "remote", conn.RemoteAddr().String())
	}()

	if err := sess.send(serverMessage{Type: msgState, stateResponse: sess.state()}); err != nil {
		return
	}
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("session read", "error", err)
			}
			return
		}
		if err := sess.send(sess.handle(msg)); err != nil {
			s.logger.Warn("session write", "error", err)
			return
		}
	}
}

// handle applies one client request to the session position.
func (sess *session) handle(msg clientMessage) serverMessage {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	reply := serverMessage{Type: msgState}
	switch msg.Type {
	case msgMove:
		if err := sess.move(msg.Move, msg.Promote); err != nil {
			reply = serverMessage{Type: msgError, Error: err.Error()}
		}
	case msgReset:
		sess.pos = engine.NewInitialPosition()
	case msgFEN:
		pos, err := parsePosition(msg.FEN)
		if err != nil {
			reply = serverMessage{Type: msgError, Error: err.Error()}
			break
		}
		sess.pos = pos
	case msgBest:
		cfg := sess.server.cfg
		depth := min(cfg.Search.Depth, cfg.Server.MaxDepth)
		if msg.Depth != nil {
			depth = max(0, min(*msg.Depth, cfg.Server.MaxDepth))
		}
		best, err := sess.server.search(sess.pos, depth)
		if err != nil {
			reply = serverMessage{Type: msgError, Error: err.Error()}
			break
		}
		reply = serverMessage{Type: msgBest, Best: &best}
	default:
		reply = serverMessage{Type: msgError, Error: fmt.Sprintf("unknown message type %q", msg.Type)}
	}
	reply.stateResponse = newState(sess.pos)
	return reply
}

// move parses and plays a move. A failed move leaves the position as it was.
func (sess *session) move(text, promote string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if promote != "" {
		piece, ok := chess.PromotionFromLetter(promote[0])
		if !ok || len(promote) != 1 {
			return fmt.Errorf("bad promotion %q: %w", promote, errors.ErrInvalidMoveText)
		}
		m = m.WithPromotion(piece)
	}
	return engine.TryMove(sess.pos, m)
}

func (sess *session) state() stateResponse {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return newState(sess.pos)
}

func (sess *session) send(msg serverMessage) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.conn.WriteJSON(msg)
}

func (sess *session) close() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
	sess.conn.Close()
}
