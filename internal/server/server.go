// Package server exposes the rules engine over HTTP and websocket.
//
// Routes:
//
//	GET /api/fen?fen=            position state: FEN, side to move, check, status, legal moves
//	GET /api/moves?fen=&from=    legal moves, optionally from one square
//	GET /api/best?fen=&depth=    best move found by the search
//	GET /api/board.svg?fen=      SVG diagram of the position
//	GET /ws                      interactive play session
//
// A missing fen parameter means the standard initial position.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/hourglass/internal/config"
)

// Server routes API requests and owns the open play sessions.
type Server struct {
	router   *mux.Router
	handler  http.Handler
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	sessionsLock sync.Mutex
	sessions     map[*session]struct{}
}

// New creates a Server. Access logs in combined log format go to
// cfg.LogFile; diagnostics go to logger.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[*session]struct{}),
	}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fen", s.fenHandler).Methods(http.MethodGet)
	api.HandleFunc("/moves", s.movesHandler).Methods(http.MethodGet)
	api.HandleFunc("/best", s.bestHandler).Methods(http.MethodGet)
	api.Handle("/board.svg", handlers.CompressHandler(http.HandlerFunc(s.boardHandler))).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.wsHandler)
	s.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{logger}))
	s.handler = handlers.LoggingHandler(cfg.LogFile, recovery(s.router))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then shuts
// down gracefully and closes the open sessions.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.CloseSessions()
	if err := httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// CloseSessions closes every open websocket session.
func (s *Server) CloseSessions() {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	for sess := range s.sessions {
		sess.close()
	}
}

// SessionCount returns the number of open websocket sessions.
func (s *Server) SessionCount() int {
	s.sessionsLock.Lock()
	defer s.sessionsLock.Unlock()
	return len(s.sessions)
}

func (s *Server) addSession(sess *session) {
	s.sessionsLock.Lock()
	s.sessions[sess] = struct{}{}
	s.sessionsLock.Unlock()
}

func (s *Server) removeSession(sess *session) {
	s.sessionsLock.Lock()
	delete(s.sessions, sess)
	s.sessionsLock.Unlock()
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s", r.URL.Path))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed for %s", r.Method, r.URL.Path))
}

// recoveryLogger adapts slog to handlers.RecoveryHandlerLogger.
type recoveryLogger struct {
	logger *slog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("handler panic", "panic", fmt.Sprint(v...))
}
