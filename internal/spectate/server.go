package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/neon-snake/internal/game"
)

const writeWait = 5 * time.Second

// Server exposes a Hub over HTTP.
type Server struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a spectator API for hub listening on addr.
func NewServer(addr string, hub *Hub, logger *log.Logger) *Server {
	s := &Server{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectating is read-only, any page may watch.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the chi router with middlewares and routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/sessions", func(sub chi.Router) {
		sub.Get("/", s.listSessions)
		sub.Get("/{id}", s.getSession)
		sub.Get("/{id}/ws", s.streamSession)
	})
	return r
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.hub.Sessions())
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.hub.Latest(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// streamSession upgrades to a websocket and sends the latest snapshot,
// then one snapshot per tick until the session ends or the client leaves.
func (s *Server) streamSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Subscribe before the handshake so no tick published after it is lost.
	updates, cancel, ok := s.hub.Subscribe(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	defer cancel()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "session", id, "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("spectator connected", "session", id, "remote", r.RemoteAddr)
	defer s.logger.Info("spectator disconnected", "session", id, "remote", r.RemoteAddr)

	// The read side only watches for the client going away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// A tick published between Subscribe and Latest arrives twice.
	var seen tickFilter
	if latest, ok := s.hub.Latest(id); ok {
		seen.next(latest)
		if err := s.send(conn, latest); err != nil {
			return
		}
	}

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case snap, open := <-updates:
			if !open {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
				return
			}
			if !seen.next(snap) {
				continue
			}
			if err := s.send(conn, snap); err != nil {
				s.logger.Debug("websocket write failed", "session", id, "error", err)
				return
			}
		}
	}
}

// tickFilter passes snapshots whose tick is newer than the last one passed.
type tickFilter struct {
	sent bool
	last uint64
}

func (f *tickFilter) next(snap game.Snapshot) bool {
	if f.sent && snap.Tick <= f.last {
		return false
	}
	f.sent, f.last = true, snap.Tick
	return true
}

func (s *Server) send(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// requestLogger logs each request through the structured logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// ListenAndServe blocks serving the API until Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("spectate: cannot listen on %s: %w", s.http.Addr, err)
	}
	s.logger.Info("starting spectator API", "address", ln.Addr().String())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
