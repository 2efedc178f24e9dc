// Package web serves hangman to browsers. A chi router hosts the embedded
// page, a health check and a WebSocket endpoint; every WebSocket connection
// plays its own rounds on its own engine.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

//go:embed static/*
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Words is the shared, read-only word list every connection draws from.
	Words []string

	// Chances is the number of wrong guesses allowed per round.
	Chances int

	// Seed makes word selection reproducible. Zero means time-based.
	Seed int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		Chances: hangman.DefaultChances,
	}
}

// Server is the HTTP and WebSocket front end.
type Server struct {
	config   ServerConfig
	router   *chi.Mux
	upgrader websocket.Upgrader
	logger   *log.Logger

	seeds       *core.SeedSequence
	mu          sync.Mutex
	connections map[*Connection]struct{}
}

// NewServer creates a web server. The word list is validated up front so a
// bad list fails at startup instead of on the first connection.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if _, err := hangman.New(cfg.Words, hangman.WithChances(cfg.Chances)); err != nil {
		return nil, err
	}

	s := &Server{
		config: cfg,
		router: chi.NewRouter(),
		upgrader: websocket.Upgrader{
			// The page is served from this origin; any origin may still play
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("hangman-web"),
		seeds:       core.NewSeedSequence(cfg.Seed),
		connections: make(map[*Connection]struct{}),
	}

	s.router.Use(chimw.RealIP)
	s.router.Use(chimw.Recoverer)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static files: %w", err)
	}
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	})
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/ws", s.handleWebSocket)

	return s, nil
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully and closes open WebSocket connections.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting web server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.closeAll()
	return err
}

// handleWebSocket upgrades the request and starts a session with a fresh
// engine.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	engine, err := hangman.New(s.config.Words,
		hangman.WithChances(s.config.Chances),
		hangman.WithSeed(s.seeds.Next()),
	)
	if err != nil {
		// Validated in NewServer
		s.logger.Error("cannot create engine", "error", err)
		http.Error(w, "engine unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(conn, engine, s.logger)
	s.register(client)
	client.Start()

	go func() {
		<-client.Done()
		s.unregister(client)
	}()
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "OK")
}

func (s *Server) register(c *Connection) {
	s.mu.Lock()
	s.connections[c] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client connected", "total", total)
}

func (s *Server) unregister(c *Connection) {
	s.mu.Lock()
	delete(s.connections, c)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("client disconnected", "total", total)
}

// ConnectionCount returns the number of open WebSocket sessions.
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.connections)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	conns := make([]*Connection, 0, len(s.connections))
	for c := range s.connections {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.Close()
	}
}
