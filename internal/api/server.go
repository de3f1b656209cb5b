package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps the HTTP server for the web frontend.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	watcher    *SlotWatcher
	wsHub      *WebSocketHub
	log        *zap.Logger
}

// NewServer creates a server for handler on port. hub must be the renderer
// of the handler's inventory. If watchDir is empty, file watching is
// disabled (the sqlite backend has no slot files to watch).
func NewServer(handler *Handler, hub *WebSocketHub, port int, watchDir string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/ws", hub.ServeWS)
	handler.RegisterRoutes(mux)

	var watcher *SlotWatcher
	if watchDir != "" {
		var err error
		watcher, err = NewSlotWatcher(watchDir, log)
		if err != nil {
			log.Warn("failed to create slot watcher", zap.Error(err))
		} else {
			watcher.Subscribe(handler)
		}
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      Logging(log, Cors(mux)),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		handler: handler,
		watcher: watcher,
		wsHub:   hub,
		log:     log,
	}
}

// Start loads the inventory and begins listening for HTTP requests.
// Blocks until shutdown; returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.handler.Start()

	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			s.log.Warn("failed to start slot watcher", zap.Error(err))
		}
	}

	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			s.log.Warn("failed to stop slot watcher", zap.Error(err))
		}
	}

	// Hijacked websocket connections are not tracked by http.Server
	s.wsHub.CloseAll()

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
