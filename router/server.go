package router

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"ip-geo-lookup/logger"
)

const shutdownTimeout = 5 * time.Second

// Server serves a handler until its context is cancelled, then shuts down gracefully
type Server struct {
	listener net.Listener
	server   *http.Server
	log      *logger.Logger
}

// Listen binds addr immediately so address errors surface before the TUI starts
func Listen(addr string, handler http.Handler, log *logger.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &Server{
		listener: ln,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}, nil
}

// Addr is the bound address, useful when listening on port 0
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until ctx is cancelled or the server fails. A graceful
// shutdown after cancellation returns nil.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.Addr()).Msg("Metrics server listening")
		if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.log.Error().Err(err).Msg("Metrics server shutdown error")
		return err
	}
	s.log.Info().Msg("Metrics server stopped")
	return nil
}
