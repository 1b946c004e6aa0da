package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmaulidan/shortforge/internal/auth"
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/monitor"
)

// ProcessFunc runs one pipeline pass over a source URL or file.
type ProcessFunc func(ctx context.Context, source string) error

type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

type ServerConfig struct {
	Host    string
	Port    int
	Session *auth.Session
	Monitor monitor.Monitor
	Process ProcessFunc
	Logger  logger.Logger
}

func NewServer(cfg ServerConfig) *Server {
	router := NewRouter(cfg)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 0,
			IdleTimeout:  60 * time.Second,
		},
		logger: cfg.Logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.Info(ctx, "HTTP server listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
