package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmaulidan/shortforge/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP control surface",
	Long: `Starts the HTTP server exposing the OAuth flow, health checks and the
monitor/simulate triggers. Visit /auth/start once to authorize the
YouTube account, then POST /monitor/run_once to poll for new uploads.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}

	session, err := a.newSession()
	if err != nil {
		return err
	}

	m, store, err := a.newMonitor(session)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := api.NewServer(api.ServerConfig{
		Port:    a.cfg.Server.Port,
		Session: session,
		Monitor: m,
		Process: a.process,
		Logger:  a.logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
