package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"brandlens/internal/config"
	"brandlens/internal/dashboard"
	"brandlens/internal/insight"
	"brandlens/internal/llm"
	"brandlens/internal/logging"
	"brandlens/internal/metrics"
	"brandlens/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logging.Configure(cfg.App.Environment)
	defer logging.Sync()
	logger := logging.NewComponentLogger("main")

	if !cfg.HasOpenAI() {
		logger.Warn("no OpenAI API key configured, OpenAI-backed models will fail over to fallbacks")
	}

	factory := llm.NewFactory(
		llm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.Backend.Timeout,
		},
		llm.Config{
			BaseURL: cfg.Ollama.Endpoint,
			Timeout: cfg.Backend.Timeout,
		},
	)

	reg := metrics.NewRegistry()
	orchestrator := insight.NewOrchestrator(factory).WithMetrics(reg)
	dashboards := dashboard.NewService(factory).WithMetrics(reg)
	handlers := server.NewHandlers(orchestrator, dashboards, cfg)
	srv := server.New(cfg, handlers, reg)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(ctx)
	}
}
