package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/starpick-admin/internal/app"
	"github.com/riskibarqy/starpick-admin/internal/config"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

func main() {
	config.LoadDotEnv(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger) int {
	console, err := app.New(cfg, logger, app.IO{})
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := console.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	if err := console.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, usecase.ErrUnauthorized) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
