package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/rovshanmuradov/tinystock/internal/config"
	"github.com/rovshanmuradov/tinystock/internal/logger"
	"github.com/rovshanmuradov/tinystock/internal/session"
	"github.com/rovshanmuradov/tinystock/internal/ui"
	"github.com/rovshanmuradov/tinystock/internal/ui/app"
)

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal belongs to the UI, so logs go to a rotated file.
	appLogger, err := logger.New(logger.Config{
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Debug:      cfg.DebugLogging,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Starting TinyStock",
		zap.String("api_url", cfg.APIURL),
		zap.Duration("timeout", cfg.Timeout))

	client := api.New(cfg.APIURL, cfg.Timeout, appLogger.Named("api"))
	model := app.New(client, session.New(), app.Options{
		DemoEmail:    cfg.DemoEmail,
		DemoPassword: cfg.DemoPassword,
	}, appLogger.Named("ui"))

	program := tea.NewProgram(
		ui.NewSafeModel(model, appLogger.Named("recovery")),
		tea.WithAltScreen(),
		tea.WithContext(rootCtx),
	)
	if _, err := program.Run(); err != nil && rootCtx.Err() == nil {
		appLogger.Error("TUI application failed", zap.Error(err))
		return
	}

	appLogger.Info("Shutting down TinyStock")
}
