package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dpetrucci/hackfest/internal/api"
	"github.com/dpetrucci/hackfest/internal/config"
	"github.com/dpetrucci/hackfest/internal/factory"
	"github.com/dpetrucci/hackfest/internal/metrics"
	"github.com/dpetrucci/hackfest/internal/services/auth"
)

func main() {
	// Load layered configuration (defaults, file, environment)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		AuthConfig: auth.Config{
			SessionDuration: time.Duration(cfg.SessionHours) * time.Hour,
		},
	}
	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := cfg.RedisConfig()
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		EventService: app.EventService,
		Clock:        app.Clock,
		Metrics:      metrics.New(),
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.Addr
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
