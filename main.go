package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nammaguide/internal/app/domain/recommend"
	"github.com/FACorreiaa/go-nammaguide/internal/pkg/config"
	"github.com/FACorreiaa/go-nammaguide/internal/routes"
	"github.com/FACorreiaa/go-nammaguide/internal/server"
	"github.com/FACorreiaa/go-nammaguide/pkg/logger"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(logger.ParseLevel(cfg.Observability.LogLevel),
		zap.String("service", cfg.Observability.ServiceName),
		zap.String("version", version),
	); err != nil {
		return err
	}
	l := logger.Log
	defer func() { _ = l.Sync() }()

	if cfg.Session.GeneratedSecret {
		l.Warn("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	otelShutdown, err := server.InitObservability(cfg.Observability, version, l)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(ctx); err != nil {
			l.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	ctx, stop := server.NotifyShutdown(context.Background())
	defer stop()

	generator, err := recommend.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return err
	}

	srv := server.New(cfg, l)
	router := server.SetupRouter(cfg, routes.Dependencies{Config: cfg, Generator: generator}, l)
	if err := server.SetupAssets(router); err != nil {
		l.Error("Failed to setup assets", zap.Error(err))
		return err
	}
	srv.SetRouter(router)

	pprofServer := server.StartPprofServer(cfg.Observability.PprofAddr, l)

	l.Info("Namma guide starting",
		zap.String("port", cfg.ServerPort),
		zap.String("city", cfg.City),
		zap.String("model", cfg.Gemini.Model))
	if err := server.Serve(ctx, srv.HTTPServer(), l, pprofServer); err != nil {
		l.Error("Server error", zap.Error(err))
		return err
	}

	l.Info("Graceful shutdown complete")
	return nil
}
