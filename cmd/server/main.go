// Command server boots matchbook: it loads configuration, seeds the
// instrument Registry (§6 Bootstrap), and serves the service façade over
// HTTP on the configured address with CORS locked to the configured
// origin. Modeled on
// itziklerner-pag-b25/services/order-execution/cmd/server/main.go's
// load-config / build-logger / serve / graceful-shutdown shape.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nullorigin/matchbook/engine"
	"github.com/nullorigin/matchbook/internal/api"
	"github.com/nullorigin/matchbook/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := initLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	registry := engine.NewRegistry()
	seedRegistry(registry, cfg, logger)

	broadcaster := engine.NewBroadcaster(registry, 10)
	broadcaster.Start()
	defer broadcaster.Stop()

	fixed := engine.Fixed{BaseScale: cfg.Engine.BaseScale, QuoteScale: cfg.Engine.QuoteScale}
	srv := api.NewServer(registry, logger, cfg.Server.CORSOrigin, fixed)

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Info("listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	waitForShutdown(httpServer, logger)
}

func seedRegistry(registry *engine.Registry, cfg *config.Config, logger *zap.Logger) {
	fixed := engine.Fixed{BaseScale: cfg.Engine.BaseScale, QuoteScale: cfg.Engine.QuoteScale}
	for _, code := range cfg.Engine.Instruments {
		registry.Create(code, fixed)
		logger.Info("seeded instrument", zap.String("code", code))
	}
}

func waitForShutdown(httpServer *http.Server, logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// initLogger builds a zap.Logger at the configured level and format,
// mirroring order-execution's own initLogger.
func initLogger(level, format string) (*zap.Logger, error) {
	var zcfg zap.Config
	if format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	switch level {
	case "debug":
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return zcfg.Build()
}
