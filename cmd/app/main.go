package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PaperAPI_Go/internal/config"
	"github.com/osse101/PaperAPI_Go/internal/cooldown"
	"github.com/osse101/PaperAPI_Go/internal/event"
	"github.com/osse101/PaperAPI_Go/internal/item"
	"github.com/osse101/PaperAPI_Go/internal/metrics"
	"github.com/osse101/PaperAPI_Go/internal/server"
	"github.com/osse101/PaperAPI_Go/internal/textcolor"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Host failed", "error", err)
		os.Exit(1)
	}
}

// run wires the host and blocks until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	textcolor.ResizeNearestCache(cfg.ColorCacheSize)

	catalog, err := item.LoadCatalog(cfg.ItemCatalogPath)
	if err != nil {
		return err
	}

	collector := metrics.NewEventMetricsCollector()
	attackHandlers := event.AttackEntityCooldownResetHandlers()
	if err := collector.Register(attackHandlers); err != nil {
		return err
	}
	defer collector.Unregister(attackHandlers)

	if err := registerListeners(attackHandlers); err != nil {
		return err
	}
	defer attackHandlers.Unregister(listenerOwner)

	// The embedding host feeds Track, Equip and Attack from player input;
	// this process only owns the clock.
	tracker := cooldown.NewTracker(cooldown.Config{
		DevMode:            cfg.DevMode,
		DefaultAttackSpeed: cfg.DefaultAttackSpeed,
		AttackSpeeds:       catalog.AttackSpeeds(),
	}, event.NewMemoryBus(), collector)

	errCh := make(chan error, 1)
	var srv *server.Server
	if cfg.MetricsAddr != "" {
		srv = server.NewServer(cfg.MetricsAddr)
		go func() { errCh <- srv.Start() }()
	}

	slog.Info("Host started", "tick_rate", cfg.TickRate, "dev_mode", cfg.DevMode)
	runErr := tickLoop(ctx, tracker, cfg.TickRate, errCh)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}
	slog.Info("Host stopped")
	return runErr
}

// tickLoop advances the cooldown tracker at tickRate ticks per second
func tickLoop(ctx context.Context, tracker cooldown.Service, tickRate int, serverErr <-chan error) error {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-serverErr:
			if err != nil {
				return err
			}
		case <-ticker.C:
			tracker.Tick()
		}
	}
}
