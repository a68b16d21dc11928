package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intent-engine/config"
	"intent-engine/internal/bootstrap"
	"intent-engine/internal/intent"
	"intent-engine/internal/intent/delivery/job"
	"intent-engine/pkg/log"
)

// main mines keywords from the shared corpus once at startup and then on
// every interval; cmd/api picks them up through its overlay watcher.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting miner service...")

	engine, err := bootstrap.Build(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent engine: ", err)
		return
	}
	defer engine.Close()

	miner := job.NewMiner(logger, engine.UseCase, cfg.Mining.Interval, intent.MineInput{
		Lookback:     cfg.Mining.Lookback,
		MinFrequency: cfg.Mining.MinFrequency,
		MinScore:     cfg.Mining.MinScore,
	})

	if err := miner.RunOnce(ctx); err != nil {
		logger.Error(ctx, "Initial mining pass failed: ", err)
		if errors.Is(err, intent.ErrNoCorpus) {
			return
		}
	}

	logger.Info(ctx, "Miner service running. Waiting for shutdown signal...")
	if err := miner.Run(ctx); err != nil {
		logger.Error(ctx, "Miner stopped with error: ", err)
		return
	}
	logger.Info(ctx, "Miner service stopped gracefully")
}
