package main

import (
	"context"
	"fmt"
	"os"

	"intent-engine/config"
	"intent-engine/internal/bootstrap"
	"intent-engine/internal/intent"
	"intent-engine/pkg/log"
)

func main() {
	root := newRootCmd(openEngine)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openEngine builds the engine from the same config the API server uses.
// Logs stay quiet unless verbose is set so command output remains parseable.
func openEngine(ctx context.Context, verbose bool) (intent.UseCase, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	engine, err := bootstrap.Build(ctx, logger, cfg)
	if err != nil {
		return nil, nil, err
	}
	return engine.UseCase, engine.Close, nil
}
