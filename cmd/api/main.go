package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"intent-engine/config"
	_ "intent-engine/docs" // Swagger docs
	"intent-engine/internal/bootstrap"
	"intent-engine/internal/httpserver"
	"intent-engine/internal/intent"
	"intent-engine/internal/intent/delivery/job"
	tgDelivery "intent-engine/internal/intent/delivery/telegram"
	"intent-engine/internal/middleware"
	"intent-engine/pkg/log"
	"intent-engine/pkg/telegram"
)

// @title       Intent Engine API
// @description Bilingual (Hebrew/English) intent classification, parameter extraction and online learning.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Intent engine
	engine, err := bootstrap.Build(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent engine: ", err)
		return
	}
	defer engine.Close()

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, engine.UseCase, telegramBot)
		go registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		IntentUseCase:   engine.UseCase,
		TelegramHandler: telegramHandler,
		Middleware:      middleware.New(logger, cfg.RateLimit.RequestsPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run server, overlay watcher and miner until shutdown
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })

	if cfg.Intent.WatchOverlay && cfg.Intent.OverlayPath != "" {
		g.Go(func() error { return engine.Store.Watch(gctx) })
	}

	if cfg.Mining.Enabled {
		miner := job.NewMiner(logger, engine.UseCase, cfg.Mining.Interval, intent.MineInput{
			Lookback:     cfg.Mining.Lookback,
			MinFrequency: cfg.Mining.MinFrequency,
			MinScore:     cfg.Mining.MinScore,
		})
		g.Go(func() error { return miner.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL wins,
// otherwise the public ngrok tunnel is used when one is running. Tunnel
// detection retries for up to half a minute, so it runs off the startup path.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		if cfg.NgrokAPIURL == "" {
			logger.Warn(ctx, "Telegram webhook not registered: set telegram.webhook_url or telegram.ngrok_api_url")
			return
		}
		ngrokURL, err := newTunnelDetector(cfg.NgrokAPIURL).detect(ctx)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
