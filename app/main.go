package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/popwire/popwire/app/cfg"
	"github.com/popwire/popwire/app/config"
	"github.com/popwire/popwire/app/delivery"
	"github.com/popwire/popwire/app/pipeline"
	"github.com/popwire/popwire/app/scraper"
	"github.com/popwire/popwire/app/summarizer"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)
	slog.Info("Starting popwire", "version", appCfg.Version, "backend", appCfg.Backend)

	siteConfig, err := config.NewLoader(appCfg.SitePath).Load()
	if err != nil {
		slog.Error("Failed to load site profile", "path", appCfg.SitePath, "error", err)
		os.Exit(1)
	}
	slog.Info("Site profile loaded", "site", siteConfig.Site.Name)

	ctx := context.Background()

	backend, err := summarizer.NewBackend(ctx, appCfg)
	if err != nil {
		slog.Error("Failed to initialize summarization backend", "error", err)
		os.Exit(1)
	}
	if gemini, ok := backend.(*summarizer.GeminiBackend); ok {
		defer gemini.Close()
	}

	deliverer, err := delivery.New(appCfg.TelegramBotToken, appCfg.TelegramChatID)
	if err != nil {
		slog.Error("Failed to initialize Telegram delivery", "error", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(siteConfig,
		scraper.New(siteConfig, appCfg.UserAgent),
		summarizer.New(backend, siteConfig.Site.Name),
		deliverer)

	if err := runner.Run(ctx); err != nil {
		slog.Error("Run failed", "error", err)
		deliverer.SendError(err.Error())
		os.Exit(1)
	}

	slog.Info("Run completed successfully")
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
