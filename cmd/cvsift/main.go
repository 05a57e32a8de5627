package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkrol/cvsift/internal/analyze"
	"github.com/mkrol/cvsift/internal/api"
	"github.com/mkrol/cvsift/internal/config"
	"github.com/mkrol/cvsift/internal/parser"
	"github.com/mkrol/cvsift/internal/pipeline"
	"github.com/mkrol/cvsift/internal/section"
	"github.com/mkrol/cvsift/internal/store"
	"github.com/mkrol/cvsift/internal/webhook"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	parser.UsePdftotextFallback(cfg.PDFFallbackPdftotext)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	detector := section.NewDetector(section.Config{
		MinSections:     cfg.MinSections,
		SkillsMinRun:    cfg.SkillsMinRun,
		SkillsShortLine: cfg.SkillsShortLine,
		SkillsMaxTokens: cfg.SkillsMaxTokens,
		MinOtherChars:   cfg.MinOtherChars,
	})

	stats := analyze.NewLLMStats(time.Hour)
	llm := analyze.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, stats)
	analyzer := analyze.NewAnalyzer(llm, log)
	if !llm.Enabled() {
		log.Info("llm feedback disabled, no OPENAI_API_KEY")
	}

	results := store.New(cfg.ResultTTL)
	hook := webhook.NewClient(cfg.WebhookURL, cfg.WebhookAPIKey)

	orch := pipeline.NewOrchestrator(cfg, detector, analyzer, results, hook, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, llm, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		hook.Close()
	}()

	log.Info("starting cvsift", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
