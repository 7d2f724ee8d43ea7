package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	httpadapter "github.com/Ratheesh-24/ai-resume-builder-lab/internal/adapter/http"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/config"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/usecase"
	"github.com/Ratheesh-24/ai-resume-builder-lab/pkg/ai"
	infra "github.com/Ratheesh-24/ai-resume-builder-lab/pkg/infrastructure"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()

	sessions := store.NewManager(cfg.SessionTTL)
	aiClient := ai.NewClient(cfg.GenerateURL, cfg.AITimeout)
	importer := usecase.NewImporter(aiClient, log)
	exporter := usecase.NewExporter(infra.NewChromedpRenderer(), log)

	app := fiber.New(fiber.Config{AppName: "resume-builder"})
	h := httpadapter.NewHandler(sessions, importer, exporter, log)
	httpadapter.RegisterRoutes(app, h)

	// periodically drop idle sessions; nothing is persisted so this is the
	// only cleanup the process needs
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for range t.C {
			if n := sessions.Sweep(); n > 0 {
				log.Info("swept idle sessions", "count", n)
			}
		}
	}()

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	_ = app.Shutdown()
}
