package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/xmlgest/internal/api"
	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/pipeline"
	"github.com/dgallion1/xmlgest/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Named transform presets: the built-in demo plus anything configured.
	presets := map[string]config.Preset{"demo": config.DemoPreset()}
	if cfg.PresetPath != "" {
		loaded, err := config.LoadPresets(cfg.PresetPath)
		if err != nil {
			log.Error("load presets", "path", cfg.PresetPath, "error", err)
			os.Exit(1)
		}
		for name, preset := range loaded {
			presets[name] = preset
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(cfg.DocumentTTL)
	st.StartCleanup(ctx, cfg.CleanupInterval)

	proc := pipeline.NewProcessor(cfg.BatchWorkers, log)

	srv := api.NewServer(st, proc, presets, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting xmlgest", "port", cfg.Port, "presets", len(presets))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
