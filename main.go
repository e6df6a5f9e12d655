package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"GO-dungeon/internal/api"
	"GO-dungeon/internal/archive"
	"GO-dungeon/internal/config"
	"GO-dungeon/internal/game"
	"GO-dungeon/internal/gemini"
	"GO-dungeon/internal/logger"
	"GO-dungeon/internal/repl"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	serve := flag.Bool("serve", false, "Serve the game over HTTP instead of the terminal")
	envFile := flag.String("env", ".env", "Path to the .env file")
	flag.Parse()

	if err := run(*serve, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serve bool, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()
	model, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		Temperature: cfg.GeminiTemperature,
	})
	if err != nil {
		return err
	}
	defer model.Close()
	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; the adventure will not start")
	}

	var recorder game.Recorder = archive.Nop{}
	if cfg.ArchiveEnabled() {
		sb, err := archive.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseTable)
		if err != nil {
			return err
		}
		recorder = sb
		log.Info("Recording transcripts to Supabase", zap.String("table", cfg.SupabaseTable))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	g := game.New(model,
		game.WithFailurePolicy(cfg.Policy()),
		game.WithLogger(log),
		game.WithMetrics(game.NewMetrics(reg)),
		game.WithRecorder(recorder),
	)

	if serve {
		gin.SetMode(gin.ReleaseMode)
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		h := api.NewHandler(g, log)
		return api.Serve(ctx, cfg.HTTPAddr, h.Router(reg), log)
	}
	// Ctrl-C keeps its default behavior on the terminal.
	return repl.New(g, game.DefaultPrompts, os.Stdin, os.Stdout).Run(ctx)
}
