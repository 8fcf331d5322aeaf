package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/backend"
	"github.com/mhalvorsen/lsm-workbench/internal/config"
	"github.com/mhalvorsen/lsm-workbench/internal/database"
	"github.com/mhalvorsen/lsm-workbench/internal/run"
	"github.com/mhalvorsen/lsm-workbench/internal/version"
	"github.com/mhalvorsen/lsm-workbench/internal/writer"
)

func main() {
	configPath := flag.String("config", "configs/workbench.yaml", "path to config file")
	experimentsPath := flag.String("experiments", "experiments.yaml", "path to experiments file")
	outDir := flag.String("out", "", "results directory (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting bench runner",
		"version", version.Version,
		"commit", version.Commit,
		"experiments", *experimentsPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Results.Dir = *outDir
	}

	cases, err := run.LoadCases(*experimentsPath)
	if err != nil {
		logger.Error("failed to load experiments", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	sinks, err := buildSinks(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up result sinks", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := sinks.Close(); err != nil {
			logger.Error("failed to close result sinks", "error", err)
		}
	}()

	registry := backend.Default()
	runner := run.New(registry, logger, run.WithSink(sinks))

	total := 0
	for _, c := range cases.Cases {
		logger.Info("running case", "case", c.Name, "backends", c.Backends)
		results, err := runner.RunCase(ctx, c)
		total += len(results)
		if err != nil {
			logger.Error("case aborted", "case", c.Name, "error", err)
			os.Exit(1)
		}
	}

	logger.Info("benchmark run finished", "results", total, "dir", cfg.Results.Dir)
}

// buildSinks always includes the JSONL file sink and adds Postgres when
// enabled in config.
func buildSinks(ctx context.Context, cfg *config.WorkbenchConfig, logger *slog.Logger) (writer.Multi, error) {
	jsonl, err := writer.NewJSONLWriter(cfg.Results.Dir, time.Now())
	if err != nil {
		return nil, err
	}
	logger.Info("saving results", "file", jsonl.Path())

	sinks := writer.Multi{jsonl}

	if cfg.Results.Postgres.Enabled {
		pool, err := database.Connect(ctx, cfg.Results.Postgres)
		if err != nil {
			jsonl.Close()
			return nil, err
		}
		pg, err := writer.NewPostgresWriter(ctx, pool)
		if err != nil {
			pool.Close()
			jsonl.Close()
			return nil, err
		}
		logger.Info("postgres sink enabled",
			"host", cfg.Results.Postgres.Host,
			"database", cfg.Results.Postgres.Name,
		)
		sinks = append(sinks, pg)
	}

	return sinks, nil
}
