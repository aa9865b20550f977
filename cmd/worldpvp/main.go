package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/data"
	"github.com/udisondev/worldpvp/internal/db"
	"github.com/udisondev/worldpvp/internal/game/group"
	"github.com/udisondev/worldpvp/internal/game/worldpvp"
	"github.com/udisondev/worldpvp/internal/killfeed"
	"github.com/udisondev/worldpvp/internal/metrics"
	"github.com/udisondev/worldpvp/internal/opsserver"
	"github.com/udisondev/worldpvp/internal/world"
)

const ConfigPath = "config/worldpvp.yaml"

func main() {
	configPath := flag.String("config", ConfigPath, "path to world PvP config")
	seedDemo := flag.Bool("seed-demo", false, "seed demo item templates and loot rows into an empty database")
	linger := flag.Bool("linger", false, "keep the ops server running after the simulation until interrupted")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	opts := runOptions{
		configPath: *configPath,
		seedDemo:   *seedDemo,
		linger:     *linger,
	}
	if err := run(ctx, opts); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath string
	seedDemo   bool
	linger     bool
}

func run(ctx context.Context, opts runOptions) error {
	// Load config FIRST to determine log level
	cfgPath := opts.configPath
	if p := os.Getenv("WORLDPVP_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("world PvP simulator starting", "log_level", cfg.LogLevel, "config", cfgPath)

	// Connect to database
	database, err := db.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	templateRepo := db.NewItemTemplateRepository(database.Pool())
	lootRepo := db.NewLootRepository(database.Pool())
	rewardItemRepo := db.NewRewardItemRepository(database.Pool())

	if opts.seedDemo {
		if err := seedDemoData(ctx, templateRepo, lootRepo); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	templates, err := templateRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading item templates: %w", err)
	}
	itemTable := data.NewItemTable(templates)

	// Ошибки загрузки не фатальны: работаем с частично загруженной таблицей
	lootTable, err := data.LoadLootTable(ctx, lootRepo)
	if err != nil {
		slog.Error("world PvP loot loaded with errors", "error", err)
	}
	metrics.RecordLootTable(lootTable)

	ops := opsserver.New(cfg.Ops.Addr(), database)
	ops.SetLootTable(lootTable)

	manager := worldpvp.NewManager(cfg.Rewards, cfg.Groups, lootTable, itemTable,
		worldpvp.WithRecorder(metrics.NewRecorder()))

	sim, err := NewSimulation(cfg.Simulation, world.IDGenerator(), group.NewManager())
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}

	summary := NewSummary()
	dispatcher := killfeed.NewDispatcher(cfg.Workers, manager, killfeed.WithObserver(summary.Observe))

	g, gctx := errgroup.WithContext(ctx)

	// Ops server живёт дольше симуляции только с -linger
	opsCtx, stopOps := context.WithCancel(gctx)
	defer stopOps()
	if cfg.Ops.Port != 0 {
		g.Go(func() error {
			return ops.Run(opsCtx)
		})
	}

	g.Go(func() error {
		if !opts.linger {
			defer stopOps()
		}

		events := make(chan killfeed.KillEvent, cfg.Workers.QueueSize)
		pg, pctx := errgroup.WithContext(gctx)
		pg.Go(func() error {
			return sim.Produce(pctx, events)
		})
		pg.Go(func() error {
			return dispatcher.Run(pctx, events)
		})
		if err := pg.Wait(); err != nil {
			return fmt.Errorf("simulation: %w", err)
		}

		summary.Log(dispatcher)

		saved, err := rewardItemRepo.SaveChanged(gctx, sim.Items())
		if err != nil {
			return fmt.Errorf("saving reward items: %w", err)
		}
		slog.Info("reward items saved", "count", saved)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("world PvP simulator stopped")
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
