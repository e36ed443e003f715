package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/macanangkasa/klondike/pkg/config"
	"github.com/macanangkasa/klondike/pkg/game"
	"github.com/macanangkasa/klondike/pkg/log"
	"github.com/macanangkasa/klondike/pkg/repositories"
	"github.com/macanangkasa/klondike/pkg/savegame"
	"github.com/macanangkasa/klondike/pkg/state"
	"github.com/macanangkasa/klondike/pkg/version"
	"github.com/macanangkasa/klondike/pkg/workers"
)

func main() {
	seed := flag.Int64("seed", 0, "Deal seed (0 uses a random seed)")
	saveID := flag.String("save-id", "autosave", "Save slot identifier")
	logLevel := flag.String("log-level", "", "Log level (overrides KLONDIKE_LOG_LEVEL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	parsedLogLevel, err := log.ParseLogLevel(level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	log.Info("Starting klondike version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := newStore(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to open save store: %v", err))
	}
	defer store.Close(ctx)

	engine := loadOrNewGame(ctx, store, cfg, *saveID, *seed)

	stateManager := state.NewInMemoryManager()
	if err := stateManager.Set(ctx, engine.State()); err != nil {
		panic(fmt.Sprintf("Failed to publish game state: %v", err))
	}

	autosave := workers.NewAutosaveWorker(workers.NewAutosaveWorkerOptions{
		Store:        store,
		StateManager: stateManager,
		SaveID:       *saveID,
		Interval:     cfg.AutosaveInterval,
		Compress:     cfg.CompressSaves,
	})
	go autosave.Start(ctx)

	shell := NewShell(ShellOptions{
		Engine:       engine,
		StateManager: stateManager,
		Store:        store,
		SaveID:       *saveID,
		Compress:     cfg.CompressSaves,
		In:           os.Stdin,
		Out:          os.Stdout,
	})
	shell.Run(ctx)
}

func newStore(ctx context.Context, cfg *config.Config) (repositories.SaveStore, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return repositories.NewSQLiteStore(ctx, cfg.SQLitePath)
	case config.StorePostgres:
		return repositories.NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return repositories.NewFileStore(cfg.SaveDir)
	}
}

// loadOrNewGame resumes the saved game in the given slot, or deals a fresh
// one when there is no save or the save is unreadable.
func loadOrNewGame(ctx context.Context, store repositories.SaveStore, cfg *config.Config, saveID string, seed int64) *game.Engine {
	opts := game.NewEngineOptions{
		Seed:           seed,
		DrawCount:      cfg.DrawCount,
		FreeRecycles:   cfg.FreeRecycles,
		RecyclePenalty: cfg.RecyclePenalty,
		HistoryCap:     cfg.HistoryCap,
	}

	data, err := store.Load(ctx, saveID)
	if err != nil {
		if !repositories.IsNotFound(err) {
			log.Warn("Failed to load save %s: %v", saveID, err)
		}
		return game.NewEngine(opts)
	}

	saved, err := savegame.Decode(data)
	if err != nil {
		fmt.Println("Save file unreadable, starting a new game.")
		log.Warn("Failed to decode save %s: %v", saveID, err)
		return game.NewEngine(opts)
	}

	log.Info("Resumed game %s from slot %s", saved.GameID, saveID)
	return game.NewEngineWithState(saved, opts)
}
