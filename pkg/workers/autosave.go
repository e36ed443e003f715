package workers

import (
	"context"
	"time"

	"github.com/macanangkasa/klondike/pkg/log"
	"github.com/macanangkasa/klondike/pkg/repositories"
	"github.com/macanangkasa/klondike/pkg/savegame"
	"github.com/macanangkasa/klondike/pkg/state"
)

type AutosaveWorker struct {
	store        repositories.SaveStore
	stateManager state.Manager
	saveID       string
	interval     time.Duration
	compress     bool
}

type NewAutosaveWorkerOptions struct {
	Store        repositories.SaveStore
	StateManager state.Manager
	SaveID       string
	Interval     time.Duration
	Compress     bool
}

// NewAutosaveWorker creates a worker that periodically encodes the current
// game state and writes it to the save store. The engine stays on the main
// loop; the worker only ever sees copies published through the state
// manager.
func NewAutosaveWorker(opts NewAutosaveWorkerOptions) *AutosaveWorker {
	return &AutosaveWorker{
		store:        opts.Store,
		stateManager: opts.StateManager,
		saveID:       opts.SaveID,
		interval:     opts.Interval,
		compress:     opts.Compress,
	}
}

func (w *AutosaveWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.save(ctx)
		}
	}
}

func (w *AutosaveWorker) save(ctx context.Context) {
	gameState, err := w.stateManager.Get(ctx)
	if err != nil {
		log.Error("Failed to get current game state: %v", err)
		return
	}

	var data []byte
	if w.compress {
		data, err = savegame.EncodeCompressed(gameState)
	} else {
		data, err = savegame.Encode(gameState)
	}
	if err != nil {
		log.Error("Failed to encode game state: %v", err)
		return
	}

	if err := w.store.Save(ctx, w.saveID, data); err != nil {
		log.Error("Failed to save game state: %v", err)
		return
	}
	log.Debug("Autosaved game %s to slot %s", gameState.GameID, w.saveID)
}
