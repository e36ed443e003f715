package workers

import (
	"context"
	"testing"
	"time"

	"github.com/macanangkasa/klondike/pkg/game"
	"github.com/macanangkasa/klondike/pkg/repositories"
	"github.com/macanangkasa/klondike/pkg/savegame"
	"github.com/macanangkasa/klondike/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutosaveWorkerSave(t *testing.T) {
	ctx := context.Background()
	store, err := repositories.NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close(ctx)

	engine := game.NewEngine(game.NewEngineOptions{Seed: 4})
	stateManager := state.NewInMemoryManager()
	require.NoError(t, stateManager.Set(ctx, engine.State()))

	w := NewAutosaveWorker(NewAutosaveWorkerOptions{
		Store:        store,
		StateManager: stateManager,
		SaveID:       "autosave",
		Interval:     time.Minute,
	})
	w.save(ctx)

	data, err := store.Load(ctx, "autosave")
	require.NoError(t, err)
	loaded, err := savegame.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, engine.State(), loaded)
}

func TestAutosaveWorkerSaveCompressed(t *testing.T) {
	ctx := context.Background()
	store, err := repositories.NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close(ctx)

	engine := game.NewEngine(game.NewEngineOptions{Seed: 4})
	stateManager := state.NewInMemoryManager()
	require.NoError(t, stateManager.Set(ctx, engine.State()))

	w := NewAutosaveWorker(NewAutosaveWorkerOptions{
		Store:        store,
		StateManager: stateManager,
		SaveID:       "autosave",
		Interval:     time.Minute,
		Compress:     true,
	})
	w.save(ctx)

	data, err := store.Load(ctx, "autosave")
	require.NoError(t, err)
	loaded, err := savegame.Decode(data)
	require.NoError(t, err, "decode sniffs compressed saves")
	assert.Equal(t, engine.State(), loaded)
}

func TestAutosaveWorkerNoState(t *testing.T) {
	ctx := context.Background()
	store, err := repositories.NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close(ctx)

	w := NewAutosaveWorker(NewAutosaveWorkerOptions{
		Store:        store,
		StateManager: state.NewInMemoryManager(),
		SaveID:       "autosave",
		Interval:     time.Minute,
	})
	w.save(ctx)

	_, err = store.Load(ctx, "autosave")
	assert.True(t, repositories.IsNotFound(err), "nothing saved when no state is set")
}
