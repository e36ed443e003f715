package state

import (
	"context"

	gametypes "github.com/macanangkasa/klondike/pkg/game/types"
)

// Manager provides shared access to the current game state. The engine
// itself is single-threaded; the owning loop publishes copies here for
// background collaborators such as the autosave worker.
// Implementations must be thread-safe.
type Manager interface {
	// Get returns a copy of the current game state.
	Get(ctx context.Context) (*gametypes.GameState, error)
	// Set sets the current game state.
	Set(ctx context.Context, gameState *gametypes.GameState) error
}
