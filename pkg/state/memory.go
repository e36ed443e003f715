package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/macanangkasa/klondike/pkg/game/types"
)

type InMemoryManager struct {
	lock      sync.RWMutex
	gameState *gametypes.GameState
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{}
}

func (m *InMemoryManager) Get(ctx context.Context) (*gametypes.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.gameState == nil {
		return nil, fmt.Errorf("no game state has been set")
	}
	return m.gameState.Copy(), nil
}

func (m *InMemoryManager) Set(ctx context.Context, gameState *gametypes.GameState) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}
	copy := gameState.Copy()

	m.lock.Lock()
	defer m.lock.Unlock()
	m.gameState = copy
	return nil
}
