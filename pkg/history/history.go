// Package history manages the bounded undo stack carried on a game state.
package history

import "github.com/macanangkasa/klondike/pkg/game/types"

// DefaultCap is the undo depth used when no cap is configured.
const DefaultCap = 128

type ErrNoHistory struct {
}

func (e *ErrNoHistory) Error() string {
	return "no moves to undo"
}

func IsNoHistory(err error) bool {
	_, ok := err.(*ErrNoHistory)
	return ok
}

// Record pushes a snapshot of the current board onto the state's history,
// discarding the oldest entry when the stack exceeds cap. It must be called
// before the mutation it protects.
func Record(g *types.GameState, cap int) {
	if cap <= 0 {
		cap = DefaultCap
	}
	g.History = append(g.History, g.Snapshot())
	if len(g.History) > cap {
		g.History = g.History[len(g.History)-cap:]
	}
}

// Undo pops the most recent snapshot and restores the board, score, and move
// count from it. Popping is destructive: undo is not itself undoable.
func Undo(g *types.GameState) error {
	if len(g.History) == 0 {
		return &ErrNoHistory{}
	}
	last := g.History[len(g.History)-1]
	g.History = g.History[:len(g.History)-1]
	g.RestoreSnapshot(last)
	return nil
}
