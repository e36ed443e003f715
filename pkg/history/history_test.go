package history

import (
	"testing"

	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndUndo(t *testing.T) {
	g := types.NewGameState()
	g.Waste.Append(deck.Card{Rank: deck.Ace, Suit: deck.Spades, FaceUp: true})
	g.Score = 5
	g.MoveCount = 1

	Record(g, 10)

	// Mutate as a move would.
	g.Waste.TakeTop(1)
	g.Foundations[deck.Spades].Append(deck.Card{Rank: deck.Ace, Suit: deck.Spades, FaceUp: true})
	g.Score = 15
	g.MoveCount = 2

	require.NoError(t, Undo(g))
	assert.Equal(t, 1, g.Waste.Len())
	assert.Equal(t, 0, g.Foundations[deck.Spades].Len())
	assert.Equal(t, 5, g.Score)
	assert.Equal(t, 1, g.MoveCount)
	assert.Empty(t, g.History)
}

func TestUndoEmptyHistory(t *testing.T) {
	g := types.NewGameState()
	err := Undo(g)
	require.Error(t, err)
	assert.True(t, IsNoHistory(err))
}

func TestRecordCapDiscardsOldest(t *testing.T) {
	g := types.NewGameState()
	for i := 0; i < 5; i++ {
		g.Score = i
		Record(g, 3)
	}
	require.Len(t, g.History, 3)
	// Oldest surviving snapshot was taken when Score was 2.
	assert.Equal(t, 2, g.History[0].Score)
	assert.Equal(t, 4, g.History[2].Score)
}

func TestRecordZeroCapUsesDefault(t *testing.T) {
	g := types.NewGameState()
	for i := 0; i < DefaultCap+10; i++ {
		Record(g, 0)
	}
	assert.Len(t, g.History, DefaultCap)
}

func TestUndoDoesNotRestoreElapsedTime(t *testing.T) {
	g := types.NewGameState()
	g.ElapsedSeconds = 10
	Record(g, 10)
	g.ElapsedSeconds = 42

	require.NoError(t, Undo(g))
	assert.Equal(t, 42, g.ElapsedSeconds, "undo rewinds the board, not the clock")
}
