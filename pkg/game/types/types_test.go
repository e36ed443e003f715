package types

import (
	"testing"

	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPileIDString(t *testing.T) {
	tests := []struct {
		id   PileID
		want string
	}{
		{StockID, "stock"},
		{WasteID, "waste"},
		{FoundationID(deck.Hearts), "foundation-hearts"},
		{FoundationID(deck.Clubs), "foundation-clubs"},
		{TableauID(0), "tableau-0"},
		{TableauID(6), "tableau-6"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())
			parsed, err := ParsePileID(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.id, parsed)
		})
	}
}

func TestParsePileIDInvalid(t *testing.T) {
	for _, s := range []string{"", "deck", "foundation-cups", "tableau-7", "tableau-x"} {
		_, err := ParsePileID(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestPileTakeTop(t *testing.T) {
	p := Pile{ID: TableauID(0)}
	p.Append(
		deck.Card{Rank: deck.King, Suit: deck.Spades},
		deck.Card{Rank: deck.Queen, Suit: deck.Hearts, FaceUp: true},
		deck.Card{Rank: deck.Jack, Suit: deck.Clubs, FaceUp: true},
	)

	taken := p.TakeTop(2)
	require.Len(t, taken, 2)
	assert.Equal(t, deck.Queen, taken[0].Rank)
	assert.Equal(t, deck.Jack, taken[1].Rank)
	assert.Equal(t, 1, p.Len())

	assert.Nil(t, p.TakeTop(2), "taking more cards than the pile holds")
	assert.Nil(t, p.TakeTop(0))
	assert.Equal(t, 1, p.Len())
}

func TestPileFlipExposed(t *testing.T) {
	p := Pile{ID: TableauID(3)}
	assert.False(t, p.FlipExposed(), "empty pile")

	p.Append(deck.Card{Rank: deck.Five, Suit: deck.Diamonds})
	assert.True(t, p.FlipExposed())
	top, ok := p.Top()
	require.True(t, ok)
	assert.True(t, top.FaceUp)

	assert.False(t, p.FlipExposed(), "already face-up")
}

func TestGameStateResolvePile(t *testing.T) {
	g := NewGameState()
	assert.Same(t, &g.Stock, g.Pile(StockID))
	assert.Same(t, &g.Waste, g.Pile(WasteID))
	assert.Same(t, &g.Foundations[deck.Spades], g.Pile(FoundationID(deck.Spades)))
	assert.Same(t, &g.Tableaus[6], g.Pile(TableauID(6)))
	assert.Nil(t, g.Pile(PileID{Kind: PileTableau, Index: 7}))
	assert.Nil(t, g.Pile(PileID{Kind: PileFoundation, Index: -1}))
	assert.Len(t, g.Piles(), 13)
}

func TestGameStateCopyIsDeep(t *testing.T) {
	g := NewGameState()
	g.Tableaus[0].Append(deck.Card{Rank: deck.Ace, Suit: deck.Spades, FaceUp: true})
	g.Score = 10
	g.History = append(g.History, g.Snapshot())

	c := g.Copy()
	c.Tableaus[0].Cards[0].Rank = deck.King
	c.Score = 0
	c.History[0].Score = 99

	assert.Equal(t, deck.Ace, g.Tableaus[0].Cards[0].Rank)
	assert.Equal(t, 10, g.Score)
	assert.Equal(t, 10, g.History[0].Score)
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewGameState()
	g.Tableaus[2].Append(
		deck.Card{Rank: deck.Nine, Suit: deck.Clubs},
		deck.Card{Rank: deck.Eight, Suit: deck.Hearts, FaceUp: true},
	)
	g.Waste.Append(deck.Card{Rank: deck.Two, Suit: deck.Diamonds, FaceUp: true})
	g.Score = 15
	g.MoveCount = 3

	snap := g.Snapshot()

	g.Tableaus[2].TakeTop(1)
	g.Score = 0
	g.MoveCount = 99

	g.RestoreSnapshot(snap)
	assert.Equal(t, 2, g.Tableaus[2].Len())
	assert.Equal(t, 15, g.Score)
	assert.Equal(t, 3, g.MoveCount)
}
