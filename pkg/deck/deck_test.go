package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cards := New()
	require.Len(t, cards, 52)

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.True(t, c.Rank.IsValid(), "rank out of range: %v", c)
		assert.False(t, c.FaceUp, "new deck cards must be face-down")
		identity := Card{Rank: c.Rank, Suit: c.Suit}
		assert.False(t, seen[identity], "duplicate card: %v", c)
		seen[identity] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffle(t *testing.T) {
	t.Run("deterministic for the same seed", func(t *testing.T) {
		a := Shuffle(New(), 42)
		b := Shuffle(New(), 42)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds give different orders", func(t *testing.T) {
		a := Shuffle(New(), 1)
		b := Shuffle(New(), 2)
		assert.NotEqual(t, a, b)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		original := New()
		_ = Shuffle(original, 7)
		assert.Equal(t, New(), original)
	})

	t.Run("is a permutation", func(t *testing.T) {
		shuffled := Shuffle(New(), 99)
		require.Len(t, shuffled, 52)
		seen := make(map[Card]bool)
		for _, c := range shuffled {
			seen[c] = true
		}
		assert.Len(t, seen, 52)
	})
}

func TestSuit(t *testing.T) {
	assert.True(t, Hearts.IsRed())
	assert.True(t, Diamonds.IsRed())
	assert.False(t, Clubs.IsRed())
	assert.False(t, Spades.IsRed())

	for suit := Clubs; suit <= Spades; suit++ {
		parsed, err := ParseSuit(suit.String())
		require.NoError(t, err)
		assert.Equal(t, suit, parsed)
	}

	_, err := ParseSuit("cups")
	assert.Error(t, err)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "10♥", Card{Rank: Ten, Suit: Hearts}.String())
	assert.Equal(t, "K♦", Card{Rank: King, Suit: Diamonds}.String())
}
