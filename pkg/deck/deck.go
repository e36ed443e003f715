package deck

import (
	"fmt"
	"math/rand"
)

// Suit represents one of the four card suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}
var suitSymbols = [...]string{"♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "unknown"
	}
	return suitNames[s]
}

// Symbol returns the single-character glyph for the suit.
func (s Suit) Symbol() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is a red suit.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// ParseSuit parses a suit name as produced by Suit.String.
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %s", name)
}

// Rank represents a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankLabels = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankLabels[r-1]
}

// IsValid reports whether the rank is within Ace..King.
func (r Rank) IsValid() bool {
	return r >= Ace && r <= King
}

// Card is a single playing card. Rank and Suit identify the card; FaceUp
// is owned by whichever pile currently holds it.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// IsRed reports whether the card belongs to a red suit.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Same reports whether two cards share the same identity, ignoring FaceUp.
func (c Card) Same(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// New returns the ordered 52-card deck, all face-down.
func New() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Shuffle returns a permutation of cards that is deterministic for a given
// seed. The input slice is not modified.
func Shuffle(cards []Card, seed int64) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
