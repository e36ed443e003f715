package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macanangkasa/klondike/pkg/deck"
)

// PileKind tags the four categories of pile on the board.
type PileKind int

const (
	PileStock PileKind = iota
	PileWaste
	PileFoundation
	PileTableau
)

func (k PileKind) String() string {
	switch k {
	case PileStock:
		return "stock"
	case PileWaste:
		return "waste"
	case PileFoundation:
		return "foundation"
	case PileTableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// PileID identifies one of the 13 piles on the board. Index is the suit for
// foundations, the column (0..6) for tableaus, and unused otherwise.
type PileID struct {
	Kind  PileKind
	Index int
}

var (
	StockID = PileID{Kind: PileStock}
	WasteID = PileID{Kind: PileWaste}
)

// FoundationID returns the pile ID for the foundation of the given suit.
func FoundationID(suit deck.Suit) PileID {
	return PileID{Kind: PileFoundation, Index: int(suit)}
}

// TableauID returns the pile ID for tableau column col (0..6).
func TableauID(col int) PileID {
	return PileID{Kind: PileTableau, Index: col}
}

func (id PileID) String() string {
	switch id.Kind {
	case PileStock:
		return "stock"
	case PileWaste:
		return "waste"
	case PileFoundation:
		return "foundation-" + deck.Suit(id.Index).String()
	case PileTableau:
		return "tableau-" + strconv.Itoa(id.Index)
	default:
		return "unknown"
	}
}

// ParsePileID parses an identifier as produced by PileID.String.
func ParsePileID(s string) (PileID, error) {
	switch {
	case s == "stock":
		return StockID, nil
	case s == "waste":
		return WasteID, nil
	case strings.HasPrefix(s, "foundation-"):
		suit, err := deck.ParseSuit(strings.TrimPrefix(s, "foundation-"))
		if err != nil {
			return PileID{}, fmt.Errorf("failed to parse pile id %q: %v", s, err)
		}
		return FoundationID(suit), nil
	case strings.HasPrefix(s, "tableau-"):
		col, err := strconv.Atoi(strings.TrimPrefix(s, "tableau-"))
		if err != nil || col < 0 || col >= NumTableaus {
			return PileID{}, fmt.Errorf("failed to parse pile id %q: bad column", s)
		}
		return TableauID(col), nil
	default:
		return PileID{}, fmt.Errorf("failed to parse pile id %q", s)
	}
}

const (
	NumFoundations = 4
	NumTableaus    = 7
	DeckSize       = 52
	// TableauDealSize is the number of cards dealt to the tableau columns.
	TableauDealSize = 28
)

// Pile is an ordered sequence of cards. The last element is the top.
type Pile struct {
	ID    PileID
	Cards []deck.Card
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int {
	return len(p.Cards)
}

// Top returns the top card without removing it.
func (p *Pile) Top() (deck.Card, bool) {
	if len(p.Cards) == 0 {
		return deck.Card{}, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// TakeTop removes and returns the top n cards, preserving their order.
// It returns nil if the pile holds fewer than n cards.
func (p *Pile) TakeTop(n int) []deck.Card {
	if n <= 0 || n > len(p.Cards) {
		return nil
	}
	split := len(p.Cards) - n
	taken := make([]deck.Card, n)
	copy(taken, p.Cards[split:])
	p.Cards = p.Cards[:split]
	return taken
}

// Append places cards on top of the pile in the given order.
func (p *Pile) Append(cards ...deck.Card) {
	p.Cards = append(p.Cards, cards...)
}

// FlipExposed turns the top card face-up if it is face-down. It reports
// whether a card was flipped.
func (p *Pile) FlipExposed() bool {
	if len(p.Cards) == 0 {
		return false
	}
	top := &p.Cards[len(p.Cards)-1]
	if top.FaceUp {
		return false
	}
	top.FaceUp = true
	return true
}

// Copy returns a deep copy of the pile.
func (p *Pile) Copy() Pile {
	if len(p.Cards) == 0 {
		return Pile{ID: p.ID}
	}
	cards := make([]deck.Card, len(p.Cards))
	copy(cards, p.Cards)
	return Pile{ID: p.ID, Cards: cards}
}

// Move describes a candidate move from one pile to another. CardCount is the
// number of cards taken from the top of the source; it is always 1 for
// non-tableau sources.
type Move struct {
	Source    PileID
	CardCount int
	Dest      PileID
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s (%d)", m.Source, m.Dest, m.CardCount)
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusDealing Status = iota
	StatusPlaying
	StatusWon
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusDealing:
		return "dealing"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}
