package types

import "github.com/macanangkasa/klondike/pkg/deck"

// GameState owns the 13 piles of a Klondike game plus its statistics and
// undo history. It is mutated only through the game engine.
type GameState struct {
	// GameID identifies this deal across saves.
	GameID string
	// Seed is the shuffle seed the deal was created from.
	Seed   int64
	Status Status

	Stock       Pile
	Waste       Pile
	Foundations [NumFoundations]Pile
	Tableaus    [NumTableaus]Pile

	Score          int
	MoveCount      int
	ElapsedSeconds int

	// History holds snapshots taken before each mutation, oldest first.
	History []Snapshot
}

// NewGameState returns a state with all 13 piles initialized and empty.
func NewGameState() *GameState {
	g := &GameState{Status: StatusDealing}
	g.Stock.ID = StockID
	g.Waste.ID = WasteID
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		g.Foundations[suit].ID = FoundationID(suit)
	}
	for col := 0; col < NumTableaus; col++ {
		g.Tableaus[col].ID = TableauID(col)
	}
	return g
}

// Pile resolves a pile ID to the pile it names, or nil if the ID is invalid.
func (g *GameState) Pile(id PileID) *Pile {
	switch id.Kind {
	case PileStock:
		return &g.Stock
	case PileWaste:
		return &g.Waste
	case PileFoundation:
		if id.Index < 0 || id.Index >= NumFoundations {
			return nil
		}
		return &g.Foundations[id.Index]
	case PileTableau:
		if id.Index < 0 || id.Index >= NumTableaus {
			return nil
		}
		return &g.Tableaus[id.Index]
	default:
		return nil
	}
}

// Piles returns all 13 piles in a stable order.
func (g *GameState) Piles() []*Pile {
	piles := make([]*Pile, 0, 2+NumFoundations+NumTableaus)
	piles = append(piles, &g.Stock, &g.Waste)
	for i := range g.Foundations {
		piles = append(piles, &g.Foundations[i])
	}
	for i := range g.Tableaus {
		piles = append(piles, &g.Tableaus[i])
	}
	return piles
}

// Copy returns a deep copy of the game state, including history.
func (g *GameState) Copy() *GameState {
	c := &GameState{
		GameID:         g.GameID,
		Seed:           g.Seed,
		Status:         g.Status,
		Stock:          g.Stock.Copy(),
		Waste:          g.Waste.Copy(),
		Score:          g.Score,
		MoveCount:      g.MoveCount,
		ElapsedSeconds: g.ElapsedSeconds,
	}
	for i := range g.Foundations {
		c.Foundations[i] = g.Foundations[i].Copy()
	}
	for i := range g.Tableaus {
		c.Tableaus[i] = g.Tableaus[i].Copy()
	}
	if len(g.History) > 0 {
		c.History = make([]Snapshot, len(g.History))
		for i := range g.History {
			c.History[i] = g.History[i].Copy()
		}
	}
	return c
}

// Snapshot captures pile contents and counters at a point in time. Elapsed
// time and history itself are deliberately excluded: undo rewinds the board,
// not the clock.
type Snapshot struct {
	Stock       Pile
	Waste       Pile
	Foundations [NumFoundations]Pile
	Tableaus    [NumTableaus]Pile
	Score       int
	MoveCount   int
}

// Snapshot returns a deep copy of the current board and counters.
func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Stock:     g.Stock.Copy(),
		Waste:     g.Waste.Copy(),
		Score:     g.Score,
		MoveCount: g.MoveCount,
	}
	for i := range g.Foundations {
		s.Foundations[i] = g.Foundations[i].Copy()
	}
	for i := range g.Tableaus {
		s.Tableaus[i] = g.Tableaus[i].Copy()
	}
	return s
}

// RestoreSnapshot overwrites the board and counters from a snapshot.
func (g *GameState) RestoreSnapshot(s Snapshot) {
	g.Stock = s.Stock.Copy()
	g.Waste = s.Waste.Copy()
	for i := range s.Foundations {
		g.Foundations[i] = s.Foundations[i].Copy()
	}
	for i := range s.Tableaus {
		g.Tableaus[i] = s.Tableaus[i].Copy()
	}
	g.Score = s.Score
	g.MoveCount = s.MoveCount
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	c := Snapshot{
		Stock:     s.Stock.Copy(),
		Waste:     s.Waste.Copy(),
		Score:     s.Score,
		MoveCount: s.MoveCount,
	}
	for i := range s.Foundations {
		c.Foundations[i] = s.Foundations[i].Copy()
	}
	for i := range s.Tableaus {
		c.Tableaus[i] = s.Tableaus[i].Copy()
	}
	return c
}
