package game

import (
	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/rules"
	"github.com/macanangkasa/klondike/pkg/game/types"
)

// Hint scans for a legal move and returns the first one found, preferring
// foundation moves, then tableau runs, then waste plays. It never suggests
// pulling a card back off a foundation. The boolean is false when no move
// is available (the player can still draw).
func (e *Engine) Hint() (types.Move, bool) {
	g := e.state

	singles := make([]types.PileID, 0, 1+types.NumTableaus)
	singles = append(singles, types.WasteID)
	for col := 0; col < types.NumTableaus; col++ {
		singles = append(singles, types.TableauID(col))
	}
	for _, src := range singles {
		for suit := deck.Clubs; suit <= deck.Spades; suit++ {
			m := types.Move{Source: src, CardCount: 1, Dest: types.FoundationID(suit)}
			if rules.Validate(g, m) == nil {
				return m, true
			}
		}
	}

	for col := 0; col < types.NumTableaus; col++ {
		pile := &g.Tableaus[col]
		for count := faceUpSuffix(pile); count >= 1; count-- {
			for dest := 0; dest < types.NumTableaus; dest++ {
				if dest == col {
					continue
				}
				// Relocating a whole column into an empty one frees nothing.
				if count == pile.Len() && g.Tableaus[dest].Len() == 0 {
					continue
				}
				m := types.Move{Source: types.TableauID(col), CardCount: count, Dest: types.TableauID(dest)}
				if rules.Validate(g, m) == nil {
					return m, true
				}
			}
		}
	}

	for dest := 0; dest < types.NumTableaus; dest++ {
		m := types.Move{Source: types.WasteID, CardCount: 1, Dest: types.TableauID(dest)}
		if rules.Validate(g, m) == nil {
			return m, true
		}
	}

	return types.Move{}, false
}

// faceUpSuffix returns how many cards at the tail of the pile are face-up.
func faceUpSuffix(p *types.Pile) int {
	count := 0
	for i := p.Len() - 1; i >= 0; i-- {
		if !p.Cards[i].FaceUp {
			break
		}
		count++
	}
	return count
}
