// Package rules implements pure Klondike move validation. Nothing in this
// package mutates game state, so Validate is safe to call repeatedly and
// from read-only contexts such as hint generation.
package rules

import (
	"fmt"

	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/types"
)

// Validate checks whether a move is legal in the given state. It returns nil
// for a legal move and one of the error types in this package otherwise.
func Validate(g *types.GameState, m types.Move) error {
	src := g.Pile(m.Source)
	if src == nil {
		return &ErrInvalidMove{Reason: fmt.Sprintf("unknown source pile %s", m.Source)}
	}
	dst := g.Pile(m.Dest)
	if dst == nil {
		return &ErrInvalidMove{Reason: fmt.Sprintf("unknown destination pile %s", m.Dest)}
	}
	if m.Source == m.Dest {
		return &ErrNoOpMove{}
	}

	run, err := runFor(src, m.CardCount)
	if err != nil {
		return err
	}

	switch dst.ID.Kind {
	case types.PileFoundation:
		if len(run) != 1 {
			return &ErrInvalidMove{Reason: "foundations accept a single card only"}
		}
		return checkFoundation(dst, run[0])
	case types.PileTableau:
		return checkTableau(dst, run[0])
	default:
		return &ErrInvalidMove{Reason: fmt.Sprintf("%s does not accept cards", dst.ID)}
	}
}

// runFor extracts the candidate run from the source pile without removing
// it. Tableau sources yield count cards from the top, which must all be
// face-up and form a descending alternating-color sequence; every other
// source yields exactly its face-up top card.
func runFor(src *types.Pile, count int) ([]deck.Card, error) {
	if src.ID.Kind != types.PileTableau {
		if count != 1 {
			return nil, &ErrInvalidMove{Reason: fmt.Sprintf("%s moves a single card only", src.ID)}
		}
		top, ok := src.Top()
		if !ok {
			return nil, &ErrInvalidMove{Reason: fmt.Sprintf("%s is empty", src.ID)}
		}
		if !top.FaceUp {
			return nil, &ErrInvalidMove{Reason: fmt.Sprintf("top card of %s is face-down", src.ID)}
		}
		return []deck.Card{top}, nil
	}

	if count < 1 || count > src.Len() {
		return nil, &ErrInvalidMove{Reason: fmt.Sprintf("%s has no run of %d cards", src.ID, count)}
	}
	run := src.Cards[src.Len()-count:]
	for i, c := range run {
		if !c.FaceUp {
			return nil, &ErrInvalidMove{Reason: "run includes a face-down card"}
		}
		if i == 0 {
			continue
		}
		if !inSequence(run[i-1], c) {
			return nil, &ErrInvalidMove{Reason: "run is not a descending alternating-color sequence"}
		}
	}
	return run, nil
}

// checkFoundation applies the foundation acceptance rule: the card must
// match the foundation's suit and extend it by exactly one rank, starting
// from the Ace.
func checkFoundation(dst *types.Pile, c deck.Card) error {
	if int(c.Suit) != dst.ID.Index {
		return &ErrIllegalFoundationMove{Card: c}
	}
	top, ok := dst.Top()
	if !ok {
		if c.Rank != deck.Ace {
			return &ErrIllegalFoundationMove{Card: c}
		}
		return nil
	}
	if c.Rank != top.Rank+1 {
		return &ErrIllegalFoundationMove{Card: c}
	}
	return nil
}

// checkTableau applies the tableau acceptance rule to the first card of the
// run: one rank below the face-up top card and of the opposite color, or a
// King onto an empty column.
func checkTableau(dst *types.Pile, first deck.Card) error {
	top, ok := dst.Top()
	if !ok {
		if first.Rank != deck.King {
			return &ErrIllegalTableauMove{Card: first}
		}
		return nil
	}
	if !top.FaceUp || !inSequence(top, first) {
		return &ErrIllegalTableauMove{Card: first}
	}
	return nil
}

// inSequence reports whether lower may sit directly on upper in a tableau
// run: one rank lower and the opposite color.
func inSequence(upper, lower deck.Card) bool {
	return lower.Rank == upper.Rank-1 && lower.IsRed() != upper.IsRed()
}

// IsWin reports whether every foundation holds all 13 cards of its suit.
func IsWin(g *types.GameState) bool {
	for i := range g.Foundations {
		if g.Foundations[i].Len() != int(deck.King) {
			return false
		}
	}
	return true
}
