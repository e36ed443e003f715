package rules

import (
	"fmt"

	"github.com/macanangkasa/klondike/pkg/deck"
)

// ErrInvalidMove is returned for structurally invalid moves: unknown piles,
// bad card counts, or cards that are not movable at all.
type ErrInvalidMove struct {
	Reason string
}

func (e *ErrInvalidMove) Error() string {
	return "invalid move: " + e.Reason
}

func IsInvalidMove(err error) bool {
	_, ok := err.(*ErrInvalidMove)
	return ok
}

// ErrNoOpMove is returned when source and destination are the same pile.
type ErrNoOpMove struct {
}

func (e *ErrNoOpMove) Error() string {
	return "source and destination are the same pile"
}

func IsNoOpMove(err error) bool {
	_, ok := err.(*ErrNoOpMove)
	return ok
}

// ErrIllegalFoundationMove is returned when a card violates the foundation
// acceptance rule.
type ErrIllegalFoundationMove struct {
	Card deck.Card
}

func (e *ErrIllegalFoundationMove) Error() string {
	return fmt.Sprintf("%s cannot be placed on this foundation", e.Card)
}

func IsIllegalFoundationMove(err error) bool {
	_, ok := err.(*ErrIllegalFoundationMove)
	return ok
}

// ErrIllegalTableauMove is returned when a run violates the tableau
// acceptance rule.
type ErrIllegalTableauMove struct {
	Card deck.Card
}

func (e *ErrIllegalTableauMove) Error() string {
	return fmt.Sprintf("%s cannot be placed on this tableau column", e.Card)
}

func IsIllegalTableauMove(err error) bool {
	_, ok := err.(*ErrIllegalTableauMove)
	return ok
}
