// Package game implements the Klondike state machine. The Engine owns a
// GameState and is its only mutator; it validates every move before applying
// it, so a failed operation never leaves the state partially changed.
//
// The engine is single-threaded by design. Callers that share state with
// background collaborators (autosave, rendering) should hand out copies via
// State and a state.Manager rather than sharing the engine itself.
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/rules"
	"github.com/macanangkasa/klondike/pkg/game/types"
	"github.com/macanangkasa/klondike/pkg/history"
	"github.com/macanangkasa/klondike/pkg/log"
)

const (
	DefaultDrawCount      = 1
	DefaultFreeRecycles   = 1
	DefaultRecyclePenalty = 100
)

type Engine struct {
	state          *types.GameState
	drawCount      int
	freeRecycles   int
	recyclePenalty int
	historyCap     int
	recycles       int
}

// NewEngineOptions contains options for creating a new Engine. Zero values
// take the package defaults; a game with no recycle penalty is expressed
// with a large FreeRecycles rather than a zero penalty.
type NewEngineOptions struct {
	// Seed drives the shuffle. 0 means a fresh time-based seed.
	Seed int64
	// DrawCount is the number of cards moved per draw, commonly 1 or 3.
	DrawCount int
	// FreeRecycles is how many waste recycles are free before the penalty.
	FreeRecycles int
	// RecyclePenalty is the score deducted per recycle past the free ones.
	RecyclePenalty int
	// HistoryCap bounds the undo stack depth.
	HistoryCap int
}

func NewEngine(opts NewEngineOptions) *Engine {
	e := &Engine{
		drawCount:      opts.DrawCount,
		freeRecycles:   opts.FreeRecycles,
		recyclePenalty: opts.RecyclePenalty,
		historyCap:     opts.HistoryCap,
	}
	if e.drawCount <= 0 {
		e.drawCount = DefaultDrawCount
	}
	if e.freeRecycles <= 0 {
		e.freeRecycles = DefaultFreeRecycles
	}
	if e.recyclePenalty <= 0 {
		e.recyclePenalty = DefaultRecyclePenalty
	}
	if e.historyCap <= 0 {
		e.historyCap = history.DefaultCap
	}
	e.deal(opts.Seed)
	return e
}

// NewEngineWithState creates an engine around a previously saved state, e.g.
// one decoded by the savegame package. The recycle counter is not part of
// the save format, so penalties restart from zero after a load.
func NewEngineWithState(g *types.GameState, opts NewEngineOptions) *Engine {
	e := NewEngine(opts)
	e.state = g
	e.recycles = 0
	return e
}

// deal shuffles a fresh deck and lays out the board: 28 cards to the tableau
// columns (column i gets i+1, last one face-up), the remaining 24 face-down
// to the stock in dealt order.
func (e *Engine) deal(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := types.NewGameState()
	g.GameID = uuid.NewString()
	g.Seed = seed

	cards := deck.Shuffle(deck.New(), seed)
	idx := 0
	for col := 0; col < types.NumTableaus; col++ {
		for n := 0; n <= col; n++ {
			c := cards[idx]
			idx++
			c.FaceUp = n == col
			g.Tableaus[col].Append(c)
		}
	}
	g.Stock.Append(cards[idx:]...)

	g.Status = types.StatusPlaying
	e.state = g
	e.recycles = 0
	log.Info("Dealt game %s from seed %d", g.GameID, seed)
}

// NewGame abandons the current game and deals a fresh one.
func (e *Engine) NewGame(seed int64) {
	if e.state.Status == types.StatusPlaying {
		e.state.Status = types.StatusAbandoned
		log.Info("Abandoned game %s after %d moves", e.state.GameID, e.state.MoveCount)
	}
	e.deal(seed)
}

// Restart redeals the current game from its original seed, keeping the game
// identity but zeroing score, moves, time, and history.
func (e *Engine) Restart() {
	id := e.state.GameID
	e.deal(e.state.Seed)
	e.state.GameID = id
}

// State returns a deep copy of the current game state.
func (e *Engine) State() *types.GameState {
	return e.state.Copy()
}

// ApplyMove validates and applies a move. On success it returns the score
// delta that was applied (after clamping at zero); on failure the state is
// unchanged and the validation error is returned.
func (e *Engine) ApplyMove(m types.Move) (int, error) {
	if e.state.Status != types.StatusPlaying {
		return 0, &ErrGameOver{}
	}
	if err := rules.Validate(e.state, m); err != nil {
		return 0, err
	}

	history.Record(e.state, e.historyCap)

	src := e.state.Pile(m.Source)
	dst := e.state.Pile(m.Dest)
	run := src.TakeTop(m.CardCount)
	dst.Append(run...)
	if src.ID.Kind == types.PileTableau {
		src.FlipExposed()
	}

	delta := e.applyScore(scoreDelta(m.Source.Kind, m.Dest.Kind))
	e.state.MoveCount++
	log.Debug("Applied move %s, score %+d", m, delta)

	if rules.IsWin(e.state) {
		e.state.Status = types.StatusWon
		log.Info("Game %s won in %d moves with score %d", e.state.GameID, e.state.MoveCount, e.state.Score)
	}
	return delta, nil
}

// DrawFromStock moves up to the configured draw count from the stock to the
// waste, face-up. When the stock is empty it recycles the waste back into
// the stock instead; when both are empty it returns ErrEmptyStockAndWaste.
func (e *Engine) DrawFromStock() error {
	if e.state.Status != types.StatusPlaying {
		return &ErrGameOver{}
	}
	if e.state.Stock.Len() == 0 && e.state.Waste.Len() == 0 {
		return &ErrEmptyStockAndWaste{}
	}

	history.Record(e.state, e.historyCap)

	if e.state.Stock.Len() == 0 {
		e.recycleWaste()
	} else {
		n := e.drawCount
		if n > e.state.Stock.Len() {
			n = e.state.Stock.Len()
		}
		for i := 0; i < n; i++ {
			c := e.state.Stock.TakeTop(1)[0]
			c.FaceUp = true
			e.state.Waste.Append(c)
		}
		log.Debug("Drew %d from stock, %d remaining", n, e.state.Stock.Len())
	}
	e.state.MoveCount++
	return nil
}

// recycleWaste returns the entire waste to the stock face-down in reversed
// order, so the next draw surfaces the earliest-drawn card again.
func (e *Engine) recycleWaste() {
	for e.state.Waste.Len() > 0 {
		c := e.state.Waste.TakeTop(1)[0]
		c.FaceUp = false
		e.state.Stock.Append(c)
	}
	e.recycles++
	delta := 0
	if e.recycles > e.freeRecycles {
		delta = e.applyScore(-e.recyclePenalty)
	}
	log.Debug("Recycled waste into stock (recycle %d, score %+d)", e.recycles, delta)
}

// Undo restores the state prior to the most recent mutation. Undoing a
// winning move reopens the game.
func (e *Engine) Undo() error {
	if err := history.Undo(e.state); err != nil {
		return err
	}
	if e.state.Status == types.StatusWon {
		e.state.Status = types.StatusPlaying
	}
	log.Debug("Undid last move, %d snapshots remaining", len(e.state.History))
	return nil
}

// CheckWin reports whether every foundation holds its full suit.
func (e *Engine) CheckWin() bool {
	return rules.IsWin(e.state)
}

// Tick advances the elapsed-time counter by one second. The surrounding
// application owns the timer; the engine only keeps the count.
func (e *Engine) Tick() {
	if e.state.Status == types.StatusPlaying {
		e.state.ElapsedSeconds++
	}
}

// applyScore adds delta to the score, clamping at zero, and returns the
// delta that was actually applied.
func (e *Engine) applyScore(delta int) int {
	before := e.state.Score
	after := before + delta
	if after < 0 {
		after = 0
	}
	e.state.Score = after
	return after - before
}

// scoreDelta is the classic Klondike scoring table, applied per move.
func scoreDelta(src, dst types.PileKind) int {
	switch {
	case src == types.PileWaste && dst == types.PileTableau:
		return 5
	case src == types.PileWaste && dst == types.PileFoundation:
		return 10
	case src == types.PileTableau && dst == types.PileFoundation:
		return 10
	case src == types.PileFoundation && dst == types.PileTableau:
		return -15
	default:
		return 0
	}
}
