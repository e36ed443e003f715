// Package savegame encodes game state to and from its JSON save format.
// The format is human-readable and forward-compatible: unknown fields are
// ignored on load and a missing history field loads as an empty undo stack.
// History is persisted (bounded by the engine's configured cap), so undo
// survives a reload.
package savegame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/rules"
	"github.com/macanangkasa/klondike/pkg/game/types"
)

const formatVersion = 1

// zstdMagic prefixes every zstd frame; Decode sniffs it so both plain and
// compressed blobs load.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type savedCard struct {
	Rank   int    `json:"rank"`
	Suit   string `json:"suit"`
	FaceUp bool   `json:"faceUp"`
}

type savedPiles map[string][]savedCard

type savedSnapshot struct {
	Piles     savedPiles `json:"piles"`
	Score     int        `json:"score"`
	MoveCount int        `json:"moveCount"`
}

type saveFile struct {
	Version        int             `json:"version"`
	GameID         string          `json:"gameId,omitempty"`
	Seed           int64           `json:"seed,omitempty"`
	Piles          savedPiles      `json:"piles"`
	Score          int             `json:"score"`
	MoveCount      int             `json:"moveCount"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
	History        []savedSnapshot `json:"history,omitempty"`
}

// Encode serializes a game state, including its bounded undo history, to
// indented JSON.
func Encode(g *types.GameState) ([]byte, error) {
	f := saveFile{
		Version:        formatVersion,
		GameID:         g.GameID,
		Seed:           g.Seed,
		Piles:          pilesOut(g.Piles()),
		Score:          g.Score,
		MoveCount:      g.MoveCount,
		ElapsedSeconds: g.ElapsedSeconds,
	}
	for _, snap := range g.History {
		s := snap
		f.History = append(f.History, savedSnapshot{
			Piles:     pilesOut(snapshotPiles(&s)),
			Score:     snap.Score,
			MoveCount: snap.MoveCount,
		})
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %v", err)
	}
	return data, nil
}

// EncodeCompressed is Encode followed by zstd compression of the blob.
func EncodeCompressed(g *types.GameState) ([]byte, error) {
	data, err := Encode(g)
	if err != nil {
		return nil, err
	}
	compressed := bytes.NewBuffer(nil)
	w, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress save: %v", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

// Decode reconstructs and validates a game state from a save blob, plain or
// zstd-compressed. It returns ErrCorruptSave for anything that would load an
// inconsistent board.
func Decode(data []byte) (*types.GameState, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, &ErrCorruptSave{Reason: fmt.Sprintf("bad compression: %v", err)}
		}
		defer r.Close()
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, &ErrCorruptSave{Reason: fmt.Sprintf("bad compression: %v", err)}
		}
	}

	var f saveFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ErrCorruptSave{Reason: fmt.Sprintf("bad JSON: %v", err)}
	}

	g := types.NewGameState()
	g.GameID = f.GameID
	g.Seed = f.Seed
	g.Score = f.Score
	g.MoveCount = f.MoveCount
	g.ElapsedSeconds = f.ElapsedSeconds
	if err := pilesIn(f.Piles, g.Piles()); err != nil {
		return nil, err
	}
	if err := validateBoard(g); err != nil {
		return nil, err
	}

	for i, snap := range f.History {
		s := types.NewGameState()
		if err := pilesIn(snap.Piles, s.Piles()); err != nil {
			return nil, &ErrCorruptSave{Reason: fmt.Sprintf("history entry %d: %v", i, err)}
		}
		if err := validateBoard(s); err != nil {
			return nil, &ErrCorruptSave{Reason: fmt.Sprintf("history entry %d: %v", i, err)}
		}
		restored := s.Snapshot()
		restored.Score = snap.Score
		restored.MoveCount = snap.MoveCount
		g.History = append(g.History, restored)
	}

	if rules.IsWin(g) {
		g.Status = types.StatusWon
	} else {
		g.Status = types.StatusPlaying
	}
	return g, nil
}

func pilesOut(piles []*types.Pile) savedPiles {
	out := make(savedPiles, len(piles))
	for _, p := range piles {
		cards := make([]savedCard, 0, p.Len())
		for _, c := range p.Cards {
			cards = append(cards, savedCard{
				Rank:   int(c.Rank),
				Suit:   c.Suit.String(),
				FaceUp: c.FaceUp,
			})
		}
		out[p.ID.String()] = cards
	}
	return out
}

func snapshotPiles(s *types.Snapshot) []*types.Pile {
	piles := []*types.Pile{&s.Stock, &s.Waste}
	for i := range s.Foundations {
		piles = append(piles, &s.Foundations[i])
	}
	for i := range s.Tableaus {
		piles = append(piles, &s.Tableaus[i])
	}
	return piles
}

func pilesIn(saved savedPiles, piles []*types.Pile) error {
	byID := make(map[string]*types.Pile, len(piles))
	for _, p := range piles {
		byID[p.ID.String()] = p
	}
	for name, cards := range saved {
		p, ok := byID[name]
		if !ok {
			return &ErrCorruptSave{Reason: fmt.Sprintf("unknown pile %q", name)}
		}
		for _, sc := range cards {
			suit, err := deck.ParseSuit(sc.Suit)
			if err != nil {
				return &ErrCorruptSave{Reason: fmt.Sprintf("pile %q: %v", name, err)}
			}
			rank := deck.Rank(sc.Rank)
			if !rank.IsValid() {
				return &ErrCorruptSave{Reason: fmt.Sprintf("pile %q: rank %d out of range", name, sc.Rank)}
			}
			p.Append(deck.Card{Rank: rank, Suit: suit, FaceUp: sc.FaceUp})
		}
	}
	return nil
}

// validateBoard enforces the 52-card partition and foundation ordering.
func validateBoard(g *types.GameState) error {
	total := 0
	seen := make(map[deck.Card]bool, types.DeckSize)
	for _, p := range g.Piles() {
		for _, c := range p.Cards {
			identity := deck.Card{Rank: c.Rank, Suit: c.Suit}
			if seen[identity] {
				return &ErrCorruptSave{Reason: fmt.Sprintf("duplicate card %s", identity)}
			}
			seen[identity] = true
			total++
		}
	}
	if total != types.DeckSize {
		return &ErrCorruptSave{Reason: fmt.Sprintf("expected %d cards, found %d", types.DeckSize, total)}
	}

	for i := range g.Foundations {
		suit := deck.Suit(g.Foundations[i].ID.Index)
		for pos, c := range g.Foundations[i].Cards {
			if c.Suit != suit || c.Rank != deck.Rank(pos+1) {
				return &ErrCorruptSave{Reason: fmt.Sprintf("foundation %s is out of order at %s", suit, c)}
			}
		}
	}
	return nil
}
