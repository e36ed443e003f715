package main

import (
	"testing"

	"github.com/macanangkasa/klondike/pkg/deck"
	"github.com/macanangkasa/klondike/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePileToken(t *testing.T) {
	tests := []struct {
		token string
		want  types.PileID
	}{
		{"s", types.StockID},
		{"stock", types.StockID},
		{"w", types.WasteID},
		{"fc", types.FoundationID(deck.Clubs)},
		{"fd", types.FoundationID(deck.Diamonds)},
		{"fh", types.FoundationID(deck.Hearts)},
		{"fs", types.FoundationID(deck.Spades)},
		{"t1", types.TableauID(0)},
		{"t7", types.TableauID(6)},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := parsePileToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "x", "t0", "t8", "tx", "f9"} {
		_, err := parsePileToken(bad)
		assert.Error(t, err, "token %q", bad)
	}
}

func TestParseMove(t *testing.T) {
	m, err := parseMove([]string{"w", "t3"})
	require.NoError(t, err)
	assert.Equal(t, types.Move{Source: types.WasteID, CardCount: 1, Dest: types.TableauID(2)}, m)

	m, err = parseMove([]string{"t1", "t5", "2"})
	require.NoError(t, err)
	assert.Equal(t, types.Move{Source: types.TableauID(0), CardCount: 2, Dest: types.TableauID(4)}, m)

	for _, bad := range [][]string{nil, {"w"}, {"w", "t1", "x"}, {"w", "t1", "2", "3"}, {"zz", "t1"}} {
		_, err := parseMove(bad)
		assert.Error(t, err, "args %v", bad)
	}
}
