package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, c.DrawCount)
	assert.Equal(t, 1, c.FreeRecycles)
	assert.Equal(t, 100, c.RecyclePenalty)
	assert.Equal(t, 128, c.HistoryCap)
	assert.Equal(t, StoreFile, c.Store)
	assert.Equal(t, 30*time.Second, c.AutosaveInterval)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("KLONDIKE_DRAW_COUNT", "3")
	t.Setenv("KLONDIKE_STORE", "sqlite")
	t.Setenv("KLONDIKE_AUTOSAVE_INTERVAL", "2m")
	t.Setenv("KLONDIKE_COMPRESS_SAVES", "true")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, c.DrawCount)
	assert.Equal(t, StoreSQLite, c.Store)
	assert.Equal(t, 2*time.Minute, c.AutosaveInterval)
	assert.True(t, c.CompressSaves)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad draw count", key: "KLONDIKE_DRAW_COUNT", value: "2"},
		{name: "bad history cap", key: "KLONDIKE_HISTORY_CAP", value: "0"},
		{name: "bad store", key: "KLONDIKE_STORE", value: "redis"},
		{name: "autosave too frequent", key: "KLONDIKE_AUTOSAVE_INTERVAL", value: "10ms"},
		{name: "postgres without url", key: "KLONDIKE_STORE", value: "postgres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
