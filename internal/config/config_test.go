package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  hand:
    limit: 7
    deck_limit: 25
  invasion:
    distance: 40
    speed_per_turn: 2
logging:
  level: debug
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err = Init(configFile)
	require.NoError(t, err)

	// Test loaded values
	c := Get()
	assert.Equal(t, 7, c.Game.Hand.Limit)
	assert.Equal(t, 25, c.Game.Hand.DeckLimit)
	assert.Equal(t, 40, c.Game.Invasion.Distance)
	assert.Equal(t, 2, c.Game.Invasion.SpeedPerTurn)
	assert.Equal(t, "debug", c.Logging.Level)
	// Untouched sections keep their defaults
	assert.Equal(t, "data/buildings.json", c.Data.Buildings)
	assert.Equal(t, "console", c.Logging.Format)
}

func TestInitWithDefaults(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize with non-existent config (should use defaults)
	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	require.NotNil(t, c)
	assert.Equal(t, 5, c.Game.Hand.Limit)
	assert.Equal(t, 30, c.Game.Invasion.Distance)
	assert.Len(t, c.Game.StartingCards, 10)
	assert.Equal(t, "autosave", c.Persistence.AutosaveKey)
}

func TestEnvironmentVariables(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Set environment variables
	os.Setenv("PALISADE_GAME_HAND_LIMIT", "8")
	os.Setenv("PALISADE_LOGGING_LEVEL", "warn")
	defer os.Unsetenv("PALISADE_GAME_HAND_LIMIT")
	defer os.Unsetenv("PALISADE_LOGGING_LEVEL")

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Environment variables should override
	c := Get()
	assert.Equal(t, 8, c.Game.Hand.Limit)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestSet(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Set values
	Set("game.invasion.distance", 50)
	Set("persistence.save_dir", "tmp-saves")

	// Check updated values
	c := Get()
	assert.Equal(t, 50, c.Game.Invasion.Distance)
	assert.Equal(t, "tmp-saves", c.Persistence.SaveDir)
}

func TestGetHelpers(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Set some values
	Set("test.string", "hello")
	Set("test.int", 42)
	Set("test.bool", true)

	// Test getters
	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.Equal(t, true, GetBool("test.bool"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero hand limit",
			mutate:  func(c *Config) { c.Game.Hand.Limit = 0 },
			wantErr: "game.hand.limit",
		},
		{
			name:    "deck limit below hand limit",
			mutate:  func(c *Config) { c.Game.Hand.DeckLimit = 3 },
			wantErr: "game.hand.deck_limit",
		},
		{
			name:    "negative invasion speed",
			mutate:  func(c *Config) { c.Game.Invasion.SpeedPerTurn = -1 },
			wantErr: "speed_per_turn",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "missing data path",
			mutate:  func(c *Config) { c.Data.Cards = "" },
			wantErr: "data paths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg = nil
			v = nil
			require.NoError(t, Init("/non/existent/path/config.yaml"))

			c := Get()
			tt.mutate(c)

			err := Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
