package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/persist"
)

func TestEngine_SnapshotRoundTrip(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 8))

	ok, err := engine.ConstructBuilding("guild_hall", "slot-2")
	require.NoError(t, err)
	require.True(t, ok)
	engine.DrawUpToLimit()

	store := persist.NewMemoryStore()
	require.NoError(t, engine.SaveSnapshot(store, "autosave"))

	loaded, found, err := LoadSnapshot(store, "autosave")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, engine.ID(), loaded.GameID)
	assert.Equal(t, 1, loaded.Day)
	assert.Equal(t, 10, loaded.Distance)
	assert.Equal(t, map[string]string{"slot-2": "guild_hall"}, loaded.Constructed)
	assert.ElementsMatch(t, []string{"scout", "sawyer"}, loaded.Recruitable)
	assert.Equal(t, 5, loaded.HandSize)
	assert.Equal(t, 5, loaded.DeckSize)
	assert.Equal(t, 3, loaded.ResourceAmounts()[core.ResourceConstruction])
}

func TestLoadSnapshot_Missing(t *testing.T) {
	store := persist.NewMemoryStore()

	_, found, err := LoadSnapshot(store, "never-saved")
	require.NoError(t, err)
	assert.False(t, found)
}
