package tavern

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adventures.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeOptionsFile(t, `[
		{
			"id": "bandit-camp",
			"name": "Clear the Bandit Camp",
			"level": "easy",
			"cost": 4,
			"success": [{ "template_id": "mercenary", "count": 2 }],
			"failure": [{ "template_id": "stray-dog", "count": 1 }]
		},
		{
			"id": "wolf-den",
			"name": "Drive Out the Wolves",
			"level": "medium",
			"cost": 7,
			"success": [],
			"failure": []
		}
	]`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	assert.Equal(t, "bandit-camp", opts[0].ID)
	assert.Equal(t, LevelEasy, opts[0].Level)
	assert.Equal(t, 4, opts[0].Cost)
	require.Len(t, opts[0].Success, 1)
	assert.Equal(t, "mercenary", opts[0].Success[0].TemplateID)
	assert.Equal(t, 2, opts[0].Success[0].Count)
	assert.Equal(t, LevelMedium, opts[1].Level)
}

func TestLoadOptions_MissingID(t *testing.T) {
	path := writeOptionsFile(t, `[{ "name": "Nameless", "level": "easy", "cost": 1 }]`)

	_, err := LoadOptions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestLoadOptions_NegativeCost(t *testing.T) {
	path := writeOptionsFile(t, `[{ "id": "freebie", "level": "easy", "cost": -1 }]`)

	_, err := LoadOptions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative cost")
}

func TestLoadOptions_MissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
