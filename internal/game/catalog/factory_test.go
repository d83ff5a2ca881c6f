package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfield/palisade/internal/game/core"
)

func TestCardFactory_NewCard(t *testing.T) {
	factory := NewCardFactory(loadTestRegistry(t))

	card, err := factory.NewCard("villager")
	require.NoError(t, err)
	assert.Equal(t, "villager", card.TemplateID)
	assert.Equal(t, "Villager", card.Name)
	assert.Len(t, card.Slots, 2)
	assert.Equal(t, 1, card.TrackValue(core.ResourcePower))
	assert.Equal(t, 1, card.TrackValue(core.ResourceConstruction))

	other, err := factory.NewCard("villager")
	require.NoError(t, err)
	assert.NotEqual(t, card.UniqueID, other.UniqueID)
}

func TestCardFactory_UnknownTemplate(t *testing.T) {
	factory := NewCardFactory(loadTestRegistry(t))

	card, err := factory.NewCard("dragon")
	assert.ErrorIs(t, err, core.ErrUnknownTemplate)
	assert.Nil(t, card)
}

func TestCardFactory_NewSticker(t *testing.T) {
	factory := NewCardFactory(loadTestRegistry(t))

	sticker, err := factory.NewSticker("lucky-charm")
	require.NoError(t, err)
	assert.Equal(t, core.StickerWild, sticker.Type)
	assert.Equal(t, core.TrackValues{Power: 1, Invention: 1}, sticker.Tracks)

	_, err = factory.NewSticker("cursed-charm")
	assert.ErrorIs(t, err, core.ErrUnknownSticker)
}
