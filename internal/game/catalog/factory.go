package catalog

import (
	"fmt"

	"github.com/emberfield/palisade/internal/game/core"
)

// CardFactory instantiates circulating cards and stickers from catalog
// templates. An unknown template id is a data-integrity error: it means the
// catalog is broken, not that the player did something wrong.
type CardFactory struct {
	registry *Registry
}

// NewCardFactory creates a factory over the given registry.
func NewCardFactory(registry *Registry) *CardFactory {
	return &CardFactory{registry: registry}
}

// NewCard creates a fresh card instance from a template id.
func (f *CardFactory) NewCard(templateID string) (*core.Card, error) {
	tpl, ok := f.registry.CardTemplate(templateID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownTemplate, templateID)
	}
	return core.NewCard(tpl.ID, tpl.Name, tpl.Slots, core.TrackValues{
		Power:        tpl.Tracks.Power,
		Construction: tpl.Tracks.Construction,
		Invention:    tpl.Tracks.Invention,
	}), nil
}

// NewSticker creates a sticker instance from a sticker definition id.
func (f *CardFactory) NewSticker(stickerID string) (*core.Sticker, error) {
	def, ok := f.registry.Sticker(stickerID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownSticker, stickerID)
	}

	var tracks core.TrackValues
	for _, eff := range def.Effects {
		if eff.Type != "Resource" {
			continue
		}
		switch core.Resource(eff.ResourceType) {
		case core.ResourcePower:
			tracks.Power += eff.Value
		case core.ResourceConstruction:
			tracks.Construction += eff.Value
		case core.ResourceInvention:
			tracks.Invention += eff.Value
		}
	}

	return &core.Sticker{
		ID:     def.ID,
		Name:   def.Name,
		Type:   core.StickerType(def.Type),
		Tracks: tracks,
	}, nil
}
