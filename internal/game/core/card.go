package core

import (
	"github.com/google/uuid"
)

// StickerType classifies a sticker by the track it favors. Wild stickers are
// not bound to a single track.
type StickerType string

const (
	StickerPower        StickerType = "Power"
	StickerConstruction StickerType = "Construction"
	StickerInvention    StickerType = "Invention"
	StickerWild         StickerType = "Wild"
)

// TrackValues is the contribution a card or sticker makes to each resource
// track when the card is played.
type TrackValues struct {
	Power        int
	Construction int
	Invention    int
}

// Value returns the contribution to a single track.
func (tv TrackValues) Value(r Resource) int {
	switch r {
	case ResourcePower:
		return tv.Power
	case ResourceConstruction:
		return tv.Construction
	case ResourceInvention:
		return tv.Invention
	}
	return 0
}

// Plus returns the component-wise sum of two track value sets.
func (tv TrackValues) Plus(other TrackValues) TrackValues {
	return TrackValues{
		Power:        tv.Power + other.Power,
		Construction: tv.Construction + other.Construction,
		Invention:    tv.Invention + other.Invention,
	}
}

// Sticker is an upgrade applied to one of a card's slots.
type Sticker struct {
	ID     string
	Name   string
	Type   StickerType
	Tracks TrackValues
}

// CardSlot is a fixed position on a card that may hold one applied sticker.
type CardSlot struct {
	Sticker *Sticker
}

// Card is a single circulating card instance. TemplateID identifies the
// template it was created from; UniqueID identifies this instance. A card is
// owned by exactly one pile (deck, hand or discard) at a time and is never
// destroyed once recruited.
type Card struct {
	TemplateID string
	UniqueID   string
	Name       string
	Slots      []CardSlot
	Tracks     TrackValues
}

// NewCard creates a card instance from template data with a fresh unique id.
func NewCard(templateID, name string, slotCount int, tracks TrackValues) *Card {
	return &Card{
		TemplateID: templateID,
		UniqueID:   uuid.NewString(),
		Name:       name,
		Slots:      make([]CardSlot, slotCount),
		Tracks:     tracks,
	}
}

// UID returns the per-instance identity of the card.
func (c *Card) UID() string {
	return c.UniqueID
}

// TrackValue returns the card's total contribution to one resource track,
// base value plus every applied sticker.
func (c *Card) TrackValue(r Resource) int {
	total := c.Tracks.Value(r)
	for _, slot := range c.Slots {
		if slot.Sticker != nil {
			total += slot.Sticker.Tracks.Value(r)
		}
	}
	return total
}

// TotalTracks returns the card's full contribution across all three tracks.
func (c *Card) TotalTracks() TrackValues {
	total := c.Tracks
	for _, slot := range c.Slots {
		if slot.Sticker != nil {
			total = total.Plus(slot.Sticker.Tracks)
		}
	}
	return total
}

// ApplySticker places a sticker into the given slot. The slot must exist and
// be empty.
func (c *Card) ApplySticker(slotIdx int, s *Sticker) error {
	if slotIdx < 0 || slotIdx >= len(c.Slots) {
		return ErrInvalidIndex
	}
	if c.Slots[slotIdx].Sticker != nil {
		return ErrSlotOccupied
	}
	c.Slots[slotIdx].Sticker = s
	return nil
}

// OpenSlots returns the number of slots without an applied sticker.
func (c *Card) OpenSlots() int {
	open := 0
	for _, slot := range c.Slots {
		if slot.Sticker == nil {
			open++
		}
	}
	return open
}
