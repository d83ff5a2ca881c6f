package board

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/game/events"
)

// Slot is the mutable state of one placement slot on the village board.
type Slot struct {
	ID string
	// Constructed is the building id occupying the slot, or "" when empty.
	Constructed string
	// Available whitelists the building ids constructible here.
	Available []string
}

// IsOccupied reports whether a building stands on this slot.
func (s Slot) IsOccupied() bool {
	return s.Constructed != ""
}

// Board is the mutable set of placement slots. It owns slot state and the
// slot-to-building index; construction flows through Construct.
type Board struct {
	registry  *catalog.Registry
	slots     map[string]*Slot
	slotOrder []string
	built     map[string][]string // building id -> occupied slot ids
	resolver  *EffectResolver
	bus       events.Publisher
	gameID    string
	resolving bool
	logger    zerolog.Logger
}

// NewBoard creates a board seeded from the registry's slot definitions.
// Slots marked already_constructed in level data start occupied; their
// effects were resolved in a previous session and are not replayed.
func NewBoard(registry *catalog.Registry, resolver *EffectResolver, bus events.Publisher, gameID string, logger zerolog.Logger) *Board {
	b := &Board{
		registry: registry,
		slots:    make(map[string]*Slot),
		built:    make(map[string][]string),
		resolver: resolver,
		bus:      bus,
		gameID:   gameID,
		logger:   logger.With().Str("component", "board").Logger(),
	}

	for _, def := range registry.Slots() {
		slot := &Slot{
			ID:        def.UniqueID,
			Available: append([]string(nil), def.AvailableForConstruction...),
		}
		if def.AlreadyConstructed != nil {
			slot.Constructed = *def.AlreadyConstructed
			b.built[slot.Constructed] = append(b.built[slot.Constructed], slot.ID)
		}
		b.slots[slot.ID] = slot
		b.slotOrder = append(b.slotOrder, slot.ID)
	}

	return b
}

// Slot returns a copy of the slot's current state.
func (b *Board) Slot(slotID string) (Slot, bool) {
	slot, ok := b.slots[slotID]
	if !ok {
		return Slot{}, false
	}
	return *slot, true
}

// Slots returns a snapshot of every slot in level-data order.
func (b *Board) Slots() []Slot {
	out := make([]Slot, 0, len(b.slotOrder))
	for _, id := range b.slotOrder {
		out = append(out, *b.slots[id])
	}
	return out
}

// Resolving reports whether an effect cascade is currently in progress.
// Command layers that spend resources before calling Construct must check
// this first; Construct itself refuses reentrant calls with an error.
func (b *Board) Resolving() bool {
	return b.resolving
}

// ConstructedCount returns how many slots a building id currently occupies.
func (b *Board) ConstructedCount(buildingID string) int {
	return len(b.built[buildingID])
}

// CanConstruct reports whether constructing the building in the slot would
// pass every check Construct performs, plus the occupancy and whitelist
// preconditions Construct leaves to the caller. Convenience for command
// layers enumerating options.
func (b *Board) CanConstruct(buildingID, slotID string) bool {
	def, ok := b.registry.Building(buildingID)
	if !ok {
		return false
	}
	if def.Limit != nil && len(b.built[buildingID]) >= *def.Limit {
		return false
	}
	slot, ok := b.slots[slotID]
	if !ok || slot.IsOccupied() {
		return false
	}
	for _, id := range slot.Available {
		if id == buildingID {
			return true
		}
	}
	return false
}

// Construct places a building on a slot, resolves its effects, and announces
// the construction. Returns false when the building's per-type limit has been
// reached: a routine "can't build another" outcome.
//
// Callers must consult slot state for occupancy first; the board does not
// re-validate it here. Reentrant construction (an event subscriber
// constructing during resolution) is forbidden.
func (b *Board) Construct(buildingID, slotID string) (bool, error) {
	if b.resolving {
		return false, core.ErrReentrantConstruction
	}

	def, ok := b.registry.Building(buildingID)
	if !ok {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownBuilding, buildingID)
	}

	if def.Limit != nil && len(b.built[buildingID]) >= *def.Limit {
		b.logger.Debug().
			Str("building_id", buildingID).
			Int("limit", *def.Limit).
			Msg("Construction limit reached")
		return false, nil
	}

	slot, ok := b.slots[slotID]
	if !ok {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownSlot, slotID)
	}

	slot.Constructed = buildingID
	b.built[buildingID] = append(b.built[buildingID], slotID)

	b.resolving = true
	b.resolver.Resolve(buildingID, def.Effects)
	b.resolving = false

	b.logger.Info().
		Str("building_id", buildingID).
		Str("slot_id", slotID).
		Msg("Building constructed")

	b.bus.Publish(events.NewBuildingConstructedEvent(b.gameID, buildingID, slotID))
	return true, nil
}
