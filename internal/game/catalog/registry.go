package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Paths names the declarative data files a registry loads from.
type Paths struct {
	Buildings     string
	Slots         string
	SlotLocations string
	Stickers      string
	Cards         string
}

// Registry is the read-only catalog of declarative game data, built once at
// startup and passed by reference to every component that needs it. There is
// deliberately no package-level instance.
type Registry struct {
	buildings     map[string]BuildingDefinition
	buildingOrder []string
	slots         []SlotDefinition
	slotLocations []SlotLocation
	stickers      map[string]StickerDefinition
	cards         map[string]CardTemplate
	logger        zerolog.Logger
}

// NewRegistry builds a registry from already-decoded definitions. Load is the
// file-backed variant; tests construct isolated registries directly.
func NewRegistry(
	buildings []BuildingDefinition,
	slots []SlotDefinition,
	slotLocations []SlotLocation,
	stickers []StickerDefinition,
	cards []CardTemplate,
	logger zerolog.Logger,
) (*Registry, error) {
	r := &Registry{
		buildings: make(map[string]BuildingDefinition, len(buildings)),
		stickers:  make(map[string]StickerDefinition, len(stickers)),
		cards:     make(map[string]CardTemplate, len(cards)),
		logger:    logger.With().Str("component", "catalog").Logger(),
	}

	for _, b := range buildings {
		if _, dup := r.buildings[b.ID]; dup {
			return nil, fmt.Errorf("duplicate building id %q", b.ID)
		}
		r.buildings[b.ID] = b
		r.buildingOrder = append(r.buildingOrder, b.ID)
	}
	for _, s := range stickers {
		if _, dup := r.stickers[s.ID]; dup {
			return nil, fmt.Errorf("duplicate sticker id %q", s.ID)
		}
		r.stickers[s.ID] = s
	}
	for _, c := range cards {
		if _, dup := r.cards[c.ID]; dup {
			return nil, fmt.Errorf("duplicate card template id %q", c.ID)
		}
		r.cards[c.ID] = c
	}

	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if seen[s.UniqueID] {
			return nil, fmt.Errorf("duplicate slot id %q", s.UniqueID)
		}
		seen[s.UniqueID] = true
	}
	r.slots = slots
	r.slotLocations = slotLocations

	r.logger.Info().
		Int("buildings", len(r.buildings)).
		Int("slots", len(r.slots)).
		Int("stickers", len(r.stickers)).
		Int("card_templates", len(r.cards)).
		Msg("Catalog loaded")

	return r, nil
}

// Load reads the declarative data files and builds a registry.
func Load(paths Paths, logger zerolog.Logger) (*Registry, error) {
	var buildings []BuildingDefinition
	if err := readJSON(paths.Buildings, &buildings); err != nil {
		return nil, fmt.Errorf("loading buildings: %w", err)
	}

	var slots []SlotDefinition
	if err := readJSON(paths.Slots, &slots); err != nil {
		return nil, fmt.Errorf("loading slots: %w", err)
	}

	var locations []SlotLocation
	if paths.SlotLocations != "" {
		if err := readJSON(paths.SlotLocations, &locations); err != nil {
			return nil, fmt.Errorf("loading slot locations: %w", err)
		}
	}

	var stickers []StickerDefinition
	if paths.Stickers != "" {
		if err := readJSON(paths.Stickers, &stickers); err != nil {
			return nil, fmt.Errorf("loading stickers: %w", err)
		}
	}

	var cards []CardTemplate
	if err := readJSON(paths.Cards, &cards); err != nil {
		return nil, fmt.Errorf("loading card templates: %w", err)
	}

	return NewRegistry(buildings, slots, locations, stickers, cards, logger)
}

func readJSON(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Building looks up a building definition by id.
func (r *Registry) Building(id string) (BuildingDefinition, bool) {
	def, ok := r.buildings[id]
	return def, ok
}

// Buildings returns the building definitions in file order.
func (r *Registry) Buildings() []BuildingDefinition {
	out := make([]BuildingDefinition, 0, len(r.buildingOrder))
	for _, id := range r.buildingOrder {
		out = append(out, r.buildings[id])
	}
	return out
}

// Slots returns the board slot definitions in file order.
func (r *Registry) Slots() []SlotDefinition {
	out := make([]SlotDefinition, len(r.slots))
	copy(out, r.slots)
	return out
}

// SlotLocations returns the board coordinates for the presentation layer.
func (r *Registry) SlotLocations() []SlotLocation {
	out := make([]SlotLocation, len(r.slotLocations))
	copy(out, r.slotLocations)
	return out
}

// Sticker looks up a sticker definition by id.
func (r *Registry) Sticker(id string) (StickerDefinition, bool) {
	def, ok := r.stickers[id]
	return def, ok
}

// CardTemplate looks up a card template by id.
func (r *Registry) CardTemplate(id string) (CardTemplate, bool) {
	def, ok := r.cards[id]
	return def, ok
}
