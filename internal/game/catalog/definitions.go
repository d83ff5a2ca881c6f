package catalog

// JSON shapes below reproduce the level/building data formats field for field;
// existing level files must load unchanged.

// ResourceCost is the construction price of a building. Only the construction
// track is spent on buildings today.
type ResourceCost struct {
	Construction int `json:"construction"`
}

// BuildingDefinition is the declarative description of a building type.
// Immutable once loaded.
type BuildingDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Cost        ResourceCost `json:"cost"`
	// Limit caps how many times this building id may ever be constructed.
	// nil means unlimited.
	Limit   *int       `json:"limit"`
	Effects EffectList `json:"effects"`
}

// SlotDefinition is a placement slot on the village board as it appears in
// level data.
type SlotDefinition struct {
	UniqueID                 string   `json:"unique_id"`
	AlreadyConstructed       *string  `json:"already_constructed"`
	AvailableForConstruction []string `json:"available_for_construction"`
}

// SlotLocation ties a slot to board coordinates. The core never interprets
// the coordinates; they ride along for the presentation layer.
type SlotLocation struct {
	X            int    `json:"x"`
	Y            int    `json:"y"`
	SlotUniqueID string `json:"slot_unique_id"`
}

// StickerEffect is one entry of a sticker's effects array. Only the Resource
// effect type exists today.
type StickerEffect struct {
	Type         string `json:"type"`
	ResourceType string `json:"resourceType"`
	Value        int    `json:"value"`
}

// StickerDefinition is the declarative description of a sticker.
type StickerDefinition struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Cost    int             `json:"cost"`
	Effects []StickerEffect `json:"effects"`
}

// CardTracks is a card template's base contribution to each resource track.
type CardTracks struct {
	Power        int `json:"power"`
	Construction int `json:"construction"`
	Invention    int `json:"invention"`
}

// CardTemplate is the declarative description a card instance is created
// from.
type CardTemplate struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Image  string     `json:"image"`
	Slots  int        `json:"slots"`
	Tracks CardTracks `json:"tracks"`
}
