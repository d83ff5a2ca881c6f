package events

import (
	"time"

	"github.com/emberfield/palisade/internal/game/core"
)

// Event type constants. These strings are the external interface consumed by
// the presentation layer; keep them stable.
const (
	TypeResourceChanged     = "resource-changed"
	TypeBuildingConstructed = "building-constructed"
	TypeCardsChanged        = "cards-changed"
	TypeRecruitsUnlocked    = "recruits-unlocked"
	TypeDeckLimitChanged    = "deck-limit-changed"
	TypeAdventureSuccess    = "adventure-success"
	TypeAdventureFailure    = "adventure-failure"
	TypeDayAdvanced         = "day-advanced"
	TypeInvasionArrived     = "invasion-arrived"
	TypePhaseChanged        = "phase-changed"
	TypeAgencyStateChanged  = "agency-state-changed"
	TypeShopStateChanged    = "shop-state-changed"
	TypeTavernStateChanged  = "tavern-state-changed"
	TypeMenuStateChanged    = "menu-state-changed"
)

// ResourceChangedEvent is published after every ledger mutation
type ResourceChangedEvent struct {
	BaseEvent
	Resource       core.Resource
	Amount         int
	PreviousAmount int
}

// NewResourceChangedEvent creates a new ResourceChangedEvent
func NewResourceChangedEvent(gameID string, resource core.Resource, amount, previous int) *ResourceChangedEvent {
	return &ResourceChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeResourceChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		Resource:       resource,
		Amount:         amount,
		PreviousAmount: previous,
	}
}

// BuildingConstructedEvent is published after a building is placed and all of
// its effects have been resolved
type BuildingConstructedEvent struct {
	BaseEvent
	BuildingID string
	SlotID     string
}

// NewBuildingConstructedEvent creates a new BuildingConstructedEvent
func NewBuildingConstructedEvent(gameID, buildingID, slotID string) *BuildingConstructedEvent {
	return &BuildingConstructedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeBuildingConstructed,
			Time:      time.Now(),
			Game:      gameID,
		},
		BuildingID: buildingID,
		SlotID:     slotID,
	}
}

// CardsChangedEvent is published whenever the hand contents change
type CardsChangedEvent struct {
	BaseEvent
	Cards []*core.Card
}

// NewCardsChangedEvent creates a new CardsChangedEvent
func NewCardsChangedEvent(gameID string, cards []*core.Card) *CardsChangedEvent {
	return &CardsChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeCardsChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		Cards: cards,
	}
}

// RecruitsUnlockedEvent is published when a building effect adds new card
// templates to the recruitment pool
type RecruitsUnlockedEvent struct {
	BaseEvent
	BuildingID string
	Recruits   []string
}

// NewRecruitsUnlockedEvent creates a new RecruitsUnlockedEvent
func NewRecruitsUnlockedEvent(gameID, buildingID string, recruits []string) *RecruitsUnlockedEvent {
	return &RecruitsUnlockedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeRecruitsUnlocked,
			Time:      time.Now(),
			Game:      gameID,
		},
		BuildingID: buildingID,
		Recruits:   recruits,
	}
}

// DeckLimitChangedEvent is published when a building effect raises the deck
// limit
type DeckLimitChangedEvent struct {
	BaseEvent
	NewLimit int
	Raised   int
}

// NewDeckLimitChangedEvent creates a new DeckLimitChangedEvent
func NewDeckLimitChangedEvent(gameID string, newLimit, raised int) *DeckLimitChangedEvent {
	return &DeckLimitChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeDeckLimitChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		NewLimit: newLimit,
		Raised:   raised,
	}
}

// AdventureResolvedEvent carries the outcome of a tavern adventure attempt.
// The event type distinguishes success from failure.
type AdventureResolvedEvent struct {
	BaseEvent
	OptionID   string
	Level      string
	Cost       int
	PowerSpent int
}

// NewAdventureResolvedEvent creates an adventure-success or adventure-failure
// event depending on the outcome
func NewAdventureResolvedEvent(gameID, optionID, level string, cost, powerSpent int, success bool) *AdventureResolvedEvent {
	eventType := TypeAdventureFailure
	if success {
		eventType = TypeAdventureSuccess
	}
	return &AdventureResolvedEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Time:      time.Now(),
			Game:      gameID,
		},
		OptionID:   optionID,
		Level:      level,
		Cost:       cost,
		PowerSpent: powerSpent,
	}
}

// DayAdvancedEvent is published once the whole day-advance sequence has
// committed: ledger reset, invasion progressed, grants applied, hand redrawn
type DayAdvancedEvent struct {
	BaseEvent
	Day      int
	Distance int
}

// NewDayAdvancedEvent creates a new DayAdvancedEvent
func NewDayAdvancedEvent(gameID string, day, distance int) *DayAdvancedEvent {
	return &DayAdvancedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeDayAdvanced,
			Time:      time.Now(),
			Game:      gameID,
		},
		Day:      day,
		Distance: distance,
	}
}

// InvasionArrivedEvent is published once, on the day the invasion distance
// reaches zero
type InvasionArrivedEvent struct {
	BaseEvent
	Day int
}

// NewInvasionArrivedEvent creates a new InvasionArrivedEvent
func NewInvasionArrivedEvent(gameID string, day int) *InvasionArrivedEvent {
	return &InvasionArrivedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeInvasionArrived,
			Time:      time.Now(),
			Game:      gameID,
		},
		Day: day,
	}
}

// PhaseChangedEvent is published when the game moves between lifecycle
// phases (setup, running, besieged, ended)
type PhaseChangedEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(gameID, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePhaseChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		From:   from,
		To:     to,
		Reason: reason,
	}
}

// PanelStateChangedEvent is published when one of the UI surfaces (agency,
// shop, tavern, menu) opens or closes. The event type carries the panel name.
type PanelStateChangedEvent struct {
	BaseEvent
	Open bool
}

// NewPanelStateChangedEvent creates a panel state event of the given type,
// which must be one of the *-state-changed constants
func NewPanelStateChangedEvent(gameID, eventType string, open bool) *PanelStateChangedEvent {
	return &PanelStateChangedEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Time:      time.Now(),
			Game:      gameID,
		},
		Open: open,
	}
}
