package subscribers

import (
	"github.com/emberfield/palisade/internal/game/events"
	"github.com/emberfield/palisade/internal/telemetry"
)

// TrackerSubscriber forwards game events to the analytics boundary. It turns
// each typed event into a flat name/params call so the tracker backend stays
// decoupled from the event types.
type TrackerSubscriber struct {
	id      string
	tracker telemetry.Tracker
}

// NewTrackerSubscriber creates a new tracker subscriber
func NewTrackerSubscriber(id string, tracker telemetry.Tracker) *TrackerSubscriber {
	return &TrackerSubscriber{id: id, tracker: tracker}
}

// ID returns the subscriber's unique identifier
func (ts *TrackerSubscriber) ID() string {
	return ts.id
}

// InterestedIn returns true for every event type; the tracker sees the full
// stream.
func (ts *TrackerSubscriber) InterestedIn(string) bool {
	return true
}

// HandleEvent forwards the event to the tracker
func (ts *TrackerSubscriber) HandleEvent(event events.Event) {
	params := map[string]any{
		"game_id": event.GameID(),
	}

	switch e := event.(type) {
	case *events.ResourceChangedEvent:
		params["resource"] = string(e.Resource)
		params["amount"] = e.Amount
		params["previous_amount"] = e.PreviousAmount

	case *events.BuildingConstructedEvent:
		params["building_id"] = e.BuildingID
		params["slot_id"] = e.SlotID

	case *events.CardsChangedEvent:
		params["hand_size"] = len(e.Cards)

	case *events.RecruitsUnlockedEvent:
		params["building_id"] = e.BuildingID
		params["recruits"] = e.Recruits

	case *events.DeckLimitChangedEvent:
		params["new_limit"] = e.NewLimit

	case *events.AdventureResolvedEvent:
		params["option_id"] = e.OptionID
		params["level"] = e.Level
		params["cost"] = e.Cost
		params["power_spent"] = e.PowerSpent

	case *events.DayAdvancedEvent:
		params["day"] = e.Day
		params["distance"] = e.Distance

	case *events.InvasionArrivedEvent:
		params["day"] = e.Day

	case *events.PhaseChangedEvent:
		params["from"] = e.From
		params["to"] = e.To
		params["reason"] = e.Reason

	case *events.PanelStateChangedEvent:
		params["open"] = e.Open
	}

	ts.tracker.Track(event.Type(), params)
}
