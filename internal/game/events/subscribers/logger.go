package subscribers

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	// If no filter is set, interested in all events
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.ResourceChangedEvent:
		logEvent.
			Str("resource", string(e.Resource)).
			Int("amount", e.Amount).
			Int("previous_amount", e.PreviousAmount)

	case *events.BuildingConstructedEvent:
		logEvent.
			Str("building_id", e.BuildingID).
			Str("slot_id", e.SlotID)

	case *events.CardsChangedEvent:
		logEvent.Int("hand_size", len(e.Cards))

	case *events.RecruitsUnlockedEvent:
		logEvent.
			Str("building_id", e.BuildingID).
			Str("recruits", strings.Join(e.Recruits, ","))

	case *events.DeckLimitChangedEvent:
		logEvent.
			Int("new_limit", e.NewLimit).
			Int("raised", e.Raised)

	case *events.AdventureResolvedEvent:
		logEvent.
			Str("option_id", e.OptionID).
			Str("level", e.Level).
			Int("cost", e.Cost).
			Int("power_spent", e.PowerSpent)

	case *events.DayAdvancedEvent:
		logEvent.
			Int("day", e.Day).
			Int("distance", e.Distance)

	case *events.InvasionArrivedEvent:
		logEvent.Int("day", e.Day)

	case *events.PhaseChangedEvent:
		logEvent.
			Str("from", e.From).
			Str("to", e.To).
			Str("reason", e.Reason)

	case *events.PanelStateChangedEvent:
		logEvent.Bool("open", e.Open)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
