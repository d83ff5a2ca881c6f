package panels

import (
	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/events"
)

// Panel names one of the UI surfaces whose open/closed state the core tracks
// on behalf of the presentation layer.
type Panel string

const (
	Agency Panel = "agency"
	Shop   Panel = "shop"
	Tavern Panel = "tavern"
	Menu   Panel = "menu"
)

var eventTypes = map[Panel]string{
	Agency: events.TypeAgencyStateChanged,
	Shop:   events.TypeShopStateChanged,
	Tavern: events.TypeTavernStateChanged,
	Menu:   events.TypeMenuStateChanged,
}

// Controller tracks which panels are open and announces every change. All
// panels start closed.
type Controller struct {
	open   map[Panel]bool
	bus    events.Publisher
	gameID string
	logger zerolog.Logger
}

// NewController creates a controller with every panel closed.
func NewController(bus events.Publisher, gameID string, logger zerolog.Logger) *Controller {
	return &Controller{
		open:   make(map[Panel]bool),
		bus:    bus,
		gameID: gameID,
		logger: logger.With().Str("component", "panels").Logger(),
	}
}

// IsOpen reports whether a panel is open.
func (c *Controller) IsOpen(p Panel) bool {
	return c.open[p]
}

// SetOpen opens or closes a panel. Setting the current state again is a
// no-op and announces nothing.
func (c *Controller) SetOpen(p Panel, open bool) {
	eventType, known := eventTypes[p]
	if !known {
		c.logger.Warn().Str("panel", string(p)).Msg("Unknown panel")
		return
	}
	if c.open[p] == open {
		return
	}
	c.open[p] = open

	c.logger.Debug().
		Str("panel", string(p)).
		Bool("open", open).
		Msg("Panel state changed")

	c.bus.Publish(events.NewPanelStateChangedEvent(c.gameID, eventType, open))
}

// Toggle flips a panel's state.
func (c *Controller) Toggle(p Panel) {
	c.SetOpen(p, !c.open[p])
}
