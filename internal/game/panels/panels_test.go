package panels

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfield/palisade/internal/game/events"
)

func TestController(t *testing.T) {
	bus := events.NewEventBus()
	ctrl := NewController(bus, "test-game", zerolog.Nop())

	var received []*events.PanelStateChangedEvent
	bus.SubscribeFunc(events.TypeTavernStateChanged, func(e events.Event) {
		received = append(received, e.(*events.PanelStateChangedEvent))
	})

	assert.False(t, ctrl.IsOpen(Tavern))

	ctrl.SetOpen(Tavern, true)
	assert.True(t, ctrl.IsOpen(Tavern))
	require.Len(t, received, 1)
	assert.True(t, received[0].Open)

	// Re-opening an open panel announces nothing.
	ctrl.SetOpen(Tavern, true)
	assert.Len(t, received, 1)

	ctrl.Toggle(Tavern)
	assert.False(t, ctrl.IsOpen(Tavern))
	require.Len(t, received, 2)
	assert.False(t, received[1].Open)
}

func TestController_EachPanelHasItsOwnEventType(t *testing.T) {
	bus := events.NewEventBus()
	ctrl := NewController(bus, "test-game", zerolog.Nop())

	seen := make(map[string]bool)
	for _, eventType := range []string{
		events.TypeAgencyStateChanged,
		events.TypeShopStateChanged,
		events.TypeTavernStateChanged,
		events.TypeMenuStateChanged,
	} {
		eventType := eventType
		bus.SubscribeFunc(eventType, func(events.Event) { seen[eventType] = true })
	}

	for _, p := range []Panel{Agency, Shop, Tavern, Menu} {
		ctrl.SetOpen(p, true)
	}

	assert.Len(t, seen, 4)
}
