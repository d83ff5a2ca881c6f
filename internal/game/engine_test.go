package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/game/events"
	"github.com/emberfield/palisade/internal/game/states"
	"github.com/emberfield/palisade/internal/game/tavern"
	"github.com/emberfield/palisade/internal/testutil"
)

func newTestRNG() *rand.Rand {
	return testutil.NewTestRNG(12345) // Fixed seed for deterministic tests
}

func intPtr(n int) *int { return &n }

func newTestRegistry(t *testing.T) *catalog.Registry {
	t.Helper()

	buildings := []catalog.BuildingDefinition{
		{
			ID:    "sawmill",
			Name:  "Sawmill",
			Cost:  catalog.ResourceCost{Construction: 3},
			Limit: intPtr(1),
			Effects: catalog.EffectList{
				catalog.AddResourceEffect{When: catalog.WhenDayStart, Resource: core.ResourceConstruction, Amount: 2},
			},
		},
		{
			ID:   "guild_hall",
			Name: "Guild Hall",
			Cost: catalog.ResourceCost{Construction: 5},
			Effects: catalog.EffectList{
				catalog.MakeRecruitableEffect{Recruits: []string{"scout", "sawyer"}},
				catalog.IncreaseDeckLimitEffect{Amount: 2},
			},
		},
		{
			ID:   "ghost_shrine",
			Name: "Ghost Shrine",
			Cost: catalog.ResourceCost{Construction: 1},
			Effects: catalog.EffectList{
				catalog.MakeRecruitableEffect{Recruits: []string{"ghost"}},
			},
		},
	}
	slots := []catalog.SlotDefinition{
		{UniqueID: "slot-1", AvailableForConstruction: []string{"sawmill", "guild_hall", "ghost_shrine"}},
		{UniqueID: "slot-2", AvailableForConstruction: []string{"sawmill", "guild_hall", "ghost_shrine"}},
		{UniqueID: "slot-3", AvailableForConstruction: []string{"sawmill"}},
	}
	cards := []catalog.CardTemplate{
		{ID: "villager", Name: "Villager", Slots: 2, Tracks: catalog.CardTracks{Power: 1, Construction: 1}},
		{ID: "scout", Name: "Scout", Slots: 1, Tracks: catalog.CardTracks{Power: 2}},
		{ID: "sawyer", Name: "Sawyer", Slots: 2, Tracks: catalog.CardTracks{Construction: 2}},
		{ID: "mercenary", Name: "Mercenary", Slots: 1, Tracks: catalog.CardTracks{Power: 2}},
	}

	registry, err := catalog.NewRegistry(buildings, slots, nil, nil, cards, zerolog.Nop())
	require.NoError(t, err)
	return registry
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	starting := make([]string, 10)
	for i := range starting {
		starting[i] = "villager"
	}

	engine, err := NewEngine(newTestRegistry(t), Options{
		HandLimit:        5,
		DeckLimit:        10,
		InvasionDistance: 10,
		InvasionSpeed:    3,
		StartingCards:    starting,
	}, nil, newTestRNG(), zerolog.Nop())
	require.NoError(t, err)
	return engine
}

func (e *Engine) totalCards() int {
	return e.deck.Size() + e.deck.DiscardSize() + e.hand.Size()
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine(t)

	require.NotNil(t, engine)
	assert.NotEmpty(t, engine.ID())
	assert.Equal(t, 10, engine.Deck().Size())
	assert.Equal(t, 0, engine.Hand().Size())
	assert.Equal(t, 1, engine.Clock().Day())
	assert.Equal(t, 10, engine.Clock().Distance())
	assert.Equal(t, states.PhaseRunning, engine.Phase())
}

func TestEngine_DrawUpToLimit(t *testing.T) {
	engine := newTestEngine(t)

	// Deck of 10 cards, hand limit 5: the draw returns 5 and leaves 5.
	drawn := engine.DrawUpToLimit()

	assert.Equal(t, 5, drawn)
	assert.Equal(t, 5, engine.Hand().Size())
	assert.Equal(t, 5, engine.Deck().Size())
}

func TestEngine_ConsumeInsufficient(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourcePower, 3))

	ok, err := engine.ConsumeResource(core.ResourcePower, 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 3, engine.Ledger().Amount(core.ResourcePower))
}

func TestEngine_PlayCard(t *testing.T) {
	engine := newTestEngine(t)
	engine.DrawUpToLimit()

	card, err := engine.PlayCard(0)
	require.NoError(t, err)
	require.NotNil(t, card)

	// Villager tracks: 1 power, 1 construction.
	assert.Equal(t, 1, engine.Ledger().Amount(core.ResourcePower))
	assert.Equal(t, 1, engine.Ledger().Amount(core.ResourceConstruction))

	// The played card moved to the discard pile: nothing left circulation.
	assert.Equal(t, 4, engine.Hand().Size())
	assert.Equal(t, 1, engine.Deck().DiscardSize())
	assert.Equal(t, 10, engine.totalCards())
}

func TestEngine_PlayCard_InvalidIndex(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.PlayCard(0)
	assert.ErrorIs(t, err, core.ErrInvalidIndex)
}

func TestEngine_ConstructBuilding(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 4))

	ok, err := engine.ConstructBuilding("sawmill", "slot-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// Cost 3 paid out of 4.
	assert.Equal(t, 1, engine.Ledger().Amount(core.ResourceConstruction))

	slot, _ := engine.Board().Slot("slot-1")
	assert.Equal(t, "sawmill", slot.Constructed)
}

func TestEngine_ConstructBuilding_CannotAfford(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 2))

	ok, err := engine.ConstructBuilding("sawmill", "slot-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, engine.Ledger().Amount(core.ResourceConstruction), "Refused construction spends nothing")

	slot, _ := engine.Board().Slot("slot-1")
	assert.False(t, slot.IsOccupied())
}

func TestEngine_ConstructBuilding_LimitIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 10))

	constructedEvents := 0
	engine.Bus().SubscribeFunc(events.TypeBuildingConstructed, func(events.Event) { constructedEvents++ })

	ok, err := engine.ConstructBuilding("sawmill", "slot-1")
	require.NoError(t, err)
	require.True(t, ok)

	// Limit 1: the second construction on another slot returns false, fires
	// no second event, and pays nothing.
	remaining := engine.Ledger().Amount(core.ResourceConstruction)
	ok, err = engine.ConstructBuilding("sawmill", "slot-2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, constructedEvents)
	assert.Equal(t, remaining, engine.Ledger().Amount(core.ResourceConstruction))
}

func TestEngine_ConstructBuilding_OccupiedSlot(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 10))

	ok, err := engine.ConstructBuilding("sawmill", "slot-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = engine.ConstructBuilding("guild_hall", "slot-1")
	require.NoError(t, err)
	assert.False(t, ok)

	slot, _ := engine.Board().Slot("slot-1")
	assert.Equal(t, "sawmill", slot.Constructed)
}

func TestEngine_ConstructBuilding_NotWhitelisted(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 10))

	// slot-3 only admits the sawmill.
	ok, err := engine.ConstructBuilding("guild_hall", "slot-3")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10, engine.Ledger().Amount(core.ResourceConstruction))
}

func TestEngine_ConstructBuilding_UnknownIDs(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.ConstructBuilding("castle", "slot-1")
	assert.ErrorIs(t, err, core.ErrUnknownBuilding)

	_, err = engine.ConstructBuilding("sawmill", "slot-99")
	assert.ErrorIs(t, err, core.ErrUnknownSlot)
}

func TestEngine_EffectCascadeBeforeEvent(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 5))

	var recruitableAtEvent bool
	engine.Bus().SubscribeFunc(events.TypeBuildingConstructed, func(events.Event) {
		recruitableAtEvent = engine.Pool().IsRecruitable("scout")
	})

	ok, err := engine.ConstructBuilding("guild_hall", "slot-1")
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, recruitableAtEvent, "Recruits unlock strictly before building-constructed is observed")
	assert.Equal(t, 12, engine.Deck().Limit())
}

func TestEngine_ConstructBuilding_ReentrantSpendsNothing(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 8))

	// A subscriber reacting to the guild hall's recruit unlock tries to
	// build again mid-resolution. The refusal must land before the cost is
	// paid, not after.
	var reentrantOK bool
	var reentrantErr error
	engine.Bus().SubscribeFunc(events.TypeRecruitsUnlocked, func(events.Event) {
		reentrantOK, reentrantErr = engine.ConstructBuilding("sawmill", "slot-2")
	})

	ok, err := engine.ConstructBuilding("guild_hall", "slot-1")
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, reentrantOK)
	assert.ErrorIs(t, reentrantErr, core.ErrReentrantConstruction)

	// Only the guild hall's 5 was spent; the sawmill's 3 was not.
	assert.Equal(t, 3, engine.Ledger().Amount(core.ResourceConstruction))
	slot2, _ := engine.Board().Slot("slot-2")
	assert.False(t, slot2.IsOccupied())
}

func TestEngine_Recruit(t *testing.T) {
	engine := newTestEngine(t)

	// Not unlocked yet: a routine refusal.
	ok, err := engine.Recruit("scout")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, engine.AddResource(core.ResourceConstruction, 5))
	_, err = engine.ConstructBuilding("guild_hall", "slot-1")
	require.NoError(t, err)

	ok, err = engine.Recruit("scout")
	require.NoError(t, err)
	assert.True(t, ok)

	// Recruited cards join the discard pile and circulation grows by one.
	assert.Equal(t, 1, engine.Deck().DiscardSize())
	assert.Equal(t, 11, engine.totalCards())
	assert.Equal(t, "scout", engine.Deck().DiscardedCards()[0].TemplateID)
}

func TestEngine_Recruit_UnknownTemplateIsFatal(t *testing.T) {
	engine := newTestEngine(t)

	// ghost_shrine unlocks a template that has no card data behind it;
	// recruiting it must surface the broken catalog.
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 1))
	_, err := engine.ConstructBuilding("ghost_shrine", "slot-1")
	require.NoError(t, err)

	_, err = engine.Recruit("ghost")
	assert.ErrorIs(t, err, core.ErrUnknownTemplate)
}

func TestEngine_AttemptAdventure(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourcePower, 2))

	opt := tavern.Option{
		ID:      "bandit-camp",
		Level:   tavern.LevelEasy,
		Cost:    4,
		Success: []tavern.CardReward{{TemplateID: "mercenary", Count: 1}},
	}

	// Cost 4, power 2: the attempt fails and consumes the 2.
	ok, err := engine.AttemptAdventure(opt)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, engine.Ledger().Amount(core.ResourcePower))
}

func TestEngine_AdvanceDay(t *testing.T) {
	engine := newTestEngine(t)
	engine.DrawUpToLimit()
	require.NoError(t, engine.AddResource(core.ResourcePower, 7))

	day, err := engine.AdvanceDay()
	require.NoError(t, err)

	assert.Equal(t, 2, day)
	assert.Equal(t, 7, engine.Clock().Distance())
	assert.Equal(t, 0, engine.Ledger().Amount(core.ResourcePower), "Ledger resets at the day boundary")

	// The old hand went through the discard merge, so the redraw fills the
	// hand back to its limit.
	assert.Equal(t, 5, engine.Hand().Size())
	assert.Equal(t, 5, engine.Deck().Size())
	assert.Equal(t, 0, engine.Deck().DiscardSize())
	assert.Equal(t, 10, engine.totalCards())
}

func TestEngine_AdvanceDay_DayStartGrant(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 3))

	ok, err := engine.ConstructBuilding("sawmill", "slot-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, engine.Ledger().Amount(core.ResourceConstruction))

	_, err = engine.AdvanceDay()
	require.NoError(t, err)

	// The sawmill's standing grant lands after the reset: exactly +2.
	assert.Equal(t, 2, engine.Ledger().Amount(core.ResourceConstruction))

	_, err = engine.AdvanceDay()
	require.NoError(t, err)
	assert.Equal(t, 2, engine.Ledger().Amount(core.ResourceConstruction), "Grants do not stack across days past the reset")
}

func TestEngine_AdvanceDay_InvasionArrivesOnce(t *testing.T) {
	engine := newTestEngine(t)

	arrivals := 0
	engine.Bus().SubscribeFunc(events.TypeInvasionArrived, func(events.Event) { arrivals++ })

	// Distance 10, speed 3: arrival on the 4th advance.
	for i := 0; i < 6; i++ {
		_, err := engine.AdvanceDay()
		require.NoError(t, err)
	}

	assert.True(t, engine.Clock().HasArrived())
	assert.Equal(t, 1, arrivals, "Arrival announces exactly once")
	assert.Equal(t, states.PhaseBesieged, engine.Phase())
}

func TestEngine_ConservationAcrossACampaign(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.AddResource(core.ResourceConstruction, 10))
	require.NoError(t, engine.AddResource(core.ResourcePower, 10))

	engine.DrawUpToLimit()
	_, err := engine.PlayCard(0)
	require.NoError(t, err)
	require.NoError(t, engine.DiscardCard(0))

	_, err = engine.ConstructBuilding("guild_hall", "slot-1")
	require.NoError(t, err)
	_, err = engine.Recruit("sawyer")
	require.NoError(t, err)

	_, err = engine.AttemptAdventure(tavern.Option{
		ID:      "bandit-camp",
		Level:   tavern.LevelEasy,
		Cost:    4,
		Success: []tavern.CardReward{{TemplateID: "mercenary", Count: 2}},
	})
	require.NoError(t, err)

	// 10 starting + 1 recruited + 2 adventure rewards; nothing is ever
	// deleted.
	assert.Equal(t, 13, engine.totalCards())

	_, err = engine.AdvanceDay()
	require.NoError(t, err)
	assert.Equal(t, 13, engine.totalCards())
}

func TestEngine_CardsChangedEvents(t *testing.T) {
	engine := newTestEngine(t)

	var lastHand []*core.Card
	engine.Bus().SubscribeFunc(events.TypeCardsChanged, func(e events.Event) {
		lastHand = e.(*events.CardsChangedEvent).Cards
	})

	engine.DrawUpToLimit()
	assert.Len(t, lastHand, 5)

	require.NoError(t, engine.DiscardCard(0))
	assert.Len(t, lastHand, 4)
}

func TestEngine_ResourceChangedEvents(t *testing.T) {
	engine := newTestEngine(t)

	var changes []*events.ResourceChangedEvent
	engine.Bus().SubscribeFunc(events.TypeResourceChanged, func(e events.Event) {
		changes = append(changes, e.(*events.ResourceChangedEvent))
	})

	require.NoError(t, engine.AddResource(core.ResourcePower, 3))
	ok, err := engine.ConsumeResource(core.ResourcePower, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, changes, 2)
	assert.Equal(t, 3, changes[0].Amount)
	assert.Equal(t, 0, changes[0].PreviousAmount)
	assert.Equal(t, 2, changes[1].Amount)
	assert.Equal(t, 3, changes[1].PreviousAmount)
}
