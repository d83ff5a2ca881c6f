package game

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/board"
	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/game/events"
	"github.com/emberfield/palisade/internal/game/panels"
	"github.com/emberfield/palisade/internal/game/states"
	"github.com/emberfield/palisade/internal/game/tavern"
)

// Options carries the balance knobs an engine starts from.
type Options struct {
	HandLimit        int
	DeckLimit        int
	InvasionDistance int
	InvasionSpeed    int
	// StartingCards lists card template ids instantiated into the deck at
	// setup, in order.
	StartingCards []string
}

// Engine owns the village simulation: the resource ledger, the deck and hand,
// the slot board and effect resolver, the recruitment pool, the tavern and
// the invasion clock. All commands from the presentation layer enter here;
// every public operation runs to completion before returning and all events
// it causes are delivered before it returns.
type Engine struct {
	id       string
	registry *catalog.Registry
	bus      *events.EventBus
	ledger   *core.ResourceLedger
	deck     *core.Deck[*core.Card]
	hand     *core.Hand
	pool     *core.RecruitmentPool
	resolver *board.EffectResolver
	board    *board.Board
	tavern   *tavern.Tavern
	clock    *core.InvasionClock
	panels   *panels.Controller
	factory  *catalog.CardFactory
	phases   *states.Machine
	logger   zerolog.Logger
}

// NewEngine assembles a fresh game. A nil rng gets a time-seeded source; a
// nil bus gets a private one.
func NewEngine(registry *catalog.Registry, opts Options, bus *events.EventBus, rng *rand.Rand, logger zerolog.Logger) (*Engine, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if bus == nil {
		bus = events.NewEventBus()
	}

	id := uuid.NewString()
	logger = logger.With().Str("game_id", id).Logger()

	deck := core.NewDeck[*core.Card](opts.DeckLimit, rng, logger)
	pool := core.NewRecruitmentPool()
	ledger := core.NewResourceLedger(logger)
	factory := catalog.NewCardFactory(registry)
	resolver := board.NewEffectResolver(pool, deck, bus, id, logger)

	e := &Engine{
		id:       id,
		registry: registry,
		bus:      bus,
		ledger:   ledger,
		deck:     deck,
		hand:     core.NewHand(deck, opts.HandLimit, logger),
		pool:     pool,
		resolver: resolver,
		board:    board.NewBoard(registry, resolver, bus, id, logger),
		clock:    core.NewInvasionClock(opts.InvasionDistance, opts.InvasionSpeed),
		panels:   panels.NewController(bus, id, logger),
		factory:  factory,
		phases:   states.NewMachine(bus, id, logger),
		logger:   logger.With().Str("component", "engine").Logger(),
	}
	e.tavern = tavern.NewTavern(ledger, factory, deck, bus, id, logger)

	// Every ledger mutation surfaces as a resource-changed event.
	ledger.SetOnChange(func(r core.Resource, amount, previous int) {
		bus.Publish(events.NewResourceChangedEvent(id, r, amount, previous))
	})

	for _, templateID := range opts.StartingCards {
		card, err := factory.NewCard(templateID)
		if err != nil {
			return nil, fmt.Errorf("building starting deck: %w", err)
		}
		deck.Add(card, core.Bottom)
	}
	deck.Shuffle()

	if err := e.phases.TransitionTo(states.PhaseRunning, "setup complete"); err != nil {
		return nil, err
	}

	e.logger.Info().
		Int("starting_cards", len(opts.StartingCards)).
		Int("hand_limit", opts.HandLimit).
		Int("invasion_distance", opts.InvasionDistance).
		Msg("Engine created")

	return e, nil
}

// DrawUpToLimit tops the hand up from the deck and returns how many cards
// were drawn.
func (e *Engine) DrawUpToLimit() int {
	drawn := e.hand.DrawUpToLimit()
	if drawn > 0 {
		e.publishHand()
	}
	return drawn
}

// DiscardCard discards the hand card at index.
func (e *Engine) DiscardCard(index int) error {
	if err := e.hand.DiscardCard(index); err != nil {
		return err
	}
	e.publishHand()
	return nil
}

// PlayCard plays the hand card at index: its track values are credited to
// the ledger and the card goes to the discard pile, rejoining circulation at
// the next reshuffle.
func (e *Engine) PlayCard(index int) (*core.Card, error) {
	card, err := e.hand.PlayCard(index)
	if err != nil {
		return nil, err
	}

	for _, r := range core.AllResources() {
		if v := card.TrackValue(r); v > 0 {
			if err := e.ledger.Add(r, v); err != nil {
				return nil, err
			}
		}
	}
	e.deck.Discard(card)
	e.publishHand()

	e.logger.Debug().
		Str("card", card.TemplateID).
		Str("unique_id", card.UniqueID).
		Msg("Card played")

	return card, nil
}

// ConstructBuilding pays a building's construction cost and places it in the
// slot. Returns false for the routine refusals: per-type limit reached, slot
// occupied, or cost unaffordable.
func (e *Engine) ConstructBuilding(buildingID, slotID string) (bool, error) {
	def, ok := e.registry.Building(buildingID)
	if !ok {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownBuilding, buildingID)
	}

	slot, ok := e.board.Slot(slotID)
	if !ok {
		return false, fmt.Errorf("%w: %q", core.ErrUnknownSlot, slotID)
	}
	if slot.IsOccupied() {
		return false, nil
	}
	if !slices.Contains(slot.Available, buildingID) {
		return false, nil
	}

	// Refuse before paying: a limit-reached construction must not spend
	// resources.
	if def.Limit != nil && e.board.ConstructedCount(buildingID) >= *def.Limit {
		return false, nil
	}

	// Same rule for the reentrancy refusal. The board would reject the call
	// below, but only after the cost had already been consumed.
	if e.board.Resolving() {
		return false, core.ErrReentrantConstruction
	}

	paid, err := e.ledger.Consume(core.ResourceConstruction, def.Cost.Construction)
	if err != nil {
		return false, err
	}
	if !paid {
		return false, nil
	}

	return e.board.Construct(buildingID, slotID)
}

// Recruit instantiates a card from an unlocked template and discards it into
// the deck. Returns false when the template has not been unlocked yet; an
// unknown template id is fatal.
func (e *Engine) Recruit(templateID string) (bool, error) {
	if !e.pool.IsRecruitable(templateID) {
		return false, nil
	}
	card, err := e.factory.NewCard(templateID)
	if err != nil {
		return false, err
	}
	e.deck.Discard(card)
	e.publishHand()

	e.logger.Info().
		Str("template_id", templateID).
		Msg("Card recruited")

	return true, nil
}

// AttemptAdventure resolves a tavern adventure and reports the outcome.
func (e *Engine) AttemptAdventure(opt tavern.Option) (bool, error) {
	success, err := e.tavern.Attempt(opt)
	if err != nil {
		return false, err
	}
	e.publishHand()
	return success, nil
}

// AddResource credits the ledger directly.
func (e *Engine) AddResource(r core.Resource, amount int) error {
	return e.ledger.Add(r, amount)
}

// ConsumeResource debits the ledger directly.
func (e *Engine) ConsumeResource(r core.Resource, amount int) (bool, error) {
	return e.ledger.Consume(r, amount)
}

// DelayInvasion pushes the invasion back, clamped to the starting distance.
func (e *Engine) DelayInvasion(amount int) int {
	return e.clock.Delay(amount)
}

// AdvanceDay runs the turn boundary: the ledger resets, the invasion clock
// advances, standing day-start grants land, and the hand is rebuilt from a
// reshuffled deck. Returns the new day number.
func (e *Engine) AdvanceDay() (int, error) {
	e.ledger.ResetAll()

	distance := e.clock.Progress()
	if e.clock.HasArrived() && e.phases.Current() == states.PhaseRunning {
		if err := e.phases.TransitionTo(states.PhaseBesieged, "invasion arrived"); err != nil {
			return 0, err
		}
		e.bus.Publish(events.NewInvasionArrivedEvent(e.id, e.clock.Day()))
	}

	if err := e.resolver.GrantDayStart(e.ledger); err != nil {
		return 0, fmt.Errorf("applying day-start grants: %w", err)
	}

	e.hand.DiscardHand()
	e.deck.MergeDiscardAndShuffle()
	e.hand.DrawUpToLimit()
	e.publishHand()

	e.logger.Info().
		Int("day", e.clock.Day()).
		Int("distance", distance).
		Msg("Day advanced")

	e.bus.Publish(events.NewDayAdvancedEvent(e.id, e.clock.Day(), distance))
	return e.clock.Day(), nil
}

func (e *Engine) publishHand() {
	e.bus.Publish(events.NewCardsChangedEvent(e.id, e.hand.Cards()))
}

// ID returns the engine's game id.
func (e *Engine) ID() string { return e.id }

// Bus returns the event bus commands announce on.
func (e *Engine) Bus() *events.EventBus { return e.bus }

// Ledger returns the resource ledger.
func (e *Engine) Ledger() *core.ResourceLedger { return e.ledger }

// Hand returns the player hand.
func (e *Engine) Hand() *core.Hand { return e.hand }

// Deck returns the card deck.
func (e *Engine) Deck() *core.Deck[*core.Card] { return e.deck }

// Board returns the building slot board.
func (e *Engine) Board() *board.Board { return e.board }

// Pool returns the recruitment pool.
func (e *Engine) Pool() *core.RecruitmentPool { return e.pool }

// Tavern returns the adventure resolver.
func (e *Engine) Tavern() *tavern.Tavern { return e.tavern }

// Clock returns the invasion clock.
func (e *Engine) Clock() *core.InvasionClock { return e.clock }

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() states.Phase { return e.phases.Current() }

// Panels returns the panel state controller.
func (e *Engine) Panels() *panels.Controller { return e.panels }
