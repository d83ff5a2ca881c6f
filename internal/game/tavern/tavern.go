package tavern

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/game/events"
)

// Level buckets adventure options by difficulty.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// CardReward grants copies of a card template, discarded into the deck.
type CardReward struct {
	TemplateID string `json:"template_id"`
	Count      int    `json:"count"`
}

// Option is one adventure on offer: a power cost plus the rewards applied on
// success or on failure.
type Option struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Level   Level        `json:"level"`
	Cost    int          `json:"cost"`
	Success []CardReward `json:"success"`
	Failure []CardReward `json:"failure"`
}

// Tavern resolves cost-gated adventures. Attempting an adventure is always a
// commitment: the cost is paid in full or to exhaustion, win or lose. There
// is no "can't afford, nothing happens" outcome.
type Tavern struct {
	options map[Level][]Option
	ledger  *core.ResourceLedger
	factory *catalog.CardFactory
	deck    *core.Deck[*core.Card]
	bus     events.Publisher
	gameID  string
	logger  zerolog.Logger
}

// NewTavern creates a tavern with no options on offer.
func NewTavern(ledger *core.ResourceLedger, factory *catalog.CardFactory, deck *core.Deck[*core.Card], bus events.Publisher, gameID string, logger zerolog.Logger) *Tavern {
	return &Tavern{
		options: make(map[Level][]Option),
		ledger:  ledger,
		factory: factory,
		deck:    deck,
		bus:     bus,
		gameID:  gameID,
		logger:  logger.With().Str("component", "tavern").Logger(),
	}
}

// AddOption puts an adventure on offer.
func (t *Tavern) AddOption(opt Option) {
	t.options[opt.Level] = append(t.options[opt.Level], opt)
}

// OptionsFor returns the options offered at a level. An empty bucket is a
// data-integrity error: every level is expected to be populated from catalog
// data at startup.
func (t *Tavern) OptionsFor(level Level) ([]Option, error) {
	opts := t.options[level]
	if len(opts) == 0 {
		return nil, fmt.Errorf("%w: %q", core.ErrNoAdventures, level)
	}
	out := make([]Option, len(opts))
	copy(out, opts)
	return out, nil
}

// Attempt resolves an adventure. Success requires the full power cost;
// otherwise every remaining point of power is spent and the failure rewards
// apply. The returned bool is the outcome; an error means broken reward data,
// not a gameplay result.
func (t *Tavern) Attempt(opt Option) (bool, error) {
	available := t.ledger.Amount(core.ResourcePower)

	success := available >= opt.Cost
	spent := opt.Cost
	if !success {
		spent = available
	}

	if spent > 0 {
		if ok, err := t.ledger.Consume(core.ResourcePower, spent); err != nil {
			return false, err
		} else if !ok {
			// Unreachable: spent never exceeds the available amount.
			return false, fmt.Errorf("consuming %d power: ledger refused", spent)
		}
	}

	if err := t.processResult(opt, success); err != nil {
		return false, err
	}

	t.logger.Info().
		Str("option_id", opt.ID).
		Str("level", string(opt.Level)).
		Int("cost", opt.Cost).
		Int("power_spent", spent).
		Bool("success", success).
		Msg("Adventure resolved")

	t.bus.Publish(events.NewAdventureResolvedEvent(t.gameID, opt.ID, string(opt.Level), opt.Cost, spent, success))
	return success, nil
}

// processResult applies the reward list for the chosen outcome. Reward cards
// are instantiated and discarded into the deck, joining circulation at the
// next reshuffle. An unknown template is fatal.
func (t *Tavern) processResult(opt Option, success bool) error {
	rewards := opt.Failure
	if success {
		rewards = opt.Success
	}

	for _, reward := range rewards {
		for i := 0; i < reward.Count; i++ {
			card, err := t.factory.NewCard(reward.TemplateID)
			if err != nil {
				return fmt.Errorf("adventure %q reward: %w", opt.ID, err)
			}
			t.deck.Discard(card)
		}
	}
	return nil
}
