package board

import (
	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/game/catalog"
	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/game/events"
)

// Grant is a standing per-day-start resource grant registered by a
// constructed building.
type Grant struct {
	BuildingID string
	Resource   core.Resource
	Amount     int
}

// EffectResolver interprets a building's effect descriptors at construction
// time and routes each to the subsystem it affects. Resolution runs
// synchronously inside Construct, before the building-constructed event is
// announced, so subscribers always observe a fully-resolved world state.
type EffectResolver struct {
	pool   *core.RecruitmentPool
	deck   *core.Deck[*core.Card]
	bus    events.Publisher
	gameID string
	grants []Grant
	logger zerolog.Logger
}

// NewEffectResolver creates a resolver routing effects to the given pool and
// deck.
func NewEffectResolver(pool *core.RecruitmentPool, deck *core.Deck[*core.Card], bus events.Publisher, gameID string, logger zerolog.Logger) *EffectResolver {
	return &EffectResolver{
		pool:   pool,
		deck:   deck,
		bus:    bus,
		gameID: gameID,
		logger: logger.With().Str("component", "effect_resolver").Logger(),
	}
}

// Resolve dispatches every effect of a just-constructed building. Unknown
// effect tags are skipped; a newer catalog must not crash construction.
func (r *EffectResolver) Resolve(buildingID string, effects catalog.EffectList) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case catalog.MakeRecruitableEffect:
			added := r.pool.MakeRecruitable(e.Recruits...)
			if len(added) > 0 {
				r.bus.Publish(events.NewRecruitsUnlockedEvent(r.gameID, buildingID, added))
			}

		case catalog.AddResourceEffect:
			if e.When != catalog.WhenDayStart {
				r.logger.Warn().
					Str("building_id", buildingID).
					Str("when", e.When).
					Msg("Unsupported add_resource trigger, skipping")
				continue
			}
			r.grants = append(r.grants, Grant{
				BuildingID: buildingID,
				Resource:   e.Resource,
				Amount:     e.Amount,
			})

		case catalog.IncreaseDeckLimitEffect:
			r.deck.RaiseLimit(e.Amount)
			r.bus.Publish(events.NewDeckLimitChangedEvent(r.gameID, r.deck.Limit(), e.Amount))

		case catalog.UnknownEffect:
			r.logger.Warn().
				Str("building_id", buildingID).
				Str("effect_type", e.Type).
				Msg("Unknown effect type, skipping")
		}
	}
}

// GrantDayStart applies every standing day-start grant to the ledger. Grants
// accumulate additively across buildings holding the same effect.
func (r *EffectResolver) GrantDayStart(ledger *core.ResourceLedger) error {
	for _, g := range r.grants {
		if err := ledger.Add(g.Resource, g.Amount); err != nil {
			return err
		}
	}
	return nil
}

// DayStartGrants returns a snapshot of the registered grants.
func (r *EffectResolver) DayStartGrants() []Grant {
	out := make([]Grant, len(r.grants))
	copy(out, r.grants)
	return out
}
