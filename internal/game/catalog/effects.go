package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/emberfield/palisade/internal/game/core"
)

// Effect type tags as they appear in building JSON.
const (
	EffectTypeMakeRecruitable   = "make_recruitable"
	EffectTypeAddResource       = "add_resource"
	EffectTypeIncreaseDeckLimit = "increase_deck_limit"
)

// WhenDayStart is the only supported trigger for add_resource effects.
const WhenDayStart = "on_day_start"

// EffectDescriptor is one of the closed set of declarative building effects.
// Catalog entries with a type tag the resolver does not understand decode to
// UnknownEffect and are skipped at resolution, never crashing construction.
type EffectDescriptor interface {
	effectTag()
}

// MakeRecruitableEffect unlocks card templates for recruitment.
type MakeRecruitableEffect struct {
	Recruits []string
}

// AddResourceEffect grants a resource amount on a trigger. The only trigger
// currently defined is on_day_start: a standing per-day grant.
type AddResourceEffect struct {
	When     string
	Resource core.Resource
	Amount   int
}

// IncreaseDeckLimitEffect raises the deck's advisory capacity once, at
// construction time.
type IncreaseDeckLimitEffect struct {
	Amount int
}

// UnknownEffect preserves a catalog entry whose type tag this build does not
// understand.
type UnknownEffect struct {
	Type string
}

func (MakeRecruitableEffect) effectTag()   {}
func (AddResourceEffect) effectTag()       {}
func (IncreaseDeckLimitEffect) effectTag() {}
func (UnknownEffect) effectTag()           {}

// EffectList decodes the "effects" array of a building definition into the
// tagged variants above.
type EffectList []EffectDescriptor

// UnmarshalJSON decodes each effect object by its "type" tag.
func (el *EffectList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(EffectList, 0, len(raw))
	for i, msg := range raw {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &tag); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}

		switch tag.Type {
		case EffectTypeMakeRecruitable:
			var e struct {
				Recruits []string `json:"recruits"`
			}
			if err := json.Unmarshal(msg, &e); err != nil {
				return fmt.Errorf("effect %d (%s): %w", i, tag.Type, err)
			}
			out = append(out, MakeRecruitableEffect{Recruits: e.Recruits})

		case EffectTypeAddResource:
			var e struct {
				When     string `json:"when"`
				Resource string `json:"resource"`
				Amount   int    `json:"amount"`
			}
			if err := json.Unmarshal(msg, &e); err != nil {
				return fmt.Errorf("effect %d (%s): %w", i, tag.Type, err)
			}
			// A typoed resource or negative grant is a broken catalog; fail
			// the load instead of surfacing mid-resolution.
			if !core.Resource(e.Resource).Valid() {
				return fmt.Errorf("effect %d (%s): %w: %q", i, tag.Type, core.ErrUnknownResource, e.Resource)
			}
			if e.Amount < 0 {
				return fmt.Errorf("effect %d (%s): %w: %d", i, tag.Type, core.ErrInvalidAmount, e.Amount)
			}
			out = append(out, AddResourceEffect{
				When:     e.When,
				Resource: core.Resource(e.Resource),
				Amount:   e.Amount,
			})

		case EffectTypeIncreaseDeckLimit:
			var e struct {
				Amount int `json:"amount"`
			}
			if err := json.Unmarshal(msg, &e); err != nil {
				return fmt.Errorf("effect %d (%s): %w", i, tag.Type, err)
			}
			if e.Amount < 0 {
				return fmt.Errorf("effect %d (%s): %w: %d", i, tag.Type, core.ErrInvalidAmount, e.Amount)
			}
			out = append(out, IncreaseDeckLimitEffect{Amount: e.Amount})

		default:
			out = append(out, UnknownEffect{Type: tag.Type})
		}
	}

	*el = out
	return nil
}
