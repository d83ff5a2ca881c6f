package game

import (
	"fmt"

	"github.com/emberfield/palisade/internal/game/core"
	"github.com/emberfield/palisade/internal/persist"
)

// Snapshot is the engine state worth carrying across sessions. The core
// decides what goes in it; the store decides how it is kept.
type Snapshot struct {
	GameID      string            `json:"game_id"`
	Day         int               `json:"day"`
	Distance    int               `json:"distance"`
	Resources   map[string]int    `json:"resources"`
	Constructed map[string]string `json:"constructed"` // slot id -> building id
	Recruitable []string          `json:"recruitable"`
	DeckSize    int               `json:"deck_size"`
	DiscardSize int               `json:"discard_size"`
	HandSize    int               `json:"hand_size"`
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	resources := make(map[string]int)
	for r, v := range e.ledger.Snapshot() {
		resources[string(r)] = v
	}

	constructed := make(map[string]string)
	for _, slot := range e.board.Slots() {
		if slot.IsOccupied() {
			constructed[slot.ID] = slot.Constructed
		}
	}

	return Snapshot{
		GameID:      e.id,
		Day:         e.clock.Day(),
		Distance:    e.clock.Distance(),
		Resources:   resources,
		Constructed: constructed,
		Recruitable: e.pool.List(),
		DeckSize:    e.deck.Size(),
		DiscardSize: e.deck.DiscardSize(),
		HandSize:    e.hand.Size(),
	}
}

// SaveSnapshot writes the current state to the store under key.
func (e *Engine) SaveSnapshot(store persist.Store, key string) error {
	if err := store.Save(key, e.Snapshot()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	e.logger.Debug().Str("key", key).Msg("Snapshot saved")
	return nil
}

// LoadSnapshot reads a previously saved snapshot. Returns false when none
// exists under key.
func LoadSnapshot(store persist.Store, key string) (Snapshot, bool, error) {
	var snap Snapshot
	found, err := store.Load(key, &snap)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("loading snapshot: %w", err)
	}
	return snap, found, nil
}

// ResourceAmounts converts a snapshot's resource map back to typed counters.
func (s Snapshot) ResourceAmounts() map[core.Resource]int {
	out := make(map[core.Resource]int, len(s.Resources))
	for name, v := range s.Resources {
		out[core.Resource(name)] = v
	}
	return out
}
