package core

import (
	"github.com/rs/zerolog"
)

// Resource identifies one of the three village resource tracks.
type Resource string

const (
	ResourcePower        Resource = "power"
	ResourceConstruction Resource = "construction"
	ResourceInvention    Resource = "invention"
)

// AllResources returns the resource tracks in their canonical order.
func AllResources() []Resource {
	return []Resource{ResourcePower, ResourceConstruction, ResourceInvention}
}

// Valid reports whether r is one of the known resource tracks.
func (r Resource) Valid() bool {
	switch r {
	case ResourcePower, ResourceConstruction, ResourceInvention:
		return true
	}
	return false
}

// ChangeFunc observes a counter mutation on the ledger.
type ChangeFunc func(resource Resource, amount, previous int)

// ResourceLedger holds the three resource counters. It is the sole mutator of
// the counters; every mutation is reported through the change observer so the
// rest of the game can react without polling.
type ResourceLedger struct {
	counters map[Resource]int
	onChange ChangeFunc
	logger   zerolog.Logger
}

// NewResourceLedger creates a ledger with all counters at zero.
func NewResourceLedger(logger zerolog.Logger) *ResourceLedger {
	counters := make(map[Resource]int, 3)
	for _, r := range AllResources() {
		counters[r] = 0
	}
	return &ResourceLedger{
		counters: counters,
		logger:   logger.With().Str("component", "resource_ledger").Logger(),
	}
}

// SetOnChange registers the observer invoked after every counter mutation.
// Passing nil disables change notifications.
func (l *ResourceLedger) SetOnChange(fn ChangeFunc) {
	l.onChange = fn
}

// Amount returns the current value of a counter. Unknown resources read as 0.
func (l *ResourceLedger) Amount(r Resource) int {
	return l.counters[r]
}

// HasEnough reports whether the counter holds at least amount units.
func (l *ResourceLedger) HasEnough(r Resource, amount int) bool {
	return l.counters[r] >= amount
}

// Add increases a counter. A negative amount is a validation error, never a
// legitimate gameplay input.
func (l *ResourceLedger) Add(r Resource, amount int) error {
	if !r.Valid() {
		return ErrUnknownResource
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	previous := l.counters[r]
	l.counters[r] = previous + amount

	l.logger.Debug().
		Str("resource", string(r)).
		Int("amount", amount).
		Int("total", l.counters[r]).
		Msg("Resource added")

	l.notify(r, l.counters[r], previous)
	return nil
}

// Consume decreases a counter. Insufficient funds is the routine "can't afford
// it" outcome and is reported as false, not as an error; callers branch on it
// every turn.
func (l *ResourceLedger) Consume(r Resource, amount int) (bool, error) {
	if !r.Valid() {
		return false, ErrUnknownResource
	}
	if amount < 0 {
		return false, ErrInvalidAmount
	}
	previous := l.counters[r]
	if amount > previous {
		return false, nil
	}
	l.counters[r] = previous - amount

	l.logger.Debug().
		Str("resource", string(r)).
		Int("amount", amount).
		Int("total", l.counters[r]).
		Msg("Resource consumed")

	l.notify(r, l.counters[r], previous)
	return true, nil
}

// ResetAll zeroes every counter, notifying once per counter that was non-zero.
// Called exactly once per day-advance.
func (l *ResourceLedger) ResetAll() {
	for _, r := range AllResources() {
		previous := l.counters[r]
		if previous == 0 {
			continue
		}
		l.counters[r] = 0
		l.notify(r, 0, previous)
	}
	l.logger.Debug().Msg("Ledger reset")
}

// Snapshot returns a copy of the current counter values.
func (l *ResourceLedger) Snapshot() map[Resource]int {
	out := make(map[Resource]int, len(l.counters))
	for r, v := range l.counters {
		out[r] = v
	}
	return out
}

func (l *ResourceLedger) notify(r Resource, amount, previous int) {
	if l.onChange != nil {
		l.onChange(r, amount, previous)
	}
}
