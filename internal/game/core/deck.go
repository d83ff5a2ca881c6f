package core

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Carded is anything that can live in a deck: it must expose a stable
// per-instance identity.
type Carded interface {
	UID() string
}

// Position selects which end of the deck an added card goes to.
type Position int

const (
	Top Position = iota
	Bottom
)

// Deck is an ordered draw pile plus an unordered discard pile. Draws come from
// the front of the ordered sequence. The deck limit is advisory: it does not
// reject adds past capacity, it only throttles how many cards the hand decides
// to draw.
type Deck[T Carded] struct {
	cards   []T
	discard []T
	limit   int
	rng     *rand.Rand
	logger  zerolog.Logger
}

// NewDeck creates an empty deck with the given advisory limit. A nil rng gets
// a time-seeded source; tests inject a fixed seed.
func NewDeck[T Carded](limit int, rng *rand.Rand, logger zerolog.Logger) *Deck[T] {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Deck[T]{
		limit:  limit,
		rng:    rng,
		logger: logger.With().Str("component", "deck").Logger(),
	}
}

// Add places a card on the chosen end of the draw pile.
func (d *Deck[T]) Add(card T, pos Position) {
	if pos == Top {
		d.cards = append([]T{card}, d.cards...)
	} else {
		d.cards = append(d.cards, card)
	}
}

// RemoveByID removes the card with the given unique id from the draw pile.
// The second return is false if no such card is present.
func (d *Deck[T]) RemoveByID(id string) (T, bool) {
	for i, card := range d.cards {
		if card.UID() == id {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return card, true
		}
	}
	var zero T
	return zero, false
}

// Draw takes up to n cards from the top of the deck. It returns fewer cards
// than requested when the deck runs short; an exhausted deck is a routine
// outcome, not an error.
func (d *Deck[T]) Draw(n int) []T {
	if n <= 0 {
		return nil
	}
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]T, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Discard appends a card to the discard pile. Discard order carries no
// meaning; the pile is shuffled back in wholesale.
func (d *Deck[T]) Discard(card T) {
	d.discard = append(d.discard, card)
}

// Shuffle applies a uniform Fisher-Yates permutation to the draw pile in
// place.
func (d *Deck[T]) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// MergeDiscardAndShuffle returns every discarded card to the draw pile and
// reshuffles. Called at the day boundary.
func (d *Deck[T]) MergeDiscardAndShuffle() {
	d.cards = append(d.cards, d.discard...)
	d.discard = nil
	d.Shuffle()

	d.logger.Debug().
		Int("deck_size", len(d.cards)).
		Msg("Discard merged into deck")
}

// Size returns the number of cards in the draw pile.
func (d *Deck[T]) Size() int {
	return len(d.cards)
}

// DiscardSize returns the number of cards in the discard pile.
func (d *Deck[T]) DiscardSize() int {
	return len(d.discard)
}

// Limit returns the advisory deck capacity.
func (d *Deck[T]) Limit() int {
	return d.limit
}

// RaiseLimit grows the advisory deck capacity.
func (d *Deck[T]) RaiseLimit(amount int) {
	d.limit += amount
}

// Cards returns a snapshot of the draw pile, top first.
func (d *Deck[T]) Cards() []T {
	out := make([]T, len(d.cards))
	copy(out, d.cards)
	return out
}

// DiscardedCards returns a snapshot of the discard pile.
func (d *Deck[T]) DiscardedCards() []T {
	out := make([]T, len(d.discard))
	copy(out, d.discard)
	return out
}
