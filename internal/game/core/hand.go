package core

import (
	"github.com/rs/zerolog"

	"github.com/emberfield/palisade/internal/common"
)

// Hand is the bounded working set of cards drawn from a deck. The hand limit
// caps how many cards a draw tops up to; it is never exceeded by drawing.
type Hand struct {
	deck   *Deck[*Card]
	limit  int
	cards  []*Card
	logger zerolog.Logger
}

// NewHand creates an empty hand over the given deck.
func NewHand(deck *Deck[*Card], limit int, logger zerolog.Logger) *Hand {
	return &Hand{
		deck:   deck,
		limit:  limit,
		logger: logger.With().Str("component", "hand").Logger(),
	}
}

// DrawUpToLimit draws from the deck until the hand holds its limit, or until
// the deck runs out. Returns the number of cards actually drawn.
func (h *Hand) DrawUpToLimit() int {
	want := common.Max(0, h.limit-len(h.cards))
	drawn := h.deck.Draw(want)
	h.cards = append(h.cards, drawn...)

	h.logger.Debug().
		Int("drawn", len(drawn)).
		Int("hand_size", len(h.cards)).
		Msg("Hand drawn up")

	return len(drawn)
}

// DiscardHand moves every hand card to the deck's discard pile.
func (h *Hand) DiscardHand() {
	for _, card := range h.cards {
		h.deck.Discard(card)
	}
	h.cards = nil
}

// DiscardAndDraw replaces the whole hand. The new hand can end up smaller
// than the limit when the deck is short: the just-discarded cards are not
// reshuffled in by this operation.
func (h *Hand) DiscardAndDraw() int {
	h.DiscardHand()
	return h.DrawUpToLimit()
}

// PlayCard removes the card at index from the hand without discarding it.
// The caller owns the returned card and must route it onward (cards consumed
// for cost payment are discarded separately).
func (h *Hand) PlayCard(index int) (*Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, ErrInvalidIndex
	}
	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return card, nil
}

// DiscardCard removes the card at index and moves it to the discard pile.
func (h *Hand) DiscardCard(index int) error {
	card, err := h.PlayCard(index)
	if err != nil {
		return err
	}
	h.deck.Discard(card)
	return nil
}

// Cards returns a snapshot of the hand in draw order.
func (h *Hand) Cards() []*Card {
	out := make([]*Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards currently held.
func (h *Hand) Size() int {
	return len(h.cards)
}

// Limit returns the hand limit.
func (h *Hand) Limit() int {
	return h.limit
}

// Deck returns the deck this hand draws from.
func (h *Hand) Deck() *Deck[*Card] {
	return h.deck
}
