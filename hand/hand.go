package hand

import "github.com/yohamta/donburi"

// Hand keeps the cards held by the player in slot order, leftmost first.
// A card's slot is its position in the hand; nothing else stores it.
type Hand struct {
	cards []donburi.Entity
}

// New creates an empty hand
func New() *Hand {
	return &Hand{cards: make([]donburi.Entity, 0)}
}

// Insert appends a card to the right end of the hand. Inserting a card that is
// already in the hand does nothing.
func (h *Hand) Insert(card donburi.Entity) {
	if _, ok := h.OffsetOf(card); ok {
		return
	}
	h.cards = append(h.cards, card)
}

// Remove takes a card out of the hand. Cards to its right shift one slot left.
func (h *Hand) Remove(card donburi.Entity) {
	kept := h.cards[:0]
	for _, c := range h.cards {
		if c != card {
			kept = append(kept, c)
		}
	}
	h.cards = kept
}

// OffsetOf returns the slot index of a card.
func (h *Hand) OffsetOf(card donburi.Entity) (int, bool) {
	for i, c := range h.cards {
		if c == card {
			return i, true
		}
	}
	return -1, false
}

// Len is the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// At returns the card in slot i.
func (h *Hand) At(i int) (donburi.Entity, bool) {
	if i < 0 || i >= len(h.cards) {
		return donburi.Null, false
	}
	return h.cards[i], true
}

// Cards returns a copy of the hand in slot order
func (h *Hand) Cards() []donburi.Entity {
	out := make([]donburi.Entity, len(h.cards))
	copy(out, h.cards)
	return out
}
