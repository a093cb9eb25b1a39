package balatro

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"balatro-lite/card"
)

// Hand is an ordered row of card references plus a set of selected
// positions. Selection is tracked by position but survives sorting because
// sorts re-derive positions from card identity.
type Hand struct {
	cards    card.CardList
	selected map[int]bool
}

func NewHand() *Hand {
	return &Hand{selected: make(map[int]bool)}
}

func (h *Hand) Len() int {
	return h.cards.Count()
}

func (h *Hand) Cards() []*card.Card {
	return h.cards
}

func (h *Hand) Get(i int) (*card.Card, error) {
	if err := h.checkIndex(i); err != nil {
		return nil, err
	}
	return h.cards[i], nil
}

func (h *Hand) Add(cards ...*card.Card) {
	h.cards.Add(cards...)
}

// RemoveAt removes the card at index i, dropping it from the selection and
// remapping the selected positions above it.
func (h *Hand) RemoveAt(i int) (*card.Card, error) {
	if err := h.checkIndex(i); err != nil {
		return nil, err
	}
	c := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)

	remapped := make(map[int]bool, len(h.selected))
	for idx := range h.selected {
		switch {
		case idx == i:
			// dropped with the card
		case idx > i:
			remapped[idx-1] = true
		default:
			remapped[idx] = true
		}
	}
	h.selected = remapped
	return c, nil
}

func (h *Hand) Select(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	h.selected[i] = true
	return nil
}

// Deselect is idempotent: deselecting an unselected valid index is a no-op.
func (h *Hand) Deselect(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	delete(h.selected, i)
	return nil
}

func (h *Hand) Toggle(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	if h.selected[i] {
		delete(h.selected, i)
	} else {
		h.selected[i] = true
	}
	return nil
}

func (h *Hand) IsSelected(i int) bool {
	return h.selected[i]
}

func (h *Hand) SelectedIndices() []int {
	out := make([]int, 0, len(h.selected))
	for i := range h.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectedCards returns the selected cards in hand order.
func (h *Hand) SelectedCards() []*card.Card {
	out := make([]*card.Card, 0, len(h.selected))
	for i, c := range h.cards {
		if h.selected[i] {
			out = append(out, c)
		}
	}
	return out
}

// UnselectedCards returns the held cards left to right.
func (h *Hand) UnselectedCards() []*card.Card {
	out := make([]*card.Card, 0, h.cards.Count()-len(h.selected))
	for i, c := range h.cards {
		if !h.selected[i] {
			out = append(out, c)
		}
	}
	return out
}

func (h *Hand) ClearSelection() {
	h.selected = make(map[int]bool)
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.selected = make(map[int]bool)
}

// MoveLeft swaps the card at i with its left neighbor, carrying selection
// marks along. Fails at the boundary.
func (h *Hand) MoveLeft(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	if i == 0 {
		return ErrInvalidState(fmt.Sprintf("cannot move card at index %d left", i))
	}
	h.swap(i, i-1)
	return nil
}

func (h *Hand) MoveRight(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	if i == h.cards.Count()-1 {
		return ErrInvalidState(fmt.Sprintf("cannot move card at index %d right", i))
	}
	h.swap(i, i+1)
	return nil
}

func (h *Hand) swap(i, j int) {
	h.cards[i], h.cards[j] = h.cards[j], h.cards[i]
	si, sj := h.selected[i], h.selected[j]
	delete(h.selected, i)
	delete(h.selected, j)
	if si {
		h.selected[j] = true
	}
	if sj {
		h.selected[i] = true
	}
}

// SortByRankDesc orders the hand highest rank first, keeping the same
// logical cards selected.
func (h *Hand) SortByRankDesc() {
	h.sortPreservingSelection(func(a, b *card.Card) bool {
		return a.Rank > b.Rank
	})
}

// SortBySuitThenRank groups by suit, highest rank first within each suit.
func (h *Hand) SortBySuitThenRank() {
	h.sortPreservingSelection(func(a, b *card.Card) bool {
		if a.Suit != b.Suit {
			return a.Suit < b.Suit
		}
		return a.Rank > b.Rank
	})
}

func (h *Hand) sortPreservingSelection(less func(a, b *card.Card) bool) {
	selectedIDs := make(map[uuid.UUID]bool, len(h.selected))
	for i := range h.selected {
		selectedIDs[h.cards[i].ID] = true
	}
	sort.SliceStable(h.cards, func(i, j int) bool {
		return less(h.cards[i], h.cards[j])
	})
	h.selected = make(map[int]bool, len(selectedIDs))
	for i, c := range h.cards {
		if selectedIDs[c.ID] {
			h.selected[i] = true
		}
	}
}

// DiscardSelected atomically removes every selected card (highest index
// first, so the remaining positions stay valid) into the deck's discard
// pile. Removed cards are returned in their original hand order.
func (h *Hand) DiscardSelected(deck *Deck) ([]*card.Card, error) {
	if len(h.selected) == 0 {
		return nil, ErrNoSelection
	}
	indices := h.SelectedIndices()
	removed := make([]*card.Card, 0, len(indices))
	for k := len(indices) - 1; k >= 0; k-- {
		c, err := h.RemoveAt(indices[k])
		if err != nil {
			return nil, err
		}
		removed = append(removed, c)
	}
	// reverse back to hand order
	for i, j := 0, len(removed)-1; i < j; i, j = i+1, j-1 {
		removed[i], removed[j] = removed[j], removed[i]
	}
	for _, c := range removed {
		deck.Discard(c)
	}
	return removed, nil
}

func (h *Hand) checkIndex(i int) error {
	if i < 0 || i >= h.cards.Count() {
		return ErrInvalidState(fmt.Sprintf("index %d out of bounds for hand of size %d", i, h.cards.Count()))
	}
	return nil
}
