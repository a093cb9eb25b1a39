package balatro

import "balatro-lite/card"

// Deck owns the immutable full card set plus the two mutable piles. Cards
// currently held by the Hand sit in neither pile; the union of both piles is
// always a subset of the full set.
type Deck struct {
	full     card.CardList
	drawPile card.CardList
	discards card.CardList
}

func NewDeck(full []*card.Card) *Deck {
	d := &Deck{}
	d.full.Init(full)
	return d
}

func NewStandardDeck() *Deck {
	return NewDeck(card.StandardSet())
}

// Shuffle clears both piles and refills the draw pile with a uniform random
// permutation of the full set, drawn from the given stream.
func (d *Deck) Shuffle(st *Stream) {
	d.drawPile.Init(d.full)
	d.discards = d.discards[:0]
	st.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}

// Draw pops up to n cards off the front of the draw pile. An exhausted pile
// yields a short (possibly empty) result, never an error.
func (d *Deck) Draw(n int) []*card.Card {
	return d.drawPile.PopFront(n)
}

func (d *Deck) Discard(c *card.Card) {
	d.discards.Add(c)
}

func (d *Deck) Remaining() int {
	return d.drawPile.Count()
}

func (d *Deck) DiscardCount() int {
	return d.discards.Count()
}

func (d *Deck) FullSize() int {
	return d.full.Count()
}

// Full exposes the full set for snapshots; callers must not reorder it.
func (d *Deck) Full() []*card.Card {
	return d.full
}

func (d *Deck) DrawPile() []*card.Card {
	return d.drawPile
}

func (d *Deck) Discards() []*card.Card {
	return d.discards
}
