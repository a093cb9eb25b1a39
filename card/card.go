package card

import (
	"fmt"

	"github.com/google/uuid"
)

// Card is a single playing card. Identity (ID/Suit/Rank) is fixed at
// construction; Enhancement/Edition/Seal are mutable in place. Decks and
// hands hold *Card so a modifier applied anywhere is visible everywhere.
type Card struct {
	ID          uuid.UUID
	Suit        Suit
	Rank        Rank
	Enhancement Enhancement
	Edition     Edition
	Seal        Seal
}

func New(suit Suit, rank Rank) *Card {
	return &Card{
		ID:      uuid.New(),
		Suit:    suit,
		Rank:    rank,
		Edition: EditionBase,
	}
}

// ChipValue 基础筹码值: 2-10 按点数, J/Q/K 为 10, A 为 11
func (c *Card) ChipValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

func (c *Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

func (c *Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// StandardSet builds the 52-card starting set, Spades through Diamonds,
// Two through Ace within each suit.
func StandardSet() []*Card {
	out := make([]*Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			out = append(out, New(s, r))
		}
	}
	return out
}
