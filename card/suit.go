package card

import "fmt"

type Suit byte

const (
	Spades Suit = iota // ♠️
	Hearts             // ♥️
	Clubs              // ♣️
	Diamonds           // ♦️
)

// Suits in a fixed iteration order. Detection and deck construction must
// never range over a map of suits; use this slice.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠️"
	case Hearts:
		return "♥️"
	case Clubs:
		return "♣️"
	case Diamonds:
		return "♦️"
	}
	return "?"
}

// ParseSuit converts a lowercase suit name ("hearts") to a Suit.
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "clubs":
		return Clubs, nil
	case "diamonds":
		return Diamonds, nil
	}
	return 0, fmt.Errorf("invalid suit: %q", s)
}
