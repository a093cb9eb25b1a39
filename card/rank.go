package card

import "fmt"

// Rank 2..14, Ace high (14). The numeric value is the sort order, not the
// chip value; see Card.ChipValue.
type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack  // 11
	Queen // 12
	King  // 13
	Ace   // 14
)

// Ranks in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case Ten:
		return "T"
	default:
		return fmt.Sprintf("%d", byte(r))
	}
}

// ParseRank converts a lowercase rank name ("jack") to a Rank.
func ParseRank(s string) (Rank, error) {
	names := map[string]Rank{
		"two": Two, "three": Three, "four": Four, "five": Five,
		"six": Six, "seven": Seven, "eight": Eight, "nine": Nine,
		"ten": Ten, "jack": Jack, "queen": Queen, "king": King, "ace": Ace,
	}
	if r, ok := names[s]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("invalid rank: %q", s)
}
