package card

import "testing"

func TestChipValue_FaceCardsAndAce(t *testing.T) {
	cases := []struct {
		rank Rank
		want int
	}{
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}
	for _, tc := range cases {
		c := New(Spades, tc.rank)
		if got := c.ChipValue(); got != tc.want {
			t.Fatalf("ChipValue(%s) = %d, want %d", tc.rank, got, tc.want)
		}
	}
}

func TestStandardSet_52UniqueCards(t *testing.T) {
	set := StandardSet()
	if len(set) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(set))
	}
	seen := make(map[string]bool, 52)
	ids := make(map[string]bool, 52)
	for _, c := range set {
		key := c.String()
		if seen[key] {
			t.Fatalf("duplicate card %s", key)
		}
		seen[key] = true
		if ids[c.ID.String()] {
			t.Fatalf("duplicate card id %s", c.ID)
		}
		ids[c.ID.String()] = true
		if c.Edition != EditionBase {
			t.Fatalf("new card should start at base edition, got %s", c.Edition)
		}
	}
}

func TestSharedMutation_VisibleThroughAllHolders(t *testing.T) {
	c := New(Hearts, King)
	var hand CardList
	hand.Add(c)

	c.Enhancement = EnhancementGlass
	c.Seal = SealRed

	if hand[0].Enhancement != EnhancementGlass || hand[0].Seal != SealRed {
		t.Fatalf("modifier mutation not visible through list holder")
	}
}

func TestParseSuitAndRank(t *testing.T) {
	s, err := ParseSuit("diamonds")
	if err != nil || s != Diamonds {
		t.Fatalf("ParseSuit(diamonds) = %v, %v", s, err)
	}
	if _, err := ParseSuit("stars"); err == nil {
		t.Fatalf("expected error for unknown suit")
	}
	r, err := ParseRank("queen")
	if err != nil || r != Queen {
		t.Fatalf("ParseRank(queen) = %v, %v", r, err)
	}
	if _, err := ParseRank("one"); err == nil {
		t.Fatalf("expected error for unknown rank")
	}
}
