package balatro

import (
	"sort"

	"balatro-lite/card"
)

// HandType 手牌类型，按稀有度升序编号
type HandType byte

const (
	HandHighCard HandType = iota + 1
	HandPair
	HandTwoPair
	HandThreeOfKind
	HandStraight
	HandFlush
	HandFullHouse
	HandFourOfKind
	HandStraightFlush
	HandFiveOfKind
	HandFlushHouse
	HandFlushFive
)

var HandTypeDictionary = map[HandType]string{
	HandHighCard:      "high_card",
	HandPair:          "pair",
	HandTwoPair:       "two_pair",
	HandThreeOfKind:   "three_of_a_kind",
	HandStraight:      "straight",
	HandFlush:         "flush",
	HandFullHouse:     "full_house",
	HandFourOfKind:    "four_of_a_kind",
	HandStraightFlush: "straight_flush",
	HandFiveOfKind:    "five_of_a_kind",
	HandFlushHouse:    "flush_house",
	HandFlushFive:     "flush_five",
}

func (ht HandType) String() string {
	if s, ok := HandTypeDictionary[ht]; ok {
		return s
	}
	return "unknown"
}

// ParseHandType converts a snake_case hand name ("full_house") to a HandType.
func ParseHandType(name string) (HandType, error) {
	for ht, s := range HandTypeDictionary {
		if s == name {
			return ht, nil
		}
	}
	return 0, ErrConfiguration("unknown hand type: " + name)
}

// HandTypes lists every detectable type, commonest first.
var HandTypes = []HandType{
	HandHighCard, HandPair, HandTwoPair, HandThreeOfKind, HandStraight,
	HandFlush, HandFullHouse, HandFourOfKind, HandStraightFlush,
	HandFiveOfKind, HandFlushHouse, HandFlushFive,
}

// Flush subset policy: all suited cards score, not just five. Flip to false
// for the best-five variant.
const flushScoresAllSuited = true

// DetectHand classifies the best poker hand formed by the given cards and
// returns the minimal subset that scores. Composite hands are checked
// before their components (flush five before five of a kind, and so on), so
// the first match is the rarest. A non-empty input always matches: high
// card is the universal fallback.
func DetectHand(cards []*card.Card) (HandType, []*card.Card, bool) {
	if len(cards) == 0 {
		return 0, nil, false
	}

	byRank := groupByRank(cards)
	bySuit := groupBySuit(cards)
	flushCards := flushGroup(bySuit)

	// Flush five: five of a kind that is also a flush.
	if best := rankGroupAtLeast(byRank, 5); best != nil && flushCards != nil {
		return HandFlushFive, append([]*card.Card{}, cards...), true
	}

	// Flush house: full house that is also a flush.
	if trips, pair := fullHouseGroups(byRank); trips != nil && pair != nil && flushCards != nil {
		return HandFlushHouse, append([]*card.Card{}, cards...), true
	}

	if best := rankGroupAtLeast(byRank, 5); best != nil {
		return HandFiveOfKind, best, true
	}

	if flushCards != nil {
		if run := findStraightRun(flushCards); run != nil {
			return HandStraightFlush, run, true
		}
	}

	if quad := rankGroupExactly(byRank, 4); quad != nil {
		return HandFourOfKind, quad, true
	}

	if trips, pair := fullHouseGroups(byRank); trips != nil && pair != nil {
		return HandFullHouse, append(trips, pair...), true
	}

	if flushCards != nil {
		scoring := flushCards
		if !flushScoresAllSuited && len(scoring) > 5 {
			scoring = highestN(scoring, 5)
		}
		return HandFlush, scoring, true
	}

	if run := findStraightRun(cards); run != nil {
		return HandStraight, run, true
	}

	if trips := rankGroupExactly(byRank, 3); trips != nil {
		return HandThreeOfKind, trips, true
	}

	if pairs := pairGroups(byRank); len(pairs) >= 2 {
		return HandTwoPair, append(pairs[0], pairs[1]...), true
	}

	if pairs := pairGroups(byRank); len(pairs) == 1 {
		return HandPair, pairs[0], true
	}

	return HandHighCard, []*card.Card{highestCard(cards)}, true
}

func groupByRank(cards []*card.Card) map[card.Rank][]*card.Card {
	groups := make(map[card.Rank][]*card.Card)
	for _, c := range cards {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	return groups
}

func groupBySuit(cards []*card.Card) map[card.Suit][]*card.Card {
	groups := make(map[card.Suit][]*card.Card)
	for _, c := range cards {
		groups[c.Suit] = append(groups[c.Suit], c)
	}
	return groups
}

// flushGroup returns the cards of the first suit holding five or more, in
// fixed suit order so ties resolve deterministically.
func flushGroup(bySuit map[card.Suit][]*card.Card) []*card.Card {
	for _, s := range card.Suits {
		if len(bySuit[s]) >= 5 {
			return bySuit[s]
		}
	}
	return nil
}

// rankGroupAtLeast returns the highest-rank group of at least n cards.
func rankGroupAtLeast(byRank map[card.Rank][]*card.Card, n int) []*card.Card {
	var best []*card.Card
	var bestRank card.Rank
	for rank, group := range byRank {
		if len(group) >= n && (best == nil || rank > bestRank) {
			best, bestRank = group, rank
		}
	}
	return best
}

// rankGroupExactly returns the highest-rank group of exactly n cards.
func rankGroupExactly(byRank map[card.Rank][]*card.Card, n int) []*card.Card {
	var best []*card.Card
	var bestRank card.Rank
	for rank, group := range byRank {
		if len(group) == n && (best == nil || rank > bestRank) {
			best, bestRank = group, rank
		}
	}
	return best
}

// fullHouseGroups picks the highest triple plus the highest separate pair
// (two cards of a second triple also qualify as the pair).
func fullHouseGroups(byRank map[card.Rank][]*card.Card) (trips, pair []*card.Card) {
	var tripRank card.Rank
	for rank, group := range byRank {
		if len(group) == 3 && (trips == nil || rank > tripRank) {
			trips, tripRank = group, rank
		}
	}
	if trips == nil {
		return nil, nil
	}
	var pairRank card.Rank
	for rank, group := range byRank {
		if rank == tripRank || len(group) < 2 {
			continue
		}
		if pair == nil || rank > pairRank {
			pair, pairRank = group[:2], rank
		}
	}
	return trips, pair
}

// pairGroups returns all exact pairs, highest rank first.
func pairGroups(byRank map[card.Rank][]*card.Card) [][]*card.Card {
	var pairs [][]*card.Card
	for _, group := range byRank {
		if len(group) == 2 {
			pairs = append(pairs, group)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i][0].Rank > pairs[j][0].Rank
	})
	return pairs
}

// findStraightRun looks for five consecutive distinct ranks, Ace high only,
// no wraparound. With more than five consecutive ranks the highest-starting
// window wins; one card per rank, first occurrence in hand order.
func findStraightRun(cards []*card.Card) []*card.Card {
	byRank := groupByRank(cards)
	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, int(r))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	for start := 0; start+5 <= len(ranks); start++ {
		ok := true
		for i := 1; i < 5; i++ {
			if ranks[start+i] != ranks[start]-i {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		run := make([]*card.Card, 0, 5)
		for i := 0; i < 5; i++ {
			run = append(run, byRank[card.Rank(ranks[start+i])][0])
		}
		return run
	}
	return nil
}

func highestN(cards []*card.Card, n int) []*card.Card {
	sorted := append([]*card.Card{}, cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank > sorted[j].Rank
	})
	return sorted[:n]
}

func highestCard(cards []*card.Card) *card.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}
