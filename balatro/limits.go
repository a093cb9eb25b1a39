package balatro

// PlayLimits tracks the per-round hand and discard budget. Counters floor
// at zero; callers gate on the Has* accessors before acting.
type PlayLimits struct {
	Hands             int
	Discards          int
	HandsRemaining    int
	DiscardsRemaining int
}

const (
	DefaultHandsPerRound    = 4
	DefaultDiscardsPerRound = 3
)

func NewPlayLimits(hands, discards int) *PlayLimits {
	return &PlayLimits{
		Hands:             hands,
		Discards:          discards,
		HandsRemaining:    hands,
		DiscardsRemaining: discards,
	}
}

func (pl *PlayLimits) Reset() {
	pl.HandsRemaining = pl.Hands
	pl.DiscardsRemaining = pl.Discards
}

func (pl *PlayLimits) DecrementHands() {
	if pl.HandsRemaining > 0 {
		pl.HandsRemaining--
	}
}

func (pl *PlayLimits) DecrementDiscards() {
	if pl.DiscardsRemaining > 0 {
		pl.DiscardsRemaining--
	}
}

func (pl *PlayLimits) HasHandsRemaining() bool {
	return pl.HandsRemaining > 0
}

func (pl *PlayLimits) HasDiscardsRemaining() bool {
	return pl.DiscardsRemaining > 0
}
