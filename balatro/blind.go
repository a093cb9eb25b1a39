package balatro

// BlindType 盲注类型
type BlindType byte

const (
	BlindSmall BlindType = iota
	BlindBig
	BlindBoss
)

func (b BlindType) String() string {
	switch b {
	case BlindSmall:
		return "small"
	case BlindBig:
		return "big"
	case BlindBoss:
		return "boss"
	}
	return "unknown"
}

func (b BlindType) scoreFactor() float64 {
	switch b {
	case BlindBig:
		return 1.5
	case BlindBoss:
		return 2.0
	default:
		return 1.0
	}
}

type BlindStatus byte

const (
	BlindUpcoming BlindStatus = iota
	BlindActive
	BlindComplete
	BlindSkipped
)

type Blind struct {
	Name          string
	Type          BlindType
	RequiredScore int
	RewardMoney   int
	Status        BlindStatus
}

// CanSkip: only small and big blinds are skippable.
func (b *Blind) CanSkip() bool {
	return b.Type == BlindSmall || b.Type == BlindBig
}

// UpcomingBlinds holds the three blinds of one ante.
type UpcomingBlinds struct {
	Small Blind
	Big   Blind
	Boss  Blind
}

var blindRewards = map[BlindType]int{
	BlindSmall: 3,
	BlindBig:   4,
	BlindBoss:  5,
}

// NewUpcomingBlinds builds the ante's blinds from the stake's required
// score table.
func NewUpcomingBlinds(ante int, stake Stake) *UpcomingBlinds {
	mk := func(name string, bt BlindType) Blind {
		reward := float64(blindRewards[bt]) * stake.Modifiers.MoneyRewardMultiplier
		return Blind{
			Name:          name,
			Type:          bt,
			RequiredScore: stake.RequiredScore(ante, bt),
			RewardMoney:   int(reward),
			Status:        BlindUpcoming,
		}
	}
	return &UpcomingBlinds{
		Small: mk("Small Blind", BlindSmall),
		Big:   mk("Big Blind", BlindBig),
		Boss:  mk("Boss Blind", BlindBoss),
	}
}

// Next returns the first blind still upcoming, or nil once the ante is done.
func (ub *UpcomingBlinds) Next() *Blind {
	for _, b := range []*Blind{&ub.Small, &ub.Big, &ub.Boss} {
		if b.Status == BlindUpcoming {
			return b
		}
	}
	return nil
}

// Active returns the blind currently being played, if any.
func (ub *UpcomingBlinds) Active() *Blind {
	for _, b := range []*Blind{&ub.Small, &ub.Big, &ub.Boss} {
		if b.Status == BlindActive {
			return b
		}
	}
	return nil
}
