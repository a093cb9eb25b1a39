package balatro

// StakeLevel 赌注等级
type StakeLevel byte

const (
	StakeWhite StakeLevel = iota
	StakeRed
	StakeGreen
	StakeBlue
	StakeBlack
	StakePurple
	StakeOrange
	StakeGold
)

var stakeNames = map[StakeLevel]string{
	StakeWhite:  "white",
	StakeRed:    "red",
	StakeGreen:  "green",
	StakeBlue:   "blue",
	StakeBlack:  "black",
	StakePurple: "purple",
	StakeOrange: "orange",
	StakeGold:   "gold",
}

func (s StakeLevel) String() string {
	if n, ok := stakeNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseStakeLevel converts a lowercase stake name ("white") to a StakeLevel.
func ParseStakeLevel(name string) (StakeLevel, error) {
	for level, n := range stakeNames {
		if n == name {
			return level, nil
		}
	}
	return 0, ErrConfiguration("unknown stake level: " + name)
}

// StakeModifiers scale difficulty. Zero-value multipliers are invalid;
// build stakes through NewStake or the catalogue.
type StakeModifiers struct {
	BlindScoreMultiplier  float64
	MoneyRewardMultiplier float64
	HandsPerRoundBonus    int
	DiscardsPerRoundBonus int
	StartingMoneyModifier int
}

type Stake struct {
	Level     StakeLevel
	Name      string
	Modifiers StakeModifiers
}

func defaultStakeModifiers() StakeModifiers {
	return StakeModifiers{BlindScoreMultiplier: 1.0, MoneyRewardMultiplier: 1.0}
}

func NewStake(level StakeLevel) Stake {
	m := defaultStakeModifiers()
	switch level {
	case StakeRed:
		m.BlindScoreMultiplier = 1.1
	case StakeGreen:
		m.MoneyRewardMultiplier = 0.9
	case StakeBlue:
		m.BlindScoreMultiplier = 1.2
	case StakeBlack:
		m.MoneyRewardMultiplier = 0.75
	case StakePurple:
		m.BlindScoreMultiplier = 1.35
		m.DiscardsPerRoundBonus = -1
	case StakeOrange:
		m.BlindScoreMultiplier = 1.5
		m.HandsPerRoundBonus = -1
	case StakeGold:
		m.BlindScoreMultiplier = 1.7
		m.MoneyRewardMultiplier = 0.75
		m.StartingMoneyModifier = -2
	}
	return Stake{Level: level, Name: level.String(), Modifiers: m}
}

// baseAnteScores is the required-score table by ante, before blind and
// stake multipliers. Antes past the table double the last entry.
var baseAnteScores = []int{100, 300, 800, 2000, 5000, 11000, 20000, 35000, 50000}

func baseAnteScore(ante int) int {
	if ante < 1 {
		ante = 1
	}
	if ante <= len(baseAnteScores) {
		return baseAnteScores[ante-1]
	}
	score := baseAnteScores[len(baseAnteScores)-1]
	for i := len(baseAnteScores); i < ante; i++ {
		score *= 2
	}
	return score
}

// RequiredScore computes the target for one blind of the given ante under
// this stake.
func (s Stake) RequiredScore(ante int, blind BlindType) int {
	base := float64(baseAnteScore(ante)) * s.Modifiers.BlindScoreMultiplier
	return int(base * blind.scoreFactor())
}
