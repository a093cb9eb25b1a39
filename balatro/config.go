package balatro

import (
	"fmt"

	"go.uber.org/zap"
)

type Config struct {
	// Seed drives every named stream. Zero is a valid seed, not a request
	// for a random one.
	Seed int64

	HandSize         int
	HandsPerRound    int
	DiscardsPerRound int
	StartingMoney    int
	MaxJokers        int

	Stake StakeLevel

	// Planets overrides the default planet table when non-nil.
	Planets []PlanetDefinition

	// Logger is optional; nil means no logging.
	Logger *zap.Logger
}

const (
	DefaultHandSize      = 8
	DefaultStartingMoney = 4
	DefaultMaxJokers     = 5
)

func (c *Config) applyDefaults() {
	if c.HandSize == 0 {
		c.HandSize = DefaultHandSize
	}
	if c.HandsPerRound == 0 {
		c.HandsPerRound = DefaultHandsPerRound
	}
	if c.DiscardsPerRound == 0 {
		c.DiscardsPerRound = DefaultDiscardsPerRound
	}
	if c.StartingMoney == 0 {
		c.StartingMoney = DefaultStartingMoney
	}
	if c.MaxJokers == 0 {
		c.MaxJokers = DefaultMaxJokers
	}
}

func (c Config) validate() error {
	if c.HandSize <= 0 {
		return ErrConfiguration("HandSize must be > 0")
	}
	if c.HandsPerRound <= 0 {
		return ErrConfiguration("HandsPerRound must be > 0")
	}
	if c.DiscardsPerRound < 0 {
		return ErrConfiguration("DiscardsPerRound must be >= 0")
	}
	if c.MaxJokers <= 0 {
		return ErrConfiguration("MaxJokers must be > 0")
	}
	if _, ok := stakeNames[c.Stake]; !ok {
		return ErrConfiguration(fmt.Sprintf("unknown stake level %d", c.Stake))
	}
	return nil
}
