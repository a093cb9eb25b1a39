package balatro

import "testing"

func TestRequiredScoreScaling(t *testing.T) {
	white := NewStake(StakeWhite)

	if got := white.RequiredScore(1, BlindSmall); got != 100 {
		t.Fatalf("ante 1 small: got %d, want 100", got)
	}
	if got := white.RequiredScore(1, BlindBig); got != 150 {
		t.Fatalf("ante 1 big: got %d, want 150", got)
	}
	if got := white.RequiredScore(1, BlindBoss); got != 200 {
		t.Fatalf("ante 1 boss: got %d, want 200", got)
	}
	if got := white.RequiredScore(2, BlindSmall); got != 300 {
		t.Fatalf("ante 2 small: got %d, want 300", got)
	}
	// antes past the table double the last entry
	if got := white.RequiredScore(10, BlindSmall); got != 100000 {
		t.Fatalf("ante 10 small: got %d, want 100000", got)
	}
}

func TestStakeModifiers(t *testing.T) {
	gold := NewStake(StakeGold)
	if gold.Modifiers.BlindScoreMultiplier <= 1 {
		t.Fatal("gold stake must raise blind targets")
	}
	if gold.Modifiers.StartingMoneyModifier >= 0 {
		t.Fatal("gold stake must cut starting money")
	}

	orange := NewStake(StakeOrange)
	r, err := NewRun(Config{Seed: 1, Stake: StakeOrange})
	if err != nil {
		t.Fatal(err)
	}
	if r.HandsRemaining() != DefaultHandsPerRound+orange.Modifiers.HandsPerRoundBonus {
		t.Fatalf("hands: got %d", r.HandsRemaining())
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := NewRun(Config{Seed: 1, HandSize: -1}); err == nil {
		t.Fatal("negative hand size accepted")
	}
	if _, err := NewRun(Config{Seed: 1, Stake: StakeLevel(99)}); err == nil {
		t.Fatal("unknown stake accepted")
	}
	if _, err := NewRun(Config{Seed: 1, DiscardsPerRound: -2}); err == nil {
		t.Fatal("negative discards accepted")
	}
}
