package balatro

import (
	"testing"

	"balatro-lite/card"
)

func newTestRun(t *testing.T) *Run {
	t.Helper()
	r, err := NewRun(Config{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func giveHand(t *testing.T, r *Run, selected int, cs ...*card.Card) {
	t.Helper()
	r.hand.Clear()
	r.hand.Add(cs...)
	for i := 0; i < selected; i++ {
		if err := r.hand.Select(i); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScoreHighCardBaseline(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 1, card.New(card.Spades, card.Five))

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// Pluto level 1: 5 chips, 1 mult; plus the five's 5 chips.
	if res.Hand != HandHighCard || res.FinalScore != 10 {
		t.Fatalf("got %s %d, want high_card 10", res.Hand, res.FinalScore)
	}
}

func TestRedSealAndRetriggerJokerStack(t *testing.T) {
	r := newTestRun(t)
	c := card.New(card.Spades, card.Five)
	c.Seal = card.SealRed
	giveHand(t, r, 1, c)

	if _, err := r.AddJoker(&JokerDefinition{
		ID:     "encore",
		Effect: JokerEffect{Type: EffectConditional, Action: &JokerAction{Type: ActionRetrigger, Count: 1}},
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// 1 base + 1 red seal + 1 joker = 3 repetitions of 5 chips.
	if res.FinalScore != 20 {
		t.Fatalf("got %d, want 20", res.FinalScore)
	}
}

func TestEnhancementsAndEditions(t *testing.T) {
	tests := []struct {
		name string
		prep func(*card.Card)
		want int
	}{
		{"bonus", func(c *card.Card) { c.Enhancement = card.EnhancementBonus }, 40},
		{"mult", func(c *card.Card) { c.Enhancement = card.EnhancementMult }, 50},
		{"glass", func(c *card.Card) { c.Enhancement = card.EnhancementGlass }, 20},
		{"stone", func(c *card.Card) { c.Enhancement = card.EnhancementStone }, 60},
		{"foil", func(c *card.Card) { c.Edition = card.EditionFoil }, 60},
		{"holographic", func(c *card.Card) { c.Edition = card.EditionHolographic }, 110},
		{"polychrome", func(c *card.Card) { c.Edition = card.EditionPolychrome }, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(t)
			c := card.New(card.Spades, card.Five)
			tt.prep(c)
			giveHand(t, r, 1, c)

			res, err := r.scoreHand()
			if err != nil {
				t.Fatal(err)
			}
			if res.FinalScore != tt.want {
				t.Fatalf("got %d, want %d", res.FinalScore, tt.want)
			}
		})
	}
}

func TestGoldSealPaysMoney(t *testing.T) {
	r := newTestRun(t)
	c := card.New(card.Spades, card.Five)
	c.Seal = card.SealGold
	giveHand(t, r, 1, c)

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	if res.MoneyDelta != 3 {
		t.Fatalf("money delta: got %d, want 3", res.MoneyDelta)
	}
	if res.FinalScore != 10 {
		t.Fatalf("gold seal must not change the score: got %d", res.FinalScore)
	}
}

func TestNoFaceCardsJokerChecksPlayedCards(t *testing.T) {
	def := &JokerDefinition{
		ID: "ascetic",
		Effect: JokerEffect{
			Type:      EffectConditional,
			Condition: &JokerCondition{Type: CondNoFaceCards},
			Action:    &JokerAction{Type: ActionAddScore, Mult: 10},
		},
	}

	r := newTestRun(t)
	if _, err := r.AddJoker(def); err != nil {
		t.Fatal(err)
	}
	giveHand(t, r, 1, card.New(card.Spades, card.Five))
	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// Pluto level 1 gives 5+5 chips; the joker lifts mult from 1 to 11.
	if res.FinalScore != 110 {
		t.Fatalf("faceless hand: got %d, want 110", res.FinalScore)
	}

	r = newTestRun(t)
	if _, err := r.AddJoker(def); err != nil {
		t.Fatal(err)
	}
	giveHand(t, r, 1, card.New(card.Hearts, card.King))
	res, err = r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// 面牌在场时不触发
	if res.FinalScore != 15 {
		t.Fatalf("king played: got %d, want 15", res.FinalScore)
	}
}

func TestSteelHeldInHand(t *testing.T) {
	r := newTestRun(t)
	steel := card.New(card.Hearts, card.King)
	steel.Enhancement = card.EnhancementSteel
	giveHand(t, r, 1, card.New(card.Spades, card.Five), steel)

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// 10 chips * (1 * 1.5) = 15
	if res.FinalScore != 15 {
		t.Fatalf("got %d, want 15", res.FinalScore)
	}
}

// 加法和乘法小丑的顺序影响结果
func TestJokerOrderSensitivity(t *testing.T) {
	add := &JokerDefinition{ID: "add4", Effect: JokerEffect{Type: EffectScoring, Mult: 4}}
	mul := &JokerDefinition{ID: "x1.5", Effect: JokerEffect{Type: EffectScoring, MultMultiplier: 1.5}}

	score := func(first, second *JokerDefinition) int {
		r := newTestRun(t)
		giveHand(t, r, 1, card.New(card.Spades, card.Five))
		if _, err := r.AddJoker(first); err != nil {
			t.Fatal(err)
		}
		if _, err := r.AddJoker(second); err != nil {
			t.Fatal(err)
		}
		res, err := r.scoreHand()
		if err != nil {
			t.Fatal(err)
		}
		return res.FinalScore
	}

	// (1+4)*1.5 = 7.5 mult vs 1*1.5+4 = 5.5 mult, on 10 chips
	if got := score(add, mul); got != 75 {
		t.Fatalf("add-then-multiply: got %d, want 75", got)
	}
	if got := score(mul, add); got != 55 {
		t.Fatalf("multiply-then-add: got %d, want 55", got)
	}
}

func TestPerCardConditionalJoker(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 2,
		card.New(card.Hearts, card.Five),
		card.New(card.Hearts, card.Five))

	if _, err := r.AddJoker(&JokerDefinition{
		ID: "heart_lover",
		Effect: JokerEffect{
			Type:      EffectConditional,
			PerCard:   true,
			Condition: &JokerCondition{Type: CondSuitScored, Suit: card.Hearts},
			Action:    &JokerAction{Type: ActionAddScore, Mult: 4},
		},
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// pair 10/2 + 5 + 5 chips, mult 2+4+4 = 10
	if res.Hand != HandPair || res.FinalScore != 200 {
		t.Fatalf("got %s %d, want pair 200", res.Hand, res.FinalScore)
	}
}

func TestDynamicJokerScalesState(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 1, card.New(card.Spades, card.Five))

	if _, err := r.AddJoker(&JokerDefinition{
		ID:           "collector",
		InitialState: map[string]float64{"count": 3},
		Effect: JokerEffect{
			Type:           EffectDynamic,
			BaseEffect:     &JokerAction{Type: ActionAddScore},
			StateModifiers: []StateModifier{{Field: "count", Multiplier: 2}},
		},
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// 10 chips * (1 + 3*2) = 70
	if res.FinalScore != 70 {
		t.Fatalf("got %d, want 70", res.FinalScore)
	}
}

func TestCalculateJokerReadsRunState(t *testing.T) {
	r := newTestRun(t) // starts with $4
	giveHand(t, r, 1, card.New(card.Spades, card.Five))

	if _, err := r.AddJoker(&JokerDefinition{
		ID: "banker",
		Effect: JokerEffect{
			Type:       EffectCalculate,
			Formula:    "money",
			ResultType: "chips",
		},
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// (10 + 4) chips * 1 mult
	if res.FinalScore != 14 {
		t.Fatalf("got %d, want 14", res.FinalScore)
	}
}

func TestSpecialEffectRunsBeforeScoring(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 1, card.New(card.Spades, card.Five))

	r.RegisterSpecial("ascend_high_card", func(run *Run, j *Joker) error {
		return run.planets.Upgrade(HandHighCard)
	})
	if _, err := r.AddJoker(&JokerDefinition{
		ID:     "ascendant",
		Effect: JokerEffect{Type: EffectSpecial, SpecialType: "ascend_high_card"},
	}); err != nil {
		t.Fatal(err)
	}

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// Pluto level 2: 15 chips 2 mult; (15+5)*2 = 40
	if res.FinalScore != 40 {
		t.Fatalf("got %d, want 40", res.FinalScore)
	}
}

func TestUnregisteredSpecialIsSkipped(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 1, card.New(card.Spades, card.Five))
	if _, err := r.AddJoker(&JokerDefinition{
		ID:     "mystery",
		Effect: JokerEffect{Type: EffectSpecial, SpecialType: "unbound"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.scoreHand(); err != nil {
		t.Fatalf("unbound special should be a no-op, got %v", err)
	}
}

func TestDisabledJokerContributesNothing(t *testing.T) {
	r := newTestRun(t)
	giveHand(t, r, 1, card.New(card.Spades, card.Five))
	j, err := r.AddJoker(&JokerDefinition{ID: "big", Effect: JokerEffect{Type: EffectScoring, Chips: 100}})
	if err != nil {
		t.Fatal(err)
	}
	j.Disabled = true

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	if res.FinalScore != 10 {
		t.Fatalf("got %d, want 10", res.FinalScore)
	}
}

func TestFinalScoreRoundsHalfUp(t *testing.T) {
	r := newTestRun(t)
	c := card.New(card.Spades, card.Four)
	c.Edition = card.EditionPolychrome
	giveHand(t, r, 1, c)

	res, err := r.scoreHand()
	if err != nil {
		t.Fatal(err)
	}
	// 9 chips * 1.5 mult = 13.5 -> 14
	if res.FinalScore != 14 {
		t.Fatalf("got %d, want 14", res.FinalScore)
	}
}
