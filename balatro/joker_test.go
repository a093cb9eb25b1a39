package balatro

import (
	"testing"

	"balatro-lite/card"
)

func TestConditionEval(t *testing.T) {
	heartK := card.New(card.Hearts, card.King)
	club2 := card.New(card.Clubs, card.Two)

	tests := []struct {
		name string
		cond *JokerCondition
		ctx  condCtx
		want bool
	}{
		{"nil always fires", nil, condCtx{}, true},
		{"any", &JokerCondition{Type: CondAny}, condCtx{}, true},
		{"hand type hit", &JokerCondition{Type: CondHandType, Hand: HandFlush}, condCtx{hand: HandFlush}, true},
		{"hand type miss", &JokerCondition{Type: CondHandType, Hand: HandFlush}, condCtx{hand: HandPair}, false},
		{"suit hit", &JokerCondition{Type: CondSuitScored, Suit: card.Hearts}, condCtx{card: heartK}, true},
		{"suit no card", &JokerCondition{Type: CondSuitScored, Suit: card.Hearts}, condCtx{}, false},
		{"rank hit", &JokerCondition{Type: CondRankScored, Rank: card.King}, condCtx{card: heartK}, true},
		{"face hit", &JokerCondition{Type: CondFaceCardScored}, condCtx{card: heartK}, true},
		{"face miss", &JokerCondition{Type: CondFaceCardScored}, condCtx{card: club2}, false},
		{"no face hit", &JokerCondition{Type: CondNoFaceCards}, condCtx{card: club2}, true},
		{"no face miss", &JokerCondition{Type: CondNoFaceCards}, condCtx{card: heartK}, false},
		{"no face whole hand hit", &JokerCondition{Type: CondNoFaceCards},
			condCtx{played: []*card.Card{club2, card.New(card.Spades, card.Nine)}}, true},
		{"no face whole hand miss", &JokerCondition{Type: CondNoFaceCards},
			condCtx{played: []*card.Card{club2, heartK}}, false},
		{"state ge", &JokerCondition{Type: CondStateValue, Field: "n", Operator: "ge", Value: 3},
			condCtx{state: map[string]float64{"n": 3}}, true},
		{"hand size le", &JokerCondition{Type: CondHandSize, Operator: "le", Size: 3},
			condCtx{handSize: 2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cond.eval(tt.ctx); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalFormula(t *testing.T) {
	ctx := formulaCtx{
		state:             map[string]float64{"count": 4},
		money:             20,
		handsRemaining:    3,
		discardsRemaining: 2,
		selectedCount:     5,
	}

	tests := []struct {
		formula string
		want    float64
	}{
		{"money / 5", 4},
		{"state.count * 2", 8},
		{"1 + hands_remaining", 4},
		{"discards_remaining + selected_count", 7},
		{"10 - 2 * 3", 24}, // flat left-to-right, no precedence
	}
	for _, tt := range tests {
		got, err := evalFormula(tt.formula, ctx)
		if err != nil {
			t.Fatalf("%q: %v", tt.formula, err)
		}
		if got != tt.want {
			t.Fatalf("%q: got %v, want %v", tt.formula, got, tt.want)
		}
	}
}

func TestEvalFormulaErrors(t *testing.T) {
	for _, formula := range []string{"", "1 +", "1 ? 2", "1 / 0", "bogus"} {
		if _, err := evalFormula(formula, formulaCtx{}); err == nil {
			t.Fatalf("%q should fail", formula)
		}
	}
}

func TestValidateFormula(t *testing.T) {
	for _, formula := range []string{"money", "state.n * 2", "discards_remaining * 30", "10 - 2 * 3"} {
		if err := ValidateFormula(formula); err != nil {
			t.Fatalf("%q should validate: %v", formula, err)
		}
	}
	for _, formula := range []string{"", "money +", "1 ? 2", "bogus_name * 2"} {
		if err := ValidateFormula(formula); err == nil {
			t.Fatalf("%q should be rejected", formula)
		}
	}
}

func TestJokerStateIsolation(t *testing.T) {
	def := &JokerDefinition{ID: "counter", InitialState: map[string]float64{"n": 0}}
	a := NewJoker(def)
	b := NewJoker(def)

	a.applyBehavior(&BehaviorOp{Field: "n", Operation: "increment", Value: 2})
	if a.State["n"] != 2 || b.State["n"] != 0 {
		t.Fatalf("instances share state: a=%v b=%v", a.State["n"], b.State["n"])
	}

	a.applyBehavior(&BehaviorOp{Field: "n", Operation: "reset"})
	if a.State["n"] != 0 {
		t.Fatalf("reset: got %v, want initial 0", a.State["n"])
	}
	a.applyBehavior(&BehaviorOp{Field: "n", Operation: "set", Value: 7})
	if a.State["n"] != 7 {
		t.Fatalf("set: got %v, want 7", a.State["n"])
	}
}

func TestPerishableDisablesAfterFiveRounds(t *testing.T) {
	j := NewJoker(&JokerDefinition{ID: "p"})
	j.Stickers[StickerPerishable] = true
	for i := 0; i < 4; i++ {
		j.endRound()
		if j.Disabled {
			t.Fatalf("disabled after %d rounds", i+1)
		}
	}
	j.endRound()
	if !j.Disabled {
		t.Fatal("perishable joker should be disabled after 5 rounds")
	}
}

func TestRentalFee(t *testing.T) {
	j := NewJoker(&JokerDefinition{ID: "r"})
	j.Stickers[StickerRental] = true
	if fee := j.endRound(); fee != 3 {
		t.Fatalf("rental fee: got %d, want 3", fee)
	}
}

func TestSellValueByRarity(t *testing.T) {
	want := map[JokerRarity]int{
		RarityCommon: 3, RarityUncommon: 4, RarityRare: 5, RarityLegendary: 6,
	}
	for rarity, v := range want {
		j := NewJoker(&JokerDefinition{ID: "x", Rarity: rarity})
		if got := j.SellValue(); got != v {
			t.Fatalf("%s: got %d, want %d", rarity, got, v)
		}
	}
}

func TestRetriggerCount(t *testing.T) {
	j := NewJoker(&JokerDefinition{
		ID:     "rt",
		Effect: JokerEffect{Type: EffectConditional, Action: &JokerAction{Type: ActionRetrigger, Count: 2}},
	})
	if got := j.retriggerCount(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	j.Disabled = true
	if got := j.retriggerCount(); got != 0 {
		t.Fatalf("disabled joker retriggers: got %d, want 0", got)
	}

	def := NewJoker(&JokerDefinition{
		ID:     "rt1",
		Effect: JokerEffect{Type: EffectConditional, Action: &JokerAction{Type: ActionRetrigger}},
	})
	if got := def.retriggerCount(); got != 1 {
		t.Fatalf("default count: got %d, want 1", got)
	}
}

func TestEffectDeltaAddsBeforeMultiplying(t *testing.T) {
	score := HandScore{Chips: 10, Mult: 2}
	got := effectDelta{chips: 5, mult: 3, multMul: 2}.applyTo(score)
	if got.Chips != 15 || got.Mult != 10 {
		t.Fatalf("got %d/%v, want 15/10", got.Chips, got.Mult)
	}
}
