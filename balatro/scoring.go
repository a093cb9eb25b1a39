package balatro

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"balatro-lite/card"
)

// HandScore is the transient accumulator threaded through the pipeline.
// Chips stay integral; mult carries the fractional factors (glass,
// polychrome, steel). Nothing rounds until Final.
type HandScore struct {
	Chips int
	Mult  float64
}

func (h HandScore) Final() int {
	return int(math.Round(float64(h.Chips) * h.Mult))
}

// PlayResult is the outcome of scoring one played hand. MoneyDelta is the
// side-channel money (gold seals etc.), not part of the score.
type PlayResult struct {
	Hand         HandType
	ScoringCards []*card.Card
	Score        HandScore
	FinalScore   int
	MoneyDelta   int
}

// SpecialEffectFunc is the interpreter for one opaque special-effect id.
// It runs in phase 1 and may mutate ambient run state, never the score.
type SpecialEffectFunc func(r *Run, j *Joker) error

// scoreHand runs the four phases over the current selection. It reads run
// state and joker state but mutates neither; money lands in the result's
// MoneyDelta for the caller to commit. Phase 1 specials are the one
// sanctioned exception and run before anything is evaluated.
func (r *Run) scoreHand() (*PlayResult, error) {
	selected := r.hand.SelectedCards()
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}

	// Phase 1: pre-scoring. Registered specials may transform ambient
	// state (card modifiers, planet levels) before evaluation.
	for _, j := range r.jokers {
		if j.Disabled || j.Def.Effect.Type != EffectSpecial {
			continue
		}
		fn, ok := r.specials[j.Def.Effect.SpecialType]
		if !ok {
			continue
		}
		if err := fn(r, j); err != nil {
			return nil, err
		}
	}

	// Phase 2: played-hand scoring.
	handType, scoringCards, ok := DetectHand(selected)
	if !ok {
		// High card is the universal fallback; reaching this is a broken
		// invariant, not a user error.
		panic("detector returned no hand for a non-empty selection")
	}
	planet, ok := r.planets.Get(handType)
	if !ok {
		return nil, ErrInvalidState(fmt.Sprintf("no planet for hand type %s", handType))
	}
	score := planet.BaseScore()

	moneyDelta := 0
	for _, c := range r.inHandOrder(scoringCards) {
		reps := 1 + r.retriggersFor(c)
		for rep := 0; rep < reps; rep++ {
			var err error
			score, err = r.scoreCard(c, handType, len(selected), score, &moneyDelta)
			if err != nil {
				return nil, err
			}
		}
	}

	// Phase 3: effects in hand, unselected cards left to right.
	for _, c := range r.hand.UnselectedCards() {
		reps := 1 + r.retriggersFor(c)
		for rep := 0; rep < reps; rep++ {
			var err error
			score, err = r.scoreHeldCard(c, handType, len(selected), score)
			if err != nil {
				return nil, err
			}
		}
	}

	// Phase 4: whole-hand joker effects, acquisition order.
	for _, j := range r.jokers {
		if j.Disabled || j.Def.Effect.PerCard {
			continue
		}
		delta, err := r.wholeHandDelta(j, handType, selected)
		if err != nil {
			return nil, err
		}
		score = delta.applyTo(score)
	}

	return &PlayResult{
		Hand:         handType,
		ScoringCards: scoringCards,
		Score:        score,
		FinalScore:   score.Final(),
		MoneyDelta:   moneyDelta,
	}, nil
}

// scoreCard applies the per-repetition chain (a)-(e) for one scoring card.
// Order is load-bearing: base chips, enhancement, edition, per-card jokers,
// then the gold seal payout.
func (r *Run) scoreCard(c *card.Card, handType HandType, selectedCount int, score HandScore, moneyDelta *int) (HandScore, error) {
	// (a) base chips
	score.Chips += c.ChipValue()

	// (b) enhancement
	switch c.Enhancement {
	case card.EnhancementBonus:
		score.Chips += 30
	case card.EnhancementMult:
		score.Mult += 4
	case card.EnhancementGlass:
		score.Mult *= 2
	case card.EnhancementStone:
		score.Chips += 50
	case card.EnhancementSteel, card.EnhancementWild, card.EnhancementGold, card.EnhancementLucky:
		// no played-card scoring contribution
	}

	// (c) edition
	switch c.Edition {
	case card.EditionFoil:
		score.Chips += 50
	case card.EditionHolographic:
		score.Mult += 10
	case card.EditionPolychrome:
		score.Mult *= 1.5
	}

	// (d) per-card joker effects
	for _, j := range r.jokers {
		eff := &j.Def.Effect
		if j.Disabled || eff.Type != EffectConditional || !eff.PerCard || eff.InHand {
			continue
		}
		ctx := condCtx{card: c, hand: handType, handSize: selectedCount, state: j.State}
		if !eff.Condition.eval(ctx) {
			continue
		}
		delta, err := eff.Action.delta(r.formulaCtx(j, selectedCount))
		if err != nil {
			return score, err
		}
		score = delta.applyTo(score)
	}

	// (e) gold seal
	if c.Seal == card.SealGold {
		*moneyDelta += 3
	}

	return score, nil
}

// scoreHeldCard applies the held-card chain for one unselected card: steel,
// then held-context per-card jokers.
func (r *Run) scoreHeldCard(c *card.Card, handType HandType, selectedCount int, score HandScore) (HandScore, error) {
	if c.Enhancement == card.EnhancementSteel {
		score.Mult *= 1.5
	}
	for _, j := range r.jokers {
		eff := &j.Def.Effect
		if j.Disabled || eff.Type != EffectConditional || !eff.PerCard || !eff.InHand {
			continue
		}
		ctx := condCtx{card: c, hand: handType, handSize: selectedCount, state: j.State}
		if !eff.Condition.eval(ctx) {
			continue
		}
		delta, err := eff.Action.delta(r.formulaCtx(j, selectedCount))
		if err != nil {
			return score, err
		}
		score = delta.applyTo(score)
	}
	return score, nil
}

// retriggersFor counts extra repetitions for one card: one for a red seal,
// plus every retrigger joker's count.
func (r *Run) retriggersFor(c *card.Card) int {
	count := 0
	if c.Seal == card.SealRed {
		count++
	}
	for _, j := range r.jokers {
		count += j.retriggerCount()
	}
	return count
}

// wholeHandDelta interprets one non-per-card joker for phase 4. The switch
// is exhaustive over the closed effect kinds.
func (r *Run) wholeHandDelta(j *Joker, handType HandType, selected []*card.Card) (effectDelta, error) {
	eff := &j.Def.Effect
	fctx := r.formulaCtx(j, len(selected))
	switch eff.Type {
	case EffectScoring:
		return effectDelta{chips: eff.Chips, mult: eff.Mult, multMul: eff.MultMultiplier}, nil
	case EffectConditional:
		ctx := condCtx{played: selected, hand: handType, handSize: len(selected), state: j.State}
		if !eff.Condition.eval(ctx) {
			return effectDelta{}, nil
		}
		return eff.Action.delta(fctx)
	case EffectDynamic:
		return dynamicDelta(eff, j.State, fctx)
	case EffectCalculate:
		return formulaDelta(eff.Formula, eff.ResultType, fctx)
	case EffectSpecial:
		// specials act in phase 1 only
		return effectDelta{}, nil
	}
	return effectDelta{}, nil
}

// dynamicDelta folds the state modifiers into the base effect's axis: a
// chip base scales state into chips, a mult base into mult.
func dynamicDelta(eff *JokerEffect, state map[string]float64, fctx formulaCtx) (effectDelta, error) {
	delta, err := eff.BaseEffect.delta(fctx)
	if err != nil {
		return effectDelta{}, err
	}
	for _, mod := range eff.StateModifiers {
		contribution := state[mod.Field] * mod.Multiplier
		if delta.chips != 0 {
			delta.chips += int(contribution)
		} else {
			delta.mult += contribution
		}
	}
	return delta, nil
}

func (r *Run) formulaCtx(j *Joker, selectedCount int) formulaCtx {
	return formulaCtx{
		state:             j.State,
		money:             float64(r.money),
		handsRemaining:    float64(r.limits.HandsRemaining),
		discardsRemaining: float64(r.limits.DiscardsRemaining),
		selectedCount:     float64(selectedCount),
	}
}

// inHandOrder reorders the scoring subset to match hand order, which is the
// order phase 2 walks cards in.
func (r *Run) inHandOrder(scoring []*card.Card) []*card.Card {
	ids := make(map[uuid.UUID]bool, len(scoring))
	for _, c := range scoring {
		ids[c.ID] = true
	}
	out := make([]*card.Card, 0, len(scoring))
	for _, c := range r.hand.Cards() {
		if ids[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
