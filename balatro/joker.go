package balatro

import (
	"fmt"
	"strconv"
	"strings"

	"balatro-lite/card"
)

type JokerRarity byte

const (
	RarityCommon JokerRarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

var rarityNames = map[JokerRarity]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityLegendary: "legendary",
}

func (r JokerRarity) String() string {
	if s, ok := rarityNames[r]; ok {
		return s
	}
	return "unknown"
}

func ParseRarity(s string) (JokerRarity, error) {
	for r, name := range rarityNames {
		if name == s {
			return r, nil
		}
	}
	return 0, ErrConfiguration(fmt.Sprintf("unknown rarity: %q", s))
}

// JokerEffectType is a closed set; every kind has exactly one interpreter
// in scoring.go and the switch over it must stay exhaustive.
type JokerEffectType byte

const (
	EffectScoring JokerEffectType = iota
	EffectConditional
	EffectDynamic
	EffectCalculate
	EffectSpecial
)

type ConditionType byte

const (
	CondAny ConditionType = iota
	CondHandType
	CondSuitScored
	CondRankScored
	CondFaceCardScored
	CondNoFaceCards
	CondStateValue
	CondHandSize
)

type ActionType byte

const (
	ActionAddScore ActionType = iota
	ActionMultiplyScore
	ActionRetrigger
	ActionCalculate
)

// JokerCondition tests one property of the triggering context. Which fields
// are meaningful depends on Type.
type JokerCondition struct {
	Type     ConditionType
	Hand     HandType
	Suit     card.Suit
	Rank     card.Rank
	Field    string
	Operator string // eq ne gt ge lt le
	Value    float64
	Size     int
}

// JokerAction is what firing a condition produces: a score delta, a mult
// factor, extra retriggers, or a formula to evaluate.
type JokerAction struct {
	Type           ActionType
	Chips          int
	Mult           float64
	MultMultiplier float64
	Count          int
	Formula        string
	ResultType     string // chips | mult | mult_multiplier
}

// StateModifier scales a named state field into the dynamic effect's axis.
type StateModifier struct {
	Field      string
	Multiplier float64
}

// BehaviorOp is the only sanctioned mutation of joker state.
type BehaviorOp struct {
	Field     string
	Operation string // increment | set | reset
	Value     float64
}

type JokerBehavior struct {
	OnHandPlayed *BehaviorOp
	OnDiscard    *BehaviorOp
	OnRoundEnd   *BehaviorOp
	OnShopOpen   *BehaviorOp
}

// JokerEffect is the tagged variant carried by a definition. Fields beyond
// Type are populated per kind: Chips/Mult/MultMultiplier for scoring,
// Condition+Action for conditional, BaseEffect+StateModifiers for dynamic,
// Formula/ResultType for calculate, SpecialType for special.
type JokerEffect struct {
	Type           JokerEffectType
	PerCard        bool
	InHand         bool // per-card effect evaluated against held cards (phase 3)
	Condition      *JokerCondition
	Action         *JokerAction
	BaseEffect     *JokerAction
	StateModifiers []StateModifier
	SpecialType    string
	Chips          int
	Mult           float64
	MultMultiplier float64
	Formula        string
	ResultType     string
}

// JokerDefinition is immutable, loaded once and shared by every instance.
type JokerDefinition struct {
	ID           string
	Name         string
	Description  string
	Rarity       JokerRarity
	Cost         int
	Effect       JokerEffect
	InitialState map[string]float64
	Behavior     *JokerBehavior
}

type JokerEdition byte

const (
	JokerEditionBase JokerEdition = iota
	JokerEditionFoil
	JokerEditionHolographic
	JokerEditionPolychrome
	JokerEditionNegative
)

type JokerSticker byte

const (
	StickerEternal JokerSticker = iota
	StickerPerishable
	StickerRental
)

const perishableRounds = 5

// Joker is one acquired instance: shared definition, private state. Two
// instances of the same definition never share state.
type Joker struct {
	Def      *JokerDefinition
	State    map[string]float64
	Edition  JokerEdition
	Stickers map[JokerSticker]bool

	// Disabled is set once a perishable joker's rounds run out; a disabled
	// joker contributes nothing but stays in the list.
	Disabled bool

	roundsHeld int
}

func NewJoker(def *JokerDefinition) *Joker {
	state := make(map[string]float64, len(def.InitialState))
	for k, v := range def.InitialState {
		state[k] = v
	}
	return &Joker{
		Def:      def,
		State:    state,
		Edition:  JokerEditionBase,
		Stickers: make(map[JokerSticker]bool),
	}
}

func (j *Joker) HasSticker(s JokerSticker) bool {
	return j.Stickers[s]
}

func (j *Joker) SellValue() int {
	switch j.Def.Rarity {
	case RarityUncommon:
		return 4
	case RarityRare:
		return 5
	case RarityLegendary:
		return 6
	default:
		return 3
	}
}

// applyBehavior runs one declared state mutation. Reset restores the
// initial value from the definition.
func (j *Joker) applyBehavior(op *BehaviorOp) {
	if op == nil {
		return
	}
	switch op.Operation {
	case "increment":
		j.State[op.Field] += op.Value
	case "set":
		j.State[op.Field] = op.Value
	case "reset":
		j.State[op.Field] = j.Def.InitialState[op.Field]
	}
}

// endRound ages perishable stickers. Returns the rental fee owed.
func (j *Joker) endRound() (rentalFee int) {
	j.roundsHeld++
	if j.HasSticker(StickerPerishable) && !j.Disabled && j.roundsHeld >= perishableRounds {
		j.Disabled = true
	}
	if j.HasSticker(StickerRental) {
		rentalFee = 3
	}
	return rentalFee
}

// condCtx carries everything a condition may inspect. In whole-hand context
// card is nil and played holds the full selection.
type condCtx struct {
	card     *card.Card // the card being scored or held; nil in whole-hand context
	played   []*card.Card
	hand     HandType
	handSize int
	state    map[string]float64
}

func (c *JokerCondition) eval(ctx condCtx) bool {
	if c == nil {
		return true
	}
	switch c.Type {
	case CondAny:
		return true
	case CondHandType:
		return ctx.hand == c.Hand
	case CondSuitScored:
		return ctx.card != nil && ctx.card.Suit == c.Suit
	case CondRankScored:
		return ctx.card != nil && ctx.card.Rank == c.Rank
	case CondFaceCardScored:
		return ctx.card != nil && ctx.card.IsFace()
	case CondNoFaceCards:
		if ctx.card != nil {
			return !ctx.card.IsFace()
		}
		for _, c := range ctx.played {
			if c.IsFace() {
				return false
			}
		}
		return true
	case CondStateValue:
		return compare(ctx.state[c.Field], c.Operator, c.Value)
	case CondHandSize:
		return compare(float64(ctx.handSize), c.Operator, float64(c.Size))
	}
	return false
}

func compare(got float64, op string, want float64) bool {
	switch op {
	case "", "eq":
		return got == want
	case "ne":
		return got != want
	case "gt":
		return got > want
	case "ge":
		return got >= want
	case "lt":
		return got < want
	case "le":
		return got <= want
	}
	return false
}

// effectDelta is one effect's contribution to the accumulator: additive
// chips and mult first, then the multiplicative factor.
type effectDelta struct {
	chips   int
	mult    float64
	multMul float64
}

func (d effectDelta) applyTo(score HandScore) HandScore {
	score.Chips += d.chips
	score.Mult += d.mult
	if d.multMul != 0 {
		score.Mult *= d.multMul
	}
	return score
}

func (a *JokerAction) delta(fctx formulaCtx) (effectDelta, error) {
	if a == nil {
		return effectDelta{}, nil
	}
	switch a.Type {
	case ActionAddScore:
		return effectDelta{chips: a.Chips, mult: a.Mult}, nil
	case ActionMultiplyScore:
		return effectDelta{multMul: a.MultMultiplier}, nil
	case ActionCalculate:
		return formulaDelta(a.Formula, a.ResultType, fctx)
	case ActionRetrigger:
		// Retriggers never touch the accumulator directly.
		return effectDelta{}, nil
	}
	return effectDelta{}, nil
}

// retriggerCount is the extra repetitions this joker grants, zero for
// non-retrigger actions.
func (j *Joker) retriggerCount() int {
	if j.Disabled {
		return 0
	}
	a := j.Def.Effect.Action
	if a == nil || a.Type != ActionRetrigger {
		return 0
	}
	if a.Count > 0 {
		return a.Count
	}
	return 1
}

// formulaCtx names the run quantities a calculate formula may reference.
type formulaCtx struct {
	state             map[string]float64
	money             float64
	handsRemaining    float64
	discardsRemaining float64
	selectedCount     float64
}

// ValidateFormula checks a formula's shape without evaluating it: token
// count, operator set, operand names. Loaders call this so a bad formula
// fails at load time instead of mid-play.
func ValidateFormula(formula string) error {
	fields := strings.Fields(formula)
	if len(fields) == 0 || len(fields)%2 == 0 {
		return ErrConfiguration(fmt.Sprintf("malformed formula: %q", formula))
	}
	if _, err := formulaOperand(fields[0], formulaCtx{}); err != nil {
		return err
	}
	for i := 1; i < len(fields); i += 2 {
		switch fields[i] {
		case "+", "-", "*", "/":
		default:
			return ErrConfiguration(fmt.Sprintf("unknown operator %q in formula %q", fields[i], formula))
		}
		if _, err := formulaOperand(fields[i+1], formulaCtx{}); err != nil {
			return err
		}
	}
	return nil
}

// evalFormula evaluates a flat left-to-right expression: operands separated
// by + - * /, where an operand is a number, "state.<field>", "money",
// "hands_remaining", "discards_remaining" or "selected_count". No
// precedence; catalogue formulas are written accordingly.
func evalFormula(formula string, ctx formulaCtx) (float64, error) {
	fields := strings.Fields(formula)
	if len(fields) == 0 || len(fields)%2 == 0 {
		return 0, ErrConfiguration(fmt.Sprintf("malformed formula: %q", formula))
	}
	acc, err := formulaOperand(fields[0], ctx)
	if err != nil {
		return 0, err
	}
	for i := 1; i < len(fields); i += 2 {
		rhs, err := formulaOperand(fields[i+1], ctx)
		if err != nil {
			return 0, err
		}
		switch fields[i] {
		case "+":
			acc += rhs
		case "-":
			acc -= rhs
		case "*":
			acc *= rhs
		case "/":
			if rhs == 0 {
				return 0, ErrConfiguration(fmt.Sprintf("division by zero in formula: %q", formula))
			}
			acc /= rhs
		default:
			return 0, ErrConfiguration(fmt.Sprintf("unknown operator %q in formula %q", fields[i], formula))
		}
	}
	return acc, nil
}

func formulaOperand(tok string, ctx formulaCtx) (float64, error) {
	switch {
	case strings.HasPrefix(tok, "state."):
		return ctx.state[strings.TrimPrefix(tok, "state.")], nil
	case tok == "money":
		return ctx.money, nil
	case tok == "hands_remaining":
		return ctx.handsRemaining, nil
	case tok == "discards_remaining":
		return ctx.discardsRemaining, nil
	case tok == "selected_count":
		return ctx.selectedCount, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ErrConfiguration(fmt.Sprintf("bad formula operand: %q", tok))
	}
	return v, nil
}

func formulaDelta(formula, resultType string, ctx formulaCtx) (effectDelta, error) {
	v, err := evalFormula(formula, ctx)
	if err != nil {
		return effectDelta{}, err
	}
	switch resultType {
	case "chips":
		return effectDelta{chips: int(v)}, nil
	case "mult":
		return effectDelta{mult: v}, nil
	case "mult_multiplier":
		return effectDelta{multMul: v}, nil
	}
	return effectDelta{}, ErrConfiguration(fmt.Sprintf("unknown formula result type: %q", resultType))
}
