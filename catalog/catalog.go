// Package catalog loads joker and planet definitions from TOML. Validation
// happens entirely at load time; anything the loader accepts is safe to hand
// to the engine.
package catalog

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"balatro-lite/balatro"
	"balatro-lite/card"
)

type Catalog struct {
	jokers  map[string]*balatro.JokerDefinition
	order   []string
	planets []balatro.PlanetDefinition
}

// Joker looks up a definition by id.
func (c *Catalog) Joker(id string) (*balatro.JokerDefinition, bool) {
	def, ok := c.jokers[id]
	return def, ok
}

// Jokers returns every definition in file order.
func (c *Catalog) Jokers() []*balatro.JokerDefinition {
	out := make([]*balatro.JokerDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.jokers[id])
	}
	return out
}

// JokerIndex is the id-keyed view RestoreRun wants.
func (c *Catalog) JokerIndex() map[string]*balatro.JokerDefinition {
	return c.jokers
}

func (c *Catalog) Planets() []balatro.PlanetDefinition {
	return c.planets
}

// Load parses both documents. Either may be nil to skip that section.
func Load(jokersTOML, planetsTOML []byte) (*Catalog, error) {
	c := &Catalog{jokers: make(map[string]*balatro.JokerDefinition)}
	if jokersTOML != nil {
		if err := c.loadJokers(jokersTOML); err != nil {
			return nil, err
		}
	}
	if planetsTOML != nil {
		if err := c.loadPlanets(planetsTOML); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// raw TOML shapes; everything is strings and numbers until validation.

type jokerFile struct {
	Jokers []rawJoker `toml:"jokers"`
}

type rawJoker struct {
	ID           string             `toml:"id"`
	Name         string             `toml:"name"`
	Description  string             `toml:"description"`
	Rarity       string             `toml:"rarity"`
	Cost         int                `toml:"cost"`
	InitialState map[string]float64 `toml:"initial_state"`
	Effect       rawEffect          `toml:"effect"`
	Behavior     *rawBehavior       `toml:"behavior"`
}

type rawEffect struct {
	Type           string         `toml:"type"`
	PerCard        bool           `toml:"per_card"`
	InHand         bool           `toml:"in_hand"`
	Chips          int            `toml:"chips"`
	Mult           float64        `toml:"mult"`
	MultMultiplier float64        `toml:"mult_multiplier"`
	Condition      *rawCondition  `toml:"condition"`
	Action         *rawAction     `toml:"action"`
	BaseEffect     *rawAction     `toml:"base_effect"`
	StateModifiers []rawStateMod  `toml:"state_modifiers"`
	Formula        string         `toml:"formula"`
	ResultType     string         `toml:"result_type"`
	SpecialType    string         `toml:"special_type"`
}

type rawCondition struct {
	Type     string  `toml:"type"`
	Hand     string  `toml:"hand"`
	Suit     string  `toml:"suit"`
	Rank     string  `toml:"rank"`
	Field    string  `toml:"field"`
	Operator string  `toml:"operator"`
	Value    float64 `toml:"value"`
	Size     int     `toml:"size"`
}

type rawAction struct {
	Type           string  `toml:"type"`
	Chips          int     `toml:"chips"`
	Mult           float64 `toml:"mult"`
	MultMultiplier float64 `toml:"mult_multiplier"`
	Count          int     `toml:"count"`
	Formula        string  `toml:"formula"`
	ResultType     string  `toml:"result_type"`
}

type rawStateMod struct {
	Field      string  `toml:"field"`
	Multiplier float64 `toml:"multiplier"`
}

type rawBehavior struct {
	OnHandPlayed *rawBehaviorOp `toml:"on_hand_played"`
	OnDiscard    *rawBehaviorOp `toml:"on_discard"`
	OnRoundEnd   *rawBehaviorOp `toml:"on_round_end"`
	OnShopOpen   *rawBehaviorOp `toml:"on_shop_open"`
}

type rawBehaviorOp struct {
	Field     string  `toml:"field"`
	Operation string  `toml:"operation"`
	Value     float64 `toml:"value"`
}

type planetFile struct {
	Planets []rawPlanet `toml:"planets"`
}

type rawPlanet struct {
	Name      string `toml:"name"`
	Hand      string `toml:"hand"`
	BaseChips int    `toml:"base_chips"`
	BaseMult  int    `toml:"base_mult"`
	AddChips  int    `toml:"add_chips"`
	AddMult   int    `toml:"add_mult"`
}

func (c *Catalog) loadJokers(data []byte) error {
	var file jokerFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return balatro.ErrConfiguration(fmt.Sprintf("jokers: %v", err))
	}
	for i, raw := range file.Jokers {
		def, err := buildJoker(raw)
		if err != nil {
			return balatro.ErrConfiguration(fmt.Sprintf("jokers[%d] %q: %v", i, raw.ID, err))
		}
		if _, dup := c.jokers[def.ID]; dup {
			return balatro.ErrConfiguration(fmt.Sprintf("duplicate joker id %q", def.ID))
		}
		c.jokers[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	return nil
}

func (c *Catalog) loadPlanets(data []byte) error {
	var file planetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return balatro.ErrConfiguration(fmt.Sprintf("planets: %v", err))
	}
	for i, raw := range file.Planets {
		ht, err := parseHandType(raw.Hand)
		if err != nil {
			return balatro.ErrConfiguration(fmt.Sprintf("planets[%d] %q: %v", i, raw.Name, err))
		}
		c.planets = append(c.planets, balatro.PlanetDefinition{
			Name:      raw.Name,
			Hand:      ht,
			BaseChips: raw.BaseChips,
			BaseMult:  raw.BaseMult,
			AddChips:  raw.AddChips,
			AddMult:   raw.AddMult,
		})
	}
	// the engine re-validates coverage, but catching it here names the file
	if _, err := balatro.NewPlanets(c.planets); err != nil {
		return err
	}
	return nil
}

func buildJoker(raw rawJoker) (*balatro.JokerDefinition, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	rarity, err := balatro.ParseRarity(raw.Rarity)
	if err != nil {
		return nil, err
	}
	effect, err := buildEffect(raw.Effect)
	if err != nil {
		return nil, err
	}

	def := &balatro.JokerDefinition{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Rarity:      rarity,
		Cost:        raw.Cost,
		Effect:      *effect,
	}
	if len(raw.InitialState) > 0 {
		def.InitialState = raw.InitialState
	}
	if raw.Behavior != nil {
		def.Behavior = &balatro.JokerBehavior{
			OnHandPlayed: buildBehaviorOp(raw.Behavior.OnHandPlayed),
			OnDiscard:    buildBehaviorOp(raw.Behavior.OnDiscard),
			OnRoundEnd:   buildBehaviorOp(raw.Behavior.OnRoundEnd),
			OnShopOpen:   buildBehaviorOp(raw.Behavior.OnShopOpen),
		}
	}
	return def, nil
}

func buildEffect(raw rawEffect) (*balatro.JokerEffect, error) {
	eff := &balatro.JokerEffect{PerCard: raw.PerCard, InHand: raw.InHand}
	switch raw.Type {
	case "scoring":
		eff.Type = balatro.EffectScoring
		if raw.Chips == 0 && raw.Mult == 0 && raw.MultMultiplier == 0 {
			return nil, fmt.Errorf("scoring effect contributes nothing")
		}
		eff.Chips, eff.Mult, eff.MultMultiplier = raw.Chips, raw.Mult, raw.MultMultiplier
	case "conditional":
		eff.Type = balatro.EffectConditional
		if raw.Action == nil {
			return nil, fmt.Errorf("conditional effect needs an action")
		}
		cond, err := buildCondition(raw.Condition)
		if err != nil {
			return nil, err
		}
		action, err := buildAction(raw.Action)
		if err != nil {
			return nil, err
		}
		eff.Condition, eff.Action = cond, action
	case "dynamic":
		eff.Type = balatro.EffectDynamic
		if raw.BaseEffect == nil {
			return nil, fmt.Errorf("dynamic effect needs a base_effect")
		}
		base, err := buildAction(raw.BaseEffect)
		if err != nil {
			return nil, err
		}
		eff.BaseEffect = base
		for _, m := range raw.StateModifiers {
			if m.Field == "" {
				return nil, fmt.Errorf("state modifier missing field")
			}
			eff.StateModifiers = append(eff.StateModifiers, balatro.StateModifier{
				Field:      m.Field,
				Multiplier: m.Multiplier,
			})
		}
	case "calculate":
		eff.Type = balatro.EffectCalculate
		if raw.Formula == "" {
			return nil, fmt.Errorf("calculate effect needs a formula")
		}
		if err := balatro.ValidateFormula(raw.Formula); err != nil {
			return nil, err
		}
		if err := checkResultType(raw.ResultType); err != nil {
			return nil, err
		}
		eff.Formula, eff.ResultType = raw.Formula, raw.ResultType
	case "special":
		eff.Type = balatro.EffectSpecial
		if raw.SpecialType == "" {
			return nil, fmt.Errorf("special effect needs a special_type")
		}
		eff.SpecialType = raw.SpecialType
	default:
		return nil, fmt.Errorf("unknown effect type %q", raw.Type)
	}
	return eff, nil
}

var conditionTypes = map[string]balatro.ConditionType{
	"any":              balatro.CondAny,
	"hand_type":        balatro.CondHandType,
	"suit_scored":      balatro.CondSuitScored,
	"rank_scored":      balatro.CondRankScored,
	"face_card_scored": balatro.CondFaceCardScored,
	"no_face_cards":    balatro.CondNoFaceCards,
	"state_value":      balatro.CondStateValue,
	"hand_size":        balatro.CondHandSize,
}

func buildCondition(raw *rawCondition) (*balatro.JokerCondition, error) {
	if raw == nil {
		return nil, nil // absent condition means always fire
	}
	ct, ok := conditionTypes[raw.Type]
	if !ok {
		return nil, fmt.Errorf("unknown condition type %q", raw.Type)
	}
	cond := &balatro.JokerCondition{
		Type:     ct,
		Field:    raw.Field,
		Operator: raw.Operator,
		Value:    raw.Value,
		Size:     raw.Size,
	}
	switch ct {
	case balatro.CondHandType:
		ht, err := parseHandType(raw.Hand)
		if err != nil {
			return nil, err
		}
		cond.Hand = ht
	case balatro.CondSuitScored:
		s, err := card.ParseSuit(raw.Suit)
		if err != nil {
			return nil, err
		}
		cond.Suit = s
	case balatro.CondRankScored:
		rk, err := card.ParseRank(raw.Rank)
		if err != nil {
			return nil, err
		}
		cond.Rank = rk
	case balatro.CondStateValue:
		if raw.Field == "" {
			return nil, fmt.Errorf("state_value condition missing field")
		}
	}
	return cond, nil
}

var actionTypes = map[string]balatro.ActionType{
	"add_score":      balatro.ActionAddScore,
	"multiply_score": balatro.ActionMultiplyScore,
	"retrigger":      balatro.ActionRetrigger,
	"calculate":      balatro.ActionCalculate,
}

func buildAction(raw *rawAction) (*balatro.JokerAction, error) {
	at, ok := actionTypes[raw.Type]
	if !ok {
		return nil, fmt.Errorf("unknown action type %q", raw.Type)
	}
	action := &balatro.JokerAction{
		Type:           at,
		Chips:          raw.Chips,
		Mult:           raw.Mult,
		MultMultiplier: raw.MultMultiplier,
		Count:          raw.Count,
		Formula:        raw.Formula,
		ResultType:     raw.ResultType,
	}
	switch at {
	case balatro.ActionMultiplyScore:
		if raw.MultMultiplier == 0 {
			return nil, fmt.Errorf("multiply_score action needs mult_multiplier")
		}
	case balatro.ActionCalculate:
		if raw.Formula == "" {
			return nil, fmt.Errorf("calculate action needs a formula")
		}
		if err := balatro.ValidateFormula(raw.Formula); err != nil {
			return nil, err
		}
		if err := checkResultType(raw.ResultType); err != nil {
			return nil, err
		}
	}
	return action, nil
}

func buildBehaviorOp(raw *rawBehaviorOp) *balatro.BehaviorOp {
	if raw == nil {
		return nil
	}
	return &balatro.BehaviorOp{Field: raw.Field, Operation: raw.Operation, Value: raw.Value}
}

func checkResultType(s string) error {
	switch s {
	case "chips", "mult", "mult_multiplier":
		return nil
	}
	return fmt.Errorf("unknown result type %q", s)
}

func parseHandType(s string) (balatro.HandType, error) {
	return balatro.ParseHandType(s)
}
