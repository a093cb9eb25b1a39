package balatro

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"balatro-lite/card"
)

// Snapshot is a self-contained, JSON-friendly copy of a run: enough to
// resume play deterministically, including each RNG stream's position.
// Joker definitions are referenced by id and rebound on restore; everything
// else is embedded.
type Snapshot struct {
	Seed             int64  `json:"seed"`
	HandSize         int    `json:"hand_size"`
	MaxJokers        int    `json:"max_jokers"`
	Stake            byte   `json:"stake"`
	Money            int    `json:"money"`
	Ante             int    `json:"ante"`
	Round            int    `json:"round"`
	RoundScore       int    `json:"round_score"`
	Ended            bool   `json:"ended"`

	StreamPositions map[string]uint64 `json:"stream_positions"`

	Cards           []CardState `json:"cards"`
	DrawPile        []string    `json:"draw_pile"`
	DiscardPile     []string    `json:"discard_pile"`
	HandCards       []string    `json:"hand_cards"`
	SelectedIndices []int       `json:"selected_indices"`

	Jokers  []JokerState    `json:"jokers"`
	Planets []PlanetState   `json:"planets"`
	Limits  LimitsState     `json:"limits"`
	Blinds  [3]BlindState   `json:"blinds"`
}

type CardState struct {
	ID          string `json:"id"`
	Suit        byte   `json:"suit"`
	Rank        byte   `json:"rank"`
	Enhancement byte   `json:"enhancement"`
	Edition     byte   `json:"edition"`
	Seal        byte   `json:"seal"`
}

type JokerState struct {
	DefID      string             `json:"def_id"`
	State      map[string]float64 `json:"state"`
	Edition    byte               `json:"edition"`
	Stickers   []byte             `json:"stickers"`
	Disabled   bool               `json:"disabled"`
	RoundsHeld int                `json:"rounds_held"`
}

type PlanetState struct {
	Name      string `json:"name"`
	Hand      byte   `json:"hand"`
	BaseChips int    `json:"base_chips"`
	BaseMult  int    `json:"base_mult"`
	AddChips  int    `json:"add_chips"`
	AddMult   int    `json:"add_mult"`
	Level     int    `json:"level"`
}

type LimitsState struct {
	Hands             int `json:"hands"`
	Discards          int `json:"discards"`
	HandsRemaining    int `json:"hands_remaining"`
	DiscardsRemaining int `json:"discards_remaining"`
}

type BlindState struct {
	Name          string `json:"name"`
	Type          byte   `json:"type"`
	RequiredScore int    `json:"required_score"`
	RewardMoney   int    `json:"reward_money"`
	Status        byte   `json:"status"`
}

// Snapshot captures the run. The returned value shares nothing with the
// live run.
func (r *Run) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Snapshot{
		Seed:            r.cfg.Seed,
		HandSize:        r.cfg.HandSize,
		MaxJokers:       r.cfg.MaxJokers,
		Stake:           byte(r.stake.Level),
		Money:           r.money,
		Ante:            r.ante,
		Round:           r.round,
		RoundScore:      r.roundScore,
		Ended:           r.ended,
		StreamPositions: r.streams.Positions(),
		SelectedIndices: r.hand.SelectedIndices(),
		Limits: LimitsState{
			Hands:             r.limits.Hands,
			Discards:          r.limits.Discards,
			HandsRemaining:    r.limits.HandsRemaining,
			DiscardsRemaining: r.limits.DiscardsRemaining,
		},
	}

	for _, c := range r.deck.Full() {
		s.Cards = append(s.Cards, CardState{
			ID:          c.ID.String(),
			Suit:        byte(c.Suit),
			Rank:        byte(c.Rank),
			Enhancement: byte(c.Enhancement),
			Edition:     byte(c.Edition),
			Seal:        byte(c.Seal),
		})
	}
	s.DrawPile = cardIDs(r.deck.DrawPile())
	s.DiscardPile = cardIDs(r.deck.Discards())
	s.HandCards = cardIDs(r.hand.Cards())

	for _, j := range r.jokers {
		state := make(map[string]float64, len(j.State))
		for k, v := range j.State {
			state[k] = v
		}
		js := JokerState{
			DefID:      j.Def.ID,
			State:      state,
			Edition:    byte(j.Edition),
			Disabled:   j.Disabled,
			RoundsHeld: j.roundsHeld,
		}
		for st := range j.Stickers {
			js.Stickers = append(js.Stickers, byte(st))
		}
		s.Jokers = append(s.Jokers, js)
	}

	for _, p := range r.planets.All() {
		s.Planets = append(s.Planets, PlanetState{
			Name:      p.Name,
			Hand:      byte(p.Hand),
			BaseChips: p.BaseChips,
			BaseMult:  p.BaseMult,
			AddChips:  p.AddChips,
			AddMult:   p.AddMult,
			Level:     p.Level,
		})
	}

	for i, b := range []Blind{r.blinds.Small, r.blinds.Big, r.blinds.Boss} {
		s.Blinds[i] = BlindState{
			Name:          b.Name,
			Type:          byte(b.Type),
			RequiredScore: b.RequiredScore,
			RewardMoney:   b.RewardMoney,
			Status:        byte(b.Status),
		}
	}
	return s
}

// RestoreRun rebuilds a live run from a snapshot. Joker definitions are
// looked up by id in defs; a missing definition is a configuration error.
func RestoreRun(s *Snapshot, defs map[string]*JokerDefinition, logger *zap.Logger) (*Run, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	full := make([]*card.Card, 0, len(s.Cards))
	byID := make(map[string]*card.Card, len(s.Cards))
	for _, cs := range s.Cards {
		id, err := uuid.Parse(cs.ID)
		if err != nil {
			return nil, ErrConfiguration(fmt.Sprintf("bad card id %q: %v", cs.ID, err))
		}
		c := &card.Card{
			ID:          id,
			Suit:        card.Suit(cs.Suit),
			Rank:        card.Rank(cs.Rank),
			Enhancement: card.Enhancement(cs.Enhancement),
			Edition:     card.Edition(cs.Edition),
			Seal:        card.Seal(cs.Seal),
		}
		full = append(full, c)
		byID[cs.ID] = c
	}

	resolve := func(ids []string) ([]*card.Card, error) {
		out := make([]*card.Card, 0, len(ids))
		for _, id := range ids {
			c, ok := byID[id]
			if !ok {
				return nil, ErrConfiguration(fmt.Sprintf("snapshot references unknown card %q", id))
			}
			out = append(out, c)
		}
		return out, nil
	}

	deck := NewDeck(full)
	drawPile, err := resolve(s.DrawPile)
	if err != nil {
		return nil, err
	}
	discards, err := resolve(s.DiscardPile)
	if err != nil {
		return nil, err
	}
	deck.drawPile.Init(drawPile)
	deck.discards.Init(discards)

	hand := NewHand()
	handCards, err := resolve(s.HandCards)
	if err != nil {
		return nil, err
	}
	hand.Add(handCards...)
	for _, i := range s.SelectedIndices {
		if err := hand.Select(i); err != nil {
			return nil, ErrConfiguration(fmt.Sprintf("snapshot selection: %v", err))
		}
	}

	planetDefs := make([]PlanetDefinition, 0, len(s.Planets))
	for _, ps := range s.Planets {
		planetDefs = append(planetDefs, PlanetDefinition{
			Name:      ps.Name,
			Hand:      HandType(ps.Hand),
			BaseChips: ps.BaseChips,
			BaseMult:  ps.BaseMult,
			AddChips:  ps.AddChips,
			AddMult:   ps.AddMult,
		})
	}
	planets, err := NewPlanets(planetDefs)
	if err != nil {
		return nil, err
	}
	for i, ps := range s.Planets {
		planets.byHand[HandType(ps.Hand)].Level = s.Planets[i].Level
	}

	streams := NewStreams(s.Seed)
	streams.FastForward(s.StreamPositions)

	r := &Run{
		cfg: Config{
			Seed:      s.Seed,
			HandSize:  s.HandSize,
			MaxJokers: s.MaxJokers,
			Stake:     StakeLevel(s.Stake),
		},
		log:        logger,
		stake:      NewStake(StakeLevel(s.Stake)),
		streams:    streams,
		deck:       deck,
		hand:       hand,
		planets:    planets,
		money:      s.Money,
		ante:       s.Ante,
		round:      s.Round,
		roundScore: s.RoundScore,
		ended:      s.Ended,
		specials:   make(map[string]SpecialEffectFunc),
		limits: &PlayLimits{
			Hands:             s.Limits.Hands,
			Discards:          s.Limits.Discards,
			HandsRemaining:    s.Limits.HandsRemaining,
			DiscardsRemaining: s.Limits.DiscardsRemaining,
		},
	}
	r.cfg.HandsPerRound = s.Limits.Hands
	r.cfg.DiscardsPerRound = s.Limits.Discards

	for _, js := range s.Jokers {
		def, ok := defs[js.DefID]
		if !ok {
			return nil, ErrConfiguration(fmt.Sprintf("snapshot references unknown joker %q", js.DefID))
		}
		j := NewJoker(def)
		for k, v := range js.State {
			j.State[k] = v
		}
		j.Edition = JokerEdition(js.Edition)
		j.Disabled = js.Disabled
		j.roundsHeld = js.RoundsHeld
		for _, st := range js.Stickers {
			j.Stickers[JokerSticker(st)] = true
		}
		r.jokers = append(r.jokers, j)
	}

	blinds := &UpcomingBlinds{}
	for i, target := range []*Blind{&blinds.Small, &blinds.Big, &blinds.Boss} {
		bs := s.Blinds[i]
		*target = Blind{
			Name:          bs.Name,
			Type:          BlindType(bs.Type),
			RequiredScore: bs.RequiredScore,
			RewardMoney:   bs.RewardMoney,
			Status:        BlindStatus(bs.Status),
		}
	}
	r.blinds = blinds
	return r, nil
}

func cardIDs(cards []*card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID.String())
	}
	return out
}
