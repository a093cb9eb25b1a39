package balatro

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Run is one in-memory game run: deck, hand, jokers, planet levels, play
// limits, money and blind progression. All access is synchronous; a play
// resolves fully before control returns. The mutex only guards against
// accidental cross-goroutine use (snapshots from another goroutine), it is
// not a concurrency feature.
type Run struct {
	cfg   Config
	log   *zap.Logger
	stake Stake

	mu sync.Mutex

	streams *Streams
	deck    *Deck
	hand    *Hand
	jokers  []*Joker
	planets *Planets
	limits  *PlayLimits

	money      int
	ante       int
	round      int
	roundScore int
	blinds     *UpcomingBlinds
	ended      bool

	specials map[string]SpecialEffectFunc
}

func NewRun(cfg Config) (*Run, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	stake := NewStake(cfg.Stake)
	hands := cfg.HandsPerRound + stake.Modifiers.HandsPerRoundBonus
	if hands < 1 {
		hands = 1
	}
	discards := cfg.DiscardsPerRound + stake.Modifiers.DiscardsPerRoundBonus
	if discards < 0 {
		discards = 0
	}

	planets := DefaultPlanets()
	if cfg.Planets != nil {
		var err error
		planets, err = NewPlanets(cfg.Planets)
		if err != nil {
			return nil, err
		}
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &Run{
		cfg:      cfg,
		log:      log,
		stake:    stake,
		streams:  NewStreams(cfg.Seed),
		deck:     NewStandardDeck(),
		hand:     NewHand(),
		planets:  planets,
		limits:   NewPlayLimits(hands, discards),
		money:    cfg.StartingMoney + stake.Modifiers.StartingMoneyModifier,
		ante:     1,
		specials: make(map[string]SpecialEffectFunc),
	}
	r.blinds = NewUpcomingBlinds(r.ante, r.stake)
	return r, nil
}

// RegisterSpecial binds an interpreter to an opaque special-effect id.
func (r *Run) RegisterSpecial(name string, fn SpecialEffectFunc) {
	r.specials[name] = fn
}

// AddJoker acquires a joker instance. List order is acquisition order and
// is the phase-4 evaluation order.
func (r *Run) AddJoker(def *JokerDefinition) (*Joker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.jokers) >= r.cfg.MaxJokers {
		return nil, ErrInvalidState(fmt.Sprintf("joker slots full (%d)", r.cfg.MaxJokers))
	}
	j := NewJoker(def)
	r.jokers = append(r.jokers, j)
	return j, nil
}

// RemoveJoker drops the joker at index i. Eternal jokers cannot be removed.
func (r *Run) RemoveJoker(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.jokers) {
		return ErrInvalidState(fmt.Sprintf("joker index %d out of range", i))
	}
	if r.jokers[i].HasSticker(StickerEternal) {
		return ErrInvalidState("eternal joker cannot be removed")
	}
	r.jokers = append(r.jokers[:i], r.jokers[i+1:]...)
	return nil
}

// StartBlind activates the ante's next blind: fresh limits, fresh shuffle,
// fresh hand.
func (r *Run) StartBlind() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return ErrRunEnded
	}
	next := r.blinds.Next()
	if next == nil {
		return ErrInvalidState("ante complete, no blind to start")
	}
	next.Status = BlindActive
	r.round++
	r.roundScore = 0
	r.limits.Reset()
	r.deck.Shuffle(r.streams.Stream(StreamDeckShuffle))
	r.hand.Clear()
	r.hand.Add(r.deck.Draw(r.cfg.HandSize)...)
	r.log.Info("blind started",
		zap.Int("ante", r.ante),
		zap.String("blind", next.Type.String()),
		zap.Int("required", next.RequiredScore))
	return nil
}

// SkipBlind skips the next blind; boss blinds cannot be skipped.
func (r *Run) SkipBlind() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.blinds.Next()
	if next == nil {
		return ErrInvalidState("ante complete, no blind to skip")
	}
	if !next.CanSkip() {
		return ErrInvalidState("boss blind cannot be skipped")
	}
	next.Status = BlindSkipped
	return nil
}

// DrawHand refills the hand to the configured size. Drawing over a full
// hand is a precondition violation.
func (r *Run) DrawHand() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hand.Len() >= r.cfg.HandSize {
		return ErrHandNotEmpty
	}
	r.hand.Add(r.deck.Draw(r.cfg.HandSize - r.hand.Len())...)
	return nil
}

// PlayHand scores the current selection through the four-phase pipeline and
// commits the outcome. Nothing mutates until the whole pipeline has
// succeeded: the failure paths leave hand, deck, money and limits intact.
func (r *Run) PlayHand() (*PlayResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return nil, ErrRunEnded
	}
	if !r.limits.HasHandsRemaining() {
		return nil, ErrNoHandsRemaining
	}

	result, err := r.scoreHand()
	if err != nil {
		return nil, err
	}

	// Commit.
	r.money += result.MoneyDelta
	r.limits.DecrementHands()
	r.roundScore += result.FinalScore
	for _, j := range r.jokers {
		if j.Def.Behavior != nil && !j.Disabled {
			j.applyBehavior(j.Def.Behavior.OnHandPlayed)
		}
	}
	if _, err := r.hand.DiscardSelected(r.deck); err != nil {
		// Selection was validated by scoreHand; this cannot happen.
		panic(err)
	}

	r.log.Info("hand played",
		zap.String("hand", result.Hand.String()),
		zap.Int("chips", result.Score.Chips),
		zap.Float64("mult", result.Score.Mult),
		zap.Int("score", result.FinalScore),
		zap.Int("round_score", r.roundScore))

	r.settleRound()
	return result, nil
}

// settleRound closes out the round when the blind is beaten or the hand
// budget is spent.
func (r *Run) settleRound() {
	active := r.blinds.Active()
	if active == nil {
		return
	}
	if r.roundScore >= active.RequiredScore {
		active.Status = BlindComplete
		r.money += active.RewardMoney
		r.endRound()
		r.log.Info("blind complete",
			zap.String("blind", active.Type.String()),
			zap.Int("reward", active.RewardMoney),
			zap.Int("money", r.money))
		return
	}
	if !r.limits.HasHandsRemaining() {
		r.ended = true
		r.log.Info("run ended",
			zap.Int("ante", r.ante),
			zap.Int("round_score", r.roundScore),
			zap.Int("required", active.RequiredScore))
	}
}

// endRound fires round-end behaviors and sticker upkeep.
func (r *Run) endRound() {
	for _, j := range r.jokers {
		if j.Def.Behavior != nil && !j.Disabled {
			j.applyBehavior(j.Def.Behavior.OnRoundEnd)
		}
		r.money -= j.endRound()
	}
}

// DiscardSelected moves the selected cards to the discard pile and spends a
// discard. Fails without mutation when no discards remain or nothing is
// selected.
func (r *Run) DiscardSelected() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return ErrRunEnded
	}
	if !r.limits.HasDiscardsRemaining() {
		return ErrNoDiscards
	}
	discarded, err := r.hand.DiscardSelected(r.deck)
	if err != nil {
		return err
	}
	r.limits.DecrementDiscards()
	for _, j := range r.jokers {
		if j.Def.Behavior != nil && !j.Disabled {
			j.applyBehavior(j.Def.Behavior.OnDiscard)
		}
	}
	r.log.Debug("cards discarded", zap.Int("count", len(discarded)))
	return nil
}

// OpenShop fires shop-open behaviors. The shop itself lives outside the
// core; this is the hook it calls.
func (r *Run) OpenShop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jokers {
		if j.Def.Behavior != nil && !j.Disabled {
			j.applyBehavior(j.Def.Behavior.OnShopOpen)
		}
	}
}

// StartNewAnte advances to the next ante once every blind of the current
// one is resolved.
func (r *Run) StartNewAnte() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return ErrRunEnded
	}
	if r.blinds.Next() != nil || r.blinds.Active() != nil {
		return ErrInvalidState("current ante not finished")
	}
	r.ante++
	r.blinds = NewUpcomingBlinds(r.ante, r.stake)
	r.log.Info("new ante", zap.Int("ante", r.ante))
	return nil
}

// AdjustLimits shifts the remaining hand and discard budget. This is the
// hook special-effect interpreters use; counters floor at zero.
func (r *Run) AdjustLimits(hands, discards int) {
	r.limits.HandsRemaining += hands
	if r.limits.HandsRemaining < 0 {
		r.limits.HandsRemaining = 0
	}
	r.limits.DiscardsRemaining += discards
	if r.limits.DiscardsRemaining < 0 {
		r.limits.DiscardsRemaining = 0
	}
}

// UpgradePlanet raises the level for one hand type (a consumed planet
// card, from the core's point of view).
func (r *Run) UpgradePlanet(ht HandType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.planets.Upgrade(ht)
}

// Hand manipulation passthroughs. They take the mutex like every other
// mutating method so a concurrent Snapshot sees a consistent hand.

func (r *Run) SelectCard(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hand.Select(i)
}

func (r *Run) DeselectCard(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hand.Deselect(i)
}

func (r *Run) ToggleCard(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hand.Toggle(i)
}

func (r *Run) MoveLeft(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hand.MoveLeft(i)
}

func (r *Run) MoveRight(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hand.MoveRight(i)
}

func (r *Run) SortByRank() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hand.SortByRankDesc()
}

func (r *Run) SortBySuit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hand.SortBySuitThenRank()
}

// Read-only accessors for the driver layer.

func (r *Run) Money() int              { return r.money }
func (r *Run) Ante() int               { return r.ante }
func (r *Run) Round() int              { return r.round }
func (r *Run) RoundScore() int         { return r.roundScore }
func (r *Run) Ended() bool             { return r.ended }
func (r *Run) HandsRemaining() int     { return r.limits.HandsRemaining }
func (r *Run) DiscardsRemaining() int  { return r.limits.DiscardsRemaining }
func (r *Run) Hand() *Hand             { return r.hand }
func (r *Run) Deck() *Deck             { return r.deck }
func (r *Run) Jokers() []*Joker        { return r.jokers }
func (r *Run) Planets() *Planets       { return r.planets }
func (r *Run) Blinds() *UpcomingBlinds { return r.blinds }
func (r *Run) Stake() Stake            { return r.stake }
func (r *Run) Streams() *Streams       { return r.streams }

// RequiredScore is the active blind's target, or the next blind's if none
// is active yet.
func (r *Run) RequiredScore() int {
	if b := r.blinds.Active(); b != nil {
		return b.RequiredScore
	}
	if b := r.blinds.Next(); b != nil {
		return b.RequiredScore
	}
	return 0
}
