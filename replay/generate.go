// Package replay turns a scripted RunSpec into a deterministic event tape.
// Tapes are the regression currency: a spec checked in next to its expected
// tape pins the engine's behavior.
package replay

import (
	"fmt"

	"balatro-lite/balatro"
)

// Generate drives a fresh run through the spec's actions and records every
// observable transition. Unknown joker ids and illegal steps fail with a
// ReplayError naming the offending step.
func Generate(spec RunSpec, defs map[string]*balatro.JokerDefinition) (*Tape, error) {
	stake := balatro.StakeWhite
	if spec.Stake != "" {
		var err error
		stake, err = balatro.ParseStakeLevel(spec.Stake)
		if err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "bad_stake", Message: err.Error()}
		}
	}

	run, err := balatro.NewRun(balatro.Config{
		Seed:     spec.Seed,
		HandSize: spec.HandSize,
		Stake:    stake,
	})
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: err.Error()}
	}

	for _, id := range spec.Jokers {
		def, ok := defs[id]
		if !ok {
			return nil, &ReplayError{StepIndex: -1, Reason: "unknown_joker", Message: fmt.Sprintf("joker %q not in catalogue", id)}
		}
		if _, err := run.AddJoker(def); err != nil {
			return nil, &ReplayError{StepIndex: -1, Reason: "joker_add_failed", Message: err.Error()}
		}
	}

	b := &tapeBuilder{tape: &Tape{
		TapeVersion: TapeVersion,
		Seed:        spec.Seed,
		Stake:       stake.String(),
	}}

	for i, action := range spec.Actions {
		if err := applyAction(run, b, action); err != nil {
			return nil, &ReplayError{
				StepIndex: i,
				Reason:    "action_failed",
				Message:   fmt.Sprintf("%s: %v", action.Type, err),
			}
		}
		if run.Ended() {
			b.add(Event{Type: EventRunEnded, Ante: run.Ante(), RoundScore: run.RoundScore(), Ended: true})
			break
		}
	}
	return b.tape, nil
}

func applyAction(run *balatro.Run, b *tapeBuilder, action ActionSpec) error {
	switch action.Type {
	case ActStartBlind:
		if err := run.StartBlind(); err != nil {
			return err
		}
		active := run.Blinds().Active()
		b.add(Event{
			Type:     EventBlindStarted,
			Ante:     run.Ante(),
			Round:    run.Round(),
			Blind:    active.Type.String(),
			Required: active.RequiredScore,
		})
		return nil

	case ActSkipBlind:
		if err := run.SkipBlind(); err != nil {
			return err
		}
		b.add(Event{Type: EventBlindSkipped, Ante: run.Ante()})
		return nil

	case ActSelect:
		for _, i := range action.Indices {
			if err := run.SelectCard(i); err != nil {
				return err
			}
		}
		return nil

	case ActDeselect:
		for _, i := range action.Indices {
			if err := run.DeselectCard(i); err != nil {
				return err
			}
		}
		return nil

	case ActSortRank:
		run.SortByRank()
		return nil

	case ActSortSuit:
		run.SortBySuit()
		return nil

	case ActPlay:
		blindBefore := run.Blinds().Active()
		result, err := run.PlayHand()
		if err != nil {
			return err
		}
		ev := Event{
			Type:       EventHandPlayed,
			Hand:       result.Hand.String(),
			Chips:      result.Score.Chips,
			Mult:       result.Score.Mult,
			Score:      result.FinalScore,
			RoundScore: run.RoundScore(),
			Money:      run.Money(),
		}
		for _, c := range result.ScoringCards {
			ev.Cards = append(ev.Cards, c.String())
		}
		b.add(ev)
		if blindBefore != nil && blindBefore.Status == balatro.BlindComplete {
			b.add(Event{
				Type:  EventBlindComplete,
				Blind: blindBefore.Type.String(),
				Money: run.Money(),
			})
		}
		return nil

	case ActDiscard:
		if err := run.DiscardSelected(); err != nil {
			return err
		}
		if err := run.DrawHand(); err != nil {
			return err
		}
		b.add(Event{Type: EventDiscarded, Round: run.Round()})
		return nil

	case ActDraw:
		return run.DrawHand()

	case ActUpgradePlanet:
		ht, err := balatro.ParseHandType(action.Hand)
		if err != nil {
			return err
		}
		if err := run.UpgradePlanet(ht); err != nil {
			return err
		}
		b.add(Event{Type: EventPlanetUpgrade, Hand: action.Hand})
		return nil

	case ActNewAnte:
		if err := run.StartNewAnte(); err != nil {
			return err
		}
		b.add(Event{Type: EventAnteStarted, Ante: run.Ante()})
		return nil
	}
	return fmt.Errorf("unknown action type %q", action.Type)
}

type tapeBuilder struct {
	tape *Tape
	seq  uint64
}

func (b *tapeBuilder) add(ev Event) {
	b.seq++
	ev.Seq = b.seq
	b.tape.Events = append(b.tape.Events, ev)
}
