// balatro-sim plays a seeded run with a naive strategy and prints every
// hand as it scores. Useful for eyeballing engine behavior and for
// generating save files to poke at.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"balatro-lite/balatro"
	"balatro-lite/card"
	"balatro-lite/catalog"
	"balatro-lite/save"
)

func main() {
	var (
		seed     = flag.Int64("seed", 1, "run seed")
		stake    = flag.String("stake", "white", "stake level (white..gold)")
		maxAnte  = flag.Int("antes", 3, "stop after this many antes")
		jokerIDs = flag.String("jokers", "joker,lusty_joker", "comma-separated joker ids from the catalogue")
		dbPath   = flag.String("db", "", "sqlite path to save the final snapshot (empty = no save)")
		verbose  = flag.Bool("v", false, "engine debug logging")
	)
	flag.Parse()

	if err := run(*seed, *stake, *maxAnte, *jokerIDs, *dbPath, *verbose); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(seed int64, stakeName string, maxAnte int, jokerIDs, dbPath string, verbose bool) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}
	stake, err := balatro.ParseStakeLevel(stakeName)
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	r, err := balatro.NewRun(balatro.Config{Seed: seed, Stake: stake, Logger: logger})
	if err != nil {
		return err
	}
	r.RegisterSpecial("trade_discards_for_hands", func(run *balatro.Run, j *balatro.Joker) error {
		run.AdjustLimits(3, -run.DiscardsRemaining())
		return nil
	})

	for _, id := range splitList(jokerIDs) {
		def, ok := cat.Joker(id)
		if !ok {
			return fmt.Errorf("joker %q not in catalogue", id)
		}
		if _, err := r.AddJoker(def); err != nil {
			return err
		}
	}

	pterm.DefaultSection.Printfln("balatro-lite sim (seed=%d stake=%s)", seed, stake)

	for !r.Ended() && r.Ante() <= maxAnte {
		if r.Blinds().Next() == nil && r.Blinds().Active() == nil {
			if err := r.StartNewAnte(); err != nil {
				return err
			}
			pterm.Info.Printfln("ante %d", r.Ante())
		}
		if err := playBlind(r); err != nil {
			return err
		}
	}

	renderOutcome(r, maxAnte)

	if dbPath != "" {
		store, err := save.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		runID := fmt.Sprintf("sim-%d-%s", seed, stake)
		if err := store.Save(context.Background(), runID, r.Snapshot()); err != nil {
			return err
		}
		pterm.Success.Printfln("snapshot saved as %s", runID)
	}
	return nil
}

func playBlind(r *balatro.Run) error {
	if err := r.StartBlind(); err != nil {
		return err
	}
	active := r.Blinds().Active()
	pterm.DefaultSection.WithLevel(2).Printfln("%s blind: need %d", active.Type, active.RequiredScore)

	for !r.Ended() && active.Status == balatro.BlindActive {
		if shouldDiscard(r) {
			if err := discardWorst(r); err != nil {
				return err
			}
			continue
		}
		if err := selectBest(r); err != nil {
			return err
		}
		res, err := r.PlayHand()
		if err != nil {
			return err
		}
		pterm.Printfln("  played %s for %d (%d x %.1f)  [%d/%d]",
			pterm.LightCyan(res.Hand.String()), res.Score.Final(),
			res.Score.Chips, res.Score.Mult, r.RoundScore(), active.RequiredScore)
		if r.Hand().Len() < 8 && !r.Ended() && active.Status == balatro.BlindActive {
			if err := r.DrawHand(); err != nil {
				return err
			}
		}
	}

	if active.Status == balatro.BlindComplete {
		pterm.Success.Printfln("  blind beaten, $%d in the bank", r.Money())
	}
	return nil
}

// selectBest picks the largest same-rank group, padded with the highest
// loose cards up to five. Crude, but it finds pairs and trips reliably.
func selectBest(r *balatro.Run) error {
	hand := r.Hand()
	hand.ClearSelection()

	byRank := make(map[card.Rank][]int)
	for i, c := range hand.Cards() {
		byRank[c.Rank] = append(byRank[c.Rank], i)
	}
	var best []int
	var bestRank card.Rank
	for rank, idxs := range byRank {
		if len(idxs) > len(best) || (len(idxs) == len(best) && rank > bestRank) {
			best, bestRank = idxs, rank
		}
	}

	picked := make(map[int]bool, 5)
	for _, i := range best {
		if len(picked) == 5 {
			break
		}
		picked[i] = true
	}

	// pad with the highest remaining cards
	rest := make([]int, 0, hand.Len())
	for i := range hand.Cards() {
		if !picked[i] {
			rest = append(rest, i)
		}
	}
	sort.Slice(rest, func(a, b int) bool {
		return hand.Cards()[rest[a]].Rank > hand.Cards()[rest[b]].Rank
	})
	for _, i := range rest {
		if len(picked) == 5 {
			break
		}
		picked[i] = true
	}

	for i := range picked {
		if err := hand.Select(i); err != nil {
			return err
		}
	}
	return nil
}

// shouldDiscard: burn a discard when the hand has no pair and discards are
// still cheap relative to remaining hands.
func shouldDiscard(r *balatro.Run) bool {
	if r.DiscardsRemaining() == 0 || r.HandsRemaining() <= 1 {
		return false
	}
	counts := make(map[card.Rank]int)
	for _, c := range r.Hand().Cards() {
		counts[c.Rank]++
		if counts[c.Rank] >= 2 {
			return false
		}
	}
	return true
}

func discardWorst(r *balatro.Run) error {
	hand := r.Hand()
	hand.ClearSelection()

	idxs := make([]int, hand.Len())
	for i := range idxs {
		idxs[i] = i
	}
	sort.Slice(idxs, func(a, b int) bool {
		return hand.Cards()[idxs[a]].Rank < hand.Cards()[idxs[b]].Rank
	})
	for _, i := range idxs[:min(3, len(idxs))] {
		if err := hand.Select(i); err != nil {
			return err
		}
	}
	if err := r.DiscardSelected(); err != nil {
		return err
	}
	return r.DrawHand()
}

func renderOutcome(r *balatro.Run, maxAnte int) {
	rows := pterm.TableData{
		{"ante", fmt.Sprintf("%d", r.Ante())},
		{"money", fmt.Sprintf("$%d", r.Money())},
		{"rounds played", fmt.Sprintf("%d", r.Round())},
	}
	_ = pterm.DefaultTable.WithData(rows).Render()
	if r.Ended() {
		pterm.Error.Printfln("run over: blind not beaten")
		return
	}
	pterm.Success.Printfln("survived %d antes", maxAnte)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
