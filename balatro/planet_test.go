package balatro

import "testing"

func TestPlanetBaseScoreScalesWithLevel(t *testing.T) {
	ps := DefaultPlanets()
	p, _ := ps.Get(HandPair)

	if s := p.BaseScore(); s.Chips != 10 || s.Mult != 2 {
		t.Fatalf("level 1 pair: got %d/%v, want 10/2", s.Chips, s.Mult)
	}
	p.Upgrade()
	p.Upgrade()
	// Mercury: +15 chips, +1 mult per level
	if s := p.BaseScore(); s.Chips != 40 || s.Mult != 4 {
		t.Fatalf("level 3 pair: got %d/%v, want 40/4", s.Chips, s.Mult)
	}
}

func TestPlanetsUpgradeUnknownHand(t *testing.T) {
	ps := DefaultPlanets()
	if err := ps.Upgrade(HandType(200)); err == nil {
		t.Fatal("upgrading an unknown hand type should fail")
	}
}

func TestNewPlanetsRejectsIncompleteTable(t *testing.T) {
	defs := DefaultPlanetDefinitions()
	if _, err := NewPlanets(defs[:len(defs)-1]); err == nil {
		t.Fatal("missing hand type should fail validation")
	}

	dup := append([]PlanetDefinition{}, defs...)
	dup[1].Hand = dup[0].Hand
	if _, err := NewPlanets(dup); err == nil {
		t.Fatal("duplicate hand type should fail validation")
	}

	bad := append([]PlanetDefinition{}, defs...)
	bad[0].Hand = HandType(99)
	if _, err := NewPlanets(bad); err == nil {
		t.Fatal("unknown hand type should fail validation")
	}
}

func TestPlanetsAllFixedOrder(t *testing.T) {
	ps := DefaultPlanets()
	all := ps.All()
	if len(all) != len(HandTypes) {
		t.Fatalf("got %d planets, want %d", len(all), len(HandTypes))
	}
	for i, p := range all {
		if p.Hand != HandTypes[i] {
			t.Fatalf("position %d: got %s, want %s", i, p.Hand, HandTypes[i])
		}
	}
}
