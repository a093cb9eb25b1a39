package balatro

import "fmt"

// PlanetDefinition is the plain, already-validated data the catalogue layer
// hands to the core: one entry per poker hand type.
type PlanetDefinition struct {
	Name      string
	Hand      HandType
	BaseChips int
	BaseMult  int
	AddChips  int
	AddMult   int
}

// Planet tracks the upgradeable level for one poker hand type. Upgrading is
// the only mutation.
type Planet struct {
	PlanetDefinition
	Level int
}

// BaseScore is the effective base for the planet's hand type:
// base + add*(level-1) on both axes.
func (p *Planet) BaseScore() HandScore {
	return HandScore{
		Chips: p.BaseChips + p.AddChips*(p.Level-1),
		Mult:  float64(p.BaseMult + p.AddMult*(p.Level-1)),
	}
}

func (p *Planet) Upgrade() {
	p.Level++
}

// Planets is the per-run registry, one planet per hand type.
type Planets struct {
	byHand map[HandType]*Planet
}

// NewPlanets builds a registry from catalogue definitions, all at level 1.
// Every hand type must be covered exactly once.
func NewPlanets(defs []PlanetDefinition) (*Planets, error) {
	byHand := make(map[HandType]*Planet, len(defs))
	for _, def := range defs {
		if _, ok := HandTypeDictionary[def.Hand]; !ok {
			return nil, ErrConfiguration(fmt.Sprintf("planet %q: unknown hand type %d", def.Name, def.Hand))
		}
		if _, dup := byHand[def.Hand]; dup {
			return nil, ErrConfiguration(fmt.Sprintf("duplicate planet for hand type %s", def.Hand))
		}
		byHand[def.Hand] = &Planet{PlanetDefinition: def, Level: 1}
	}
	for _, ht := range HandTypes {
		if _, ok := byHand[ht]; !ok {
			return nil, ErrConfiguration(fmt.Sprintf("missing planet for hand type %s", ht))
		}
	}
	return &Planets{byHand: byHand}, nil
}

func (ps *Planets) Get(ht HandType) (*Planet, bool) {
	p, ok := ps.byHand[ht]
	return p, ok
}

func (ps *Planets) Upgrade(ht HandType) error {
	p, ok := ps.byHand[ht]
	if !ok {
		return ErrInvalidState(fmt.Sprintf("no planet for hand type %s", ht))
	}
	p.Upgrade()
	return nil
}

func (ps *Planets) All() []*Planet {
	out := make([]*Planet, 0, len(ps.byHand))
	for _, ht := range HandTypes {
		out = append(out, ps.byHand[ht])
	}
	return out
}

// DefaultPlanetDefinitions mirrors the stock planet table so the engine is
// usable without an external catalogue.
func DefaultPlanetDefinitions() []PlanetDefinition {
	return []PlanetDefinition{
		{Name: "Pluto", Hand: HandHighCard, BaseChips: 5, BaseMult: 1, AddChips: 10, AddMult: 1},
		{Name: "Mercury", Hand: HandPair, BaseChips: 10, BaseMult: 2, AddChips: 15, AddMult: 1},
		{Name: "Uranus", Hand: HandTwoPair, BaseChips: 20, BaseMult: 2, AddChips: 20, AddMult: 1},
		{Name: "Venus", Hand: HandThreeOfKind, BaseChips: 30, BaseMult: 3, AddChips: 20, AddMult: 2},
		{Name: "Saturn", Hand: HandStraight, BaseChips: 30, BaseMult: 4, AddChips: 30, AddMult: 3},
		{Name: "Jupiter", Hand: HandFlush, BaseChips: 35, BaseMult: 4, AddChips: 15, AddMult: 2},
		{Name: "Earth", Hand: HandFullHouse, BaseChips: 40, BaseMult: 4, AddChips: 25, AddMult: 2},
		{Name: "Mars", Hand: HandFourOfKind, BaseChips: 60, BaseMult: 7, AddChips: 30, AddMult: 3},
		{Name: "Neptune", Hand: HandStraightFlush, BaseChips: 100, BaseMult: 8, AddChips: 40, AddMult: 4},
		{Name: "Planet X", Hand: HandFiveOfKind, BaseChips: 120, BaseMult: 12, AddChips: 35, AddMult: 3},
		{Name: "Ceres", Hand: HandFlushHouse, BaseChips: 140, BaseMult: 14, AddChips: 40, AddMult: 4},
		{Name: "Eris", Hand: HandFlushFive, BaseChips: 160, BaseMult: 16, AddChips: 50, AddMult: 3},
	}
}

// DefaultPlanets never fails; the default table covers every hand type.
func DefaultPlanets() *Planets {
	ps, err := NewPlanets(DefaultPlanetDefinitions())
	if err != nil {
		panic(err)
	}
	return ps
}
