package replay

// RunSpec is a scripted run: seed, starting loadout and an ordered list of
// actions. Feeding the same spec to Generate always yields the same tape.
type RunSpec struct {
	Seed     int64        `json:"seed"`
	Stake    string       `json:"stake,omitempty"`
	HandSize int          `json:"hand_size,omitempty"`
	Jokers   []string     `json:"jokers,omitempty"`
	Actions  []ActionSpec `json:"actions"`
}

// ActionSpec is one scripted step. Indices applies to select/deselect,
// Hand to upgrade_planet.
type ActionSpec struct {
	Type    string `json:"type"`
	Indices []int  `json:"indices,omitempty"`
	Hand    string `json:"hand,omitempty"`
}

// Action types accepted in a spec.
const (
	ActStartBlind    = "start_blind"
	ActSkipBlind     = "skip_blind"
	ActSelect        = "select"
	ActDeselect      = "deselect"
	ActSortRank      = "sort_rank"
	ActSortSuit      = "sort_suit"
	ActPlay          = "play"
	ActDiscard       = "discard"
	ActDraw          = "draw"
	ActUpgradePlanet = "upgrade_planet"
	ActNewAnte       = "new_ante"
)

const TapeVersion = 1

// Tape is the generated event log, one event per observable transition.
type Tape struct {
	TapeVersion int     `json:"tape_version"`
	Seed        int64   `json:"seed"`
	Stake       string  `json:"stake"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`

	// populated per event type; zero values are omitted on the wire
	Ante       int     `json:"ante,omitempty"`
	Round      int     `json:"round,omitempty"`
	Blind      string  `json:"blind,omitempty"`
	Required   int     `json:"required,omitempty"`
	Hand       string  `json:"hand,omitempty"`
	Cards      []string `json:"cards,omitempty"`
	Chips      int     `json:"chips,omitempty"`
	Mult       float64 `json:"mult,omitempty"`
	Score      int     `json:"score,omitempty"`
	RoundScore int     `json:"round_score,omitempty"`
	Money      int     `json:"money,omitempty"`
	Ended      bool    `json:"ended,omitempty"`
}

// Event types emitted into a tape.
const (
	EventBlindStarted  = "blind_started"
	EventBlindSkipped  = "blind_skipped"
	EventHandPlayed    = "hand_played"
	EventBlindComplete = "blind_complete"
	EventDiscarded     = "discarded"
	EventPlanetUpgrade = "planet_upgraded"
	EventAnteStarted   = "ante_started"
	EventRunEnded      = "run_ended"
)
