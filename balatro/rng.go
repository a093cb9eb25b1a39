package balatro

import (
	"hash/fnv"
	"math/rand"
	"sort"
)

// Stream names used by the engine itself. Callers may open any name they
// like; a name's sequence depends only on the run seed and that stream's
// own call history.
const (
	StreamDeckShuffle = "deck_shuffle"
)

// Streams hands out deterministic, named PRNG streams derived from one run
// seed. Each stream is seeded as seed XOR fnv64(name), created lazily and
// cached, so requesting streams in a different order never perturbs any
// other stream's sequence.
type Streams struct {
	seed    int64
	streams map[string]*Stream
}

// Stream is a single named PRNG. Draw counts are tracked so a restored run
// can fast-forward the stream to where the snapshot left it.
type Stream struct {
	name  string
	src   rand.Source64
	rng   *rand.Rand
	draws uint64
}

type countingSource struct {
	src   rand.Source64
	calls *uint64
}

func (c countingSource) Int63() int64 {
	*c.calls++
	return c.src.Int63()
}

func (c countingSource) Uint64() uint64 {
	*c.calls++
	return c.src.Uint64()
}

func (c countingSource) Seed(s int64) { c.src.Seed(s) }

func NewStreams(seed int64) *Streams {
	return &Streams{
		seed:    seed,
		streams: make(map[string]*Stream),
	}
}

func (s *Streams) Seed() int64 { return s.seed }

// Stream returns the PRNG dedicated to name, creating it on first use.
func (s *Streams) Stream(name string) *Stream {
	if st, ok := s.streams[name]; ok {
		return st
	}
	st := &Stream{name: name}
	st.src = rand.NewSource(s.seed ^ nameSeed(name)).(rand.Source64)
	st.rng = rand.New(countingSource{src: st.src, calls: &st.draws})
	s.streams[name] = st
	return st
}

// Positions reports how many source draws each stream has consumed.
func (s *Streams) Positions() map[string]uint64 {
	out := make(map[string]uint64, len(s.streams))
	for name, st := range s.streams {
		out[name] = st.draws
	}
	return out
}

// FastForward replays draws so that each named stream sits at the recorded
// position. Only valid on a freshly constructed Streams.
func (s *Streams) FastForward(positions map[string]uint64) {
	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		st := s.Stream(name)
		for st.draws < positions[name] {
			st.src.Uint64()
			st.draws++
		}
	}
}

func (st *Stream) Intn(n int) int {
	return st.rng.Intn(n)
}

func (st *Stream) Float64() float64 {
	return st.rng.Float64()
}

func (st *Stream) Shuffle(n int, swap func(i, j int)) {
	st.rng.Shuffle(n, swap)
}

func nameSeed(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}
