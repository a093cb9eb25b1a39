package balatro

import (
	"testing"

	"github.com/google/uuid"
)

func TestShuffleIsPermutation(t *testing.T) {
	d := NewStandardDeck()
	st := NewStreams(1).Stream(StreamDeckShuffle)
	d.Shuffle(st)

	if d.Remaining() != 52 {
		t.Fatalf("draw pile: got %d cards, want 52", d.Remaining())
	}
	seen := make(map[uuid.UUID]bool, 52)
	for _, c := range d.DrawPile() {
		if seen[c.ID] {
			t.Fatalf("duplicate card after shuffle: %s", c)
		}
		seen[c.ID] = true
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := NewStandardDeck()
	b := NewDeck(a.Full()) // same card set, same identity
	a.Shuffle(NewStreams(42).Stream(StreamDeckShuffle))
	b.Shuffle(NewStreams(42).Stream(StreamDeckShuffle))

	for i := range a.DrawPile() {
		if a.DrawPile()[i].ID != b.DrawPile()[i].ID {
			t.Fatalf("position %d: same seed produced different orders", i)
		}
	}
}

func TestShuffleReclaimsDiscards(t *testing.T) {
	d := NewStandardDeck()
	st := NewStreams(7).Stream(StreamDeckShuffle)
	d.Shuffle(st)
	for _, c := range d.Draw(5) {
		d.Discard(c)
	}
	if d.DiscardCount() != 5 {
		t.Fatalf("discards: got %d, want 5", d.DiscardCount())
	}

	d.Shuffle(st)
	if d.Remaining() != 52 || d.DiscardCount() != 0 {
		t.Fatalf("after reshuffle: %d remaining, %d discarded", d.Remaining(), d.DiscardCount())
	}
}

// 牌堆抽空后返回短结果而非报错
func TestDrawShortRead(t *testing.T) {
	d := NewStandardDeck()
	d.Shuffle(NewStreams(3).Stream(StreamDeckShuffle))
	d.Draw(50)

	got := d.Draw(10)
	if len(got) != 2 {
		t.Fatalf("short draw: got %d cards, want 2", len(got))
	}
	if more := d.Draw(1); len(more) != 0 {
		t.Fatalf("empty pile yielded %d cards", len(more))
	}
}
