package balatro

import "testing"

func TestStreamsSameSeedSameSequence(t *testing.T) {
	a := NewStreams(12345)
	b := NewStreams(12345)
	for i := 0; i < 100; i++ {
		if got, want := a.Stream("shop").Intn(1000), b.Stream("shop").Intn(1000); got != want {
			t.Fatalf("draw %d: %d != %d", i, got, want)
		}
	}
}

func TestStreamsDifferentSeedsDiverge(t *testing.T) {
	a := NewStreams(1)
	b := NewStreams(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Stream("x").Intn(1 << 30) != b.Stream("x").Intn(1 << 30) {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical sequences")
	}
}

// 流之间互不干扰: 对一个流的消耗不能改变另一个流的序列
func TestStreamIndependence(t *testing.T) {
	a := NewStreams(777)
	b := NewStreams(777)

	// a interleaves heavy use of an unrelated stream; b does not.
	for i := 0; i < 50; i++ {
		a.Stream("noise").Intn(100)
	}

	for i := 0; i < 50; i++ {
		if got, want := a.Stream(StreamDeckShuffle).Intn(52), b.Stream(StreamDeckShuffle).Intn(52); got != want {
			t.Fatalf("draw %d: interleaving another stream changed the sequence: %d != %d", i, got, want)
		}
	}
}

func TestStreamCreationOrderIrrelevant(t *testing.T) {
	a := NewStreams(9)
	b := NewStreams(9)

	a.Stream("first")
	a.Stream("second")
	b.Stream("second")
	b.Stream("first")

	for i := 0; i < 10; i++ {
		if a.Stream("second").Intn(100) != b.Stream("second").Intn(100) {
			t.Fatal("creation order changed a stream's sequence")
		}
	}
}

func TestStreamsFastForward(t *testing.T) {
	a := NewStreams(31337)
	for i := 0; i < 17; i++ {
		a.Stream("deal").Intn(52)
	}
	for i := 0; i < 5; i++ {
		a.Stream("shop").Float64()
	}
	pos := a.Positions()

	b := NewStreams(31337)
	b.FastForward(pos)

	for i := 0; i < 30; i++ {
		if got, want := b.Stream("deal").Intn(52), a.Stream("deal").Intn(52); got != want {
			t.Fatalf("deal draw %d after fast-forward: %d != %d", i, got, want)
		}
		if got, want := b.Stream("shop").Intn(52), a.Stream("shop").Intn(52); got != want {
			t.Fatalf("shop draw %d after fast-forward: %d != %d", i, got, want)
		}
	}
}
