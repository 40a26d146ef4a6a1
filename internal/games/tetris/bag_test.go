package tetris

import (
	"math/rand"
	"testing"
)

func TestBagDrawsPermutations(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		bag := NewBag(rand.New(rand.NewSource(seed)))

		for round := 0; round < 10; round++ {
			seen := make(map[Kind]bool, KindCount)
			for i := 0; i < KindCount; i++ {
				k := bag.Draw()
				if k == KindNone {
					t.Fatalf("seed %d: drew KindNone", seed)
				}
				if seen[k] {
					t.Fatalf("seed %d round %d: %v repeated within one bag", seed, round, k)
				}
				seen[k] = true
			}
		}
	}
}

func TestBagNeverRunsLow(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(42)))
	if bag.Len() != KindCount {
		t.Fatalf("new bag Len() = %d, want %d", bag.Len(), KindCount)
	}

	for i := 0; i < 100; i++ {
		next := bag.Peek()
		if got := bag.Draw(); got != next {
			t.Fatalf("draw %d: Draw() = %v, Peek() said %v", i, got, next)
		}
		if bag.Len() < KindCount {
			t.Fatalf("draw %d: Len() = %d, want >= %d", i, bag.Len(), KindCount)
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(7)))
	b := NewBag(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		if ka, kb := a.Draw(), b.Draw(); ka != kb {
			t.Fatalf("draw %d differs with same seed: %v vs %v", i, ka, kb)
		}
	}
}

func TestBagFirstKindCoversAll(t *testing.T) {
	// Over many seeds, every kind should lead a bag at least once.
	leads := make(map[Kind]int)
	for seed := int64(0); seed < 500; seed++ {
		leads[NewBag(rand.New(rand.NewSource(seed))).Peek()]++
	}
	for _, k := range Kinds() {
		if leads[k] == 0 {
			t.Errorf("%v never drawn first across 500 seeds", k)
		}
	}
}
