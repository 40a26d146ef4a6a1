package tetris

import "math/rand"

// Bag is a 7-bag randomizer: the draw sequence is a concatenation of
// uniformly shuffled permutations of the seven kinds.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag pre-filled with one shuffled set of kinds.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		queue: make([]Kind, 0, 2*KindCount),
	}
	b.refill()
	return b
}

// refill appends a Fisher-Yates shuffle of the seven kinds to the queue.
func (b *Bag) refill() {
	set := Kinds()
	for i := len(set) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		set[i], set[j] = set[j], set[i]
	}
	b.queue = append(b.queue, set[:]...)
}

// Draw pops the front kind. The queue is topped up whenever it drops
// below seven entries, so Draw and Peek never see an empty bag.
func (b *Bag) Draw() Kind {
	k := b.queue[0]
	b.queue = b.queue[1:]
	if len(b.queue) < KindCount {
		b.refill()
	}
	return k
}

// Peek returns the kind the next Draw will return.
func (b *Bag) Peek() Kind {
	return b.queue[0]
}

// Len returns the number of queued kinds.
func (b *Bag) Len() int {
	return len(b.queue)
}
