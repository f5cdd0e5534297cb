package climb

import "math/rand"

// Wall is the ordered queue of upcoming holds. The active hold is always the
// head (index 0), the end nearest the climber. The queue length is constant
// for the wall's lifetime; Rotate drops the head and appends a fresh hold in
// a single operation, so there is never an intermediate state with an
// ambiguous active hold.
type Wall struct {
	holds []Hold
}

// NewWall generates a wall of `length` random holds.
func NewWall(length int, rng *rand.Rand) *Wall {
	if length < 1 {
		length = 1
	}
	w := &Wall{holds: make([]Hold, length)}
	for i := range w.holds {
		w.holds[i] = randomHold(rng)
	}
	return w
}

// Len returns the queue length.
func (w *Wall) Len() int {
	return len(w.holds)
}

// Active returns the hold nearest the climber without removing it.
func (w *Wall) Active() Hold {
	return w.holds[0]
}

// At returns the hold at distance i from the climber (0 = active).
func (w *Wall) At(i int) Hold {
	return w.holds[i]
}

// Holds returns the underlying hold sequence, head first.
// Callers must treat it as read-only.
func (w *Wall) Holds() []Hold {
	return w.holds
}

// Rotate consumes the active hold and appends next at the far end.
func (w *Wall) Rotate(next Hold) {
	copy(w.holds, w.holds[1:])
	w.holds[len(w.holds)-1] = next
}
