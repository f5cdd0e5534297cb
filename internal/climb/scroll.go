package climb

// scrollState interpolates the wall's visual advance after a correct move.
// It exists only during the transition phase and is discarded on completion.
// Distance-based: the transition ends when the accumulated offset reaches the
// target, not on a wall clock. It is non-cancellable and non-reentrant; the
// game drops move input and holds the timer until it completes.
type scrollState struct {
	offset float64 // Accumulated scroll distance in cells
	target float64 // Total distance to cover (one hold row)
	speed  float64 // Cells advanced per tick
}

// newScrollState starts a scroll toward target at the given speed.
// A non-positive speed would never terminate, so it snaps to the target.
func newScrollState(target, speed float64) scrollState {
	if speed <= 0 {
		speed = target
	}
	return scrollState{target: target, speed: speed}
}

// advance moves the scroll forward one tick. Returns true when done.
func (s *scrollState) advance() bool {
	s.offset += s.speed
	if s.offset >= s.target {
		s.offset = s.target
		return true
	}
	return false
}

// pending returns the distance still to cover. The renderer draws holds
// shifted up by this amount so they slide down into place; zero outside a
// transition, so the same draw path serves both modes.
func (s *scrollState) pending() float64 {
	return s.target - s.offset
}
