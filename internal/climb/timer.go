package climb

// MoveTimer is the per-move countdown. It is reset to the full allowance at
// game start and after every correct move, and decremented by elapsed frame
// time only while the game is active (the caller gates ticking on phase).
type MoveTimer struct {
	remaining float64 // Milliseconds left, floored at 0
	allowance float64 // Milliseconds granted at the last reset
}

// Reset sets the countdown to a full allowance.
func (t *MoveTimer) Reset(allowanceMs float64) {
	if allowanceMs <= 0 {
		allowanceMs = 1
	}
	t.allowance = allowanceMs
	t.remaining = allowanceMs
}

// Tick subtracts elapsed frame time, floored at 0.
func (t *MoveTimer) Tick(elapsedMs float64) {
	t.remaining -= elapsedMs
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Expired reports whether the countdown has run out.
func (t *MoveTimer) Expired() bool {
	return t.remaining <= 0
}

// Fraction returns remaining/allowance in [0, 1], for the timer bar.
func (t *MoveTimer) Fraction() float64 {
	if t.allowance <= 0 {
		return 0
	}
	return t.remaining / t.allowance
}

// RemainingMs returns the milliseconds left on the countdown.
func (t *MoveTimer) RemainingMs() float64 {
	return t.remaining
}

// AllowanceMs returns the milliseconds granted at the last reset.
func (t *MoveTimer) AllowanceMs() float64 {
	return t.allowance
}
