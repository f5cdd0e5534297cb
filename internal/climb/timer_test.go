package climb

import "testing"

func TestTimerResetFullFraction(t *testing.T) {
	var timer MoveTimer
	timer.Reset(3000)

	if got := timer.Fraction(); got != 1.0 {
		t.Errorf("Fraction() after Reset = %f, expected 1.0", got)
	}
	if timer.Expired() {
		t.Error("Fresh timer should not be expired")
	}
	if timer.AllowanceMs() != 3000 || timer.RemainingMs() != 3000 {
		t.Errorf("Reset(3000): allowance=%f remaining=%f", timer.AllowanceMs(), timer.RemainingMs())
	}
}

func TestTimerTick(t *testing.T) {
	var timer MoveTimer
	timer.Reset(1000)

	timer.Tick(250)
	if got := timer.Fraction(); got != 0.75 {
		t.Errorf("Fraction() = %f, expected 0.75", got)
	}

	timer.Tick(750)
	if !timer.Expired() {
		t.Error("Timer should be expired after full elapsed time")
	}
}

func TestTimerFloorsAtZero(t *testing.T) {
	var timer MoveTimer
	timer.Reset(100)

	timer.Tick(5000)
	if timer.RemainingMs() != 0 {
		t.Errorf("RemainingMs() = %f, expected 0 (floored)", timer.RemainingMs())
	}
	if timer.Fraction() != 0 {
		t.Errorf("Fraction() = %f, expected 0", timer.Fraction())
	}
}

func TestTimerResetAfterExpiry(t *testing.T) {
	var timer MoveTimer
	timer.Reset(500)
	timer.Tick(600)

	timer.Reset(500)
	if timer.Expired() {
		t.Error("Timer should not be expired after reset")
	}
	if timer.Fraction() != 1.0 {
		t.Errorf("Fraction() after second reset = %f, expected 1.0", timer.Fraction())
	}
}

func TestTimerGuardsBadAllowance(t *testing.T) {
	var timer MoveTimer
	timer.Reset(0)

	// Zero allowance is nudged positive rather than dividing by zero
	if timer.Fraction() != 1.0 {
		t.Errorf("Fraction() with guarded allowance = %f, expected 1.0", timer.Fraction())
	}
}

func TestZeroTimerFraction(t *testing.T) {
	var timer MoveTimer // never reset

	if timer.Fraction() != 0 {
		t.Errorf("Fraction() on zero timer = %f, expected 0", timer.Fraction())
	}
}
