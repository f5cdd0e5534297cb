package climb

// Snapshot captures the complete game state for determinism testing and the
// render sink's read-only view.
type Snapshot struct {
	Tick          int
	Phase         string
	Score         int
	QueueLen      int
	ActiveSide    string
	Holds         []Hold
	TimerFraction float64
	ScrollPending float64
	Cause         string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tickCount,
		Phase:         g.phase.String(),
		Score:         g.score,
		TimerFraction: g.timer.Fraction(),
		ScrollPending: g.scroll.pending(),
		Cause:         g.cause.String(),
	}

	if g.wall != nil {
		snap.QueueLen = g.wall.Len()
		snap.ActiveSide = g.wall.Active().Side.String()
		snap.Holds = append([]Hold(nil), g.wall.Holds()...)
	}

	return snap
}
