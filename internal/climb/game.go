package climb

import (
	"math/rand"

	"github.com/ddrozdov/tui-climber/internal/config"
	"github.com/ddrozdov/tui-climber/internal/core"
	"github.com/ddrozdov/tui-climber/internal/registry"
)

// Mode selects how a correct move is presented.
type Mode int

const (
	// ModeScroll inserts a bounded scrolling transition after each correct
	// move, during which input is dropped and the timer holds.
	ModeScroll Mode = iota
	// ModeClassic rotates the queue instantly with no transition.
	ModeClassic
)

// Phase is the game's lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseActive
	PhaseTransition
	PhaseGameOver
)

// String returns a stable name for the phase, used in snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseActive:
		return "active"
	case PhaseTransition:
		return "transition"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause records why a run ended. Wrong side and timeout are identical in
// consequence; the distinction is kept for score telemetry and tests.
type EndCause int

const (
	EndNone EndCause = iota
	EndWrongSide
	EndTimeout
)

// String returns a stable name for the cause, used in score storage.
func (c EndCause) String() string {
	switch c {
	case EndWrongSide:
		return "wrong_side"
	case EndTimeout:
		return "timeout"
	default:
		return ""
	}
}

// Package-level settings applied to games created after the call.
// Set by the CLI before instantiating via the registry.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequently created games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the climbing game logic for both presentation modes.
type Game struct {
	mode Mode

	config     core.RuntimeConfig
	conf       config.ClimbConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	wall   *Wall
	timer  MoveTimer
	scroll scrollState

	phase     Phase
	score     int
	paused    bool
	cause     EndCause
	tickCount int
}

// New creates a new climbing game in the given mode.
func New(mode Mode) *Game {
	conf, err := config.LoadClimb(configPath)
	if err != nil {
		conf = config.DefaultClimbConfig()
	}
	if difficultyPreset != "" {
		config.ApplyClimbPreset(&conf, config.DifficultyPreset(difficultyPreset))
	}

	return &Game{
		mode:       mode,
		conf:       conf,
		difficulty: config.NewDifficultyManager(conf.Difficulty),
		phase:      PhaseNotStarted,
	}
}

// NewWithConfig creates a game with an explicit configuration, bypassing the
// file search. Used by tests.
func NewWithConfig(mode Mode, conf config.ClimbConfig) *Game {
	return &Game{
		mode:       mode,
		conf:       conf,
		difficulty: config.NewDifficultyManager(conf.Difficulty),
		phase:      PhaseNotStarted,
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "climb-classic"
	}
	return "climb"
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Wall Climber (Classic)"
	}
	return "Wall Climber"
}

// Reset initializes or restarts the game. All state is rebuilt: score to 0,
// timer to a full allowance, a fresh wall of the configured length.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.paused = false
	g.cause = EndNone
	g.tickCount = 0
	g.scroll = scrollState{}

	g.wall = NewWall(g.queueLength(), g.rng)
	g.timer.Reset(g.allowance())
	g.phase = PhaseActive
}

// queueLength returns the wall length for the current mode: the configured
// fixed length in classic mode, or as many rows as fit the viewport in
// scroll mode.
func (g *Game) queueLength() int {
	if g.mode == ModeClassic {
		if g.conf.Wall.QueueLength > 0 {
			return g.conf.Wall.QueueLength
		}
		return 12
	}

	rows := (g.config.ScreenH - hudRows) / g.rowHeight()
	minRows := g.conf.Wall.MinRows
	if minRows < 1 {
		minRows = 1
	}
	if rows < minRows {
		rows = minRows
	}
	return rows
}

// rowHeight returns the vertical cells per hold row.
func (g *Game) rowHeight() int {
	if g.conf.Wall.RowHeight > 0 {
		return g.conf.Wall.RowHeight
	}
	return 2
}

// allowance returns the current per-move time budget in milliseconds.
func (g *Game) allowance() float64 {
	base := g.conf.Timer.MoveMs
	if base <= 0 {
		base = 3000
	}
	return g.difficulty.Allowance(base, g.conf.Timer.MinMoveMs, g.score, g.tickCount)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver || g.phase == PhaseNotStarted {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.phase {
	case PhaseTransition:
		// Move input is dropped and the timer holds until the scroll lands.
		if g.scroll.advance() {
			g.scroll = scrollState{}
			g.phase = PhaseActive
		}

	case PhaseActive:
		if side, ok := moveInput(in); ok {
			g.applyMove(side)
		} else {
			g.timer.Tick(g.config.MsPerTick())
			if g.timer.Expired() {
				g.phase = PhaseGameOver
				g.cause = EndTimeout
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// moveInput extracts at most one move from the frame. Left wins if both
// arrived in the same tick.
func moveInput(in core.InputFrame) (Side, bool) {
	switch {
	case in.Has(core.ActionLeft):
		return SideLeft, true
	case in.Has(core.ActionRight):
		return SideRight, true
	}
	return SideLeft, false
}

// applyMove validates a move against the active hold. The rotation is atomic
// with validation; in scroll mode the transition that follows is visual only.
func (g *Game) applyMove(side Side) {
	if side != g.wall.Active().Side {
		g.phase = PhaseGameOver
		g.cause = EndWrongSide
		return
	}

	g.score++
	g.timer.Reset(g.allowance())
	g.wall.Rotate(randomHold(g.rng))

	if g.mode == ModeScroll {
		g.scroll = newScrollState(float64(g.rowHeight()), g.conf.Transition.Speed)
		g.phase = PhaseTransition
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.score,
		GameOver:      g.phase == PhaseGameOver,
		Paused:        g.paused,
		TimerFraction: g.timer.Fraction(),
	}
}

// Cause returns why the run ended, or EndNone while it is still going.
func (g *Game) Cause() EndCause {
	return g.cause
}

// EndCause implements registry.EndReporter for score telemetry.
func (g *Game) EndCause() string {
	return g.cause.String()
}

// Register both variants with the registry
func init() {
	registry.Register("climb", func() registry.Game {
		return New(ModeScroll)
	})
	registry.Register("climb-classic", func() registry.Game {
		return New(ModeClassic)
	})
}
