// Package config provides YAML-based game configuration loading and
// difficulty management for the climbing platform.
package config

// ClimbConfig contains all configuration for the climbing game.
type ClimbConfig struct {
	Timer      TimerConfig      `yaml:"timer"`
	Wall       WallConfig       `yaml:"wall"`
	Transition TransitionConfig `yaml:"transition"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimerConfig defines the per-move countdown parameters.
type TimerConfig struct {
	MoveMs    float64 `yaml:"move_ms"`     // Time allowed per move at base difficulty
	MinMoveMs float64 `yaml:"min_move_ms"` // Hard floor for the allowance under difficulty scaling
}

// WallConfig defines the hold queue and wall geometry.
type WallConfig struct {
	QueueLength int `yaml:"queue_length"` // Fixed queue length (classic mode)
	RowHeight   int `yaml:"row_height"`   // Vertical cells per hold row
	MinRows     int `yaml:"min_rows"`     // Lower bound when sizing the queue to the viewport
}

// TransitionConfig defines the post-move scroll animation.
type TransitionConfig struct {
	Speed float64 `yaml:"speed"` // Scroll cells advanced per tick; transition ends at one row
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReductionMs float64 `yaml:"time_reduction_ms"` // Move allowance reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyClimbPreset modifies the config based on a difficulty preset.
func ApplyClimbPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
