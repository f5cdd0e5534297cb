package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the default climbing game configuration.
// Kept in sync with defaults/climb.yaml; used as a fallback when the
// embedded YAML cannot be parsed.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Timer: TimerConfig{
			MoveMs:    3000,
			MinMoveMs: 900,
		},
		Wall: WallConfig{
			QueueLength: 12,
			RowHeight:   2,
			MinRows:     6,
		},
		Transition: TransitionConfig{
			Speed: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				TimeReductionMs: 1800,
			},
		},
	}
}
