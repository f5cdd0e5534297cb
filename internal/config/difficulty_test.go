package config

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 40,
		},
		Scaling: ScalingConfig{
			TimeReductionMs: 2000,
		},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level at score 0 = %f, expected 0.0", got)
	}
	if got := d.Level(20, 0); got != 0.5 {
		t.Errorf("Level at half max = %f, expected 0.5", got)
	}
	if got := d.Level(40, 0); got != 1.0 {
		t.Errorf("Level at max = %f, expected 1.0", got)
	}
	// Clamped past max
	if got := d.Level(400, 0); got != 1.0 {
		t.Errorf("Level past max = %f, expected 1.0", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Disabled difficulty should stay at initial level, got %f", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false when disabled")
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Progression.Type = "time"
	cfg.Progression.MaxAt = 100
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 50); got != 0.5 {
		t.Errorf("Time-based level at half max = %f, expected 0.5", got)
	}
}

func TestDifficultyInitialLevelInterpolation(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	// At half progress, level interpolates from 0.5 toward 1.0
	if got := d.Level(20, 0); got != 0.75 {
		t.Errorf("Level = %f, expected 0.75", got)
	}
}

func TestAllowanceShrinks(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if got := d.Allowance(3000, 800, 0, 0); got != 3000 {
		t.Errorf("Allowance at level 0 = %f, expected 3000", got)
	}
	if got := d.Allowance(3000, 800, 20, 0); got != 2000 {
		t.Errorf("Allowance at level 0.5 = %f, expected 2000", got)
	}
	if got := d.Allowance(3000, 800, 40, 0); got != 1000 {
		t.Errorf("Allowance at level 1.0 = %f, expected 1000", got)
	}
}

func TestAllowanceFloor(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Scaling.TimeReductionMs = 5000 // Would reduce below the floor
	d := NewDifficultyManager(cfg)

	if got := d.Allowance(3000, 800, 40, 0); got != 800 {
		t.Errorf("Allowance should be floored at minMs, got %f", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	d.SetInitialLevel(2.0)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp to 1.0, got %f", got)
	}

	d.SetInitialLevel(-1.0)
	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("SetInitialLevel should clamp to 0.0, got %f", got)
	}
}

func TestApplyClimbPreset(t *testing.T) {
	cfg := DefaultClimbConfig()

	ApplyClimbPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset: enabled=%v level=%f", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyClimbPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}
