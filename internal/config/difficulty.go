package config

// ApplyPaddlePreset modifies a paddle-ball config for a difficulty preset.
func ApplyPaddlePreset(cfg *PaddleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Milestones.Enabled = false
		cfg.Ball.HitSpeedUp = 1
	case DifficultyEasy:
		cfg.Gameplay.Lives++
		cfg.Paddle.Width *= 1.25
		cfg.Ball.SpeedX *= 0.85
		cfg.Ball.SpeedY *= 0.85
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-1)
		cfg.Paddle.Width *= 0.8
		cfg.Ball.SpeedX *= 1.2
		cfg.Ball.SpeedY *= 1.2
		cfg.Ball.MaxComponent *= 1.2
	}
}

// ApplyHelixPreset modifies the helix config for a difficulty preset.
func ApplyHelixPreset(cfg *HelixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 1
		cfg.Pacing.GraceMS *= 2
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartLevel = 6
		cfg.Pacing.MercyCombo = 0
	}
}
