package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/paddle.yaml
var defaultPaddleYAML []byte

//go:embed defaults/helix.yaml
var defaultHelixYAML []byte

// Paddle-ball variant names used in paddle.yaml.
const (
	VariantClassic = "classic"
	VariantBricks  = "bricks"
	VariantTargets = "targets"
)

// DefaultPaddleConfig returns the hard-coded tuning for a variant.
// It mirrors the embedded YAML and is used when that cannot be parsed.
func DefaultPaddleConfig(variant string) PaddleConfig {
	cfg := PaddleConfig{
		Viewport: Viewport{UnitsPerCol: 4, UnitsPerRow: 8, HUDRows: 2},
		Ball: BallConfig{
			Radius:       3,
			SpeedX:       1.2,
			SpeedY:       -1.2,
			MaxComponent: 1.8,
			MinVertical:  0.9,
			HitSpeedUp:   1,
		},
		Paddle: PaddleGeometry{
			Width:        48,
			Height:       8,
			BottomOffset: 16,
			Influence:    1.6,
			DragStep:     12,
		},
		Scoring:  ScoringConfig{PaddleHit: 1},
		Gameplay: GameplayConfig{Lives: 1, HighScoreKey: "RedBallClassic_HighScore"},
		Colors: PaddleColors{
			Ball:       "#E53935",
			Paddle:     "#1E88E5",
			Border:     "#546E7A",
			Text:       "#E0E0FF",
			Background: "#1A1A2F",
		},
	}

	switch variant {
	case VariantBricks:
		cfg.Ball.MaxComponent = 2.4
		cfg.Ball.HitSpeedUp = 1.02
		cfg.Scoring = ScoringConfig{PaddleHit: 1, BrickBreakPerHit: 10, BrickDamage: 1}
		cfg.Gameplay = GameplayConfig{Lives: 3, HighScoreKey: "@RedBallClassic:highScore"}
		cfg.Milestones = MilestoneConfig{Enabled: true, Interval: 50, Increment: 0.1}
		cfg.Bricks = &BricksConfig{
			Rows:       5,
			Cols:       8,
			Height:     8,
			Padding:    4,
			OffsetTop:  16,
			OffsetSide: 8,
			Tiers: []BrickTier{
				{MinScore: 0, Rows: []RowRule{{From: 0.7, Hits: 2}}},
				{MinScore: 200, Rows: []RowRule{{From: 0.8, Hits: 3}, {From: 0.4, Hits: 2}}},
				{MinScore: 500, Rows: []RowRule{{From: 0.6, Hits: 3}, {From: 0.2, Hits: 2}}},
			},
			Palette:     []string{"#00E5FF", "#FF3366", "#FFFF66", "#66FFCC", "#B388FF"},
			DamageColor: "#FFFFFF",
			DamageBlend: 0.6,
		}
		cfg.Colors = PaddleColors{
			Ball:       "#FF3366",
			Paddle:     "#00E5FF",
			Border:     "#66FFCC",
			Text:       "#E0E0FF",
			Background: "#1A1A2F",
		}
	case VariantTargets:
		cfg.Ball = BallConfig{Radius: 4, SpeedX: 0.9, SpeedY: -1.2, MaxComponent: 1.8, MinVertical: 0.9, HitSpeedUp: 1}
		cfg.Paddle.Width = 64
		cfg.Paddle.Influence = 1.2
		cfg.Scoring = ScoringConfig{PaddleHit: 1, TargetHit: 5}
		cfg.Gameplay = GameplayConfig{Lives: 3, HighScoreKey: "@PlayfulDiscovery:highScore"}
		cfg.Targets = &TargetsConfig{
			Count:           3,
			Size:            24,
			Padding:         8,
			OffsetTop:       8,
			Band:            0.4,
			HitAnimMS:       150,
			RespawnMS:       400,
			BackgroundEvery: 5,
			TrailEvery:      8,
			TrailMS:         3000,
			Palette:         []string{"#FF3366", "#00E5FF", "#FFFF66", "#66FFCC", "#FFA500"},
			Backgrounds:     []string{"#1A1A2F", "#1F2A44", "#2A1F44", "#1F4438", "#44301F"},
		}
		cfg.Colors = PaddleColors{
			Ball:       "#FF3366",
			Paddle:     "#00ACC1",
			Border:     "#66FFCC",
			Text:       "#E0E0FF",
			Background: "#1A1A2F",
			Trail:      "#FFFF66",
		}
	}
	return cfg
}

// DefaultHelixConfig returns the hard-coded helix tuning.
func DefaultHelixConfig() HelixConfig {
	return HelixConfig{
		Tower: HelixTower{
			PlatformCount:         7,
			MaxPlatformCount:      15,
			PlatformCountInterval: 3,
			PlatformHeight:        0.5,
			LevelHeight:           4,
			RowsPerUnit:           1.5,
		},
		Ball: HelixBall{Radius: 0.4, StartHeight: 1.5, ProjectedRadius: 3.5},
		Angles: HelixAngles{
			Gap:              math.Pi / 3,
			MinGap:           math.Pi / 7,
			GapPerLevel:      0.015,
			Kill:             math.Pi / 3.5,
			MaxKill:          math.Pi / 2.5,
			KillPerLevel:     0.015,
			InputSensitivity: 0.008,
			DragStep:         12,
		},
		Physics: HelixPhysics{
			Gravity:         -0.015,
			MaxGravity:      -0.025,
			GravityPerLevel: 0.0003,
			BounceSpeed:     0.25,
			ComboBounceStep: 0.003,
			MaxComboBounce:  0.03,
			MaxFallSpeed:    0.45,
		},
		Scoring: HelixScoring{
			LevelComplete: 10,
			ComboFactor:   1,
			ComboMedium:   5,
			ComboHigh:     10,
			HighScoreKey:  "HelixDrop:highScore",
		},
		Pacing: HelixPacing{
			MaxScalingLevel:       20,
			GraceMS:               1500,
			TransitionMS:          2700,
			BreatherInterval:      5,
			BreatherGapFactor:     1.25,
			BreatherKillFactor:    0.75,
			BreatherPlatformDrop:  2,
			BreatherGravityFactor: 0.85,
			AdaptiveDeaths:        3,
			AdaptiveKillFactor:    0.9,
			MercyCombo:            5,
		},
		Tiers: []HelixTier{
			{Level: 1, Core: "#778899"},
			{Level: 6, Core: "#6C7A89"},
			{Level: 11, Core: "#5F6C79"},
			{Level: 16, Core: "#525D68"},
		},
		Colors: HelixColors{
			Ball:   "#FFA500",
			Safe:   "#3CB371",
			Kill:   "#DC143C",
			Text:   "#E0E0FF",
			Border: "#66FFCC",
		},
		Difficulty: HelixDifficulty{Enabled: true, StartLevel: 1},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "paddle":
		return defaultPaddleYAML
	case "helix":
		return defaultHelixYAML
	default:
		return nil
	}
}
