// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// PaddleFile is the layout of paddle.yaml: one tuning block per variant.
type PaddleFile struct {
	Presets map[string]PaddleConfig `yaml:"presets"`
}

// PaddleConfig tunes one paddle-ball variant. All distances are world units.
type PaddleConfig struct {
	Viewport   Viewport        `yaml:"viewport"`
	Ball       BallConfig      `yaml:"ball"`
	Paddle     PaddleGeometry  `yaml:"paddle"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Gameplay   GameplayConfig  `yaml:"gameplay"`
	Milestones MilestoneConfig `yaml:"milestones"`
	Bricks     *BricksConfig   `yaml:"bricks,omitempty"`
	Targets    *TargetsConfig  `yaml:"targets,omitempty"`
	Colors     PaddleColors    `yaml:"colors"`
}

// Viewport maps world units onto the character grid.
type Viewport struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
	HUDRows     int     `yaml:"hud_rows"`
}

// BallConfig defines the ball and its speed envelope.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	SpeedX       float64 `yaml:"speed_x"`       // initial dx
	SpeedY       float64 `yaml:"speed_y"`       // initial dy, negative is up
	MaxComponent float64 `yaml:"max_component"` // cap for |dx| and |dy|
	MinVertical  float64 `yaml:"min_vertical"`  // floor for |dy| after a paddle hit
	HitSpeedUp   float64 `yaml:"hit_speed_up"`  // |dy| multiplier per paddle hit, 1 disables
}

// PaddleGeometry defines the paddle and how hits steer the ball.
type PaddleGeometry struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // gap between paddle bottom and playfield bottom
	Influence    float64 `yaml:"influence"`     // dx bias at the paddle edges is ±influence/2
	DragStep     float64 `yaml:"drag_step"`     // world units per keyboard nudge
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	PaddleHit        int `yaml:"paddle_hit"`
	BrickBreakPerHit int `yaml:"brick_break_per_hit"` // break bonus is hitsRequired * this
	BrickDamage      int `yaml:"brick_damage"`
	TargetHit        int `yaml:"target_hit"`
}

// GameplayConfig holds round rules.
type GameplayConfig struct {
	Lives        int    `yaml:"lives"`
	HighScoreKey string `yaml:"high_score_key"`
}

// MilestoneConfig controls score-driven speed escalation.
type MilestoneConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Interval  int     `yaml:"interval"`
	Increment float64 `yaml:"increment"`
}

// BricksConfig lays out the brick grid and its difficulty tiers.
type BricksConfig struct {
	Rows        int         `yaml:"rows"`
	Cols        int         `yaml:"cols"`
	Height      float64     `yaml:"height"`
	Padding     float64     `yaml:"padding"`
	OffsetTop   float64     `yaml:"offset_top"`
	OffsetSide  float64     `yaml:"offset_side"`
	Tiers       []BrickTier `yaml:"tiers"`
	Palette     []string    `yaml:"palette"` // colour per hitsRequired, 1-based
	DamageColor string      `yaml:"damage_color"`
	DamageBlend float64     `yaml:"damage_blend"`
}

// BrickTier assigns hit counts to rows once the score reaches MinScore.
type BrickTier struct {
	MinScore int       `yaml:"min_score"`
	Rows     []RowRule `yaml:"rows"`
}

// RowRule gives Hits hits to rows with index >= From*rowCount.
// Rules are checked in order; unmatched rows take one hit.
type RowRule struct {
	From float64 `yaml:"from"`
	Hits int     `yaml:"hits"`
}

// TargetsConfig defines the respawning target field.
type TargetsConfig struct {
	Count           int      `yaml:"count"`
	Size            float64  `yaml:"size"`
	Padding         float64  `yaml:"padding"`
	OffsetTop       float64  `yaml:"offset_top"`
	Band            float64  `yaml:"band"` // fraction of the playfield height targets may occupy
	HitAnimMS       int      `yaml:"hit_anim_ms"`
	RespawnMS       int      `yaml:"respawn_ms"`
	BackgroundEvery int      `yaml:"background_every"`
	TrailEvery      int      `yaml:"trail_every"`
	TrailMS         int      `yaml:"trail_ms"`
	Palette         []string `yaml:"palette"`
	Backgrounds     []string `yaml:"backgrounds"`
}

// PaddleColors styles a variant.
type PaddleColors struct {
	Ball       string `yaml:"ball"`
	Paddle     string `yaml:"paddle"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	Trail      string `yaml:"trail"`
}

// HelixConfig tunes the tower-descent game. Distances are tower units,
// angles are radians, times are milliseconds.
type HelixConfig struct {
	Tower      HelixTower      `yaml:"tower"`
	Ball       HelixBall       `yaml:"ball"`
	Angles     HelixAngles     `yaml:"angles"`
	Physics    HelixPhysics    `yaml:"physics"`
	Scoring    HelixScoring    `yaml:"scoring"`
	Pacing     HelixPacing     `yaml:"pacing"`
	Tiers      []HelixTier     `yaml:"tiers"`
	Colors     HelixColors     `yaml:"colors"`
	Difficulty HelixDifficulty `yaml:"difficulty"`
}

type HelixTower struct {
	PlatformCount         int     `yaml:"platform_count"`
	MaxPlatformCount      int     `yaml:"max_platform_count"`
	PlatformCountInterval int     `yaml:"platform_count_interval"`
	PlatformHeight        float64 `yaml:"platform_height"`
	LevelHeight           float64 `yaml:"level_height"`
	RowsPerUnit           float64 `yaml:"rows_per_unit"`
}

type HelixBall struct {
	Radius          float64 `yaml:"radius"`
	StartHeight     float64 `yaml:"start_height"` // multiples of level_height above the top platform
	ProjectedRadius float64 `yaml:"projected_radius"`
}

type HelixAngles struct {
	Gap              float64 `yaml:"gap"`
	MinGap           float64 `yaml:"min_gap"`
	GapPerLevel      float64 `yaml:"gap_per_level"`
	Kill             float64 `yaml:"kill"`
	MaxKill          float64 `yaml:"max_kill"`
	KillPerLevel     float64 `yaml:"kill_per_level"`
	InputSensitivity float64 `yaml:"input_sensitivity"` // radians per drag pixel
	DragStep         float64 `yaml:"drag_step"`         // pixels per terminal column
}

type HelixPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	MaxGravity      float64 `yaml:"max_gravity"`
	GravityPerLevel float64 `yaml:"gravity_per_level"`
	BounceSpeed     float64 `yaml:"bounce_speed"`
	ComboBounceStep float64 `yaml:"combo_bounce_step"`
	MaxComboBounce  float64 `yaml:"max_combo_bounce"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
}

type HelixScoring struct {
	LevelComplete int    `yaml:"level_complete"`
	ComboFactor   int    `yaml:"combo_factor"`
	ComboMedium   int    `yaml:"combo_medium"`
	ComboHigh     int    `yaml:"combo_high"`
	HighScoreKey  string `yaml:"high_score_key"`
}

type HelixPacing struct {
	MaxScalingLevel       int     `yaml:"max_scaling_level"`
	GraceMS               int     `yaml:"grace_ms"`
	TransitionMS          int     `yaml:"transition_ms"`
	BreatherInterval      int     `yaml:"breather_interval"`
	BreatherGapFactor     float64 `yaml:"breather_gap_factor"`
	BreatherKillFactor    float64 `yaml:"breather_kill_factor"`
	BreatherPlatformDrop  int     `yaml:"breather_platform_drop"`
	BreatherGravityFactor float64 `yaml:"breather_gravity_factor"`
	AdaptiveDeaths        int     `yaml:"adaptive_deaths"`
	AdaptiveKillFactor    float64 `yaml:"adaptive_kill_factor"`
	MercyCombo            int     `yaml:"mercy_combo"`
}

type HelixTier struct {
	Level int    `yaml:"level"`
	Core  string `yaml:"core"`
}

type HelixColors struct {
	Ball   string `yaml:"ball"`
	Safe   string `yaml:"safe"`
	Kill   string `yaml:"kill"`
	Text   string `yaml:"text"`
	Border string `yaml:"border"`
}

// HelixDifficulty is toggled by presets. Disabled keeps every level at level-1 parameters.
type HelixDifficulty struct {
	Enabled    bool `yaml:"enabled"`
	StartLevel int  `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
