// Package helix implements a tower-descent game: a ball bounces down a
// rotating tower of ring platforms, each split into gap, kill and safe arcs.
//
// Tower units grow upward. The ball sits at a fixed angle around the tower
// axis and the player rotates the tower under it.
package helix

import (
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Segment is the arc of a platform under the ball.
type Segment int

const (
	SegmentGap  Segment = iota // fall through
	SegmentKill                // ends the round
	SegmentSafe                // bounce
)

func (s Segment) String() string {
	switch s {
	case SegmentGap:
		return "gap"
	case SegmentKill:
		return "kill"
	default:
		return "safe"
	}
}

// NormalizeAngle maps any angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	n := math.Mod(a, 2*math.Pi)
	if n < 0 {
		n += 2 * math.Pi
	}
	if n >= 2*math.Pi {
		n = 0
	}
	return n
}

// Classify returns the arc an effective angle falls in. The gap spans
// [0, gap), the kill arc [gap, gap+kill) and the rest is safe.
func Classify(effective, gap, kill float64) Segment {
	switch {
	case effective < gap:
		return SegmentGap
	case effective < gap+kill:
		return SegmentKill
	default:
		return SegmentSafe
	}
}

// Platform is one ring of the tower. Its arcs are fixed for the level.
type Platform struct {
	Y               float64
	InitialRotation float64
	Gap             float64
	Kill            float64
	Passed          bool
}

// Top returns the upper surface of a platform of height ph.
func (p *Platform) Top(ph float64) float64 { return p.Y + ph/2 }

// Bottom returns the lower surface of a platform of height ph.
func (p *Platform) Bottom(ph float64) float64 { return p.Y - ph/2 }

// SegmentAt classifies the platform under a ball at ballAngle while the tower
// is rotated by rotation.
func (p *Platform) SegmentAt(ballAngle, rotation float64) Segment {
	return Classify(NormalizeAngle(ballAngle-rotation-p.InitialRotation), p.Gap, p.Kill)
}

// Params is the tuning for one level.
type Params struct {
	Level         int
	Gap           float64
	Kill          float64
	Gravity       float64
	PlatformCount int
	Breather      bool
	Adaptive      bool
	Core          core.RGB
}

// LevelParams derives a level's tuning. Gap shrinks and kill grows with the
// level up to their caps, gravity strengthens up to its cap and the tower
// grows by one platform every PlatformCountInterval levels. Every
// BreatherInterval-th level is easier; after AdaptiveDeaths consecutive
// deaths the kill arc shrinks. With scaling disabled every level uses the
// level-1 values.
func LevelParams(cfg config.HelixConfig, level, deaths int) Params {
	level = max(1, level)
	scaled := level
	if !cfg.Difficulty.Enabled {
		scaled = 1
	}

	eff := scaled - 1
	capped := min(eff, max(0, cfg.Pacing.MaxScalingLevel-1))

	p := Params{
		Level:   level,
		Gap:     math.Max(cfg.Angles.MinGap, cfg.Angles.Gap-float64(capped)*cfg.Angles.GapPerLevel),
		Kill:    math.Min(cfg.Angles.MaxKill, cfg.Angles.Kill+float64(capped)*cfg.Angles.KillPerLevel),
		Gravity: math.Max(cfg.Physics.MaxGravity, cfg.Physics.Gravity-float64(capped)*cfg.Physics.GravityPerLevel),
	}

	p.PlatformCount = cfg.Tower.PlatformCount
	if cfg.Tower.PlatformCountInterval > 0 {
		p.PlatformCount += eff / cfg.Tower.PlatformCountInterval
	}
	if cfg.Tower.MaxPlatformCount > 0 {
		p.PlatformCount = min(p.PlatformCount, cfg.Tower.MaxPlatformCount)
	}

	pc := cfg.Pacing
	if cfg.Difficulty.Enabled && pc.BreatherInterval > 0 && level%pc.BreatherInterval == 0 {
		p.Breather = true
		p.Gap *= pc.BreatherGapFactor
		p.Kill *= pc.BreatherKillFactor
		p.PlatformCount -= pc.BreatherPlatformDrop
		p.Gravity *= pc.BreatherGravityFactor
	}
	if pc.AdaptiveDeaths > 0 && deaths >= pc.AdaptiveDeaths {
		p.Adaptive = true
		p.Kill *= pc.AdaptiveKillFactor
	}
	p.PlatformCount = max(1, p.PlatformCount)

	p.Core = core.ColorDim
	for _, t := range cfg.Tiers {
		if level >= t.Level {
			if c, err := core.ParseHex(t.Core); err == nil {
				p.Core = c
			}
		}
	}
	return p
}
