package paddleball

import (
	"math/rand"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// Target is a respawning obstacle. While Cooldown > 0 it is playing its hit
// animation or waiting to reappear and cannot be hit.
type Target struct {
	Bounds   core.Box
	Color    core.RGB
	Round    bool
	Cooldown int
}

// Live reports whether the target can be hit.
func (t *Target) Live() bool {
	return t.Cooldown == 0
}

// TargetField owns the targets plus the cosmetic effects driven by the
// cumulative hit count.
type TargetField struct {
	cfg         config.TargetsConfig
	rng         *rand.Rand
	palette     []core.RGB
	backgrounds []core.RGB

	Targets    []Target
	Hits       int
	Background int
	TrailLeft  int

	respawnTicks int
	animTicks    int
	trailTicks   int
	w, h         float64
}

// NewTargetField places cfg.Count targets in a field of w×h.
func NewTargetField(cfg config.TargetsConfig, rc core.RuntimeConfig, rng *rand.Rand, w, h float64) *TargetField {
	f := &TargetField{
		cfg:          cfg,
		rng:          rng,
		respawnTicks: rc.TicksFor(cfg.RespawnMS),
		animTicks:    rc.TicksFor(cfg.HitAnimMS),
		trailTicks:   rc.TicksFor(cfg.TrailMS),
		w:            w,
		h:            h,
	}
	f.palette = parsePalette(cfg.Palette, core.ColorPrimary)
	f.backgrounds = parsePalette(cfg.Backgrounds, core.ColorField)

	f.Targets = make([]Target, cfg.Count)
	for i := range f.Targets {
		t := &f.Targets[i]
		t.Bounds = core.Box{W: cfg.Size, H: cfg.Size}
		t.Color = f.palette[i%len(f.palette)]
		t.Round = i%2 == 0
		f.place(t)
	}
	return f
}

func parsePalette(in []string, fallback core.RGB) []core.RGB {
	out := make([]core.RGB, 0, len(in))
	for _, s := range in {
		if c, err := core.ParseHex(s); err == nil {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}

// place moves t to a random spot inside the target band.
func (f *TargetField) place(t *Target) {
	availW := max(0, f.w-2*f.cfg.Padding-f.cfg.Size)
	availH := max(0, f.h*f.cfg.Band-f.cfg.OffsetTop-f.cfg.Size)
	t.Bounds.X = f.cfg.Padding + f.rng.Float64()*availW
	t.Bounds.Y = f.cfg.OffsetTop + f.rng.Float64()*availH
}

// Animating reports whether t is still in its hit animation.
func (f *TargetField) Animating(t *Target) bool {
	return t.Cooldown > f.respawnTicks-f.animTicks
}

// BackgroundColor returns the current field colour.
func (f *TargetField) BackgroundColor() core.RGB {
	return f.backgrounds[f.Background%len(f.backgrounds)]
}

// TrailActive reports whether the ball trail is showing.
func (f *TargetField) TrailActive() bool {
	return f.TrailLeft > 0
}

// Tick advances respawn and trail timers.
func (f *TargetField) Tick(ev *core.Events) {
	for i := range f.Targets {
		t := &f.Targets[i]
		if t.Cooldown == 0 {
			continue
		}
		t.Cooldown--
		if t.Cooldown == 0 {
			f.place(t)
			t.Color = f.palette[f.rng.Intn(len(f.palette))]
			t.Round = f.rng.Intn(2) == 0
			ev.Emit(core.EventTargetRespawned)
		}
	}
	if f.TrailLeft > 0 {
		f.TrailLeft--
		if f.TrailLeft == 0 {
			ev.Emit(core.EventTrailEnded)
		}
	}
}

// Resolve tests the ball (previous centre prev) against live targets using
// the closest point on each target to the ball centre. At most one target is
// hit per tick. The reflection axis comes from where the ball was before the
// move: coming from the side flips dx, anything else flips dy.
func (f *TargetField) Resolve(ball *Ball, prev core.Vec2, points int, ev *core.Events) bool {
	for i := range f.Targets {
		t := &f.Targets[i]
		if !t.Live() || !t.Bounds.CircleHits(ball.Pos, ball.Radius) {
			continue
		}

		was := core.BoxAround(prev, ball.Radius)
		side := was.Right() <= t.Bounds.Left() || was.Left() >= t.Bounds.Right()
		vertical := was.Bottom() <= t.Bounds.Top() || was.Top() >= t.Bounds.Bottom()
		if side && !vertical {
			ball.Vel.X = -ball.Vel.X
			ball.Pos.X = prev.X
		} else {
			ball.Vel.Y = -ball.Vel.Y
			ball.Pos.Y = prev.Y
		}

		t.Cooldown = f.respawnTicks
		f.Hits++
		ev.Award(core.EventTargetHit, points)

		if f.cfg.BackgroundEvery > 0 && f.Hits%f.cfg.BackgroundEvery == 0 {
			f.Background = (f.Background + 1) % len(f.backgrounds)
			ev.Emit(core.EventBackgroundShift)
		}
		if f.cfg.TrailEvery > 0 && f.Hits%f.cfg.TrailEvery == 0 {
			f.TrailLeft = f.trailTicks
			ev.Emit(core.EventTrailStarted)
		}
		return true
	}
	return false
}

// Resize rescales target positions to a new field size.
func (f *TargetField) Resize(w, h float64) {
	if f.w > 0 && f.h > 0 {
		sx, sy := w/f.w, h/f.h
		for i := range f.Targets {
			f.Targets[i].Bounds.X *= sx
			f.Targets[i].Bounds.Y *= sy
		}
	}
	f.w, f.h = w, h
	for i := range f.Targets {
		b := &f.Targets[i].Bounds
		b.X = core.ClampF(b.X, 0, max(0, w-b.W))
		b.Y = core.ClampF(b.Y, 0, max(0, h-b.H))
	}
}
