package paddleball

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func newTestField(t *testing.T) *TargetField {
	t.Helper()
	cfg := *config.DefaultPaddleConfig(config.VariantTargets).Targets
	rc := core.RuntimeConfig{TickRate: 60}
	return NewTargetField(cfg, rc, rand.New(rand.NewSource(3)), 320, 400)
}

// spread moves the targets to fixed, well separated spots.
func spread(f *TargetField) {
	for i := range f.Targets {
		f.Targets[i].Bounds.X = 20 + float64(i)*100
		f.Targets[i].Bounds.Y = 60
	}
}

// aimAt returns a ball just below target i moving up into it.
func aimAt(f *TargetField, i int) (Ball, core.Vec2) {
	b := f.Targets[i].Bounds
	prev := core.Vec2{X: b.Center().X, Y: b.Bottom() + 6}
	return Ball{Pos: core.Vec2{X: prev.X, Y: b.Bottom() + 2}, Vel: core.Vec2{X: 0, Y: -4}, Radius: 4}, prev
}

func TestTargetsStayInBand(t *testing.T) {
	f := newTestField(t)
	if len(f.Targets) != 3 {
		t.Fatalf("targets = %d, expected 3", len(f.Targets))
	}
	for i, tg := range f.Targets {
		if tg.Bounds.Left() < f.cfg.Padding || tg.Bounds.Right() > 320-f.cfg.Padding {
			t.Errorf("target %d outside horizontal band: %+v", i, tg.Bounds)
		}
		if tg.Bounds.Top() < f.cfg.OffsetTop || tg.Bounds.Bottom() > 400*f.cfg.Band {
			t.Errorf("target %d outside vertical band: %+v", i, tg.Bounds)
		}
	}
}

func TestTargetHitAndRespawn(t *testing.T) {
	f := newTestField(t)
	spread(f)
	ball, prev := aimAt(f, 0)
	var ev core.Events

	if !f.Resolve(&ball, prev, 5, &ev) {
		t.Fatal("expected target hit")
	}
	if ball.Vel.Y != 4 {
		t.Errorf("vertical approach should flip dy, vel = %v", ball.Vel)
	}
	if !ev.Has(core.EventTargetHit) || ev[0].Points != 5 {
		t.Errorf("events = %v", ev)
	}
	if f.Targets[0].Live() {
		t.Fatal("hit target should be cooling down")
	}
	if !f.Animating(&f.Targets[0]) {
		t.Error("hit target should start animating")
	}

	again, prev := aimAt(f, 0)
	ev = nil
	if f.Resolve(&again, prev, 5, &ev) {
		t.Error("cooling target must not be hit twice")
	}

	respawn := f.respawnTicks
	for i := 0; i < respawn; i++ {
		f.Tick(&ev)
		if i < respawn-1 && ev.Has(core.EventTargetRespawned) {
			t.Fatalf("respawned early at tick %d", i)
		}
	}
	if !ev.Has(core.EventTargetRespawned) || !f.Targets[0].Live() {
		t.Error("target should respawn after the delay")
	}
	if len(f.Targets) != 3 {
		t.Error("targets are never removed")
	}
}

func TestTargetSideApproachFlipsDx(t *testing.T) {
	f := newTestField(t)
	spread(f)
	b := f.Targets[1].Bounds
	prev := core.Vec2{X: b.Left() - 6, Y: b.Center().Y}
	ball := Ball{Pos: core.Vec2{X: b.Left() - 2, Y: prev.Y}, Vel: core.Vec2{X: 4, Y: 0.5}, Radius: 4}

	var ev core.Events
	if !f.Resolve(&ball, prev, 5, &ev) {
		t.Fatal("expected target hit")
	}
	if ball.Vel.X != -4 || ball.Vel.Y != 0.5 {
		t.Errorf("side approach should flip dx only, vel = %v", ball.Vel)
	}
}

func TestTargetCosmeticCadence(t *testing.T) {
	f := newTestField(t)
	spread(f)
	var ev core.Events
	shifts, trails := 0, 0

	for j := 0; j < 16; j++ {
		for i := range f.Targets {
			f.Targets[i].Cooldown = 0
		}
		ball, prev := aimAt(f, 2)
		ev = nil
		f.Resolve(&ball, prev, 5, &ev)
		shifts += ev.Count(core.EventBackgroundShift)
		trails += ev.Count(core.EventTrailStarted)
	}

	if f.Hits != 16 {
		t.Fatalf("hits = %d, expected 16", f.Hits)
	}
	if shifts != 3 {
		t.Errorf("background shifts = %d, expected 3 (every 5 hits)", shifts)
	}
	if trails != 2 {
		t.Errorf("trails = %d, expected 2 (every 8 hits)", trails)
	}
	if !f.TrailActive() {
		t.Error("trail should be active right after the 16th hit")
	}
	if f.BackgroundColor() == f.backgrounds[0] {
		t.Error("background should have rotated")
	}
}

func TestTrailExpires(t *testing.T) {
	f := newTestField(t)
	f.TrailLeft = 2
	var ev core.Events
	f.Tick(&ev)
	f.Tick(&ev)
	if f.TrailActive() || !ev.Has(core.EventTrailEnded) {
		t.Error("trail should end when its timer runs out")
	}
}
