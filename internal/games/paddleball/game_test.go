package paddleball

import (
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDClassic, IDBricks, IDTargets} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	isolateConfig(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%7 < 3:
			inputs[i].Drag(1)
		default:
			inputs[i].Drag(-1)
		}
	}

	for _, id := range []string{IDClassic, IDBricks, IDTargets} {
		t.Run(id, func(t *testing.T) {
			run := func() Snapshot {
				g, err := registry.Create(id)
				if err != nil {
					t.Fatal(err)
				}
				g.Reset(cfg)
				for _, in := range inputs {
					g.Step(in)
				}
				return g.(*Game).Engine().Snapshot()
			}
			s1, s2 := run(), run()
			if s1.Hash() != s2.Hash() {
				t.Errorf("determinism failed: %d != %d", s1.Hash(), s2.Hash())
			}
		})
	}
}

func TestGameLifecycle(t *testing.T) {
	isolateConfig(t)
	g := New(IDBricks, "Brick Breaker", "bricks")
	g.SetHighScore(99)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.Active() {
		t.Fatal("new round should wait for a tap")
	}
	if g.State().High != 99 {
		t.Errorf("High = %d, expected 99", g.State().High)
	}
	if g.HighScoreKey() != "@RedBallClassic:highScore" {
		t.Errorf("HighScoreKey = %q", g.HighScoreKey())
	}

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	res := g.Step(start)
	if !g.Active() || !res.Events.Has(core.EventStart) {
		t.Fatal("tap should start the round")
	}

	g.Background()
	if g.Active() {
		t.Error("background should stop the round")
	}

	g.Resize(100, 30)
	w, h := g.Engine().Field()
	if w != 100*g.cfg.Viewport.UnitsPerCol || h != 28*g.cfg.Viewport.UnitsPerRow {
		t.Errorf("field = %vx%v after resize", w, h)
	}
}

func TestGameDragInColumns(t *testing.T) {
	isolateConfig(t)
	g := New(IDClassic, "Red Ball Classic", "classic")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	before := g.Engine().Paddle().Left
	in := core.NewInputFrame()
	in.Drag(2)
	g.Step(in)
	if got := g.Engine().Paddle().Left - before; got != 2*g.cfg.Viewport.UnitsPerCol {
		t.Errorf("paddle moved %v units, expected %v", got, 2*g.cfg.Viewport.UnitsPerCol)
	}

	in = core.NewInputFrame()
	in.PointAt(10)
	g.Step(in)
	if c := g.Engine().Paddle().Center(); c != 10.5*g.cfg.Viewport.UnitsPerCol {
		t.Errorf("paddle centre = %v", c)
	}
}

func TestRender(t *testing.T) {
	isolateConfig(t)
	g := New(IDBricks, "Brick Breaker", "bricks")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Score: 0", "Level: 1", "Tap SPACE to start", string(BallChar), string(PaddleChar), string(BrickChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Resize(30, 4)
	small := core.NewScreen(30, 4)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("undersized field should say so, got:\n%s", small.String())
	}
}
