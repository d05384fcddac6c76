package paddleball

import "math"

// Snapshot is a flat copy of the engine state for determinism tests.
type Snapshot struct {
	Tick       int
	State      string
	Score      int
	Lives      int
	Level      int
	Milestone  int
	Ball       [4]float64 // x, y, dx, dy
	PaddleLeft float64
	BrickHits  []int
	TargetData []float64 // x, y, cooldown per target
	TargetHits int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       e.tick,
		State:      e.state,
		Score:      e.score,
		Lives:      e.lives,
		Level:      e.level,
		Milestone:  e.milestone.Reached,
		Ball:       [4]float64{e.ball.Pos.X, e.ball.Pos.Y, e.ball.Vel.X, e.ball.Vel.Y},
		PaddleLeft: e.paddle.Left,
	}
	if e.grid != nil {
		snap.BrickHits = make([]int, len(e.grid.Bricks))
		for i, b := range e.grid.Bricks {
			snap.BrickHits[i] = b.CurrentHits
		}
	}
	if e.targets != nil {
		snap.TargetHits = e.targets.Hits
		for _, t := range e.targets.Targets {
			snap.TargetData = append(snap.TargetData, t.Bounds.X, t.Bounds.Y, float64(t.Cooldown))
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Milestone) //#nosec G115 -- hash computation
	for _, v := range snap.Ball {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + math.Float64bits(snap.PaddleLeft)
	for _, v := range snap.BrickHits {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.TargetData {
		h = h*31 + math.Float64bits(v)
	}
	return h*31 + uint64(snap.TargetHits) //#nosec G115 -- hash computation
}
