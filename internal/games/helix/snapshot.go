package helix

import "math"

// Snapshot captures the simulation state for determinism tests and replays.
type Snapshot struct {
	Tick     int
	State    string
	Score    int
	Level    int
	Combo    int
	Deaths   int
	Rotation float64
	BallY    float64
	BallVY   float64
	Passed   int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	passed := 0
	for _, p := range g.platforms {
		if p.Passed {
			passed++
		}
	}
	return Snapshot{
		Tick:     g.tick,
		State:    g.state,
		Score:    g.score,
		Level:    g.level,
		Combo:    g.combo,
		Deaths:   g.deaths,
		Rotation: g.rotation,
		BallY:    g.ballY,
		BallVY:   g.ballVY,
		Passed:   passed,
	}
}

// Hash returns a simple hash of the snapshot.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- hash computation
	for _, c := range s.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(s.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Combo)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Deaths) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.Rotation)
	h = h*31 + math.Float64bits(s.BallY)
	h = h*31 + math.Float64bits(s.BallVY)
	return h*31 + uint64(s.Passed) //#nosec G115 -- hash computation
}
