package paddleball

// Milestone records the highest score threshold multiple already consumed
// for a speed increase.
type Milestone struct {
	Interval int
	Reached  int
}

// Advance reports whether score has crossed a threshold not yet consumed and,
// if so, consumes the next one. Each threshold is consumed exactly once, so a
// score that stays above it does not trigger again.
func (m *Milestone) Advance(score int) bool {
	if m.Interval <= 0 {
		return false
	}
	if score/m.Interval > m.Reached {
		m.Reached++
		return true
	}
	return false
}
