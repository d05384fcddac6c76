package core

// EventKind names a discrete thing that happened during a step.
type EventKind int

const (
	EventWallHit EventKind = iota + 1
	EventPaddleHit
	EventBrickDamaged
	EventBrickBroken
	EventTargetHit
	EventTargetRespawned
	EventBackgroundShift
	EventTrailStarted
	EventTrailEnded
	EventSpeedUp
	EventBounce
	EventPass
	EventMercy
	EventLevelClear
	EventLevelStart
	EventBallLost
	EventGameOver
	EventStart
)

var eventNames = map[EventKind]string{
	EventWallHit:         "wall_hit",
	EventPaddleHit:       "paddle_hit",
	EventBrickDamaged:    "brick_damaged",
	EventBrickBroken:     "brick_broken",
	EventTargetHit:       "target_hit",
	EventTargetRespawned: "target_respawned",
	EventBackgroundShift: "background_shift",
	EventTrailStarted:    "trail_started",
	EventTrailEnded:      "trail_ended",
	EventSpeedUp:         "speed_up",
	EventBounce:          "bounce",
	EventPass:            "pass",
	EventMercy:           "mercy",
	EventLevelClear:      "level_clear",
	EventLevelStart:      "level_start",
	EventBallLost:        "ball_lost",
	EventGameOver:        "game_over",
	EventStart:           "start",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is emitted by a game step. Points is the score awarded with it, if any.
type Event struct {
	Kind   EventKind
	Points int
}

// Events collects the events of one step.
type Events []Event

// Emit appends an event without points.
func (e *Events) Emit(k EventKind) {
	*e = append(*e, Event{Kind: k})
}

// Award appends an event carrying points.
func (e *Events) Award(k EventKind, points int) {
	*e = append(*e, Event{Kind: k, Points: points})
}

// Has reports whether an event of kind k is present.
func (e Events) Has(k EventKind) bool {
	for _, ev := range e {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

// Count returns how many events of kind k are present.
func (e Events) Count(k EventKind) int {
	n := 0
	for _, ev := range e {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
