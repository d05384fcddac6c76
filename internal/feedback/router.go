package feedback

import "github.com/vovakirdan/bounce-arcade/internal/core"

// Toggles reports which feedback channels the player has enabled.
type Toggles interface {
	HapticsEnabled() bool
	SoundEnabled() bool
}

// Cue is the feedback for one event.
type Cue struct {
	Haptic HapticKind
	Sound  Effect
}

var cues = map[core.EventKind]Cue{
	core.EventWallHit:      {HapticLight, SoundWallHit},
	core.EventPaddleHit:    {HapticMedium, SoundPaddleHit},
	core.EventBrickDamaged: {HapticLight, SoundBrickDamage},
	core.EventBrickBroken:  {HapticMedium, SoundBrickBreak},
	core.EventTargetHit:    {HapticMedium, SoundTargetHit},
	core.EventSpeedUp:      {HapticLight, SoundNone},
	core.EventBounce:       {HapticLight, SoundBounce},
	core.EventPass:         {HapticLight, SoundPass},
	core.EventMercy:        {HapticWarning, SoundBounce},
	core.EventLevelClear:   {HapticSuccess, SoundLevelClear},
	core.EventBallLost:     {HapticWarning, SoundNone},
	core.EventGameOver:     {HapticError, SoundGameOver},
	core.EventStart:        {HapticMedium, SoundUIClick},
}

// CueFor returns the feedback mapped to an event kind.
func CueFor(k core.EventKind) (Cue, bool) {
	c, ok := cues[k]
	return c, ok
}

// Dispatcher receives the events of each step.
type Dispatcher interface {
	Dispatch(events core.Events)
}

// Router fans step events out to haptics and sound, honouring the toggles.
type Router struct {
	haptics Haptics
	sounds  Sounds
	toggles Toggles
}

// NewRouter creates a Router. Nil haptics or sounds disable that channel.
func NewRouter(h Haptics, s Sounds, t Toggles) *Router {
	return &Router{haptics: h, sounds: s, toggles: t}
}

// Dispatch plays the cue of every mapped event. Repeated kinds within one
// step play once.
func (r *Router) Dispatch(events core.Events) {
	if len(events) == 0 {
		return
	}
	hapticsOn := r.haptics != nil && (r.toggles == nil || r.toggles.HapticsEnabled())
	soundOn := r.sounds != nil && (r.toggles == nil || r.toggles.SoundEnabled())

	var seen [32]bool
	for _, ev := range events {
		if int(ev.Kind) < len(seen) {
			if seen[ev.Kind] {
				continue
			}
			seen[ev.Kind] = true
		}
		c, ok := cues[ev.Kind]
		if !ok {
			continue
		}
		if hapticsOn && c.Haptic != HapticNone {
			r.haptics.Trigger(c.Haptic)
		}
		if soundOn && c.Sound != SoundNone {
			r.sounds.Play(c.Sound)
		}
	}
}

// NopRouter drops all events.
type NopRouter struct{}

func (NopRouter) Dispatch(core.Events) {}
