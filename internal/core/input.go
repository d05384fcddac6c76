package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space, Enter, click - "tap to start"
	ActionLeft           // Left, A - one keyboard nudge
	ActionRight          // Right, D - one keyboard nudge
	ActionPause          // P - leave the active state
	ActionRestart        // R - start over after game over
	ActionBack           // B, Esc - back to menu
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// DragX is the accumulated horizontal drag in screen columns since the
	// previous frame. Positive moves right. Drag writes are last-write-wins
	// from the game's point of view: the sum is applied once per frame.
	DragX float64

	// AbsX, when HasAbs is set, is an absolute pointer column (mouse) that
	// overrides DragX for the paddle centre.
	AbsX   float64
	HasAbs bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Drag adds a horizontal drag delta.
func (f *InputFrame) Drag(dx float64) {
	f.DragX += dx
}

// PointAt records an absolute pointer column.
func (f *InputFrame) PointAt(x float64) {
	f.AbsX = x
	f.HasAbs = true
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.DragX = 0
	f.AbsX = 0
	f.HasAbs = false
}
