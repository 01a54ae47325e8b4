package core

// Axis is one analog control source for a single step.
// Active distinguishes "no input from this source" from an explicit zero.
type Axis struct {
	Value  float64
	Active bool
}

// Press returns an active axis with the given signed magnitude.
func Press(v float64) Axis {
	return Axis{Value: v, Active: true}
}

// ControlInput is the per-step driving snapshot handed to the vehicle.
// Values arrive already deadzone-filtered by the input layer.
type ControlInput struct {
	Accelerate Axis
	Brake      Axis
	Turn       Axis
}

// Any reports whether any source is active this step.
func (c ControlInput) Any() bool {
	return c.Accelerate.Active || c.Brake.Active || c.Turn.Active
}

// Action represents a session-level intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the race
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause the race
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ActionFrame holds the session actions triggered during one tick.
type ActionFrame struct {
	Actions map[Action]bool
}

// NewActionFrame creates an empty action frame.
func NewActionFrame() ActionFrame {
	return ActionFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *ActionFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f ActionFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *ActionFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
