package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Input tuning. Terminals report key presses and auto-repeats but never
// releases, so a control stays held until no repeat arrives for HoldWindow.
const (
	Deadzone   = 0.32
	HoldWindow = 300 * time.Millisecond
	SteerRamp  = 250 * time.Millisecond // Time for steering to reach full lock
)

// Control is a driving input source.
type Control int

const (
	ControlNone Control = iota
	ControlThrottle
	ControlBrake
	ControlLeft
	ControlRight
)

// ApplyDeadzone zeroes analog values whose magnitude is below Deadzone.
func ApplyDeadzone(v float64) float64 {
	if math.Abs(v) < Deadzone {
		return 0
	}
	return v
}

// axisFrom turns a raw value into an axis, inactive inside the deadzone.
func axisFrom(v float64) core.Axis {
	v = ApplyDeadzone(v)
	if v == 0 {
		return core.Axis{}
	}
	return core.Press(core.ClampF(v, -1, 1))
}

type heldKey struct {
	since time.Time // Start of the current continuous hold
	last  time.Time // Most recent press or repeat
}

// ControlState tracks which driving controls are held.
type ControlState struct {
	held map[Control]heldKey
}

// NewControlState creates an empty control state.
func NewControlState() *ControlState {
	return &ControlState{held: make(map[Control]heldKey)}
}

// Press records a press or auto-repeat of a control.
func (s *ControlState) Press(c Control, now time.Time) {
	if c == ControlNone {
		return
	}
	h, ok := s.held[c]
	if !ok || now.Sub(h.last) > HoldWindow {
		h.since = now
	}
	h.last = now
	s.held[c] = h
}

// Release drops every held control.
func (s *ControlState) Release() {
	clear(s.held)
}

// level returns 0..1 for a control at now: 0 when released, ramping to 1
// over ramp while held. A zero ramp is an instant full value.
func (s *ControlState) level(c Control, now time.Time, ramp time.Duration) float64 {
	h, ok := s.held[c]
	if !ok || now.Sub(h.last) > HoldWindow {
		return 0
	}
	if ramp <= 0 {
		return 1
	}
	return math.Min(1, float64(now.Sub(h.since))/float64(ramp))
}

// Snapshot builds the driving input for a step at now.
func (s *ControlState) Snapshot(now time.Time) core.ControlInput {
	turn := s.level(ControlRight, now, SteerRamp) - s.level(ControlLeft, now, SteerRamp)
	return core.ControlInput{
		Accelerate: axisFrom(s.level(ControlThrottle, now, 0)),
		Brake:      axisFrom(s.level(ControlBrake, now, 0)),
		Turn:       axisFrom(turn),
	}
}

// KeyMapper translates Bubble Tea key messages to race actions and controls.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a session action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapControl translates a key message to a driving control.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "w", "up", "k":
		return ControlThrottle
	case "s", "down", "j", " ":
		return ControlBrake
	case "a", "left", "h":
		return ControlLeft
	case "d", "right", "l":
		return ControlRight
	}
	return ControlNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
