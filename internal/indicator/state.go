package indicator

import (
	"fmt"
	"strconv"
	"strings"
)

// PointerID identifies one logical pointer (a finger or the mouse).
type PointerID int

// State is the gesture state of a Controller.
type State int

const (
	// StateIdle means no gesture is in progress.
	StateIdle State = iota
	// StateDragging means a pointer is down and owns the handle.
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Action is the phase of the last pointer event the controller accepted.
type Action int

const (
	ActionNone Action = iota
	ActionDown
	ActionMove
	ActionUp
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// DisplayPolicy decides when the value bubble is shown.
type DisplayPolicy int

const (
	// HideWhileDragging hides the bubble while the handle is being moved.
	HideWhileDragging DisplayPolicy = iota
	// AlwaysShow keeps the bubble visible at all times.
	AlwaysShow
)

func (p DisplayPolicy) String() string {
	switch p {
	case HideWhileDragging:
		return "hideWhileDragging"
	case AlwaysShow:
		return "alwaysShow"
	}
	return "DisplayPolicy(" + strconv.Itoa(int(p)) + ")"
}

// ParseDisplayPolicy accepts the String form of a policy, case-insensitively.
func ParseDisplayPolicy(s string) (DisplayPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hidewhiledragging", "hide_while_dragging", "hide":
		return HideWhileDragging, nil
	case "alwaysshow", "always_show", "always":
		return AlwaysShow, nil
	}
	return HideWhileDragging, fmt.Errorf("unknown display policy %q", s)
}

// Frame is the read-only snapshot a renderer draws from.
type Frame struct {
	Progress        float64
	Value           int64
	X               float64
	TrackWidth      float64
	HandleHalfWidth float64
	State           State
	Action          Action
	Enabled         bool
	BubbleVisible   bool
}

// Label is the text shown in the value bubble.
func (f Frame) Label() string { return strconv.FormatInt(f.Value, 10) }
