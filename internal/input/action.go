// Package input translates raw device events into logical actions.
// Bindings are owned by a single Mapper created at startup; the platform
// feeds it presses and releases and calls EndFrame once per tick.
package input

import "strings"

// Action represents a logical input intent, abstracted from physical keys.
type Action int

const (
	ActionTogglePause Action = iota // Escape - pause/resume the session
	ActionExit                      // C (with Ctrl) - quit the demo
	ActionPanUp                     // W - pan camera forward
	ActionPanDown                   // S - pan camera back
	ActionPanLeft                   // A - pan camera left
	ActionPanRight                  // D - pan camera right
)

// Actions returns every logical action in declaration order.
func Actions() []Action {
	return []Action{
		ActionTogglePause,
		ActionExit,
		ActionPanUp,
		ActionPanDown,
		ActionPanLeft,
		ActionPanRight,
	}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionTogglePause:
		return "TogglePause"
	case ActionExit:
		return "Exit"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	default:
		return "Unknown"
	}
}

// Device identifies the kind of physical input a Source belongs to.
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceMouse
)

// Source is a physical button. Keyboard codes use the terminal key names
// ("esc", "w", "c"); mouse codes are button names ("left", "right").
type Source struct {
	Device Device
	Code   string
}

// Key returns a keyboard source.
func Key(code string) Source {
	return Source{Device: DeviceKeyboard, Code: strings.ToLower(code)}
}

// MouseButton returns a mouse button source.
func MouseButton(code string) Source {
	return Source{Device: DeviceMouse, Code: strings.ToLower(code)}
}

// String returns a display name such as "esc" or "mouse:left".
func (s Source) String() string {
	if s.Device == DeviceMouse {
		return "mouse:" + s.Code
	}
	return s.Code
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt

	ModNone Modifier = 0
)

// Has reports whether all bits of o are set.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// String returns e.g. "ctrl+shift", or "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// Binding pairs an action with its physical source.
type Binding struct {
	Action Action
	Source Source
}

// DefaultBindings returns the startup binding set.
func DefaultBindings() []Binding {
	return []Binding{
		{ActionTogglePause, Key("esc")},
		{ActionExit, Key("c")},
		{ActionPanUp, Key("w")},
		{ActionPanDown, Key("s")},
		{ActionPanLeft, Key("a")},
		{ActionPanRight, Key("d")},
	}
}
