package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isotd/internal/input"
)

// Terminal cells are reported to the overlay in pixel-like units so the
// cursor panel and panel positions share one coordinate space.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// rawInput feeds terminal events into the input mapper.
//
// Terminals send key presses and auto-repeats but never key releases, so a
// key is treated as held until no event for it has arrived in time. The OS
// waits much longer before the first repeat than between repeats, so a key
// gets holdInitial until its second event and holdTimeout after that.
type rawInput struct {
	mapper      *input.Mapper
	holdInitial time.Duration
	holdTimeout time.Duration
	keys        map[input.Source]keyHold
}

type keyHold struct {
	lastSeen  time.Time
	repeating bool
}

func newRawInput(m *input.Mapper, holdInitial, holdTimeout time.Duration) *rawInput {
	return &rawInput{
		mapper:      m,
		holdInitial: holdInitial,
		holdTimeout: holdTimeout,
		keys:        make(map[input.Source]keyHold),
	}
}

// Key records a key event at now.
func (r *rawInput) Key(msg tea.KeyMsg, now time.Time) {
	src, mods, ok := ParseKey(msg)
	if !ok {
		return
	}
	r.mapper.Press(src, mods)
	_, held := r.keys[src]
	r.keys[src] = keyHold{lastSeen: now, repeating: held}
}

// Mouse records a mouse event.
func (r *rawInput) Mouse(msg tea.MouseMsg) {
	r.mapper.MoveCursor(float32(msg.X*CellWidthPx), float32(msg.Y*CellHeightPx))

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		r.mapper.Scroll(1)
		return
	case tea.MouseButtonWheelDown:
		r.mapper.Scroll(-1)
		return
	}

	src, ok := mouseSource(msg.Button)
	if !ok {
		// Some terminals report releases without the button.
		if msg.Action == tea.MouseActionRelease {
			for _, b := range []tea.MouseButton{tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight} {
				s, _ := mouseSource(b)
				r.mapper.Release(s)
			}
		}
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		r.mapper.Press(src, mouseMods(msg))
	case tea.MouseActionRelease:
		r.mapper.Release(src)
	}
}

// Expire releases keys whose last event is older than their hold window.
func (r *rawInput) Expire(now time.Time) {
	for src, k := range r.keys {
		window := r.holdInitial
		if k.repeating {
			window = r.holdTimeout
		}
		if now.Sub(k.lastSeen) >= window {
			r.mapper.Release(src)
			delete(r.keys, src)
		}
	}
}

func mouseSource(b tea.MouseButton) (input.Source, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.MouseButton("left"), true
	case tea.MouseButtonMiddle:
		return input.MouseButton("middle"), true
	case tea.MouseButtonRight:
		return input.MouseButton("right"), true
	}
	return input.Source{}, false
}

func mouseMods(msg tea.MouseMsg) input.Modifier {
	var mods input.Modifier
	if msg.Ctrl {
		mods |= input.ModCtrl
	}
	if msg.Shift {
		mods |= input.ModShift
	}
	if msg.Alt {
		mods |= input.ModAlt
	}
	return mods
}
