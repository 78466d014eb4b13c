package input

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Mapper tracks raw device state and answers per-action queries.
//
// Held state is a level: it stays true from Press until Release.
// Activation is an edge: it is reported for the frame in which the source
// went from released to pressed, and cleared by EndFrame.
type Mapper struct {
	bindings  map[Action]Source
	held      map[Source]Modifier // held source -> modifiers at press time
	activated map[Source]Modifier // press edges this frame -> modifiers of the edge
	frameMods Modifier            // modifiers seen on presses this frame
	scroll    float32
	cursor    mgl32.Vec2
	hasCursor bool
}

// NewMapper creates a mapper with the default bindings applied.
func NewMapper() *Mapper {
	m := &Mapper{
		bindings:  make(map[Action]Source),
		held:      make(map[Source]Modifier),
		activated: make(map[Source]Modifier),
	}
	for _, b := range DefaultBindings() {
		m.Bind(b.Action, b.Source)
	}
	return m
}

// Bind maps action to source. Rebinding an action replaces its previous
// source, and any other action bound to the same source is unbound so the
// mapping stays one-to-one.
func (m *Mapper) Bind(action Action, source Source) {
	for a, s := range m.bindings {
		if s == source && a != action {
			delete(m.bindings, a)
		}
	}
	m.bindings[action] = source
}

// Binding returns the source bound to action.
func (m *Mapper) Binding(action Action) (Source, bool) {
	s, ok := m.bindings[action]
	return s, ok
}

// Bindings returns the current binding set ordered by action.
func (m *Mapper) Bindings() []Binding {
	out := make([]Binding, 0, len(m.bindings))
	for a, s := range m.bindings {
		out = append(out, Binding{Action: a, Source: s})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Action < out[j].Action
	})
	return out
}

// Press records a source going down with the given modifiers.
// Repeated presses without a Release do not produce a new edge.
func (m *Mapper) Press(source Source, mods Modifier) {
	if _, down := m.held[source]; !down {
		m.activated[source] = mods
	}
	m.held[source] = mods
	m.frameMods |= mods
}

// Release records a source going up.
func (m *Mapper) Release(source Source) {
	delete(m.held, source)
}

// ReleaseAll releases every held source.
func (m *Mapper) ReleaseAll() {
	for s := range m.held {
		delete(m.held, s)
	}
	m.frameMods = ModNone
}

// HeldSources returns the currently held sources.
func (m *Mapper) HeldSources() []Source {
	out := make([]Source, 0, len(m.held))
	for s := range m.held {
		out = append(out, s)
	}
	return out
}

// Scroll accumulates a wheel delta for the current frame.
// Positive values scroll up.
func (m *Mapper) Scroll(delta float32) {
	m.scroll += delta
}

// MoveCursor records the latest pointer position.
func (m *Mapper) MoveCursor(x, y float32) {
	m.cursor = mgl32.Vec2{x, y}
	m.hasCursor = true
}

// IsHeld reports whether the source bound to action is held.
func (m *Mapper) IsHeld(action Action) bool {
	s, ok := m.bindings[action]
	if !ok {
		return false
	}
	_, down := m.held[s]
	return down
}

// WasActivated reports whether the source bound to action was pressed
// this frame.
func (m *Mapper) WasActivated(action Action) bool {
	s, ok := m.bindings[action]
	if !ok {
		return false
	}
	_, edge := m.activated[s]
	return edge
}

// ActivationModifiers returns the modifiers that came with this frame's
// press edge of action, ignoring modifiers of other held sources.
func (m *Mapper) ActivationModifiers(action Action) Modifier {
	s, ok := m.bindings[action]
	if !ok {
		return ModNone
	}
	return m.activated[s]
}

// Modifiers returns the modifiers held this frame: those of every held
// source plus those of any source pressed during the frame, so a tap that
// is released before the tick still counts with its modifiers.
func (m *Mapper) Modifiers() Modifier {
	mods := m.frameMods
	for _, mod := range m.held {
		mods |= mod
	}
	return mods
}

// ScrollDelta returns the wheel delta accumulated this frame.
func (m *Mapper) ScrollDelta() float32 {
	return m.scroll
}

// CursorPosition returns the last known pointer position.
func (m *Mapper) CursorPosition() (mgl32.Vec2, bool) {
	return m.cursor, m.hasCursor
}

// EndFrame clears per-frame edges and scroll.
func (m *Mapper) EndFrame() {
	for s := range m.activated {
		delete(m.activated, s)
	}
	m.scroll = 0
	m.frameMods = ModNone
}
