// Package session implements the run/pause state machine that gates which
// per-frame systems execute.
package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags the variant held by a State.
type Kind int

const (
	KindMain Kind = iota
	KindPaused
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMain:
		return "Main"
	case KindPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Main is the running-mode state. It retains the terrain vertex list for
// later queries; the list is never mutated after creation.
type Main struct {
	Label    string
	vertices []mgl32.Vec3
}

// TerrainVertices returns a copy of the retained terrain positions.
func (m *Main) TerrainVertices() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// VertexCount returns the number of retained terrain positions.
func (m *Main) VertexCount() int {
	return len(m.vertices)
}

// Paused is the paused-mode state. Acknowledged becomes true once the
// pause screen has been drawn, so the press that paused cannot resume.
type Paused struct {
	Label        string
	Acknowledged bool
}

// State is one entry of the session stack. Exactly one of main and paused
// is set, selected by kind.
type State struct {
	kind   Kind
	main   *Main
	paused *Paused
}

// MainState creates a running-mode state. vertices is copied.
func MainState(label string, vertices []mgl32.Vec3) State {
	v := make([]mgl32.Vec3, len(vertices))
	copy(v, vertices)
	return State{kind: KindMain, main: &Main{Label: label, vertices: v}}
}

// PausedState creates an unacknowledged paused-mode state.
func PausedState(label string) State {
	return State{kind: KindPaused, paused: &Paused{Label: label}}
}

// Kind returns the variant tag.
func (s State) Kind() Kind {
	return s.kind
}

// Label returns the display label of the variant.
func (s State) Label() string {
	switch s.kind {
	case KindMain:
		return s.main.Label
	case KindPaused:
		return s.paused.Label
	default:
		return fmt.Sprintf("<%s>", s.kind)
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("%s(%q)", s.kind, s.Label())
}
