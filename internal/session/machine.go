package session

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/input"
	"github.com/vovakirdan/isotd/internal/overlay"
)

// Default state labels.
const (
	MainLabel   = "Main State"
	PausedLabel = "Paused State"
)

// Window is the windowing surface the session controls.
type Window interface {
	SetCursorLock(locked bool)
}

// Controls is the input surface read during a frame.
type Controls interface {
	camera.Controls
	WasActivated(action input.Action) bool
	Modifiers() input.Modifier
	ActivationModifiers(action input.Action) input.Modifier
	CursorPosition() (mgl32.Vec2, bool)
}

// Frame carries the timing of the current tick.
type Frame struct {
	Delta float32 // seconds since the previous tick
	FPS   float32
}

// Runtime bundles the collaborators created at startup. It is passed to
// every Tick instead of living in package globals.
type Runtime struct {
	Input      Controls
	Window     Window
	Camera     *camera.Camera
	Controller *camera.Controller
	Overlay    *overlay.Presenter
	UI         overlay.UI

	// Exit terminates the process. Tests replace it with a recorder.
	Exit func(code int)
}

// Validate reports the first missing collaborator.
func (rt *Runtime) Validate() error {
	switch {
	case rt == nil:
		return &MissingCollaboratorError{Name: "runtime"}
	case rt.Input == nil:
		return &MissingCollaboratorError{Name: "input"}
	case rt.Window == nil:
		return &MissingCollaboratorError{Name: "window"}
	case rt.Camera == nil:
		return &MissingCollaboratorError{Name: "camera"}
	case rt.Controller == nil:
		return &MissingCollaboratorError{Name: "camera controller"}
	case rt.Overlay == nil:
		return &MissingCollaboratorError{Name: "overlay"}
	case rt.UI == nil:
		return &MissingCollaboratorError{Name: "ui"}
	}
	return nil
}

// DefaultExit exits the process with the given code.
func DefaultExit(code int) {
	os.Exit(code)
}

// Machine owns the session stack and runs one frame of gated systems per
// Tick.
type Machine struct {
	stack  *Stack
	logger *log.Logger
}

// NewMachine creates a machine whose stack starts with main.
// A nil logger discards output.
func NewMachine(main State, logger *log.Logger) (*Machine, error) {
	stack, err := NewStack(main)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{stack: stack, logger: logger}, nil
}

// Stack returns the session stack for inspection.
func (m *Machine) Stack() *Stack {
	return m.stack
}

// Mode returns the kind of the active state.
func (m *Machine) Mode() Kind {
	return m.stack.Top().Kind()
}

// Tick runs one frame: the pause decision, then the systems gated on the
// active state, then the global exit check.
func (m *Machine) Tick(rt *Runtime, f Frame) error {
	if err := rt.Validate(); err != nil {
		return err
	}

	if err := m.decide(rt); err != nil {
		return err
	}

	var err error
	switch top := m.stack.Top(); top.Kind() {
	case KindMain:
		err = m.running(rt, f)
	case KindPaused:
		err = m.paused(rt)
	default:
		err = fmt.Errorf("session: unknown state kind %d", top.Kind())
	}
	if err != nil {
		return err
	}

	if ExitRequested(rt.Input) {
		m.logger.Info("exit requested")
		exit := rt.Exit
		if exit == nil {
			exit = DefaultExit
		}
		exit(0)
	}
	return nil
}

// decide pushes the paused state when the pause toggle fires while running.
func (m *Machine) decide(rt *Runtime) error {
	if m.Mode() != KindMain || !rt.Input.WasActivated(input.ActionTogglePause) {
		return nil
	}
	if err := m.stack.Push(PausedState(PausedLabel)); err != nil {
		return err
	}
	m.logger.Info("session paused", "depth", m.stack.Depth())
	return nil
}

// running drives the camera and draws the telemetry panels.
func (m *Machine) running(rt *Runtime, f Frame) error {
	if _, err := m.stack.Main(); err != nil {
		return err
	}

	rt.Controller.Update(rt.Camera, rt.Input, f.Delta)

	cursor, _ := rt.Input.CursorPosition()
	rt.Overlay.Running(rt.UI, overlay.Telemetry{
		FPS:    f.FPS,
		Camera: rt.Camera.Target,
		Cursor: cursor,
	})
	return nil
}

// paused draws the pause screen and resumes on a fresh toggle once the
// screen has been shown for at least one frame.
func (m *Machine) paused(rt *Runtime) error {
	rt.Window.SetCursorLock(false)

	ps, err := m.stack.Paused()
	if err != nil {
		return err
	}

	resume := ps.Acknowledged && rt.Input.WasActivated(input.ActionTogglePause)
	ps.Acknowledged = true

	rt.Overlay.Paused(rt.UI, m.stack.Dump())

	if resume {
		rt.Window.SetCursorLock(true)
		if _, err := m.stack.Pop(); err != nil {
			return err
		}
		m.logger.Info("session resumed", "depth", m.stack.Depth())
	}
	return nil
}

// ExitRequested reports whether the exit action fired this frame and its
// press carried exactly the Ctrl modifier. Modifiers of other held keys do
// not count.
func ExitRequested(in Controls) bool {
	return in.WasActivated(input.ActionExit) && in.ActivationModifiers(input.ActionExit) == input.ModCtrl
}
