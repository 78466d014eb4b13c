package session

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/input"
	"github.com/vovakirdan/isotd/internal/overlay"
)

type fakeWindow struct {
	locked bool
	calls  []bool
}

func (w *fakeWindow) SetCursorLock(locked bool) {
	w.locked = locked
	w.calls = append(w.calls, locked)
}

type fakeUI struct {
	panels []string
	modals []string
}

func (u *fakeUI) Panel(id string, _ overlay.Pos, _ string) { u.panels = append(u.panels, id) }
func (u *fakeUI) Modal(title string, _ []string)           { u.modals = append(u.modals, title) }
func (u *fakeUI) reset()                                   { u.panels, u.modals = nil, nil }

type harness struct {
	t       *testing.T
	machine *Machine
	mapper  *input.Mapper
	window  *fakeWindow
	ui      *fakeUI
	rt      *Runtime
	exits   []int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	m, err := NewMachine(MainState(MainLabel, []mgl32.Vec3{{0, 0, 0}}), nil)
	if err != nil {
		t.Fatalf("NewMachine() failed: %v", err)
	}
	h := &harness{
		t:       t,
		machine: m,
		mapper:  input.NewMapper(),
		window:  &fakeWindow{locked: true},
		ui:      &fakeUI{},
	}
	h.rt = &Runtime{
		Input:      h.mapper,
		Window:     h.window,
		Camera:     camera.New(),
		Controller: camera.NewController(camera.DefaultPanSpeed, camera.DefaultScrollSpeed),
		Overlay:    overlay.NewPresenter(),
		UI:         h.ui,
		Exit:       func(code int) { h.exits = append(h.exits, code) },
	}
	return h
}

// tick runs one frame and ends it like the platform does.
func (h *harness) tick(dt float32) {
	h.t.Helper()
	h.ui.reset()
	if err := h.machine.Tick(h.rt, Frame{Delta: dt, FPS: 60}); err != nil {
		h.t.Fatalf("Tick() failed: %v", err)
	}
	h.mapper.EndFrame()
}

func (h *harness) tap(key string, mods input.Modifier) {
	h.mapper.Press(input.Key(key), mods)
	h.mapper.Release(input.Key(key))
}

func (h *harness) hold(key string, mods input.Modifier) {
	h.mapper.Press(input.Key(key), mods)
}

func (h *harness) checkInvariants() {
	h.t.Helper()
	s := h.machine.Stack()
	if s.Depth() < 1 || s.Depth() > 2 {
		h.t.Fatalf("stack depth = %d, expected 1 or 2", s.Depth())
	}
	if s.Bottom().Kind() != KindMain {
		h.t.Fatalf("bottom state = %v, expected main", s.Bottom())
	}
}

func TestPauseAndResumeScenario(t *testing.T) {
	h := newHarness(t)

	// Frame 1: pause.
	h.tap("esc", input.ModNone)
	h.tick(1.0 / 60)
	if h.machine.Mode() != KindPaused {
		t.Fatalf("Mode() = %v after pause, expected Paused", h.machine.Mode())
	}
	if h.window.locked {
		t.Error("cursor lock should be released on the pause frame")
	}
	if len(h.ui.modals) != 1 || h.ui.modals[0] != overlay.ModalPaused {
		t.Errorf("modals = %v, expected the paused modal", h.ui.modals)
	}
	h.checkInvariants()

	// Frame 2: no input, stays paused.
	h.tick(1.0 / 60)
	if h.machine.Mode() != KindPaused {
		t.Fatalf("Mode() = %v without input, expected Paused", h.machine.Mode())
	}

	// Frame 3: fresh toggle resumes.
	h.tap("esc", input.ModNone)
	h.tick(1.0 / 60)
	if h.machine.Mode() != KindMain {
		t.Fatalf("Mode() = %v after resume, expected Main", h.machine.Mode())
	}
	if !h.window.locked {
		t.Error("cursor lock should be re-engaged on resume")
	}
	h.checkInvariants()
}

func TestPauseEdgeDoesNotResumeSameFrame(t *testing.T) {
	h := newHarness(t)

	// Two press events in the pause frame collapse into one edge.
	h.mapper.Press(input.Key("esc"), input.ModNone)
	h.mapper.Press(input.Key("esc"), input.ModNone)
	h.tick(1.0 / 60)

	if h.machine.Mode() != KindPaused {
		t.Fatalf("Mode() = %v, expected Paused", h.machine.Mode())
	}
	ps, err := h.machine.Stack().Paused()
	if err != nil {
		t.Fatalf("Paused() failed: %v", err)
	}
	if !ps.Acknowledged {
		t.Error("pause screen should be acknowledged after its first frame")
	}
}

func TestHeldToggleDoesNotResume(t *testing.T) {
	h := newHarness(t)

	h.mapper.Press(input.Key("esc"), input.ModNone)
	h.tick(1.0 / 60)

	// Key still held: no new edge, so no resume.
	for i := 0; i < 5; i++ {
		h.mapper.Press(input.Key("esc"), input.ModNone)
		h.tick(1.0 / 60)
		if h.machine.Mode() != KindPaused {
			t.Fatalf("frame %d: Mode() = %v while held, expected Paused", i, h.machine.Mode())
		}
	}

	h.mapper.Release(input.Key("esc"))
	h.tap("esc", input.ModNone)
	h.tick(1.0 / 60)
	if h.machine.Mode() != KindMain {
		t.Fatalf("Mode() = %v after a fresh press, expected Main", h.machine.Mode())
	}
}

func TestCameraOnlyMovesWhileRunning(t *testing.T) {
	h := newHarness(t)

	h.mapper.Press(input.Key("w"), input.ModNone)
	h.tick(1.0)
	if z := h.rt.Camera.Target.Z(); z != -30 {
		t.Fatalf("Target.Z = %v after 1s of PanUp, expected -30", z)
	}

	h.tap("esc", input.ModNone)
	h.tick(1.0)
	h.tick(1.0)
	if z := h.rt.Camera.Target.Z(); z != -30 {
		t.Errorf("Target.Z = %v while paused, expected unchanged -30", z)
	}
}

func TestPauseFrameSkipsCamera(t *testing.T) {
	h := newHarness(t)
	h.mapper.Press(input.Key("d"), input.ModNone)
	h.tap("esc", input.ModNone)
	h.tick(0.5)

	if h.rt.Camera.Target != (mgl32.Vec3{}) {
		t.Errorf("Target = %v on the pause frame, expected no movement", h.rt.Camera.Target)
	}
}

func TestRunningOverlayPanels(t *testing.T) {
	h := newHarness(t)
	h.tick(1.0 / 60)

	want := []string{overlay.PanelInfo, overlay.PanelFPS, overlay.PanelCamera, overlay.PanelMouse}
	if len(h.ui.panels) != len(want) {
		t.Fatalf("panels = %v, expected %v", h.ui.panels, want)
	}
	for i := range want {
		if h.ui.panels[i] != want[i] {
			t.Errorf("panel %d = %q, expected %q", i, h.ui.panels[i], want[i])
		}
	}
	if len(h.ui.modals) != 0 {
		t.Errorf("modals = %v while running, expected none", h.ui.modals)
	}
}

func TestExitRequiresCtrlAndEdge(t *testing.T) {
	tests := []struct {
		name   string
		press  func(h *harness)
		expect bool
	}{
		{"ctrl+c", func(h *harness) { h.tap("c", input.ModCtrl) }, true},
		{"c alone", func(h *harness) { h.tap("c", input.ModNone) }, false},
		{"ctrl with other key", func(h *harness) { h.tap("w", input.ModCtrl) }, false},
		{"ctrl+shift+c", func(h *harness) { h.tap("c", input.ModCtrl|input.ModShift) }, false},
		{"nothing", func(h *harness) {}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.press(h)
			h.tick(1.0 / 60)
			if got := len(h.exits) == 1; got != tc.expect {
				t.Errorf("exit fired = %v, expected %v", got, tc.expect)
			}
			if tc.expect && h.exits[0] != 0 {
				t.Errorf("exit code = %d, expected 0", h.exits[0])
			}
		})
	}
}

func TestExitIgnoresOtherHeldModifiers(t *testing.T) {
	h := newHarness(t)
	h.hold("w", input.ModShift)
	h.tick(1.0 / 60)

	h.tap("c", input.ModCtrl)
	h.tick(1.0 / 60)
	if len(h.exits) != 1 {
		t.Errorf("exit fired %d times while shift+w is held, expected 1", len(h.exits))
	}
}

func TestExitWhilePaused(t *testing.T) {
	h := newHarness(t)
	h.tap("esc", input.ModNone)
	h.tick(1.0 / 60)

	h.tap("c", input.ModCtrl)
	h.tick(1.0 / 60)
	if len(h.exits) != 1 {
		t.Errorf("exit fired %d times, expected 1", len(h.exits))
	}
}

func TestExitHeldCtrlDoesNotRepeat(t *testing.T) {
	h := newHarness(t)
	h.hold("c", input.ModCtrl)
	h.tick(1.0 / 60)
	h.hold("c", input.ModCtrl)
	h.tick(1.0 / 60)
	if len(h.exits) != 1 {
		t.Errorf("exit fired %d times, expected 1", len(h.exits))
	}
}

func TestStackNeverEmpty(t *testing.T) {
	h := newHarness(t)
	keys := []string{"esc", "", "esc", "esc", "", "", "esc", "w", "esc", "esc", "esc", ""}
	for _, k := range keys {
		if k != "" {
			h.tap(k, input.ModNone)
		}
		h.tick(1.0 / 60)
		h.checkInvariants()
	}
}

func TestMissingCollaborator(t *testing.T) {
	tests := []struct {
		name  string
		strip func(rt *Runtime)
	}{
		{"input", func(rt *Runtime) { rt.Input = nil }},
		{"window", func(rt *Runtime) { rt.Window = nil }},
		{"camera", func(rt *Runtime) { rt.Camera = nil }},
		{"camera controller", func(rt *Runtime) { rt.Controller = nil }},
		{"overlay", func(rt *Runtime) { rt.Overlay = nil }},
		{"ui", func(rt *Runtime) { rt.UI = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			tc.strip(h.rt)
			err := h.machine.Tick(h.rt, Frame{})
			var mcErr *MissingCollaboratorError
			if !errors.As(err, &mcErr) {
				t.Fatalf("Tick() error = %v, expected MissingCollaboratorError", err)
			}
			if mcErr.Name != tc.name {
				t.Errorf("Name = %q, expected %q", mcErr.Name, tc.name)
			}
		})
	}

	h := newHarness(t)
	if err := h.machine.Tick(nil, Frame{}); err == nil {
		t.Error("Tick(nil) should fail")
	}
}
