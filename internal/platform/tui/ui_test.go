package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/isotd/internal/core"
	"github.com/vovakirdan/isotd/internal/overlay"
)

func TestTermUIPanels(t *testing.T) {
	s := core.NewScreen(80, 10)
	ui := newTermUI()
	overlay.NewPresenter().Running(ui, overlay.Telemetry{FPS: 60})

	ui.Draw(s)
	if !strings.HasPrefix(s.Row(0), "  Press ESC to pause and CTRL+C to exit.") {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if !strings.HasPrefix(s.Row(1), "  FPS: 60.0") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.GetCell(2, 0).Color != core.ColorBrightYellow {
		t.Error("panels should be drawn in bright yellow")
	}

	ui.Reset()
	s.Clear()
	ui.Draw(s)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Reset() should drop the collected panels")
	}
}

func TestTermUIModal(t *testing.T) {
	s := core.NewScreen(80, 24)
	ui := newTermUI()
	overlay.NewPresenter().Paused(ui, []string{"Paused State", "Main State"})

	ui.Draw(s)
	out := s.String()
	for _, want := range []string{
		"Paused",
		"Execution is paused. Camera is not controllable",
		"Current states stack: [",
		" Paused State,",
		" Main State",
		"Press ESC to resume",
		"┌",
		"┘",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("modal output missing %q:\n%s", want, out)
		}
	}
}
