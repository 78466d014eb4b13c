// Package overlay renders the diagnostic text drawn over the scene.
// It only reads telemetry; all state changes belong to the session package.
package overlay

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Pos is a panel position in screen pixels.
type Pos struct {
	X, Y float32
}

// UI is the immediate-mode surface the presenter draws into.
type UI interface {
	// Panel draws a fixed-position single-line text panel.
	Panel(id string, pos Pos, text string)
	// Modal draws a titled window with one label per line.
	Modal(title string, lines []string)
}

// Telemetry is the data shown while the session is running.
type Telemetry struct {
	FPS    float32
	Camera mgl32.Vec3
	Cursor mgl32.Vec2
}

// Panel ids and positions.
const (
	PanelInfo   = "Information"
	PanelFPS    = "FPS Counter"
	PanelCamera = "Camera"
	PanelMouse  = "Mouse"
	ModalPaused = "Paused"
)

var (
	posInfo   = Pos{16, 16}
	posFPS    = Pos{16, 32}
	posCamera = Pos{16, 48}
	posMouse  = Pos{16, 64}
)

// Presenter formats telemetry into panels.
type Presenter struct {
	RunningHint string
	PausedHint  string
}

// NewPresenter creates a presenter with the default hint texts.
func NewPresenter() *Presenter {
	return &Presenter{
		RunningHint: "Press ESC to pause and CTRL+C to exit.",
		PausedHint:  "Press ESC to resume",
	}
}

// Running draws the four running-mode panels.
func (p *Presenter) Running(ui UI, t Telemetry) {
	ui.Panel(PanelInfo, posInfo, p.RunningHint)
	ui.Panel(PanelFPS, posFPS, fmt.Sprintf("FPS: %.1f", t.FPS))
	ui.Panel(PanelCamera, posCamera, fmt.Sprintf("Camera X,Y,Z: [%.1f,%.1f,%.1f]",
		t.Camera.X(), t.Camera.Y(), t.Camera.Z()))
	ui.Panel(PanelMouse, posMouse, fmt.Sprintf("Mouse X,Y: [%.1f,%.1f]", t.Cursor.X(), t.Cursor.Y()))
}

// Paused draws the paused modal with the session stack dump.
// labels are ordered top to bottom.
func (p *Presenter) Paused(ui UI, labels []string) {
	ui.Modal(ModalPaused, []string{
		"Execution is paused. Camera is not controllable",
		fmt.Sprintf("Current states stack: [\n %s\n]", FormatStack(labels)),
	})
	ui.Panel(PanelInfo, posInfo, p.PausedHint)
}

// FormatStack joins state labels with a comma and newline.
func FormatStack(labels []string) string {
	return strings.Join(labels, ",\n ")
}
