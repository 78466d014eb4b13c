// Package tui hosts the demo in a terminal with Bubble Tea. It realizes the
// window, raw input, overlay and renderer the session machine drives.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/config"
	"github.com/vovakirdan/isotd/internal/core"
	"github.com/vovakirdan/isotd/internal/input"
	"github.com/vovakirdan/isotd/internal/overlay"
	"github.com/vovakirdan/isotd/internal/scene"
	"github.com/vovakirdan/isotd/internal/session"
)

// TickMsg is sent to trigger one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// exitState records a request from the session's exit hook.
type exitState struct {
	requested bool
	code      int
}

// Model is the Bubble Tea model running the demo.
type Model struct {
	config  core.RuntimeConfig
	machine *session.Machine
	runtime *session.Runtime
	mapper  *input.Mapper
	raw     *rawInput
	window  *termWindow
	ui      *termUI
	scene   *sceneRenderer
	screen  *core.Screen
	timer   *core.FrameTimer
	exit    *exitState
	logger  *log.Logger
	clock   func() time.Time

	keys HostKeyMap
	help help.Model

	screenshotDir string
	quitting      bool
	err           error
}

// NewModel builds the scene and the session for a terminal of the given
// size. A nil logger discards output.
func NewModel(cfg config.DemoConfig, rc core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rc.TickRate <= 0 {
		rc.TickRate = cfg.Runtime.TickRate
	}

	mapper := input.NewMapper()
	window := newTermWindow()
	assets := scene.NewAssets()
	world := scene.NewWorld()
	cam := camera.New()

	bottom, _, err := scene.Setup(cfg, assets, world, cam, window, logger)
	if err != nil {
		return Model{}, err
	}
	machine, err := session.NewMachine(bottom, logger)
	if err != nil {
		return Model{}, err
	}

	exit := &exitState{}
	ui := newTermUI()
	rt := &session.Runtime{
		Input:      mapper,
		Window:     window,
		Camera:     cam,
		Controller: camera.NewController(cfg.Camera.PanSpeed, cfg.Camera.ScrollSpeed),
		Overlay:    overlay.NewPresenter(),
		UI:         ui,
		Exit: func(code int) {
			exit.requested = true
			exit.code = code
		},
	}

	raw := newRawInput(mapper,
		time.Duration(cfg.Runtime.HoldInitialMS)*time.Millisecond,
		time.Duration(cfg.Runtime.HoldTimeoutMS)*time.Millisecond)

	h := help.New()
	h.ShowAll = false

	return Model{
		config:  rc,
		machine: machine,
		runtime: rt,
		mapper:  mapper,
		raw:     raw,
		window:  window,
		ui:      ui,
		scene:   &sceneRenderer{world: world, assets: assets, cam: cam},
		screen:  core.NewScreen(rc.ScreenW, screenRows(rc.ScreenH)),
		timer:   &core.FrameTimer{},
		exit:    exit,
		logger:  logger,
		clock:   time.Now,
		keys:    NewHostKeyMap(mapper.Bindings()),
		help:    h,

		screenshotDir: defaultScreenshotDir(),
	}, nil
}

// screenRows leaves the last terminal row for the help line.
func screenRows(h int) int {
	return core.Max(h-1, 0)
}

// Init applies the initial cursor lock and starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.window.Flush(), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			if err := m.saveScreenshot(m.clock()); err != nil {
				m.logger.Warn("screenshot failed", "error", err)
			}
			return m, nil
		}
		m.raw.Key(msg, m.clock())
		return m, nil

	case tea.MouseMsg:
		m.raw.Mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one session frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.raw.Expire(now)
	dt := m.timer.Tick(now)

	m.ui.Reset()
	err := m.machine.Tick(m.runtime, session.Frame{Delta: dt, FPS: m.timer.FPS()})
	m.mapper.EndFrame()
	windowCmd := m.window.Flush()

	if err != nil {
		m.logger.Error("frame failed", "error", err)
		m.err = fmt.Errorf("session tick: %w", err)
		m.quitting = true
		return m, tea.Quit
	}
	if m.exit.requested {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tea.Batch(windowCmd, tickCmd(m.config.TickRate))
}

// Mode returns the active session state kind.
func (m Model) Mode() session.Kind {
	return m.machine.Mode()
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// frame draws the scene and the overlay into the screen buffer.
func (m Model) frame() *core.Screen {
	m.screen.Clear()
	m.scene.Draw(m.screen)
	m.ui.Draw(m.screen)
	return m.screen
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.frame()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".isotd", "screenshots")
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot(now time.Time) error {
	if m.screenshotDir == "" {
		return fmt.Errorf("no screenshot directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("isotd_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.frame().String()), 0o600); err != nil {
		return err
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// Run starts the Bubble Tea program and blocks until the demo exits.
func Run(cfg config.DemoConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
