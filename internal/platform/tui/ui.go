package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/isotd/internal/core"
	"github.com/vovakirdan/isotd/internal/overlay"
)

type panel struct {
	id   string
	pos  overlay.Pos
	text string
}

type modal struct {
	title string
	lines []string
}

// termUI collects the overlay drawn during a frame and composes it over
// the scene when the frame is viewed.
type termUI struct {
	panels []panel
	modal  *modal
}

func newTermUI() *termUI {
	return &termUI{}
}

// Panel implements overlay.UI.
func (u *termUI) Panel(id string, pos overlay.Pos, text string) {
	u.panels = append(u.panels, panel{id: id, pos: pos, text: text})
}

// Modal implements overlay.UI.
func (u *termUI) Modal(title string, lines []string) {
	u.modal = &modal{title: title, lines: append([]string(nil), lines...)}
}

// Reset drops everything collected for the previous frame.
func (u *termUI) Reset() {
	u.panels = u.panels[:0]
	u.modal = nil
}

// Draw composes the collected overlay onto s.
func (u *termUI) Draw(s *core.Screen) {
	for _, p := range u.panels {
		x := int(p.pos.X) / CellWidthPx
		y := int(p.pos.Y)/CellHeightPx - 1
		s.DrawText(x, y, p.text, core.ColorBrightYellow)
	}
	if u.modal != nil {
		drawModal(s, u.modal)
	}
}

func drawModal(s *core.Screen, m *modal) {
	var rows []string
	for _, l := range m.lines {
		rows = append(rows, strings.Split(l, "\n")...)
	}

	width := utf8.RuneCountInString(m.title) + 4
	for _, r := range rows {
		width = core.Max(width, utf8.RuneCountInString(r)+4)
	}
	box := core.CenteredRect(width, len(rows)+2, s.Width(), s.Height())

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)
	s.DrawText(box.X+2, box.Y, m.title, core.ColorBrightYellow)

	inner := box.Inset(1)
	for i, r := range rows {
		if i >= inner.H {
			break
		}
		s.DrawText(inner.X+1, inner.Y+i, r, core.ColorWhite)
	}
}
