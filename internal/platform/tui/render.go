package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/core"
	"github.com/vovakirdan/isotd/internal/scene"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorSkyHigh:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
	core.ColorSkyLow:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// sceneRenderer projects the world through the camera into a screen.
type sceneRenderer struct {
	world  *scene.World
	assets *scene.Assets
	cam    *camera.Camera
}

// Draw renders the sky, the terrain wireframe and the light markers.
func (r *sceneRenderer) Draw(s *core.Screen) {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}
	vp := r.cam.ViewProjection(w, h)

	if _, ok := r.world.SkyBox(); ok {
		drawSky(s)
	}

	lights := r.world.Lights()
	for _, solid := range r.world.Solids() {
		mesh, ok := r.assets.Mesh(solid.Mesh)
		if !ok {
			continue
		}
		positions := mesh.Positions()
		normals := mesh.Normals()
		for i := 0; i+2 < len(positions); i += 3 {
			tri := [3]mgl32.Vec3{
				positions[i].Add(solid.Translate),
				positions[i+1].Add(solid.Translate),
				positions[i+2].Add(solid.Translate),
			}
			color := core.ColorGreen
			if brightness(lights, tri, normals[i]) > 0.75 {
				color = core.ColorBrightGreen
			}
			drawTriangle(s, vp, tri, color)
		}
	}

	for _, l := range lights {
		if !l.Enabled || l.Kind != scene.LightSimple {
			continue
		}
		if x, y, ok := camera.ProjectWith(vp, l.Position, w, h); ok {
			s.SetColored(int(x), int(y), '*', core.ColorYellow)
		}
	}
}

// drawSky fills the upper half with a sparse two-tone star field.
func drawSky(s *core.Screen) {
	horizon := s.Height() / 2
	for y := 0; y < horizon; y++ {
		color := core.ColorSkyHigh
		if y >= horizon/2 {
			color = core.ColorSkyLow
		}
		for x := 0; x < s.Width(); x++ {
			if (x+3*y)%11 == 0 {
				s.SetColored(x, y, '·', color)
			}
		}
	}
}

func drawTriangle(s *core.Screen, vp mgl32.Mat4, tri [3]mgl32.Vec3, color core.Color) {
	var px, py [3]int
	for i, p := range tri {
		x, y, ok := camera.ProjectWith(vp, p, s.Width(), s.Height())
		// Points far off screen would make the line walk needlessly long.
		if !ok || x < -4*float32(s.Width()) || x > 5*float32(s.Width()) ||
			y < -4*float32(s.Height()) || y > 5*float32(s.Height()) {
			return
		}
		px[i], py[i] = int(math.Floor(float64(x))), int(math.Floor(float64(y)))
	}
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		s.DrawLine(px[i], py[i], px[j], py[j], '.', color)
	}
	for i := 0; i < 3; i++ {
		s.SetColored(px[i], py[i], '+', color)
	}
}

// brightness sums the enabled lights hitting a triangle with normal n.
func brightness(lights []scene.Light, tri [3]mgl32.Vec3, n mgl32.Vec3) float32 {
	center := tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3)
	var total float32
	for _, l := range lights {
		if !l.Enabled {
			continue
		}
		switch l.Kind {
		case scene.LightAmbient:
			total += l.Intensity
		case scene.LightSimple:
			dir := l.Position.Sub(center)
			if dir.Len() == 0 {
				continue
			}
			if d := n.Dot(dir.Normalize()); d > 0 {
				total += l.Intensity * d
			}
		}
	}
	return total
}
