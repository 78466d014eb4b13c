// Package config provides YAML-based configuration loading for the demo.
package config

import "fmt"

// DemoConfig contains all tunables of the demo scene.
type DemoConfig struct {
	Terrain TerrainConfig   `yaml:"terrain"`
	Camera  CameraConfig    `yaml:"camera"`
	SkyBox  SkyBoxConfig    `yaml:"skybox"`
	Lights  []LightConfig   `yaml:"lights"`
	Runtime RuntimeSettings `yaml:"runtime"`
}

// TerrainConfig defines the procedural ground tile.
type TerrainConfig struct {
	Size     int     `yaml:"size"`      // Tiles per side
	CellSize float32 `yaml:"cell_size"` // World units per tile
	Texture  string  `yaml:"texture"`
}

// CameraConfig defines camera speeds and the initial view.
type CameraConfig struct {
	PanSpeed    float32 `yaml:"pan_speed"`    // Units per second on X/Z
	ScrollSpeed float32 `yaml:"scroll_speed"` // Units per second on Y
	TargetY     float32 `yaml:"target_y"`
	XZAngle     float32 `yaml:"xz_angle"` // Radians around the up axis
	Pitch       float32 `yaml:"pitch"`    // Radians above the horizon
	Distance    float32 `yaml:"distance"`
}

// SkyBoxConfig lists the six cube-map faces.
type SkyBoxConfig struct {
	ViewRange float32 `yaml:"view_range"`
	Right     string  `yaml:"right"`
	Left      string  `yaml:"left"`
	Top       string  `yaml:"top"`
	Bottom    string  `yaml:"bottom"`
	Back      string  `yaml:"back"`
	Front     string  `yaml:"front"`
}

// Faces returns the face paths in right, left, top, bottom, back, front order.
func (s SkyBoxConfig) Faces() []string {
	return []string{s.Right, s.Left, s.Top, s.Bottom, s.Back, s.Front}
}

// Light kinds.
const (
	LightSimple  = "simple"
	LightAmbient = "ambient"
)

// LightConfig defines one scene light.
type LightConfig struct {
	Kind      string     `yaml:"kind"`
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"` // RGB in [0, 1]
	Intensity float32    `yaml:"intensity"`
	Disabled  bool       `yaml:"disabled"`
}

// RuntimeSettings controls the host loop.
type RuntimeSettings struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
	// HoldInitialMS is how long a freshly pressed key counts as held
	// before its first auto-repeat arrives. It must cover the OS repeat
	// delay. Terminals report no key releases.
	HoldInitialMS int `yaml:"hold_initial_ms"`
	// HoldTimeoutMS is how long a repeating key counts as held after its
	// last terminal key event.
	HoldTimeoutMS int `yaml:"hold_timeout_ms"`
}

// Validate checks values the rest of the demo cannot recover from.
// Terrain dimensions are checked by the terrain generator itself.
func (c DemoConfig) Validate() error {
	if c.Camera.PanSpeed <= 0 {
		return fmt.Errorf("config: camera.pan_speed must be positive, got %g", c.Camera.PanSpeed)
	}
	if c.Camera.ScrollSpeed <= 0 {
		return fmt.Errorf("config: camera.scroll_speed must be positive, got %g", c.Camera.ScrollSpeed)
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("config: runtime.tick_rate must be positive, got %d", c.Runtime.TickRate)
	}
	if c.Runtime.HoldInitialMS <= 0 {
		return fmt.Errorf("config: runtime.hold_initial_ms must be positive, got %d", c.Runtime.HoldInitialMS)
	}
	if c.Runtime.HoldTimeoutMS <= 0 {
		return fmt.Errorf("config: runtime.hold_timeout_ms must be positive, got %d", c.Runtime.HoldTimeoutMS)
	}
	for i, l := range c.Lights {
		if l.Kind != LightSimple && l.Kind != LightAmbient {
			return fmt.Errorf("config: lights[%d].kind %q is not %q or %q", i, l.Kind, LightSimple, LightAmbient)
		}
	}
	return nil
}
