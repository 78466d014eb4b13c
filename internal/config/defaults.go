package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultDemoConfig returns the default demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Terrain: TerrainConfig{
			Size:     5,
			CellSize: 1.0,
			Texture:  "assets/terrain.png",
		},
		Camera: CameraConfig{
			PanSpeed:    30,
			ScrollSpeed: 60,
			TargetY:     -8.5,
			XZAngle:     1.2,
			Pitch:       0.6,
			Distance:    14,
		},
		SkyBox: SkyBoxConfig{
			ViewRange: 500,
			Right:     "assets/skybox_right.png",
			Left:      "assets/skybox_left.png",
			Top:       "assets/skybox_top.png",
			Bottom:    "assets/skybox_bottom.png",
			Back:      "assets/skybox_back.png",
			Front:     "assets/skybox_front.png",
		},
		Lights: []LightConfig{
			{
				Kind:      LightSimple,
				Position:  [3]float32{0, 1000, 0},
				Color:     [3]float32{1, 1, 1},
				Intensity: 0.5,
			},
			{
				Kind:      LightAmbient,
				Color:     [3]float32{1, 1, 1},
				Intensity: 0.5,
			},
		},
		Runtime: RuntimeSettings{
			TickRate:      60,
			HoldInitialMS: 700,
			HoldTimeoutMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDemoYAML
}
