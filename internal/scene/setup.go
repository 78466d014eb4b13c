package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/config"
	"github.com/vovakirdan/isotd/internal/session"
	"github.com/vovakirdan/isotd/internal/terrain"
)

// TerrainMeshName is the store name of the generated terrain mesh.
const TerrainMeshName = "terrain"

// Setup populates the world once at startup: it grabs the cursor, places the
// camera, spawns the skybox, the terrain and the lights, and returns the
// bottom session state holding the terrain's raw positions.
func Setup(cfg config.DemoConfig, assets *Assets, world *World, cam *camera.Camera, win session.Window, logger *log.Logger) (session.State, *terrain.Mesh, error) {
	switch {
	case assets == nil:
		return session.State{}, nil, &session.MissingCollaboratorError{Name: "assets"}
	case world == nil:
		return session.State{}, nil, &session.MissingCollaboratorError{Name: "world"}
	case cam == nil:
		return session.State{}, nil, &session.MissingCollaboratorError{Name: "camera"}
	case win == nil:
		return session.State{}, nil, &session.MissingCollaboratorError{Name: "window"}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	win.SetCursorLock(true)

	cam.Target = mgl32.Vec3{0, cfg.Camera.TargetY, 0}
	cam.XZAngle = cfg.Camera.XZAngle
	cam.Pitch = cfg.Camera.Pitch
	cam.Distance = cfg.Camera.Distance

	var cube [6]Handle
	for i, face := range cfg.SkyBox.Faces() {
		cube[i] = assets.Register(face)
	}
	world.Spawn(SkyBox{ViewRange: cfg.SkyBox.ViewRange, CubeMap: cube})

	mesh, err := terrain.Generate(cfg.Terrain.Size, cfg.Terrain.CellSize)
	if err != nil {
		return session.State{}, nil, fmt.Errorf("failed to build terrain: %w", err)
	}
	world.Spawn(Solid{
		Mesh:      assets.Store(mesh, TerrainMeshName),
		Texture:   assets.Register(cfg.Terrain.Texture),
		Translate: mesh.Offset(),
	})

	for _, lc := range cfg.Lights {
		kind := LightSimple
		if lc.Kind == config.LightAmbient {
			kind = LightAmbient
		}
		world.Spawn(Light{
			Kind:      kind,
			Position:  mgl32.Vec3(lc.Position),
			Color:     mgl32.Vec3(lc.Color),
			Intensity: lc.Intensity,
			Enabled:   !lc.Disabled,
		})
	}

	logger.Info("scene ready",
		"triangles", mesh.TriangleCount(),
		"vertices", mesh.VertexCount(),
		"entities", world.Len(),
		"assets", assets.Len())

	return session.MainState(session.MainLabel, mesh.Positions()), mesh, nil
}
