package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/isotd/internal/camera"
	"github.com/vovakirdan/isotd/internal/config"
	"github.com/vovakirdan/isotd/internal/session"
	"github.com/vovakirdan/isotd/internal/terrain"
)

type lockRecorder struct {
	calls []bool
}

func (w *lockRecorder) SetCursorLock(locked bool) {
	w.calls = append(w.calls, locked)
}

func TestAssetsImportIsIdempotent(t *testing.T) {
	a := NewAssets()

	h1 := a.Import("assets/terrain.png")
	h2 := a.Import("assets/terrain.png")
	h3 := a.Import("assets/other.png")

	if h1 != h2 {
		t.Errorf("Import twice = %v, %v, expected the same handle", h1, h2)
	}
	if h1 == h3 {
		t.Error("different paths should get different handles")
	}
	if h1.Kind != AssetTexture || !h1.Valid() {
		t.Errorf("Import handle = %v, expected a valid texture handle", h1)
	}
	if (Handle{}).Valid() {
		t.Error("zero Handle should be invalid")
	}
}

func TestAssetsRegister(t *testing.T) {
	a := NewAssets()

	m1 := a.Register("assets/terrain.png")
	m2 := a.Register("assets/terrain.png")
	if m1 != m2 {
		t.Errorf("Register twice = %v, %v, expected the same handle", m1, m2)
	}
	if m1.Kind != AssetMaterial {
		t.Errorf("Register kind = %v, expected material", m1.Kind)
	}
	// Texture plus material.
	if a.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", a.Len())
	}
	if path, ok := a.Path(m1); !ok || path != "assets/terrain.png" {
		t.Errorf("Path(material) = %q, %v", path, ok)
	}
}

func TestAssetsStoreMesh(t *testing.T) {
	a := NewAssets()
	mesh, err := terrain.Generate(2, 1)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	h := a.Store(mesh, "terrain")
	got, ok := a.Mesh(h)
	if !ok || got != mesh {
		t.Fatalf("Mesh(%v) = %v, %v, expected the stored mesh", h, got, ok)
	}
	if _, ok := a.Mesh(Handle{Kind: AssetMesh, ID: 99}); ok {
		t.Error("Mesh() with an unknown handle should fail")
	}

	list := a.List()
	if len(list) != 1 || list[0].Name != "terrain" || list[0].Handle.Kind != AssetMesh {
		t.Errorf("List() = %+v", list)
	}
}

func TestWorldQueries(t *testing.T) {
	w := NewWorld()
	w.Spawn(SkyBox{ViewRange: 10})
	id := w.Spawn(Solid{Translate: mgl32.Vec3{1, 0, 1}})
	w.Spawn(Light{Kind: LightAmbient, Enabled: true})

	if id != 2 {
		t.Errorf("Spawn id = %d, expected 2", id)
	}
	if w.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", w.Len())
	}
	if sb, ok := w.SkyBox(); !ok || sb.ViewRange != 10 {
		t.Errorf("SkyBox() = %+v, %v", sb, ok)
	}
	if len(w.Solids()) != 1 || len(w.Lights()) != 1 {
		t.Errorf("Solids/Lights = %d/%d, expected 1/1", len(w.Solids()), len(w.Lights()))
	}
	if _, ok := NewWorld().SkyBox(); ok {
		t.Error("empty world should have no skybox")
	}
}

func TestSetup(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	assets := NewAssets()
	world := NewWorld()
	cam := camera.New()
	win := &lockRecorder{}

	state, mesh, err := Setup(cfg, assets, world, cam, win, nil)
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}

	if len(win.calls) != 1 || !win.calls[0] {
		t.Errorf("cursor lock calls = %v, expected [true]", win.calls)
	}
	if cam.Target != (mgl32.Vec3{0, -8.5, 0}) || cam.XZAngle != 1.2 {
		t.Errorf("camera = %+v, expected target Y -8.5 and angle 1.2", cam)
	}

	if mesh.TriangleCount() != 50 || mesh.VertexCount() != 150 {
		t.Errorf("mesh = %d triangles, %d vertices, expected 50/150", mesh.TriangleCount(), mesh.VertexCount())
	}
	if state.Kind() != session.KindMain || state.Label() != session.MainLabel {
		t.Errorf("state = %v, expected the main state", state)
	}

	// Skybox, terrain and two lights.
	if world.Len() != 4 {
		t.Errorf("world.Len() = %d, expected 4", world.Len())
	}
	sb, ok := world.SkyBox()
	if !ok || sb.ViewRange != 500 {
		t.Fatalf("SkyBox() = %+v, %v", sb, ok)
	}
	for i, h := range sb.CubeMap {
		if !h.Valid() || h.Kind != AssetMaterial {
			t.Errorf("CubeMap[%d] = %v, expected a material handle", i, h)
		}
	}

	solids := world.Solids()
	if len(solids) != 1 {
		t.Fatalf("len(Solids()) = %d, expected 1", len(solids))
	}
	stored, ok := assets.Mesh(solids[0].Mesh)
	if !ok || stored != mesh {
		t.Error("terrain solid should reference the returned mesh")
	}
	if path, _ := assets.Path(solids[0].Texture); path != "assets/terrain.png" {
		t.Errorf("terrain texture = %q", path)
	}
	if solids[0].Translate != (mgl32.Vec3{-2.5, 0, -2.5}) {
		t.Errorf("terrain translate = %v", solids[0].Translate)
	}

	lights := world.Lights()
	if len(lights) != 2 || lights[0].Kind != LightSimple || lights[1].Kind != LightAmbient {
		t.Fatalf("lights = %+v", lights)
	}
	if lights[0].Position != (mgl32.Vec3{0, 1000, 0}) || !lights[0].Enabled {
		t.Errorf("simple light = %+v", lights[0])
	}
}

func TestSetupInvalidTerrain(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	cfg.Terrain.Size = 0

	_, _, err := Setup(cfg, NewAssets(), NewWorld(), camera.New(), &lockRecorder{}, nil)
	var cfgErr *terrain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Setup() error = %v, expected *terrain.ConfigurationError", err)
	}
	if cfgErr.Size != 0 {
		t.Errorf("ConfigurationError.Size = %d, expected 0", cfgErr.Size)
	}
}

func TestSetupMissingCollaborator(t *testing.T) {
	_, _, err := Setup(config.DefaultDemoConfig(), NewAssets(), NewWorld(), camera.New(), nil, nil)
	var missing *session.MissingCollaboratorError
	if !errors.As(err, &missing) || missing.Name != "window" {
		t.Errorf("Setup() error = %v, expected missing window", err)
	}
}
