package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Entity is anything that can be spawned into the world.
type Entity interface {
	entity()
}

// Solid is a textured mesh placed in the world.
type Solid struct {
	Mesh      Handle
	Texture   Handle
	Translate mgl32.Vec3
}

// SkyBox surrounds the scene with a cube map. Faces are ordered right,
// left, top, bottom, back, front.
type SkyBox struct {
	ViewRange float32
	CubeMap   [6]Handle
}

// LightKind selects how a light contributes to the scene.
type LightKind int

const (
	// LightSimple is a point light at Position.
	LightSimple LightKind = iota
	// LightAmbient lights every surface uniformly.
	LightAmbient
)

// Light is a scene light.
type Light struct {
	Kind      LightKind
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Enabled   bool
}

func (Solid) entity()  {}
func (SkyBox) entity() {}
func (Light) entity()  {}

// EntityID identifies a spawned entity.
type EntityID int

// World holds the spawned entities in spawn order.
type World struct {
	entities []Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Spawn adds e to the world and returns its id.
func (w *World) Spawn(e Entity) EntityID {
	w.entities = append(w.entities, e)
	return EntityID(len(w.entities))
}

// Len returns the number of spawned entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Solids returns the spawned solids.
func (w *World) Solids() []Solid {
	var out []Solid
	for _, e := range w.entities {
		if s, ok := e.(Solid); ok {
			out = append(out, s)
		}
	}
	return out
}

// SkyBox returns the first spawned skybox.
func (w *World) SkyBox() (SkyBox, bool) {
	for _, e := range w.entities {
		if s, ok := e.(SkyBox); ok {
			return s, true
		}
	}
	return SkyBox{}, false
}

// Lights returns the spawned lights, enabled or not.
func (w *World) Lights() []Light {
	var out []Light
	for _, e := range w.entities {
		if l, ok := e.(Light); ok {
			out = append(out, l)
		}
	}
	return out
}
