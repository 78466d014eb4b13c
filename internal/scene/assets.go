// Package scene holds the asset store, the entity world and the startup
// glue that populates them for the demo.
package scene

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/isotd/internal/terrain"
)

// AssetKind separates the handle namespaces of the store.
type AssetKind int

const (
	AssetTexture AssetKind = iota
	AssetMaterial
	AssetMesh
)

func (k AssetKind) String() string {
	switch k {
	case AssetTexture:
		return "texture"
	case AssetMaterial:
		return "material"
	case AssetMesh:
		return "mesh"
	default:
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
}

// Handle refers to an asset in a store. The zero Handle is invalid.
type Handle struct {
	Kind AssetKind
	ID   int
}

// Valid reports whether h was issued by a store.
func (h Handle) Valid() bool {
	return h.ID > 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%s#%d", h.Kind, h.ID)
}

// AssetInfo describes one stored asset.
type AssetInfo struct {
	Handle Handle
	Name   string
}

// Assets is an in-memory asset store. Textures are referenced by path and
// never read from disk; meshes are stored by value.
type Assets struct {
	next      int
	textures  map[string]Handle
	materials map[string]Handle
	names     map[Handle]string
	meshes    map[Handle]*terrain.Mesh
}

// NewAssets creates an empty store.
func NewAssets() *Assets {
	return &Assets{
		textures:  make(map[string]Handle),
		materials: make(map[string]Handle),
		names:     make(map[Handle]string),
		meshes:    make(map[Handle]*terrain.Mesh),
	}
}

func (a *Assets) issue(kind AssetKind, name string) Handle {
	a.next++
	h := Handle{Kind: kind, ID: a.next}
	a.names[h] = name
	return h
}

// Import returns the texture handle for path, importing it on first use.
func (a *Assets) Import(path string) Handle {
	if h, ok := a.textures[path]; ok {
		return h
	}
	h := a.issue(AssetTexture, path)
	a.textures[path] = h
	return h
}

// Register returns a material handle for the texture at path. The texture
// is imported if needed; registering the same path twice yields the same
// handle.
func (a *Assets) Register(path string) Handle {
	if h, ok := a.materials[path]; ok {
		return h
	}
	a.Import(path)
	h := a.issue(AssetMaterial, path)
	a.materials[path] = h
	return h
}

// Store adds a mesh under name and returns its handle.
func (a *Assets) Store(mesh *terrain.Mesh, name string) Handle {
	h := a.issue(AssetMesh, name)
	a.meshes[h] = mesh
	return h
}

// Mesh returns the mesh stored under h.
func (a *Assets) Mesh(h Handle) (*terrain.Mesh, bool) {
	m, ok := a.meshes[h]
	return m, ok
}

// Path returns the name or path the asset was created from.
func (a *Assets) Path(h Handle) (string, bool) {
	name, ok := a.names[h]
	return name, ok
}

// Len returns the number of assets in the store.
func (a *Assets) Len() int {
	return len(a.names)
}

// List returns every asset sorted by handle id.
func (a *Assets) List() []AssetInfo {
	result := make([]AssetInfo, 0, len(a.names))
	for h, name := range a.names {
		result = append(result, AssetInfo{Handle: h, Name: name})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Handle.ID < result[j].Handle.ID
	})
	return result
}
