package scene

import (
	"github.com/mohamedtouja/multipoles/internal/models"
)

// Material is the surface description applied to a mesh. Color is a hex
// string so it survives the wire unchanged.
type Material struct {
	Color     string  `json:"color" msgpack:"color"`
	Roughness float64 `json:"roughness" msgpack:"roughness"`
	Metalness float64 `json:"metalness" msgpack:"metalness"`
}

// MaterialFor derives the roughness/metalness pair for a finish. Unknown
// kinds fall back to matte.
func MaterialFor(kind models.MaterialKind, color string) Material {
	switch kind {
	case models.MaterialGlossy:
		return Material{Color: color, Roughness: 0.1, Metalness: 0.4}
	case models.MaterialTextured:
		return Material{Color: color, Roughness: 0.5, Metalness: 0.1}
	default:
		return Material{Color: color, Roughness: 0.8, Metalness: 0.1}
	}
}

// Mesh is a triangle mesh with an assigned material.
type Mesh struct {
	Name      string   `json:"name" msgpack:"name"`
	Positions []Vec3   `json:"positions" msgpack:"positions"`
	Normals   []Vec3   `json:"normals,omitempty" msgpack:"normals,omitempty"`
	Indices   []uint32 `json:"indices" msgpack:"indices"`
	Material  Material `json:"material" msgpack:"material"`
}

// Bounds computes the axis-aligned bounding box over the mesh vertices.
func (m *Mesh) Bounds() Box {
	b := EmptyBox()
	for _, p := range m.Positions {
		b = b.Extend(p)
	}
	return b
}

// Scene is the displayed object: a flat mesh list plus the transform the
// normalization and turntable steps maintain.
type Scene struct {
	Meshes      []*Mesh `json:"meshes" msgpack:"meshes"`
	Translation Vec3    `json:"translation" msgpack:"translation"`
	Scale       float64 `json:"scale" msgpack:"scale"`
	Yaw         float64 `json:"yaw" msgpack:"yaw"`
}

// NewScene wraps meshes with an identity transform.
func NewScene(meshes ...*Mesh) *Scene {
	return &Scene{Meshes: meshes, Scale: 1}
}

// Bounds computes the bounding box over all meshes in local coordinates,
// before the scene transform.
func (s *Scene) Bounds() Box {
	b := EmptyBox()
	for _, m := range s.Meshes {
		b = b.Union(m.Bounds())
	}
	return b
}

// TransformedBounds applies the scene translation and uniform scale to the
// local bounds.
func (s *Scene) TransformedBounds() Box {
	b := s.Bounds()
	if b.IsEmpty() {
		return b
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return Box{
		Min: b.Min.Add(s.Translation).Mul(scale),
		Max: b.Max.Add(s.Translation).Mul(scale),
	}
}

// ApplyAppearance replaces every mesh material with one derived from the
// given color and finish. Source assets arrive with arbitrary baked
// materials, so this is a full replacement rather than a tint.
func ApplyAppearance(s *Scene, color string, kind models.MaterialKind) {
	mat := MaterialFor(kind, color)
	for _, m := range s.Meshes {
		m.Material = mat
	}
}
