package assets

import (
	"fmt"
	"io"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mohamedtouja/multipoles/internal/scene"
)

// GLTFDecoder decodes binary glTF (.glb) and self-contained .gltf assets.
// External buffer references are not resolved; production assets are packed
// GLB files.
type GLTFDecoder struct{}

func NewGLTFDecoder() *GLTFDecoder {
	return &GLTFDecoder{}
}

func (d *GLTFDecoder) Name() string { return "gltf" }

func (d *GLTFDecoder) Extensions() []string { return []string{".glb", ".gltf"} }

// Decode flattens the default glTF scene into a mesh list, applying node
// transforms so the bounding box reflects the asset as authored.
func (d *GLTFDecoder) Decode(r io.Reader) (*scene.Scene, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding gltf: %w", err)
	}

	var roots []uint32
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		roots = doc.Scenes[*doc.Scene].Nodes
	} else if len(doc.Scenes) > 0 {
		roots = doc.Scenes[0].Nodes
	} else {
		// No scene: treat every node as a root
		for i := range doc.Nodes {
			roots = append(roots, uint32(i))
		}
	}

	out := scene.NewScene()
	for _, n := range roots {
		if err := flattenNode(doc, n, identity(), out); err != nil {
			return nil, err
		}
	}

	if len(out.Meshes) == 0 {
		return nil, fmt.Errorf("gltf asset contains no mesh data")
	}

	return out, nil
}

func flattenNode(doc *gltf.Document, idx uint32, parent mat4, out *scene.Scene) error {
	if int(idx) >= len(doc.Nodes) {
		return fmt.Errorf("gltf node index out of range: %d", idx)
	}
	node := doc.Nodes[idx]

	world := parent.mul(nodeMatrix(node))

	if node.Mesh != nil {
		if int(*node.Mesh) >= len(doc.Meshes) {
			return fmt.Errorf("gltf mesh index out of range: %d", *node.Mesh)
		}
		if err := appendMesh(doc, doc.Meshes[*node.Mesh], world, out); err != nil {
			return err
		}
	}

	for _, child := range node.Children {
		if err := flattenNode(doc, child, world, out); err != nil {
			return err
		}
	}
	return nil
}

func appendMesh(doc *gltf.Document, m *gltf.Mesh, world mat4, out *scene.Scene) error {
	for _, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if int(posIdx) >= len(doc.Accessors) {
			return fmt.Errorf("gltf position accessor out of range: %d", posIdx)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("reading positions: %w", err)
		}

		mesh := &scene.Mesh{Name: m.Name}
		mesh.Positions = make([]scene.Vec3, len(positions))
		for i, p := range positions {
			mesh.Positions[i] = world.apply(scene.Vec3{
				X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2]),
			})
		}

		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok && int(normIdx) < len(doc.Accessors) {
			normals, err := modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			if err == nil {
				mesh.Normals = make([]scene.Vec3, len(normals))
				for i, n := range normals {
					mesh.Normals[i] = scene.Vec3{X: float64(n[0]), Y: float64(n[1]), Z: float64(n[2])}
				}
			}
		}

		if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("reading indices: %w", err)
			}
			mesh.Indices = indices
		} else {
			// Non-indexed: sequential triangles
			mesh.Indices = make([]uint32, len(mesh.Positions))
			for i := range mesh.Indices {
				mesh.Indices[i] = uint32(i)
			}
		}

		mesh.Material = primitiveMaterial(doc, prim)
		out.Meshes = append(out.Meshes, mesh)
	}
	return nil
}

// primitiveMaterial captures the baked base color so an unconfigured asset
// still renders with its authored look. ApplyAppearance replaces it anyway
// once the user picks a finish.
func primitiveMaterial(doc *gltf.Document, prim *gltf.Primitive) scene.Material {
	mat := scene.Material{Color: "#CCCCCC", Roughness: 0.8, Metalness: 0.1}
	if prim.Material == nil || int(*prim.Material) >= len(doc.Materials) {
		return mat
	}
	pbr := doc.Materials[*prim.Material].PBRMetallicRoughness
	if pbr == nil {
		return mat
	}
	if pbr.BaseColorFactor != nil {
		c := *pbr.BaseColorFactor
		mat.Color = fmt.Sprintf("#%02X%02X%02X",
			channelByte(float64(c[0])), channelByte(float64(c[1])), channelByte(float64(c[2])))
	}
	if pbr.RoughnessFactor != nil {
		mat.Roughness = float64(*pbr.RoughnessFactor)
	}
	if pbr.MetallicFactor != nil {
		mat.Metalness = float64(*pbr.MetallicFactor)
	}
	return mat
}

func channelByte(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(math.Round(v * 255))
}

// mat4 is a column-major 4x4 transform, enough to flatten node hierarchies.
type mat4 [16]float64

func identity() mat4 {
	return mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (a mat4) mul(b mat4) mat4 {
	var out mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func (m mat4) apply(v scene.Vec3) scene.Vec3 {
	return scene.Vec3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// nodeMatrix builds the node's local transform. Zero-valued TRS fields from
// hand-built documents are treated as unset.
func nodeMatrix(n *gltf.Node) mat4 {
	if n.Matrix != [16]float64{} && n.Matrix != identityArray() {
		var m mat4
		copy(m[:], n.Matrix[:])
		return m
	}

	t := n.Translation
	s := n.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	q := n.Rotation
	if q == [4]float64{} {
		q = [4]float64{0, 0, 0, 1}
	}

	x, y, z, w := q[0], q[1], q[2], q[3]
	// Rotation matrix from the unit quaternion, columns scaled by s.
	r := mat4{
		(1 - 2*(y*y+z*z)) * s[0], (2 * (x*y + z*w)) * s[0], (2 * (x*z - y*w)) * s[0], 0,
		(2 * (x*y - z*w)) * s[1], (1 - 2*(x*x+z*z)) * s[1], (2 * (y*z + x*w)) * s[1], 0,
		(2 * (x*z + y*w)) * s[2], (2 * (y*z - x*w)) * s[2], (1 - 2*(x*x+y*y)) * s[2], 0,
		t[0], t[1], t[2], 1,
	}
	return r
}

func identityArray() [16]float64 {
	return [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
