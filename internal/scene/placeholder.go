package scene

// Placeholder builds the procedural display stand shown whenever no real
// asset is available: a 1 x height x 1 body centered at half height, with
// three shelf planes at 25/50/75 % of the height, pushed toward the viewer.
// The same height drives it as drives a loaded asset, so the control panel
// is never inert.
func Placeholder(height float64) *Scene {
	meshes := []*Mesh{
		boxMesh("stand", Vec3{0, height / 2, 0}, Vec3{1, height, 1}),
	}

	for _, h := range []float64{0.25, 0.5, 0.75} {
		meshes = append(meshes, boxMesh("shelf", Vec3{0, height * h, 0.3}, Vec3{0.8, 0.05, 0.5}))
	}

	return NewScene(meshes...)
}

// boxMesh builds an axis-aligned box of the given size centered at center.
func boxMesh(name string, center, size Vec3) *Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2

	corners := []Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}

	positions := make([]Vec3, len(corners))
	for i, c := range corners {
		positions[i] = c.Add(center)
	}

	// Two triangles per face, counter-clockwise seen from outside.
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 4, 7, 0, 7, 3, // left
		1, 6, 5, 1, 2, 6, // right
		3, 7, 6, 3, 6, 2, // top
		0, 1, 5, 0, 5, 4, // bottom
	}

	return &Mesh{
		Name:      name,
		Positions: positions,
		Indices:   indices,
	}
}
