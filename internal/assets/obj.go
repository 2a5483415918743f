package assets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mohamedtouja/multipoles/internal/scene"
)

// OBJDecoder decodes Wavefront OBJ geometry: v and f statements only, which
// covers the product mockups exported from CAD. Polygonal faces are
// triangulated as a fan.
type OBJDecoder struct{}

func NewOBJDecoder() *OBJDecoder {
	return &OBJDecoder{}
}

func (d *OBJDecoder) Name() string { return "obj" }

func (d *OBJDecoder) Extensions() []string { return []string{".obj"} }

func (d *OBJDecoder) Decode(r io.Reader) (*scene.Scene, error) {
	mesh := &scene.Mesh{Name: "obj"}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o", "g":
			if len(fields) > 1 && mesh.Name == "obj" {
				mesh.Name = fields[1]
			}
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: malformed vertex", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				coords[i] = v
			}
			mesh.Positions = append(mesh.Positions, scene.Vec3{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj line %d: face needs at least 3 vertices", lineNo)
			}
			idx := make([]uint32, 0, len(fields)-1)
			for _, f := range fields[1:] {
				i, err := objIndex(f, len(mesh.Positions))
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				mesh.Indices = append(mesh.Indices, idx[0], idx[i], idx[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj: %w", err)
	}

	if len(mesh.Positions) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("obj asset contains no mesh data")
	}

	mesh.Material = scene.Material{Color: "#CCCCCC", Roughness: 0.8, Metalness: 0.1}
	return scene.NewScene(mesh), nil
}

// objIndex resolves a face vertex reference ("7", "7/2", "7/2/5", "-1") into
// a zero-based position index.
func objIndex(field string, vertexCount int) (uint32, error) {
	if i := strings.IndexByte(field, '/'); i >= 0 {
		field = field[:i]
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = vertexCount + n + 1
	}
	if n < 1 || n > vertexCount {
		return 0, fmt.Errorf("vertex index %d out of range", n)
	}
	return uint32(n - 1), nil
}
