package scene

import (
	"math"
	"testing"

	"github.com/mohamedtouja/multipoles/internal/models"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBoxExtendAndCenter(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Fatal("Expected fresh box to be empty")
	}

	b = b.Extend(Vec3{-1, 2, 3})
	b = b.Extend(Vec3{5, -4, 1})

	if b.IsEmpty() {
		t.Fatal("Expected extended box to be non-empty")
	}

	c := b.Center()
	if !almostEqual(c.X, 2) || !almostEqual(c.Y, -1) || !almostEqual(c.Z, 2) {
		t.Errorf("Unexpected center: %+v", c)
	}
	if !almostEqual(b.MaxDim(), 6) {
		t.Errorf("Expected max dimension 6, got %f", b.MaxDim())
	}
}

func TestMaterialFor(t *testing.T) {
	tests := []struct {
		kind      models.MaterialKind
		roughness float64
		metalness float64
	}{
		{models.MaterialMatte, 0.8, 0.1},
		{models.MaterialGlossy, 0.1, 0.4},
		{models.MaterialTextured, 0.5, 0.1},
		{models.MaterialKind("unknown"), 0.8, 0.1}, // falls back to matte
	}

	for _, tt := range tests {
		m := MaterialFor(tt.kind, models.ColorNavy)
		if m.Roughness != tt.roughness || m.Metalness != tt.metalness {
			t.Errorf("%s: got roughness=%f metalness=%f", tt.kind, m.Roughness, m.Metalness)
		}
		if m.Color != models.ColorNavy {
			t.Errorf("%s: color not carried through", tt.kind)
		}
	}
}

func TestApplyAppearance_ReplacesEveryMesh(t *testing.T) {
	s := Placeholder(1.5)

	// Give one mesh a baked material that must not survive
	s.Meshes[0].Material = Material{Color: "#123456", Roughness: 0.33, Metalness: 0.9}

	ApplyAppearance(s, models.ColorYellow, models.MaterialGlossy)

	want := MaterialFor(models.MaterialGlossy, models.ColorYellow)
	for i, m := range s.Meshes {
		if m.Material != want {
			t.Errorf("Mesh %d material not replaced: %+v", i, m.Material)
		}
	}
}

func TestNormalize_TargetDimension(t *testing.T) {
	// For every valid height, the transformed max dimension must equal
	// ViewSize * height / ReferenceHeight regardless of source scale.
	sources := []float64{0.01, 1, 42.5, 1000}
	heights := []float64{1.0, 1.3, 1.5, 2.0}

	for _, src := range sources {
		for _, h := range heights {
			s := NewScene(boxMesh("body", Vec3{7, -3, 12}, Vec3{src, src / 2, src / 4}))
			Normalize(s, h)

			got := s.TransformedBounds().MaxDim()
			want := ViewSize * h / models.ReferenceHeight
			if !almostEqual(got, want) {
				t.Errorf("src=%f h=%f: max dim %f, want %f", src, h, got, want)
			}
		}
	}
}

func TestNormalize_CentersAtOrigin(t *testing.T) {
	s := NewScene(boxMesh("body", Vec3{10, 20, -5}, Vec3{2, 4, 6}))
	Normalize(s, 1.5)

	c := s.TransformedBounds().Center()
	if !almostEqual(c.X, 0) || !almostEqual(c.Y, 0) || !almostEqual(c.Z, 0) {
		t.Errorf("Expected centered bounds, got center %+v", c)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	s := NewScene(boxMesh("body", Vec3{1, 2, 3}, Vec3{3, 1, 2}))

	Normalize(s, 1.2)
	first := *s
	Normalize(s, 1.2)

	if s.Translation != first.Translation || !almostEqual(s.Scale, first.Scale) {
		t.Errorf("Normalize not idempotent: %+v vs %+v", s, &first)
	}
}

func TestNormalize_DegenerateScene(t *testing.T) {
	s := NewScene()
	Normalize(s, 1.5)
	if s.Scale != 1 {
		t.Errorf("Expected scale 1 for empty scene, got %f", s.Scale)
	}

	// Single point: zero-size bounds keep scale 1 as well
	s = NewScene(&Mesh{Name: "point", Positions: []Vec3{{3, 3, 3}}})
	Normalize(s, 1.5)
	if s.Scale != 1 {
		t.Errorf("Expected scale 1 for flat bounds, got %f", s.Scale)
	}
	if !almostEqual(s.Translation.X, -3) {
		t.Errorf("Expected point translated to origin, got %+v", s.Translation)
	}
}

func TestPlaceholder_Geometry(t *testing.T) {
	s := Placeholder(1.5)

	if len(s.Meshes) != 4 {
		t.Fatalf("Expected stand + 3 shelves, got %d meshes", len(s.Meshes))
	}

	b := s.Bounds()
	// The stand body is 1 x 1.5 x 1 sitting on y=0
	if !almostEqual(b.Min.Y, 0) || !almostEqual(b.Max.Y, 1.5) {
		t.Errorf("Unexpected vertical extent: %f..%f", b.Min.Y, b.Max.Y)
	}

	// Deterministic: two builds are identical
	other := Placeholder(1.5)
	for i := range s.Meshes {
		if len(s.Meshes[i].Positions) != len(other.Meshes[i].Positions) {
			t.Fatalf("Placeholder not deterministic at mesh %d", i)
		}
		for j := range s.Meshes[i].Positions {
			if s.Meshes[i].Positions[j] != other.Meshes[i].Positions[j] {
				t.Fatalf("Placeholder not deterministic at mesh %d vertex %d", i, j)
			}
		}
	}
}

func TestYawAt(t *testing.T) {
	if !almostEqual(YawAt(0), 0) {
		t.Errorf("Expected zero yaw at t=0, got %f", YawAt(0))
	}
	if !almostEqual(YawAt(10), 1.5) {
		t.Errorf("Expected yaw 1.5 at t=10, got %f", YawAt(10))
	}

	// Proportional to elapsed time, wrapped into one turn
	full := 2 * math.Pi / TurntableRate
	if !almostEqual(YawAt(full+10), YawAt(10)) {
		t.Errorf("Expected wrap after a full turn")
	}
}
