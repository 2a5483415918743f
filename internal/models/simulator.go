package models

// MaterialKind is a surface finish selectable in the configurator.
type MaterialKind string

const (
	MaterialMatte    MaterialKind = "matte"
	MaterialGlossy   MaterialKind = "glossy"
	MaterialTextured MaterialKind = "textured"
)

// MaterialKinds is the full set of allowed finishes.
var MaterialKinds = []MaterialKind{MaterialMatte, MaterialGlossy, MaterialTextured}

// Valid reports whether k is one of the enumerated finishes.
func (k MaterialKind) Valid() bool {
	for _, m := range MaterialKinds {
		if k == m {
			return true
		}
	}
	return false
}

// Configurator color palette (hex). The state only ever holds one of these.
const (
	ColorNavy      = "#0A2472"
	ColorWhite     = "#FFFFFF"
	ColorYellow    = "#FFD700"
	ColorBlack     = "#000000"
	ColorRedOrange = "#FF4500"
)

// Palette is the fixed set of selectable configurator colors.
var Palette = []string{ColorNavy, ColorWhite, ColorYellow, ColorBlack, ColorRedOrange}

// InPalette reports whether hex is one of the fixed palette values.
func InPalette(hex string) bool {
	for _, c := range Palette {
		if c == hex {
			return true
		}
	}
	return false
}

// Height slider bounds and the reference height the normalization scale is
// expressed against.
const (
	MinHeight       = 1.0
	MaxHeight       = 2.0
	ReferenceHeight = 1.5
)

// ConfiguratorState is the client-visible parameter set of one simulator
// session. Height stays within the slider bounds, Material within the
// enumerated kinds and Color within the palette; the simulator manager
// enforces all three on every write.
type ConfiguratorState struct {
	SelectedModel *Model3D     `json:"selectedModel"`
	Color         string       `json:"color"`
	Material      MaterialKind `json:"material"`
	Height        float64      `json:"height"`
}

// DefaultConfiguratorState returns the initial session state: no model
// (placeholder geometry), navy, matte, reference height.
func DefaultConfiguratorState() ConfiguratorState {
	return ConfiguratorState{
		Color:    ColorNavy,
		Material: MaterialMatte,
		Height:   ReferenceHeight,
	}
}

// LoadStatus tracks the asset load behind a model selection.
type LoadStatus string

const (
	LoadIdle    LoadStatus = "idle"
	LoadPending LoadStatus = "pending"
	LoadReady   LoadStatus = "ready"
	LoadFailed  LoadStatus = "failed"
)
