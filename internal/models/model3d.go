package models

// Model3DSettings are optional defaults attached to a model record.
type Model3DSettings struct {
	Colors     []string    `json:"colors,omitempty"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Materials  []string    `json:"materials,omitempty"`
}

// Model3D is a configurable product model published by the content API.
// Records are read-only here; an empty ModelURL is a valid state and the
// simulator degrades to its placeholder geometry when it is selected.
type Model3D struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	Category        string           `json:"category"`
	ModelURL        string           `json:"modelUrl"`
	ThumbnailURL    string           `json:"thumbnailUrl,omitempty"`
	DefaultSettings *Model3DSettings `json:"defaultSettings,omitempty"`
	IsActive        bool             `json:"isActive"`
	Order           int              `json:"order"`
	Locale          string           `json:"locale"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

// Model3DParams are the supported model listing filters.
type Model3DParams struct {
	Category string
	Locale   string
}
