// Package assets fetches and decodes 3D product assets for the simulator.
package assets

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/mohamedtouja/multipoles/internal/scene"
)

// Decoder turns raw asset bytes into a scene.
type Decoder interface {
	// Name returns the unique name of the decoder.
	Name() string
	// Extensions returns the lowercase file extensions the decoder handles.
	Extensions() []string
	// Decode parses the asset bytes into a scene.
	Decode(r io.Reader) (*scene.Scene, error)
}

// Registry holds all available decoders and resolves them by asset URL.
type Registry struct {
	decoders []Decoder
}

// Global registry instance
var globalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		decoders: []Decoder{
			NewGLTFDecoder(),
			NewOBJDecoder(),
		},
	}
}

// GetGlobalRegistry returns the singleton registry.
func GetGlobalRegistry() *Registry {
	return globalRegistry
}

// Register adds a new decoder to the registry.
func (r *Registry) Register(d Decoder) {
	r.decoders = append(r.decoders, d)
}

// FindDecoder resolves the decoder for an asset URL by its extension.
func (r *Registry) FindDecoder(assetURL string) (Decoder, error) {
	ext := strings.ToLower(path.Ext(stripQuery(assetURL)))
	for _, d := range r.decoders {
		for _, e := range d.Extensions() {
			if e == ext {
				return d, nil
			}
		}
	}
	return nil, fmt.Errorf("no decoder for asset: %s", assetURL)
}

func stripQuery(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i]
	}
	return u
}
