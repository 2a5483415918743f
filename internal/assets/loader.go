package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/mohamedtouja/multipoles/internal/scene"
	"github.com/mohamedtouja/multipoles/internal/storage"
)

// ErrNoAssetURL marks a selected model record without a model URL. The caller
// degrades to the placeholder and keeps a visible warning; it is not a
// transport failure.
var ErrNoAssetURL = errors.New("model has no asset URL")

// MaxAssetSize caps a single asset download.
const MaxAssetSize = 64 << 20

// Loader fetches 3D assets over HTTP, caches the raw bytes in the asset
// store, and decodes them through the registry.
type Loader struct {
	client   *http.Client
	store    storage.Store
	registry *Registry
	timeout  time.Duration
}

// NewLoader creates a loader with the given per-load timeout. The upstream
// site had no bound on asset loads; a hung CDN would stall the simulator
// forever, so every load here runs under a deadline.
func NewLoader(store storage.Store, timeout time.Duration) *Loader {
	return &Loader{
		client:   &http.Client{},
		store:    store,
		registry: GetGlobalRegistry(),
		timeout:  timeout,
	}
}

// Load fetches and decodes the asset at url. Cached bytes are reused without
// a network round trip.
func (l *Loader) Load(ctx context.Context, url string) (*scene.Scene, error) {
	if url == "" {
		return nil, ErrNoAssetURL
	}

	decoder, err := l.registry.FindDecoder(url)
	if err != nil {
		return nil, err
	}

	if info, ok := l.store.Lookup(url); ok {
		rc, err := l.store.Open(info.ID)
		if err == nil {
			defer rc.Close()
			return decoder.Decode(rc)
		}
		// Cache entry lost its backing file; fall through to refetch
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building asset request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching asset: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxAssetSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading asset body: %w", err)
	}
	if len(data) > MaxAssetSize {
		return nil, fmt.Errorf("asset exceeds size limit")
	}

	s, err := decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	// Cache only assets that decoded successfully
	if _, err := l.store.Save(url, path.Base(stripQuery(url)), bytes.NewReader(data)); err != nil {
		// A cache write failure is not a load failure
		fmt.Printf("Warning: failed to cache asset %s: %v\n", url, err)
	}

	return s, nil
}
