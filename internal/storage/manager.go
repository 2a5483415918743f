package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// AssetInfo is the metadata kept for one cached 3D asset.
type AssetInfo struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Store defines the interface for the downloaded-asset cache.
type Store interface {
	Save(sourceURL, name string, r io.Reader) (*AssetInfo, error)
	Get(id string) (*AssetInfo, error)
	Lookup(sourceURL string) (*AssetInfo, bool)
	Open(id string) (io.ReadCloser, error)
	List(limit int) ([]*AssetInfo, error)
	Delete(id string) error
	GetFilePath(id string) (string, error)
}

// LocalStore implements Store on the local filesystem. Assets are keyed by a
// hash of their source URL so a re-selection of the same model never fetches
// twice.
type LocalStore struct {
	mu       sync.RWMutex
	cacheDir string
	assets   map[string]*AssetInfo // id -> info
	byURL    map[string]string     // source URL -> id
}

// NewLocalStore creates a new LocalStore rooted at cacheDir.
func NewLocalStore(cacheDir string) (*LocalStore, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("creating asset cache directory: %w", err)
	}

	return &LocalStore{
		cacheDir: cacheDir,
		assets:   make(map[string]*AssetInfo),
		byURL:    make(map[string]string),
	}, nil
}

// AssetID derives the cache key for a source URL.
func AssetID(sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))
	return hex.EncodeToString(sum[:16])
}

// Save writes the asset bytes to disk and records its metadata.
func (s *LocalStore) Save(sourceURL, name string, r io.Reader) (*AssetInfo, error) {
	id := AssetID(sourceURL)
	path := filepath.Join(s.cacheDir, id)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating asset file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("writing asset file: %w", err)
	}

	info := &AssetInfo{
		ID:        id,
		SourceURL: sourceURL,
		Name:      name,
		Size:      size,
		FetchedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[id] = info
	s.byURL[sourceURL] = id

	return info, nil
}

// Get retrieves asset metadata by ID.
func (s *LocalStore) Get(id string) (*AssetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset not found: %s", id)
	}

	return info, nil
}

// Lookup finds a cached asset by its source URL.
func (s *LocalStore) Lookup(sourceURL string) (*AssetInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byURL[sourceURL]
	if !ok {
		return nil, false
	}
	info, ok := s.assets[id]
	return info, ok
}

// Open returns a reader over the cached asset bytes.
func (s *LocalStore) Open(id string) (io.ReadCloser, error) {
	path, err := s.GetFilePath(id)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// List returns the most recently fetched assets.
func (s *LocalStore) List(limit int) ([]*AssetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*AssetInfo
	for _, info := range s.assets {
		list = append(list, info)
	}

	// Sort by FetchedAt desc
	sort.Slice(list, func(i, j int) bool {
		return list[i].FetchedAt.After(list[j].FetchedAt)
	})

	if len(list) > limit {
		list = list[:limit]
	}

	return list, nil
}

// Delete removes a cached asset.
func (s *LocalStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, ok := s.assets[id]
	if !ok {
		return fmt.Errorf("asset not found: %s", id)
	}

	path := filepath.Join(s.cacheDir, id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting asset file: %w", err)
	}

	delete(s.byURL, info.SourceURL)
	delete(s.assets, id)

	return nil
}

// GetFilePath returns the absolute path to a cached asset.
func (s *LocalStore) GetFilePath(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.assets[id]; !ok {
		return "", fmt.Errorf("asset not found: %s", id)
	}

	return filepath.Join(s.cacheDir, id), nil
}
