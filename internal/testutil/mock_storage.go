// mock_storage.go - Mock asset store implementation for testing
package testutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mohamedtouja/multipoles/internal/storage"
)

// MockStorage implements storage.Store in memory for testing
type MockStorage struct {
	assets  map[string]*storage.AssetInfo
	data    map[string][]byte
	tempDir string
	mu      sync.RWMutex
}

// NewMockStorage creates a new mock asset store. tempDir backs GetFilePath
// for handlers that serve files directly; pass "" when unused.
func NewMockStorage(tempDir string) *MockStorage {
	return &MockStorage{
		assets:  make(map[string]*storage.AssetInfo),
		data:    make(map[string][]byte),
		tempDir: tempDir,
	}
}

func (m *MockStorage) Save(sourceURL, name string, r io.Reader) (*storage.AssetInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := storage.AssetID(sourceURL)
	info := &storage.AssetInfo{
		ID:        id,
		SourceURL: sourceURL,
		Name:      name,
		Size:      int64(len(data)),
		FetchedAt: time.Now(),
	}
	m.assets[id] = info
	m.data[id] = data

	if m.tempDir != "" {
		if err := os.WriteFile(filepath.Join(m.tempDir, id), data, 0644); err != nil {
			return nil, err
		}
	}
	return info, nil
}

func (m *MockStorage) Get(id string) (*storage.AssetInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.assets[id]
	if !ok {
		return nil, errors.New("asset not found")
	}
	return info, nil
}

func (m *MockStorage) Lookup(sourceURL string) (*storage.AssetInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.assets[storage.AssetID(sourceURL)]
	return info, ok
}

func (m *MockStorage) Open(id string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[id]
	if !ok {
		return nil, errors.New("asset not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MockStorage) List(limit int) ([]*storage.AssetInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]*storage.AssetInfo, 0, len(m.assets))
	for _, info := range m.assets {
		infos = append(infos, info)
		if limit > 0 && len(infos) >= limit {
			break
		}
	}
	return infos, nil
}

func (m *MockStorage) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[id]; !ok {
		return errors.New("asset not found")
	}
	delete(m.assets, id)
	delete(m.data, id)
	return nil
}

func (m *MockStorage) GetFilePath(id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.assets[id]; !ok {
		return "", errors.New("asset not found")
	}
	if m.tempDir == "" {
		return "", errors.New("no file backing in mock")
	}
	return filepath.Join(m.tempDir, id), nil
}
