// Package simulator owns the 3D configurator sessions: parameter state,
// asynchronous asset loading with stale-result discard, and the composed
// scene snapshots served to clients.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedtouja/multipoles/internal/models"
	"github.com/mohamedtouja/multipoles/internal/scene"
)

// MaxSessions limits concurrent simulator sessions to prevent memory exhaustion.
const MaxSessions = 200

// SessionMaxAge is how long an idle session survives before cleanup.
const SessionMaxAge = 30 * time.Minute

// AssetLoader is the slice of the asset pipeline the manager needs.
type AssetLoader interface {
	Load(ctx context.Context, url string) (*scene.Scene, error)
}

// Session is one configurator session. All mutation goes through the Manager.
type Session struct {
	ID           string                   `json:"id"`
	State        models.ConfiguratorState `json:"state"`
	Status       models.LoadStatus        `json:"status"`
	Warning      string                   `json:"warning,omitempty"`
	StartedAt    time.Time                `json:"startedAt"`
	LastAccessed time.Time                `json:"-"`

	loaded     *scene.Scene
	generation uint64
}

// ParamsUpdate is a partial write to the configurator state. Nil fields are
// left untouched.
type ParamsUpdate struct {
	Color    *string  `json:"color,omitempty"`
	Material *string  `json:"material,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// Manager handles active simulator sessions.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	loader   AssetLoader
	events   *EventHub
	now      func() time.Time
}

// NewManager creates a simulator session manager backed by the given loader.
func NewManager(loader AssetLoader) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		loader:   loader,
		events:   NewEventHub(),
		now:      time.Now,
	}
}

// Events exposes the load-event hub for the websocket feed.
func (m *Manager) Events() *EventHub {
	return m.events
}

// CreateSession starts a session with the default configurator state: no
// model selected, navy, matte, reference height.
func (m *Manager) CreateSession() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= MaxSessions {
		m.evictOldestLocked()
	}

	now := m.now()
	s := &Session{
		ID:           uuid.New().String(),
		State:        models.DefaultConfiguratorState(),
		Status:       models.LoadIdle,
		StartedAt:    now,
		LastAccessed: now,
	}
	m.sessions[s.ID] = s

	return snapshotOf(s)
}

// GetSession returns a snapshot of a session.
func (m *Manager) GetSession(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.LastAccessed = m.now()
	return snapshotOf(s), true
}

// KeepAlive refreshes the last-accessed timestamp so cleanup spares the
// session.
func (m *Manager) KeepAlive(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	s.LastAccessed = m.now()
	return true
}

// SetParams applies a partial state update. Height is clamped to the slider
// bounds; an unknown color or material rejects the whole update.
func (m *Manager) SetParams(id string, update ParamsUpdate) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("simulator session not found: %s", id)
	}
	s.LastAccessed = m.now()

	if update.Color != nil && !models.InPalette(*update.Color) {
		return nil, fmt.Errorf("color %q is not in the palette", *update.Color)
	}
	if update.Material != nil && !models.MaterialKind(*update.Material).Valid() {
		return nil, fmt.Errorf("unknown material %q", *update.Material)
	}

	if update.Color != nil {
		s.State.Color = *update.Color
	}
	if update.Material != nil {
		s.State.Material = models.MaterialKind(*update.Material)
	}
	if update.Height != nil {
		s.State.Height = clampHeight(*update.Height)
	}

	return snapshotOf(s), nil
}

// SelectModel switches the session to a new product model. Passing nil
// clears the selection back to the placeholder. A model without an asset URL
// keeps the placeholder and a visible warning. Otherwise the asset loads in
// the background; only the result of the most recent selection is kept.
func (m *Manager) SelectModel(id string, model *models.Model3D) (*Session, error) {
	m.mu.Lock()

	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("simulator session not found: %s", id)
	}
	s.LastAccessed = m.now()

	// Any earlier load still in flight belongs to a previous selection now.
	s.generation++
	gen := s.generation

	s.State.SelectedModel = model
	s.loaded = nil

	if model == nil {
		s.Status = models.LoadIdle
		s.Warning = ""
		snap := snapshotOf(s)
		m.mu.Unlock()
		m.events.Publish(LoadEvent{SessionID: id, Status: snap.Status})
		return snap, nil
	}

	if model.ModelURL == "" {
		// The warning stays until the next selection; the user keeps
		// interacting with the placeholder.
		s.Status = models.LoadFailed
		s.Warning = fmt.Sprintf("Le modèle %q n'a pas de fichier 3D associé", model.Name)
		snap := snapshotOf(s)
		m.mu.Unlock()
		m.events.Publish(LoadEvent{SessionID: id, ModelID: model.ID, Status: snap.Status, Warning: snap.Warning})
		return snap, nil
	}

	s.Status = models.LoadPending
	s.Warning = ""
	snap := snapshotOf(s)
	m.mu.Unlock()

	m.events.Publish(LoadEvent{SessionID: id, ModelID: model.ID, Status: models.LoadPending})
	go m.runLoad(id, gen, model)

	return snap, nil
}

func (m *Manager) runLoad(sessionID string, gen uint64, model *models.Model3D) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Load %s] PANIC recovered: %v\n", shortID(sessionID), r)
			m.finishLoad(sessionID, gen, model, nil, fmt.Errorf("load panicked: %v", r))
		}
	}()

	start := time.Now()
	fmt.Printf("[Load %s] Fetching model %s (%s)\n", shortID(sessionID), model.ID, model.ModelURL)

	loaded, err := m.loader.Load(context.Background(), model.ModelURL)
	if err != nil {
		fmt.Printf("[Load %s] ERROR: %v\n", shortID(sessionID), err)
	} else {
		fmt.Printf("[Load %s] Decoded %d meshes in %v\n", shortID(sessionID), len(loaded.Meshes), time.Since(start))
	}

	m.finishLoad(sessionID, gen, model, loaded, err)
}

// finishLoad records a load result unless a newer selection superseded it.
func (m *Manager) finishLoad(sessionID string, gen uint64, model *models.Model3D, loaded *scene.Scene, err error) {
	m.mu.Lock()

	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return
	}
	if s.generation != gen {
		// Stale result from a selection the user has already left.
		m.mu.Unlock()
		fmt.Printf("[Load %s] Discarding stale result for model %s\n", shortID(sessionID), model.ID)
		return
	}

	if err != nil {
		s.loaded = nil
		s.Status = models.LoadFailed
		s.Warning = fmt.Sprintf("Impossible de charger le modèle %q", model.Name)
	} else {
		s.loaded = loaded
		s.Status = models.LoadReady
		s.Warning = ""
	}
	event := LoadEvent{SessionID: sessionID, ModelID: model.ID, Status: s.Status, Warning: s.Warning}
	m.mu.Unlock()

	m.events.Publish(event)
}

// SceneSnapshot composes the renderable scene for a session: the loaded
// geometry when ready, the placeholder otherwise, with the session's
// appearance, normalization and turntable rotation applied.
func (m *Manager) SceneSnapshot(id string) (*scene.Scene, error) {
	m.mu.Lock()

	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("simulator session not found: %s", id)
	}
	s.LastAccessed = m.now()

	state := s.State
	base := s.loaded
	elapsed := m.now().Sub(s.StartedAt).Seconds()
	m.mu.Unlock()

	var out *scene.Scene
	if base != nil {
		// Reuse the immutable geometry; give each mesh its own material so
		// concurrent snapshots never write into the cached scene.
		meshes := make([]*scene.Mesh, len(base.Meshes))
		for i, mesh := range base.Meshes {
			dup := *mesh
			meshes[i] = &dup
		}
		out = scene.NewScene(meshes...)
	} else {
		out = scene.Placeholder(state.Height)
	}

	scene.ApplyAppearance(out, state.Color, state.Material)
	scene.Normalize(out, state.Height)
	scene.Rotate(out, elapsed)

	return out, nil
}

// CleanupOldSessions drops sessions idle for longer than maxAge and returns
// how many were removed.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// DeleteSession removes a session explicitly.
func (m *Manager) DeleteSession(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// SessionCount reports the number of live sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// evictOldestLocked removes the least recently used session. Caller holds mu.
func (m *Manager) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, s := range m.sessions {
		if oldestID == "" || s.LastAccessed.Before(oldest) {
			oldestID = id
			oldest = s.LastAccessed
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}

func clampHeight(h float64) float64 {
	if h < models.MinHeight {
		return models.MinHeight
	}
	if h > models.MaxHeight {
		return models.MaxHeight
	}
	return h
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// snapshotOf copies the session so callers never share the live struct.
func snapshotOf(s *Session) *Session {
	dup := *s
	dup.loaded = nil
	return &dup
}
