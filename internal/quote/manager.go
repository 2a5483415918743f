package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedtouja/multipoles/internal/forms"
	"github.com/mohamedtouja/multipoles/internal/models"
)

// MaxSessions limits concurrent wizard sessions to prevent memory exhaustion.
const MaxSessions = 500

// FirstStep and LastStep bound the sequential wizard.
const (
	FirstStep = 1
	LastStep  = 4
)

// Status is the lifecycle state of a wizard session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
)

// Submitter is the slice of the forms client the wizard needs.
type Submitter interface {
	SubmitDevis(ctx context.Context, req models.DevisRequest) (*forms.Result, error)
}

// Session is one user's pass through the wizard. All mutation goes through
// the Manager.
type Session struct {
	ID           string               `json:"id"`
	Step         int                  `json:"step"`
	Status       Status               `json:"status"`
	Form         models.QuoteFormData `json:"form"`
	LastAccessed time.Time            `json:"-"`

	submitting bool
}

// AdvanceResult reports the outcome of an Advance call.
type AdvanceResult struct {
	Step      int         `json:"step"`
	Status    Status      `json:"status"`
	Errors    FieldErrors `json:"errors,omitempty"`
	Message   string      `json:"message,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}

// Manager owns the wizard sessions.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	rules     *Rules
	submitter Submitter
}

// NewManager creates a wizard manager with the given rules and submitter.
func NewManager(rules *Rules, submitter Submitter) *Manager {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		rules:     rules,
		submitter: submitter,
	}
}

// Rules returns the active validation rules.
func (m *Manager) Rules() *Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rules
}

// SetRules swaps the validation rules wholesale.
func (m *Manager) SetRules(rules *Rules) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = rules
}

// Create starts a new wizard session on step 1 with default form data.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= MaxSessions {
		m.evictOldestLocked()
	}

	s := &Session{
		ID:           uuid.New().String(),
		Step:         FirstStep,
		Status:       StatusInProgress,
		Form:         models.DefaultQuoteFormData(),
		LastAccessed: time.Now(),
	}
	m.sessions[s.ID] = s

	return snapshotOf(s), nil
}

// Get returns a snapshot of a session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.LastAccessed = time.Now()
	return snapshotOf(s), true
}

// Advance stores the submitted form snapshot, validates the current step and
// either moves forward, reports field errors, or (from the last step)
// submits. Step transitions are strictly sequential; nothing is skippable.
func (m *Manager) Advance(ctx context.Context, id string, form models.QuoteFormData) (*AdvanceResult, error) {
	m.mu.Lock()

	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("quote session not found: %s", id)
	}
	s.LastAccessed = time.Now()

	if s.Status == StatusSubmitted {
		res := &AdvanceResult{Step: s.Step, Status: s.Status, Message: "Demande déjà envoyée"}
		m.mu.Unlock()
		return res, nil
	}

	// One transition at a time: a pending submission swallows further
	// advances instead of firing a duplicate request.
	if s.submitting {
		res := &AdvanceResult{Step: s.Step, Status: StatusSubmitting, Message: "Envoi en cours"}
		m.mu.Unlock()
		return res, nil
	}

	s.Form = form
	rules := m.rules
	step := s.Step

	if errs := ValidateStep(step, s.Form, rules); len(errs) > 0 {
		res := &AdvanceResult{Step: step, Status: s.Status, Errors: errs}
		m.mu.Unlock()
		return res, nil
	}

	if step < LastStep {
		s.Step = step + 1
		res := &AdvanceResult{Step: s.Step, Status: s.Status}
		m.mu.Unlock()
		return res, nil
	}

	// Final step validated: submit while holding the in-flight guard.
	s.submitting = true
	s.Status = StatusSubmitting
	payload := ToDevisRequest(s.Form)
	m.mu.Unlock()

	result, err := m.submitter.SubmitDevis(ctx, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	s.submitting = false

	if err != nil {
		// Transport failure: generic retryable message, data intact.
		s.Status = StatusInProgress
		return &AdvanceResult{
			Step:      s.Step,
			Status:    s.Status,
			Message:   "Erreur de connexion au serveur. Veuillez réessayer.",
			Retryable: true,
		}, nil
	}

	if !result.Success {
		// Backend validation is authoritative; surface its errors verbatim.
		s.Status = StatusInProgress
		return &AdvanceResult{
			Step:    s.Step,
			Status:  s.Status,
			Errors:  FieldErrors(result.Errors),
			Message: result.Message,
		}, nil
	}

	s.Status = StatusSubmitted
	s.Form = models.DefaultQuoteFormData()
	return &AdvanceResult{Step: s.Step, Status: s.Status, Message: result.Message}, nil
}

// Back moves one step backward without validating. It is a no-op on the
// first step.
func (m *Manager) Back(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("quote session not found: %s", id)
	}
	s.LastAccessed = time.Now()

	if s.Step > FirstStep && s.Status != StatusSubmitted && !s.submitting {
		s.Step--
	}

	return snapshotOf(s), nil
}

// CleanupOldSessions drops sessions idle for longer than maxAge.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range m.sessions {
		if s.LastAccessed.Before(cutoff) && !s.submitting {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// evictOldestLocked removes the least recently used session. Caller holds mu.
func (m *Manager) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, s := range m.sessions {
		if s.submitting {
			continue
		}
		if oldestID == "" || s.LastAccessed.Before(oldest) {
			oldestID = id
			oldest = s.LastAccessed
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}

// snapshotOf copies the session so callers never share the live struct.
func snapshotOf(s *Session) *Session {
	dup := *s
	return &dup
}
