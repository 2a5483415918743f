package simulator

import (
	"sync"
	"time"

	"github.com/mohamedtouja/multipoles/internal/models"
)

// LoadEvent announces a load-state transition of a simulator session. The
// websocket feed forwards these to connected clients so the viewer can show
// spinners and warnings without polling.
type LoadEvent struct {
	SessionID string            `json:"sessionId"`
	ModelID   string            `json:"modelId,omitempty"`
	Status    models.LoadStatus `json:"status"`
	Warning   string            `json:"warning,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// EventHub fans load events out to subscribers. Slow subscribers drop
// events instead of blocking the load pipeline.
type EventHub struct {
	mu   sync.RWMutex
	subs map[chan LoadEvent]struct{}
}

// NewEventHub creates an empty hub.
func NewEventHub() *EventHub {
	return &EventHub{subs: make(map[chan LoadEvent]struct{})}
}

// Subscribe registers a new subscriber channel.
func (h *EventHub) Subscribe() chan LoadEvent {
	ch := make(chan LoadEvent, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *EventHub) Unsubscribe(ch chan LoadEvent) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Publish delivers an event to every subscriber that can take it.
func (h *EventHub) Publish(ev LoadEvent) {
	if ev.Timestamp == 0 {
		ev.Timestamp = time.Now().UnixMilli()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
