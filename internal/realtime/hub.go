package realtime

import (
	"sync"

	"github.com/FlatBushZombies/quickhands/internal/logger"
	"github.com/FlatBushZombies/quickhands/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Handle is one live connection belonging to a user. A user may hold several
// at once (multi-device).
type Handle interface {
	ID() string
	Send(event string, payload any) error
	Close() error
}

// Hub tracks which users currently hold live connections. It owns the
// connection map exclusively; callers only get register/unregister/lookup/push.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]map[string]Handle
}

func NewHub() *Hub {
	return &Hub{connections: make(map[string]map[string]Handle)}
}

// Register adds the handle to the user's connection set. Idempotent, always
// succeeds; the entry is visible to lookups as soon as Register returns.
func (h *Hub) Register(userID string, handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.connections[userID]
	if !ok {
		set = make(map[string]Handle)
		h.connections[userID] = set
	}
	set[handle.ID()] = handle

	log.Infof("connection registered for user %v, handle %v", userID, handle.ID())
}

// Unregister removes the handle; a duplicate disconnect event is a no-op.
// The user's entry disappears entirely once its set empties.
func (h *Hub) Unregister(userID string, handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.connections[userID]
	if !ok {
		return
	}
	if _, ok = set[handle.ID()]; !ok {
		return
	}

	delete(set, handle.ID())
	if len(set) == 0 {
		delete(h.connections, userID)
	}

	log.Infof("connection unregistered for user %v, handle %v", userID, handle.ID())
}

func (h *Hub) Lookup(userID string) []Handle {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.connections[userID]
	handles := make([]Handle, 0, len(set))
	for _, handle := range set {
		handles = append(handles, handle)
	}
	return handles
}

// Push attempts delivery on every handle the user currently holds. A failure
// on one handle neither stops the others nor reaches the caller; zero handles
// means the user is simply not reachable right now, which is not an error.
// No lock is held across Send.
func (h *Hub) Push(userID string, event string, payload any) {

	handles := h.Lookup(userID)
	if len(handles) == 0 {
		log.Debugf("no active connections for user %v, skipping push for event %v", userID, event)
		return
	}

	for _, handle := range handles {
		if err := handle.Send(event, payload); err != nil {
			metrics.PushesFailedCounter.WithLabelValues(event).Inc()
			log.WithField(logger.ErrorTypeField, logger.ErrorTypePush).
				Errorf("failed to push event %v to user %v on handle %v: %v", event, userID, handle.ID(), err)
			continue
		}
		metrics.PushesDeliveredCounter.WithLabelValues(event).Inc()
	}
}
