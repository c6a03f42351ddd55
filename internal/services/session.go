package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renotari/powers-explorer/internal/domain"
)

// SessionManager tracks one Selection per session id, creating sessions
// on demand. It is an explicit instance owned by the composition root —
// never process-wide state — so tests and multi-tenant embeddings get
// isolated selections. Safe for concurrent use.
type SessionManager struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*domain.Selection
}

func NewSessionManager(capacity int) (*SessionManager, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("session manager: capacity must be positive, got %d", capacity)
	}
	return &SessionManager{
		capacity: capacity,
		sessions: make(map[string]*domain.Selection),
	}, nil
}

// SelectionUpdate reports the selection state after a select call.
type SelectionUpdate struct {
	Current []string
	Evicted string
	// HasEvicted distinguishes "nothing evicted" from an empty id.
	HasEvicted bool
	// Ready is true once the selection holds a full pair and the caller
	// can proceed to the comparison stage.
	Ready bool
}

// Select appends objectID to the session's selection, creating the
// session if it does not exist yet.
func (m *SessionManager) Select(sessionID, objectID string) (SelectionUpdate, error) {
	if sessionID == "" {
		return SelectionUpdate{}, errors.New("session select: session id is required")
	}
	if objectID == "" {
		return SelectionUpdate{}, errors.New("session select: object id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sel, err := m.session(sessionID)
	if err != nil {
		return SelectionUpdate{}, err
	}

	evicted, hasEvicted := sel.Select(objectID)
	return SelectionUpdate{
		Current:    sel.Current(),
		Evicted:    evicted,
		HasEvicted: hasEvicted,
		Ready:      sel.IsFull(),
	}, nil
}

// Clear resets the session's selection. Clearing an unknown session is
// a no-op, matching Selection.Clear's idempotency.
func (m *SessionManager) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sel, ok := m.sessions[sessionID]; ok {
		sel.Clear()
	}
}

// Current returns the session's selected ids oldest-first. An unknown
// session reads as empty.
func (m *SessionManager) Current(sessionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sel, ok := m.sessions[sessionID]; ok {
		return sel.Current()
	}
	return []string{}
}

// IsFull reports whether the session's selection holds a full pair.
func (m *SessionManager) IsFull(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sel, ok := m.sessions[sessionID]; ok {
		return sel.IsFull()
	}
	return false
}

// session returns the selection for sessionID, creating it lazily.
// Caller must hold mu.
func (m *SessionManager) session(sessionID string) (*domain.Selection, error) {
	if sel, ok := m.sessions[sessionID]; ok {
		return sel, nil
	}

	sel, err := domain.NewSelection(m.capacity)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, err)
	}
	m.sessions[sessionID] = sel
	return sel, nil
}
