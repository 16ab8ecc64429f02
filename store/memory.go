package store

import (
	"context"
	"sync"
	"time"

	"github.com/xiaot623/farmchat/domain"
)

// MemoryStore keeps session history in process memory. All mutations are
// serialized under one lock, so concurrent requests on the same session
// cannot lose appends. The store is bounded: when the session count exceeds
// maxSessions the least recently used session is evicted, and sessions idle
// past the TTL are dropped on access.
type MemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]*sessionEntry
	maxSessions int
	ttl         time.Duration
	now         func() time.Time
}

type sessionEntry struct {
	turns    []domain.Turn
	lastSeen time.Time
}

// NewMemoryStore creates a bounded in-memory store. maxSessions <= 0 means
// unbounded; ttl <= 0 disables idle expiry.
func NewMemoryStore(maxSessions int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string]*sessionEntry),
		maxSessions: maxSessions,
		ttl:         ttl,
		now:         time.Now,
	}
}

var _ Store = (*MemoryStore)(nil)

// Append adds a turn to the session, creating it on first reference.
func (m *MemoryStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()

	entry, ok := m.sessions[sessionID]
	if !ok {
		m.evictLocked()
		entry = &sessionEntry{}
		m.sessions[sessionID] = entry
	}
	entry.turns = append(entry.turns, turn)
	entry.lastSeen = m.now()
	return nil
}

// History returns a copy of the session's turns oldest-first.
func (m *MemoryStore) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()

	entry, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	entry.lastSeen = m.now()

	turns := make([]domain.Turn, len(entry.turns))
	copy(turns, entry.turns)
	return turns, nil
}

// Close releases all sessions.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*sessionEntry)
	return nil
}

// sweepLocked drops sessions idle past the TTL. Caller holds the lock.
func (m *MemoryStore) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	cutoff := m.now().Add(-m.ttl)
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// evictLocked removes the least recently used session when the store is at
// capacity. Caller holds the lock.
func (m *MemoryStore) evictLocked() {
	if m.maxSessions <= 0 || len(m.sessions) < m.maxSessions {
		return
	}
	var oldestID string
	var oldest time.Time
	for id, entry := range m.sessions {
		if oldestID == "" || entry.lastSeen.Before(oldest) {
			oldestID = id
			oldest = entry.lastSeen
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}
