package floorplan

import (
	"context"
	"time"

	"github.com/Domenick1991/deskbuddy/internal/viewport"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MaxMemorySessions bounds the sessions a MemoryStore holds; the least
// recently used session is evicted first.
const MaxMemorySessions = 10000

// MemoryStore keeps viewport sessions in process memory when Redis is
// disabled. Like the Redis store, a session expires ttl after its last save.
type MemoryStore struct {
	sessions *expirable.LRU[string, viewport.State]
}

// NewMemoryStore returns a store whose sessions live for ttl. A ttl of zero
// or less keeps sessions until they are evicted for space.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return newMemoryStore(ttl, MaxMemorySessions)
}

func newMemoryStore(ttl time.Duration, size int) *MemoryStore {
	return &MemoryStore{sessions: expirable.NewLRU[string, viewport.State](size, nil, ttl)}
}

func (m *MemoryStore) LoadViewport(_ context.Context, session string) (viewport.State, bool, error) {
	state, ok := m.sessions.Get(session)
	return state, ok, nil
}

func (m *MemoryStore) SaveViewport(_ context.Context, session string, state viewport.State) error {
	m.sessions.Add(session, state)
	return nil
}

func (m *MemoryStore) Len() int {
	return m.sessions.Len()
}
