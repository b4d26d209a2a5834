package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory, keyed by an opaque token
// held in the client's cookie. Each request works on its own decoded copy,
// so concurrent requests for one session resolve as last write wins.
type MemoryStore struct {
	opts    CookieOptions
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	byToken map[string]*memoryEntry
	hits    uint64
}

type memoryEntry struct {
	data     []byte
	lastSeen time.Time
}

// NewMemoryStore creates a store that forgets sessions idle for idleTTL.
func NewMemoryStore(opts CookieOptions, idleTTL time.Duration) *MemoryStore {
	if idleTTL <= 0 {
		idleTTL = 24 * time.Hour
	}
	return &MemoryStore{
		opts:    opts,
		idleTTL: idleTTL,
		now:     time.Now,
		byToken: make(map[string]*memoryEntry),
	}
}

// Load implements Store.
func (m *MemoryStore) Load(r *http.Request) (*Session, error) {
	c, err := r.Cookie(m.opts.Name)
	if err != nil {
		return New(), nil
	}

	m.mu.Lock()
	e, ok := m.byToken[c.Value]
	var data []byte
	if ok && m.now().Sub(e.lastSeen) <= m.idleTTL {
		data = e.data
	}
	m.mu.Unlock()

	if data == nil {
		return New(), nil
	}
	s := New()
	if err := json.Unmarshal(data, s); err != nil {
		return New(), nil
	}
	s.token = c.Value
	return s, nil
}

// Save implements Store.
func (m *MemoryStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if s.token == "" {
		s.token = uuid.NewString()
	}
	now := m.now()

	m.mu.Lock()
	m.byToken[s.token] = &memoryEntry{data: data, lastSeen: now}
	m.hits++
	if m.hits%256 == 0 {
		m.evictLocked(now)
	}
	m.mu.Unlock()

	http.SetCookie(w, m.opts.cookie(s.token))
	return nil
}

// Len returns the number of sessions currently held.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byToken)
}

// Evict drops every session idle for longer than the store's TTL.
func (m *MemoryStore) Evict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked(m.now())
}

func (m *MemoryStore) evictLocked(now time.Time) {
	cutoff := now.Add(-m.idleTTL)
	for k, v := range m.byToken {
		if v.lastSeen.Before(cutoff) {
			delete(m.byToken, k)
		}
	}
}
