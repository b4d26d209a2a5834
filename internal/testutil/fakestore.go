package testutil

import (
	"net/http"
	"sync"

	"todolists/internal/session"
)

// FakeStore is an in-memory session.Store that hands every request the same
// session, for tests that inspect state after a request.
type FakeStore struct {
	mu      sync.Mutex
	session *session.Session
	saves   int

	// Error injection for testing
	LoadErr error
	SaveErr error
}

// NewFakeStore creates a FakeStore serving s, or a fresh session if s is nil.
func NewFakeStore(s *session.Session) *FakeStore {
	if s == nil {
		s = session.New()
	}
	return &FakeStore{session: s}
}

// Load implements session.Store.
func (f *FakeStore) Load(r *http.Request) (*session.Session, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, nil
}

// Save implements session.Store.
func (f *FakeStore) Save(w http.ResponseWriter, r *http.Request, s *session.Session) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
	f.saves++
	return nil
}

// Session returns the most recently saved session.
func (f *FakeStore) Session() *session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

// Saves returns how many times Save succeeded.
func (f *FakeStore) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}
