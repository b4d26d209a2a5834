// Package session holds the per-user state container and the stores that
// carry it between requests.
package session

import (
	"net/http"
	"time"

	"todolists/internal/lists"
)

// Flash holds one-shot messages shown on the next rendered page.
type Flash struct {
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// Session is everything the server remembers about one client.
type Session struct {
	Lists lists.Collection `json:"lists"`
	Flash Flash            `json:"flash"`

	// token identifies the session in server-side stores; empty for new sessions.
	token string
}

// New returns an empty session.
func New() *Session {
	return &Session{Lists: lists.Collection{Lists: []lists.List{}}}
}

// SetError records an error message for the next page.
func (s *Session) SetError(msg string) {
	s.Flash.Error = msg
}

// SetSuccess records a success message for the next page.
func (s *Session) SetSuccess(msg string) {
	s.Flash.Success = msg
}

// TakeFlash returns the pending messages and clears them.
func (s *Session) TakeFlash() Flash {
	f := s.Flash
	s.Flash = Flash{}
	return f
}

// Store loads and saves sessions for HTTP requests.
type Store interface {
	// Load returns the session for r. A missing, expired or unreadable
	// session yields a fresh one; errors report failures of the store itself.
	Load(r *http.Request) (*Session, error)

	// Save persists s and sets whatever cookie the client needs to present
	// it again.
	Save(w http.ResponseWriter, r *http.Request, s *Session) error
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func (o CookieOptions) cookie(value string) *http.Cookie {
	c := &http.Cookie{
		Name:     o.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if o.MaxAge > 0 {
		c.MaxAge = int(o.MaxAge / time.Second)
	}
	return c
}
