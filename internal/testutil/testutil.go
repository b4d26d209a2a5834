// Package testutil provides testing utilities.
package testutil

import (
	"net/url"
	"testing"

	"todolists/internal/session"
)

// ListSeed describes a list to pre-populate a session with.
// Todos named in Completed are marked done after being added.
type ListSeed struct {
	Name      string
	Todos     []string
	Completed []string
}

// NewSession returns a session holding the seeded lists, in order.
// List and todo ids follow creation order starting at 0.
func NewSession(t *testing.T, seeds ...ListSeed) *session.Session {
	t.Helper()
	s := session.New()
	for _, seed := range seeds {
		l, err := s.Lists.CreateList(seed.Name)
		if err != nil {
			t.Fatalf("seed list %q: %v", seed.Name, err)
		}
		ids := make(map[string]int, len(seed.Todos))
		for _, name := range seed.Todos {
			todo, err := s.Lists.AddTodo(l.ID, name)
			if err != nil {
				t.Fatalf("seed todo %q: %v", name, err)
			}
			ids[name] = todo.ID
		}
		for _, name := range seed.Completed {
			id, ok := ids[name]
			if !ok {
				t.Fatalf("seed: completed todo %q not in list %q", name, seed.Name)
			}
			if err := s.Lists.SetTodoCompleted(l.ID, id, true); err != nil {
				t.Fatalf("seed complete %q: %v", name, err)
			}
		}
	}
	return s
}

// Form builds form values from alternating key, value arguments.
func Form(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Add(pairs[i], pairs[i+1])
	}
	return v
}
