// Package lists implements the per-session list store: the list and todo
// data model, its validation rules, and the mutations the web layer applies.
package lists

import "fmt"

// Todo is a single named task inside a list.
type Todo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// List is a named, ordered collection of todos.
type List struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Todos []Todo `json:"todos"`

	// NextTodoID is the id handed to the next todo added to this list.
	// It only grows, so ids are never reused after a delete.
	NextTodoID int `json:"next_todo_id"`
}

// Collection is the ordered set of lists owned by one session.
type Collection struct {
	Lists      []List `json:"lists"`
	NextListID int    `json:"next_list_id"`
}

// Remaining is the incomplete/total pair shown next to a list.
type Remaining struct {
	Incomplete int
	Total      int
}

func (r Remaining) String() string {
	return fmt.Sprintf("%d/%d", r.Incomplete, r.Total)
}

// IsComplete reports whether the list has at least one todo and every todo
// is completed. An empty list is not complete.
func (l List) IsComplete() bool {
	if len(l.Todos) == 0 {
		return false
	}
	for _, t := range l.Todos {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Remaining counts the incomplete todos in the list.
func (l List) Remaining() Remaining {
	r := Remaining{Total: len(l.Todos)}
	for _, t := range l.Todos {
		if !t.Completed {
			r.Incomplete++
		}
	}
	return r
}

// SortForDisplay returns a copy of items with incomplete items first and
// completed items last. Relative order inside each group is preserved.
func SortForDisplay[T any](items []T, done func(T) bool) []T {
	out := make([]T, 0, len(items))
	var completed []T
	for _, item := range items {
		if done(item) {
			completed = append(completed, item)
			continue
		}
		out = append(out, item)
	}
	return append(out, completed...)
}

// SortLists orders lists for display; complete lists go last.
func SortLists(ls []List) []List {
	return SortForDisplay(ls, List.IsComplete)
}

// SortTodos orders todos for display; completed todos go last.
func SortTodos(ts []Todo) []Todo {
	return SortForDisplay(ts, func(t Todo) bool { return t.Completed })
}
