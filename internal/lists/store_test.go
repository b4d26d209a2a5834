package lists_test

import (
	"errors"
	"strings"
	"testing"

	"todolists/internal/lists"
)

func TestCreateList_Success(t *testing.T) {
	var c lists.Collection

	l, err := c.CreateList("Groceries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.ID != 0 {
		t.Errorf("expected first list id 0, got %d", l.ID)
	}
	if len(l.Todos) != 0 {
		t.Errorf("expected no todos, got %d", len(l.Todos))
	}
	if len(c.Lists) != 1 || c.Lists[0].Name != "Groceries" {
		t.Errorf("expected collection to hold Groceries, got %+v", c.Lists)
	}
}

func TestCreateList_RejectsBadLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("a", 101)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c lists.Collection
			_, err := c.CreateList(tt.input)
			if !lists.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != "List name must be between 1 and 100 characters." {
				t.Errorf("unexpected message: %q", err.Error())
			}
			if len(c.Lists) != 0 {
				t.Errorf("expected no lists, got %d", len(c.Lists))
			}
		})
	}
}

func TestCreateList_AcceptsBoundaryLengths(t *testing.T) {
	var c lists.Collection
	if _, err := c.CreateList("a"); err != nil {
		t.Errorf("1 char name: unexpected error: %v", err)
	}
	if _, err := c.CreateList(strings.Repeat("b", 100)); err != nil {
		t.Errorf("100 char name: unexpected error: %v", err)
	}
}

func TestCreateList_RejectsCharset(t *testing.T) {
	for _, name := range []string{"semi;colon", "tab\there", "dash-ed", "émoji", "<b>", "a\nb"} {
		var c lists.Collection
		_, err := c.CreateList(name)
		if !lists.IsValidation(err) {
			t.Errorf("%q: expected validation error, got %v", name, err)
			continue
		}
		if !strings.Contains(err.Error(), "common punctuation") {
			t.Errorf("%q: unexpected message %q", name, err.Error())
		}
	}
}

func TestCreateList_AcceptsPunctuation(t *testing.T) {
	var c lists.Collection
	if _, err := c.CreateList("Really? Yes, done. Now!"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateList_Duplicate(t *testing.T) {
	var c lists.Collection
	if _, err := c.CreateList("Work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := c.CreateList("Work")
	if !lists.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "List name must be unique." {
		t.Errorf("unexpected message: %q", err.Error())
	}

	// Uniqueness is case-sensitive.
	if _, err := c.CreateList("work"); err != nil {
		t.Errorf("expected lowercase variant to be accepted, got %v", err)
	}
}

func TestRenameList(t *testing.T) {
	var c lists.Collection
	a, _ := c.CreateList("Home")
	b, _ := c.CreateList("Work")

	if err := c.RenameList(a.ID, "House"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, _ := c.FindList(a.ID)
	if l.Name != "House" {
		t.Errorf("expected House, got %q", l.Name)
	}

	if err := c.RenameList(b.ID, "House"); !lists.IsValidation(err) {
		t.Errorf("expected duplicate rejection, got %v", err)
	}

	// Keeping the current name is not a duplicate.
	if err := c.RenameList(b.ID, "Work"); err != nil {
		t.Errorf("expected rename to own name to succeed, got %v", err)
	}

	if err := c.RenameList(42, "Other"); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteList(t *testing.T) {
	var c lists.Collection
	a, _ := c.CreateList("A")
	b, _ := c.CreateList("B")

	if err := c.DeleteList(a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Lists) != 1 || c.Lists[0].ID != b.ID {
		t.Errorf("expected only B to remain, got %+v", c.Lists)
	}
	if err := c.DeleteList(a.ID); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestListIDsAreNotReused(t *testing.T) {
	var c lists.Collection
	c.CreateList("A")
	b, _ := c.CreateList("B")
	c.DeleteList(b.ID)

	d, err := c.CreateList("D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == b.ID {
		t.Errorf("expected fresh id, got reused id %d", d.ID)
	}
}

func TestAddTodo(t *testing.T) {
	var c lists.Collection
	l, _ := c.CreateList("Groceries")

	todo, err := c.AddTodo(l.ID, "Milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.Completed {
		t.Error("expected new todo to be incomplete")
	}

	if _, err := c.AddTodo(l.ID, ""); !lists.IsValidation(err) {
		t.Errorf("expected validation error for empty todo, got %v", err)
	} else if err.Error() != "Todo must be between 1 and 100 characters." {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if _, err := c.AddTodo(l.ID, strings.Repeat("x", 101)); !lists.IsValidation(err) {
		t.Errorf("expected validation error for long todo, got %v", err)
	}
	if _, err := c.AddTodo(l.ID, "eggs & ham"); !lists.IsValidation(err) {
		t.Errorf("expected validation error for charset, got %v", err)
	}
	if _, err := c.AddTodo(99, "Milk"); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}

	got, _ := c.FindList(l.ID)
	if len(got.Todos) != 1 {
		t.Errorf("expected 1 todo, got %d", len(got.Todos))
	}
}

func TestTodoIDsAreNotReused(t *testing.T) {
	var c lists.Collection
	l, _ := c.CreateList("L")
	c.AddTodo(l.ID, "one")
	two, _ := c.AddTodo(l.ID, "two")
	if err := c.DeleteTodo(l.ID, two.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	three, _ := c.AddTodo(l.ID, "three")
	if three.ID == two.ID {
		t.Errorf("expected fresh todo id, got reused id %d", three.ID)
	}
}

func TestSetTodoCompleted(t *testing.T) {
	var c lists.Collection
	l, _ := c.CreateList("L")
	todo, _ := c.AddTodo(l.ID, "task")

	if err := c.SetTodoCompleted(l.ID, todo.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := c.FindList(l.ID)
	if !got.Todos[0].Completed {
		t.Error("expected todo to be completed")
	}

	if err := c.SetTodoCompleted(l.ID, todo.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Todos[0].Completed {
		t.Error("expected todo to be incomplete again")
	}

	if err := c.SetTodoCompleted(l.ID, 77, true); !errors.Is(err, lists.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if err := c.SetTodoCompleted(77, todo.ID, true); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	var c lists.Collection
	l, _ := c.CreateList("L")
	if err := c.DeleteTodo(l.ID, 0); !errors.Is(err, lists.ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if err := c.DeleteTodo(5, 0); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}

func TestGroceriesScenario(t *testing.T) {
	var c lists.Collection
	l, err := c.CreateList("Groceries")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := c.AddTodo(l.ID, "Milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.SetAllCompleted(l.ID); err != nil {
		t.Fatalf("check all: %v", err)
	}

	got, _ := c.FindList(l.ID)
	if !got.IsComplete() {
		t.Error("expected list to be complete")
	}
	if r := got.Remaining().String(); r != "0/1" {
		t.Errorf("expected remaining 0/1, got %q", r)
	}

	if err := c.SetAllCompleted(123); !errors.Is(err, lists.ErrListNotFound) {
		t.Errorf("expected ErrListNotFound, got %v", err)
	}
}
