package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"todolists/internal/lists"
	"todolists/internal/session"
)

// ErrIDRequired indicates an empty id path parameter.
var ErrIDRequired = errors.New("id required")

// ParseID parses a list or todo id from a path parameter.
// Only plain non-negative decimal numbers are accepted.
func ParseID(raw string) (int, error) {
	if raw == "" {
		return 0, ErrIDRequired
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid id: %s", raw)
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %s", raw)
	}
	return id, nil
}

const (
	msgListNotFound = "The specified list was not found."
	msgTodoNotFound = "The specified todo was not found."
)

// loadList resolves the list named by a path parameter. A bad or unknown id
// is reported as not found.
func loadList(sess *session.Session, raw string) (*lists.List, bool) {
	id, err := ParseID(raw)
	if err != nil {
		return nil, false
	}
	l, err := sess.Lists.FindList(id)
	if err != nil {
		return nil, false
	}
	return l, true
}

// listNotFound flashes the not-found error and sends the client to the index.
func listNotFound(sess *session.Session) Response {
	sess.SetError(msgListNotFound)
	return redirect("/lists", OutcomeNotFound)
}

// todoNotFound flashes the not-found error and sends the client back to the list.
func todoNotFound(sess *session.Session, listID int) Response {
	sess.SetError(msgTodoNotFound)
	return redirect(listPath(listID), OutcomeNotFound)
}

func listPath(id int) string {
	return "/lists/" + strconv.Itoa(id)
}
