package handlers

import (
	"context"
	"net/http"
	"strings"

	"todolists/internal/output"
	"todolists/internal/session"
)

func init() {
	Register(&AddTodoRoute{})
}

// AddTodoRoute adds a todo to a list.
type AddTodoRoute struct{}

func (r *AddTodoRoute) Name() string     { return "add" }
func (r *AddTodoRoute) Method() string   { return http.MethodPost }
func (r *AddTodoRoute) Pattern() string  { return "/lists/{list_id}/todos" }
func (r *AddTodoRoute) Synopsis() string { return "Add a todo to a list" }

func (r *AddTodoRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("list_id"))
	if !ok {
		return listNotFound(sess)
	}
	text := strings.TrimSpace(req.FormValue("todo"))

	if _, err := sess.Lists.AddTodo(l.ID, text); err != nil {
		return invalid(sess, err, output.ViewList, output.ListPage{List: *l, Todo: text})
	}

	sess.SetSuccess("The todo was added.")
	return redirect(listPath(l.ID), OutcomeOK)
}
