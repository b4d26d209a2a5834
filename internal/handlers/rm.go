package handlers

import (
	"context"
	"net/http"

	"todolists/internal/session"
)

func init() {
	Register(&DeleteTodoRoute{})
}

// DeleteTodoRoute deletes a todo. Background callers get 204 on success.
type DeleteTodoRoute struct{}

func (r *DeleteTodoRoute) Name() string     { return "rm" }
func (r *DeleteTodoRoute) Method() string   { return http.MethodPost }
func (r *DeleteTodoRoute) Pattern() string  { return "/lists/{list_id}/todos/{todo_id}/destroy" }
func (r *DeleteTodoRoute) Synopsis() string { return "Delete a todo" }

func (r *DeleteTodoRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("list_id"))
	if !ok {
		if req.Async {
			sess.SetError(msgListNotFound)
			return text(http.StatusNotFound, msgListNotFound, OutcomeNotFound)
		}
		return listNotFound(sess)
	}

	todoID, err := ParseID(req.Param("todo_id"))
	if err == nil {
		err = sess.Lists.DeleteTodo(l.ID, todoID)
	}
	if err != nil {
		if req.Async {
			sess.SetError(msgTodoNotFound)
			return text(http.StatusNotFound, msgTodoNotFound, OutcomeNotFound)
		}
		return todoNotFound(sess, l.ID)
	}

	if req.Async {
		return noContent(OutcomeOK)
	}
	sess.SetSuccess("The todo has been deleted.")
	return redirect(listPath(l.ID), OutcomeOK)
}
