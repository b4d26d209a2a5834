package handlers

import (
	"context"
	"net/http"

	"todolists/internal/session"
)

func init() {
	Register(&CheckTodoRoute{})
	Register(&CheckAllRoute{})
}

// CheckTodoRoute sets the completion flag of one todo from the
// "completed" form field.
type CheckTodoRoute struct{}

func (r *CheckTodoRoute) Name() string     { return "done" }
func (r *CheckTodoRoute) Method() string   { return http.MethodPost }
func (r *CheckTodoRoute) Pattern() string  { return "/lists/{list_id}/todos/{todo_id}/check" }
func (r *CheckTodoRoute) Synopsis() string { return "Mark a todo completed or open" }

func (r *CheckTodoRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("list_id"))
	if !ok {
		return listNotFound(sess)
	}
	todoID, err := ParseID(req.Param("todo_id"))
	if err != nil {
		return todoNotFound(sess, l.ID)
	}

	completed := req.FormValue("completed") == "true"
	if err := sess.Lists.SetTodoCompleted(l.ID, todoID, completed); err != nil {
		return todoNotFound(sess, l.ID)
	}

	sess.SetSuccess("The todo has been updated.")
	return redirect(listPath(l.ID), OutcomeOK)
}

// CheckAllRoute marks every todo in a list completed.
type CheckAllRoute struct{}

func (r *CheckAllRoute) Name() string     { return "checkall" }
func (r *CheckAllRoute) Method() string   { return http.MethodPost }
func (r *CheckAllRoute) Pattern() string  { return "/lists/{list_id}/check_all" }
func (r *CheckAllRoute) Synopsis() string { return "Mark every todo in a list completed" }

func (r *CheckAllRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("list_id"))
	if !ok {
		return listNotFound(sess)
	}
	if err := sess.Lists.SetAllCompleted(l.ID); err != nil {
		return listNotFound(sess)
	}

	sess.SetSuccess("All todos have been completed.")
	return redirect(listPath(l.ID), OutcomeOK)
}
