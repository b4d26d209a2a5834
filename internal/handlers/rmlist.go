package handlers

import (
	"context"
	"net/http"

	"todolists/internal/session"
)

func init() {
	Register(&DeleteListRoute{})
}

// DeleteListRoute deletes a list. Background callers get the redirect
// target as the response body instead of a redirect.
type DeleteListRoute struct{}

func (r *DeleteListRoute) Name() string     { return "rmlist" }
func (r *DeleteListRoute) Method() string   { return http.MethodPost }
func (r *DeleteListRoute) Pattern() string  { return "/lists/{id}/destroy" }
func (r *DeleteListRoute) Synopsis() string { return "Delete a list" }

func (r *DeleteListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	outcome := OutcomeOK
	id, err := ParseID(req.Param("id"))
	if err == nil {
		err = sess.Lists.DeleteList(id)
	}
	if err != nil {
		sess.SetError(msgListNotFound)
		outcome = OutcomeNotFound
	}

	if req.Async {
		return text(http.StatusOK, "/lists", outcome)
	}
	if outcome == OutcomeOK {
		sess.SetSuccess("The list has been deleted.")
	}
	return redirect("/lists", outcome)
}
