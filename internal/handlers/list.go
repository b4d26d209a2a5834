package handlers

import (
	"context"
	"net/http"

	"todolists/internal/output"
	"todolists/internal/session"
)

func init() {
	Register(&ShowListRoute{})
}

// ShowListRoute shows one list and its todos.
type ShowListRoute struct{}

func (r *ShowListRoute) Name() string     { return "list" }
func (r *ShowListRoute) Method() string   { return http.MethodGet }
func (r *ShowListRoute) Pattern() string  { return "/lists/{id}" }
func (r *ShowListRoute) Synopsis() string { return "Show one list" }

func (r *ShowListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("id"))
	if !ok {
		return listNotFound(sess)
	}
	return render(http.StatusOK, output.ViewList, output.ListPage{List: *l}, OutcomeOK)
}
