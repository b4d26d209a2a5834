package handlers

import (
	"context"
	"net/http"
	"strings"

	"todolists/internal/output"
	"todolists/internal/session"
)

func init() {
	Register(&NewListRoute{})
	Register(&CreateListRoute{})
}

// NewListRoute shows the list creation form.
type NewListRoute struct{}

func (r *NewListRoute) Name() string     { return "newlist" }
func (r *NewListRoute) Method() string   { return http.MethodGet }
func (r *NewListRoute) Pattern() string  { return "/lists/new" }
func (r *NewListRoute) Synopsis() string { return "Show the new list form" }

func (r *NewListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	return render(http.StatusOK, output.ViewNewList, output.NewListPage{}, OutcomeOK)
}

// CreateListRoute creates a list from the submitted form.
type CreateListRoute struct{}

func (r *CreateListRoute) Name() string     { return "createlist" }
func (r *CreateListRoute) Method() string   { return http.MethodPost }
func (r *CreateListRoute) Pattern() string  { return "/lists/new" }
func (r *CreateListRoute) Synopsis() string { return "Create a list" }

func (r *CreateListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	name := strings.TrimSpace(req.FormValue("list_name"))

	if _, err := sess.Lists.CreateList(name); err != nil {
		return invalid(sess, err, output.ViewNewList, output.NewListPage{Name: name})
	}

	sess.SetSuccess("The list has been created.")
	return redirect("/lists", OutcomeOK)
}

// invalid flashes the validation message and re-renders the originating form.
func invalid(sess *session.Session, err error, view string, data any) Response {
	sess.SetError(err.Error())
	return render(http.StatusUnprocessableEntity, view, data, OutcomeInvalid)
}
