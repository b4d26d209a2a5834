package handlers

import (
	"context"
	"net/http"

	"todolists/internal/output"
	"todolists/internal/session"
)

func init() {
	Register(&RootRoute{})
	Register(&ListsRoute{})
}

// RootRoute sends visitors of / to the list index.
type RootRoute struct{}

func (r *RootRoute) Name() string     { return "root" }
func (r *RootRoute) Method() string   { return http.MethodGet }
func (r *RootRoute) Pattern() string  { return "/{$}" }
func (r *RootRoute) Synopsis() string { return "Redirect to the list index" }

func (r *RootRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	return redirect("/lists", OutcomeOK)
}

// ListsRoute shows every list in the session.
type ListsRoute struct{}

func (r *ListsRoute) Name() string     { return "lists" }
func (r *ListsRoute) Method() string   { return http.MethodGet }
func (r *ListsRoute) Pattern() string  { return "/lists" }
func (r *ListsRoute) Synopsis() string { return "Show all lists" }

func (r *ListsRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	return render(http.StatusOK, output.ViewLists, output.ListsPage{Lists: sess.Lists.Lists}, OutcomeOK)
}
