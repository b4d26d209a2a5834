package handlers

import (
	"context"
	"net/http"
	"strings"

	"todolists/internal/output"
	"todolists/internal/session"
)

func init() {
	Register(&EditListRoute{})
	Register(&UpdateListRoute{})
}

// EditListRoute shows the rename form.
type EditListRoute struct{}

func (r *EditListRoute) Name() string     { return "editlist" }
func (r *EditListRoute) Method() string   { return http.MethodGet }
func (r *EditListRoute) Pattern() string  { return "/lists/{id}/edit" }
func (r *EditListRoute) Synopsis() string { return "Show the rename form" }

func (r *EditListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("id"))
	if !ok {
		return listNotFound(sess)
	}
	return render(http.StatusOK, output.ViewEditList, output.EditListPage{List: *l}, OutcomeOK)
}

// UpdateListRoute renames a list.
type UpdateListRoute struct{}

func (r *UpdateListRoute) Name() string     { return "updatelist" }
func (r *UpdateListRoute) Method() string   { return http.MethodPost }
func (r *UpdateListRoute) Pattern() string  { return "/lists/{id}/edit" }
func (r *UpdateListRoute) Synopsis() string { return "Rename a list" }

func (r *UpdateListRoute) Serve(ctx context.Context, sess *session.Session, req *Request) Response {
	l, ok := loadList(sess, req.Param("id"))
	if !ok {
		return listNotFound(sess)
	}
	name := strings.TrimSpace(req.FormValue("list_name"))

	if err := sess.Lists.RenameList(l.ID, name); err != nil {
		return invalid(sess, err, output.ViewEditList, output.EditListPage{List: *l, Name: name})
	}

	sess.SetSuccess("The list has been updated.")
	return redirect(listPath(l.ID), OutcomeOK)
}
