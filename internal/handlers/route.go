// Package handlers provides the routing table and its route implementations.
package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"todolists/internal/session"
)

// Route defines one entry of the routing table.
type Route interface {
	// Name returns a short stable identifier used in logs and metrics.
	Name() string

	// Method returns the HTTP method the route answers.
	Method() string

	// Pattern returns the path pattern. Path parameters are written as
	// {name} segments.
	Pattern() string

	// Synopsis returns a short description for the routes listing.
	Synopsis() string

	// Serve applies the route to sess.
	// sess is always provided and is saved by the caller afterwards.
	Serve(ctx context.Context, sess *session.Session, req *Request) Response
}

// Request is the framework independent view of an incoming request.
type Request struct {
	// Params holds the path parameters named in the route pattern.
	Params map[string]string

	// Form holds the submitted form values.
	Form url.Values

	// Async is true for background (XMLHttpRequest) calls.
	Async bool
}

// Param returns the named path parameter, or "" if absent.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// FormValue returns the first value for the named form field.
func (r *Request) FormValue(name string) string {
	return r.Form.Get(name)
}

// Outcome labels what a route did, for logs and metrics.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
)

// Response describes what the web layer should send back. Exactly one of
// Location, View or Body is meaningful; an empty response with a status
// sends no body.
type Response struct {
	Status   int
	Location string
	View     string
	Data     any
	Body     string
	Outcome  string
}

// IsRedirect reports whether the response redirects the client.
func (r Response) IsRedirect() bool {
	return r.Location != ""
}

func redirect(location, outcome string) Response {
	return Response{Status: http.StatusSeeOther, Location: location, Outcome: outcome}
}

func render(status int, view string, data any, outcome string) Response {
	return Response{Status: status, View: view, Data: data, Outcome: outcome}
}

func text(status int, body, outcome string) Response {
	return Response{Status: status, Body: body, Outcome: outcome}
}

func noContent(outcome string) Response {
	return Response{Status: http.StatusNoContent, Outcome: outcome}
}

// ParamNames returns the {name} path parameters of pattern, in order.
func ParamNames(pattern string) []string {
	var names []string
	for _, seg := range strings.Split(pattern, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			name := strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
			name = strings.TrimSuffix(name, "...")
			if name != "" && name != "$" {
				names = append(names, name)
			}
		}
	}
	return names
}
