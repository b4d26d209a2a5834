// Package output renders HTML pages for the web layer.
package output

import (
	"todolists/internal/lists"
	"todolists/internal/session"
)

// View names understood by Renderer.
const (
	ViewLists    = "lists"
	ViewNewList  = "new_list"
	ViewList     = "list"
	ViewEditList = "edit_list"
)

// Views lists every view the renderer loads.
var Views = []string{ViewLists, ViewNewList, ViewList, ViewEditList}

// Page wraps view data with the pieces the layout needs.
type Page struct {
	Flash   session.Flash
	Content any
}

// ListsPage is the data for the index of all lists.
type ListsPage struct {
	Lists []lists.List
}

// NewListPage is the data for the list creation form.
// Name echoes the rejected input after a failed submit.
type NewListPage struct {
	Name string
}

// ListPage is the data for a single list and its todos.
// Todo echoes the rejected input after a failed submit.
type ListPage struct {
	List lists.List
	Todo string
}

// EditListPage is the data for the rename form.
type EditListPage struct {
	List lists.List
	Name string
}
