package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"todolists/internal/lists"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	views map[string]*template.Template
}

// Funcs returns the helpers available inside templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"listClass": ListClass,
		"remaining": func(l lists.List) string { return l.Remaining().String() },
		"sortLists": lists.SortLists,
		"sortTodos": lists.SortTodos,
	}
}

// ListClass returns the CSS class for a list: "complete" once every todo is done.
func ListClass(l lists.List) string {
	if l.IsComplete() {
		return "complete"
	}
	return ""
}

// NewRenderer parses the layout together with each view.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{views: make(map[string]*template.Template, len(Views))}
	for _, name := range Views {
		t, err := template.New("layout.tmpl").Funcs(Funcs()).ParseFS(templateFS,
			"templates/layout.tmpl", "templates/"+name+".tmpl")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.views[name] = t
	}
	return r, nil
}

// Render writes the named view wrapped in the layout to w. Output is
// buffered so a template error never leaves a half written page.
func (r *Renderer) Render(w io.Writer, view string, page Page) error {
	t, ok := r.views[view]
	if !ok {
		return fmt.Errorf("unknown view: %s", view)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, page); err != nil {
		return fmt.Errorf("render %s: %w", view, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
