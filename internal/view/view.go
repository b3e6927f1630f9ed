// Package view renders the server-side HTML pages from templates
// embedded at build time. Pages are parsed once at startup and
// rendered through a buffer so a template error never leaks a half
// written page to the client.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{
	"login", "register", "register_details",
	"home", "info",
	"todos", "posts", "post", "albums", "album",
	"notfound", "error",
}

var pages = func() map[string]*template.Template {
	m := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		m[name] = template.Must(template.ParseFS(files,
			"templates/layout.html",
			"templates/nav.html",
			"templates/photo_list.html",
			"templates/load_more.html",
			"templates/"+name+".html",
		))
	}
	return m
}()

var fragments = template.Must(template.ParseFS(files,
	"templates/photo_list.html",
	"templates/load_more.html",
))

// Render writes the named page with the given status code.
func Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Fragment renders one of the standalone fragments to a string for
// patching into an already-delivered page.
func Fragment(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render fragment %s: %w", name, err)
	}
	return buf.String(), nil
}
