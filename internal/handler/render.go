package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/msomdec/userboard/internal/view"
)

func page(r *http.Request, title string) view.Page {
	return view.Page{Title: title, Identity: IdentityFromContext(r.Context())}
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusNotFound, "notfound", page(r, "Not found"))
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("handler error", "path", r.URL.Path, "error", err)
	view.Render(w, http.StatusInternalServerError, "error", view.ErrorData{
		Page:    page(r, "Error"),
		Message: "The data service is unavailable. Try again shortly.",
	})
}

// inputMessage extracts the human-readable tail of a validation error
// for display next to the form that caused it.
func inputMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
