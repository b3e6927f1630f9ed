package handler

import (
	"net/http"

	"github.com/msomdec/userboard/internal/view"
)

// HandleHome renders the landing page for a signed-in user.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "home", view.HomeData{Page: page(r, "Home")})
}
