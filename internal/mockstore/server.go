// Package mockstore exposes the generic REST collection service the
// web application talks to: one CRUD surface per collection with
// query-parameter filtering and offset/limit paging.
package mockstore

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/msomdec/userboard/internal/repository/sqlite"
)

// NewRouter builds the store router over the given database.
func NewRouter(db *sqlite.DB) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// The store is also reachable directly from browsers.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	mountCollection(r, "/users", db.Users())
	mountCollection(r, "/todos", db.Todos())
	mountCollection(r, "/posts", db.Posts())
	mountCollection(r, "/comments", db.Comments())
	mountCollection(r, "/albums", db.Albums())
	mountCollection(r, "/photos", db.Photos())

	return r
}
