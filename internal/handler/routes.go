package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/session"
)

// Services bundles the application services the routes depend on.
type Services struct {
	Auth   *service.AuthService
	Todos  *service.TodoService
	Posts  *service.PostService
	Albums *service.AlbumService
}

// NewRouter wires every route of the web application.
func NewRouter(sessions *session.Store, svcs Services) *chi.Mux {
	auth := &AuthHandler{auth: svcs.Auth, sessions: sessions}
	todos := &TodoHandler{todos: svcs.Todos}
	posts := &PostHandler{posts: svcs.Posts}
	albums := &AlbumHandler{albums: svcs.Albums}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Get("/login", auth.HandleLoginPage)
	r.Post("/login", auth.HandleLogin)
	r.Post("/logout", auth.HandleLogout)
	r.Get("/register", auth.HandleRegisterPage)
	r.Post("/register", auth.HandleRegister)
	r.Get("/register/details", auth.HandleDetailsPage)
	r.Post("/register/details", auth.HandleDetails)

	r.Group(func(g chi.Router) {
		g.Use(func(next http.Handler) http.Handler {
			return RequireIdentity(sessions, next)
		})

		g.Get("/home", HandleHome)
		g.Get("/info", auth.HandleInfo)

		g.Route("/todos", func(t chi.Router) {
			t.Get("/", todos.HandleList)
			t.Post("/", todos.HandleCreate)
			t.Post("/{id}", todos.HandleUpdate)
			t.Post("/{id}/delete", todos.HandleDelete)
		})

		g.Route("/posts", func(p chi.Router) {
			p.Get("/", posts.HandleList)
			p.Post("/", posts.HandleCreate)
			p.Get("/{id}", posts.HandleDetail)
			p.Post("/{id}", posts.HandleUpdate)
			p.Post("/{id}/delete", posts.HandleDelete)
			p.Post("/{id}/comments", posts.HandleAddComment)
			p.Post("/{id}/comments/{commentID}", posts.HandleUpdateComment)
			p.Post("/{id}/comments/{commentID}/delete", posts.HandleDeleteComment)
		})

		g.Route("/albums", func(a chi.Router) {
			a.Get("/", albums.HandleList)
			a.Post("/", albums.HandleCreate)
			a.Get("/{id}", albums.HandleDetail)
			a.Post("/{id}", albums.HandleUpdate)
			a.Post("/{id}/delete", albums.HandleDelete)
			a.Get("/{id}/photos/more", albums.HandleMorePhotos)
			a.Post("/{id}/photos", albums.HandleAddPhoto)
			a.Post("/{id}/photos/{photoID}", albums.HandleUpdatePhoto)
			a.Post("/{id}/photos/{photoID}/delete", albums.HandleDeletePhoto)
		})
	})

	r.NotFound(renderNotFound)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
