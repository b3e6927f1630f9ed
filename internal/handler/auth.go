package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/session"
	"github.com/msomdec/userboard/internal/view"
)

// AuthHandler serves the login, registration and account pages.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Store
}

// HandleLoginPage renders the login form. A signed-in user is sent
// straight home.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Current(r).IsSentinel() {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	view.Render(w, http.StatusOK, "login", view.LoginData{Page: page(r, "Log in")})
}

// HandleLogin verifies the submitted credentials and establishes the
// identity cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.auth.Login(r.Context(), username, password, username+"|"+r.RemoteAddr)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			h.loginError(w, r, username, "Too many attempts. Try again later.")
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidInput):
			h.loginError(w, r, username, "Invalid username or password.")
		default:
			renderError(w, r, err)
		}
		return
	}

	if err := h.sessions.Save(w, domain.IdentityOf(user)); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (h *AuthHandler) loginError(w http.ResponseWriter, r *http.Request, username, msg string) {
	data := view.LoginData{Page: page(r, "Log in"), Username: username}
	data.Error = msg
	view.Render(w, http.StatusUnauthorized, "login", data)
}

// HandleLogout clears the identity cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleRegisterPage renders the first registration step.
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Current(r).IsSentinel() {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	view.Render(w, http.StatusOK, "register", view.RegisterData{Page: page(r, "Register")})
}

// HandleRegister validates the credentials step and moves the flow on
// to the details step.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")

	website, err := h.auth.BeginRegistration(r.Context(), username, r.FormValue("password"), r.FormValue("confirm"))
	if err != nil {
		data := view.RegisterData{Page: page(r, "Register"), Username: username}
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			data.Error = "That username is already taken."
		case errors.Is(err, domain.ErrInvalidInput):
			data.Error = inputMessage(err)
		default:
			renderError(w, r, err)
			return
		}
		view.Render(w, http.StatusUnprocessableEntity, "register", data)
		return
	}

	pending := session.PendingRegistration{Username: username, Website: website}
	if err := h.sessions.SavePending(w, pending); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/register/details", http.StatusSeeOther)
}

// detailsAllowed decides whether the post-registration step may be
// shown: a registration must be in flight and nobody signed in. The
// identity check is on cookie presence, not validity, matching how the
// original gated this step on raw durable storage. When the step is
// not allowed the caller is redirected and nil is returned.
func (h *AuthHandler) detailsAllowed(w http.ResponseWriter, r *http.Request) *session.PendingRegistration {
	if h.sessions.HasIdentity(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return nil
	}
	pending, err := h.sessions.Pending(r)
	if err != nil {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return nil
	}
	return pending
}

// HandleDetailsPage renders the second registration step.
func (h *AuthHandler) HandleDetailsPage(w http.ResponseWriter, r *http.Request) {
	if pending := h.detailsAllowed(w, r); pending == nil {
		return
	}
	view.Render(w, http.StatusOK, "register_details", view.RegisterDetailsData{Page: page(r, "Your details")})
}

// HandleDetails validates the contact details, creates the user record
// and signs the new user in.
func (h *AuthHandler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	pending := h.detailsAllowed(w, r)
	if pending == nil {
		return
	}

	email := r.FormValue("email")
	phone := r.FormValue("phone")

	user, err := h.auth.CompleteRegistration(r.Context(), pending.Username, pending.Website, email, phone)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			data := view.RegisterDetailsData{Page: page(r, "Your details"), Email: email, Phone: phone}
			data.Error = inputMessage(err)
			view.Render(w, http.StatusUnprocessableEntity, "register_details", data)
			return
		}
		renderError(w, r, err)
		return
	}

	h.sessions.ClearPending(w)
	if err := h.sessions.Save(w, domain.IdentityOf(user)); err != nil {
		renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// HandleInfo renders the signed-in user's account details.
func (h *AuthHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	user, err := h.auth.UserByUsername(r.Context(), identity.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The account vanished from the store under a live session.
			renderNotFound(w, r)
			return
		}
		renderError(w, r, err)
		return
	}

	view.Render(w, http.StatusOK, "info", view.InfoData{Page: page(r, "Account"), User: *user})
}
