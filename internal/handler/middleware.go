package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/session"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityFromContext extracts the verified identity from the request
// context. Outside guarded routes it returns the sentinel.
func IdentityFromContext(ctx context.Context) domain.Identity {
	if identity, ok := ctx.Value(identityContextKey).(domain.Identity); ok {
		return identity
	}
	return domain.Sentinel()
}

// RequireIdentity guards routes that need a signed-in user. A request
// without a verifiable identity gets the not-found page, the same
// response an unknown URL gets.
func RequireIdentity(sessions *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := sessions.Current(r)
		if identity.IsSentinel() {
			renderNotFound(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
