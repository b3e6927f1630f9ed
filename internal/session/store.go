// Package session is the single source of truth for "who is using the
// application right now". The durable copy of the identity is a signed
// JWT in a cookie; a request without the cookie, with a tampered token
// or with an expired one yields the sentinel identity.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msomdec/userboard/internal/domain"
)

const (
	// IdentityCookie holds the serialized current identity.
	IdentityCookie = "current_user"
	// PendingCookie holds the half-finished registration between the
	// credentials step and the details step. It is never readable as
	// an identity.
	PendingCookie = "pending_registration"

	identityTTL = 24 * time.Hour
	pendingTTL  = 30 * time.Minute
)

// ErrNoPending is returned when no registration is in progress.
var ErrNoPending = errors.New("no pending registration")

// PendingRegistration is the state carried between the two
// registration steps: the chosen username and the already-obfuscated
// password destined for the user record's website field.
type PendingRegistration struct {
	Username string
	Website  string
}

// Store signs and verifies the session cookies.
type Store struct {
	secret []byte
	secure bool
}

// NewStore creates a session store. secure controls the cookies'
// Secure flag; disable only for local development.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Current returns the identity carried by the request. Any failure
// (missing cookie, bad signature, expired token, unparseable subject)
// silently yields the sentinel; callers never see an error.
func (s *Store) Current(r *http.Request) domain.Identity {
	cookie, err := r.Cookie(IdentityCookie)
	if err != nil {
		return domain.Sentinel()
	}

	claims, err := s.parse(cookie.Value)
	if err != nil {
		return domain.Sentinel()
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return domain.Sentinel()
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return domain.Sentinel()
	}

	// Claims beyond the subject are taken as-is; a token signed with
	// an unexpected shape degrades to empty fields, not an error.
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	return domain.Identity{ID: id, Username: username, Email: email}
}

// Save writes the durable identity cookie. This is the only place the
// identity is persisted; handlers that change the current user must
// call it explicitly.
func (s *Store) Save(w http.ResponseWriter, identity domain.Identity) error {
	now := time.Now()
	token, err := s.sign(jwt.MapClaims{
		"sub":      strconv.FormatInt(identity.ID, 10),
		"username": identity.Username,
		"email":    identity.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(identityTTL).Unix(),
	})
	if err != nil {
		return fmt.Errorf("sign identity: %w", err)
	}

	http.SetCookie(w, s.cookie(IdentityCookie, token, int(identityTTL.Seconds())))
	return nil
}

// Clear removes the durable identity cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(IdentityCookie, "", -1))
}

// HasIdentity reports whether the request carries an identity cookie
// at all, valid or not. The post-registration step keys off cookie
// presence, mirroring how the original checked raw durable storage.
func (s *Store) HasIdentity(r *http.Request) bool {
	_, err := r.Cookie(IdentityCookie)
	return err == nil
}

// SavePending stores the mid-registration state.
func (s *Store) SavePending(w http.ResponseWriter, p PendingRegistration) error {
	now := time.Now()
	token, err := s.sign(jwt.MapClaims{
		"username": p.Username,
		"website":  p.Website,
		"iat":      now.Unix(),
		"exp":      now.Add(pendingTTL).Unix(),
	})
	if err != nil {
		return fmt.Errorf("sign pending registration: %w", err)
	}

	http.SetCookie(w, s.cookie(PendingCookie, token, int(pendingTTL.Seconds())))
	return nil
}

// Pending returns the mid-registration state, or ErrNoPending if none
// is present or it no longer verifies.
func (s *Store) Pending(r *http.Request) (*PendingRegistration, error) {
	cookie, err := r.Cookie(PendingCookie)
	if err != nil {
		return nil, ErrNoPending
	}

	claims, err := s.parse(cookie.Value)
	if err != nil {
		return nil, ErrNoPending
	}

	username, _ := claims["username"].(string)
	website, _ := claims["website"].(string)
	if username == "" || website == "" {
		return nil, ErrNoPending
	}
	return &PendingRegistration{Username: username, Website: website}, nil
}

// ClearPending removes the mid-registration cookie.
func (s *Store) ClearPending(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(PendingCookie, "", -1))
}

func (s *Store) sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Store) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
