package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/msomdec/userboard/internal/cryptox"
	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/storeclient"
)

// The fixed key and IV the legacy records were obfuscated with. They
// cannot change without re-encrypting every stored website field.
var (
	legacyKey = []byte("1234567890123456")
	legacyIV  = []byte("6543210987654321")
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{1,3}?[-\s]?[0-9]{9,12}$`)
)

// AuthService verifies credentials against the user collection and
// runs the two-step registration flow.
type AuthService struct {
	store    *storeclient.Client
	attempts *LoginLimiter
}

// NewAuthService creates an AuthService over the given store client.
func NewAuthService(store *storeclient.Client, attempts *LoginLimiter) *AuthService {
	return &AuthService{store: store, attempts: attempts}
}

// Login authenticates a username/password pair. limiterKey identifies
// the caller for throttling (typically username plus remote address).
//
// A submitted password is accepted if it equals the stored website
// field directly OR if its ciphertext under the fixed legacy key does.
// Registration only ever stores ciphertext, so the plaintext branch
// only fires for records seeded into the store by hand. It is almost
// certainly an accidental weakening, but it is load-bearing for those
// records and its removal is a product decision, not a refactor.
func (s *AuthService) Login(ctx context.Context, username, password, limiterKey string) (*domain.User, error) {
	if s.attempts != nil && !s.attempts.Allow(limiterKey) {
		return nil, domain.ErrRateLimited
	}

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if user.Website == password {
		return user, nil
	}

	encrypted, err := cryptox.Encrypt(password, legacyKey, legacyIV)
	if err != nil {
		return nil, fmt.Errorf("encrypt password: %w", err)
	}
	if user.Website == encrypted {
		return user, nil
	}

	return nil, domain.ErrUnauthorized
}

// BeginRegistration validates the credentials step and returns the
// pending state to carry into the details step. The password leaves
// this function only in its obfuscated form.
func (s *AuthService) BeginRegistration(ctx context.Context, username, password, confirm string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	if password != confirm {
		return "", fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}

	_, err := s.store.UserByUsername(ctx, username)
	switch {
	case err == nil:
		return "", domain.ErrDuplicateUsername
	case !errors.Is(err, domain.ErrNotFound):
		return "", fmt.Errorf("check username: %w", err)
	}

	website, err := cryptox.Encrypt(password, legacyKey, legacyIV)
	if err != nil {
		return "", fmt.Errorf("encrypt password: %w", err)
	}
	return website, nil
}

// CompleteRegistration validates the details step and writes the new
// user record to the store.
func (s *AuthService) CompleteRegistration(ctx context.Context, username, website, email, phone string) (*domain.User, error) {
	emailOK := emailPattern.MatchString(email)
	phoneOK := phonePattern.MatchString(phone)
	switch {
	case !emailOK && !phoneOK:
		return nil, fmt.Errorf("%w: email and phone not valid", domain.ErrInvalidInput)
	case !emailOK:
		return nil, fmt.Errorf("%w: email not valid", domain.ErrInvalidInput)
	case !phoneOK:
		return nil, fmt.Errorf("%w: phone not valid", domain.ErrInvalidInput)
	}

	user, err := s.store.CreateUser(ctx, domain.User{
		Username: username,
		Email:    email,
		Phone:    phone,
		Website:  website,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UserByUsername exposes the exact-match lookup for the info screen
// and the posts screen's alternate-user feature.
func (s *AuthService) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.store.UserByUsername(ctx, username)
}
