package storeclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/msomdec/userboard/internal/domain"
)

// UserByUsername looks up a user by exact username match. Zero matches
// yield domain.ErrNotFound; with several, the first wins (the store is
// not responsible for uniqueness, registration is).
func (c *Client) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := url.Values{
		"username": []string{username},
		"_exact":   []string{"true"},
	}

	var users []domain.User
	if err := c.getJSON(ctx, "/users", query, &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNotFound
	}
	if err := requireID(users[0].ID); err != nil {
		return nil, err
	}
	return &users[0], nil
}

// CreateUser stores a new user record and returns it with its
// server-assigned id.
func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.sendJSON(ctx, "POST", "/users", user, &created); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}
