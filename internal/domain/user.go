package domain

import "context"

// User represents a registered user record as stored in the collection
// store. The Website field holds the obfuscated password; the store is
// a generic JSON collection service and has no dedicated column for it.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

// Identity is the session projection of a User. "Nobody is logged in"
// is represented by the sentinel identity with ID -1.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Sentinel returns the identity denoting "no authenticated user".
func Sentinel() Identity {
	return Identity{ID: -1}
}

// IsSentinel reports whether the identity denotes an unauthenticated
// session.
func (i Identity) IsSentinel() bool {
	return i.ID == -1
}

// IdentityOf projects a user record onto its session identity.
func IdentityOf(u *User) Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserRepository defines persistence operations for the users
// collection of the store.
type UserRepository interface {
	List(ctx context.Context, opts ListOptions) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
	Replace(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}
