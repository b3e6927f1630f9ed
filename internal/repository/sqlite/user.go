package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

var userColumns = map[string]column{
	"id":       {"id", colInt},
	"username": {"username", colText},
	"email":    {"email", colText},
	"phone":    {"phone", colText},
	"website":  {"website", colText},
}

func (r *UserRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.User, error) {
	clauses, args, err := listClauses(userColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, email, phone, website FROM users"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Website); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, phone, website FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Website)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, phone, website) VALUES (?, ?, ?, ?)",
		user.Username, user.Email, user.Phone, user.Website,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) Replace(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET username = ?, email = ?, phone = ?, website = ? WHERE id = ?",
		user.Username, user.Email, user.Phone, user.Website, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return replacedOrNotFound(result)
}

// replacedOrNotFound maps "zero rows touched" onto ErrNotFound.
func replacedOrNotFound(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
