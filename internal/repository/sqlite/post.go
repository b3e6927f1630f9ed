package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

var postColumns = map[string]column{
	"id":     {"id", colInt},
	"userId": {"user_id", colInt},
	"title":  {"title", colText},
	"body":   {"body", colText},
}

func (r *PostRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Post, error) {
	clauses, args, err := listClauses(postColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, title, body FROM posts"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, body FROM posts WHERE id = ?", id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return p, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO posts (user_id, title, body) VALUES (?, ?, ?)",
		post.UserID, post.Title, post.Body,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	post.ID = id
	return nil
}

func (r *PostRepository) Replace(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE posts SET user_id = ?, title = ?, body = ? WHERE id = ?",
		post.UserID, post.Title, post.Body, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return replacedOrNotFound(result)
}
