package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

var commentColumns = map[string]column{
	"id":     {"id", colInt},
	"postId": {"post_id", colInt},
	"name":   {"name", colText},
	"email":  {"email", colText},
	"body":   {"body", colText},
}

func (r *CommentRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Comment, error) {
	clauses, args, err := listClauses(commentColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, post_id, name, email, body FROM comments"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Body); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	c := &domain.Comment{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, post_id, name, email, body FROM comments WHERE id = ?", id,
	).Scan(&c.ID, &c.PostID, &c.Name, &c.Email, &c.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query comment by id: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (post_id, name, email, body) VALUES (?, ?, ?, ?)",
		comment.PostID, comment.Name, comment.Email, comment.Body,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	comment.ID = id
	return nil
}

func (r *CommentRepository) Replace(ctx context.Context, comment *domain.Comment) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE comments SET post_id = ?, name = ?, email = ?, body = ? WHERE id = ?",
		comment.PostID, comment.Name, comment.Email, comment.Body, comment.ID,
	)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return replacedOrNotFound(result)
}
