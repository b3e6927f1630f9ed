package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// TodoRepository implements domain.TodoRepository using SQLite.
type TodoRepository struct {
	db *sql.DB
}

var todoColumns = map[string]column{
	"id":        {"id", colInt},
	"userId":    {"user_id", colInt},
	"title":     {"title", colText},
	"completed": {"completed", colBool},
}

func (r *TodoRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Todo, error) {
	clauses, args, err := listClauses(todoColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, title, completed FROM todos"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoRepository) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	t := &domain.Todo{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, completed FROM todos WHERE id = ?", id,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query todo by id: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO todos (user_id, title, completed) VALUES (?, ?, ?)",
		todo.UserID, todo.Title, todo.Completed,
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	todo.ID = id
	return nil
}

func (r *TodoRepository) Replace(ctx context.Context, todo *domain.Todo) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE todos SET user_id = ?, title = ?, completed = ? WHERE id = ?",
		todo.UserID, todo.Title, todo.Completed, todo.ID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return replacedOrNotFound(result)
}
