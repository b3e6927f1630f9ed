package storeclient

import (
	"context"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// TodosByUser fetches all todos owned by the given user.
func (c *Client) TodosByUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	var todos []domain.Todo
	if err := c.getJSON(ctx, "/todos", ownerQuery(userID), &todos); err != nil {
		return nil, fmt.Errorf("fetch todos: %w", err)
	}
	return todos, nil
}

// CreateTodo stores a new todo and returns the created record.
func (c *Client) CreateTodo(ctx context.Context, todo domain.Todo) (*domain.Todo, error) {
	var created domain.Todo
	if err := c.sendJSON(ctx, "POST", "/todos", todo, &created); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTodo fully replaces the record and returns the store's copy.
func (c *Client) UpdateTodo(ctx context.Context, todo domain.Todo) (*domain.Todo, error) {
	var updated domain.Todo
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/todos/%d", todo.ID), todo, &updated); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return &updated, nil
}

// DeleteTodo removes the record by id.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	if err := c.deleteRecord(ctx, fmt.Sprintf("/todos/%d", id)); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
