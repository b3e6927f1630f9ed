package domain

import "context"

// Todo is a single task owned by a user.
type Todo struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoRepository defines persistence operations for the todos
// collection of the store.
type TodoRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Todo, error)
	Get(ctx context.Context, id int64) (*Todo, error)
	Create(ctx context.Context, todo *Todo) error
	Replace(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, id int64) error
}
