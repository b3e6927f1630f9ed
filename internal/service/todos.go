package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/storeclient"
)

// Todo search and sort keys. Searching and sorting happen over the
// already-fetched list, not in the store.
const (
	TodoKeyID        = "id"
	TodoKeyTitle     = "title"
	TodoKeyCompleted = "completed"
)

// TodoService handles the todos screen's data operations.
type TodoService struct {
	store *storeclient.Client
}

// NewTodoService creates a TodoService over the given store client.
func NewTodoService(store *storeclient.Client) *TodoService {
	return &TodoService{store: store}
}

// ListForUser fetches all todos owned by the user.
func (s *TodoService) ListForUser(ctx context.Context, userID int64) ([]domain.Todo, error) {
	return s.store.TodosByUser(ctx, userID)
}

// Create adds a todo with the given title, initially not completed.
func (s *TodoService) Create(ctx context.Context, userID int64, title string) (*domain.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.store.CreateTodo(ctx, domain.Todo{UserID: userID, Title: title})
}

// Update fully replaces the todo and returns the store's copy.
func (s *TodoService) Update(ctx context.Context, todo domain.Todo) (*domain.Todo, error) {
	if strings.TrimSpace(todo.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.store.UpdateTodo(ctx, todo)
}

// Delete removes the todo. A record that is already gone counts as
// deleted, so issuing the same delete twice leaves the list unchanged.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteTodo(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// FilterTodos narrows the list by the search criteria. Ids match on
// the decimal string's substring, titles case-insensitively, and the
// completed flag by exact "true"/"false". An empty term matches all.
func FilterTodos(todos []domain.Todo, criteria, term string) []domain.Todo {
	if term == "" {
		return todos
	}

	out := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		var ok bool
		switch criteria {
		case TodoKeyID:
			ok = strings.Contains(strconv.FormatInt(t.ID, 10), term)
		case TodoKeyCompleted:
			ok = strconv.FormatBool(t.Completed) == term
		default:
			ok = strings.Contains(strings.ToLower(t.Title), strings.ToLower(term))
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}

// SortTodos returns a copy sorted by the given key and direction.
func SortTodos(todos []domain.Todo, key string, descending bool) []domain.Todo {
	sorted := slices.Clone(todos)
	slices.SortStableFunc(sorted, func(a, b domain.Todo) int {
		var c int
		switch key {
		case TodoKeyTitle:
			c = compareTitles(a.Title, b.Title)
		case TodoKeyCompleted:
			c = compareBools(a.Completed, b.Completed)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if descending {
			c = -c
		}
		return c
	})
	return sorted
}

// compareTitles orders case-insensitively, falling back to a plain
// comparison so equal-ignoring-case titles still sort predictably.
func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
