package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/userboard/internal/domain"
)

func TestTodoCreateRequiresTitle(t *testing.T) {
	todos := NewTodoService(newTestClient(t))

	_, err := todos.Create(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTodoLifecycle(t *testing.T) {
	todos := NewTodoService(newTestClient(t))
	ctx := context.Background()

	created, err := todos.Create(ctx, 7, "buy milk")
	require.NoError(t, err)
	assert.False(t, created.Completed)

	created.Completed = true
	updated, err := todos.Update(ctx, *created)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	list, err := todos.ListForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, todos.Delete(ctx, created.ID))
	// Deleting again is a no-op, not an error.
	require.NoError(t, todos.Delete(ctx, created.ID))

	list, err = todos.ListForUser(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func sampleTodos() []domain.Todo {
	return []domain.Todo{
		{ID: 1, Title: "Walk the dog", Completed: false},
		{ID: 2, Title: "buy milk", Completed: true},
		{ID: 10, Title: "Call mom", Completed: false},
		{ID: 11, Title: "walk to work", Completed: true},
	}
}

func TestFilterTodosByIDSubstring(t *testing.T) {
	got := FilterTodos(sampleTodos(), TodoKeyID, "1")

	ids := make([]int64, 0, len(got))
	for _, td := range got {
		ids = append(ids, td.ID)
	}
	assert.Equal(t, []int64{1, 10, 11}, ids)
}

func TestFilterTodosByTitleIgnoresCase(t *testing.T) {
	got := FilterTodos(sampleTodos(), TodoKeyTitle, "WALK")

	require.Len(t, got, 2)
	assert.Equal(t, "Walk the dog", got[0].Title)
	assert.Equal(t, "walk to work", got[1].Title)
}

func TestFilterTodosByCompletedExact(t *testing.T) {
	assert.Len(t, FilterTodos(sampleTodos(), TodoKeyCompleted, "true"), 2)
	assert.Len(t, FilterTodos(sampleTodos(), TodoKeyCompleted, "false"), 2)
	assert.Empty(t, FilterTodos(sampleTodos(), TodoKeyCompleted, "tru"))
}

func TestFilterTodosEmptyTermMatchesAll(t *testing.T) {
	assert.Len(t, FilterTodos(sampleTodos(), TodoKeyTitle, ""), 4)
}

func TestSortTodosByID(t *testing.T) {
	in := []domain.Todo{{ID: 3}, {ID: 1}, {ID: 2}}

	asc := SortTodos(in, TodoKeyID, false)
	assert.Equal(t, int64(1), asc[0].ID)
	assert.Equal(t, int64(3), asc[2].ID)

	desc := SortTodos(in, TodoKeyID, true)
	assert.Equal(t, int64(3), desc[0].ID)

	// Input order is untouched.
	assert.Equal(t, int64(3), in[0].ID)
}

func TestSortTodosByTitleIgnoresCase(t *testing.T) {
	in := []domain.Todo{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry"},
	}

	got := SortTodos(in, TodoKeyTitle, false)
	assert.Equal(t, "Apple", got[0].Title)
	assert.Equal(t, "banana", got[1].Title)
	assert.Equal(t, "cherry", got[2].Title)
}

func TestSortTodosByCompleted(t *testing.T) {
	in := []domain.Todo{
		{ID: 1, Completed: true},
		{ID: 2, Completed: false},
		{ID: 3, Completed: true},
	}

	got := SortTodos(in, TodoKeyCompleted, false)
	assert.False(t, got[0].Completed)
	assert.True(t, got[1].Completed)
	assert.True(t, got[2].Completed)
}
