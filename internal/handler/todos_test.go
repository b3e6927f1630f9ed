package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoScreenLifecycle(t *testing.T) {
	app, client := newTestApp(t)
	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	resp := postForm(t, c, app.URL+"/todos", url.Values{"title": {"walk the dog"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "walk the dog")

	user, err := client.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	todos, err := client.TodosByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	id := strconv.FormatInt(todos[0].ID, 10)

	resp = postForm(t, c, app.URL+"/todos/"+id, url.Values{
		"title":     {"walk the dog"},
		"completed": {"on"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "yes")

	resp = postForm(t, c, app.URL+"/todos/"+id+"/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "No todos.")
}

func TestTodoScreenSearchAndSort(t *testing.T) {
	app, client := newTestApp(t)
	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	for _, title := range []string{"banana", "Apple", "cherry"} {
		postForm(t, c, app.URL+"/todos", url.Values{"title": {title}}).Body.Close()
	}

	resp, err := c.Get(app.URL + "/todos?by=title&q=APPLE")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Contains(t, body, "Apple")
	assert.NotContains(t, body, "banana")

	user, err := client.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	todos, err := client.TodosByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}
