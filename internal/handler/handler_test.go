package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msomdec/userboard/internal/mockstore"
	"github.com/msomdec/userboard/internal/repository/sqlite"
	"github.com/msomdec/userboard/internal/service"
	"github.com/msomdec/userboard/internal/session"
	"github.com/msomdec/userboard/internal/storeclient"
)

// newTestApp boots a full stack: a record store over a throwaway
// database, the services, and the web application on top.
func newTestApp(t *testing.T) (*httptest.Server, *storeclient.Client) {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))

	storeSrv := httptest.NewServer(mockstore.NewRouter(db))
	t.Cleanup(storeSrv.Close)

	client := storeclient.New(storeSrv.URL)
	sessions := session.NewStore(strings.Repeat("k", 32), false)

	app := httptest.NewServer(NewRouter(sessions, Services{
		Auth:   service.NewAuthService(client, nil),
		Todos:  service.NewTodoService(client),
		Posts:  service.NewPostService(client),
		Albums: service.NewAlbumService(client),
	}))
	t.Cleanup(app.Close)

	return app, client
}

// browser returns an HTTP client with a cookie jar that follows
// redirects, like a real browser session.
func browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postForm(t *testing.T, c *http.Client, rawURL string, form url.Values) *http.Response {
	t.Helper()
	resp, err := c.PostForm(rawURL, form)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// signUp walks the two registration steps and leaves the browser
// signed in.
func signUp(t *testing.T, c *http.Client, baseURL, username, password string) {
	t.Helper()

	resp := postForm(t, c, baseURL+"/register", url.Values{
		"username": {username},
		"password": {password},
		"confirm":  {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "Almost there")

	resp = postForm(t, c, baseURL+"/register/details", url.Values{
		"email": {username + "@example.com"},
		"phone": {"+1234567890"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "Welcome, "+username)
}

func hasCookie(t *testing.T, c *http.Client, baseURL, name string) bool {
	t.Helper()
	u, err := url.Parse(baseURL)
	require.NoError(t, err)
	for _, cookie := range c.Jar.Cookies(u) {
		if cookie.Name == name {
			return true
		}
	}
	return false
}
