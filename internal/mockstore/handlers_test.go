package mockstore_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/mockstore"
	"github.com/msomdec/userboard/internal/repository/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "store.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srv := httptest.NewServer(mockstore.NewRouter(db))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestCollection_CreateAssignsID(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/todos", domain.Todo{UserID: 1, Title: "wash up"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var created domain.Todo
	decodeInto(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("expected server-assigned id")
	}
	if created.Title != "wash up" {
		t.Fatalf("expected submitted title back, got %q", created.Title)
	}
}

func TestCollection_FilterByOwner(t *testing.T) {
	srv := newTestServer(t)

	for i, userID := range []int64{1, 1, 2} {
		resp := postJSON(t, srv.URL+"/todos", domain.Todo{UserID: userID, Title: fmt.Sprintf("task %d", i)})
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/todos?userId=1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var todos []domain.Todo
	decodeInto(t, resp, &todos)
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos for user 1, got %d", len(todos))
	}
}

func TestCollection_ExactUsernameLookup(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"alice", "alicia"} {
		resp := postJSON(t, srv.URL+"/users", domain.User{Username: name})
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/users?username=alice&_exact=true")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var users []domain.User
	decodeInto(t, resp, &users)
	if len(users) != 1 || users[0].Username != "alice" {
		t.Fatalf("expected exactly alice, got %+v", users)
	}

	// Without the flag both match by substring.
	resp, err = http.Get(srv.URL + "/users?username=alic")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	decodeInto(t, resp, &users)
	if len(users) != 2 {
		t.Fatalf("expected 2 substring matches, got %d", len(users))
	}
}

func TestCollection_Paging(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 14; i++ {
		resp := postJSON(t, srv.URL+"/photos", domain.Photo{AlbumID: 5, Title: fmt.Sprintf("p%d", i)})
		resp.Body.Close()
	}

	var photos []domain.Photo
	resp, err := http.Get(srv.URL + "/photos?albumId=5&_start=0&_limit=10")
	if err != nil {
		t.Fatalf("GET page 1: %v", err)
	}
	decodeInto(t, resp, &photos)
	if len(photos) != 10 {
		t.Fatalf("expected full first page, got %d", len(photos))
	}

	resp, err = http.Get(srv.URL + "/photos?albumId=5&_start=10&_limit=10")
	if err != nil {
		t.Fatalf("GET page 2: %v", err)
	}
	decodeInto(t, resp, &photos)
	if len(photos) != 4 {
		t.Fatalf("expected short last page, got %d", len(photos))
	}
}

func TestCollection_ReplaceUsesPathID(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/posts", domain.Post{UserID: 1, Title: "before", Body: "b"})
	var created domain.Post
	decodeInto(t, resp, &created)

	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/posts/%d", srv.URL, created.ID),
		bytes.NewReader([]byte(`{"id":999,"userId":1,"title":"after","body":"b"}`)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	putResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	var updated domain.Post
	decodeInto(t, putResp, &updated)
	if updated.ID != created.ID || updated.Title != "after" {
		t.Fatalf("unexpected updated record: %+v", updated)
	}
}

func TestCollection_DeleteThenDeleteAgain(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/albums", domain.Album{UserID: 1, Title: "holiday"})
	var created domain.Album
	decodeInto(t, resp, &created)

	url := fmt.Sprintf("%s/albums/%d", srv.URL, created.ID)
	for i, want := range []int{http.StatusNoContent, http.StatusNotFound} {
		req, _ := http.NewRequest(http.MethodDelete, url, nil)
		delResp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("DELETE %d: %v", i, err)
		}
		delResp.Body.Close()
		if delResp.StatusCode != want {
			t.Fatalf("delete %d: expected %d, got %d", i, want, delResp.StatusCode)
		}
	}
}

func TestCollection_UnknownFilterField(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/todos?nope=1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.StatusCode)
	}
}
