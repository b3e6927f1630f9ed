package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/userboard/internal/domain"
)

func TestAlbumScreenLifecycle(t *testing.T) {
	app, client := newTestApp(t)
	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	resp := postForm(t, c, app.URL+"/albums", url.Values{"title": {"vacation"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "vacation")

	user, err := client.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	albums, err := client.AlbumsByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	id := strconv.FormatInt(albums[0].ID, 10)

	resp = postForm(t, c, app.URL+"/albums/"+id+"/photos", url.Values{
		"title":        {"sunset"},
		"thumbnailUrl": {"https://example.com/sunset.png"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "sunset")

	resp = postForm(t, c, app.URL+"/albums/"+id+"/delete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "No albums.")
}

func TestAlbumPhotoPaging(t *testing.T) {
	app, client := newTestApp(t)
	ctx := context.Background()

	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	user, err := client.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	album, err := client.CreateAlbum(ctx, domain.Album{UserID: user.ID, Title: "trip"})
	require.NoError(t, err)
	for i := 0; i < 14; i++ {
		_, err := client.CreatePhoto(ctx, domain.Photo{
			AlbumID:      album.ID,
			Title:        fmt.Sprintf("photo %02d", i),
			ThumbnailURL: "https://example.com/t.png",
		})
		require.NoError(t, err)
	}

	albumURL := app.URL + "/albums/" + strconv.FormatInt(album.ID, 10)

	resp, err := c.Get(albumURL)
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, 10, strings.Count(body, `<li id="photo-`))
	assert.Contains(t, body, "offset=10")
	assert.Contains(t, body, "Load more")

	resp, err = c.Get(albumURL + "/photos/more?offset=10")
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Equal(t, 4, strings.Count(body, `<li id="photo-`))

	// The short page retires the load-more button for an end-of-data
	// message.
	assert.Contains(t, body, "No more photos to display.")
	assert.NotContains(t, body, "offset=14")
}

func TestAlbumPhotoEndStates(t *testing.T) {
	app, client := newTestApp(t)
	ctx := context.Background()

	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	user, err := client.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	album, err := client.CreateAlbum(ctx, domain.Album{UserID: user.ID, Title: "fresh"})
	require.NoError(t, err)
	albumURL := app.URL + "/albums/" + strconv.FormatInt(album.ID, 10)

	// No photos at all: empty-state line, no load-more, no end-of-data
	// message.
	resp, err := c.Get(albumURL)
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Contains(t, body, "No photos in this album yet.")
	assert.NotContains(t, body, "Load more")
	assert.NotContains(t, body, "No more photos to display.")

	// A single short page: everything is already shown.
	_, err = client.CreatePhoto(ctx, domain.Photo{
		AlbumID:      album.ID,
		Title:        "sunset",
		ThumbnailURL: "https://example.com/t.png",
	})
	require.NoError(t, err)

	resp, err = c.Get(albumURL)
	require.NoError(t, err)
	body = readBody(t, resp)
	assert.Contains(t, body, "No more photos to display.")
	assert.NotContains(t, body, "Load more")
	assert.NotContains(t, body, "No photos in this album yet.")
}

func TestAlbumSearch(t *testing.T) {
	app, client := newTestApp(t)
	ctx := context.Background()

	c := browser(t)
	signUp(t, c, app.URL, "alice", "s3cret")

	user, err := client.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	for _, title := range []string{"Summer trip", "Winter"} {
		_, err := client.CreateAlbum(ctx, domain.Album{UserID: user.ID, Title: title})
		require.NoError(t, err)
	}

	resp, err := c.Get(app.URL + "/albums?q=sum")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Contains(t, body, "Summer trip")
	assert.NotContains(t, body, "Winter")
}
