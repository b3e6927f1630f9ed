package storeclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/msomdec/userboard/internal/domain"
)

// AlbumsByUser fetches all albums owned by the given user.
func (c *Client) AlbumsByUser(ctx context.Context, userID int64) ([]domain.Album, error) {
	var albums []domain.Album
	if err := c.getJSON(ctx, "/albums", ownerQuery(userID), &albums); err != nil {
		return nil, fmt.Errorf("fetch albums: %w", err)
	}
	return albums, nil
}

// Album fetches a single album by id.
func (c *Client) Album(ctx context.Context, id int64) (*domain.Album, error) {
	var album domain.Album
	if err := c.getJSON(ctx, fmt.Sprintf("/albums/%d", id), nil, &album); err != nil {
		return nil, fmt.Errorf("fetch album: %w", err)
	}
	return &album, nil
}

// CreateAlbum stores a new album and returns the created record.
func (c *Client) CreateAlbum(ctx context.Context, album domain.Album) (*domain.Album, error) {
	var created domain.Album
	if err := c.sendJSON(ctx, "POST", "/albums", album, &created); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAlbum fully replaces the record and returns the store's copy.
func (c *Client) UpdateAlbum(ctx context.Context, album domain.Album) (*domain.Album, error) {
	var updated domain.Album
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/albums/%d", album.ID), album, &updated); err != nil {
		return nil, fmt.Errorf("update album: %w", err)
	}
	return &updated, nil
}

// DeleteAlbum removes the record by id.
func (c *Client) DeleteAlbum(ctx context.Context, id int64) error {
	if err := c.deleteRecord(ctx, fmt.Sprintf("/albums/%d", id)); err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}

// PhotosPage fetches one offset/limit page of an album's photos.
func (c *Client) PhotosPage(ctx context.Context, albumID int64, start, limit int) ([]domain.Photo, error) {
	query := url.Values{
		"albumId": []string{fmt.Sprint(albumID)},
		"_start":  []string{strconv.Itoa(start)},
		"_limit":  []string{strconv.Itoa(limit)},
	}
	var photos []domain.Photo
	if err := c.getJSON(ctx, "/photos", query, &photos); err != nil {
		return nil, fmt.Errorf("fetch photos: %w", err)
	}
	return photos, nil
}

// Photo fetches a single photo by id.
func (c *Client) Photo(ctx context.Context, id int64) (*domain.Photo, error) {
	var photo domain.Photo
	if err := c.getJSON(ctx, fmt.Sprintf("/photos/%d", id), nil, &photo); err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	return &photo, nil
}

// CreatePhoto stores a new photo and returns the created record.
func (c *Client) CreatePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error) {
	var created domain.Photo
	if err := c.sendJSON(ctx, "POST", "/photos", photo, &created); err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePhoto fully replaces the record and returns the store's copy.
func (c *Client) UpdatePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error) {
	var updated domain.Photo
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/photos/%d", photo.ID), photo, &updated); err != nil {
		return nil, fmt.Errorf("update photo: %w", err)
	}
	return &updated, nil
}

// DeletePhoto removes the record by id.
func (c *Client) DeletePhoto(ctx context.Context, id int64) error {
	if err := c.deleteRecord(ctx, fmt.Sprintf("/photos/%d", id)); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
