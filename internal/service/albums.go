package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/storeclient"
)

// PhotoPageSize is how many photos one "load more" round fetches.
const PhotoPageSize = 10

// AlbumService handles the albums screen and its nested photos.
type AlbumService struct {
	store *storeclient.Client
}

// NewAlbumService creates an AlbumService over the given store client.
func NewAlbumService(store *storeclient.Client) *AlbumService {
	return &AlbumService{store: store}
}

// ListForUser fetches all albums owned by the user.
func (s *AlbumService) ListForUser(ctx context.Context, userID int64) ([]domain.Album, error) {
	return s.store.AlbumsByUser(ctx, userID)
}

// Get fetches a single album for the detail view.
func (s *AlbumService) Get(ctx context.Context, id int64) (*domain.Album, error) {
	return s.store.Album(ctx, id)
}

// Create adds an album with the given title.
func (s *AlbumService) Create(ctx context.Context, userID int64, title string) (*domain.Album, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.store.CreateAlbum(ctx, domain.Album{UserID: userID, Title: title})
}

// Update fully replaces the album and returns the store's copy.
func (s *AlbumService) Update(ctx context.Context, album domain.Album) (*domain.Album, error) {
	if strings.TrimSpace(album.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.store.UpdateAlbum(ctx, album)
}

// Delete removes the album; an already-gone record counts as deleted.
func (s *AlbumService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteAlbum(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// PhotoPage fetches one page of an album's photos starting at offset.
// hasMore is false once the store hands back a short page, which is
// the only end-of-data signal the store offers.
func (s *AlbumService) PhotoPage(ctx context.Context, albumID int64, offset int) (photos []domain.Photo, hasMore bool, err error) {
	photos, err = s.store.PhotosPage(ctx, albumID, offset, PhotoPageSize)
	if err != nil {
		return nil, false, err
	}
	return photos, len(photos) == PhotoPageSize, nil
}

// Photo fetches a single photo, for prefilling the edit form.
func (s *AlbumService) Photo(ctx context.Context, id int64) (*domain.Photo, error) {
	return s.store.Photo(ctx, id)
}

// AddPhoto attaches a photo to the album; title and URL are required.
func (s *AlbumService) AddPhoto(ctx context.Context, albumID int64, title, thumbnailURL string) (*domain.Photo, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(thumbnailURL) == "" {
		return nil, fmt.Errorf("%w: title and url are required", domain.ErrInvalidInput)
	}
	return s.store.CreatePhoto(ctx, domain.Photo{AlbumID: albumID, Title: title, ThumbnailURL: thumbnailURL})
}

// UpdatePhoto fully replaces the photo and returns the store's copy.
func (s *AlbumService) UpdatePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error) {
	if strings.TrimSpace(photo.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	return s.store.UpdatePhoto(ctx, photo)
}

// DeletePhoto removes the photo; an already-gone record counts as
// deleted.
func (s *AlbumService) DeletePhoto(ctx context.Context, id int64) error {
	if err := s.store.DeletePhoto(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// SearchAlbums narrows the list by one combined term matching either
// the id's decimal substring or the title, case-insensitively.
func SearchAlbums(albums []domain.Album, term string) []domain.Album {
	if term == "" {
		return albums
	}

	lowered := strings.ToLower(term)
	out := make([]domain.Album, 0, len(albums))
	for _, a := range albums {
		if strings.Contains(strconv.FormatInt(a.ID, 10), term) ||
			strings.Contains(strings.ToLower(a.Title), lowered) {
			out = append(out, a)
		}
	}
	return out
}
