package domain

import "context"

// Album groups photos under a user.
type Album struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
}

// Photo belongs to an album. The image itself lives behind
// ThumbnailURL; the store only keeps the reference.
type Photo struct {
	ID           int64  `json:"id"`
	AlbumID      int64  `json:"albumId"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// AlbumRepository defines persistence operations for the albums
// collection of the store.
type AlbumRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Album, error)
	Get(ctx context.Context, id int64) (*Album, error)
	Create(ctx context.Context, album *Album) error
	Replace(ctx context.Context, album *Album) error
	Delete(ctx context.Context, id int64) error
}

// PhotoRepository defines persistence operations for the photos
// collection of the store.
type PhotoRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Photo, error)
	Get(ctx context.Context, id int64) (*Photo, error)
	Create(ctx context.Context, photo *Photo) error
	Replace(ctx context.Context, photo *Photo) error
	Delete(ctx context.Context, id int64) error
}
