package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// PhotoRepository implements domain.PhotoRepository using SQLite.
type PhotoRepository struct {
	db *sql.DB
}

var photoColumns = map[string]column{
	"id":           {"id", colInt},
	"albumId":      {"album_id", colInt},
	"title":        {"title", colText},
	"thumbnailUrl": {"thumbnail_url", colText},
}

func (r *PhotoRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Photo, error) {
	clauses, args, err := listClauses(photoColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, album_id, title, thumbnail_url FROM photos"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := []domain.Photo{}
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(&p.ID, &p.AlbumID, &p.Title, &p.ThumbnailURL); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) Get(ctx context.Context, id int64) (*domain.Photo, error) {
	p := &domain.Photo{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, album_id, title, thumbnail_url FROM photos WHERE id = ?", id,
	).Scan(&p.ID, &p.AlbumID, &p.Title, &p.ThumbnailURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query photo by id: %w", err)
	}
	return p, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO photos (album_id, title, thumbnail_url) VALUES (?, ?, ?)",
		photo.AlbumID, photo.Title, photo.ThumbnailURL,
	)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	photo.ID = id
	return nil
}

func (r *PhotoRepository) Replace(ctx context.Context, photo *domain.Photo) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE photos SET album_id = ?, title = ?, thumbnail_url = ? WHERE id = ?",
		photo.AlbumID, photo.Title, photo.ThumbnailURL, photo.ID,
	)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM photos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return replacedOrNotFound(result)
}
