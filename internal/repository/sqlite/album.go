package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userboard/internal/domain"
)

// AlbumRepository implements domain.AlbumRepository using SQLite.
type AlbumRepository struct {
	db *sql.DB
}

var albumColumns = map[string]column{
	"id":     {"id", colInt},
	"userId": {"user_id", colInt},
	"title":  {"title", colText},
}

func (r *AlbumRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Album, error) {
	clauses, args, err := listClauses(albumColumns, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, title FROM albums"+clauses, args...)
	if err != nil {
		return nil, fmt.Errorf("query albums: %w", err)
	}
	defer rows.Close()

	albums := []domain.Album{}
	for rows.Next() {
		var a domain.Album
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

func (r *AlbumRepository) Get(ctx context.Context, id int64) (*domain.Album, error) {
	a := &domain.Album{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, title FROM albums WHERE id = ?", id,
	).Scan(&a.ID, &a.UserID, &a.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query album by id: %w", err)
	}
	return a, nil
}

func (r *AlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO albums (user_id, title) VALUES (?, ?)",
		album.UserID, album.Title,
	)
	if err != nil {
		return fmt.Errorf("insert album: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	album.ID = id
	return nil
}

func (r *AlbumRepository) Replace(ctx context.Context, album *domain.Album) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE albums SET user_id = ?, title = ? WHERE id = ?",
		album.UserID, album.Title, album.ID,
	)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return replacedOrNotFound(result)
}

func (r *AlbumRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return replacedOrNotFound(result)
}
