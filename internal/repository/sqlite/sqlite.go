package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/userboard/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle backing the collection store and hands
// out the per-collection repositories.
type DB struct {
	sql *sql.DB
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL gives better concurrent read behavior.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sql)
}

// Close closes the underlying database handle.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) Users() *UserRepository       { return &UserRepository{db: d.sql} }
func (d *DB) Todos() *TodoRepository       { return &TodoRepository{db: d.sql} }
func (d *DB) Posts() *PostRepository       { return &PostRepository{db: d.sql} }
func (d *DB) Comments() *CommentRepository { return &CommentRepository{db: d.sql} }
func (d *DB) Albums() *AlbumRepository     { return &AlbumRepository{db: d.sql} }
func (d *DB) Photos() *PhotoRepository     { return &PhotoRepository{db: d.sql} }
