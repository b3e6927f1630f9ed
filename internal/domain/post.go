package domain

import "context"

// Post is a blog-style entry owned by a user.
type Post struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Comment hangs off a post. It does not reference a user record; the
// author name and email are free text captured at creation time.
type Comment struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// PostRepository defines persistence operations for the posts
// collection of the store.
type PostRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Create(ctx context.Context, post *Post) error
	Replace(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines persistence operations for the comments
// collection of the store.
type CommentRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Comment, error)
	Get(ctx context.Context, id int64) (*Comment, error)
	Create(ctx context.Context, comment *Comment) error
	Replace(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) error
}
