package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/msomdec/userboard/internal/domain"
	"github.com/msomdec/userboard/internal/storeclient"
)

// Post search keys.
const (
	PostKeyID    = "id"
	PostKeyTitle = "title"
)

// PostService handles the posts screen and its nested comments.
type PostService struct {
	store *storeclient.Client
}

// NewPostService creates a PostService over the given store client.
func NewPostService(store *storeclient.Client) *PostService {
	return &PostService{store: store}
}

// ListForUser fetches all posts owned by the user.
func (s *PostService) ListForUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.store.PostsByUser(ctx, userID)
}

// ResolveUser maps an entered username onto its user record so another
// user's posts can be browsed.
func (s *PostService) ResolveUser(ctx context.Context, username string) (*domain.User, error) {
	return s.store.UserByUsername(ctx, username)
}

// Get fetches a single post for the detail view.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.store.Post(ctx, id)
}

// Create adds a post; title and body are both required.
func (s *PostService) Create(ctx context.Context, userID int64, title, body string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", domain.ErrInvalidInput)
	}
	return s.store.CreatePost(ctx, domain.Post{UserID: userID, Title: title, Body: body})
}

// Update fully replaces the post and returns the store's copy.
func (s *PostService) Update(ctx context.Context, post domain.Post) (*domain.Post, error) {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", domain.ErrInvalidInput)
	}
	return s.store.UpdatePost(ctx, post)
}

// Delete removes the post; an already-gone record counts as deleted.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeletePost(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// Comments fetches all comments attached to a post.
func (s *PostService) Comments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.store.CommentsByPost(ctx, postID)
}

// AddComment attaches a comment authored by the given name/email
// (captured from the current session, not a foreign key).
func (s *PostService) AddComment(ctx context.Context, postID int64, name, email, body string) (*domain.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrInvalidInput)
	}
	return s.store.CreateComment(ctx, domain.Comment{PostID: postID, Name: name, Email: email, Body: body})
}

// UpdateComment fully replaces the comment and returns the store's copy.
func (s *PostService) UpdateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	if strings.TrimSpace(comment.Body) == "" {
		return nil, fmt.Errorf("%w: comment body is required", domain.ErrInvalidInput)
	}
	return s.store.UpdateComment(ctx, comment)
}

// DeleteComment removes the comment; an already-gone record counts as
// deleted.
func (s *PostService) DeleteComment(ctx context.Context, id int64) error {
	if err := s.store.DeleteComment(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// SearchPosts narrows the list by the search criteria. Ids match on
// the decimal string's substring. Title matches are case-insensitive
// substrings, with titles that start with the term sorted first.
func SearchPosts(posts []domain.Post, criteria, term string) []domain.Post {
	term = strings.TrimSpace(term)
	if term == "" {
		return posts
	}

	if criteria == PostKeyID {
		out := make([]domain.Post, 0, len(posts))
		for _, p := range posts {
			if strings.Contains(strconv.FormatInt(p.ID, 10), term) {
				out = append(out, p)
			}
		}
		return out
	}

	lowered := strings.ToLower(term)
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), lowered) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Post) int {
		aStarts := strings.HasPrefix(strings.ToLower(a.Title), lowered)
		bStarts := strings.HasPrefix(strings.ToLower(b.Title), lowered)
		switch {
		case aStarts && !bStarts:
			return -1
		case !aStarts && bStarts:
			return 1
		default:
			return 0
		}
	})
	return out
}
