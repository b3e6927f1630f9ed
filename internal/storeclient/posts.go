package storeclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/msomdec/userboard/internal/domain"
)

// PostsByUser fetches all posts owned by the given user.
func (c *Client) PostsByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.getJSON(ctx, "/posts", ownerQuery(userID), &posts); err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	return posts, nil
}

// Post fetches a single post by id.
func (c *Client) Post(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, fmt.Errorf("fetch post: %w", err)
	}
	return &post, nil
}

// CreatePost stores a new post and returns the created record.
func (c *Client) CreatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var created domain.Post
	if err := c.sendJSON(ctx, "POST", "/posts", post, &created); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost fully replaces the record and returns the store's copy.
func (c *Client) UpdatePost(ctx context.Context, post domain.Post) (*domain.Post, error) {
	var updated domain.Post
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/posts/%d", post.ID), post, &updated); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &updated, nil
}

// DeletePost removes the record by id.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	if err := c.deleteRecord(ctx, fmt.Sprintf("/posts/%d", id)); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// CommentsByPost fetches all comments attached to a post.
func (c *Client) CommentsByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	query := url.Values{"postId": []string{fmt.Sprint(postID)}}
	var comments []domain.Comment
	if err := c.getJSON(ctx, "/comments", query, &comments); err != nil {
		return nil, fmt.Errorf("fetch comments: %w", err)
	}
	return comments, nil
}

// CreateComment stores a new comment and returns the created record.
func (c *Client) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var created domain.Comment
	if err := c.sendJSON(ctx, "POST", "/comments", comment, &created); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if err := requireID(created.ID); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment fully replaces the record and returns the store's copy.
func (c *Client) UpdateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	var updated domain.Comment
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/comments/%d", comment.ID), comment, &updated); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &updated, nil
}

// DeleteComment removes the record by id.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	if err := c.deleteRecord(ctx, fmt.Sprintf("/comments/%d", id)); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
