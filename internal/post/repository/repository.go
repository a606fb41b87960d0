package repository

import (
	"time"

	"pinflow-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *domain.Post) error

	// FindByID finds a post by its ID
	FindByID(id string) (*domain.Post, error)

	// FindByUserID finds all posts for a user, newest first
	FindByUserID(userID string, limit, offset int) ([]*domain.Post, int64, error)

	// Update updates an existing post
	Update(post *domain.Post) error

	// Delete deletes a post by ID
	Delete(id string) error

	// FindDuePosts finds posts that are due for publishing:
	// status = scheduled AND scheduled_at <= now. Result order is
	// whatever the store returns; the publisher preserves it.
	FindDuePosts(now time.Time) ([]*domain.Post, error)

	// ClaimForPublishing atomically transitions a post from scheduled to
	// publishing. Returns false if another invocation already claimed it.
	ClaimForPublishing(id string) (bool, error)

	// MarkPublished records a successful publish
	MarkPublished(id, pinterestPostID string, publishedAt time.Time) error

	// ReleaseWithError returns a claimed post to scheduled and records
	// the failure so the next invocation retries it
	ReleaseWithError(id, message string) error

	// SetPublishError records a failure on a post without touching status
	SetPublishError(id, message string) error
}
