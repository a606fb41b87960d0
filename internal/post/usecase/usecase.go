package usecase

import (
	"pinflow-backend/internal/post/domain"
)

// PostUsecase defines the interface for post business logic
type PostUsecase interface {
	// CreatePost creates a new post; status is derived from the presence
	// of a scheduled date
	CreatePost(userID string, req PostCreateRequest) (*domain.Post, error)

	// GetPostByID retrieves a post by ID (with ownership check)
	GetPostByID(userID, postID string) (*domain.Post, error)

	// GetUserPosts retrieves all posts for a user, newest first
	GetUserPosts(userID string, limit, offset int) ([]*domain.Post, int64, error)

	// UpdatePost updates an existing post and recomputes its status
	UpdatePost(userID, postID string, updates PostUpdateRequest) (*domain.Post, error)

	// DeletePost deletes a post at any status
	DeletePost(userID, postID string) error
}

// PostCreateRequest represents the fields for creating a post
type PostCreateRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Link          string   `json:"link"`
	Hashtags      []string `json:"hashtags"`
	ImageData     string   `json:"image_data"`
	ScheduledDate *string  `json:"scheduled_date"`
}

// PostUpdateRequest represents the fields that can be updated
type PostUpdateRequest struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Link          *string   `json:"link,omitempty"`
	Hashtags      *[]string `json:"hashtags,omitempty"`
	ImageData     *string   `json:"image_data,omitempty"`
	ScheduledDate *string   `json:"scheduled_date,omitempty"` // empty string clears the schedule
}
