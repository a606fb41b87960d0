package usecase

import (
	"errors"
	"strings"
	"time"

	"pinflow-backend/internal/post/domain"
	"pinflow-backend/internal/post/repository"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRescheduleAfterPublish rejects scheduled-date edits on published
	// posts so an edit can never regress them back to scheduled.
	ErrRescheduleAfterPublish = errors.New("cannot reschedule a published post")
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
	}
}

func (u *postUsecase) CreatePost(userID string, req PostCreateRequest) (*domain.Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("title is required")
	}

	post := &domain.Post{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Hashtags:    domain.DedupeHashtags(req.Hashtags),
		ImageData:   req.ImageData,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if req.ScheduledDate != nil && *req.ScheduledDate != "" {
		t, err := time.Parse(time.RFC3339, *req.ScheduledDate)
		if err != nil {
			return nil, errors.New("invalid scheduled_date, expected RFC3339")
		}
		post.ScheduledAt = &t
	}

	post.Status = domain.StatusForSchedule(post.ScheduledAt)

	if err := u.postRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (u *postUsecase) GetPostByID(userID, postID string) (*domain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrUnauthorized
	}
	return post, nil
}

func (u *postUsecase) GetUserPosts(userID string, limit, offset int) ([]*domain.Post, int64, error) {
	return u.postRepo.FindByUserID(userID, limit, offset)
}

func (u *postUsecase) UpdatePost(userID, postID string, updates PostUpdateRequest) (*domain.Post, error) {
	post, err := u.GetPostByID(userID, postID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		if strings.TrimSpace(*updates.Title) == "" {
			return nil, errors.New("title is required")
		}
		post.Title = *updates.Title
	}
	if updates.Description != nil {
		post.Description = *updates.Description
	}
	if updates.Link != nil {
		post.Link = *updates.Link
	}
	if updates.Hashtags != nil {
		post.Hashtags = domain.DedupeHashtags(*updates.Hashtags)
	}
	if updates.ImageData != nil {
		post.ImageData = *updates.ImageData
	}
	if updates.ScheduledDate != nil {
		if post.Status == domain.PostStatusPublished {
			return nil, ErrRescheduleAfterPublish
		}
		if *updates.ScheduledDate == "" {
			post.ScheduledAt = nil
		} else {
			t, err := time.Parse(time.RFC3339, *updates.ScheduledDate)
			if err != nil {
				return nil, errors.New("invalid scheduled_date, expected RFC3339")
			}
			post.ScheduledAt = &t
		}
	}

	// Status follows the scheduled date, except for published posts
	// which a content edit must never regress.
	if post.Status != domain.PostStatusPublished {
		post.Status = domain.StatusForSchedule(post.ScheduledAt)
	}

	post.UpdatedAt = time.Now()
	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (u *postUsecase) DeletePost(userID, postID string) error {
	post, err := u.GetPostByID(userID, postID)
	if err != nil {
		return err
	}
	return u.postRepo.Delete(post.ID)
}
