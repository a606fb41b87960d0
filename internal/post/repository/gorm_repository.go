package repository

import (
	"errors"
	"time"

	"pinflow-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPostRepository implements PostRepository using GORM
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based PostRepository
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.Create(post).Error
}

func (r *gormPostRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *gormPostRepository) FindByUserID(userID string, limit, offset int) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.Model(&domain.Post{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&posts).Error

	return posts, total, err
}

func (r *gormPostRepository) Update(post *domain.Post) error {
	post.UpdatedAt = time.Now()
	return r.db.Save(post).Error
}

func (r *gormPostRepository) Delete(id string) error {
	return r.db.Delete(&domain.Post{}, "id = ?", id).Error
}

func (r *gormPostRepository) FindDuePosts(now time.Time) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Where("status = ? AND scheduled_at <= ?",
		domain.PostStatusScheduled, now).Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) ClaimForPublishing(id string) (bool, error) {
	result := r.db.Model(&domain.Post{}).
		Where("id = ? AND status = ?", id, domain.PostStatusScheduled).
		Updates(map[string]interface{}{
			"status":     domain.PostStatusPublishing,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *gormPostRepository) MarkPublished(id, pinterestPostID string, publishedAt time.Time) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":            domain.PostStatusPublished,
			"pinterest_post_id": pinterestPostID,
			"published_at":      publishedAt,
			"publish_error":     "",
			"updated_at":        time.Now(),
		}).Error
}

func (r *gormPostRepository) ReleaseWithError(id, message string) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        domain.PostStatusScheduled,
			"publish_error": message,
			"updated_at":    time.Now(),
		}).Error
}

func (r *gormPostRepository) SetPublishError(id, message string) error {
	return r.db.Model(&domain.Post{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"publish_error": message,
			"updated_at":    time.Now(),
		}).Error
}
