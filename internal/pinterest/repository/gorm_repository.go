package repository

import (
	"time"

	"pinflow-backend/internal/pinterest/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAPICallLogRepository implements APICallLogRepository using GORM
type gormAPICallLogRepository struct {
	db *gorm.DB
}

// NewGormAPICallLogRepository creates a new GORM-based APICallLogRepository
func NewGormAPICallLogRepository(db *gorm.DB) APICallLogRepository {
	return &gormAPICallLogRepository{db: db}
}

func (r *gormAPICallLogRepository) Append(entry *domain.APICallLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *gormAPICallLogRepository) CountPinCreations(userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.APICallLog{}).
		Where("user_id = ? AND endpoint = ? AND created_at >= ?", userID, domain.EndpointPins, since).
		Count(&count).Error
	return count, err
}
