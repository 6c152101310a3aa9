package repository

import (
	"context"
	"errors"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/domain"
	"github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type usageRecordRepository struct {
	db *gorm.DB
}

func NewUsageRecordRepository(db *gorm.DB) moderation.Repository {
	return &usageRecordRepository{
		db: db,
	}
}

func (r *usageRecordRepository) Save(ctx context.Context, record *moderation.UsageRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *usageRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*moderation.UsageRecord, error) {
	var record moderation.UsageRecord
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("usage_record", id)
		}
		return nil, err
	}
	return &record, nil
}

func (r *usageRecordRepository) ListRecent(ctx context.Context, limit int) ([]*moderation.UsageRecord, error) {
	records := make([]*moderation.UsageRecord, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *usageRecordRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*moderation.UsageRecord, error) {
	records := make([]*moderation.UsageRecord, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *usageRecordRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&moderation.UsageRecord{})
	return result.RowsAffected, result.Error
}
