package moderation

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRecordsLimit = 100
	MaxRecordsLimit     = 1000
)

var ErrInvalidCacheType = errors.New("invalid type assertion for usage record")

type UserViolations struct {
	UserID       string                `json:"user_id"`
	RollingCount int64                 `json:"rolling_count"`
	Records      []*domain.UsageRecord `json:"records"`
}

//go:generate mockery --name=RecordFinder --dir=. --output=./mocks --filename=record_finder_mock.go --case=underscore --with-expecter
type RecordFinder interface {
	Find(ctx context.Context, id uuid.UUID) (*domain.UsageRecord, error)
	Recent(ctx context.Context, limit int) ([]*domain.UsageRecord, error)
	ForUser(ctx context.Context, userID string, limit int) (*UserViolations, error)
}

type recordFinder struct {
	repo        domain.Repository
	counter     domain.ViolationCounter
	cache       cache.Client
	memoryCache *cache.TTLMap
	logger      *logrus.Logger
}

func NewRecordFinder(
	repo domain.Repository,
	counter domain.ViolationCounter,
	c cache.Client,
	logger *logrus.Logger,
) RecordFinder {
	return &recordFinder{
		repo:        repo,
		counter:     counter,
		cache:       c,
		memoryCache: c.GetTTLMap(cache.UsageRecordTTLName),
		logger:      logger,
	}
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecordsLimit
	}
	if limit > MaxRecordsLimit {
		return MaxRecordsLimit
	}
	return limit
}

func (f *recordFinder) Find(ctx context.Context, id uuid.UUID) (*domain.UsageRecord, error) {
	if entity, err := f.getFromMemoryCache(id.String()); err == nil {
		return entity, nil
	} else if !errors.Is(err, ErrInvalidCacheType) {
		f.logger.WithError(err).Debug("memory cache read usage record failure")
	}

	if cached, err := f.cache.GetUsageRecord(ctx, id.String()); err == nil && cached != nil {
		f.saveToMemoryCache(cached)
		return cached, nil
	} else if err != nil {
		f.logger.WithError(err).Debug("distributed cache read usage record failure")
	}

	entity, err := f.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f.saveToMemoryCache(entity)
	if err := f.cache.SaveUsageRecord(ctx, entity); err != nil {
		f.logger.WithError(err).Warn("failed to cache usage record")
	}
	return entity, nil
}

func (f *recordFinder) Recent(ctx context.Context, limit int) ([]*domain.UsageRecord, error) {
	records, err := f.repo.ListRecent(ctx, ClampLimit(limit))
	if err != nil {
		f.logger.WithError(err).Error("failed to list recent usage records")
		return nil, fmt.Errorf("failed to list recent usage records: %w", err)
	}
	return records, nil
}

func (f *recordFinder) ForUser(ctx context.Context, userID string, limit int) (*UserViolations, error) {
	records, err := f.repo.ListByUser(ctx, userID, ClampLimit(limit))
	if err != nil {
		f.logger.WithError(err).WithField("user_id", userID).Error("failed to list user usage records")
		return nil, fmt.Errorf("failed to list usage records for user: %w", err)
	}

	result := &UserViolations{UserID: userID, Records: records}
	if f.counter != nil {
		count, err := f.counter.Count(ctx, userID)
		if err != nil {
			f.logger.WithError(err).WithField("user_id", userID).Warn("failed to read violation counter")
		}
		result.RollingCount = count
	}
	return result, nil
}

func (f *recordFinder) getFromMemoryCache(key string) (*domain.UsageRecord, error) {
	if f.memoryCache == nil {
		return nil, errors.New("memory cache not configured")
	}
	value, ok := f.memoryCache.Get(key)
	if !ok {
		return nil, fmt.Errorf("usage record %s not found in memory cache", key)
	}
	record, ok := value.(*domain.UsageRecord)
	if !ok {
		return nil, ErrInvalidCacheType
	}
	return record, nil
}

func (f *recordFinder) saveToMemoryCache(record *domain.UsageRecord) {
	if f.memoryCache == nil {
		return
	}
	f.memoryCache.Set(record.ID.String(), record)
}
