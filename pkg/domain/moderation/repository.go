package moderation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, record *UsageRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*UsageRecord, error)
	// ListRecent returns at most limit records, newest first.
	ListRecent(ctx context.Context, limit int) ([]*UsageRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*UsageRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

//go:generate mockery --name=ViolationCounter --dir=. --output=./mocks --filename=violation_counter_mock.go --case=underscore --with-expecter
type ViolationCounter interface {
	Increment(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context, userID string) (int64, error)
}

//go:generate mockery --name=EventPublisher --dir=. --output=./mocks --filename=event_publisher_mock.go --case=underscore --with-expecter
type EventPublisher interface {
	Publish(ctx context.Context, record *UsageRecord) error
}
