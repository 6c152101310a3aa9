package moderation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domainMocks "github.com/PolyglAI/PolyglAI/pkg/domain/moderation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(userID string, category domain.Category, at time.Time) *domain.UsageRecord {
	r := domain.NewUsageRecord("text", domain.ContextTranslation, "en", []string{"x"}, category, userID)
	r.CreatedAt = at
	return r
}

func TestHighRiskFinder_Find(t *testing.T) {
	now := time.Now().UTC()
	records := []*domain.UsageRecord{
		recordAt("alice", domain.CategoryProfanity, now),
		recordAt("bob", domain.CategoryViolence, now.Add(-time.Minute)),
		recordAt("alice", domain.CategoryViolence, now.Add(-2*time.Minute)),
		recordAt("", domain.CategoryProfanity, now.Add(-3*time.Minute)),
		recordAt("", domain.CategoryProfanity, now.Add(-4*time.Minute)),
		recordAt("", domain.CategoryProfanity, now.Add(-5*time.Minute)),
		recordAt("alice", domain.CategoryProfanity, now.Add(-6*time.Minute)),
		recordAt("carol", domain.CategoryDrugs, now.Add(-7*time.Minute)),
		recordAt("bob", domain.CategoryViolence, now.Add(-8*time.Minute)),
	}
	repo := domainMocks.NewRepository(t)
	repo.On("ListRecent", context.Background(), 50).Return(records, nil).Once()

	finder := moderation.NewHighRiskFinder(repo, newTestLogger(), 3, 1000)
	report, err := finder.Find(context.Background(), 2, 50)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Threshold)
	assert.Equal(t, 50, report.Window)
	assert.Equal(t, len(records), report.Scanned)
	users := report.Users
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].UserID)
	assert.Equal(t, 3, users[0].Count)
	assert.Equal(t, now, users[0].LastSeen)
	assert.Equal(t, []domain.Category{domain.CategoryProfanity, domain.CategoryViolence}, users[0].Categories)
	assert.Equal(t, "bob", users[1].UserID)
	assert.Equal(t, 2, users[1].Count)
}

func TestHighRiskFinder_Defaults(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("ListRecent", context.Background(), moderation.DefaultHighRiskWindow).
		Return([]*domain.UsageRecord{
			recordAt("alice", domain.CategoryProfanity, time.Now()),
			recordAt("alice", domain.CategoryProfanity, time.Now()),
		}, nil).Once()

	finder := moderation.NewHighRiskFinder(repo, newTestLogger(), 0, 0)
	report, err := finder.Find(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.NotNil(t, report.Users)
	assert.Empty(t, report.Users)
	assert.Equal(t, moderation.DefaultHighRiskThreshold, report.Threshold)
	assert.Equal(t, moderation.DefaultHighRiskWindow, report.Window)
	assert.Equal(t, 2, report.Scanned)
}

func TestHighRiskFinder_WindowCapped(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("ListRecent", context.Background(), moderation.MaxHighRiskWindow).
		Return([]*domain.UsageRecord{}, nil).Once()

	finder := moderation.NewHighRiskFinder(repo, newTestLogger(), 3, 1000)
	report, err := finder.Find(context.Background(), 3, 1_000_000)

	require.NoError(t, err)
	assert.Equal(t, moderation.MaxHighRiskWindow, report.Window)
}

func TestHighRiskFinder_RepositoryError(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("ListRecent", context.Background(), 1000).Return(nil, errors.New("db down")).Once()

	finder := moderation.NewHighRiskFinder(repo, newTestLogger(), 3, 1000)
	report, err := finder.Find(context.Background(), 3, 1000)

	assert.Nil(t, report)
	assert.ErrorContains(t, err, "db down")
}
