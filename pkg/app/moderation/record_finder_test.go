package moderation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domainErrors "github.com/PolyglAI/PolyglAI/pkg/domain"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	domainMocks "github.com/PolyglAI/PolyglAI/pkg/domain/moderation/mocks"
	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCacheClient(t *testing.T) (cache.Client, redismock.ClientMock) {
	t.Helper()
	redisClient, redisMock := redismock.NewClientMock()
	c := cache.NewClientFromRedis(redisClient)
	c.CreateTTLMap(cache.UsageRecordTTLName, time.Minute)
	return c, redisMock
}

func TestRecordFinder_Find_RepositoryThenMemory(t *testing.T) {
	c, redisMock := newCacheClient(t)
	record := newRecord("user-1")
	key := fmt.Sprintf(cache.UsageRecordKeyPattern, record.ID.String())
	redisMock.ExpectGet(key).RedisNil()

	repo := domainMocks.NewRepository(t)
	repo.On("GetByID", mock.Anything, record.ID).Return(record, nil).Once()

	finder := moderation.NewRecordFinder(repo, nil, c, newTestLogger())

	got, err := finder.Find(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// second lookup is served from the in-process cache
	got, err = finder.Find(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestRecordFinder_Find_NotFound(t *testing.T) {
	c, redisMock := newCacheClient(t)
	record := newRecord("user-1")
	redisMock.ExpectGet(fmt.Sprintf(cache.UsageRecordKeyPattern, record.ID.String())).RedisNil()

	repo := domainMocks.NewRepository(t)
	repo.On("GetByID", mock.Anything, record.ID).
		Return(nil, domainErrors.NewNotFoundError("UsageRecord", record.ID)).Once()

	finder := moderation.NewRecordFinder(repo, nil, c, newTestLogger())
	_, err := finder.Find(context.Background(), record.ID)

	assert.True(t, errors.Is(err, domainErrors.ErrEntityNotFound))
}

func TestRecordFinder_Recent_ClampsLimit(t *testing.T) {
	c, _ := newCacheClient(t)
	repo := domainMocks.NewRepository(t)
	repo.On("ListRecent", mock.Anything, moderation.DefaultRecordsLimit).Return([]*domain.UsageRecord{}, nil).Once()
	repo.On("ListRecent", mock.Anything, moderation.MaxRecordsLimit).Return([]*domain.UsageRecord{}, nil).Once()

	finder := moderation.NewRecordFinder(repo, nil, c, newTestLogger())

	_, err := finder.Recent(context.Background(), 0)
	require.NoError(t, err)
	_, err = finder.Recent(context.Background(), 5000)
	require.NoError(t, err)
}

func TestRecordFinder_ForUser(t *testing.T) {
	c, _ := newCacheClient(t)
	records := []*domain.UsageRecord{newRecord("user-1"), newRecord("user-1")}
	repo := domainMocks.NewRepository(t)
	repo.On("ListByUser", mock.Anything, "user-1", 10).Return(records, nil).Once()
	counter := domainMocks.NewViolationCounter(t)
	counter.On("Count", mock.Anything, "user-1").Return(int64(4), nil).Once()

	finder := moderation.NewRecordFinder(repo, counter, c, newTestLogger())
	result, err := finder.ForUser(context.Background(), "user-1", 10)

	require.NoError(t, err)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, int64(4), result.RollingCount)
	assert.Len(t, result.Records, 2)
}

func TestRecordFinder_ForUser_CounterErrorIgnored(t *testing.T) {
	c, _ := newCacheClient(t)
	repo := domainMocks.NewRepository(t)
	repo.On("ListByUser", mock.Anything, "user-1", moderation.DefaultRecordsLimit).
		Return([]*domain.UsageRecord{}, nil).Once()
	counter := domainMocks.NewViolationCounter(t)
	counter.On("Count", mock.Anything, "user-1").Return(int64(0), errors.New("redis down")).Once()

	finder := moderation.NewRecordFinder(repo, counter, c, newTestLogger())
	result, err := finder.ForUser(context.Background(), "user-1", 0)

	require.NoError(t, err)
	assert.Zero(t, result.RollingCount)
}
