package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/infra/cache"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationTracker_Increment(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectIncr("violations:user-1").SetVal(3)
	mock.ExpectExpire("violations:user-1", time.Hour).SetVal(true)

	tracker := cache.NewViolationTracker(redisMock, time.Hour)
	count, err := tracker.Increment(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationTracker_Increment_DefaultWindow(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectIncr("violations:user-1").SetVal(1)
	mock.ExpectExpire("violations:user-1", cache.DefaultViolationWindow).SetVal(true)

	tracker := cache.NewViolationTracker(redisMock, 0)
	count, err := tracker.Increment(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationTracker_Increment_Error(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectIncr("violations:user-1").SetErr(errors.New("connection refused"))

	tracker := cache.NewViolationTracker(redisMock, time.Hour)
	_, err := tracker.Increment(context.Background(), "user-1")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViolationTracker_Count(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectGet("violations:user-1").SetVal("7")

	tracker := cache.NewViolationTracker(redisMock, time.Hour)
	count, err := tracker.Count(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestViolationTracker_Count_Missing(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.ExpectGet("violations:nobody").RedisNil()

	tracker := cache.NewViolationTracker(redisMock, time.Hour)
	count, err := tracker.Count(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Zero(t, count)
}
