package moderation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domainMocks "github.com/PolyglAI/PolyglAI/pkg/domain/moderation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRetentionJanitor_Disabled(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	janitor := moderation.NewRetentionJanitor(repo, newTestLogger(), 0)

	assert.False(t, janitor.Enabled())
	deleted, err := janitor.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, deleted)

	// Run returns immediately when disabled
	janitor.Run(context.Background())
	repo.AssertNotCalled(t, "DeleteOlderThan", mock.Anything, mock.Anything)
}

func TestRetentionJanitor_Sweep(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("DeleteOlderThan", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		age := time.Since(cutoff)
		return age > 29*24*time.Hour && age < 31*24*time.Hour
	})).Return(int64(12), nil).Once()

	janitor := moderation.NewRetentionJanitor(repo, newTestLogger(), 30)
	deleted, err := janitor.Sweep(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
}

func TestRetentionJanitor_SweepError(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("DeleteOlderThan", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	janitor := moderation.NewRetentionJanitor(repo, newTestLogger(), 7)
	_, err := janitor.Sweep(context.Background())

	assert.Error(t, err)
}

func TestRetentionJanitor_RunStopsOnCancel(t *testing.T) {
	repo := domainMocks.NewRepository(t)
	repo.On("DeleteOlderThan", mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	janitor := moderation.NewRetentionJanitor(repo, newTestLogger(), 7)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
