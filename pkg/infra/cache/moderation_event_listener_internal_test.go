package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCloser struct {
	closed atomic.Int32
}

func (c *countingCloser) Close() error {
	c.closed.Add(1)
	return nil
}

func TestCloseOnCancel_ClosesWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	closer := &countingCloser{}

	stop := closeOnCancel(ctx, closer)
	cancel()

	assert.Eventually(t, func() bool { return closer.closed.Load() == 1 }, time.Second, 5*time.Millisecond)
	stop()
}

func TestCloseOnCancel_StopEndsWatchBeforeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	closer := &countingCloser{}

	stop := closeOnCancel(ctx, closer)
	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("watch goroutine still running after stop")
	}
	cancel()
	assert.Equal(t, int32(0), closer.closed.Load())
}
