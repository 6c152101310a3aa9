package moderation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/PolyglAI/PolyglAI/pkg/domain/telemetry"
	"github.com/PolyglAI/PolyglAI/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize     = 1000
	DefaultRecordTimeout = 10 * time.Second
)

// Dispatcher hands a usage record off for background persistence. Dispatch
// never blocks the caller.
//
//go:generate mockery --name=Dispatcher --dir=. --output=./mocks --filename=dispatcher_mock.go --case=underscore --with-expecter
type Dispatcher interface {
	Dispatch(record *domain.UsageRecord)
}

type Recorder interface {
	Dispatcher
	Record(ctx context.Context, record *domain.UsageRecord) error
	Start(n int)
	Shutdown(ctx context.Context) error
}

type RecorderOption func(*recorder)

func WithViolationCounter(counter domain.ViolationCounter) RecorderOption {
	return func(r *recorder) {
		r.counter = counter
	}
}

func WithEventPublisher(publisher domain.EventPublisher) RecorderOption {
	return func(r *recorder) {
		r.publisher = publisher
	}
}

func WithExporters(exporters ...telemetry.Exporter) RecorderOption {
	return func(r *recorder) {
		r.exporters = append(r.exporters, exporters...)
	}
}

func WithQueueSize(size int) RecorderOption {
	return func(r *recorder) {
		if size > 0 {
			r.queueSize = size
		}
	}
}

func WithRecordTimeout(timeout time.Duration) RecorderOption {
	return func(r *recorder) {
		if timeout > 0 {
			r.recordTimeout = timeout
		}
	}
}

type recorder struct {
	logger        *logrus.Logger
	repo          domain.Repository
	counter       domain.ViolationCounter
	publisher     domain.EventPublisher
	exporters     []telemetry.Exporter
	queueSize     int
	recordTimeout time.Duration

	queue  chan *domain.UsageRecord
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewRecorder(logger *logrus.Logger, repo domain.Repository, opts ...RecorderOption) Recorder {
	ctx, cancel := context.WithCancel(context.Background())
	r := &recorder{
		logger:        logger,
		repo:          repo,
		queueSize:     DefaultQueueSize,
		recordTimeout: DefaultRecordTimeout,
		ctx:           ctx,
		cancel:        cancel,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.queue = make(chan *domain.UsageRecord, r.queueSize)
	return r
}

func (r *recorder) Start(n int) {
	if n <= 0 {
		n = 1
	}
	r.logger.WithField("workers", n).Info("starting usage recorder workers")
	for i := 0; i < n; i++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for record := range r.queue {
				r.process(record)
			}
		}()
	}
}

func (r *recorder) Dispatch(record *domain.UsageRecord) {
	if record == nil {
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.drop(record, "recorder is shut down")
		return
	}
	select {
	case r.queue <- record:
	default:
		r.drop(record, "queue is full")
	}
}

func (r *recorder) drop(record *domain.UsageRecord, why string) {
	prometheus.UsageRecordsDropped.Inc()
	r.logger.WithFields(logrus.Fields{
		"record_id": record.ID,
		"user_id":   record.UserID,
		"context":   record.Context,
	}).Warnf("dropping usage record: %s", why)
}

func (r *recorder) process(record *domain.UsageRecord) {
	if r.ctx.Err() != nil {
		r.drop(record, "recorder context cancelled")
		return
	}
	ctx, cancel := context.WithTimeout(r.ctx, r.recordTimeout)
	defer cancel()
	if err := r.Record(ctx, record); err != nil {
		prometheus.UsageRecordsPersisted.WithLabelValues("failed").Inc()
		r.logger.WithError(err).WithFields(logrus.Fields{
			"record_id": record.ID,
			"user_id":   record.UserID,
			"context":   record.Context,
		}).Error("failed to record profanity usage")
		return
	}
	prometheus.UsageRecordsPersisted.WithLabelValues("saved").Inc()
}

// Record makes a single persistence attempt and then notifies the sinks.
// Only the persistence error is returned.
func (r *recorder) Record(ctx context.Context, record *domain.UsageRecord) error {
	if record == nil {
		return errors.New("usage record is nil")
	}
	if err := r.repo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save usage record: %w", err)
	}

	if r.counter != nil && record.UserID != "" {
		if _, err := r.counter.Increment(ctx, record.UserID); err != nil {
			r.logger.WithError(err).WithField("user_id", record.UserID).
				Warn("failed to increment violation counter")
		}
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, record); err != nil {
			r.logger.WithError(err).WithField("record_id", record.ID).
				Warn("failed to publish moderation event")
		}
	}

	var failedExporters []string
	for _, exporter := range r.exporters {
		if err := exporter.Handle(ctx, record); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"record_id": record.ID,
				"exporter":  exporter.Name(),
			}).Error("exporter failed")
			failedExporters = append(failedExporters, exporter.Name())
		}
	}
	if len(failedExporters) > 0 {
		r.logger.WithField("failedExporters", failedExporters).
			Warnf("%d exporters failed to handle usage record", len(failedExporters))
	}

	return nil
}

// Shutdown stops accepting records and waits for the workers to drain the
// queue. When ctx expires first, in-flight records are cancelled and the
// remainder is dropped.
func (r *recorder) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.logger.Info("shutting down usage recorder workers")

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
	case <-ctx.Done():
		r.cancel()
		<-done
		err = ctx.Err()
	}
	r.cancel()

	for _, exporter := range r.exporters {
		exporter.Close()
	}
	r.logger.Info("usage recorder workers stopped")
	return err
}
