package moderation

import (
	"context"
	"time"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/sirupsen/logrus"
)

const DefaultRetentionInterval = time.Hour

// RetentionJanitor deletes usage records older than the retention window.
// A zero window disables it.
type RetentionJanitor struct {
	repo     domain.Repository
	logger   *logrus.Logger
	window   time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewRetentionJanitor(repo domain.Repository, logger *logrus.Logger, retentionDays int) *RetentionJanitor {
	var window time.Duration
	if retentionDays > 0 {
		window = time.Duration(retentionDays) * 24 * time.Hour
	}
	return &RetentionJanitor{
		repo:     repo,
		logger:   logger,
		window:   window,
		interval: DefaultRetentionInterval,
		now:      time.Now,
	}
}

func (j *RetentionJanitor) Enabled() bool {
	return j.window > 0
}

// Sweep runs a single purge and returns the number of deleted records.
func (j *RetentionJanitor) Sweep(ctx context.Context) (int64, error) {
	if !j.Enabled() {
		return 0, nil
	}
	cutoff := j.now().UTC().Add(-j.window)
	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		j.logger.WithFields(logrus.Fields{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.RFC3339),
		}).Info("expired usage records purged")
	}
	return deleted, nil
}

// Run sweeps once immediately and then on every interval until ctx is done.
func (j *RetentionJanitor) Run(ctx context.Context) {
	if !j.Enabled() {
		j.logger.Info("usage record retention disabled")
		return
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		if _, err := j.Sweep(ctx); err != nil {
			j.logger.WithError(err).Error("failed to purge expired usage records")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
