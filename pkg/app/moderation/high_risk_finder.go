package moderation

import (
	"context"
	"fmt"
	"sort"
	"time"

	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
	"github.com/sirupsen/logrus"
)

const (
	DefaultHighRiskThreshold = 3
	DefaultHighRiskWindow    = 1000
	MaxHighRiskWindow        = 10000
)

type HighRiskUser struct {
	UserID     string            `json:"user_id"`
	Count      int               `json:"count"`
	LastSeen   time.Time         `json:"last_seen"`
	Categories []domain.Category `json:"categories"`
}

// HighRiskReport carries the flagged users together with the threshold and
// window the scan actually used.
type HighRiskReport struct {
	Users     []HighRiskUser `json:"users"`
	Threshold int            `json:"threshold"`
	Window    int            `json:"window"`
	Scanned   int            `json:"scanned"`
}

//go:generate mockery --name=HighRiskFinder --dir=. --output=./mocks --filename=high_risk_finder_mock.go --case=underscore --with-expecter
type HighRiskFinder interface {
	Find(ctx context.Context, threshold, window int) (*HighRiskReport, error)
}

type highRiskFinder struct {
	repo             domain.Repository
	logger           *logrus.Logger
	defaultThreshold int
	defaultWindow    int
}

func NewHighRiskFinder(
	repo domain.Repository,
	logger *logrus.Logger,
	defaultThreshold int,
	defaultWindow int,
) HighRiskFinder {
	if defaultThreshold <= 0 {
		defaultThreshold = DefaultHighRiskThreshold
	}
	if defaultWindow <= 0 {
		defaultWindow = DefaultHighRiskWindow
	}
	return &highRiskFinder{
		repo:             repo,
		logger:           logger,
		defaultThreshold: defaultThreshold,
		defaultWindow:    defaultWindow,
	}
}

// Find re-scans the most recent window records and returns the users whose
// occurrence count reaches threshold, most violations first. Anonymous
// records are ignored. Non-positive arguments fall back to the defaults.
func (f *highRiskFinder) Find(ctx context.Context, threshold, window int) (*HighRiskReport, error) {
	if threshold <= 0 {
		threshold = f.defaultThreshold
	}
	if window <= 0 {
		window = f.defaultWindow
	}
	if window > MaxHighRiskWindow {
		window = MaxHighRiskWindow
	}

	records, err := f.repo.ListRecent(ctx, window)
	if err != nil {
		f.logger.WithError(err).Error("failed to list recent usage records")
		return nil, fmt.Errorf("failed to list recent usage records: %w", err)
	}

	byUser := make(map[string]*HighRiskUser)
	seenCategory := make(map[string]map[domain.Category]struct{})
	for _, r := range records {
		if r.UserID == "" {
			continue
		}
		u, ok := byUser[r.UserID]
		if !ok {
			u = &HighRiskUser{UserID: r.UserID}
			byUser[r.UserID] = u
			seenCategory[r.UserID] = make(map[domain.Category]struct{})
		}
		u.Count++
		if r.CreatedAt.After(u.LastSeen) {
			u.LastSeen = r.CreatedAt
		}
		if _, seen := seenCategory[r.UserID][r.Category]; !seen && r.Category != "" {
			seenCategory[r.UserID][r.Category] = struct{}{}
			u.Categories = append(u.Categories, r.Category)
		}
	}

	users := make([]HighRiskUser, 0)
	for _, u := range byUser {
		if u.Count >= threshold {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Count != users[j].Count {
			return users[i].Count > users[j].Count
		}
		return users[i].UserID < users[j].UserID
	})

	f.logger.WithFields(logrus.Fields{
		"threshold": threshold,
		"window":    window,
		"scanned":   len(records),
		"flagged":   len(users),
	}).Debug("high risk users computed")

	return &HighRiskReport{
		Users:     users,
		Threshold: threshold,
		Window:    window,
		Scanned:   len(records),
	}, nil
}
