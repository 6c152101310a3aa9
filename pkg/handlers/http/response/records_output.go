package response

import (
	"github.com/PolyglAI/PolyglAI/pkg/app/moderation"
	domain "github.com/PolyglAI/PolyglAI/pkg/domain/moderation"
)

type RecordsOutput struct {
	Records []*domain.UsageRecord `json:"records"`
	Count   int                   `json:"count"`
	Limit   int                   `json:"limit"`
}

type HighRiskUsersOutput struct {
	Users     []moderation.HighRiskUser `json:"users"`
	Threshold int                       `json:"threshold"`
	Window    int                       `json:"window"`
	Scanned   int                       `json:"scanned"`
}
