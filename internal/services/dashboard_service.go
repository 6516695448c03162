package services

import (
	"context"
	"encoding/json"
	"time"

	"amc-backend/internal/cache"
	"amc-backend/internal/repositories"
)

type DashboardService struct {
	Repo *repositories.DashboardRepository
}

func NewDashboardService(repo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

type dashboardPayload struct {
	Stats           interface{}    `json:"stats"`
	StatusBreakdown map[string]int `json:"statusBreakdown"`
}

const dashboardCacheKey = "dashboard:summary"

// Summary returns the dashboard counters. The result is cached briefly since
// the dashboard is the most hit screen and exact freshness does not matter.
func (s *DashboardService) Summary(ctx context.Context) (json.RawMessage, error) {
	if data, ok := cache.GetCached(ctx, dashboardCacheKey); ok {
		return data, nil
	}

	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.Repo.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(dashboardPayload{Stats: stats, StatusBreakdown: breakdown})
	if err != nil {
		return nil, err
	}
	cache.SetCached(ctx, dashboardCacheKey, data, 2*time.Minute)
	return data, nil
}
