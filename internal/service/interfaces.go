package service

import (
	"context"

	"github.com/limbo/leetmap/pkg/entity"
)

type CalendarServiceI interface {
	// Fetches the trailing ~364-day submission window for a user, stitching
	// across a year boundary when the window spans one. Fails on any fetch
	// error; no partial result.
	GetCalendarDataset(ctx context.Context, username string) (*entity.CalendarDataset, error)
	// Fetches the window and lays it out as a heatmap grid of weekCount
	// columns anchored at now.
	GetHeatmapGrid(ctx context.Context, username string, weekCount int) (*entity.HeatmapGrid, error)
	// Resolves today's daily-challenge URL. Never fails.
	GetDailyChallengeURL(ctx context.Context) string
}
