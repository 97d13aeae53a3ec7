package service

import (
	"context"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/internal/heatmap"
	"github.com/limbo/leetmap/internal/leetcode"
	"github.com/limbo/leetmap/pkg/datemath"
	"github.com/limbo/leetmap/pkg/entity"
)

// windowDays is the rolling history window: 52 whole weeks ending today.
const windowDays = 364

type fetchRequest struct {
	Username string `validate:"required,max=30,leetcode_username"`
}

// CalendarService stitches one or two per-year calendar fetches into the
// rolling-window dataset. It holds no mutable state; concurrent calls are
// independent (same-username calls are not deduplicated here).
type CalendarService struct {
	client leetcode.ClientI
	now    func() time.Time
}

func NewCalendarService(client leetcode.ClientI) *CalendarService {
	return NewCalendarServiceWithClock(client, time.Now)
}

// NewCalendarServiceWithClock injects the clock the rolling window is
// anchored to. Tests pin it; production uses time.Now.
func NewCalendarServiceWithClock(client leetcode.ClientI, clock func() time.Time) *CalendarService {
	if client == nil {
		log.Fatal("on calendar service provided nil leetcode client")
	}
	if clock == nil {
		clock = time.Now
	}
	return &CalendarService{
		client: client,
		now:    clock,
	}
}

func (serv *CalendarService) GetCalendarDataset(ctx context.Context, username string) (*entity.CalendarDataset, error) {
	if err := validate.Struct(&fetchRequest{Username: username}); err != nil {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidUsername, username)
	}

	now := serv.now()
	currentYear := datemath.Year(now)

	// The current year is the mandatory fetch; its streak and active-day
	// stats are the ones surfaced regardless of what else gets fetched.
	current, err := serv.client.FetchYearCalendar(ctx, username, currentYear)
	if err != nil {
		return nil, fmt.Errorf("fetching current year: %w", err)
	}

	submissions := current.Submissions
	windowStart := datemath.AddDays(-windowDays, now)
	if startYear := datemath.Year(windowStart); startYear < currentYear {
		previous, err := serv.client.FetchYearCalendar(ctx, username, startYear)
		if err != nil {
			// total-or-nothing: a missing left edge would render as weeks of
			// fake idle days, so the whole call fails instead
			return nil, fmt.Errorf("fetching year %d: %w", startYear, err)
		}
		merged := make(entity.Submissions, len(previous.Submissions)+len(current.Submissions))
		for day, count := range previous.Submissions {
			merged[day] = count
		}
		// current-year entries win on any date collision
		for day, count := range current.Submissions {
			merged[day] = count
		}
		submissions = merged
	}

	return &entity.CalendarDataset{
		Username:        username,
		Streak:          current.Streak,
		TotalActiveDays: current.TotalActiveDays,
		Submissions:     submissions,
	}, nil
}

func (serv *CalendarService) GetHeatmapGrid(ctx context.Context, username string, weekCount int) (*entity.HeatmapGrid, error) {
	dataset, err := serv.GetCalendarDataset(ctx, username)
	if err != nil {
		return nil, err
	}
	return heatmap.BuildGrid(dataset.Submissions, serv.now(), weekCount), nil
}

func (serv *CalendarService) GetDailyChallengeURL(ctx context.Context) string {
	return serv.client.FetchDailyChallengeURL(ctx)
}
