package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/internal/leetcode"
	"github.com/limbo/leetmap/internal/service"
	"github.com/limbo/leetmap/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type mockState int

const (
	stateSuccess mockState = iota
	stateCurrentYearError
	statePreviousYearError
)

type clientMock struct {
	state mockState
	calls []int // fetched years in order
}

// Variables for tests
var (
	// 2024-06-15 12:00 UTC; windowStart lands in 2023
	midJune = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	// 2024-12-31; windowStart stays inside 2024
	endOfYear = time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)

	collisionDay = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	currentOnly  = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	previousOnly = time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)
)

func (cm *clientMock) FetchYearCalendar(ctx context.Context, username string, year int) (*entity.YearCalendar, error) {
	cm.calls = append(cm.calls, year)
	switch {
	case cm.state == stateCurrentYearError && year == 2024:
		return nil, errorvalues.ErrInvalidResponse
	case cm.state == statePreviousYearError && year == 2023:
		return nil, errorvalues.ErrInvalidResponse
	case year == 2024:
		return &entity.YearCalendar{
			Streak:          5,
			TotalActiveDays: 42,
			Submissions: entity.Submissions{
				collisionDay: 2,
				currentOnly:  7,
			},
		}, nil
	default:
		return &entity.YearCalendar{
			Streak:          99, // must be discarded in favor of the current year's
			TotalActiveDays: 300,
			Submissions: entity.Submissions{
				collisionDay: 5,
				previousOnly: 1,
			},
		}, nil
	}
}

func (cm *clientMock) FetchDailyChallengeURL(ctx context.Context) string {
	return "https://leetcode.com/problems/two-sum/"
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetCalendarDataset(t *testing.T) {
	ctx := context.Background()
	t.Run("merges across the year boundary", func(t *testing.T) {
		mock := &clientMock{}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(midJune))

		ds, err := s.GetCalendarDataset(ctx, "alice")
		require.NoError(t, err)

		assert.Equal(t, []int{2024, 2023}, mock.calls, "current year first, then the window's start year")
		assert.Equal(t, "alice", ds.Username)
		assert.Equal(t, 5, ds.Streak)
		assert.Equal(t, 42, ds.TotalActiveDays)
		assert.Equal(t, entity.Submissions{
			collisionDay: 2, // current-year entry wins the collision
			currentOnly:  7,
			previousOnly: 1,
		}, ds.Submissions)
	})
	t.Run("single fetch when the window stays in one year", func(t *testing.T) {
		mock := &clientMock{}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(endOfYear))

		ds, err := s.GetCalendarDataset(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []int{2024}, mock.calls)
		assert.Equal(t, entity.Submissions{
			collisionDay: 2,
			currentOnly:  7,
		}, ds.Submissions)
	})
	t.Run("current year failure propagates", func(t *testing.T) {
		mock := &clientMock{state: stateCurrentYearError}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(midJune))

		_, err := s.GetCalendarDataset(ctx, "alice")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidResponse)
	})
	t.Run("previous year failure propagates, no partial result", func(t *testing.T) {
		mock := &clientMock{state: statePreviousYearError}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(midJune))

		ds, err := s.GetCalendarDataset(ctx, "alice")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidResponse)
		assert.Nil(t, ds)
	})
	t.Run("invalid username", func(t *testing.T) {
		mock := &clientMock{}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(midJune))

		for _, name := range []string{"", "-alice", "_alice", "al ice", "way_too_long_to_be_a_real_leetcode_username"} {
			_, err := s.GetCalendarDataset(ctx, name)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidUsername, "username %q", name)
		}
		assert.Empty(t, mock.calls, "nothing should be fetched for invalid usernames")
	})
	t.Run("leading digits and inner separators are valid", func(t *testing.T) {
		mock := &clientMock{}
		s := service.NewCalendarServiceWithClock(mock, fixedClock(endOfYear))

		for _, name := range []string{"alice", "0xAlice", "al-ice", "al_ice"} {
			_, err := s.GetCalendarDataset(ctx, name)
			assert.NoError(t, err, "username %q", name)
		}
	})
}

func TestGetHeatmapGrid(t *testing.T) {
	mock := &clientMock{}
	s := service.NewCalendarServiceWithClock(mock, fixedClock(midJune))

	grid, err := s.GetHeatmapGrid(context.Background(), "alice", 17)
	require.NoError(t, err)
	require.Len(t, grid.Weeks, 17)
	for _, week := range grid.Weeks {
		assert.Len(t, week, 7)
	}
}

func TestGetDailyChallengeURL(t *testing.T) {
	s := service.NewCalendarServiceWithClock(&clientMock{}, fixedClock(midJune))
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", s.GetDailyChallengeURL(context.Background()))
}

// End to end through the real client against a mocked endpoint.
func TestGetCalendarDatasetEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"matchedUser":{"userCalendar":{"streak":5,"totalActiveDays":42,"submissionCalendar":"{\"1704067200\":3}"}}}}`))
	}))
	defer srv.Close()

	client := leetcode.NewClient(srv.Client(), srv.URL)
	// 2024-01-07: the window reaches back into 2023, so both years are
	// served the same body by the stub
	anchor := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	s := service.NewCalendarServiceWithClock(client, fixedClock(anchor))

	ds, err := s.GetCalendarDataset(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Streak)
	assert.Equal(t, 42, ds.TotalActiveDays)
	assert.Equal(t, 3, ds.Submissions[time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)])

	grid, err := s.GetHeatmapGrid(context.Background(), "alice", 17)
	require.NoError(t, err)
	require.Len(t, grid.Weeks, 17)

	// the grid's last week starts on the anchor Sunday (Jan 7), so Monday
	// Jan 1 sits in the week before it
	slot := grid.Weeks[15][1]
	require.True(t, slot.Present)
	assert.Equal(t, 3, slot.Submission.Count)
	assert.Equal(t, entity.IntensityMedium, slot.Submission.Intensity)
}
