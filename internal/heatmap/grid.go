package heatmap

import (
	"time"

	"github.com/limbo/leetmap/pkg/datemath"
	"github.com/limbo/leetmap/pkg/entity"
)

// DefaultWeekCount is the rolling window rendered when the caller doesn't ask
// for a specific width.
const DefaultWeekCount = 17

// BuildGrid lays submissions out into exactly weekCount columns of 7 day
// slots each, ending at the week containing anchor. Days after anchor's day
// are absent slots; days with no recorded entry get an explicit zero count.
// The result is fully determined by (submissions, anchor, weekCount).
func BuildGrid(submissions entity.Submissions, anchor time.Time, weekCount int) *entity.HeatmapGrid {
	if weekCount < 1 {
		weekCount = DefaultWeekCount
	}

	today := datemath.StartOfDay(anchor)
	endOfWeek := datemath.StartOfWeek(today)
	gridStart := datemath.AddDays(-7*(weekCount-1), endOfWeek)

	weeks := make([][]entity.DaySlot, 0, weekCount)
	labels := []entity.MonthLabel{}
	lastMonth := -1

	for weekIdx := 0; weekIdx < weekCount; weekIdx++ {
		weekStart := datemath.AddDays(7*weekIdx, gridStart)
		week := make([]entity.DaySlot, 7)

		for dayIdx := 0; dayIdx < 7; dayIdx++ {
			date := datemath.AddDays(dayIdx, weekStart)
			if date.After(today) {
				continue // future day, slot stays absent
			}
			count := submissions[date]
			week[dayIdx] = entity.DaySlot{
				Present: true,
				Submission: entity.DaySubmission{
					Date:      date,
					Count:     count,
					Intensity: Classify(count),
				},
			}
		}
		weeks = append(weeks, week)

		// A label marks every week whose Sunday starts a new month; the first
		// week always qualifies.
		if month := datemath.Month(weekStart); month != lastMonth {
			labels = append(labels, entity.MonthLabel{
				Name:      weekStart.Format("Jan"),
				WeekIndex: weekIdx,
			})
			lastMonth = month
		}
	}

	return &entity.HeatmapGrid{
		Weeks:       weeks,
		MonthLabels: labels,
	}
}
