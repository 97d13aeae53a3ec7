package entity

import (
	"fmt"
	"strings"
	"time"
)

// Submissions maps a day to the number of submissions recorded on it.
// Keys must be normalized with datemath.StartOfDay (UTC midnight), so two
// timestamps on the same calendar day always collide on the same key.
// A zero count is a real entry reported by LeetCode; a missing key means
// "no data for that day".
type Submissions map[time.Time]int

// CalendarDataset is one fetched window of a user's submission history.
// It is built fresh per fetch and never mutated afterwards.
type CalendarDataset struct {
	Username        string
	Streak          int
	TotalActiveDays int
	Submissions     Submissions
}

// YearCalendar is the decoded result of a single userProfileCalendar query.
type YearCalendar struct {
	Streak          int
	TotalActiveDays int
	Submissions     Submissions
}

// Intensity is the visual-weight bucket derived from a day's submission count.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
	IntensityExtreme
)

var intensityNames = [...]string{"none", "low", "medium", "high", "extreme"}

func (i Intensity) String() string {
	if i < IntensityNone || i > IntensityExtreme {
		return "none"
	}
	return intensityNames[i]
}

func (i Intensity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Intensity) UnmarshalJSON(b []byte) error {
	name := strings.Trim(string(b), `"`)
	for idx, known := range intensityNames {
		if known == name {
			*i = Intensity(idx)
			return nil
		}
	}
	return fmt.Errorf("unknown intensity %q", name)
}

// DaySubmission is one rendered day cell: a date, its count and the derived
// intensity bucket.
type DaySubmission struct {
	Date      time.Time `json:"date"`
	Count     int       `json:"count"`
	Intensity Intensity `json:"intensity"`
}

// DaySlot is one slot of a week column. Present is false for days that lie
// strictly in the future relative to the grid's anchor date; such slots carry
// no submission, not even a zero one.
type DaySlot struct {
	Present    bool
	Submission DaySubmission
}

// MarshalJSON serializes an absent slot as null and a present one as its
// submission object.
func (s DaySlot) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	return sonicMarshal(s.Submission)
}

// MonthLabel marks the first week column in which a new calendar month begins.
type MonthLabel struct {
	Name      string `json:"name"`
	WeekIndex int    `json:"week_index"`
}

// HeatmapGrid is a fixed-size week-by-day grid: exactly len(Weeks) columns of
// exactly 7 slots each (index 0 = Sunday), regardless of data sparsity.
type HeatmapGrid struct {
	Weeks       [][]DaySlot  `json:"weeks"`
	MonthLabels []MonthLabel `json:"month_labels"`
}
