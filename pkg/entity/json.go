package entity

import (
	"github.com/bytedance/sonic"
)

func sonicMarshal(v any) ([]byte, error) {
	return sonic.ConfigDefault.Marshal(v)
}

// calendarDatasetJSON is the wire shape of CalendarDataset: the day-keyed
// submission map flattens into a sorted-by-nothing object of
// "YYYY-MM-DD" -> count, which is friendlier to consumers than RFC3339 keys.
type calendarDatasetJSON struct {
	Username        string         `json:"username"`
	Streak          int            `json:"streak"`
	TotalActiveDays int            `json:"total_active_days"`
	Submissions     map[string]int `json:"submissions"`
}

func (d CalendarDataset) MarshalJSON() ([]byte, error) {
	out := calendarDatasetJSON{
		Username:        d.Username,
		Streak:          d.Streak,
		TotalActiveDays: d.TotalActiveDays,
		Submissions:     make(map[string]int, len(d.Submissions)),
	}
	for day, count := range d.Submissions {
		out.Submissions[day.Format("2006-01-02")] = count
	}
	return sonicMarshal(out)
}
