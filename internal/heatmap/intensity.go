// Package heatmap turns a day-keyed submission map into a renderable
// GitHub-style week-by-day grid.
package heatmap

import (
	"github.com/limbo/leetmap/pkg/entity"
)

// Classify maps a submission count to its intensity bucket using fixed
// thresholds: 0, 1-2, 3-5, 6-9, 10 and above.
func Classify(count int) entity.Intensity {
	switch {
	case count <= 0:
		return entity.IntensityNone
	case count <= 2:
		return entity.IntensityLow
	case count <= 5:
		return entity.IntensityMedium
	case count <= 9:
		return entity.IntensityHigh
	default:
		return entity.IntensityExtreme
	}
}
