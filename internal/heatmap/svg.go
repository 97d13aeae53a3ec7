package heatmap

import (
	"fmt"
	"strings"

	"github.com/limbo/leetmap/pkg/entity"
)

// SVGOptions configures rendering parameters.
type SVGOptions struct {
	CellSize    int       // size of each day cell (px)
	CellPadding int       // padding between cells (px)
	FontSize    int       // font size for labels (px)
	FontFamily  string    // font family for labels
	Colors      [5]string // one CSS color per intensity bucket
	Title       string    // optional title above the grid
}

// DefaultSVGOptions returns the dark five-color palette, one color per
// intensity bucket from none to extreme.
func DefaultSVGOptions() *SVGOptions {
	return &SVGOptions{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      [5]string{"#1a1e24", "#006d2c", "#26a641", "#3dcc70", "#39f07d"},
	}
}

// RenderSVG returns an SVG document for the grid. Absent (future) slots are
// not drawn at all.
func RenderSVG(grid *entity.HeatmapGrid, opts *SVGOptions) string {
	if opts == nil {
		opts = DefaultSVGOptions()
	}

	weeks := len(grid.Weeks)
	if weeks == 0 {
		return ""
	}

	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	width := weeks*(opts.CellSize+opts.CellPadding) + opts.CellPadding
	height := 7*(opts.CellSize+opts.CellPadding) + opts.CellPadding + opts.FontSize + 4 + titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, opts.Title))
	}

	// month labels above the first week of each month
	monthLabelY := opts.FontSize + titleHeight
	for _, label := range grid.MonthLabels {
		x := opts.CellPadding + label.WeekIndex*(opts.CellSize+opts.CellPadding)
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			x, monthLabelY, label.Name))
	}

	for w, week := range grid.Weeks {
		for i, slot := range week {
			if !slot.Present {
				continue
			}
			day := slot.Submission
			x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
			y := opts.CellPadding + opts.FontSize + 4 + titleHeight + i*(opts.CellSize+opts.CellPadding)
			date := day.Date.Format("2006-01-02")

			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, opts.Colors[int(day.Intensity)], date, day.Count))
			sb.WriteString(fmt.Sprintf(`    <title>%s: %d submissions</title>`+"\n", date, day.Count))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
