// Package classify maps numeric metric values to display colors via an
// ordered band table.
package classify

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rf/internal/metrics"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorHealthy  lipgloss.Color = "2" // Green
	ColorWarning  lipgloss.Color = "3" // Yellow
	ColorCritical lipgloss.Color = "1" // Red
	ColorNeutral  lipgloss.Color = "7" // White/default
)

// Band maps the half-open value range [Lo, Hi) to a color.
// A Hi of +Inf marks the final, unbounded band.
type Band struct {
	Lo    float64
	Hi    float64
	Color lipgloss.Color
}

// Bands is an ordered band table covering the full number line.
type Bands []Band

// FromThresholds builds the standard three-band table from a warning and
// critical cutoff: below warning is healthy, [warning, critical) is warning,
// and critical upward is critical.
func FromThresholds(warning, critical int) Bands {
	return Bands{
		{Lo: math.Inf(-1), Hi: float64(warning), Color: ColorHealthy},
		{Lo: float64(warning), Hi: float64(critical), Color: ColorWarning},
		{Lo: float64(critical), Hi: math.Inf(1), Color: ColorCritical},
	}
}

// Classify returns the color for value. Bands are checked in order and the
// first containing band wins: the lower bound is inclusive, the upper bound
// exclusive, and the final band is unbounded above. Classify is total —
// non-finite values and values outside every band map to the neutral color,
// never an error.
func Classify(value float64, bands Bands) lipgloss.Color {
	if math.IsNaN(value) {
		return ColorNeutral
	}
	for i, b := range bands {
		if value >= b.Lo && (value < b.Hi || (i == len(bands)-1 && math.IsInf(b.Hi, 1))) {
			return b.Color
		}
	}
	return ColorNeutral
}

// Classifier holds the band tables for each metric class.
type Classifier struct {
	Usage Bands
	Temp  Bands
}

// ForMetric returns the display color for a metric. Text metrics and
// sentinel values are neutral.
func (c Classifier) ForMetric(m metrics.Metric) lipgloss.Color {
	if !m.Available {
		return ColorNeutral
	}
	switch m.Kind {
	case metrics.KindUsage:
		return Classify(m.Percent, c.Usage)
	case metrics.KindTemp:
		return Classify(m.Percent, c.Temp)
	default:
		return ColorNeutral
	}
}
