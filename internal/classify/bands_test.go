package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rf/internal/metrics"
)

func TestClassifyDefaultUsageBands(t *testing.T) {
	bands := FromThresholds(60, 80)

	tests := []struct {
		name   string
		value  float64
		expect string
	}{
		{"healthy zero", 0.0, "healthy"},
		{"healthy mid", 45.0, "healthy"},
		{"healthy near threshold", 59.9, "healthy"},
		{"warning at threshold", 60.0, "warning"},
		{"warning mid", 65.0, "warning"},
		{"warning near critical", 79.9, "warning"},
		{"critical at threshold", 80.0, "critical"},
		{"critical high", 95.0, "critical"},
		{"critical max", 100.0, "critical"},
		{"critical above range", 250.0, "critical"},
		{"healthy below zero", -5.0, "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.value, bands)
			switch tt.expect {
			case "healthy":
				assert.Equal(t, ColorHealthy, result)
			case "warning":
				assert.Equal(t, ColorWarning, result)
			case "critical":
				assert.Equal(t, ColorCritical, result)
			}
		})
	}
}

func TestClassifyCustomBands(t *testing.T) {
	// The illustrative 50/80 cutoffs: 45 is low, 65 is mid, 95 is high.
	bands := FromThresholds(50, 80)

	assert.Equal(t, ColorHealthy, Classify(45, bands))
	assert.Equal(t, ColorWarning, Classify(65, bands))
	assert.Equal(t, ColorCritical, Classify(95, bands))
}

func TestClassifyIsTotal(t *testing.T) {
	bands := FromThresholds(60, 80)

	// Every finite value matches exactly one band.
	for _, v := range []float64{-1000, -0.1, 0, 59.999, 60, 79.999, 80, 100, 1e9} {
		matches := 0
		for i, b := range bands {
			if v >= b.Lo && (v < b.Hi || (i == len(bands)-1 && math.IsInf(b.Hi, 1))) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "value %v should match exactly one band", v)
	}

	// Non-finite input maps to neutral, never panics.
	assert.Equal(t, ColorNeutral, Classify(math.NaN(), bands))
	assert.Equal(t, ColorCritical, Classify(math.Inf(1), bands))
	assert.Equal(t, ColorHealthy, Classify(math.Inf(-1), bands))
}

func TestClassifyEmptyBands(t *testing.T) {
	assert.Equal(t, ColorNeutral, Classify(42, nil))
}

func TestClassifierForMetric(t *testing.T) {
	c := Classifier{
		Usage: FromThresholds(60, 80),
		Temp:  FromThresholds(60, 70),
	}

	tests := []struct {
		name   string
		metric metrics.Metric
		expect any
	}{
		{
			name:   "usage metric classified by usage bands",
			metric: metrics.Metric{Kind: metrics.KindUsage, Percent: 85, Available: true},
			expect: ColorCritical,
		},
		{
			name:   "temp metric classified by temp bands",
			metric: metrics.Metric{Kind: metrics.KindTemp, Percent: 65, Available: true},
			expect: ColorWarning,
		},
		{
			name:   "text metric is neutral",
			metric: metrics.Metric{Kind: metrics.KindText, Value: "arch", Available: true},
			expect: ColorNeutral,
		},
		{
			name:   "unavailable metric is neutral regardless of kind",
			metric: metrics.Metric{Kind: metrics.KindUsage, Value: metrics.SentinelNA, Available: false},
			expect: ColorNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, c.ForMetric(tt.metric))
		})
	}
}

func TestFromThresholdsShape(t *testing.T) {
	bands := FromThresholds(60, 80)
	require.Len(t, bands, 3)

	assert.True(t, math.IsInf(bands[0].Lo, -1))
	assert.Equal(t, 60.0, bands[0].Hi)
	assert.Equal(t, 60.0, bands[1].Lo)
	assert.Equal(t, 80.0, bands[1].Hi)
	assert.Equal(t, 80.0, bands[2].Lo)
	assert.True(t, math.IsInf(bands[2].Hi, 1))
}
