// Package signal standardizes the window payloads shared between synthetic
// sources and the policy layer.
package signal

import "sort"

// Window is an ordered, immutable sequence of observations for one signal.
type Window struct {
	values []float64
}

// NewWindow copies the input so later mutation of the caller's slice cannot
// leak into the window.
func NewWindow(values ...float64) Window {
	copied := make([]float64, len(values))
	copy(copied, values)
	return Window{values: copied}
}

// Len reports how many observations the window holds.
func (w Window) Len() int { return len(w.values) }

// Values returns a copy of the observations in order.
func (w Window) Values() []float64 {
	out := make([]float64, len(w.values))
	copy(out, w.values)
	return out
}

// Trend returns 0 when the window holds fewer than two values; otherwise the
// median of consecutive first differences. Taking the median instead of a
// least-squares slope keeps a single outlier step from dominating the
// estimate.
func (w Window) Trend() float64 {
	if len(w.values) < 2 {
		return 0
	}
	diffs := make([]float64, 0, len(w.values)-1)
	for i := 1; i < len(w.values); i++ {
		diffs = append(diffs, w.values[i]-w.values[i-1])
	}
	return Median(diffs)
}

// Median returns the midpoint of a sample, averaging the middle pair when the
// count is even. An empty sample yields 0.
func Median(sample []float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
