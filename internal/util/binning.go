package util

import (
	"sort"
)

// EqualWidthCutoffs derives numBins+1 bin edges spanning [min, max]. A
// degenerate range (min == max) collapses to a single bin.
func EqualWidthCutoffs(min float64, max float64, numBins int) []float64 {
	if min == max {
		return []float64{min, max}
	}
	cutoffs := make([]float64, numBins+1)
	width := (max - min) / float64(numBins)
	for i := 0; i <= numBins; i++ {
		cutoffs[i] = min + float64(i)*width
	}
	cutoffs[numBins] = max // avoid rounding drift on the final edge
	return cutoffs
}

// BinIndex locates the bin a value falls into, given ordered bin edges. Bins
// are [lo, hi) except the final bin, which is [lo, hi] so the maximum is
// counted. Values outside the edges are clamped into the first or last bin.
func BinIndex(cutoffs []float64, v float64) int {
	numBins := len(cutoffs) - 1
	idx := sort.SearchFloat64s(cutoffs, v)
	if idx >= len(cutoffs) || cutoffs[idx] != v {
		idx--
	}
	if idx < 0 {
		idx = 0
	}
	if idx > numBins-1 {
		idx = numBins - 1
	}
	return idx
}
