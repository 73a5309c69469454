package stats

import (
	"fmt"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/accumulators"
	errors "github.com/go-frame/frame/errors"
	iutil "github.com/go-frame/frame/internal/util"
)

// Bin is a single histogram bin. Bins are contiguous and non-overlapping:
// each spans [LowerBound, UpperBound), except the final bin whose upper edge
// is inclusive so the column maximum is counted.
type Bin struct {
	LowerBound float64
	UpperBound float64
	Count      int64
}

// HistogramResult holds the bins of a histogram along with each bin's density
// (its share of the total non-null count). An all-null or empty column yields
// zero bins.
type HistogramResult struct {
	Bins      []Bin
	Densities []float64
}

// Histogram computes an equal-width histogram of a numeric column: one pass
// establishes the column's range, a second counts rows per bin. Null values
// are excluded. The sum of bin counts equals the number of non-null values.
func Histogram(colName string, numBins int) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if err := validateNumericColumn(state.GetSchema(), colName); err != nil {
			return nil, err
		}
		if numBins < 1 {
			return nil, errors.InvalidBinCountError{NumBins: numBins}
		}
		acc, err := state.GetDataset().Aggregate(accumulators.Extremes(colName))
		if err != nil {
			return nil, err
		}
		extremes := acc.(*accumulators.MinMax)
		min, ok := extremes.GetMin()
		if !ok {
			return &HistogramResult{}, nil
		}
		max, _ := extremes.GetMax()
		return countBins(state, colName, iutil.EqualWidthCutoffs(min, max, numBins))
	}
}

// QuantileHistogram computes an equal-depth histogram of a numeric column:
// bin cutoffs are the column's values at numBins+1 evenly spaced quantiles,
// so each bin holds a near-equal share of rows. A constant column collapses
// to a single bin holding every row.
func QuantileHistogram(colName string, numBins int) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if numBins < 1 {
			return nil, errors.InvalidBinCountError{NumBins: numBins}
		}
		cutoffs, err := QuantileCutoffs(colName, numBins)(state)
		if err != nil {
			return nil, err
		}
		edges := cutoffs.([]float64)
		if len(edges) == 0 {
			return &HistogramResult{}, nil
		}
		return countBins(state, colName, edges)
	}
}

// HistogramWithCutoffs counts rows of a numeric column per bin for explicit,
// ordered bin edges. Values outside the edges are clamped into the first or
// last bin.
func HistogramWithCutoffs(colName string, cutoffs []float64) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if err := validateNumericColumn(state.GetSchema(), colName); err != nil {
			return nil, err
		}
		if len(cutoffs) < 2 {
			return nil, errors.InvalidBinCountError{NumBins: len(cutoffs) - 1}
		}
		return countBins(state, colName, cutoffs)
	}
}

// QuantileCutoffs computes numBins+1 bin edges at evenly spaced quantiles of
// a numeric column, deduplicating repeated values. Returns []float64; empty
// for an all-null column.
func QuantileCutoffs(colName string, numBins int) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		qs := make([]float64, numBins+1)
		for i := 0; i <= numBins; i++ {
			qs[i] = float64(i) * 100 / float64(numBins)
		}
		res, err := Quantiles(colName, qs, "")(state)
		if err != nil {
			return nil, err
		}
		values := res.([]QuantileValue)
		edges := make([]float64, 0, len(values))
		for _, qv := range values {
			if qv.Value == nil {
				return []float64{}, nil
			}
			f, ok := frame.ToFloat64(qv.Value)
			if !ok {
				return nil, errors.NotNumericError{Name: colName}
			}
			if len(edges) == 0 || f > edges[len(edges)-1] {
				edges = append(edges, f)
			}
		}
		if len(edges) == 1 {
			// constant column: a single bin covering the one observed value
			edges = append(edges, edges[0])
		}
		return edges, nil
	}
}

func countBins(state *frame.State, colName string, cutoffs []float64) (*HistogramResult, error) {
	acc, err := state.GetDataset().Aggregate(func() frame.Accumulator {
		return &binCounter{colName: colName, cutoffs: cutoffs, counts: make([]int64, len(cutoffs)-1)}
	})
	if err != nil {
		return nil, err
	}
	counter := acc.(*binCounter)
	numBins := len(cutoffs) - 1
	result := &HistogramResult{
		Bins:      make([]Bin, numBins),
		Densities: make([]float64, numBins),
	}
	var total int64
	for _, c := range counter.counts {
		total += c
	}
	for i := 0; i < numBins; i++ {
		result.Bins[i] = Bin{LowerBound: cutoffs[i], UpperBound: cutoffs[i+1], Count: counter.counts[i]}
		if total > 0 {
			result.Densities[i] = float64(counter.counts[i]) / float64(total)
		}
	}
	return result, nil
}

// binCounter counts non-null values of a column per bin
type binCounter struct {
	colName string
	cutoffs []float64
	counts  []int64
}

// Accumulate adds a row to this Accumulator
func (a *binCounter) Accumulate(row frame.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	a.counts[iutil.BinIndex(a.cutoffs, v)]++
	return nil
}

// Merge merges another Accumulator into this one
func (a *binCounter) Merge(o frame.Accumulator) error {
	ba, ok := o.(*binCounter)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a binCounter Accumulator")
	}
	for i, c := range ba.counts {
		a.counts[i] += c
	}
	return nil
}
