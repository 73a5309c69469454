package stats

import (
	"github.com/go-frame/frame"
	"github.com/go-frame/frame/accumulators"
)

// ColumnStatistics summarizes a numeric column. Min, Max, Mean and Variance
// are NaN when too few non-null values exist to define them.
type ColumnStatistics struct {
	Count             int64
	Min               float64
	Max               float64
	Mean              float64
	Variance          float64
	StandardDeviation float64
}

// ColumnSummaryStatistics computes the count, extrema, mean, sample variance
// and standard deviation of a numeric column in a single pass, excluding null
// values.
func ColumnSummaryStatistics(colName string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if err := validateNumericColumn(state.GetSchema(), colName); err != nil {
			return nil, err
		}
		acc, err := state.GetDataset().Aggregate(accumulators.MomentsOf(colName))
		if err != nil {
			return nil, err
		}
		m := acc.(*accumulators.Moments)
		return &ColumnStatistics{
			Count:             m.GetCount(),
			Min:               m.GetMin(),
			Max:               m.GetMax(),
			Mean:              m.GetMean(),
			Variance:          m.GetVariance(),
			StandardDeviation: m.GetStandardDeviation(),
		}, nil
	}
}
