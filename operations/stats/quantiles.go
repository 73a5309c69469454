// Package stats implements Frame's statistical summarizations: quantiles,
// histograms, correlation and covariance matrices, top-k and sorted-k
// selection, classification metrics, empirical distributions and column
// summary statistics. Each operation is a factory producing a
// frame.Summarization which validates its parameters before triggering any
// pass over the data, and which computes its result in a small, fixed number
// of passes.
package stats

import (
	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
	iutil "github.com/go-frame/frame/internal/util"
)

// QuantileValue is a single requested quantile paired with the observed
// column value at its rank. Value is nil when the column holds no non-null
// values.
type QuantileValue struct {
	Quantile float64
	Value    interface{}
}

// Quantiles computes the values of a numeric column at the requested
// quantiles (each in [0, 100]) using nearest-rank selection over a global
// sort: every reported value is one observed in the column, never an
// interpolation. Null values are excluded from the rank space. If
// weightColumn is non-empty, cumulative weight rather than row position
// determines rank; rows with null or non-positive weights are excluded.
// An all-null column yields a nil Value for every quantile.
func Quantiles(colName string, quantiles []float64, weightColumn string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		schema := state.GetSchema()
		if err := validateNumericColumn(schema, colName); err != nil {
			return nil, err
		}
		weighted := len(weightColumn) > 0
		if weighted {
			if err := validateNumericColumn(schema, weightColumn); err != nil {
				return nil, err
			}
		}
		for _, q := range quantiles {
			if q < 0 || q > 100 {
				return nil, errors.InvalidQuantileError{Quantile: q}
			}
		}

		weightOf := func(row frame.Row) (float64, error) {
			if !weighted {
				return 1, nil
			}
			return row.GetFloat64(weightColumn)
		}
		filtered := state.GetDataset().Filter(func(row frame.Row) (bool, error) {
			if row.IsNil(colName) {
				return false, nil
			}
			if weighted {
				if row.IsNil(weightColumn) {
					return false, nil
				}
				w, err := row.GetFloat64(weightColumn)
				if err != nil {
					return false, err
				}
				return w > 0, nil
			}
			return true, nil
		})
		cmp, err := iutil.SingleColumnComparator(schema, colName)
		if err != nil {
			return nil, err
		}
		sorted := filtered.Sort(cmp)

		// first pass: per-partition weight totals, to place each partition in
		// the global rank space without materializing the whole column
		var partTotals []float64
		err = sorted.ForEachPartition(func(idx int, rows []frame.Row) error {
			var sum float64
			for _, row := range rows {
				w, err := weightOf(row)
				if err != nil {
					return err
				}
				sum += w
			}
			partTotals = append(partTotals, sum)
			return nil
		})
		if err != nil {
			return nil, err
		}
		prefix := make([]float64, len(partTotals))
		var total float64
		for i, t := range partTotals {
			prefix[i] = total
			total += t
		}

		result := make([]QuantileValue, len(quantiles))
		for i, q := range quantiles {
			result[i] = QuantileValue{Quantile: q}
		}
		if total == 0 {
			return result, nil
		}

		// requested quantiles need not be ordered; walk targets in rank order
		// and scatter results back to the requested positions
		byTarget := make([]int, len(quantiles))
		for i := range byTarget {
			byTarget[i] = i
		}
		sortTargetsAscending(byTarget, quantiles)

		t := 0
		var lastValue interface{}
		err = sorted.ForEachPartition(func(idx int, rows []frame.Row) error {
			if t >= len(byTarget) {
				return nil
			}
			cum := prefix[idx]
			for _, row := range rows {
				w, err := weightOf(row)
				if err != nil {
					return err
				}
				cum += w
				v, err := row.Get(colName)
				if err != nil {
					return err
				}
				lastValue = v
				for t < len(byTarget) && quantiles[byTarget[t]]/100*total <= cum {
					result[byTarget[t]].Value = v
					t++
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		// rounding in the cumulative sum can leave the q=100 target just past
		// the final cumulative weight; it takes the maximum
		for ; t < len(byTarget); t++ {
			result[byTarget[t]].Value = lastValue
		}
		return result, nil
	}
}

func sortTargetsAscending(idxs []int, quantiles []float64) {
	for i := 1; i < len(idxs); i++ {
		for j := i; j > 0 && quantiles[idxs[j]] < quantiles[idxs[j-1]]; j-- {
			idxs[j], idxs[j-1] = idxs[j-1], idxs[j]
		}
	}
}

func validateNumericColumn(schema frame.Schema, colName string) error {
	if len(colName) == 0 {
		return errors.MissingParameterError{Name: "column name"}
	}
	col, err := schema.GetColumn(colName)
	if err != nil {
		return err
	}
	if !col.Type().IsNumeric() {
		return errors.NotNumericError{Name: colName}
	}
	return nil
}
