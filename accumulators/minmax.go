package accumulators

import (
	"fmt"

	"github.com/go-frame/frame"
)

// Extremes returns a factory for MinMax Accumulators over the given numeric
// column. Null values are excluded.
func Extremes(colName string) frame.AccumulatorFactory {
	return func() frame.Accumulator {
		return &MinMax{colName: colName}
	}
}

// MinMax tracks the minimum and maximum of a numeric column
type MinMax struct {
	colName string
	min     float64
	max     float64
	numRows int64
}

// GetMin returns the column minimum, or false if no non-null values were seen
func (a *MinMax) GetMin() (float64, bool) {
	return a.min, a.numRows > 0
}

// GetMax returns the column maximum, or false if no non-null values were seen
func (a *MinMax) GetMax() (float64, bool) {
	return a.max, a.numRows > 0
}

// GetNumValues returns the number of non-null values seen by this Accumulator
func (a *MinMax) GetNumValues() int64 {
	return a.numRows
}

// Accumulate adds a row to this Accumulator
func (a *MinMax) Accumulate(row frame.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	if a.numRows == 0 || v < a.min {
		a.min = v
	}
	if a.numRows == 0 || v > a.max {
		a.max = v
	}
	a.numRows++
	return nil
}

// Merge merges another Accumulator into this one
func (a *MinMax) Merge(o frame.Accumulator) error {
	ma, ok := o.(*MinMax)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a MinMax Accumulator")
	}
	if ma.numRows == 0 {
		return nil
	}
	if a.numRows == 0 || ma.min < a.min {
		a.min = ma.min
	}
	if a.numRows == 0 || ma.max > a.max {
		a.max = ma.max
	}
	a.numRows += ma.numRows
	return nil
}
