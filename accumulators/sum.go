package accumulators

import (
	"fmt"

	"github.com/go-frame/frame"
)

// Adder returns a factory for Sum Accumulators over the given numeric column.
// Null values contribute nothing to the sum.
func Adder(colName string) frame.AccumulatorFactory {
	return func() frame.Accumulator {
		return &Sum{colName: colName}
	}
}

// Sum sums a numeric column
type Sum struct {
	colName string
	sum     float64
	numRows int64
}

// GetSum returns the column sum from this Accumulator
func (a *Sum) GetSum() float64 {
	return a.sum
}

// GetNumValues returns the number of non-null values summed by this Accumulator
func (a *Sum) GetNumValues() int64 {
	return a.numRows
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row frame.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	a.sum += v
	a.numRows++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o frame.Accumulator) error {
	sa, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	a.sum += sa.sum
	a.numRows += sa.numRows
	return nil
}
