package accumulators

import (
	"fmt"

	"github.com/go-frame/frame"
)

// Counter returns a factory for Count Accumulators
func Counter() frame.AccumulatorFactory {
	return func() frame.Accumulator {
		return new(Count)
	}
}

// Count counts rows
type Count struct {
	count int64
}

// GetCount returns the row count from this Accumulator
func (a *Count) GetCount() int64 {
	return a.count
}

// Accumulate adds a row to this Accumulator
func (a *Count) Accumulate(row frame.Row) error {
	a.count++
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o frame.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	}
	a.count += ca.count
	return nil
}
