package accumulators

import (
	"fmt"
	"math"

	"github.com/go-frame/frame"
)

// MomentsOf returns a factory for Moments Accumulators over the given numeric
// column. Null values are excluded.
func MomentsOf(colName string) frame.AccumulatorFactory {
	return func() frame.Accumulator {
		return &Moments{colName: colName}
	}
}

// Moments maintains running count, min, max, mean and variance of a numeric
// column using Welford's algorithm, with the parallel merge step due to Chan
// et al. so per-partition results combine exactly.
type Moments struct {
	colName string
	count   int64
	min     float64
	max     float64
	mean    float64
	m2      float64
}

// GetCount returns the number of non-null values seen by this Accumulator
func (a *Moments) GetCount() int64 {
	return a.count
}

// GetMin returns the column minimum, or NaN if no non-null values were seen
func (a *Moments) GetMin() float64 {
	if a.count == 0 {
		return math.NaN()
	}
	return a.min
}

// GetMax returns the column maximum, or NaN if no non-null values were seen
func (a *Moments) GetMax() float64 {
	if a.count == 0 {
		return math.NaN()
	}
	return a.max
}

// GetMean returns the running mean, or NaN if no non-null values were seen
func (a *Moments) GetMean() float64 {
	if a.count == 0 {
		return math.NaN()
	}
	return a.mean
}

// GetVariance returns the sample variance (M2/(n-1)), or NaN if fewer than two values were seen
func (a *Moments) GetVariance() float64 {
	if a.count < 2 {
		return math.NaN()
	}
	return a.m2 / float64(a.count-1)
}

// GetStandardDeviation returns the sample standard deviation
func (a *Moments) GetStandardDeviation() float64 {
	return math.Sqrt(a.GetVariance())
}

// Accumulate adds a row to this Accumulator
func (a *Moments) Accumulate(row frame.Row) error {
	if row.IsNil(a.colName) {
		return nil
	}
	v, err := row.GetFloat64(a.colName)
	if err != nil {
		return err
	}
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.count++
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (v - a.mean)
	return nil
}

// Merge merges another Accumulator into this one
func (a *Moments) Merge(o frame.Accumulator) error {
	ma, ok := o.(*Moments)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Moments Accumulator")
	}
	if ma.count == 0 {
		return nil
	}
	if a.count == 0 {
		*a = Moments{colName: a.colName, count: ma.count, min: ma.min, max: ma.max, mean: ma.mean, m2: ma.m2}
		return nil
	}
	if ma.min < a.min {
		a.min = ma.min
	}
	if ma.max > a.max {
		a.max = ma.max
	}
	total := a.count + ma.count
	delta := ma.mean - a.mean
	a.mean += delta * float64(ma.count) / float64(total)
	a.m2 += ma.m2 + delta*delta*float64(a.count)*float64(ma.count)/float64(total)
	a.count = total
	return nil
}
