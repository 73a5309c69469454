package frame

// An Accumulator is a partial-aggregation structure: rows are accumulated
// partition-locally, then the per-partition results are merged into a single
// Accumulator. Accumulators are best suited to summarizations whose result is
// small relative to the data (matrices, metric values, frequency tables);
// reductions with large results are better expressed via ReduceByKey.
type Accumulator interface {
	Accumulate(row Row) error  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error // Merge merges another Accumulator of the same kind into this one
}

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator
