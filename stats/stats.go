// Package stats facilitates the retrieval of statistics about the execution
// of Frame operations, most importantly the number of distributed passes and
// shuffles an algorithm triggers. Pass counts are a correctness concern, not
// just a performance one: the summarization algorithms promise a fixed number
// of passes regardless of column count, and tests assert it here.
package stats

import (
	"sync/atomic"
)

// RunStatistics counts the work performed by a Dataset lineage. A single
// RunStatistics instance is shared by every Dataset derived from the same
// source, so counters accumulate across operations until Reset is called.
type RunStatistics struct {
	passes        int64
	shuffles      int64
	rowsProcessed int64
}

// CreateRunStatistics constructs an empty RunStatistics
func CreateRunStatistics() *RunStatistics {
	return &RunStatistics{}
}

// RecordPass records a single computation pass over all partitions
func (s *RunStatistics) RecordPass() {
	atomic.AddInt64(&s.passes, 1)
}

// RecordShuffle records a redistribution of rows across partitions
func (s *RunStatistics) RecordShuffle() {
	atomic.AddInt64(&s.shuffles, 1)
}

// RecordRowsProcessed records n rows having been visited by a pass
func (s *RunStatistics) RecordRowsProcessed(n int64) {
	atomic.AddInt64(&s.rowsProcessed, n)
}

// GetNumPasses returns the number of passes recorded so far
func (s *RunStatistics) GetNumPasses() int64 {
	return atomic.LoadInt64(&s.passes)
}

// GetNumShuffles returns the number of shuffles recorded so far
func (s *RunStatistics) GetNumShuffles() int64 {
	return atomic.LoadInt64(&s.shuffles)
}

// GetNumRowsProcessed returns the number of rows visited so far
func (s *RunStatistics) GetNumRowsProcessed() int64 {
	return atomic.LoadInt64(&s.rowsProcessed)
}

// Reset zeroes all counters
func (s *RunStatistics) Reset() {
	atomic.StoreInt64(&s.passes, 0)
	atomic.StoreInt64(&s.shuffles, 0)
	atomic.StoreInt64(&s.rowsProcessed, 0)
}
