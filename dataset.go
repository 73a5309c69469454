package frame

import (
	"github.com/go-frame/frame/stats"
)

// MapOperation - A generic function for deriving a new Row from an existing one
type MapOperation func(row Row) (Row, error)

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// KeyingOperation - A generic function for generating a key from a Row
type KeyingOperation func(row Row) ([]byte, error)

// ReductionOperation - A generic function for merging two Rows which share a key. rrow is merged into lrow and the result returned; rrow is discarded.
type ReductionOperation func(lrow Row, rrow Row) (Row, error)

// RowComparator - A generic function imposing a total order on Rows, returning <0, 0 or >0
type RowComparator func(lrow Row, rrow Row) (int, error)

// PartitionMapOperation - A generic function for deriving new partition contents from the rows of an existing partition
type PartitionMapOperation func(index int, rows []Row) ([]Row, error)

// PartitionIterationOperation - A generic function applied to the rows of each partition, in partition index order
type PartitionIterationOperation func(index int, rows []Row) error

// Dataset is an immutable, partitioned collection of Rows - the distributed
// collection contract which Frame's algorithms are written against. Map,
// Filter and MapPartitions are lazy: they stage narrow, partition-local work
// which is fused into a single pass when an action (Count, Collect, Aggregate,
// ForEachPartition) triggers computation. ReduceByKey, Sort and Distinct are
// stage boundaries which shuffle rows between partitions. Datasets are never
// modified - every operation produces a new Dataset.
type Dataset interface {
	NumPartitions() int                                             // NumPartitions returns the number of partitions in this Dataset
	Map(fn MapOperation) Dataset                                    // Map lazily stages a row transformation. Returning a nil Row drops the row.
	Filter(fn FilterOperation) Dataset                              // Filter lazily stages a row predicate
	MapPartitions(fn PartitionMapOperation) Dataset                 // MapPartitions lazily stages a partition-local transformation
	ReduceByKey(kfn KeyingOperation, rfn ReductionOperation) Dataset // ReduceByKey shuffles rows by key and merges rows sharing a key, in partition order
	Sort(cmp RowComparator) Dataset                                 // Sort globally orders this Dataset's rows under cmp
	Distinct(kfn KeyingOperation) Dataset                           // Distinct retains the first row (in partition order) per distinct key
	Count() (int64, error)                                          // Count triggers computation and returns the number of rows
	Collect() ([]Row, error)                                        // Collect triggers computation and materializes all rows. Use only for small results.
	Aggregate(facc AccumulatorFactory) (Accumulator, error)         // Aggregate triggers computation, accumulating every row partition-locally and merging the partial results
	ForEachPartition(fn PartitionIterationOperation) error          // ForEachPartition triggers computation and visits partitions sequentially, in index order
	Stats() *stats.RunStatistics                                    // Stats returns the pass/shuffle counters shared by this Dataset's lineage
}
