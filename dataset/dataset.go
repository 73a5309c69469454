// Package dataset provides a local, partitioned implementation of the
// frame.Dataset contract. Narrow operations (Map, Filter, MapPartitions) are
// staged lazily and fused into a single pass over all partitions when an
// action triggers computation; partitions are processed in parallel. Wide
// operations (ReduceByKey, Sort, Distinct) are stage boundaries which
// redistribute rows and materialize their result.
package dataset

import (
	"runtime"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-frame/frame"
	iutil "github.com/go-frame/frame/internal/util"
	"github.com/go-frame/frame/logging"
	"github.com/go-frame/frame/stats"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Options configures the construction of a Dataset
type Options struct {
	// NumPartitions is the number of partitions data is divided into. Defaults to 4.
	NumPartitions int
	// MaxParallelism bounds the number of partitions processed concurrently. Defaults to the number of CPUs.
	MaxParallelism int
	// Logger receives pass/shuffle trace output. Defaults to a WarnLevel logger on stderr.
	Logger *logging.Logger
}

func (o *Options) defaults() *Options {
	res := &Options{}
	if o != nil {
		*res = *o
	}
	if res.NumPartitions < 1 {
		res.NumPartitions = 4
	}
	if res.MaxParallelism < 1 {
		res.MaxParallelism = runtime.NumCPU()
	}
	if res.Logger == nil {
		res.Logger = logging.CreateLogger(logging.WarnLevel, nil)
	}
	return res
}

type opKind int

const (
	mapKind opKind = iota
	filterKind
	partitionKind
)

type stagedOp struct {
	kind     opKind
	mapFn    frame.MapOperation
	filterFn frame.FilterOperation
	partFn   frame.PartitionMapOperation
}

type dataset struct {
	parts []*partition
	ops   []stagedOp
	opts  *Options
	stats *stats.RunStatistics
	err   error // a failed shuffle poisons every derived Dataset
}

// CreateDataset constructs a Dataset from an in-memory row slice, dividing it
// into contiguous partitions
func CreateDataset(rows []frame.Row, opts *Options) frame.Dataset {
	opts = opts.defaults()
	return &dataset{
		parts: partitionRows(rows, opts.NumPartitions),
		opts:  opts,
		stats: stats.CreateRunStatistics(),
	}
}

// NumPartitions returns the number of partitions in this Dataset
func (d *dataset) NumPartitions() int {
	return len(d.parts)
}

// Stats returns the pass/shuffle counters shared by this Dataset's lineage
func (d *dataset) Stats() *stats.RunStatistics {
	return d.stats
}

func (d *dataset) derive(op stagedOp) *dataset {
	ops := make([]stagedOp, len(d.ops), len(d.ops)+1)
	copy(ops, d.ops)
	ops = append(ops, op)
	return &dataset{parts: d.parts, ops: ops, opts: d.opts, stats: d.stats, err: d.err}
}

// Map lazily stages a row transformation
func (d *dataset) Map(fn frame.MapOperation) frame.Dataset {
	return d.derive(stagedOp{kind: mapKind, mapFn: iutil.SafeMapOperation(fn)})
}

// Filter lazily stages a row predicate
func (d *dataset) Filter(fn frame.FilterOperation) frame.Dataset {
	return d.derive(stagedOp{kind: filterKind, filterFn: iutil.SafeFilterOperation(fn)})
}

// MapPartitions lazily stages a partition-local transformation
func (d *dataset) MapPartitions(fn frame.PartitionMapOperation) frame.Dataset {
	return d.derive(stagedOp{kind: partitionKind, partFn: fn})
}

// run executes the staged narrow operations over every partition, in parallel,
// as a single pass. The source partitions are never modified.
func (d *dataset) run() ([]*partition, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.opts.Logger.Debugf("executing pass over %d partitions (%d staged ops)", len(d.parts), len(d.ops))
	d.stats.RecordPass()
	results := make([]*partition, len(d.parts))
	var eg errgroup.Group
	eg.SetLimit(d.opts.MaxParallelism)
	for i, part := range d.parts {
		i, part := i, part
		eg.Go(func() error {
			d.stats.RecordRowsProcessed(int64(part.GetNumRows()))
			if len(d.ops) == 0 {
				results[i] = part
				return nil
			}
			rows, err := applyOps(i, part.GetRows(), d.ops)
			if err != nil {
				return err
			}
			results[i] = createPartition(rows)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// applyOps applies a chain of staged operations to the rows of one partition.
// Consecutive row-level operations are fused into a single traversal. Row
// errors within a fused traversal are aggregated before aborting the pass.
func applyOps(idx int, rows []frame.Row, ops []stagedOp) ([]frame.Row, error) {
	cur := rows
	i := 0
	for i < len(ops) {
		if ops[i].kind == partitionKind {
			next, err := ops[i].partFn(idx, cur)
			if err != nil {
				return nil, err
			}
			cur = next
			i++
			continue
		}
		j := i
		for j < len(ops) && ops[j].kind != partitionKind {
			j++
		}
		next := make([]frame.Row, 0, len(cur))
		var multierr *multierror.Error
		for _, row := range cur {
			r := row
			keep := true
			for k := i; k < j && keep; k++ {
				var err error
				switch ops[k].kind {
				case mapKind:
					r, err = ops[k].mapFn(r)
					keep = r != nil
				case filterKind:
					keep, err = ops[k].filterFn(r)
				}
				if err != nil {
					multierr = multierror.Append(multierr, err)
					keep = false
				}
			}
			if keep {
				next = append(next, r)
			}
		}
		if err := multierr.ErrorOrNil(); err != nil {
			return nil, err
		}
		cur = next
		i = j
	}
	return cur, nil
}

// shuffle materializes the staged pass, applies a redistribution step, and
// produces a fresh materialized Dataset. Shuffle failures poison the result
// and surface on the next action.
func (d *dataset) shuffle(exec func(parts []*partition) ([]*partition, error)) *dataset {
	parts, err := d.run()
	if err != nil {
		return &dataset{opts: d.opts, stats: d.stats, err: err}
	}
	d.stats.RecordShuffle()
	shuffled, err := exec(parts)
	if err != nil {
		return &dataset{opts: d.opts, stats: d.stats, err: err}
	}
	return &dataset{parts: shuffled, opts: d.opts, stats: d.stats}
}

// ReduceByKey shuffles rows across partitions by key and merges rows sharing a
// key. Keys are encountered in partition order and the reduction folds rows in
// that order, so results are deterministic for a given partitioning.
func (d *dataset) ReduceByKey(kfn frame.KeyingOperation, rfn frame.ReductionOperation) frame.Dataset {
	kfn = iutil.SafeKeyingOperation(kfn)
	rfn = iutil.SafeReductionOperation(rfn)
	return d.shuffle(func(parts []*partition) ([]*partition, error) {
		d.opts.Logger.Debugf("shuffling %d partitions by key", len(parts))
		reduced := make(map[string]frame.Row)
		order := make([]string, 0)
		for _, part := range parts {
			for _, row := range part.GetRows() {
				keyBytes, err := kfn(row)
				if err != nil {
					return nil, err
				}
				key := string(keyBytes)
				if existing, ok := reduced[key]; ok {
					merged, err := rfn(existing, row)
					if err != nil {
						return nil, err
					}
					reduced[key] = merged
				} else {
					reduced[key] = row
					order = append(order, key)
				}
			}
		}
		// bucket reduced rows into target partitions by key hash
		buckets := make([][]frame.Row, len(parts))
		for _, key := range order {
			b := int(xxhash.Sum64String(key) % uint64(len(parts)))
			buckets[b] = append(buckets[b], reduced[key])
		}
		result := make([]*partition, len(parts))
		for i, rows := range buckets {
			result[i] = createPartition(rows)
		}
		return result, nil
	})
}

// Sort globally orders this Dataset's rows under cmp, then redistributes them
// into contiguous ordered partitions
func (d *dataset) Sort(cmp frame.RowComparator) frame.Dataset {
	return d.shuffle(func(parts []*partition) ([]*partition, error) {
		d.opts.Logger.Debugf("sorting %d partitions", len(parts))
		var all []frame.Row
		for _, part := range parts {
			all = append(all, part.GetRows()...)
		}
		var sortErr error
		sort.SliceStable(all, func(i, j int) bool {
			c, err := cmp(all[i], all[j])
			if err != nil && sortErr == nil {
				sortErr = err
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return partitionRows(all, len(parts)), nil
	})
}

// Distinct retains the first row, in partition order, per distinct key.
// A nil KeyingOperation keys each row by the entirety of its field values.
func (d *dataset) Distinct(kfn frame.KeyingOperation) frame.Dataset {
	if kfn == nil {
		kfn = iutil.WholeRowKey
	}
	kfn = iutil.SafeKeyingOperation(kfn)
	return d.shuffle(func(parts []*partition) ([]*partition, error) {
		d.opts.Logger.Debugf("deduplicating %d partitions", len(parts))
		seen := make(map[string]struct{})
		result := make([]*partition, len(parts))
		for i, part := range parts {
			rows := make([]frame.Row, 0, part.GetNumRows())
			for _, row := range part.GetRows() {
				keyBytes, err := kfn(row)
				if err != nil {
					return nil, err
				}
				key := string(keyBytes)
				if _, ok := seen[key]; !ok {
					seen[key] = struct{}{}
					rows = append(rows, row)
				}
			}
			result[i] = createPartition(rows)
		}
		return result, nil
	})
}

// Count triggers computation and returns the number of rows
func (d *dataset) Count() (int64, error) {
	parts, err := d.run()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, part := range parts {
		count += int64(part.GetNumRows())
	}
	return count, nil
}

// Collect triggers computation and materializes all rows, in partition order
func (d *dataset) Collect() ([]frame.Row, error) {
	parts, err := d.run()
	if err != nil {
		return nil, err
	}
	var all []frame.Row
	for _, part := range parts {
		all = append(all, part.GetRows()...)
	}
	return all, nil
}

// Aggregate triggers computation, accumulating rows partition-locally in
// parallel and then merging the partial results in partition order
func (d *dataset) Aggregate(facc frame.AccumulatorFactory) (frame.Accumulator, error) {
	parts, err := d.run()
	if err != nil {
		return nil, err
	}
	partials := make([]frame.Accumulator, len(parts))
	var eg errgroup.Group
	eg.SetLimit(d.opts.MaxParallelism)
	for i, part := range parts {
		i, part := i, part
		eg.Go(func() error {
			acc := facc()
			for _, row := range part.GetRows() {
				if err := acc.Accumulate(row); err != nil {
					return err
				}
			}
			partials[i] = acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	merged := partials[0]
	for _, partial := range partials[1:] {
		if err := merged.Merge(partial); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// ForEachPartition triggers computation and visits partitions sequentially, in index order
func (d *dataset) ForEachPartition(fn frame.PartitionIterationOperation) error {
	parts, err := d.run()
	if err != nil {
		return err
	}
	for i, part := range parts {
		if err := fn(i, part.GetRows()); err != nil {
			return err
		}
	}
	return nil
}
