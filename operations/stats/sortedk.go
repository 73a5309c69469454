package stats

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
	iutil "github.com/go-frame/frame/internal/util"
)

// SortedK returns the first k rows of a frame under a multi-column sort order
// without materializing a full sort of the dataset: each partition keeps a
// bounded priority structure of at most k candidate rows, the per-partition
// candidates are merged, and the merged candidates (at most k x partitions
// rows ever held at once) are ordered once more to produce the result.
func SortedK(k int, sortColumns []frame.SortColumn) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if k < 1 {
			return nil, fmt.Errorf("k must be at least 1")
		}
		if len(sortColumns) == 0 {
			return nil, errors.MissingParameterError{Name: "sortColumns"}
		}
		cmp, err := iutil.RowComparatorFor(state.GetSchema(), sortColumns)
		if err != nil {
			return nil, err
		}
		acc, err := state.GetDataset().Aggregate(func() frame.Accumulator {
			return &sortedKSelector{k: k, cmp: cmp}
		})
		if err != nil {
			return nil, err
		}
		sel := acc.(*sortedKSelector)
		if sel.err != nil {
			return nil, sel.err
		}
		return sel.results(), nil
	}
}

// sortedKSelector keeps the k least rows under a comparator in a bounded
// heap, with the current greatest candidate at the root for cheap eviction
type sortedKSelector struct {
	k    int
	cmp  frame.RowComparator
	rows []frame.Row
	err  error
}

func (a *sortedKSelector) compare(l, r frame.Row) int {
	c, err := a.cmp(l, r)
	if err != nil && a.err == nil {
		a.err = err
	}
	return c
}

func (a *sortedKSelector) Len() int { return len(a.rows) }

func (a *sortedKSelector) Less(i, j int) bool { return a.compare(a.rows[i], a.rows[j]) > 0 }

func (a *sortedKSelector) Swap(i, j int) { a.rows[i], a.rows[j] = a.rows[j], a.rows[i] }

func (a *sortedKSelector) Push(x interface{}) { a.rows = append(a.rows, x.(frame.Row)) }

func (a *sortedKSelector) Pop() interface{} {
	last := a.rows[len(a.rows)-1]
	a.rows = a.rows[:len(a.rows)-1]
	return last
}

func (a *sortedKSelector) add(row frame.Row) {
	heap.Push(a, row)
	if len(a.rows) > a.k {
		heap.Pop(a)
	}
}

// Accumulate adds a row to this Accumulator
func (a *sortedKSelector) Accumulate(row frame.Row) error {
	a.add(row)
	return a.err
}

// Merge merges another Accumulator into this one
func (a *sortedKSelector) Merge(o frame.Accumulator) error {
	sa, ok := o.(*sortedKSelector)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a sortedKSelector Accumulator")
	}
	if sa.err != nil {
		return sa.err
	}
	for _, row := range sa.rows {
		a.add(row)
	}
	return a.err
}

// results returns the selected rows in sort order
func (a *sortedKSelector) results() []frame.Row {
	res := make([]frame.Row, len(a.rows))
	copy(res, a.rows)
	sort.SliceStable(res, func(i, j int) bool { return a.compare(res[i], res[j]) < 0 })
	return res
}
