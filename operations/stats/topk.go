package stats

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/go-frame/frame"
	iutil "github.com/go-frame/frame/internal/util"
	"github.com/go-frame/frame/schema"
)

// ValueCount is a distinct column value paired with its (optionally weighted)
// frequency.
type ValueCount struct {
	Value interface{}
	Count float64
}

// TopK returns the k most frequent values of a column with their counts,
// ordered by descending count with ties broken by the values' natural
// ordering, so results are stable across re-runs. A negative k returns the
// k least frequent values, ordered by ascending count. Frequencies are
// computed by partition-local counting and a global reduce by value; the
// final selection uses a bounded structure of size k rather than a full sort.
// Null values are excluded. If weightColumn is non-empty, each occurrence
// contributes its weight rather than 1, and rows with null or non-positive
// weights are excluded.
func TopK(colName string, k int, weightColumn string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if k == 0 {
			return nil, fmt.Errorf("k must be nonzero")
		}
		st := state.GetSchema()
		col, err := st.GetColumn(colName)
		if err != nil {
			return nil, err
		}
		weighted := len(weightColumn) > 0
		if weighted {
			if err := validateNumericColumn(st, weightColumn); err != nil {
				return nil, err
			}
		}
		bottom := k < 0
		if bottom {
			k = -k
		}

		countSchema := schema.CreateSchema()
		if _, err := countSchema.CreateColumn("value", col.Type()); err != nil {
			return nil, err
		}
		if _, err := countSchema.CreateColumn("count", &frame.Float64ColumnType{}); err != nil {
			return nil, err
		}

		colType := col.Type()
		counted := state.GetDataset().
			Filter(func(row frame.Row) (bool, error) {
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
			}).
			Map(func(row frame.Row) (frame.Row, error) {
				v, err := row.Get(colName)
				if err != nil {
					return nil, err
				}
				w := 1.0
				if weighted {
					if w, err = row.GetFloat64(weightColumn); err != nil {
						return nil, err
					}
				}
				return frame.CreateRow(countSchema, []interface{}{v, w}), nil
			}).
			ReduceByKey(func(row frame.Row) ([]byte, error) {
				v, err := row.Get("value")
				if err != nil {
					return nil, err
				}
				return []byte(colType.ToString(v)), nil
			}, func(lrow, rrow frame.Row) (frame.Row, error) {
				lw, err := lrow.GetFloat64("count")
				if err != nil {
					return nil, err
				}
				rw, err := rrow.GetFloat64("count")
				if err != nil {
					return nil, err
				}
				lv, err := lrow.Get("value")
				if err != nil {
					return nil, err
				}
				return frame.CreateRow(countSchema, []interface{}{lv, lw + rw}), nil
			})

		acc, err := counted.Aggregate(func() frame.Accumulator {
			return &topKSelector{k: k, bottom: bottom}
		})
		if err != nil {
			return nil, err
		}
		return acc.(*topKSelector).results(), nil
	}
}

// topKSelector keeps the k best ValueCounts seen so far in a bounded heap,
// with the current worst candidate at the root for cheap eviction
type topKSelector struct {
	k      int
	bottom bool
	items  []ValueCount
}

// preferred returns true iff a ranks ahead of b in the final ordering
func (a *topKSelector) preferred(x, y ValueCount) bool {
	if x.Count != y.Count {
		if a.bottom {
			return x.Count < y.Count
		}
		return x.Count > y.Count
	}
	return iutil.CompareValues(x.Value, y.Value) < 0
}

func (a *topKSelector) Len() int { return len(a.items) }

func (a *topKSelector) Less(i, j int) bool { return a.preferred(a.items[j], a.items[i]) }

func (a *topKSelector) Swap(i, j int) { a.items[i], a.items[j] = a.items[j], a.items[i] }

func (a *topKSelector) Push(x interface{}) { a.items = append(a.items, x.(ValueCount)) }

func (a *topKSelector) Pop() interface{} {
	last := a.items[len(a.items)-1]
	a.items = a.items[:len(a.items)-1]
	return last
}

func (a *topKSelector) add(vc ValueCount) {
	heap.Push(a, vc)
	if len(a.items) > a.k {
		heap.Pop(a)
	}
}

// Accumulate adds a counted-value row to this Accumulator
func (a *topKSelector) Accumulate(row frame.Row) error {
	v, err := row.Get("value")
	if err != nil {
		return err
	}
	c, err := row.GetFloat64("count")
	if err != nil {
		return err
	}
	a.add(ValueCount{Value: v, Count: c})
	return nil
}

// Merge merges another Accumulator into this one
func (a *topKSelector) Merge(o frame.Accumulator) error {
	ta, ok := o.(*topKSelector)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a topKSelector Accumulator")
	}
	for _, vc := range ta.items {
		a.add(vc)
	}
	return nil
}

// results returns the selected ValueCounts in final order
func (a *topKSelector) results() []ValueCount {
	res := make([]ValueCount, len(a.items))
	copy(res, a.items)
	sort.Slice(res, func(i, j int) bool { return a.preferred(res[i], res[j]) })
	return res
}
