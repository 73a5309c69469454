package stats

import (
	"sort"

	"github.com/go-frame/frame"
	iutil "github.com/go-frame/frame/internal/util"
	"github.com/go-frame/frame/schema"
)

// ECDFValue is a distinct column value paired with the cumulative fraction of
// rows whose value is less than or equal to it.
type ECDFValue struct {
	Value   interface{}
	Percent float64
}

// ECDF computes the empirical cumulative distribution of a numeric column:
// rows are grouped by distinct value, and each distinct value is paired with
// the fraction of non-null rows at or below it, ordered by value. The final
// entry's Percent is always 1 for a column with any non-null values.
func ECDF(colName string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		st := state.GetSchema()
		if err := validateNumericColumn(st, colName); err != nil {
			return nil, err
		}
		col, err := st.GetColumn(colName)
		if err != nil {
			return nil, err
		}
		colType := col.Type()

		countSchema := schema.CreateSchema()
		if _, err := countSchema.CreateColumn("value", colType); err != nil {
			return nil, err
		}
		if _, err := countSchema.CreateColumn("count", &frame.Float64ColumnType{}); err != nil {
			return nil, err
		}

		counts, err := state.GetDataset().
			Filter(func(row frame.Row) (bool, error) {
				return !row.IsNil(colName), nil
			}).
			Map(func(row frame.Row) (frame.Row, error) {
				v, err := row.Get(colName)
				if err != nil {
					return nil, err
				}
				return frame.CreateRow(countSchema, []interface{}{v, 1.0}), nil
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
			}).
			Collect()
		if err != nil {
			return nil, err
		}

		result := make([]ECDFValue, 0, len(counts))
		var total float64
		for _, row := range counts {
			v, err := row.Get("value")
			if err != nil {
				return nil, err
			}
			c, err := row.GetFloat64("count")
			if err != nil {
				return nil, err
			}
			total += c
			result = append(result, ECDFValue{Value: v, Percent: c})
		}
		sort.Slice(result, func(i, j int) bool {
			return iutil.CompareValues(result[i].Value, result[j].Value) < 0
		})
		var cum float64
		for i := range result {
			cum += result[i].Percent
			result[i].Percent = cum / total
		}
		return result, nil
	}
}
