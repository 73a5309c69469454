package transform

import (
	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

// CumulativeSum appends a Float64 column named <colName>_cumulative_sum
// holding the running total of a numeric column, in partition order. Null
// values contribute zero to the running total.
func CumulativeSum(colName string) frame.Transformation {
	return cumulative(colName, colName+"_cumulative_sum", true, false, valueContribution(colName))
}

// CumulativePercent appends a Float64 column named <colName>_cumulative_percent
// holding the running total of a numeric column as a fraction of the column's
// grand total, in partition order. If the grand total is zero, every entry is
// zero.
func CumulativePercent(colName string) frame.Transformation {
	return cumulative(colName, colName+"_cumulative_percent", true, true, valueContribution(colName))
}

// Tally appends a Float64 column named <colName>_tally holding the running
// count of rows whose value in the given column renders equal to countValue,
// in partition order. Null values never match.
func Tally(colName string, countValue string) frame.Transformation {
	return cumulative(colName, colName+"_tally", false, false, matchContribution(colName, countValue))
}

// TallyPercent appends a Float64 column named <colName>_tally_percent holding
// the running count of rows matching countValue as a fraction of the total
// number of matches. If nothing matches, every entry is zero.
func TallyPercent(colName string, countValue string) frame.Transformation {
	return cumulative(colName, colName+"_tally_percent", false, true, matchContribution(colName, countValue))
}

// contribution computes a row's increment to a running total. The column type
// is resolved once, before any pass.
type contribution func(colType frame.ColumnType) func(row frame.Row) (float64, error)

func valueContribution(colName string) contribution {
	return func(colType frame.ColumnType) func(row frame.Row) (float64, error) {
		return func(row frame.Row) (float64, error) {
			if row.IsNil(colName) {
				return 0, nil
			}
			return row.GetFloat64(colName)
		}
	}
}

func matchContribution(colName string, countValue string) contribution {
	return func(colType frame.ColumnType) func(row frame.Row) (float64, error) {
		return func(row frame.Row) (float64, error) {
			if row.IsNil(colName) {
				return 0, nil
			}
			v, err := row.Get(colName)
			if err != nil {
				return 0, err
			}
			if colType.ToString(v) == countValue {
				return 1, nil
			}
			return 0, nil
		}
	}
}

func cumulative(colName string, newColName string, requireNumeric bool, percent bool, contrib contribution) frame.Transformation {
	return func(state *frame.State) (*frame.State, error) {
		st := state.GetSchema()
		col, err := st.GetColumn(colName)
		if err != nil {
			return nil, err
		}
		// sums require a numeric source; tallies work on any column
		if requireNumeric && !col.Type().IsNumeric() {
			return nil, errors.NotNumericError{Name: colName}
		}
		rowContrib := contrib(col.Type())

		// first pass: per-partition totals, so each partition's running value
		// can start from the sum of everything before it
		var partTotals []float64
		err = state.GetDataset().ForEachPartition(func(idx int, rows []frame.Row) error {
			var sum float64
			for _, row := range rows {
				c, err := rowContrib(row)
				if err != nil {
					return err
				}
				sum += c
			}
			partTotals = append(partTotals, sum)
			return nil
		})
		if err != nil {
			return nil, err
		}
		prefix := make([]float64, len(partTotals))
		var total float64
		for i, t := range partTotals {
			prefix[i] = total
			total += t
		}

		newSchema, err := st.Clone().CreateColumn(newColName, &frame.Float64ColumnType{})
		if err != nil {
			return nil, err
		}
		appended := state.GetDataset().MapPartitions(func(idx int, rows []frame.Row) ([]frame.Row, error) {
			cum := prefix[idx]
			out := make([]frame.Row, len(rows))
			for i, row := range rows {
				c, err := rowContrib(row)
				if err != nil {
					return nil, err
				}
				cum += c
				v := cum
				if percent {
					if total == 0 {
						v = 0
					} else {
						v = cum / total
					}
				}
				fields := make([]interface{}, 0, len(row.Fields())+1)
				fields = append(fields, row.Fields()...)
				fields = append(fields, v)
				out[i] = frame.CreateRow(newSchema, fields)
			}
			return out, nil
		})
		return frame.CreateState(appended, newSchema), nil
	}
}
