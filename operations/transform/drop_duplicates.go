package transform

import (
	"github.com/go-frame/frame"
	iutil "github.com/go-frame/frame/internal/util"
)

// DropDuplicates removes duplicate rows from the frame. With no column names,
// a row is a duplicate iff every field value matches a previously seen row.
// With column names, exactly one row is retained per distinct combination of
// values in those columns. In both cases the survivor is the first row
// encountered in partition order.
func DropDuplicates(colNames ...string) frame.Transformation {
	return func(state *frame.State) (*frame.State, error) {
		if len(colNames) == 0 {
			return frame.CreateState(state.GetDataset().Distinct(nil), state.GetSchema()), nil
		}
		if _, err := state.GetSchema().ValidateColumnsExist(colNames...); err != nil {
			return nil, err
		}
		kfn, err := iutil.KeyColumns(state.GetSchema(), colNames)
		if err != nil {
			return nil, err
		}
		deduped := state.GetDataset().ReduceByKey(kfn, func(lrow, rrow frame.Row) (frame.Row, error) {
			// first row per key survives
			return lrow, nil
		})
		return frame.CreateState(deduped, state.GetSchema()), nil
	}
}
