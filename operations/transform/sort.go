package transform

import (
	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
	iutil "github.com/go-frame/frame/internal/util"
)

// Sort globally orders the frame's rows by the given columns. The resulting
// partition order is canonical: subsequent order-sensitive operations
// (cumulative sums, sorted-k) observe it.
func Sort(sortColumns []frame.SortColumn) frame.Transformation {
	return func(state *frame.State) (*frame.State, error) {
		if len(sortColumns) == 0 {
			return nil, errors.MissingParameterError{Name: "sortColumns"}
		}
		cmp, err := iutil.RowComparatorFor(state.GetSchema(), sortColumns)
		if err != nil {
			return nil, err
		}
		return frame.CreateState(state.GetDataset().Sort(cmp), state.GetSchema()), nil
	}
}
