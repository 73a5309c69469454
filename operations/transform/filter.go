// Package transform implements Frame's state-replacing operations. Each
// operation is a factory producing a frame.Transformation (or a
// TransformationWithResult) which validates its parameters against the
// current Schema before staging any distributed work, and which produces a
// fresh State rather than mutating the one it is given.
package transform

import (
	"github.com/go-frame/frame"
)

// Filter retains only the rows for which fn returns true
func Filter(fn frame.FilterOperation) frame.Transformation {
	return func(state *frame.State) (*frame.State, error) {
		return frame.CreateState(state.GetDataset().Filter(fn), state.GetSchema()), nil
	}
}

// DropRows removes the rows for which fn returns true
func DropRows(fn frame.FilterOperation) frame.Transformation {
	return func(state *frame.State) (*frame.State, error) {
		inverted := state.GetDataset().Filter(func(row frame.Row) (bool, error) {
			drop, err := fn(row)
			return !drop, err
		})
		return frame.CreateState(inverted, state.GetSchema()), nil
	}
}
