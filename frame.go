package frame

import (
	"sync"

	errors "github.com/go-frame/frame/errors"
	"github.com/go-frame/frame/stats"
)

// A Frame is a tabular dataset: a distributed collection of Rows paired with a
// Schema, against which transformations and summarizations are executed. The
// Frame owns a single mutable cell of "current state", replaced atomically
// when a Transformation completes. Summarizations read an atomic snapshot of
// the state and never alter it, so they are safe to invoke concurrently;
// Transformations are serialized internally, and two concurrent
// Transformations are applied in an unspecified order.
type Frame struct {
	lock  sync.RWMutex
	state *State
}

// CreateFrame establishes the initial State of a Frame from a Dataset and the
// Schema its rows conform to. Row/Schema arity is enforced lazily, at the
// boundary where raw data enters a Dataset (see the datasource packages).
func CreateFrame(dataset Dataset, schema Schema) (*Frame, error) {
	if dataset == nil {
		return nil, errors.MissingParameterError{Name: "dataset"}
	}
	if schema == nil {
		return nil, errors.MissingParameterError{Name: "schema"}
	}
	return &Frame{state: CreateState(dataset, schema)}, nil
}

// GetState returns the current State snapshot of this Frame
func (f *Frame) GetState() *State {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.state
}

// GetSchema returns the Schema of this Frame's current State
func (f *Frame) GetSchema() Schema {
	return f.GetState().GetSchema()
}

// GetStats returns the pass/shuffle counters of this Frame's current Dataset
func (f *Frame) GetStats() *stats.RunStatistics {
	return f.GetState().GetDataset().Stats()
}

// Transform runs op against the current State and replaces this Frame's State
// with the result. No intermediate state is observable to concurrent readers.
func (f *Frame) Transform(op Transformation) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	next, err := op(f.state)
	if err != nil {
		return err
	}
	f.state = next
	return nil
}

// Summarize runs op against the current State and returns its result. The
// Frame's State is unchanged.
func (f *Frame) Summarize(op Summarization) (interface{}, error) {
	return op(f.GetState())
}

// TransformWithResult runs op against the current State, replaces this Frame's
// State with the returned State, and returns the result value.
func (f *Frame) TransformWithResult(op TransformationWithResult) (interface{}, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	next, res, err := op(f.state)
	if err != nil {
		return nil, err
	}
	f.state = next
	return res, nil
}

// RowCount triggers computation and returns the number of rows in this Frame
func (f *Frame) RowCount() (int64, error) {
	return f.GetState().GetDataset().Count()
}

// Collect triggers computation and materializes all of this Frame's rows.
// Use only when the result is known to be small.
func (f *Frame) Collect() ([]Row, error) {
	return f.GetState().GetDataset().Collect()
}
