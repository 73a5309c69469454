package frame

// State is an immutable snapshot of a Frame: the pairing of a Dataset with the
// Schema its rows conform to. Every Transformation produces a fresh State -
// a State is never modified after construction.
type State struct {
	dataset Dataset
	schema  Schema
}

// CreateState pairs a Dataset with a Schema
func CreateState(dataset Dataset, schema Schema) *State {
	return &State{dataset: dataset, schema: schema}
}

// GetDataset returns the Dataset of this State
func (s *State) GetDataset() Dataset {
	return s.dataset
}

// GetSchema returns the Schema of this State
func (s *State) GetSchema() Schema {
	return s.schema
}
