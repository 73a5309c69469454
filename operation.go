package frame

// Transformation - An operation which replaces a Frame's State with a new one
type Transformation func(state *State) (*State, error)

// Summarization - An operation which computes a result value from a Frame's State without altering it
type Summarization func(state *State) (interface{}, error)

// TransformationWithResult - An operation which both replaces a Frame's State and computes a result value
type TransformationWithResult func(state *State) (*State, interface{}, error)

// SortColumn names a column to order by. The zero value of Descending sorts
// ascending, matching the common case.
type SortColumn struct {
	Name       string
	Descending bool
}
