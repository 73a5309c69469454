package errors

import (
	"fmt"
)

// ColumnNotFoundError occurs when a Schema does not contain a column with a requested name
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// ColumnExistsError occurs when a column is created with a name a Schema already contains
type ColumnExistsError struct{ Name string }

// Error returns a textual representation of this ColumnExistsError
func (e ColumnExistsError) Error() string {
	return fmt.Sprintf("Schema already contains column with name %s", e.Name)
}

// NilValueError occurs when a typed getter is used on a null value in a Row
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// NotNumericError occurs when a numeric summarization is requested over a non-numeric column
type NotNumericError struct{ Name string }

// Error returns a textual representation of this NotNumericError
func (e NotNumericError) Error() string {
	return fmt.Sprintf("Column %s is not numeric", e.Name)
}

// IncompatibleTypeError occurs when a Row value does not match the requested runtime type
type IncompatibleTypeError struct {
	Name  string
	Value interface{}
}

// Error returns a textual representation of this IncompatibleTypeError
func (e IncompatibleTypeError) Error() string {
	return fmt.Sprintf("Value %v (%T) for column %s does not match the requested type", e.Value, e.Value, e.Name)
}

// IncompatibleRowError occurs when a raw row's width does not match an expected Schema
type IncompatibleRowError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// MissingParameterError occurs when a required operation parameter is absent or empty
type MissingParameterError struct{ Name string }

// Error returns a textual representation of this MissingParameterError
func (e MissingParameterError) Error() string {
	return fmt.Sprintf("Required parameter %s is missing or empty", e.Name)
}

// NonPositiveBetaError occurs when a classification metrics beta parameter is not greater than zero
type NonPositiveBetaError struct{ Beta float64 }

// Error returns a textual representation of this NonPositiveBetaError
func (e NonPositiveBetaError) Error() string {
	return fmt.Sprintf("Beta must be greater than zero (got %f)", e.Beta)
}

// InvalidQuantileError occurs when a requested quantile falls outside [0, 100]
type InvalidQuantileError struct{ Quantile float64 }

// Error returns a textual representation of this InvalidQuantileError
func (e InvalidQuantileError) Error() string {
	return fmt.Sprintf("Quantile %f is outside [0, 100]", e.Quantile)
}

// InvalidBinCountError occurs when a histogram or binning operation is given fewer than one bin
type InvalidBinCountError struct{ NumBins int }

// Error returns a textual representation of this InvalidBinCountError
func (e InvalidBinCountError) Error() string {
	return fmt.Sprintf("Number of bins must be at least 1 (got %d)", e.NumBins)
}
