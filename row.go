package frame

import (
	"strings"
	"time"

	errors "github.com/go-frame/frame/errors"
)

// Row is a single row of tabular data, along with a reference to the Schema
// for that row. Fields are positionally aligned with the Schema's columns and
// are nullable: a nil field represents a missing value. Rows are never
// mutated in place - operations which alter data produce new Rows.
type Row interface {
	Schema() Schema                                  // Schema returns the Schema for this row
	Fields() []interface{}                           // Fields returns the raw field values of this row, in column index order. The returned slice must not be modified.
	IsNil(colName string) bool                       // IsNil returns true iff the given column value is nil in this row. If the column does not exist, this function returns false.
	Get(colName string) (col interface{}, err error) // Get returns the value of any column as an interface{}, if it exists. Returns nil for null values.
	GetInt64(colName string) (col int64, err error)  // GetInt64 retrieves a single int64 from the column with the given name, coercing other integral types
	GetFloat64(colName string) (float64, error)      // GetFloat64 retrieves a single float64 from the column with the given name, coercing other numeric types
	GetString(colName string) (string, error)        // GetString retrieves a single string from the column with the given name
	GetBool(colName string) (bool, error)            // GetBool retrieves a single bool from the column with the given name
	GetTime(colName string) (time.Time, error)       // GetTime retrieves a single time.Time from the column with the given name
	ToString() string                                // ToString returns a string representation of this row
}

type row struct {
	schema Schema
	fields []interface{}
}

// CreateRow constructs a Row from a Schema and a positionally aligned field
// slice. The caller relinquishes ownership of fields.
func CreateRow(schema Schema, fields []interface{}) Row {
	return &row{schema: schema, fields: fields}
}

// Schema returns the Schema for this row
func (r *row) Schema() Schema {
	return r.schema
}

// Fields returns the raw field values of this row, in column index order
func (r *row) Fields() []interface{} {
	return r.fields
}

// IsNil returns true iff the given column value is nil in this row
func (r *row) IsNil(colName string) bool {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return false
	}
	return r.fields[col.Index()] == nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *row) Get(colName string) (interface{}, error) {
	col, err := r.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return r.fields[col.Index()], nil
}

func (r *row) getNonNil(colName string) (interface{}, error) {
	v, err := r.Get(colName)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *row) GetInt64(colName string) (int64, error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	default:
		return 0, errors.NotNumericError{Name: colName}
	}
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *row) GetFloat64(colName string) (float64, error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return 0, err
	}
	f, ok := ToFloat64(v)
	if !ok {
		return 0, errors.NotNumericError{Name: colName}
	}
	return f, nil
}

// GetString retrieves a single string from the column with the given name
func (r *row) GetString(colName string) (string, error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.IncompatibleTypeError{Name: colName, Value: v}
	}
	return s, nil
}

// GetBool retrieves a single bool from the column with the given name
func (r *row) GetBool(colName string) (bool, error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.IncompatibleTypeError{Name: colName, Value: v}
	}
	return b, nil
}

// GetTime retrieves a single time.Time from the column with the given name
func (r *row) GetTime(colName string) (time.Time, error) {
	v, err := r.getNonNil(colName)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, errors.IncompatibleTypeError{Name: colName, Value: v}
	}
	return t, nil
}

// ToString returns a string representation of this row
func (r *row) ToString() string {
	var res strings.Builder
	res.WriteString("{")
	types := r.schema.ColumnTypes()
	for i, name := range r.schema.ColumnNames() {
		if i > 0 {
			res.WriteString(", ")
		}
		res.WriteString(name)
		res.WriteString(": ")
		if r.fields[i] == nil {
			res.WriteString("nil")
		} else {
			res.WriteString(types[i].ToString(r.fields[i]))
		}
	}
	res.WriteString("}")
	return res.String()
}

// ToFloat64 coerces any numeric runtime representation to a float64, returning
// false for nil and non-numeric values.
func ToFloat64(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}
