package schema

import (
	"reflect"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
	"github.com/hashicorp/go-multierror"
)

// column describes a single named, typed column within a schema.
type column struct {
	name    string
	idx     int
	colType frame.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() frame.Column {
	return &column{c.name, c.idx, c.colType}
}

// Name returns the name of this Column within a Schema
func (c *column) Name() string {
	return c.name
}

// Index returns the position of this Column within a Schema
func (c *column) Index() int {
	return c.idx
}

// SetIndex modifies the position of this Column within a Schema
func (c *column) SetIndex(newIndex int) {
	c.idx = newIndex
}

// Type returns the ColumnType of this Column
func (c *column) Type() frame.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to column types
type schema struct {
	schema map[string]frame.Column
}

// CreateSchema is a factory for Schemas
func CreateSchema() frame.Schema {
	return &schema{
		schema: make(map[string]frame.Column),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *schema) Equals(otherSchema frame.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return errors.IncompatibleRowError{Expected: s.NumColumns(), Actual: otherSchema.NumColumns()}
	}
	return s.ForEachColumn(func(name string, col frame.Column) error {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if col.Index() != otherCol.Index() {
			return errors.ColumnNotFoundError{Name: name}
		}
		if reflect.TypeOf(col.Type()) != reflect.TypeOf(otherCol.Type()) {
			return errors.IncompatibleTypeError{Name: name, Value: otherCol.Type()}
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *schema) Clone() frame.Schema {
	newSchema := make(map[string]frame.Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = v.Clone()
	}
	return &schema{schema: newSchema}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema)
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// GetColumn returns the column with the given name, if it exists
func (s *schema) GetColumn(colName string) (frame.Column, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName}
	}
	return col, nil
}

// CreateColumn appends a new column to this Schema
func (s *schema) CreateColumn(colName string, colType frame.ColumnType) (frame.Schema, error) {
	if _, ok := s.schema[colName]; ok {
		return nil, errors.ColumnExistsError{Name: colName}
	}
	s.schema[colName] = &column{name: colName, idx: len(s.schema), colType: colType}
	return s, nil
}

// RenameColumn renames a column within this Schema, preserving its position
func (s *schema) RenameColumn(oldName string, newName string) (frame.Schema, error) {
	col, ok := s.schema[oldName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: oldName}
	}
	if _, ok := s.schema[newName]; ok {
		return nil, errors.ColumnExistsError{Name: newName}
	}
	s.schema[newName] = &column{name: newName, idx: col.Index(), colType: col.Type()}
	delete(s.schema, oldName)
	return s, nil
}

// RemoveColumn removes a column from this Schema, reindexing the remaining columns
func (s *schema) RemoveColumn(colName string) (frame.Schema, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: colName}
	}
	removedIdx := col.Index()
	delete(s.schema, colName)
	for _, c := range s.schema {
		if c.Index() > removedIdx {
			c.SetIndex(c.Index() - 1)
		}
	}
	return s, nil
}

// ColumnNames returns the names in this Schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.schema))
	for k, v := range s.schema {
		names[v.Index()] = k
	}
	return names
}

// ColumnTypes returns the types in this Schema, in index order
func (s *schema) ColumnTypes() []frame.ColumnType {
	types := make([]frame.ColumnType, len(s.schema))
	for _, v := range s.schema {
		types[v.Index()] = v.Type()
	}
	return types
}

// ValidateColumnsExist returns the given names iff every one names an existing
// column. Otherwise it returns a single error naming all missing columns.
func (s *schema) ValidateColumnsExist(colNames ...string) ([]string, error) {
	var multierr *multierror.Error
	for _, name := range colNames {
		if len(name) == 0 {
			multierr = multierror.Append(multierr, errors.MissingParameterError{Name: "column name"})
		} else if !s.HasColumn(name) {
			multierr = multierror.Append(multierr, errors.ColumnNotFoundError{Name: name})
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return colNames, nil
}

// ForEachColumn iterates over the columns in this Schema. Does not necessarily iterate in order of column index.
func (s *schema) ForEachColumn(fn func(name string, col frame.Column) error) error {
	for k, v := range s.schema {
		err := fn(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}
