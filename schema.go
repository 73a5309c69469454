package frame

// Schema is an ordered mapping from column names to column types. It allows
// one to look up columns by name, define new columns, remove columns, etc.
// Rows are positionally aligned with their Schema: field i of a Row holds a
// value of the type of column i.
type Schema interface {
	Equals(otherSchema Schema) error                                // Equals returns nil iff this and another Schema are equivalent
	Clone() Schema                                                  // Clone returns a copy of this Schema
	NumColumns() int                                                // NumColumns returns the number of columns in this Schema
	HasColumn(colName string) bool                                  // HasColumn returns true iff this Schema contains a column with the given name
	GetColumn(colName string) (col Column, err error)               // GetColumn returns the column with the given name, or a ColumnNotFoundError
	CreateColumn(colName string, colType ColumnType) (Schema, error) // CreateColumn appends a new column to this Schema
	RenameColumn(oldName string, newName string) (Schema, error)    // RenameColumn renames a column within this Schema
	RemoveColumn(colName string) (Schema, error)                    // RemoveColumn removes a column from this Schema, reindexing the remainder
	ColumnNames() []string                                          // ColumnNames returns the names in this Schema, in index order
	ColumnTypes() []ColumnType                                      // ColumnTypes returns the types in this Schema, in index order
	ValidateColumnsExist(colNames ...string) ([]string, error)      // ValidateColumnsExist returns the given names iff all exist, or an error naming every missing column
	ForEachColumn(fn func(name string, col Column) error) error     // ForEachColumn iterates over the columns in this Schema, in no particular order
}
