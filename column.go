package frame

// Column describes a single named, typed column within a Schema.
type Column interface {
	Clone() Column    // Clone returns a copy of this Column
	Name() string     // Name returns the name of this Column within a Schema
	Index() int       // Index returns the position of this Column within a Schema
	SetIndex(idx int) // SetIndex modifies the position of this Column within a Schema
	Type() ColumnType // Type returns the ColumnType of this Column
}
