package schema

import (
	"testing"

	"github.com/go-frame/frame"
	"github.com/stretchr/testify/require"
)

func TestSchemaCreateAndLookup(t *testing.T) {
	sch := CreateSchema()
	_, err := sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col2", &frame.Float64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col3", &frame.StringColumnType{})
	require.Nil(t, err)

	require.Equal(t, 3, sch.NumColumns())
	require.True(t, sch.HasColumn("col2"))
	require.False(t, sch.HasColumn("col4"))

	col, err := sch.GetColumn("col2")
	require.Nil(t, err)
	require.Equal(t, 1, col.Index())
	require.True(t, col.Type().IsNumeric())

	_, err = sch.GetColumn("col4")
	require.Error(t, err)

	_, err = sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Error(t, err)

	require.Equal(t, []string{"col1", "col2", "col3"}, sch.ColumnNames())
}

func TestSchemaEquality(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &frame.StringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &frame.StringColumnType{})
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))

	schema3 := CreateSchema()
	_, err = schema3.CreateColumn("col2", &frame.StringColumnType{})
	require.Nil(t, err)
	_, err = schema3.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema3))
}

func TestSchemaClone(t *testing.T) {
	sch := CreateSchema()
	_, err := sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)

	clone := sch.Clone()
	_, err = clone.CreateColumn("col2", &frame.Float64ColumnType{})
	require.Nil(t, err)

	require.Equal(t, 1, sch.NumColumns())
	require.Equal(t, 2, clone.NumColumns())
}

func TestSchemaRenameColumn(t *testing.T) {
	sch := CreateSchema()
	_, err := sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col2", &frame.Float64ColumnType{})
	require.Nil(t, err)

	_, err = sch.RenameColumn("col2", "renamed")
	require.Nil(t, err)
	require.False(t, sch.HasColumn("col2"))
	col, err := sch.GetColumn("renamed")
	require.Nil(t, err)
	require.Equal(t, 1, col.Index())

	_, err = sch.RenameColumn("missing", "anything")
	require.Error(t, err)
}

func TestSchemaRemoveColumnReindexes(t *testing.T) {
	sch := CreateSchema()
	_, err := sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col2", &frame.Float64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col3", &frame.StringColumnType{})
	require.Nil(t, err)

	_, err = sch.RemoveColumn("col2")
	require.Nil(t, err)
	require.Equal(t, 2, sch.NumColumns())
	col, err := sch.GetColumn("col3")
	require.Nil(t, err)
	require.Equal(t, 1, col.Index())
	require.Equal(t, []string{"col1", "col3"}, sch.ColumnNames())
}

func TestSchemaValidateColumnsExist(t *testing.T) {
	sch := CreateSchema()
	_, err := sch.CreateColumn("col1", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("col2", &frame.Float64ColumnType{})
	require.Nil(t, err)

	names, err := sch.ValidateColumnsExist("col1", "col2")
	require.Nil(t, err)
	require.Equal(t, []string{"col1", "col2"}, names)

	_, err = sch.ValidateColumnsExist("col1", "missing1", "missing2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing1")
	require.Contains(t, err.Error(), "missing2")

	_, err = sch.ValidateColumnsExist("col1", "")
	require.Error(t, err)
}
