package memory

import (
	"testing"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
	"github.com/go-frame/frame/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) frame.Schema {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("id", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("name", &frame.StringColumnType{})
	require.Nil(t, err)
	return sch
}

func TestCreateFrame(t *testing.T) {
	fr, err := CreateFrame([][]interface{}{
		{1, "one"},
		{2, "two"},
	}, createTestSchema(t), nil)
	require.Nil(t, err)

	rows, err := fr.Collect()
	require.Nil(t, err)
	require.Len(t, rows, 2)
	id, err := rows[0].GetInt64("id")
	require.Nil(t, err)
	require.Equal(t, int64(1), id)
	name, err := rows[1].GetString("name")
	require.Nil(t, err)
	require.Equal(t, "two", name)
}

func TestCreateFrameCoercesValues(t *testing.T) {
	fr, err := CreateFrame([][]interface{}{
		{"42", "str"}, // numeric strings parse
	}, createTestSchema(t), nil)
	require.Nil(t, err)
	rows, err := fr.Collect()
	require.Nil(t, err)
	id, err := rows[0].GetInt64("id")
	require.Nil(t, err)
	require.Equal(t, int64(42), id)
}

func TestCreateFrameUnparseableBecomesNull(t *testing.T) {
	fr, err := CreateFrame([][]interface{}{
		{"not a number", "ok"},
		{nil, "also ok"},
	}, createTestSchema(t), nil)
	require.Nil(t, err)
	rows, err := fr.Collect()
	require.Nil(t, err)
	require.True(t, rows[0].IsNil("id"))
	require.False(t, rows[0].IsNil("name"))
	require.True(t, rows[1].IsNil("id"))
}

func TestCreateFrameArityMismatch(t *testing.T) {
	_, err := CreateFrame([][]interface{}{
		{1, "one", "extra"},
	}, createTestSchema(t), nil)
	require.Error(t, err)
	require.IsType(t, errors.IncompatibleRowError{}, err)
}

func TestInferSchemaDefaults(t *testing.T) {
	sch, err := InferSchema([][]interface{}{
		{1, 1.5, "x", nil},
		{2, 2, "y", true},
	}, nil, 0)
	require.Nil(t, err)
	require.Equal(t, []string{"C0", "C1", "C2", "C3"}, sch.ColumnNames())

	types := sch.ColumnTypes()
	require.IsType(t, &frame.Int64ColumnType{}, types[0])
	require.IsType(t, &frame.Float64ColumnType{}, types[1])
	require.IsType(t, &frame.StringColumnType{}, types[2])
	require.IsType(t, &frame.BoolColumnType{}, types[3])
}

func TestInferSchemaMixedFallsBackToString(t *testing.T) {
	sch, err := InferSchema([][]interface{}{
		{1},
		{"one"},
	}, []string{"mixed"}, 0)
	require.Nil(t, err)
	require.IsType(t, &frame.StringColumnType{}, sch.ColumnTypes()[0])
}

func TestInferSchemaSampleSize(t *testing.T) {
	sch, err := InferSchema([][]interface{}{
		{1},
		{"one"}, // beyond the sample
	}, []string{"col"}, 1)
	require.Nil(t, err)
	require.IsType(t, &frame.Int64ColumnType{}, sch.ColumnTypes()[0])
}

func TestCreateFrameWithInferredSchema(t *testing.T) {
	fr, err := CreateFrameWithInferredSchema([][]interface{}{
		{1, "a"},
		{2, "b"},
		{3, "c"},
	}, []string{"num", "letter"}, nil)
	require.Nil(t, err)
	require.True(t, fr.GetSchema().HasColumn("num"))
	count, err := fr.RowCount()
	require.Nil(t, err)
	require.Equal(t, int64(3), count)
}
