package transform

import (
	"testing"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/schema"
	ftesting "github.com/go-frame/frame/testing"
	"github.com/stretchr/testify/require"
)

func createTestNumericFrame(t *testing.T, values []interface{}) *frame.Frame {
	fr, err := ftesting.NumericFrame(3, "val", values)
	require.Nil(t, err)
	return fr
}

func collectColumn(t *testing.T, fr *frame.Frame, colName string) []interface{} {
	rows, err := fr.Collect()
	require.Nil(t, err)
	values := make([]interface{}, len(rows))
	for i, row := range rows {
		v, err := row.Get(colName)
		require.Nil(t, err)
		values[i] = v
	}
	return values
}

func TestFilterAndDropRows(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 2, 3, 4})
	err := fr.Transform(Filter(func(row frame.Row) (bool, error) {
		v, err := row.GetFloat64("val")
		return v > 1, err
	}))
	require.Nil(t, err)
	count, err := fr.RowCount()
	require.Nil(t, err)
	require.Equal(t, int64(3), count)

	err = fr.Transform(DropRows(func(row frame.Row) (bool, error) {
		v, err := row.GetFloat64("val")
		return v > 3, err
	}))
	require.Nil(t, err)
	require.Equal(t, []interface{}{2.0, 3.0}, collectColumn(t, fr, "val"))
}

func TestSortTransformation(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{3, 1, nil, 2})
	err := fr.Transform(Sort([]frame.SortColumn{{Name: "val"}}))
	require.Nil(t, err)
	// nulls order first
	require.Equal(t, []interface{}{nil, 1.0, 2.0, 3.0}, collectColumn(t, fr, "val"))

	err = fr.Transform(Sort(nil))
	require.Error(t, err)
}

func TestDropDuplicatesWholeRow(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("k", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("v", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{1, "x"}, {1, "x"}, {2, "y"}, {1, "x"},
	})
	require.Nil(t, err)

	err = fr.Transform(DropDuplicates())
	require.Nil(t, err)
	count, err := fr.RowCount()
	require.Nil(t, err)
	require.Equal(t, int64(2), count)
}

func TestDropDuplicatesControlBytesInValues(t *testing.T) {
	// field boundaries in the dedup key are unambiguous even when values
	// contain control bytes, so these rows stay distinct
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("a", &frame.StringColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("b", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{"x\x1f\x01y", "z"}, {"x", "y\x1f\x01z"},
	})
	require.Nil(t, err)

	err = fr.Transform(DropDuplicates())
	require.Nil(t, err)
	count, err := fr.RowCount()
	require.Nil(t, err)
	require.Equal(t, int64(2), count)
}

func TestDropDuplicatesBySubsetKeepsFirst(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("k", &frame.Int64ColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("v", &frame.Float64ColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{1, 10}, {1, 20}, {2, 30}, {2, 40},
	})
	require.Nil(t, err)

	err = fr.Transform(DropDuplicates("k"))
	require.Nil(t, err)
	rows, err := fr.Collect()
	require.Nil(t, err)
	require.Len(t, rows, 2)
	survivors := make(map[int64]float64)
	for _, row := range rows {
		k, err := row.GetInt64("k")
		require.Nil(t, err)
		v, err := row.GetFloat64("v")
		require.Nil(t, err)
		survivors[k] = v
	}
	// the first row in partition order survives per key
	require.Equal(t, map[int64]float64{1: 10, 2: 30}, survivors)

	err = fr.Transform(DropDuplicates("missing"))
	require.Error(t, err)
}

func TestCumulativeSum(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 2, 3})
	err := fr.Transform(CumulativeSum("val"))
	require.Nil(t, err)
	require.True(t, fr.GetSchema().HasColumn("val_cumulative_sum"))
	require.Equal(t, []interface{}{1.0, 3.0, 6.0}, collectColumn(t, fr, "val_cumulative_sum"))
}

func TestCumulativeSumNullContributesZero(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, nil, 2})
	err := fr.Transform(CumulativeSum("val"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.0, 1.0, 3.0}, collectColumn(t, fr, "val_cumulative_sum"))
}

func TestCumulativePercent(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 2, 3})
	err := fr.Transform(CumulativePercent("val"))
	require.Nil(t, err)
	values := collectColumn(t, fr, "val_cumulative_percent")
	require.InDelta(t, 1.0/6.0, values[0].(float64), 1e-12)
	require.InDelta(t, 0.5, values[1].(float64), 1e-12)
	require.InDelta(t, 1.0, values[2].(float64), 1e-12)
}

func TestCumulativePercentZeroTotal(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{0, 0})
	err := fr.Transform(CumulativePercent("val"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{0.0, 0.0}, collectColumn(t, fr, "val_cumulative_percent"))
}

func TestCumulativeSumRequiresNumericColumn(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("word", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(1, sch, [][]interface{}{{"a"}})
	require.Nil(t, err)
	err = fr.Transform(CumulativeSum("word"))
	require.Error(t, err)
}

func TestTally(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("word", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{"a"}, {"b"}, {nil}, {"a"},
	})
	require.Nil(t, err)

	err = fr.Transform(Tally("word", "a"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.0, 1.0, 1.0, 2.0}, collectColumn(t, fr, "word_tally"))
}

func TestTallyPercent(t *testing.T) {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("word", &frame.StringColumnType{})
	require.Nil(t, err)
	fr, err := ftesting.LocalFrame(2, sch, [][]interface{}{
		{"a"}, {"b"}, {"a"},
	})
	require.Nil(t, err)

	err = fr.Transform(TallyPercent("word", "a"))
	require.Nil(t, err)
	values := collectColumn(t, fr, "word_tally_percent")
	require.InDelta(t, 0.5, values[0].(float64), 1e-12)
	require.InDelta(t, 0.5, values[1].(float64), 1e-12)
	require.InDelta(t, 1.0, values[2].(float64), 1e-12)
}

func TestBinColumnEqualWidth(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 2, 3, 4, 5})
	res, err := fr.TransformWithResult(BinColumn("val", 2, ""))
	require.Nil(t, err)
	require.Equal(t, []float64{1, 3, 5}, res.([]float64))
	require.True(t, fr.GetSchema().HasColumn("val_binned"))
	require.Equal(t,
		[]interface{}{int32(0), int32(0), int32(1), int32(1), int32(1)},
		collectColumn(t, fr, "val_binned"))
}

func TestBinColumnCustomName(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 5})
	_, err := fr.TransformWithResult(BinColumn("val", 2, "bucket"))
	require.Nil(t, err)
	require.True(t, fr.GetSchema().HasColumn("bucket"))
}

func TestBinColumnNullValue(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, nil, 5})
	_, err := fr.TransformWithResult(BinColumn("val", 2, ""))
	require.Nil(t, err)
	values := collectColumn(t, fr, "val_binned")
	require.Equal(t, int32(0), values[0])
	require.Nil(t, values[1])
	require.Equal(t, int32(1), values[2])
}

func TestBinColumnWithCutoffsClamps(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{-10, 1, 99})
	res, err := fr.TransformWithResult(BinColumnWithCutoffs("val", []float64{0, 2, 4}, ""))
	require.Nil(t, err)
	require.Equal(t, []float64{0, 2, 4}, res.([]float64))
	require.Equal(t,
		[]interface{}{int32(0), int32(0), int32(1)},
		collectColumn(t, fr, "val_binned"))
}

func TestQuantileBinColumn(t *testing.T) {
	values := make([]interface{}, 8)
	for i := range values {
		values[i] = i + 1
	}
	fr := createTestNumericFrame(t, values)
	res, err := fr.TransformWithResult(QuantileBinColumn("val", 2, ""))
	require.Nil(t, err)
	cutoffs := res.([]float64)
	require.Len(t, cutoffs, 3)
	binned := collectColumn(t, fr, "val_binned")
	require.Equal(t, int32(0), binned[0])
	require.Equal(t, int32(1), binned[7])
}

func TestBinColumnValidation(t *testing.T) {
	fr := createTestNumericFrame(t, []interface{}{1, 2})
	_, err := fr.TransformWithResult(BinColumn("val", 0, ""))
	require.Error(t, err)
	_, err = fr.TransformWithResult(BinColumn("missing", 2, ""))
	require.Error(t, err)
}
