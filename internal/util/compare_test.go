package util

import (
	"testing"
	"time"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/schema"
	"github.com/stretchr/testify/require"
)

func createTestPairSchema(t *testing.T) frame.Schema {
	sch := schema.CreateSchema()
	_, err := sch.CreateColumn("a", &frame.StringColumnType{})
	require.Nil(t, err)
	_, err = sch.CreateColumn("b", &frame.StringColumnType{})
	require.Nil(t, err)
	return sch
}

func TestCompareValuesNumeric(t *testing.T) {
	require.Equal(t, -1, CompareValues(int64(1), 2.0))
	require.Equal(t, 1, CompareValues(3.5, int32(3)))
	require.Equal(t, 0, CompareValues(int64(4), 4.0))
}

func TestCompareValuesNilsFirst(t *testing.T) {
	require.Equal(t, -1, CompareValues(nil, int64(0)))
	require.Equal(t, 1, CompareValues("x", nil))
	require.Equal(t, 0, CompareValues(nil, nil))
}

func TestCompareValuesByKind(t *testing.T) {
	require.Equal(t, -1, CompareValues("abc", "abd"))
	require.Equal(t, -1, CompareValues(false, true))
	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)
	require.Equal(t, -1, CompareValues(earlier, later))
	require.Equal(t, 1, CompareValues(later, earlier))
}

func TestWholeRowKeyEqualRowsShareKey(t *testing.T) {
	sch := createTestPairSchema(t)
	left, err := WholeRowKey(frame.CreateRow(sch, []interface{}{"x", "y"}))
	require.Nil(t, err)
	right, err := WholeRowKey(frame.CreateRow(sch, []interface{}{"x", "y"}))
	require.Nil(t, err)
	require.Equal(t, left, right)
}

func TestWholeRowKeyControlBytesInValues(t *testing.T) {
	// shifting bytes between adjacent fields must not produce the same key,
	// even when the values contain the marker and former separator bytes
	sch := createTestPairSchema(t)
	left, err := WholeRowKey(frame.CreateRow(sch, []interface{}{"x\x1f\x01y", "z"}))
	require.Nil(t, err)
	right, err := WholeRowKey(frame.CreateRow(sch, []interface{}{"x", "y\x1f\x01z"}))
	require.Nil(t, err)
	require.NotEqual(t, left, right)
}

func TestKeyColumnsControlBytesInValues(t *testing.T) {
	sch := createTestPairSchema(t)
	keyfn, err := KeyColumns(sch, []string{"a", "b"})
	require.Nil(t, err)
	left, err := keyfn(frame.CreateRow(sch, []interface{}{"x\x1f\x01y", "z"}))
	require.Nil(t, err)
	right, err := keyfn(frame.CreateRow(sch, []interface{}{"x", "y\x1f\x01z"}))
	require.Nil(t, err)
	require.NotEqual(t, left, right)
}

func TestKeyColumnsNullDistinctFromEmptyString(t *testing.T) {
	sch := createTestPairSchema(t)
	keyfn, err := KeyColumns(sch, []string{"a"})
	require.Nil(t, err)
	null, err := keyfn(frame.CreateRow(sch, []interface{}{nil, "b"}))
	require.Nil(t, err)
	empty, err := keyfn(frame.CreateRow(sch, []interface{}{"", "b"}))
	require.Nil(t, err)
	require.NotEqual(t, null, empty)
}

func TestBinIndexEdges(t *testing.T) {
	cutoffs := []float64{1, 3, 5}
	require.Equal(t, 0, BinIndex(cutoffs, 1))
	require.Equal(t, 0, BinIndex(cutoffs, 2.999))
	require.Equal(t, 1, BinIndex(cutoffs, 3)) // interior edges belong to the upper bin
	require.Equal(t, 1, BinIndex(cutoffs, 5)) // the maximum belongs to the final bin
	require.Equal(t, 0, BinIndex(cutoffs, -100))
	require.Equal(t, 1, BinIndex(cutoffs, 100))
}

func TestEqualWidthCutoffs(t *testing.T) {
	require.Equal(t, []float64{0, 2.5, 5}, EqualWidthCutoffs(0, 5, 2))
	require.Equal(t, []float64{7, 7}, EqualWidthCutoffs(7, 7, 3))

	cutoffs := EqualWidthCutoffs(0.1, 0.7, 3)
	require.Len(t, cutoffs, 4)
	require.Equal(t, 0.7, cutoffs[3]) // final edge pinned to the maximum
}
