package stats

import (
	"math"
	"testing"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/schema"
	ftesting "github.com/go-frame/frame/testing"
	"github.com/stretchr/testify/require"
)

func createTestMatrixFrame(t *testing.T, cols []string, data [][]interface{}) *frame.Frame {
	sch := schema.CreateSchema()
	for _, name := range cols {
		_, err := sch.CreateColumn(name, &frame.Float64ColumnType{})
		require.Nil(t, err)
	}
	fr, err := ftesting.LocalFrame(3, sch, data)
	require.Nil(t, err)
	return fr
}

func TestCovariance(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{
		{1, 4}, {2, 3}, {3, 2}, {4, 1},
	})
	res, err := fr.Summarize(Covariance("x", "y"))
	require.Nil(t, err)
	require.InDelta(t, -5.0/3.0, res.(float64), 1e-12)
}

func TestCorrelationPerfectlyLinear(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{
		{1, 2}, {2, 4}, {3, 6},
	})
	res, err := fr.Summarize(Correlation("x", "y"))
	require.Nil(t, err)
	require.InDelta(t, 1.0, res.(float64), 1e-12)
}

func TestCorrelationMatrixSymmetricSinglePass(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y", "z"}, [][]interface{}{
		{1, 2, 7}, {2, 4, 5}, {3, 5, 9}, {4, 9, 2}, {5, 11, 8},
	})
	res, err := fr.Summarize(CorrelationMatrix("x", "y", "z"))
	require.Nil(t, err)
	m := res.(*Matrix)
	require.Equal(t, []string{"x", "y", "z"}, m.ColumnNames)
	for i := range m.Values {
		require.InDelta(t, 1.0, m.Values[i][i], 1e-12)
		for j := range m.Values {
			require.Equal(t, m.Values[i][j], m.Values[j][i])
			require.LessOrEqual(t, math.Abs(m.Values[i][j]), 1.0+1e-12)
		}
	}

	// the pairwise sums for every pair are accumulated simultaneously, so the
	// number of data scans is one regardless of column count
	require.Equal(t, int64(1), fr.GetStats().GetNumPasses())
}

func TestCovarianceMatrixCompleteCaseRows(t *testing.T) {
	// the row holding a null is excluded from every pairwise computation
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{
		{1, 4}, {2, 3}, {100, nil}, {3, 2}, {4, 1},
	})
	res, err := fr.Summarize(CovarianceMatrix("x", "y"))
	require.Nil(t, err)
	m := res.(*Matrix)
	v, err := m.Get("x", "y")
	require.Nil(t, err)
	require.InDelta(t, -5.0/3.0, v, 1e-12)
}

func TestCorrelationZeroVarianceColumn(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{
		{1, 7}, {2, 7}, {3, 7},
	})
	res, err := fr.Summarize(Correlation("x", "y"))
	require.Nil(t, err)
	require.True(t, math.IsNaN(res.(float64)))
}

func TestCovarianceTooFewRows(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{{1, 2}})
	res, err := fr.Summarize(Covariance("x", "y"))
	require.Nil(t, err)
	require.True(t, math.IsNaN(res.(float64)))
}

func TestCorrelationMatrixValidation(t *testing.T) {
	fr := createTestMatrixFrame(t, []string{"x", "y"}, [][]interface{}{{1, 2}})
	_, err := fr.Summarize(CorrelationMatrix("x"))
	require.Error(t, err)
	_, err = fr.Summarize(CorrelationMatrix("x", "missing"))
	require.Error(t, err)
	_, err = fr.Summarize(CovarianceMatrix("x", "missing"))
	require.Error(t, err)
}
