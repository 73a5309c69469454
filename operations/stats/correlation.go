package stats

import (
	"fmt"
	"math"

	"github.com/go-frame/frame"
	errors "github.com/go-frame/frame/errors"
)

// Matrix is a square symmetric matrix indexed by an ordered list of column
// names: Values[i][j] relates ColumnNames[i] to ColumnNames[j].
type Matrix struct {
	ColumnNames []string
	Values      [][]float64
}

// Get returns the matrix entry relating two named columns
func (m *Matrix) Get(colA string, colB string) (float64, error) {
	i, err := m.indexOf(colA)
	if err != nil {
		return 0, err
	}
	j, err := m.indexOf(colB)
	if err != nil {
		return 0, err
	}
	return m.Values[i][j], nil
}

func (m *Matrix) indexOf(colName string) (int, error) {
	for i, name := range m.ColumnNames {
		if name == colName {
			return i, nil
		}
	}
	return 0, errors.ColumnNotFoundError{Name: colName}
}

// CovarianceMatrix computes the pairwise sample covariances of two or more
// numeric columns in a single pass: every pairwise running sum is accumulated
// simultaneously, so the number of data scans is one regardless of column
// count. Rows with a null in any requested column are excluded. Fewer than
// two complete rows yields NaN entries.
func CovarianceMatrix(colNames ...string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if len(colNames) < 2 {
			return nil, errors.MissingParameterError{Name: "column names (need at least 2)"}
		}
		sums, err := pairwiseSumsOf(state, colNames)
		if err != nil {
			return nil, err
		}
		return sums.covarianceMatrix(), nil
	}
}

// CorrelationMatrix computes the pairwise correlations of two or more numeric
// columns in a single pass. The diagonal is 1 for any column with nonzero
// variance; a zero-variance column yields NaN in its row and column rather
// than an error.
func CorrelationMatrix(colNames ...string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		if len(colNames) < 2 {
			return nil, errors.MissingParameterError{Name: "column names (need at least 2)"}
		}
		sums, err := pairwiseSumsOf(state, colNames)
		if err != nil {
			return nil, err
		}
		cov := sums.covarianceMatrix()
		n := len(colNames)
		corr := &Matrix{ColumnNames: cov.ColumnNames, Values: make([][]float64, n)}
		for i := range corr.Values {
			corr.Values[i] = make([]float64, n)
		}
		// normalize the upper triangle and mirror; the matrix is symmetric by
		// construction
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				sd := math.Sqrt(cov.Values[i][i]) * math.Sqrt(cov.Values[j][j])
				r := cov.Values[i][j] / sd
				corr.Values[i][j] = r
				corr.Values[j][i] = r
			}
		}
		return corr, nil
	}
}

// Covariance computes the sample covariance of a single pair of numeric columns
func Covariance(colA string, colB string) frame.Summarization {
	return scalarEntry(CovarianceMatrix, colA, colB)
}

// Correlation computes the correlation of a single pair of numeric columns
func Correlation(colA string, colB string) frame.Summarization {
	return scalarEntry(CorrelationMatrix, colA, colB)
}

func scalarEntry(matrixOp func(...string) frame.Summarization, colA, colB string) frame.Summarization {
	return func(state *frame.State) (interface{}, error) {
		res, err := matrixOp(colA, colB)(state)
		if err != nil {
			return nil, err
		}
		return res.(*Matrix).Values[0][1], nil
	}
}

func pairwiseSumsOf(state *frame.State, colNames []string) (*pairwiseSums, error) {
	schema := state.GetSchema()
	if _, err := schema.ValidateColumnsExist(colNames...); err != nil {
		return nil, err
	}
	for _, name := range colNames {
		if err := validateNumericColumn(schema, name); err != nil {
			return nil, err
		}
	}
	acc, err := state.GetDataset().Aggregate(func() frame.Accumulator {
		n := len(colNames)
		prods := make([][]float64, n)
		for i := range prods {
			prods[i] = make([]float64, n)
		}
		return &pairwiseSums{cols: colNames, sums: make([]float64, n), prods: prods}
	})
	if err != nil {
		return nil, err
	}
	return acc.(*pairwiseSums), nil
}

// pairwiseSums accumulates, for an ordered set of columns, the complete set
// of running sums needed for every pairwise covariance: per-column sums and
// the upper triangle of pairwise products, plus the complete-row count.
type pairwiseSums struct {
	cols  []string
	n     int64
	sums  []float64
	prods [][]float64
}

// Accumulate adds a row to this Accumulator. Rows with a null in any tracked
// column contribute nothing.
func (a *pairwiseSums) Accumulate(row frame.Row) error {
	values := make([]float64, len(a.cols))
	for i, name := range a.cols {
		if row.IsNil(name) {
			return nil
		}
		v, err := row.GetFloat64(name)
		if err != nil {
			return err
		}
		values[i] = v
	}
	a.n++
	for i, v := range values {
		a.sums[i] += v
		for j := i; j < len(values); j++ {
			a.prods[i][j] += v * values[j]
		}
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *pairwiseSums) Merge(o frame.Accumulator) error {
	pa, ok := o.(*pairwiseSums)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a pairwiseSums Accumulator")
	}
	a.n += pa.n
	for i := range a.sums {
		a.sums[i] += pa.sums[i]
		for j := i; j < len(a.sums); j++ {
			a.prods[i][j] += pa.prods[i][j]
		}
	}
	return nil
}

// covarianceMatrix finalizes the accumulated sums into a sample covariance
// matrix, mirroring the computed upper triangle
func (a *pairwiseSums) covarianceMatrix() *Matrix {
	n := len(a.cols)
	m := &Matrix{ColumnNames: a.cols, Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var cov float64
			if a.n < 2 {
				cov = math.NaN()
			} else {
				cov = (a.prods[i][j] - a.sums[i]*a.sums[j]/float64(a.n)) / float64(a.n-1)
			}
			m.Values[i][j] = cov
			m.Values[j][i] = cov
		}
	}
	return m
}
