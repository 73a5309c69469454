package transform

import (
	"github.com/go-frame/frame"
	"github.com/go-frame/frame/accumulators"
	errors "github.com/go-frame/frame/errors"
	iutil "github.com/go-frame/frame/internal/util"
	ostats "github.com/go-frame/frame/operations/stats"
)

// BinColumn appends an Int32 column holding the equal-width bin index of a
// numeric column's value in each row, and returns the bin cutoffs used
// ([]float64, numBins+1 edges). An empty binColumnName defaults to
// <colName>_binned. Null values receive a null bin index. An all-null column
// yields no cutoffs and an all-null bin column.
func BinColumn(colName string, numBins int, binColumnName string) frame.TransformationWithResult {
	return func(state *frame.State) (*frame.State, interface{}, error) {
		if err := validateBinColumn(state.GetSchema(), colName, numBins); err != nil {
			return nil, nil, err
		}
		acc, err := state.GetDataset().Aggregate(accumulators.Extremes(colName))
		if err != nil {
			return nil, nil, err
		}
		extremes := acc.(*accumulators.MinMax)
		min, ok := extremes.GetMin()
		if !ok {
			return appendBinColumn(state, colName, binColumnName, []float64{})
		}
		max, _ := extremes.GetMax()
		return appendBinColumn(state, colName, binColumnName, iutil.EqualWidthCutoffs(min, max, numBins))
	}
}

// QuantileBinColumn appends an Int32 column holding the equal-depth bin index
// of a numeric column's value in each row, using cutoffs at evenly spaced
// quantiles, and returns the cutoffs used ([]float64). Repeated quantile
// values are deduplicated, so fewer than numBins bins may result.
func QuantileBinColumn(colName string, numBins int, binColumnName string) frame.TransformationWithResult {
	return func(state *frame.State) (*frame.State, interface{}, error) {
		if err := validateBinColumn(state.GetSchema(), colName, numBins); err != nil {
			return nil, nil, err
		}
		res, err := ostats.QuantileCutoffs(colName, numBins)(state)
		if err != nil {
			return nil, nil, err
		}
		return appendBinColumn(state, colName, binColumnName, res.([]float64))
	}
}

// BinColumnWithCutoffs appends an Int32 column holding the bin index of a
// numeric column's value in each row for explicit, ordered bin edges, and
// returns those edges. Values outside the edges are clamped into the first or
// last bin.
func BinColumnWithCutoffs(colName string, cutoffs []float64, binColumnName string) frame.TransformationWithResult {
	return func(state *frame.State) (*frame.State, interface{}, error) {
		if err := validateBinColumn(state.GetSchema(), colName, len(cutoffs)-1); err != nil {
			return nil, nil, err
		}
		return appendBinColumn(state, colName, binColumnName, cutoffs)
	}
}

func validateBinColumn(schema frame.Schema, colName string, numBins int) error {
	if len(colName) == 0 {
		return errors.MissingParameterError{Name: "column name"}
	}
	col, err := schema.GetColumn(colName)
	if err != nil {
		return err
	}
	if !col.Type().IsNumeric() {
		return errors.NotNumericError{Name: colName}
	}
	if numBins < 1 {
		return errors.InvalidBinCountError{NumBins: numBins}
	}
	return nil
}

func appendBinColumn(state *frame.State, colName string, binColumnName string, cutoffs []float64) (*frame.State, interface{}, error) {
	if len(binColumnName) == 0 {
		binColumnName = colName + "_binned"
	}
	newSchema, err := state.GetSchema().Clone().CreateColumn(binColumnName, &frame.Int32ColumnType{})
	if err != nil {
		return nil, nil, err
	}
	binned := state.GetDataset().Map(func(row frame.Row) (frame.Row, error) {
		var bin interface{}
		if !row.IsNil(colName) && len(cutoffs) >= 2 {
			v, err := row.GetFloat64(colName)
			if err != nil {
				return nil, err
			}
			bin = int32(iutil.BinIndex(cutoffs, v))
		}
		fields := make([]interface{}, 0, len(row.Fields())+1)
		fields = append(fields, row.Fields()...)
		fields = append(fields, bin)
		return frame.CreateRow(newSchema, fields), nil
	})
	return frame.CreateState(binned, newSchema), cutoffs, nil
}
