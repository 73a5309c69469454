// Package memory constructs Frames from in-memory row data, optionally
// inferring a Schema from the data itself.
package memory

import (
	"fmt"
	"time"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/dataset"
	errors "github.com/go-frame/frame/errors"
	"github.com/go-frame/frame/schema"
)

// CreateFrame constructs a Frame from raw rows and a Schema. Every raw row
// must have exactly one value per Schema column; values are coerced to their
// column's runtime representation via ColumnType.Parse, and values which fail
// to parse become nulls rather than failing the whole frame.
func CreateFrame(data [][]interface{}, sch frame.Schema, opts *dataset.Options) (*frame.Frame, error) {
	if sch == nil {
		return nil, errors.MissingParameterError{Name: "schema"}
	}
	types := sch.ColumnTypes()
	rows := make([]frame.Row, len(data))
	for i, raw := range data {
		if len(raw) != len(types) {
			return nil, errors.IncompatibleRowError{Expected: len(types), Actual: len(raw)}
		}
		fields := make([]interface{}, len(raw))
		for j, v := range raw {
			if v == nil {
				continue
			}
			parsed, err := types[j].Parse(v)
			if err != nil {
				continue // unparseable values become nulls
			}
			fields[j] = parsed
		}
		rows[i] = frame.CreateRow(sch, fields)
	}
	return frame.CreateFrame(dataset.CreateDataset(rows, opts), sch)
}

// CreateFrameWithInferredSchema constructs a Frame from raw rows, inferring
// the Schema from the data. Column names default to C0, C1, ... when
// columnNames is empty.
func CreateFrameWithInferredSchema(data [][]interface{}, columnNames []string, opts *dataset.Options) (*frame.Frame, error) {
	sch, err := InferSchema(data, columnNames, 0)
	if err != nil {
		return nil, err
	}
	return CreateFrame(data, sch, opts)
}

// InferSchema derives a Schema from raw rows by examining up to sampleSize
// rows (every row when sampleSize <= 0). Integral values widen to Int64,
// mixed integral/fractional columns widen to Float64, and otherwise mixed
// columns fall back to String. A column observed only as nil is typed String.
// Column names default to C0, C1, ... when columnNames is empty.
func InferSchema(data [][]interface{}, columnNames []string, sampleSize int) (frame.Schema, error) {
	if len(data) == 0 && len(columnNames) == 0 {
		return nil, errors.MissingParameterError{Name: "data"}
	}
	width := len(columnNames)
	if width == 0 {
		width = len(data[0])
	}
	if len(columnNames) > 0 && len(data) > 0 && len(data[0]) != width {
		return nil, errors.IncompatibleRowError{Expected: width, Actual: len(data[0])}
	}

	kinds := make([]valueKind, width)
	for i, raw := range data {
		if sampleSize > 0 && i >= sampleSize {
			break
		}
		if len(raw) != width {
			return nil, errors.IncompatibleRowError{Expected: width, Actual: len(raw)}
		}
		for j, v := range raw {
			kinds[j] = mergeKinds(kinds[j], kindOf(v))
		}
	}

	sch := schema.CreateSchema()
	for j := 0; j < width; j++ {
		name := fmt.Sprintf("C%d", j)
		if len(columnNames) > 0 {
			name = columnNames[j]
		}
		if _, err := sch.CreateColumn(name, kinds[j].columnType()); err != nil {
			return nil, err
		}
	}
	return sch, nil
}

// valueKind is a point in the type-widening lattice used during inference
type valueKind int

const (
	unknownKind valueKind = iota
	intKind
	floatKind
	boolKind
	timeKind
	stringKind
)

func kindOf(v interface{}) valueKind {
	switch v.(type) {
	case nil:
		return unknownKind
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return intKind
	case float32, float64:
		return floatKind
	case bool:
		return boolKind
	case time.Time:
		return timeKind
	default:
		return stringKind
	}
}

func mergeKinds(a valueKind, b valueKind) valueKind {
	switch {
	case a == b:
		return a
	case a == unknownKind:
		return b
	case b == unknownKind:
		return a
	case (a == intKind && b == floatKind) || (a == floatKind && b == intKind):
		return floatKind
	default:
		return stringKind
	}
}

func (k valueKind) columnType() frame.ColumnType {
	switch k {
	case intKind:
		return &frame.Int64ColumnType{}
	case floatKind:
		return &frame.Float64ColumnType{}
	case boolKind:
		return &frame.BoolColumnType{}
	case timeKind:
		return &frame.TimeColumnType{}
	default:
		return &frame.StringColumnType{}
	}
}
