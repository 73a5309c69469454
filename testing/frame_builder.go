// Package testing provides helpers for constructing small, local Frames over
// in-memory data, for use in tests.
package testing

import (
	"github.com/go-frame/frame"
	"github.com/go-frame/frame/dataset"
	"github.com/go-frame/frame/datasource/memory"
	"github.com/go-frame/frame/schema"
)

// LocalFrame constructs a Frame over in-memory data with a fixed number of
// partitions
func LocalFrame(numPartitions int, sch frame.Schema, data [][]interface{}) (*frame.Frame, error) {
	return memory.CreateFrame(data, sch, &dataset.Options{NumPartitions: numPartitions})
}

// NumericFrame constructs a Frame holding a single Float64 column with the
// given name and values. Nil entries become nulls.
func NumericFrame(numPartitions int, colName string, values []interface{}) (*frame.Frame, error) {
	sch := schema.CreateSchema()
	if _, err := sch.CreateColumn(colName, &frame.Float64ColumnType{}); err != nil {
		return nil, err
	}
	data := make([][]interface{}, len(values))
	for i, v := range values {
		data[i] = []interface{}{v}
	}
	return LocalFrame(numPartitions, sch, data)
}
