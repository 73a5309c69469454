// Package jsonl constructs Frames from line-delimited JSON documents. Each
// line is one row; Schema column names are gjson paths into the document, so
// nested fields are addressed with dotted names.
package jsonl

import (
	"bytes"

	"github.com/go-frame/frame"
	"github.com/go-frame/frame/dataset"
	errors "github.com/go-frame/frame/errors"
	"github.com/tidwall/gjson"
)

// CreateFrame constructs a Frame from JSON documents, one per line. Fields
// which are absent, JSON null, or unparseable as their column's type become
// nulls. Blank lines are skipped.
func CreateFrame(lines [][]byte, sch frame.Schema, opts *dataset.Options) (*frame.Frame, error) {
	if sch == nil {
		return nil, errors.MissingParameterError{Name: "schema"}
	}
	rows := make([]frame.Row, 0, len(lines))
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rows = append(rows, ParseDocument(line, sch))
	}
	return frame.CreateFrame(dataset.CreateDataset(rows, opts), sch)
}

// ParseDocument parses a standalone JSON document into a single Row under the
// given Schema, with the same null semantics as CreateFrame.
func ParseDocument(doc []byte, sch frame.Schema) frame.Row {
	names := sch.ColumnNames()
	types := sch.ColumnTypes()
	fields := make([]interface{}, len(names))
	for j, name := range names {
		res := gjson.GetBytes(doc, name)
		if !res.Exists() || res.Type == gjson.Null {
			continue
		}
		parsed, err := types[j].Parse(res.String())
		if err != nil {
			continue // unparseable values become nulls
		}
		fields[j] = parsed
	}
	return frame.CreateRow(sch, fields)
}
