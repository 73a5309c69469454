package util

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-frame/frame"
)

// CompareValues imposes a total order on field values: nil sorts before
// everything, numeric values compare numerically, then bools, times and
// strings compare within their own kind. Values of unrelated kinds fall back
// to a comparison of their string forms, so the order is always total.
func CompareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	af, aNum := frame.ToFloat64(a)
	bf, bNum := frame.ToFloat64(b)
	if aNum && bNum {
		if af < bf {
			return -1
		} else if af > bf {
			return 1
		}
		return 0
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			if ab == bb {
				return 0
			} else if !ab {
				return -1
			}
			return 1
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			if at.Before(bt) {
				return -1
			} else if at.After(bt) {
				return 1
			}
			return 0
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

// RowComparatorFor builds a RowComparator ordering rows by the given columns
// in sequence. All named columns must exist in schema.
func RowComparatorFor(schema frame.Schema, orders []frame.SortColumn) (frame.RowComparator, error) {
	idxs := make([]int, len(orders))
	for i, o := range orders {
		col, err := schema.GetColumn(o.Name)
		if err != nil {
			return nil, err
		}
		idxs[i] = col.Index()
	}
	return func(lrow, rrow frame.Row) (int, error) {
		lf := lrow.Fields()
		rf := rrow.Fields()
		for i, o := range orders {
			c := CompareValues(lf[idxs[i]], rf[idxs[i]])
			if c != 0 {
				if o.Descending {
					return -c, nil
				}
				return c, nil
			}
		}
		return 0, nil
	}, nil
}

// SingleColumnComparator orders rows ascending by one column, nulls first
func SingleColumnComparator(schema frame.Schema, colName string) (frame.RowComparator, error) {
	return RowComparatorFor(schema, []frame.SortColumn{{Name: colName}})
}

// writeKeyValue renders one field value into a composite key. Non-null values
// are length-prefixed, so rendered strings containing the null marker byte
// cannot collide with a neighbouring field's encoding.
func writeKeyValue(key *bytes.Buffer, colType frame.ColumnType, v interface{}) {
	if v == nil {
		key.WriteByte(0x00)
		return
	}
	s := colType.ToString(v)
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
	key.WriteByte(0x01)
	key.Write(lenBuf[:n])
	key.WriteString(s)
}

// KeyColumns builds a KeyingOperation which produces an exact composite key
// from the named columns of a Row. Values are rendered through their column
// types with a length prefix and a distinct marker for nulls, so two rows
// share a key iff their key column values are equal.
func KeyColumns(schema frame.Schema, colNames []string) (frame.KeyingOperation, error) {
	idxs := make([]int, len(colNames))
	types := make([]frame.ColumnType, len(colNames))
	for i, name := range colNames {
		col, err := schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		idxs[i] = col.Index()
		types[i] = col.Type()
	}
	return func(row frame.Row) ([]byte, error) {
		var key bytes.Buffer
		fields := row.Fields()
		for i, idx := range idxs {
			writeKeyValue(&key, types[i], fields[idx])
		}
		return key.Bytes(), nil
	}, nil
}

// WholeRowKey is a KeyingOperation producing an exact composite key from
// every field of a Row, in column index order. Two rows share a key iff all of
// their field values are equal.
func WholeRowKey(row frame.Row) ([]byte, error) {
	var key bytes.Buffer
	types := row.Schema().ColumnTypes()
	for i, v := range row.Fields() {
		writeKeyValue(&key, types[i], v)
	}
	return key.Bytes(), nil
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", v)
	}
}
