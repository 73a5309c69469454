package frame

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ColumnType is an interface which is implemented to define a supported column
// type. Parse is the boundary where untyped data enters a Frame: it either
// produces a value of the type's canonical runtime representation, or an error.
// Callers which construct Frames from raw data substitute nil for values which
// fail to Parse, rather than dropping the row or surfacing the error.
type ColumnType interface {
	Parse(v interface{}) (interface{}, error) // Parse casts a raw value to this type's runtime representation
	ToString(v interface{}) string            // ToString produces a string representation of a value of this type
	IsNumeric() bool                          // IsNumeric returns true iff values of this type participate in numeric summarizations
}

// Int32ColumnType is a column type which stores an int32 value
type Int32ColumnType struct{}

// Parse casts a raw value to an int32
func (b *Int32ColumnType) Parse(v interface{}) (interface{}, error) {
	i, err := parseInt(v)
	if err != nil {
		return nil, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("value %d overflows int32", i)
	}
	return int32(i), nil
}

// ToString produces a string representation of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// IsNumeric returns true for Int32ColumnType
func (b *Int32ColumnType) IsNumeric() bool {
	return true
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Parse casts a raw value to an int64
func (b *Int64ColumnType) Parse(v interface{}) (interface{}, error) {
	return parseInt(v)
}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// IsNumeric returns true for Int64ColumnType
func (b *Int64ColumnType) IsNumeric() bool {
	return true
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Parse casts a raw value to a float32
func (b *Float32ColumnType) Parse(v interface{}) (interface{}, error) {
	f, err := parseFloat(v)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

// ToString produces a string representation of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
}

// IsNumeric returns true for Float32ColumnType
func (b *Float32ColumnType) IsNumeric() bool {
	return true
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Parse casts a raw value to a float64
func (b *Float64ColumnType) Parse(v interface{}) (interface{}, error) {
	return parseFloat(v)
}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// IsNumeric returns true for Float64ColumnType
func (b *Float64ColumnType) IsNumeric() bool {
	return true
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Parse casts a raw value to a bool
func (b *BoolColumnType) Parse(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return strconv.ParseBool(t)
	default:
		return nil, fmt.Errorf("cannot parse %v (%T) as bool", v, v)
	}
}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// IsNumeric returns false for BoolColumnType
func (b *BoolColumnType) IsNumeric() bool {
	return false
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// Parse casts a raw value to a string. Parsing only fails for nil values.
func (b *StringColumnType) Parse(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return v.(string)
}

// IsNumeric returns false for StringColumnType
func (b *StringColumnType) IsNumeric() bool {
	return false
}

// TimeColumnType is a column type which stores a time.Time value
type TimeColumnType struct {
	Format string // defaults to time.RFC3339
}

// Parse casts a raw value to a time.Time
func (b *TimeColumnType) Parse(v interface{}) (interface{}, error) {
	format := b.Format
	if len(format) == 0 {
		format = time.RFC3339
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(format, t)
	default:
		return nil, fmt.Errorf("cannot parse %v (%T) as time", v, v)
	}
}

// ToString produces a string representation of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	format := b.Format
	if len(format) == 0 {
		format = time.RFC3339
	}
	return v.(time.Time).Format(format)
}

// IsNumeric returns false for TimeColumnType
func (b *TimeColumnType) IsNumeric() bool {
	return false
}

func parseInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", t)
		}
		return int64(t), nil
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, fmt.Errorf("cannot parse %v (%T) as int", v, v)
	}
}

// floatToInt accepts only floats holding an exact integral value within the
// int64 range. Anything else is a parse failure rather than a truncation.
func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("cannot parse %v as int without loss", f)
	}
	return int64(f), nil
}

func parseFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		i, err := parseInt(v)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %v (%T) as float", v, v)
		}
		return float64(i), nil
	}
}
