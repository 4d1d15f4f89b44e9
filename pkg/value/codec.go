package value

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-sqlite3"
)

// ErrTypeMismatch is returned when a host value has no SQLite representation
var ErrTypeMismatch = errors.New("type mismatch")

// MismatchError reports the Go type that could not be encoded
type MismatchError struct {
	Type string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: SQLite values are numbers, strings, blobs and null, got %s", ErrTypeMismatch, e.Type)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Encode converts v into the value handed to the driver
func Encode(v Value) driver.Value {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindBlob:
		if v.b == nil {
			return []byte{}
		}
		return v.b
	default:
		return nil
	}
}

// EncodeAll converts positional parameters into driver arguments
func EncodeAll(params []Value) []any {
	args := make([]any, len(params))
	for i, p := range params {
		args[i] = Encode(p)
	}
	return args
}

// Decode converts a value produced by the driver into a Value.
// Blob buffers are kept as is. A type the sqlite3 driver never produces
// yields a *MismatchError.
func Decode(nv any) (Value, error) {
	switch x := nv.(type) {
	case nil:
		return Null(), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case string:
		return Text(x), nil
	case []byte:
		return Blob(x), nil
	case bool:
		// columns declared BOOLEAN come back as bool
		if x {
			return Int(1), nil
		}
		return Int(0), nil
	case time.Time:
		// columns declared DATE, DATETIME or TIMESTAMP come back parsed
		return Text(x.Format(sqlite3.SQLiteTimestampFormats[0])), nil
	default:
		return Value{}, &MismatchError{Type: fmt.Sprintf("%T", nv)}
	}
}

// DecodeAll decodes a row of driver values in order, stopping at the first
// value that cannot be decoded
func DecodeAll(nvs []any) ([]Value, error) {
	vals := make([]Value, len(nvs))
	for i, nv := range nvs {
		v, err := Decode(nv)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// Of converts a host Go value into a Value. Types without a SQLite
// representation yield a *MismatchError.
func Of(hv any) (Value, error) {
	switch x := hv.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return ofUnsigned(uint64(x), hv)
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return ofUnsigned(x, hv)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Text(x), nil
	case []byte:
		return Blob(x), nil
	default:
		return Value{}, &MismatchError{Type: fmt.Sprintf("%T", hv)}
	}
}

func ofUnsigned(u uint64, hv any) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, &MismatchError{Type: fmt.Sprintf("%T overflowing int64", hv)}
	}
	return Int(int64(u)), nil
}

// Params converts host values into positional parameters, stopping at the
// first value that cannot be encoded
func Params(hvs ...any) ([]Value, error) {
	params := make([]Value, len(hvs))
	for i, hv := range hvs {
		v, err := Of(hv)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		params[i] = v
	}
	return params, nil
}
