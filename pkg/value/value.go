// Package value defines the tagged scalar type exchanged with the SQLite engine
// and the codec converting it to and from driver values.
package value

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Kind represents the storage class of a Value
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
	KindBlob
)

// String implements the Stringer interface for Kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindInteger:
		return "INTEGER"
	case KindFloat:
		return "REAL"
	case KindText:
		return "TEXT"
	case KindBlob:
		return "BLOB"
	default:
		return "UNKNOWN"
	}
}

// Value is a single SQLite scalar or blob. The zero Value is NULL.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    []byte
}

// Null returns the NULL value
func Null() Value {
	return Value{}
}

// Int returns an INTEGER value
func Int(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Float returns a REAL value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Text returns a TEXT value
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Blob returns a BLOB value. The slice is retained, not copied.
func Blob(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{kind: KindBlob, b: b}
}

// Kind returns the storage class of v
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is NULL
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Int64 returns the integer held by v, or 0 when v is not an INTEGER
func (v Value) Int64() int64 {
	return v.i
}

// Float64 returns the float held by v, or 0 when v is not a REAL
func (v Value) Float64() float64 {
	return v.f
}

// Text returns the string held by v, or "" when v is not TEXT
func (v Value) Text() string {
	return v.s
}

// Bytes returns the buffer held by a BLOB value without copying it.
// Callers that retain or modify the result should use CopyBytes.
func (v Value) Bytes() []byte {
	return v.b
}

// CopyBytes returns a private copy of the buffer held by a BLOB value
func (v Value) CopyBytes() []byte {
	if v.kind != KindBlob {
		return nil
	}
	return bytes.Clone(v.b)
}

// Equal reports whether v and o hold the same kind and payload.
// Floats compare bitwise so NaN equals itself.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	case KindText:
		return v.s == o.s
	case KindBlob:
		return bytes.Equal(v.b, o.b)
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindBlob:
		return fmt.Sprintf("x'%x'", v.b)
	default:
		return "NULL"
	}
}
