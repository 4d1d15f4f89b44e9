package value

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	values := []Value{
		Null(),
		Int(0),
		Int(-1),
		Int(math.MaxInt64),
		Int(math.MinInt64),
		Float(0),
		Float(-2.5),
		Float(math.Inf(1)),
		Float(math.NaN()),
		Float(math.SmallestNonzeroFloat64),
		Text(""),
		Text("hello"),
		Text("héllo\x00world"),
		Blob(nil),
		Blob([]byte{}),
		Blob([]byte{0, 1, 2, 255}),
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		buf := make([]byte, rng.Intn(32))
		rng.Read(buf)
		values = append(values,
			Int(rng.Int63()-rng.Int63()),
			Float(rng.NormFloat64()*1e6),
			Text(string(buf)),
			Blob(buf),
		)
	}

	for _, v := range values {
		got, err := Decode(Encode(v))
		require.NoError(t, err)
		assert.True(t, got.Equal(v), "round trip of %s gave %s", v, got)
	}
}

func TestDecodeExposesBlobBuffer(t *testing.T) {
	buf := []byte{1, 2, 3}
	v, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, KindBlob, v.Kind())

	buf[0] = 9
	assert.Equal(t, byte(9), v.Bytes()[0])

	cp := v.CopyBytes()
	cp[1] = 7
	assert.Equal(t, byte(2), v.Bytes()[1])
}

func TestDecodeDriverConveniences(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"true", true, Int(1)},
		{"false", false, Int(0)},
		{"nil", nil, Null()},
		{"timestamp", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), Text("2024-03-01 12:30:00+00:00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDecodeRejectsUnknownDriverTypes(t *testing.T) {
	for _, in := range []any{int32(1), uint64(2), float32(1.5), struct{}{}, []string{"a"}} {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrTypeMismatch, "%T", in)
	}

	vals, err := DecodeAll([]any{int64(1), "a", int(3)})
	assert.Nil(t, vals)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "column 3")

	vals, err = DecodeAll([]any{int64(1), nil, []byte{}})
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(1), Null(), Blob(nil)}, vals)
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"int", 42, Int(42)},
		{"int8", int8(-3), Int(-3)},
		{"uint32", uint32(7), Int(7)},
		{"uint64", uint64(math.MaxInt64), Int(math.MaxInt64)},
		{"float32", float32(1.5), Float(1.5)},
		{"string", "a", Text("a")},
		{"bytes", []byte("b"), Blob([]byte("b"))},
		{"value", Text("c"), Text("c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestOfTypeMismatch(t *testing.T) {
	for _, in := range []any{
		true,
		map[string]int{"a": 1},
		[]int{1, 2},
		struct{}{},
		uint64(math.MaxUint64),
		&[]byte{},
	} {
		_, err := Of(in)
		require.Error(t, err, "%T", in)
		assert.True(t, errors.Is(err, ErrTypeMismatch))

		var mismatch *MismatchError
		assert.True(t, errors.As(err, &mismatch))
	}
}

func TestParams(t *testing.T) {
	params, err := Params(1, "a", nil, []byte{1})
	require.NoError(t, err)
	require.Len(t, params, 4)
	assert.Equal(t, []any{int64(1), "a", nil, []byte{1}}, EncodeAll(params))

	_, err = Params(1, []string{"nested"})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "parameter 2")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "INTEGER", KindInteger.String())
	assert.Equal(t, "BLOB", KindBlob.String())
	assert.Equal(t, "UNKNOWN", Kind(99).String())
	assert.Equal(t, `"x"`, Text("x").String())
	assert.Equal(t, "NULL", Null().String())
}
