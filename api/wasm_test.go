package api

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExternTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    ExternType
		expected string
	}{
		{"func", ExternTypeFunc, "func"},
		{"table", ExternTypeTable, "table"},
		{"mem", ExternTypeMemory, "memory"},
		{"global", ExternTypeGlobal, "global"},
		{"unknown", 100, "0x64"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ExternTypeName(tc.input))
		})
	}
}

func TestValueTypeName(t *testing.T) {
	tests := []struct {
		name     string
		input    ValueType
		expected string
	}{
		{"i32", ValueTypeI32, "i32"},
		{"i64", ValueTypeI64, "i64"},
		{"f32", ValueTypeF32, "f32"},
		{"f64", ValueTypeF64, "f64"},
		{"funcref", ValueTypeFuncref, "funcref"},
		{"externref", ValueTypeExternref, "externref"},
		{"unknown", 0, "unknown"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ValueTypeName(tc.input))
		})
	}
}

func TestIsRefType(t *testing.T) {
	require.True(t, IsRefType(ValueTypeFuncref))
	require.True(t, IsRefType(ValueTypeExternref))
	require.False(t, IsRefType(ValueTypeI32))
	require.False(t, IsRefType(ValueTypeF64))
}

func TestEncodeDecodeF32(t *testing.T) {
	for _, f := range []float32{0, 1.5, -1.5, float32(math.Inf(1)), float32(math.Inf(-1))} {
		require.Equal(t, f, DecodeF32(EncodeF32(f)))
	}
}

func TestEncodeDecodeF64(t *testing.T) {
	for _, f := range []float64{0, 1.5, -1.5, math.Inf(1), math.Inf(-1)} {
		require.Equal(t, f, DecodeF64(EncodeF64(f)))
	}
}

func TestEncodeI32(t *testing.T) {
	require.Equal(t, uint64(0xffffffff), EncodeI32(-1))
	require.Equal(t, uint64(42), EncodeI32(42))
}

func TestEncodeI64(t *testing.T) {
	require.Equal(t, uint64(0xffffffffffffffff), EncodeI64(-1))
	require.Equal(t, uint64(42), EncodeI64(42))
}
