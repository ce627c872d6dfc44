package internalwasm

import (
	"testing"

	"github.com/aniwei/tinywasm/api"
	"github.com/stretchr/testify/require"
)

func TestStore_EvalConst(t *testing.T) {
	s := NewStore()
	gAddr := s.AddGlobal(GlobalType{ValType: api.ValueTypeI32}, RawWasmValueFromI32(7), 0)

	tests := []struct {
		name string
		expr ConstInstruction
		want RawWasmValue
	}{
		{name: "i32.const", expr: ConstInstruction{Kind: ConstI32Const, I32: 5}, want: RawWasmValueFromI32(5)},
		{name: "i64.const", expr: ConstInstruction{Kind: ConstI64Const, I64: 9}, want: RawWasmValueFromI64(9)},
		{name: "f32.const", expr: ConstInstruction{Kind: ConstF32Const, F32: 1.5}, want: RawWasmValueFromF32(1.5)},
		{name: "f64.const", expr: ConstInstruction{Kind: ConstF64Const, F64: 2.5}, want: RawWasmValueFromF64(2.5)},
		{name: "global.get", expr: ConstInstruction{Kind: ConstGlobalGet, GlobalIdx: gAddr}, want: RawWasmValueFromI32(7)},
		{name: "ref.null", expr: ConstInstruction{Kind: ConstRefNull, RefNullType: api.ValueTypeFuncref}, want: 0},
		{name: "ref.func", expr: ConstInstruction{Kind: ConstRefFunc, FuncIdx: 3}, want: RawWasmValueFromI32(3)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.EvalConst(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStore_EvalConst_badGlobalGet(t *testing.T) {
	s := NewStore()
	_, err := s.EvalConst(ConstInstruction{Kind: ConstGlobalGet, GlobalIdx: 99})
	require.Error(t, err)
}

func TestStore_EvalI32Const(t *testing.T) {
	s := NewStore()
	gAddr := s.AddGlobal(GlobalType{ValType: api.ValueTypeI32}, RawWasmValueFromI32(11), 0)

	v, err := s.EvalI32Const(ConstInstruction{Kind: ConstI32Const, I32: 4})
	require.NoError(t, err)
	require.Equal(t, int32(4), v)

	v, err = s.EvalI32Const(ConstInstruction{Kind: ConstGlobalGet, GlobalIdx: gAddr})
	require.NoError(t, err)
	require.Equal(t, int32(11), v)
}

func TestStore_EvalI32Const_rejectsNonI32(t *testing.T) {
	s := NewStore()
	_, err := s.EvalI32Const(ConstInstruction{Kind: ConstF64Const, F64: 1})
	require.Error(t, err)
	var unsupported *UnsupportedFeatureError
	require.ErrorAs(t, err, &unsupported)
}
