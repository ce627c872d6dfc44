package internalwasm

import "github.com/aniwei/tinywasm/api"

// RawWasmValue is an untyped 64-bit bit pattern used to store values of all
// numeric and reference types uniformly, the same way globals and constant
// expressions are represented in spec.md §4.5/§4.7 ("Raw Wasm Value").
// Interpretation of the bits is the caller's responsibility, driven by the
// associated GlobalType/ValType.
type RawWasmValue uint64

// RawWasmValueFromI32 encodes an i32.
func RawWasmValueFromI32(v int32) RawWasmValue { return RawWasmValue(api.EncodeI32(v)) }

// RawWasmValueFromI64 encodes an i64.
func RawWasmValueFromI64(v int64) RawWasmValue { return RawWasmValue(api.EncodeI64(v)) }

// RawWasmValueFromF32 encodes an f32.
func RawWasmValueFromF32(v float32) RawWasmValue { return RawWasmValue(api.EncodeF32(v)) }

// RawWasmValueFromF64 encodes an f64.
func RawWasmValueFromF64(v float64) RawWasmValue { return RawWasmValue(api.EncodeF64(v)) }

// RawWasmValueFromValue encodes a typed WasmValue, the form used when a
// constant expression evaluates to a full value (spec.md §4.7 eval_const).
func RawWasmValueFromValue(v WasmValue) RawWasmValue {
	switch v.Type {
	case api.ValueTypeF32:
		return RawWasmValueFromF32(float32(v.F64))
	case api.ValueTypeF64:
		return RawWasmValueFromF64(v.F64)
	default:
		// i32, i64, funcref, externref, and ref-null all fit in the raw i64 lane.
		return RawWasmValue(uint64(v.I64))
	}
}

// I32 decodes the low 32 bits as a signed i32.
func (v RawWasmValue) I32() int32 { return int32(uint32(v)) }

// I64 decodes the value as a signed i64.
func (v RawWasmValue) I64() int64 { return int64(v) }

// F32 decodes the low 32 bits as an f32.
func (v RawWasmValue) F32() float32 { return api.DecodeF32(uint64(v)) }

// F64 decodes the value as an f64.
func (v RawWasmValue) F64() float64 { return api.DecodeF64(uint64(v)) }
