package internalwasm

import "github.com/aniwei/tinywasm/api"

// ValType is a value or reference type, encoded the same way api.ValueType is.
type ValType = api.ValueType

// WasmValue is a single typed Wasm value, as produced by the constant
// expression evaluator and table/element lookups. Unlike RawWasmValue, this
// is typed: it is a closed sum over the shapes described in spec.md §4.3 and
// §4.7, suited to exhaustive matching instead of trait-object dispatch.
type WasmValue struct {
	Type ValType
	// I64 packs I32/I64/RefFunc/RefExtern payloads; F32/F64 use F64 below.
	// RefNull carries no payload; only Type is meaningful.
	I64 int64
	F64 float64
}

// I32Value constructs an i32 WasmValue.
func I32Value(v int32) WasmValue { return WasmValue{Type: api.ValueTypeI32, I64: int64(v)} }

// I64Value constructs an i64 WasmValue.
func I64Value(v int64) WasmValue { return WasmValue{Type: api.ValueTypeI64, I64: v} }

// F32Value constructs an f32 WasmValue.
func F32Value(v float32) WasmValue { return WasmValue{Type: api.ValueTypeF32, F64: float64(v)} }

// F64Value constructs an f64 WasmValue.
func F64Value(v float64) WasmValue { return WasmValue{Type: api.ValueTypeF64, F64: v} }

// RefFuncValue constructs a funcref WasmValue pointing at the given store FuncAddr.
func RefFuncValue(addr FuncAddr) WasmValue {
	return WasmValue{Type: api.ValueTypeFuncref, I64: int64(addr)}
}

// RefExternValue constructs an externref WasmValue pointing at the given opaque address.
func RefExternValue(addr Addr) WasmValue {
	return WasmValue{Type: api.ValueTypeExternref, I64: int64(addr)}
}

// RefNullValue constructs the null reference of the given reference type.
func RefNullValue(t ValType) WasmValue { return WasmValue{Type: t} }

// MemoryArch distinguishes 32-bit from 64-bit linear memories. Only I32 is
// supported; I64 always fails with UnsupportedFeatureError per spec.md §4.1.
type MemoryArch int

const (
	MemoryArchI32 MemoryArch = iota
	MemoryArchI64
)

// MemoryType is the decoded signature of a memory definition.
type MemoryType struct {
	Arch             MemoryArch
	PageCountInitial uint32
	// PageCountMax is nil when the module declares no maximum, in which
	// case MemoryMaxPages is the effective maximum.
	PageCountMax *uint32
}

// TableType is the decoded signature of a table definition.
type TableType struct {
	ElementType ValType
	SizeInitial uint32
	// SizeMax is nil when the module declares no maximum, in which case
	// MaxTableSize is the effective maximum.
	SizeMax *uint32
}

// GlobalType is the decoded signature of a global definition.
type GlobalType struct {
	ValType ValType
	Mutable bool
}

// ConstInstructionKind discriminates the closed set of instructions legal in
// a constant expression (spec.md §4.7 / Non-goals).
type ConstInstructionKind int

const (
	ConstI32Const ConstInstructionKind = iota
	ConstI64Const
	ConstF32Const
	ConstF64Const
	ConstGlobalGet
	ConstRefNull
	ConstRefFunc
)

// ConstInstruction is a single instruction of a constant expression. Only
// one of the payload fields is meaningful, selected by Kind.
type ConstInstruction struct {
	Kind ConstInstructionKind

	I32 int32
	I64 int64
	F32 float32
	F64 float64

	// GlobalIdx is used by ConstGlobalGet: the store-absolute address of an
	// already-allocated global (spec.md requires it be allocated in an
	// earlier instantiation stage).
	GlobalIdx GlobalAddr

	// RefNullType is used by ConstRefNull.
	RefNullType ValType

	// FuncIdx is used by ConstRefFunc: a module-local function index.
	FuncIdx uint32
}

// WasmFunction is a decoded function body, exactly as handed to Store.InitFuncs.
// The interpreter (an external collaborator) is the only reader of Body.
type WasmFunction struct {
	TypeIdx uint32
	Locals  []ValType
	Body    []byte
}

// ElementKind discriminates the three element segment shapes (spec.md §3).
type ElementKind int

const (
	ElementKindPassive ElementKind = iota
	ElementKindDeclared
	ElementKindActive
)

// ElementSegment is the decoded form of an element segment, as handed to
// Store.InitElems. For ElementKindActive, Table/Offset name the destination;
// they are zero for the other two kinds.
type ElementSegment struct {
	Kind   ElementKind
	Table  uint32
	Offset ConstInstruction
	// Items are the segment's init expressions, restricted to the subset
	// the evaluator supports (ref.null / ref.func); anything else fails
	// UnsupportedFeatureError when the segment is initialized.
	Items []ConstInstruction
}

// DataKind discriminates an active vs. passive data segment.
type DataKind int

const (
	DataKindPassive DataKind = iota
	DataKindActive
)

// DataSegment is the decoded form of a data segment, as handed to Store.InitDatas.
type DataSegment struct {
	Kind   DataKind
	Mem    uint32
	Offset ConstInstruction
	Bytes  []byte
}
