package internalwasm

import "fmt"

// HostFunction is an opaque callable supplied by the embedder, as opposed
// to a decoded Wasm function body. The store never invokes it directly;
// it only carries the value for the (out-of-scope) interpreter to call.
type HostFunction interface{}

// FunctionKind discriminates the two shapes a FunctionInstance can wrap.
type FunctionKind int

const (
	FunctionKindWasm FunctionKind = iota
	FunctionKindHost
)

// Function is a closed sum of the two kinds a function instance can wrap:
// a decoded Wasm body, or a host-supplied callable. This replaces a trait
// object / interface dispatch with an exhaustively-matchable tag, mirroring
// tinywasm's `Function::Wasm(..) | Function::Host(..)`.
type Function struct {
	Kind FunctionKind
	Wasm *WasmFunction
	Host HostFunction
}

// WasmFunc wraps a decoded Wasm function body.
func WasmFunc(f *WasmFunction) Function { return Function{Kind: FunctionKindWasm, Wasm: f} }

// HostFunc wraps a host-supplied callable.
func HostFunc(f HostFunction) Function { return Function{Kind: FunctionKindHost, Host: f} }

// FunctionInstance is a WebAssembly function instance (spec.md §4.4).
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#function-instances
type FunctionInstance struct {
	Func Function

	// TypeIdx is important for call_indirect signature checks, performed
	// by the (out-of-scope) interpreter, not the store.
	TypeIdx uint32
	// Owner indexes the store's module instances; it is the zero value for
	// host functions with no owning module.
	Owner ModuleInstanceAddr
}

// AssertWasm returns the embedded Wasm body, or an error if this instance
// wraps a host function instead.
func (f *FunctionInstance) AssertWasm() (*WasmFunction, error) {
	if f.Func.Kind != FunctionKindWasm {
		return nil, fmt.Errorf("expected wasm function")
	}
	return f.Func.Wasm, nil
}
