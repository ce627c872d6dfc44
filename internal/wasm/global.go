package internalwasm

// GlobalInstance is a WebAssembly global instance (spec.md §3/§4.5): a
// single mutable or immutable typed cell. Mutability is enforced by callers;
// the store offers only raw get/set (Store.GetGlobalVal/SetGlobalVal).
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#global-instances
type GlobalInstance struct {
	Type  GlobalType
	Value RawWasmValue

	Owner ModuleInstanceAddr
}

// NewGlobalInstance constructs a GlobalInstance (Store.InitGlobals / Store.AddGlobal).
func NewGlobalInstance(ty GlobalType, value RawWasmValue, owner ModuleInstanceAddr) *GlobalInstance {
	return &GlobalInstance{Type: ty, Value: value, Owner: owner}
}
