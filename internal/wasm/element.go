package internalwasm

// ElemInstance is a WebAssembly element instance (spec.md §3/§4.6). Items is
// nil once the segment has been dropped: Active and Declared segments are
// dropped immediately on successful instantiation; Passive segments are
// dropped only by an explicit elem.drop.
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#element-instances
type ElemInstance struct {
	Kind  ElementKind
	Items []FuncAddr // nil means dropped

	Owner ModuleInstanceAddr
}

// NewElemInstance constructs an ElemInstance (Store.InitElems).
func NewElemInstance(kind ElementKind, owner ModuleInstanceAddr, items []FuncAddr) *ElemInstance {
	return &ElemInstance{Kind: kind, Owner: owner, Items: items}
}

// Dropped reports whether this segment has already been dropped.
func (e *ElemInstance) Dropped() bool { return e.Items == nil }

// Drop transitions Items to nil, the observable effect of elem.drop.
func (e *ElemInstance) Drop() { e.Items = nil }
