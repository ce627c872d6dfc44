package internalwasm

// DataInstance is a WebAssembly data instance (spec.md §3/§4.6). Bytes is
// nil once the segment has been dropped. Active segments never get a
// DataInstance at all — they are written directly into their target memory
// and considered dropped on allocation (spec.md §4.1 init_datas); only
// Passive segments survive as a DataInstance the engine can later copy via
// memory.init, until an explicit data.drop.
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#data-instances
type DataInstance struct {
	Bytes []byte // nil means dropped

	Owner ModuleInstanceAddr
}

// NewDataInstance constructs a DataInstance (Store.InitDatas).
func NewDataInstance(bytes []byte, owner ModuleInstanceAddr) *DataInstance {
	return &DataInstance{Bytes: bytes, Owner: owner}
}

// Dropped reports whether this segment has already been dropped.
func (d *DataInstance) Dropped() bool { return d.Bytes == nil }

// Drop transitions Bytes to nil, the observable effect of data.drop.
func (d *DataInstance) Drop() { d.Bytes = nil }
