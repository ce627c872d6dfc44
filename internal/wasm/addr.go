package internalwasm

// Addr is an unsigned integer naming a slot in one of the store's six
// address spaces. The concrete aliases below exist purely for
// self-documentation at call sites; they are not distinct types.
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#addresses
type Addr = uint32

type (
	// FuncAddr indexes the store's function address space.
	FuncAddr = Addr
	// TableAddr indexes the store's table address space.
	TableAddr = Addr
	// MemAddr indexes the store's memory address space.
	MemAddr = Addr
	// GlobalAddr indexes the store's global address space.
	GlobalAddr = Addr
	// ElemAddr indexes the store's element address space.
	ElemAddr = Addr
	// DataAddr indexes the store's data address space.
	DataAddr = Addr
)

// ModuleInstanceAddr identifies the module instance that owns an allocated
// store entry. It indexes Store.moduleInstances.
type ModuleInstanceAddr = uint32
