package internalwasm

import (
	"fmt"
	"sync/atomic"
)

// storeID is the process-wide store id counter (spec.md §9: "drawn from an
// atomic counter with relaxed ordering; uniqueness is required but ordering
// across threads is not").
var storeID uint64

// Store is the root container of every instantiated module's functions,
// tables, memories, globals, element segments, and data segments: the
// six parallel address spaces spec.md §3 describes. Addresses, once
// assigned, never change or alias a later allocation (Invariant I1); none
// of the six spaces ever shrinks (Invariant I3).
//
// A Store is not safe for concurrent mutation from multiple goroutines —
// spec.md §5 scopes this to single-threaded cooperative execution.
// Embedders wanting multi-tenant execution create one Store per tenant.
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#store
type Store struct {
	id uint64

	moduleInstances []*ModuleInstance

	funcs   []*FunctionInstance
	tables  []*TableInstance
	mems    []*MemoryInstance
	globals []*GlobalInstance
	elems   []*ElemInstance
	datas   []*DataInstance
}

// NewStore creates a fresh store with a globally unique id and empty
// address spaces.
func NewStore() *Store {
	return &Store{id: atomic.AddUint64(&storeID, 1) - 1}
}

// ID returns the store's process-unique id.
func (s *Store) ID() uint64 { return s.id }

// GetModuleInstance returns the module instance at addr, or nil if none was
// allocated at that address.
func (s *Store) GetModuleInstance(addr ModuleInstanceAddr) *ModuleInstance {
	if int(addr) >= len(s.moduleInstances) {
		return nil
	}
	return s.moduleInstances[addr]
}

// AddInstance appends a fully-built module instance. inst.ID() must equal
// the store's current instance count.
func (s *Store) AddInstance(inst *ModuleInstance) error {
	if inst.ID() != uint32(len(s.moduleInstances)) {
		return fmt.Errorf("module instance id %d does not match next index %d", inst.ID(), len(s.moduleInstances))
	}
	s.moduleInstances = append(s.moduleInstances, inst)
	return nil
}

// InitFuncs allocates one FunctionInstance per (typeIdx, body) pair and
// returns the contiguous range of new addresses (Invariant I2). Never fails.
func (s *Store) InitFuncs(funcs []WasmFunction, owner ModuleInstanceAddr) []FuncAddr {
	base := len(s.funcs)
	addrs := make([]FuncAddr, len(funcs))
	for i := range funcs {
		f := funcs[i]
		s.funcs = append(s.funcs, &FunctionInstance{Func: WasmFunc(&f), TypeIdx: f.TypeIdx, Owner: owner})
		addrs[i] = FuncAddr(base + i)
	}
	return addrs
}

// InitTables allocates one TableInstance per decoded type and returns the
// new addresses.
func (s *Store) InitTables(types []TableType, owner ModuleInstanceAddr) []TableAddr {
	base := len(s.tables)
	addrs := make([]TableAddr, len(types))
	for i, ty := range types {
		s.tables = append(s.tables, NewTableInstance(ty, owner))
		addrs[i] = TableAddr(base + i)
	}
	return addrs
}

// InitMems allocates one MemoryInstance per decoded type and returns the new
// addresses. It fails with UnsupportedFeatureError if any type declares a
// 64-bit architecture (spec.md §4.1, Non-goals).
func (s *Store) InitMems(types []MemoryType, owner ModuleInstanceAddr) ([]MemAddr, error) {
	base := len(s.mems)
	addrs := make([]MemAddr, 0, len(types))
	for _, ty := range types {
		if ty.Arch == MemoryArchI64 {
			return nil, unsupportedFeature("64-bit memories")
		}
		s.mems = append(s.mems, NewMemoryInstance(ty, owner))
		addrs = append(addrs, MemAddr(base+len(addrs)))
	}
	return addrs, nil
}

// InitGlobals evaluates each global's init constant expression and
// allocates the resulting GlobalInstance, returning the new addresses.
func (s *Store) InitGlobals(globals []Global, owner ModuleInstanceAddr) ([]GlobalAddr, error) {
	base := len(s.globals)
	addrs := make([]GlobalAddr, 0, len(globals))
	for _, g := range globals {
		val, err := s.EvalConst(g.Init)
		if err != nil {
			return nil, err
		}
		s.globals = append(s.globals, NewGlobalInstance(g.Type, val, owner))
		addrs = append(addrs, GlobalAddr(base+len(addrs)))
	}
	return addrs, nil
}

// Global is the decoded form of a global definition, as handed to Store.InitGlobals.
type Global struct {
	Type GlobalType
	Init ConstInstruction
}

// InitElems allocates one ElemInstance per decoded segment, must be called
// after InitTables so tableAddrs (this module's table index space) is
// available. Passive segments keep their items; Declared segments are
// dropped immediately; Active segments are copied into their target table
// (trapping on overflow) and then dropped, per spec.md §4.1.
//
// funcIndexSpace must be the owning module's complete function index space
// (imports followed by locally defined functions, in declaration order) —
// the same index space a ref.func item's FuncIdx is relative to. It is the
// caller's responsibility to assemble this, since the store only ever sees
// locally defined functions tagged with their owner, not a module's
// imports; a module that imports functions would otherwise be unresolvable
// from the store's own bookkeeping alone.
func (s *Store) InitElems(tableAddrs []TableAddr, funcIndexSpace []FuncAddr, elems []ElementSegment, owner ModuleInstanceAddr) ([]ElemAddr, error) {
	base := len(s.elems)
	addrs := make([]ElemAddr, 0, len(elems))

	for i, elem := range elems {
		init := make([]FuncAddr, len(elem.Items))
		for j, item := range elem.Items {
			addr, err := constItemAddr(item)
			if err != nil {
				return nil, err
			}
			init[j] = addr
		}

		var items []FuncAddr
		switch elem.Kind {
		case ElementKindPassive:
			items = init
		case ElementKindDeclared:
			items = nil
		case ElementKindActive:
			offset, err := s.EvalI32Const(elem.Offset)
			if err != nil {
				return nil, err
			}
			if int(elem.Table) >= len(tableAddrs) {
				return nil, fmt.Errorf("table %d not found for element %d", elem.Table, i)
			}
			tableAddr := tableAddrs[elem.Table]
			if int(tableAddr) >= len(s.tables) {
				return nil, fmt.Errorf("table %d not found", tableAddr)
			}
			slots := make([]TableElement, len(elem.Items))
			for j, item := range elem.Items {
				if item.Kind == ConstRefNull {
					slots[j] = Uninit
					continue
				}
				slots[j] = InitializedWith(init[j])
			}
			if err := s.tables[tableAddr].Init(funcIndexSpace, offset, slots); err != nil {
				return nil, err
			}
			items = nil
		}

		s.elems = append(s.elems, NewElemInstance(elem.Kind, owner, items))
		addrs = append(addrs, ElemAddr(base+len(addrs)))
	}
	return addrs, nil
}

// constItemAddr resolves an element segment init item to a store address.
// Only ref.null and ref.func are legal per spec.md §4.7. The returned
// address for ConstRefNull is meaningless (0) — callers that need to tell
// a null reference apart from ref.func 0 must switch on item.Kind
// themselves, as InitElems's active branch does.
func constItemAddr(item ConstInstruction) (Addr, error) {
	switch item.Kind {
	case ConstRefFunc:
		return Addr(item.FuncIdx), nil
	case ConstRefNull:
		return 0, nil
	default:
		return 0, unsupportedFeature(fmt.Sprintf("const expression other than ref: %v", item.Kind))
	}
}

// InitDatas allocates a DataInstance per passive segment, and writes active
// segments directly into memory 0 (they are never allocated a DataInstance,
// per spec.md §4.1). It fails with UnsupportedFeatureError for any active
// segment targeting a memory other than 0.
func (s *Store) InitDatas(memAddrs []MemAddr, datas []DataSegment, owner ModuleInstanceAddr) ([]DataAddr, error) {
	base := len(s.datas)
	addrs := make([]DataAddr, 0, len(datas))

	for i, d := range datas {
		if d.Kind == DataKindActive {
			if d.Mem != 0 {
				return nil, unsupportedFeature("data segments for non-zero memories")
			}
			if int(d.Mem) >= len(memAddrs) {
				return nil, fmt.Errorf("memory %d not found for data segment %d", d.Mem, i)
			}
			memAddr := memAddrs[d.Mem]
			if int(memAddr) >= len(s.mems) {
				return nil, fmt.Errorf("memory %d not found for data segment %d", memAddr, i)
			}
			offset, err := s.EvalI32Const(d.Offset)
			if err != nil {
				return nil, err
			}
			if err := s.mems[memAddr].Store(uint64(uint32(offset)), 0, d.Bytes); err != nil {
				return nil, err
			}
			continue
		}

		s.datas = append(s.datas, NewDataInstance(append([]byte(nil), d.Bytes...), owner))
		addrs = append(addrs, DataAddr(base+len(addrs)))
	}
	return addrs, nil
}

// AddGlobal allocates a single global, returning its address. Used for
// exports and imports sharing outside the bulk InitGlobals path.
func (s *Store) AddGlobal(ty GlobalType, value RawWasmValue, owner ModuleInstanceAddr) GlobalAddr {
	s.globals = append(s.globals, NewGlobalInstance(ty, value, owner))
	return GlobalAddr(len(s.globals) - 1)
}

// AddTable allocates a single table, returning its address.
func (s *Store) AddTable(ty TableType, owner ModuleInstanceAddr) TableAddr {
	s.tables = append(s.tables, NewTableInstance(ty, owner))
	return TableAddr(len(s.tables) - 1)
}

// AddMem allocates a single memory, returning its address. It fails with
// UnsupportedFeatureError for a 64-bit architecture.
func (s *Store) AddMem(ty MemoryType, owner ModuleInstanceAddr) (MemAddr, error) {
	if ty.Arch == MemoryArchI64 {
		return 0, unsupportedFeature("64-bit memories")
	}
	s.mems = append(s.mems, NewMemoryInstance(ty, owner))
	return MemAddr(len(s.mems) - 1), nil
}

// AddFunc allocates a single function, returning its address.
func (s *Store) AddFunc(fn Function, typeIdx uint32, owner ModuleInstanceAddr) FuncAddr {
	s.funcs = append(s.funcs, &FunctionInstance{Func: fn, TypeIdx: typeIdx, Owner: owner})
	return FuncAddr(len(s.funcs) - 1)
}

// GetFunc returns the function at addr.
func (s *Store) GetFunc(addr FuncAddr) (*FunctionInstance, error) {
	if int(addr) >= len(s.funcs) {
		return nil, fmt.Errorf("function %d not found", addr)
	}
	return s.funcs[addr], nil
}

// GetMem returns the memory at addr.
func (s *Store) GetMem(addr MemAddr) (*MemoryInstance, error) {
	if int(addr) >= len(s.mems) {
		return nil, fmt.Errorf("memory %d not found", addr)
	}
	return s.mems[addr], nil
}

// GetTable returns the table at addr.
func (s *Store) GetTable(addr TableAddr) (*TableInstance, error) {
	if int(addr) >= len(s.tables) {
		return nil, fmt.Errorf("table %d not found", addr)
	}
	return s.tables[addr], nil
}

// GetElem returns the element segment at addr.
func (s *Store) GetElem(addr ElemAddr) (*ElemInstance, error) {
	if int(addr) >= len(s.elems) {
		return nil, fmt.Errorf("element %d not found", addr)
	}
	return s.elems[addr], nil
}

// GetData returns the data segment at addr.
func (s *Store) GetData(addr DataAddr) (*DataInstance, error) {
	if int(addr) >= len(s.datas) {
		return nil, fmt.Errorf("data %d not found", addr)
	}
	return s.datas[addr], nil
}

// GetGlobalVal returns the current value of the global at addr.
func (s *Store) GetGlobalVal(addr GlobalAddr) (RawWasmValue, error) {
	if int(addr) >= len(s.globals) {
		return 0, fmt.Errorf("global %d not found", addr)
	}
	return s.globals[addr].Value, nil
}

// SetGlobalVal overwrites the value of the global at addr. Mutability
// policy is enforced by the caller; the store performs no check.
func (s *Store) SetGlobalVal(addr GlobalAddr, value RawWasmValue) error {
	if int(addr) >= len(s.globals) {
		return fmt.Errorf("global %d not found", addr)
	}
	s.globals[addr].Value = value
	return nil
}
