package internalwasm

import (
	"fmt"

	"github.com/aniwei/tinywasm/api"
)

// MaxTableSize is the hard ceiling on a table's length, regardless of its
// declared maximum (spec.md §3/§5).
const MaxTableSize = uint32(10_000_000)

// TableElement is a single table slot: either uninitialized, or holding the
// store address of a function or external reference. This distinguishes a
// null reference from function address 0, which a bare index cannot
// (spec.md §9, resolving the two incompatible TableInstance designs in
// favor of this one; grounded in original_source's store/table.rs).
type TableElement struct {
	Initialized bool
	Addr        Addr
}

// Uninit is the zero-value, uninitialized table slot.
var Uninit = TableElement{}

// InitializedWith constructs an initialized table slot pointing at addr.
func InitializedWith(addr Addr) TableElement { return TableElement{Initialized: true, Addr: addr} }

// TableInstance is a WebAssembly table instance (spec.md §3/§4.3).
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#table-instances
type TableInstance struct {
	Elements    []TableElement
	ElementType ValType
	// Max is nil when the module declared no maximum; MaxTableSize is the
	// effective ceiling in that case.
	Max *uint32

	Owner ModuleInstanceAddr
}

// NewTableInstance allocates a TableInstance of ty.SizeInitial uninitialized
// slots (Store.InitTables / Store.AddTable).
func NewTableInstance(ty TableType, owner ModuleInstanceAddr) *TableInstance {
	return &TableInstance{
		Elements:    make([]TableElement, ty.SizeInitial),
		ElementType: ty.ElementType,
		Max:         ty.SizeMax,
		Owner:       owner,
	}
}

func (t *TableInstance) maxSize() uint32 {
	if t.Max != nil {
		return *t.Max
	}
	return MaxTableSize
}

// Size returns the table's current length.
func (t *TableInstance) Size() int32 { return int32(len(t.Elements)) }

// Get returns the slot at addr, or TrapUndefinedElement if addr is outside
// the table's current length (spec.md Testable Property #6).
func (t *TableInstance) Get(addr uint32) (TableElement, error) {
	if int(addr) >= len(t.Elements) {
		return TableElement{}, undefinedElement(int(addr))
	}
	return t.Elements[addr], nil
}

// GetWasmVal maps a slot to a typed reference value: an initialized slot
// becomes RefFunc/RefExtern depending on ElementType, and an uninitialized
// in-range slot becomes a typed null — never a trap (spec.md §4.3). A table
// whose element type isn't a reference type is a store invariant violation
// and reported as UnsupportedFeatureError.
func (t *TableInstance) GetWasmVal(addr uint32) (WasmValue, error) {
	slot, err := t.Get(addr)
	if err != nil {
		return WasmValue{}, err
	}

	switch t.ElementType {
	case api.ValueTypeFuncref:
		if slot.Initialized {
			return RefFuncValue(slot.Addr), nil
		}
		return RefNullValue(api.ValueTypeFuncref), nil
	case api.ValueTypeExternref:
		if slot.Initialized {
			return RefExternValue(slot.Addr), nil
		}
		return RefNullValue(api.ValueTypeExternref), nil
	default:
		return WasmValue{}, unsupportedFeature("non-ref table")
	}
}

// GrowToFit enlarges the table to newSize slots, zero (uninitialized) filled,
// bounded by min(declared maximum, MaxTableSize). It fails with
// TrapTableOutOfBounds if newSize would exceed that bound.
func (t *TableInstance) GrowToFit(newSize uint32) error {
	if int(newSize) <= len(t.Elements) {
		return nil
	}
	if newSize > t.maxSize() || newSize > MaxTableSize {
		return tableOutOfBounds(int(newSize), 1, len(t.Elements))
	}
	grown := make([]TableElement, newSize)
	copy(grown, t.Elements)
	t.Elements = grown
	return nil
}

// Set auto-grows the table up to its maximum, then assigns addr to v.
// It fails with TrapTableOutOfBounds if growth would exceed the maximum
// (spec.md Testable Property #5).
func (t *TableInstance) Set(addr uint32, v Addr) error {
	if addr == ^uint32(0) {
		return tableOutOfBounds(int(addr), 1, len(t.Elements))
	}
	if err := t.GrowToFit(addr + 1); err != nil {
		return err
	}
	t.Elements[addr] = InitializedWith(v)
	return nil
}

// resolveFuncRef translates a module-local function index to a store-
// absolute address, for funcref tables only; other reference types pass
// their addresses through unchanged. funcAddrs must be the owning module's
// complete function index space (imports followed by locally defined
// functions, in declaration order); addr outside that range is an error
// rather than a panic, since it can come from untrusted segment data.
func (t *TableInstance) resolveFuncRef(funcAddrs []FuncAddr, addr Addr) (Addr, error) {
	if t.ElementType != api.ValueTypeFuncref {
		return addr, nil
	}
	if int(addr) >= len(funcAddrs) {
		return 0, fmt.Errorf("function index %d out of range of function index space of size %d", addr, len(funcAddrs))
	}
	return funcAddrs[addr], nil
}

// initRaw copies init into [offset, offset+len(init)) after bounds checking,
// without any function-reference remapping.
func (t *TableInstance) initRaw(offset int32, init []TableElement) error {
	off := uint64(uint32(offset))
	end := off + uint64(len(init))
	if end < off || end > uint64(len(t.Elements)) {
		return tableOutOfBounds(int(off), len(init), len(t.Elements))
	}
	copy(t.Elements[off:end], init)
	return nil
}

// Init copies init into the table at offset, remapping funcref items
// through funcAddrs (module-local function index -> store address) first
// (spec.md §4.3, Testable Property S4). Used by active element segments
// and by the (out-of-scope) table.init instruction. An Uninitialized slot
// in init is copied through untouched, leaving a null reference rather
// than being resolved against funcAddrs.
func (t *TableInstance) Init(funcAddrs []FuncAddr, offset int32, init []TableElement) error {
	resolved := make([]TableElement, len(init))
	for i, elem := range init {
		resolved[i] = elem
		if elem.Initialized {
			addr, err := t.resolveFuncRef(funcAddrs, elem.Addr)
			if err != nil {
				return err
			}
			resolved[i].Addr = addr
		}
	}
	return t.initRaw(offset, resolved)
}
