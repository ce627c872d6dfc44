package internalwasm

// MemoryPageSize is the size in bytes of a single Wasm linear memory page.
const MemoryPageSize = uint32(65536)

// MemoryMaxPages is the largest page count a 32-bit linear memory can ever
// reach, fixing the maximum memory size at 4 GiB.
const MemoryMaxPages = uint32(65536)

// MemoryPagesToBytesNum converts a page count to a byte length.
func MemoryPagesToBytesNum(pages uint32) uint64 { return uint64(pages) * uint64(MemoryPageSize) }

// MemoryInstance is a WebAssembly linear memory instance (spec.md §3/§4.2).
//
// See https://webassembly.github.io/spec/core/exec/runtime.html#memory-instances
type MemoryInstance struct {
	Buffer []byte
	// Max is nil when the module declared no maximum; MemoryMaxPages is
	// used as the effective ceiling in that case.
	Max *uint32

	Owner ModuleInstanceAddr
}

// NewMemoryInstance allocates a zero-filled MemoryInstance for the given
// decoded type (Store.InitMems / Store.AddMem).
func NewMemoryInstance(ty MemoryType, owner ModuleInstanceAddr) *MemoryInstance {
	return &MemoryInstance{
		Buffer: make([]byte, MemoryPagesToBytesNum(ty.PageCountInitial)),
		Max:    ty.PageCountMax,
		Owner:  owner,
	}
}

// PageSize returns the current size of the memory, in pages.
func (m *MemoryInstance) PageSize() uint32 {
	return uint32(uint64(len(m.Buffer)) / uint64(MemoryPageSize))
}

// maxPages returns the effective maximum, defaulting to MemoryMaxPages.
func (m *MemoryInstance) maxPages() uint32 {
	if m.Max != nil {
		return *m.Max
	}
	return MemoryMaxPages
}

// Grow increases memory by delta pages. On success it returns the previous
// page count and true. It returns 0 and false, leaving the memory unchanged,
// if the result would exceed MemoryMaxPages or the declared maximum
// (spec.md §4.2, Testable Properties #3/#4). New pages are zero-filled.
func (m *MemoryInstance) Grow(delta uint32) (previousPages uint32, ok bool) {
	current := m.PageSize()
	newPages := uint64(current) + uint64(delta)

	if newPages > uint64(MemoryMaxPages) || newPages > uint64(m.maxPages()) {
		return 0, false
	}

	newSize := newPages * uint64(MemoryPageSize)
	buf := m.Buffer
	buf = append(buf, make([]byte, newSize-uint64(len(buf)))...)
	m.Buffer = buf
	return current, true
}

// Store writes data into memory at addr, ignoring the alignment hint (Wasm
// does not require aligned access at the VM level). It fails with
// TrapMemoryOutOfBounds if [addr, addr+len(data)) is not fully in bounds,
// including on arithmetic overflow.
func (m *MemoryInstance) Store(addr uint64, _align uint32, data []byte) error {
	end := addr + uint64(len(data))
	if end < addr || end > uint64(len(m.Buffer)) {
		return memoryOutOfBounds(int(addr), len(data), len(m.Buffer))
	}
	copy(m.Buffer[addr:end], data)
	return nil
}

// Load returns a read-only view of [addr, addr+length). It fails with
// TrapMemoryOutOfBounds under the same policy as Store.
func (m *MemoryInstance) Load(addr uint64, _align uint32, length uint64) ([]byte, error) {
	end := addr + length
	if end < addr || end > uint64(len(m.Buffer)) {
		return nil, memoryOutOfBounds(int(addr), int(length), len(m.Buffer))
	}
	return m.Buffer[addr:end], nil
}

// ReadByte reads a single byte, returning false if out of range. This is a
// convenience used by tests and by host functions reading scalars.
func (m *MemoryInstance) ReadByte(addr uint64) (byte, bool) {
	b, err := m.Load(addr, 0, 1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}
