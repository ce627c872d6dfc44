package internalwasm_test

import (
	"fmt"

	"github.com/aniwei/tinywasm/api"
	internalwasm "github.com/aniwei/tinywasm/internal/wasm"
)

// Example walks the standard instantiation order an embedder follows when
// turning a decoded module into live store state: functions, then tables,
// then memories, then globals, then element segments, then data segments.
// Each stage's addresses feed the next, and active element/data segments are
// applied as the final step of their stage.
func Example() {
	s := internalwasm.NewStore()
	inst := internalwasm.NewModuleInstance(0, "adder")
	if err := s.AddInstance(inst); err != nil {
		panic(err)
	}

	funcAddrs := s.InitFuncs([]internalwasm.WasmFunction{
		{TypeIdx: 0, Body: []byte{ /* add two i32 locals, elided */ }},
	}, inst.ID())

	tableAddrs := s.InitTables([]internalwasm.TableType{
		{ElementType: api.ValueTypeFuncref, SizeInitial: 1},
	}, inst.ID())

	memAddrs, err := s.InitMems([]internalwasm.MemoryType{
		{PageCountInitial: 1},
	}, inst.ID())
	if err != nil {
		panic(err)
	}

	globalAddrs, err := s.InitGlobals([]internalwasm.Global{
		{
			Type: internalwasm.GlobalType{ValType: api.ValueTypeI32, Mutable: false},
			Init: internalwasm.ConstInstruction{Kind: internalwasm.ConstI32Const, I32: 100},
		},
	}, inst.ID())
	if err != nil {
		panic(err)
	}

	_, err = s.InitElems(tableAddrs, funcAddrs, []internalwasm.ElementSegment{
		{
			Kind:   internalwasm.ElementKindActive,
			Table:  0,
			Offset: internalwasm.ConstInstruction{Kind: internalwasm.ConstI32Const, I32: 0},
			Items:  []internalwasm.ConstInstruction{{Kind: internalwasm.ConstRefFunc, FuncIdx: 0}},
		},
	}, inst.ID())
	if err != nil {
		panic(err)
	}

	_, err = s.InitDatas(memAddrs, []internalwasm.DataSegment{
		{Kind: internalwasm.DataKindActive, Mem: 0, Offset: internalwasm.ConstInstruction{Kind: internalwasm.ConstI32Const, I32: 0}, Bytes: []byte("hi")},
	}, inst.ID())
	if err != nil {
		panic(err)
	}

	table, _ := s.GetTable(tableAddrs[0])
	slot, _ := table.Get(0)
	fmt.Println("table[0] resolves to func addr", slot.Addr == funcAddrs[0])

	global, _ := s.GetGlobalVal(globalAddrs[0])
	fmt.Println("global value:", global.I32())

	mem, _ := s.GetMem(memAddrs[0])
	b, _ := mem.Load(0, 0, 2)
	fmt.Println("memory bytes:", string(b))

	// Output:
	// table[0] resolves to func addr true
	// global value: 100
	// memory bytes: hi
}
