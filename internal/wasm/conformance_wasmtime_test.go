//go:build amd64 && cgo

package internalwasm_test

// Differential test comparing our memory/table growth bounds against
// wasmtime-go's own Memory/Table types, following the engine/store setup
// wazero's own vs/wasmtime integration test uses, minus anything needing a
// compiled module (out of scope here; this only exercises plain Memory and
// Table growth semantics).

import (
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/stretchr/testify/require"

	"github.com/aniwei/tinywasm/api"
	internalwasm "github.com/aniwei/tinywasm/internal/wasm"
)

func TestConformance_MemoryGrow(t *testing.T) {
	tests := []struct {
		name       string
		initial    uint32
		max        uint32
		growBy     uint32
		shouldGrow bool
	}{
		{name: "grow within max", initial: 1, max: 4, growBy: 2, shouldGrow: true},
		{name: "grow to exactly max", initial: 1, max: 2, growBy: 1, shouldGrow: true},
		{name: "grow past max fails", initial: 1, max: 1, growBy: 1, shouldGrow: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ours := internalwasm.NewMemoryInstance(internalwasm.MemoryType{
				PageCountInitial: tt.initial,
				PageCountMax:     &tt.max,
			}, 0)
			_, ourOK := ours.Grow(tt.growBy)

			engine := wasmtime.NewEngine()
			store := wasmtime.NewStore(engine)
			memType := wasmtime.NewMemoryType(tt.initial, true, tt.max)
			mem := wasmtime.NewMemory(store, memType)
			_, wasmtimeErr := mem.Grow(store, tt.growBy)

			require.Equal(t, tt.shouldGrow, ourOK)
			require.Equal(t, tt.shouldGrow, wasmtimeErr == nil)
		})
	}
}

func TestConformance_TableGrow(t *testing.T) {
	tests := []struct {
		name       string
		initial    uint32
		max        uint32
		growTo     uint32
		shouldGrow bool
	}{
		{name: "grow within max", initial: 1, max: 4, growTo: 3, shouldGrow: true},
		{name: "grow past max fails", initial: 1, max: 2, growTo: 5, shouldGrow: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ours := internalwasm.NewTableInstance(internalwasm.TableType{
				ElementType: api.ValueTypeFuncref,
				SizeInitial: tt.initial,
				SizeMax:     &tt.max,
			}, 0)
			ourErr := ours.GrowToFit(tt.growTo)

			engine := wasmtime.NewEngine()
			store := wasmtime.NewStore(engine)
			tableType := wasmtime.NewTableType(wasmtime.NewValType(wasmtime.KindFuncref), tt.initial, true, tt.max)
			table, err := wasmtime.NewTable(store, tableType, wasmtime.ValFuncref(nil))
			require.NoError(t, err)
			_, wasmtimeErr := table.Grow(store, tt.growTo-tt.initial, wasmtime.ValFuncref(nil))

			require.Equal(t, tt.shouldGrow, ourErr == nil)
			require.Equal(t, tt.shouldGrow, wasmtimeErr == nil)
		})
	}
}
