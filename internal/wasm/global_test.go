package internalwasm

import (
	"testing"

	"github.com/aniwei/tinywasm/api"
	"github.com/stretchr/testify/require"
)

func TestNewGlobalInstance(t *testing.T) {
	g := NewGlobalInstance(GlobalType{ValType: api.ValueTypeI32, Mutable: true}, RawWasmValueFromI32(42), 0)
	require.Equal(t, int32(42), g.Value.I32())
	require.True(t, g.Type.Mutable)
}
