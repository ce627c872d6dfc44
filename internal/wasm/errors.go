package internalwasm

import "fmt"

// TrapKind discriminates the recoverable execution failures the store can
// surface, per spec.md §7.
type TrapKind int

const (
	// TrapMemoryOutOfBounds is returned by MemoryInstance.Load/Store when
	// [offset, offset+len) is not contained in [0, len(Buffer)).
	TrapMemoryOutOfBounds TrapKind = iota
	// TrapTableOutOfBounds is returned by table init/set/grow that would
	// exceed the table's effective maximum.
	TrapTableOutOfBounds
	// TrapUndefinedElement is returned by a table read of a slot outside
	// the table's current length.
	TrapUndefinedElement
)

// Trap is a recoverable execution failure that aborts the current Wasm call
// with a specific error kind (spec.md §7). It implements error so an
// interpreter can either match on Kind or treat it as an opaque error.
type Trap struct {
	Kind TrapKind

	// Offset/Len/Max are populated for TrapMemoryOutOfBounds and
	// TrapTableOutOfBounds.
	Offset, Len, Max int
	// Index is populated for TrapUndefinedElement.
	Index int
}

func (t *Trap) Error() string {
	switch t.Kind {
	case TrapMemoryOutOfBounds:
		return fmt.Sprintf("out of bounds memory access: offset=%d, len=%d, max=%d", t.Offset, t.Len, t.Max)
	case TrapTableOutOfBounds:
		return fmt.Sprintf("out of bounds table access: offset=%d, len=%d, max=%d", t.Offset, t.Len, t.Max)
	case TrapUndefinedElement:
		return fmt.Sprintf("undefined element: index=%d", t.Index)
	default:
		return "trap"
	}
}

// Is lets errors.Is(err, &Trap{Kind: X}) match any trap of the same Kind,
// ignoring the bounds payload, the same way sys.ExitError compares exit codes.
func (t *Trap) Is(target error) bool {
	other, ok := target.(*Trap)
	if !ok {
		return false
	}
	return other.Kind == t.Kind
}

func memoryOutOfBounds(offset, length, max int) error {
	return &Trap{Kind: TrapMemoryOutOfBounds, Offset: offset, Len: length, Max: max}
}

func tableOutOfBounds(offset, length, max int) error {
	return &Trap{Kind: TrapTableOutOfBounds, Offset: offset, Len: length, Max: max}
}

func undefinedElement(index int) error {
	return &Trap{Kind: TrapUndefinedElement, Index: index}
}

// UnsupportedFeatureError is returned for constructs spec.md places outside
// the MVP the store implements: 64-bit memories, non-reference table element
// types, data segments targeting non-zero memories, and constant expressions
// outside the supported set.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return "unsupported feature: " + e.Feature
}

func unsupportedFeature(feature string) error {
	return &UnsupportedFeatureError{Feature: feature}
}
