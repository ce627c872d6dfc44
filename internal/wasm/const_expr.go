package internalwasm

import "fmt"

// EvalConst evaluates a single-instruction constant expression into a
// WasmValue (spec.md §4.7). All seven instruction kinds are legal here:
// the four Xconst forms, global.get of an already-allocated immutable
// global, ref.null, and ref.func. global.get requires the referenced
// global to exist in the store already, which instantiation order
// guarantees by evaluating imported globals before any use of global.get
// in a later stage's constant expressions.
func (s *Store) EvalConst(expr ConstInstruction) (RawWasmValue, error) {
	switch expr.Kind {
	case ConstI32Const:
		return RawWasmValueFromI32(expr.I32), nil
	case ConstI64Const:
		return RawWasmValueFromI64(expr.I64), nil
	case ConstF32Const:
		return RawWasmValueFromF32(expr.F32), nil
	case ConstF64Const:
		return RawWasmValueFromF64(expr.F64), nil
	case ConstGlobalGet:
		v, err := s.GetGlobalVal(expr.GlobalIdx)
		if err != nil {
			return 0, fmt.Errorf("const expr: %w", err)
		}
		return v, nil
	case ConstRefNull:
		return 0, nil
	case ConstRefFunc:
		return RawWasmValueFromI32(int32(expr.FuncIdx)), nil
	default:
		return 0, fmt.Errorf("const expr: unknown instruction kind %v", expr.Kind)
	}
}

// EvalI32Const evaluates a constant expression that must produce an i32:
// the offset of an active element or data segment (spec.md §4.7). Only
// i32.const and global.get are legal here; anything else, including the
// other three Xconst forms and the two reference instructions, fails with
// UnsupportedFeatureError since it can never type-check as i32 anyway.
func (s *Store) EvalI32Const(expr ConstInstruction) (int32, error) {
	switch expr.Kind {
	case ConstI32Const:
		return expr.I32, nil
	case ConstGlobalGet:
		v, err := s.GetGlobalVal(expr.GlobalIdx)
		if err != nil {
			return 0, fmt.Errorf("const expr: %w", err)
		}
		return v.I32(), nil
	default:
		return 0, unsupportedFeature(fmt.Sprintf("i32 const expression of kind %v", expr.Kind))
	}
}
