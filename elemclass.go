package ixstore

import (
	"cmp"
	"reflect"
)

// elemClass is the normalized element kind a dimension index actually
// stores. A key struct field's declared Go type (string, int, int32,
// uint16, a named MyInt, float32, ...) narrows or widens to one of these
// three at the reflect boundary (normalizeValue/denormalize below),
// so the index machinery itself only ever has to know about string,
// int64 and float64 — see DESIGN.md, "Static heterogeneous key shape".
type elemClass int

const (
	classString elemClass = iota
	classInt
	classFloat
)

func (c elemClass) String() string {
	switch c {
	case classString:
		return "string"
	case classInt:
		return "int"
	case classFloat:
		return "float"
	default:
		return "unknown"
	}
}

// classify maps a reflect.Kind to the elemClass that represents it, if
// any. Bools, structs, pointers, maps, etc. are not valid dimension
// element types.
func classify(k reflect.Kind) (elemClass, bool) {
	switch k {
	case reflect.String:
		return classString, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classInt, true
	case reflect.Float32, reflect.Float64:
		return classFloat, true
	default:
		return 0, false
	}
}

// normalizeValue reads rv (whose Kind must agree with class) into the
// normalized representation: string, int64 or float64.
func normalizeValue(rv reflect.Value, class elemClass) any {
	switch class {
	case classString:
		return rv.String()
	case classFloat:
		return rv.Float()
	case classInt:
		k := rv.Kind()
		if k >= reflect.Uint && k <= reflect.Uintptr {
			return int64(rv.Uint())
		}
		return rv.Int()
	default:
		panic(&StructuralError{Msg: "normalizeValue: unknown element class"})
	}
}

// denormalize converts a normalized value (string, int64 or float64) back
// into a reflect.Value assignable to a field of type fieldType.
func denormalize(v any, fieldType reflect.Type) reflect.Value {
	return reflect.ValueOf(v).Convert(fieldType)
}

// normalizeScalar is normalizeValue's counterpart for a plain Go value
// of generic type E, used when a caller builds a Selection leaf (EQ, GT,
// ...) supplying a value of the dimension's declared element type.
func normalizeScalar[E cmp.Ordered](v E) any {
	rv := reflect.ValueOf(v)
	class, ok := classify(rv.Kind())
	if !ok {
		panic(&StructuralError{Msg: "normalizeScalar: unsupported element kind " + rv.Kind().String()})
	}
	return normalizeValue(rv, class)
}
