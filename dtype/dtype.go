// Package dtype enumerates the scalar element kinds shared between the type
// registry and numeric containers, and provides the half-precision helper
// types that have no native Go representation.
//
// The numeric values of ScalarType are an external contract: the registry's
// reserved identifier table tracks them bit-for-bit. Changing the numbering
// here without updating the table (or vice versa) is a correctness bug.
package dtype

import (
	"fmt"
	"reflect"
)

// ScalarType identifies one scalar element kind.
type ScalarType uint8

const (
	Uint8      ScalarType = iota // 0
	Int8                         // 1
	Int16                        // 2
	Int32                        // 3
	Int64                        // 4
	Float16                      // 5
	Float32                      // 6
	Float64                      // 7
	Complex32                    // 8
	Complex64                    // 9
	Complex128                   // 10
	Undefined                    // 11, sentinel: no scalar kind
)

// NumScalarTypes counts the kinds above, Undefined included.
const NumScalarTypes = int(Undefined) + 1

var scalarNames = [NumScalarTypes]string{
	"uint8", "int8", "int16", "int32", "int64",
	"float16", "float32", "float64",
	"complex32", "complex64", "complex128",
	"undefined",
}

// scalarSizes holds element sizes in bytes; Undefined has size 0.
var scalarSizes = [NumScalarTypes]uintptr{
	1, 1, 2, 4, 8,
	2, 4, 8,
	4, 8, 16,
	0,
}

func (s ScalarType) String() string {
	if int(s) < NumScalarTypes {
		return scalarNames[s]
	}
	return fmt.Sprintf("ScalarType(%d)", uint8(s))
}

// Size returns the byte size of one element of the kind, 0 for Undefined.
func (s ScalarType) Size() uintptr {
	if int(s) < NumScalarTypes {
		return scalarSizes[s]
	}
	return 0
}

// IsInteger reports whether s is one of the fixed-width integer kinds.
func (s ScalarType) IsInteger() bool {
	return s <= Int64
}

// IsFloatingPoint reports whether s is one of the floating point kinds.
func (s ScalarType) IsFloatingPoint() bool {
	return s >= Float16 && s <= Float64
}

// IsComplex reports whether s is one of the complex kinds.
func (s ScalarType) IsComplex() bool {
	return s >= Complex32 && s <= Complex128
}

var typeToScalar = map[reflect.Type]ScalarType{
	reflect.TypeFor[uint8]():       Uint8,
	reflect.TypeFor[int8]():        Int8,
	reflect.TypeFor[int16]():       Int16,
	reflect.TypeFor[int32]():       Int32,
	reflect.TypeFor[int64]():       Int64,
	reflect.TypeFor[Half]():        Float16,
	reflect.TypeFor[float32]():     Float32,
	reflect.TypeFor[float64]():     Float64,
	reflect.TypeFor[ComplexHalf](): Complex32,
	reflect.TypeFor[complex64]():   Complex64,
	reflect.TypeFor[complex128]():  Complex128,
}

// FromType maps a Go type to its scalar kind. The second result is false for
// types outside the catalogue.
func FromType(t reflect.Type) (ScalarType, bool) {
	s, ok := typeToScalar[t]
	return s, ok
}
