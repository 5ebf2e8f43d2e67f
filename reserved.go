package typemeta

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/edwinsyarief/typemeta/dtype"
)

// highestReserved is the sentinel type pinned to HighestReservedID, closing
// the reserved range. It exists so the last reserved slot is occupied like
// the others.
type highestReserved struct{}

var _ = Register[highestReserved]()

// reservedIDs fixes identifiers for well-known types so hot-path code can
// compare against compile-time constants instead of waiting on a dynamic
// allocation. Slots 0 through 11 track dtype.ScalarType bit-for-bit;
// renumbering either side without the other is a correctness bug, not a style
// issue. Slots 12 through 27 hold engineering helper types.
//
// byte and rune are aliases of uint8 and int32 and therefore share slots 0
// and 3. Slot 11 is the uninitialized identifier and maps to no type.
var reservedIDs = map[reflect.Type]TypeID{
	// Scalar kinds, numbered by dtype.ScalarType.
	reflect.TypeFor[uint8]():             TypeID(dtype.Uint8),      // 0
	reflect.TypeFor[int8]():              TypeID(dtype.Int8),       // 1
	reflect.TypeFor[int16]():             TypeID(dtype.Int16),      // 2
	reflect.TypeFor[int32]():             TypeID(dtype.Int32),      // 3
	reflect.TypeFor[int64]():             TypeID(dtype.Int64),      // 4
	reflect.TypeFor[dtype.Half]():        TypeID(dtype.Float16),    // 5
	reflect.TypeFor[float32]():           TypeID(dtype.Float32),    // 6
	reflect.TypeFor[float64]():           TypeID(dtype.Float64),    // 7
	reflect.TypeFor[dtype.ComplexHalf](): TypeID(dtype.Complex32),  // 8
	reflect.TypeFor[complex64]():         TypeID(dtype.Complex64),  // 9
	reflect.TypeFor[complex128]():        TypeID(dtype.Complex128), // 10

	// Engineering helpers.
	reflect.TypeFor[[]byte]():       12,
	reflect.TypeFor[string]():       13,
	reflect.TypeFor[bool]():         14,
	reflect.TypeFor[uint16]():       15,
	reflect.TypeFor[uint32]():       16,
	reflect.TypeFor[*sync.Mutex]():  17,
	reflect.TypeFor[*atomic.Bool](): 18,
	reflect.TypeFor[[]int32]():      19,
	reflect.TypeFor[[]int64]():      20,
	reflect.TypeFor[[]uint64]():     21,
	reflect.TypeFor[*bool]():        22,
	reflect.TypeFor[*byte]():        23,
	reflect.TypeFor[*int32]():       24,
	reflect.TypeFor[int]():          25,
	reflect.TypeFor[[]int]():        26,

	reflect.TypeFor[highestReserved](): HighestReservedID, // 27
}
