package typemeta

import (
	"reflect"
	"unsafe"
)

// typeMetaData is the immutable per-type descriptor: item size, the erased
// operations, the identifier, and a printable name. Exactly one instance
// exists per distinct type for the life of the process, so handles compare by
// the address of this record.
type typeMetaData struct {
	itemsize  uintptr
	alloc     allocFn
	construct constructFn
	copy      copyFn
	destroy   destroyFn
	id        TypeID
	name      string
	typ       reflect.Type
}

// uninitializedName is what a zero handle reports from Name.
const uninitializedName = "uninitialized"

// TypeMeta is a small, freely copyable handle to a type's descriptor. It is
// what erased containers store to remember how to manage their payload.
//
// The zero value is the uninitialized handle: identifier Uninitialized, item
// size 0, no capabilities. Two handles compare equal with == exactly when
// they were built from the same type.
type TypeMeta struct {
	data *typeMetaData
}

// ID returns the type's process-unique identifier.
func (m TypeMeta) ID() TypeID {
	if m.data == nil {
		return Uninitialized
	}
	return m.data.id
}

// ItemSize returns the size in bytes of one value of the type.
func (m TypeMeta) ItemSize() uintptr {
	if m.data == nil {
		return 0
	}
	return m.data.itemsize
}

// Name returns a printable name for the type.
func (m TypeMeta) Name() string {
	if m.data == nil {
		return uninitializedName
	}
	return m.data.name
}

// Type returns the described reflect.Type, or nil for the zero handle.
func (m TypeMeta) Type() reflect.Type {
	if m.data == nil {
		return nil
	}
	return m.data.typ
}

// String implements fmt.Stringer by returning the type's name.
func (m TypeMeta) String() string {
	return m.Name()
}

// Alloc allocates n consecutive slots of the type and returns the address of
// the first. The memory is typed for the garbage collector and zeroed. The
// zero handle, or n == 0, yields nil.
func (m TypeMeta) Alloc(n int) unsafe.Pointer {
	if m.data == nil {
		return nil
	}
	return m.data.alloc(n)
}

// Construct zero-initializes n consecutive slots of the type at p. It fails
// with a *CapabilityError if the type carries the NoZeroInit marker, or if m
// is the zero handle.
func (m TypeMeta) Construct(p unsafe.Pointer, n int) error {
	if m.data == nil {
		return &CapabilityError{TypeName: uninitializedName, Capability: CapabilityConstruct}
	}
	return m.data.construct(p, n)
}

// Copy assigns n consecutive elements from src to dst, element-wise. It fails
// with a *CapabilityError if the type must not be copied (it is, or contains,
// a sync.Locker), or if m is the zero handle.
func (m TypeMeta) Copy(src, dst unsafe.Pointer, n int) error {
	if m.data == nil {
		return &CapabilityError{TypeName: uninitializedName, Capability: CapabilityCopy}
	}
	return m.data.copy(src, dst, n)
}

// Destroy clears n consecutive slots of the type at p, dropping any
// references they held. It is defined for every type and never fails; on the
// zero handle it is a no-op.
func (m TypeMeta) Destroy(p unsafe.Pointer, n int) {
	if m.data == nil {
		return
	}
	m.data.destroy(p, n)
}

// Matches reports whether m refers to T's descriptor. It is equivalent to
// m == MetaFor[T]().
func Matches[T any](m TypeMeta) bool {
	return m == MetaFor[T]()
}
