package typemeta

import (
	"reflect"
	"sync"
	"unsafe"
)

// NoZeroInit marks a type whose zero value is not a valid instance. Embedding
// it withholds the erased construct capability: Construct on the type's
// handle fails with a CapabilityError instead of zero-filling slots.
type NoZeroInit struct{}

func (NoZeroInit) noZeroInit() {}

type noZeroIniter interface{ noZeroInit() }

// NoCopy marks a type that must not be copy-assigned. Its pointer receiver
// satisfies sync.Locker, so `go vet` flags by-value copies of any struct
// containing it, and the registry withholds the erased copy capability by the
// same rule. Embed it as a blank field:
//
//	type Conn struct {
//		_ typemeta.NoCopy
//		...
//	}
type NoCopy struct{}

// Lock is a no-op used by the copylocks checker.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by the copylocks checker.
func (*NoCopy) Unlock() {}

// Erased operation shapes. A descriptor carries one of each, synthesized for
// its concrete type; callers invoke them without ever naming that type.
type (
	allocFn     func(n int) unsafe.Pointer
	constructFn func(p unsafe.Pointer, n int) error
	copyFn      func(src, dst unsafe.Pointer, n int) error
	destroyFn   func(p unsafe.Pointer, n int)
)

var (
	lockerType      = reflect.TypeFor[sync.Locker]()
	noZeroInitIface = reflect.TypeFor[noZeroIniter]()
)

// zeroInitializable reports whether t's zero value is a valid instance, i.e.
// t does not carry the NoZeroInit marker.
func zeroInitializable(t reflect.Type) bool {
	return !t.Implements(noZeroInitIface) && !reflect.PointerTo(t).Implements(noZeroInitIface)
}

// copyAssignable reports whether values of t may be copied by assignment.
// The rule is the one vet's copylocks check enforces: a type that is, or
// transitively contains by value, a sync.Locker must not be copied.
// sync.Mutex and the NoCopy marker both trip it; pointer fields do not.
func copyAssignable(t reflect.Type) bool {
	return !containsLocker(t)
}

func containsLocker(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		return false
	}
	if reflect.PointerTo(t).Implements(lockerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsLocker(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return containsLocker(t.Elem())
	}
	return false
}

// allocOf synthesizes a typed allocator for n consecutive slots. The backing
// memory is an ordinary []T, so it stays typed for the garbage collector even
// though callers only ever see the unsafe.Pointer to its first element.
func allocOf[T any]() allocFn {
	return func(n int) unsafe.Pointer {
		if n == 0 {
			return nil
		}
		s := make([]T, n)
		return unsafe.Pointer(&s[0])
	}
}

// constructOf synthesizes the construct operation: zero-initialize n
// consecutive slots at p. Types carrying the NoZeroInit marker get a stub
// that fails with a CapabilityError naming the type.
func constructOf[T any](name string) constructFn {
	if !zeroInitializable(reflect.TypeFor[T]()) {
		return func(unsafe.Pointer, int) error {
			return &CapabilityError{TypeName: name, Capability: CapabilityConstruct}
		}
	}
	return func(p unsafe.Pointer, n int) error {
		clear(unsafe.Slice((*T)(p), n))
		return nil
	}
}

// copyOf synthesizes the copy operation: element-wise assignment of n slots
// from src to dst. Types that must not be copied get a stub that fails with a
// CapabilityError naming the type.
func copyOf[T any](name string) copyFn {
	if !copyAssignable(reflect.TypeFor[T]()) {
		return func(unsafe.Pointer, unsafe.Pointer, int) error {
			return &CapabilityError{TypeName: name, Capability: CapabilityCopy}
		}
	}
	return func(src, dst unsafe.Pointer, n int) error {
		copy(unsafe.Slice((*T)(dst), n), unsafe.Slice((*T)(src), n))
		return nil
	}
}

// destroyOf synthesizes the destroy operation. Every type is destroyable:
// destruction clears the n slots at p so the garbage collector can reclaim
// whatever they referenced.
func destroyOf[T any]() destroyFn {
	return func(p unsafe.Pointer, n int) {
		clear(unsafe.Slice((*T)(p), n))
	}
}
