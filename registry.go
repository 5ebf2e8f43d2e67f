package typemeta

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
)

// registry is the process-wide allocation state: the dynamic identifier
// counter and one descriptor record per type seen so far. Both are mutated
// exactly once per distinct type and never updated again, so steady-state
// lookups are lock-free reads.
type registry struct {
	nextDynamicID atomic.Uint32
	metas         sync.Map // reflect.Type -> *record
}

// global lives for the whole process; descriptors are never reclaimed.
var global registry

// record pairs a descriptor slot with the guard that fills it. The first
// caller for a type builds the descriptor inside the once; concurrent callers
// block on it and then observe the identical record.
type record struct {
	once sync.Once
	meta *typeMetaData
}

func (r *registry) recordFor(t reflect.Type) *record {
	if rec, ok := r.metas.Load(t); ok {
		return rec.(*record)
	}
	rec, _ := r.metas.LoadOrStore(t, &record{})
	return rec.(*record)
}

// newTypeID hands out a fresh dynamic identifier, strictly greater than every
// identifier handed out before it. The counter only guarantees uniqueness;
// exactly-once allocation per type is the record's job. There is no way to
// free or reuse an identifier.
func (r *registry) newTypeID() TypeID {
	id := uint32(HighestReservedID) + r.nextDynamicID.Add(1)
	if id > MaxTypeID {
		panic(fmt.Sprintf("typemeta: identifier space exhausted (%d distinct types)", int(MaxTypeID)-int(HighestReservedID)))
	}
	return TypeID(id)
}

// buildMeta resolves T's identifier (reserved slot if it has one, fresh
// dynamic identifier otherwise) and installs the synthesized operations.
func buildMeta[T any](t reflect.Type, name string) *typeMetaData {
	id, ok := reservedIDs[t]
	if !ok {
		id = global.newTypeID()
	}
	return &typeMetaData{
		itemsize:  t.Size(),
		alloc:     allocOf[T](),
		construct: constructOf[T](name),
		copy:      copyOf[T](name),
		destroy:   destroyOf[T](),
		id:        id,
		name:      name,
		typ:       t,
	}
}

// MetaFor returns the handle to T's descriptor, creating the descriptor on
// first use. It is idempotent and safe for concurrent use: every call for the
// same T, from any goroutine, yields a handle to the identical descriptor.
func MetaFor[T any]() TypeMeta {
	t := reflect.TypeFor[T]()
	rec := global.recordFor(t)
	rec.once.Do(func() {
		rec.meta = buildMeta[T](t, t.String())
	})
	return TypeMeta{data: rec.meta}
}

// IDOf returns the process-unique identifier for T. Reserved types resolve to
// their fixed slots regardless of call order; other types are assigned a
// dynamic identifier on first use.
func IDOf[T any]() TypeID {
	return MetaFor[T]().ID()
}

// NameOf returns the registered name for T.
func NameOf[T any]() string {
	return MetaFor[T]().Name()
}

// Register forces materialization of T's identifier and descriptor and
// returns the identifier. Call it once from the package that owns T, usually
// as a package-level assignment:
//
//	var _ = typemeta.Register[MyType]()
//
// so every other package observes the one identifier instead of racing to
// materialize it. Calling Register again for the same T is harmless.
func Register[T any]() TypeID {
	return MetaFor[T]().ID()
}

// RegisterNamed is Register with an explicit display name overriding the
// reflect-derived one. The name is fixed by whichever registration
// materializes the descriptor first; a later RegisterNamed with a different
// name panics, surfacing the duplicate-owner integration bug instead of
// silently keeping one of the two.
func RegisterNamed[T any](name string) TypeID {
	t := reflect.TypeFor[T]()
	rec := global.recordFor(t)
	rec.once.Do(func() {
		rec.meta = buildMeta[T](t, name)
	})
	if rec.meta.name != name {
		panic(fmt.Sprintf("typemeta: type %s already registered as %q, cannot re-register as %q", t, rec.meta.name, name))
	}
	return rec.meta.id
}
