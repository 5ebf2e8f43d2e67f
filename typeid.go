// Package typemeta assigns process-unique runtime identifiers to Go types and
// synthesizes the type-erased operations needed to construct, copy, and
// destroy their values through an untyped interface. It lets a generic
// container hold values of types it does not know at compile time while still
// managing the underlying memory correctly.
package typemeta

import "math"

// TypeID is a unique identifier for a Go type within one process run.
//
// For any two distinct types the identifiers differ; for one type, repeated
// queries return the same identifier. Identifiers are assigned lazily at run
// time and are NOT stable across runs. Never serialize them.
type TypeID uint16

const (
	// Uninitialized is the identifier reported by a zero TypeMeta handle.
	// It sits inside the reserved range and is never assigned to a type.
	Uninitialized TypeID = 11

	// HighestReservedID closes the reserved identifier range. Identifiers at
	// or below it belong to well-known types with fixed slots; dynamic
	// allocation starts above it.
	HighestReservedID TypeID = 27

	// MaxTypeID is the largest identifier the allocator can hand out.
	MaxTypeID = math.MaxUint16
)
