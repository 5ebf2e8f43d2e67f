// Package storage provides a fixed-length, type-erased buffer managed
// through a registry handle. It is the canonical consumer of the erased
// operations: a Buffer constructs, copies, and destroys its elements without
// ever naming their Go type.
package storage

import (
	"fmt"
	"unsafe"

	"github.com/edwinsyarief/typemeta"
)

// Buffer owns n contiguous slots of one erased element type. The zero Buffer
// is empty and released.
type Buffer struct {
	meta typemeta.TypeMeta
	ptr  unsafe.Pointer
	n    int
}

// New allocates and constructs a buffer of n elements described by meta.
// It fails if the element type withholds the construct capability (including
// the zero handle, which describes no type at all).
func New(meta typemeta.TypeMeta, n int) (*Buffer, error) {
	if n < 0 {
		panic(fmt.Sprintf("storage: negative length %d", n))
	}
	b := &Buffer{meta: meta, ptr: meta.Alloc(n), n: n}
	if err := meta.Construct(b.ptr, n); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int {
	return b.n
}

// Meta returns the handle describing the element type.
func (b *Buffer) Meta() typemeta.TypeMeta {
	return b.meta
}

// Ptr returns the address of the first element, nil when the buffer is empty.
func (b *Buffer) Ptr() unsafe.Pointer {
	return b.ptr
}

// Index returns the address of element i. It panics when i is out of range,
// like indexing a slice.
func (b *Buffer) Index(i int) unsafe.Pointer {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("storage: index %d out of range [0:%d]", i, b.n))
	}
	return unsafe.Add(b.ptr, uintptr(i)*b.meta.ItemSize())
}

// CopyFrom copy-assigns every element of src into b. The two buffers must
// hold the same element type and the same length, and the element type must
// allow assignment.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src.meta != b.meta {
		return fmt.Errorf("storage: cannot copy %s elements into %s buffer", src.meta.Name(), b.meta.Name())
	}
	if src.n != b.n {
		return fmt.Errorf("storage: length mismatch: copying %d elements into %d", src.n, b.n)
	}
	return b.meta.Copy(src.ptr, b.ptr, b.n)
}

// Resize changes the buffer to n elements: surviving elements are copied
// into a fresh allocation, new tail slots are constructed, and the old slots
// are destroyed. Shrinking to 0 keeps the buffer usable, unlike Release.
// Resizing fails when the element type withholds a needed capability; the
// buffer is left unchanged in that case.
func (b *Buffer) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("storage: negative length %d", n))
	}
	if n == b.n {
		return nil
	}
	ptr := b.meta.Alloc(n)
	keep := min(n, b.n)
	if keep > 0 {
		if err := b.meta.Copy(b.ptr, ptr, keep); err != nil {
			return err
		}
	}
	if n > keep {
		tail := unsafe.Add(ptr, uintptr(keep)*b.meta.ItemSize())
		if err := b.meta.Construct(tail, n-keep); err != nil {
			return err
		}
	}
	b.meta.Destroy(b.ptr, b.n)
	b.ptr = ptr
	b.n = n
	return nil
}

// Release destroys the elements and drops the backing allocation, leaving the
// buffer empty. Releasing an empty buffer is a no-op.
func (b *Buffer) Release() {
	b.meta.Destroy(b.ptr, b.n)
	b.ptr = nil
	b.n = 0
}

// View reinterprets b as a typed slice sharing the buffer's memory. It fails
// unless the buffer's element type is exactly T.
func View[T any](b *Buffer) ([]T, error) {
	if !typemeta.Matches[T](b.meta) {
		return nil, fmt.Errorf("storage: buffer holds %s, not %s", b.meta.Name(), typemeta.NameOf[T]())
	}
	return unsafe.Slice((*T)(b.ptr), b.n), nil
}
