package dtype

import "github.com/x448/float16"

// Half is an IEEE 754 binary16 value stored in its 16-bit interchange form.
type Half float16.Float16

// HalfFromFloat32 converts f to the nearest representable half, using IEEE
// round-to-nearest-even. Values outside the half range become infinities.
func HalfFromFloat32(f float32) Half {
	return Half(float16.Fromfloat32(f))
}

// Float32 widens h exactly; every half value is representable as a float32.
func (h Half) Float32() float32 {
	return float16.Float16(h).Float32()
}

// Bits returns the raw 16-bit interchange encoding.
func (h Half) Bits() uint16 {
	return uint16(h)
}

// IsNaN reports whether h is a not-a-number value.
func (h Half) IsNaN() bool {
	return float16.Float16(h).IsNaN()
}

func (h Half) String() string {
	return float16.Float16(h).String()
}

// ComplexHalf packs a complex number as two halves.
type ComplexHalf struct {
	Real Half
	Imag Half
}

// ComplexHalfFromComplex64 narrows both parts of c to half precision.
func ComplexHalfFromComplex64(c complex64) ComplexHalf {
	return ComplexHalf{
		Real: HalfFromFloat32(real(c)),
		Imag: HalfFromFloat32(imag(c)),
	}
}

// Complex64 widens both parts exactly.
func (c ComplexHalf) Complex64() complex64 {
	return complex(c.Real.Float32(), c.Imag.Float32())
}
