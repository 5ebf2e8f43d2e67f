package typemeta

import "testing"

type benchPayload struct {
	A, B int64
	S    string
}

// go test -bench BenchmarkMetaFor -count 1 .
func BenchmarkMetaFor(b *testing.B) {
	b.Run("reserved", func(b *testing.B) {
		for b.Loop() {
			_ = MetaFor[float64]()
		}
		b.ReportAllocs()
	})
	b.Run("dynamic", func(b *testing.B) {
		for b.Loop() {
			_ = MetaFor[benchPayload]()
		}
		b.ReportAllocs()
	})
}

func BenchmarkIDOf(b *testing.B) {
	for b.Loop() {
		_ = IDOf[int32]()
	}
	b.ReportAllocs()
}

func BenchmarkErasedOps(b *testing.B) {
	meta := MetaFor[benchPayload]()
	const n = 1024
	src := meta.Alloc(n)
	dst := meta.Alloc(n)

	b.Run("construct", func(b *testing.B) {
		for b.Loop() {
			if err := meta.Construct(dst, n); err != nil {
				b.Fatal(err)
			}
		}
		b.ReportAllocs()
	})
	b.Run("copy", func(b *testing.B) {
		for b.Loop() {
			if err := meta.Copy(src, dst, n); err != nil {
				b.Fatal(err)
			}
		}
		b.ReportAllocs()
	})
	b.Run("destroy", func(b *testing.B) {
		for b.Loop() {
			meta.Destroy(dst, n)
		}
		b.ReportAllocs()
	})
}
