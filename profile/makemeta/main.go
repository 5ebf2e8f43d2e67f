// Profiling:
// go build ./profile/makemeta
// go tool pprof -http=":8000" -nodefraction=0.001 ./makemeta mem.pprof

package main

import (
	"github.com/edwinsyarief/typemeta"
	"github.com/edwinsyarief/typemeta/storage"
	"github.com/pkg/profile"
)

type sample struct {
	A, B int64
	Tag  string
}

func main() {
	rounds := 50
	iters := 10000
	elems := 1024
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, elems)
	p.Stop()
}

func run(rounds, iters, elems int) {
	meta := typemeta.MetaFor[sample]()
	for range rounds {
		src, err := storage.New(meta, elems)
		if err != nil {
			panic(err)
		}
		view, err := storage.View[sample](src)
		if err != nil {
			panic(err)
		}
		for i := range view {
			view[i] = sample{A: int64(i), B: int64(i * 2), Tag: "sample"}
		}
		dst, err := storage.New(meta, elems)
		if err != nil {
			panic(err)
		}
		for range iters {
			if err := dst.CopyFrom(src); err != nil {
				panic(err)
			}
		}
		dst.Release()
		src.Release()
	}
}
