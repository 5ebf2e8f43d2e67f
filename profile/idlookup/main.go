// Profiling:
// go build ./profile/idlookup
// go tool pprof -http=":8000" -nodefraction=0.001 ./idlookup cpu.pprof

package main

import (
	"github.com/edwinsyarief/typemeta"
	"github.com/pkg/profile"
)

type payloadA struct{ V, W int64 }
type payloadB struct{ S string }

func main() {
	iters := 50_000_000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters)
	p.Stop()
}

// run hammers steady-state identifier lookups, mixing reserved slots with
// dynamically allocated ones.
func run(iters int) {
	var sink uint64
	for range iters {
		sink += uint64(typemeta.IDOf[float64]())
		sink += uint64(typemeta.IDOf[int32]())
		sink += uint64(typemeta.IDOf[payloadA]())
		sink += uint64(typemeta.IDOf[payloadB]())
	}
	if sink == 0 {
		panic("unexpected zero checksum")
	}
}
