package typemeta_test

import (
	"sync"
	"testing"

	"github.com/edwinsyarief/typemeta"
	"github.com/stretchr/testify/require"
)

// Many goroutines race to materialize a previously-unseen type; exactly one
// identifier and one descriptor must come out of it.
func TestConcurrentFirstUse(t *testing.T) {
	type freshly struct{ a, b, c int64 }
	const workers = 64

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]typemeta.TypeMeta, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = typemeta.MetaFor[freshly]()
		}()
	}
	close(start)
	wg.Wait()

	first := results[0]
	for i, m := range results {
		require.Equal(t, first, m, "worker %d observed a different descriptor", i)
	}
	require.Greater(t, first.ID(), typemeta.HighestReservedID)
	require.Equal(t, first.ID(), typemeta.IDOf[freshly]())
}

func TestRegisterIsIdempotent(t *testing.T) {
	type registered struct{ v int }

	id1 := typemeta.Register[registered]()
	id2 := typemeta.Register[registered]()
	require.Equal(t, id1, id2)
	require.Equal(t, id1, typemeta.IDOf[registered]())
}

func TestRegisterNamed(t *testing.T) {
	type renamed struct{ v int }

	id := typemeta.RegisterNamed[renamed]("custom.Renamed")
	require.Equal(t, "custom.Renamed", typemeta.NameOf[renamed]())
	require.Equal(t, id, typemeta.IDOf[renamed]())

	require.NotPanics(t, func() { typemeta.RegisterNamed[renamed]("custom.Renamed") })
	require.Panics(t, func() { typemeta.RegisterNamed[renamed]("other.Name") })
}

// Materializing under the default name first makes a later named
// registration a duplicate-owner bug.
func TestRegisterNamedAfterDefaultPanics(t *testing.T) {
	type collided struct{ v int }

	_ = typemeta.IDOf[collided]()
	require.Panics(t, func() { typemeta.RegisterNamed[collided]("late.Name") })
}

func TestDynamicAllocationIsMonotonic(t *testing.T) {
	type earlier struct{ x [2]int64 }
	type later struct{ y [3]int64 }

	a := typemeta.IDOf[earlier]()
	b := typemeta.IDOf[later]()
	require.Greater(t, b, a)
}
