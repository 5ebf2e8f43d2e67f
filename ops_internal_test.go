package typemeta

import (
	"reflect"
	"sync"
	"testing"
)

func TestCopyAssignableProbe(t *testing.T) {
	type plain struct{ a, b int }
	type wrapped struct{ inner struct{ mu sync.RWMutex } }
	type locked struct{ locks [2]sync.Mutex }

	for _, tc := range []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), true},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[plain](), true},
		{reflect.TypeFor[*sync.Mutex](), true}, // pointer to a lock copies fine
		{reflect.TypeFor[sync.Mutex](), false},
		{reflect.TypeFor[sync.WaitGroup](), false},
		{reflect.TypeFor[wrapped](), false},
		{reflect.TypeFor[locked](), false},
		{reflect.TypeFor[NoCopy](), false},
	} {
		if got := copyAssignable(tc.typ); got != tc.want {
			t.Errorf("copyAssignable(%s) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestZeroInitializableProbe(t *testing.T) {
	type opaque struct{ NoZeroInit }
	if zeroInitializable(reflect.TypeFor[opaque]()) {
		t.Error("type embedding NoZeroInit must not be zero-initializable")
	}
	if !zeroInitializable(reflect.TypeFor[string]()) {
		t.Error("string must be zero-initializable")
	}
	if !zeroInitializable(reflect.TypeFor[struct{ v int }]()) {
		t.Error("plain struct must be zero-initializable")
	}
}
