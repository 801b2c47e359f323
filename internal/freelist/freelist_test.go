package freelist_test

import (
	"testing"

	"github.com/momentics/hioload-gc/internal/freelist"
)

func TestFreelistFIFOOrder(t *testing.T) {
	fl := freelist.New()
	if _, ok := fl.Get(); ok {
		t.Fatal("empty list returned a slot")
	}
	fl.Put(3)
	fl.Put(7)
	fl.Put(1)
	if fl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", fl.Len())
	}
	for _, want := range []uint32{3, 7, 1} {
		got, ok := fl.Get()
		if !ok || got != want {
			t.Fatalf("Get = %d,%v, want %d", got, ok, want)
		}
	}
	if _, ok := fl.Get(); ok {
		t.Fatal("drained list returned a slot")
	}
}
