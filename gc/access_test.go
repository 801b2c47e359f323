package gc_test

import (
	"bytes"
	"math"
	"testing"
)

func TestBoundsConvention(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(16)

	// A range that exactly touches the end is legal.
	if n := m.Write(r, 10, []byte("123456")); n != 6 {
		t.Fatalf("write touching the end = %d, want 6", n)
	}
	if n := m.Read(r, 10, make([]byte, 6)); n != 6 {
		t.Fatalf("read touching the end = %d, want 6", n)
	}

	// One byte past the end is not.
	if n := m.Write(r, 11, []byte("123456")); n != 0 {
		t.Fatalf("write past the end = %d, want 0", n)
	}
	if n := m.Read(r, 16, make([]byte, 1)); n != 0 {
		t.Fatalf("read starting at size = %d, want 0", n)
	}
}

func TestRejectedWriteLeavesPayloadUntouched(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(8)

	m.Write(r, 0, []byte("AAAAAAAA"))
	if n := m.Write(r, 4, []byte("ZZZZZZ")); n != 0 {
		t.Fatalf("overlong write = %d, want 0", n)
	}
	got := make([]byte, 8)
	m.Read(r, 0, got)
	if !bytes.Equal(got, []byte("AAAAAAAA")) {
		t.Fatalf("rejected write mutated payload: %q", got)
	}
}

func TestNegativeAndOverflowingRanges(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(16)

	if n := m.Write(r, -1, []byte("x")); n != 0 {
		t.Fatal("negative offset accepted")
	}
	if n := m.Read(r, -4, make([]byte, 4)); n != 0 {
		t.Fatal("negative offset accepted on read")
	}
	// offset+length must not be computed in wrapping int arithmetic.
	if n := m.Write(r, math.MaxInt, []byte("abc")); n != 0 {
		t.Fatal("overflowing range accepted")
	}
	if n := m.Read(r, math.MaxInt-1, make([]byte, 8)); n != 0 {
		t.Fatal("overflowing range accepted on read")
	}
}

func TestEmptyTransferRejected(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(16)

	if n := m.Write(r, 0, nil); n != 0 {
		t.Fatal("empty write reported progress")
	}
	if n := m.Read(r, 0, nil); n != 0 {
		t.Fatal("empty read reported progress")
	}
}

func TestRawViewAliasesPayload(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(8)

	raw := m.Raw(r)
	if len(raw) != 8 {
		t.Fatalf("raw view length = %d, want 8", len(raw))
	}
	raw[3] = 0x7f
	got := make([]byte, 8)
	m.Read(r, 0, got)
	if got[3] != 0x7f {
		t.Fatal("raw mutation not visible through Read")
	}

	m.Write(r, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if raw[0] != 1 || raw[7] != 8 {
		t.Fatal("checked write not visible through raw view")
	}
}

func TestWriteReadRoundTripInsideBounds(t *testing.T) {
	m := quiet()
	defer m.Close()
	r, _ := m.Alloc(64)

	for _, tc := range []struct {
		off int
		src string
	}{
		{0, "a"},
		{1, "bcd"},
		{31, "mid"},
		{63, "z"},
	} {
		if n := m.Write(r, tc.off, []byte(tc.src)); n != len(tc.src) {
			t.Fatalf("write %q at %d = %d", tc.src, tc.off, n)
		}
		got := make([]byte, len(tc.src))
		if n := m.Read(r, tc.off, got); n != len(tc.src) || string(got) != tc.src {
			t.Fatalf("read at %d = %d %q, want %q", tc.off, n, got, tc.src)
		}
	}
}
