package ucoro

import (
	"errors"
	"testing"
)

func TestStorableTypes(t *testing.T) {
	h := newStorageCoroutine(t, 128).Handle()

	if err := Push(h, "not plain"); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("push string: want=%v got=%v", ErrInvalidArguments, err)
	}
	type withPointer struct {
		N int
		P *int
	}
	if err := Push(h, withPointer{N: 1}); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("push pointer-bearing struct: want=%v got=%v", ErrInvalidArguments, err)
	}
	if err := Push(h, []int{1, 2}); !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("push slice: want=%v got=%v", ErrInvalidArguments, err)
	}
	// Rejections must not consume storage.
	if n := h.BytesStored(); n != 0 {
		t.Errorf("bytes stored after rejected pushes: want=0 got=%d", n)
	}
}

func TestPlainStructRoundTrip(t *testing.T) {
	type point struct {
		X, Y float64
		Tag  [4]byte
	}
	h := newStorageCoroutine(t, 128).Handle()

	want := point{X: 1.5, Y: -2.25, Tag: [4]byte{'a', 'b', 'c', 'd'}}
	if err := Push(h, want); err != nil {
		t.Fatal(err)
	}
	got, err := Pop[point](h)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("round trip: want=%+v got=%+v", want, got)
	}
}

func TestTypeSizeMismatch(t *testing.T) {
	h := newStorageCoroutine(t, 128).Handle()

	if err := Push(h, int32(5)); err != nil {
		t.Fatal(err)
	}
	// Popping more bytes than were stored is the observable symptom of a
	// type mismatch.
	if _, err := Pop[int64](h); !errors.Is(err, ErrNotEnoughSpace) {
		t.Errorf("oversized pop: want=%v got=%v", ErrNotEnoughSpace, err)
	}
	if v, err := Pop[int32](h); err != nil || v != 5 {
		t.Errorf("pop after failed pop: want=(5,nil) got=(%d,%v)", v, err)
	}
}

func TestUncheckedRoundTrip(t *testing.T) {
	h := newStorageCoroutine(t, 64).Handle()

	UncheckedPush(h, uint64(0xfeedface))
	UncheckedPush(h, uint64(0xdeadbeef))
	if v := UncheckedPop[uint64](h); v != 0xdeadbeef {
		t.Errorf("first unchecked pop: want=%#x got=%#x", uint64(0xdeadbeef), v)
	}
	if v := UncheckedPop[uint64](h); v != 0xfeedface {
		t.Errorf("second unchecked pop: want=%#x got=%#x", uint64(0xfeedface), v)
	}
}
