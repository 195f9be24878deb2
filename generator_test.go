package ucoro

import (
	"errors"
	"slices"
	"testing"
)

func fibonacci(terms int) func(Handle) {
	return func(h Handle) {
		a, b := 0, 1
		for i := 0; i < terms; i++ {
			if err := YieldValue(h, a); err != nil {
				return
			}
			a, b = b, a+b
		}
	}
}

func TestGeneratorFibonacci(t *testing.T) {
	gen, err := NewGenerator[int](fibonacci(10))
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for {
		v, ok := gen.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}

	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	if !slices.Equal(got, want) {
		t.Errorf("fibonacci terms: want=%v got=%v", want, got)
	}
	if !gen.Done() {
		t.Error("generator not done after exhaustion")
	}
	if err := gen.Err(); err != nil {
		t.Errorf("generator error after clean exhaustion: %v", err)
	}
}

func TestGeneratorExhaustionIsIdempotent(t *testing.T) {
	gen, err := NewGenerator[int](fibonacci(1))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := gen.Next(); !ok || v != 0 {
		t.Fatalf("first value: want=(0,true) got=(%d,%v)", v, ok)
	}
	if _, ok := gen.Next(); ok {
		t.Fatal("generator produced a value past the end")
	}
	for i := 0; i < 3; i++ {
		if v, ok := gen.Next(); ok || v != 0 {
			t.Errorf("next %d after exhaustion: want=(0,false) got=(%d,%v)", i, v, ok)
		}
		if err := gen.Err(); err != nil {
			t.Errorf("error %d after exhaustion: %v", i, err)
		}
	}
}

func TestGeneratorValues(t *testing.T) {
	gen, err := NewGenerator[int](fibonacci(5))
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for v := range gen.Values() {
		got = append(got, v)
	}
	want := []int{0, 1, 1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("iterated terms: want=%v got=%v", want, got)
	}
}

func TestGeneratorYieldWithoutPush(t *testing.T) {
	gen, err := NewGenerator[int](func(h Handle) {
		_ = h.Yield()
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := gen.Next(); ok {
		t.Error("generator produced a value the body never pushed")
	}
	if err := gen.Err(); !errors.Is(err, ErrNotEnoughSpace) {
		t.Errorf("convention violation: want=%v got=%v", ErrNotEnoughSpace, err)
	}
	if err := gen.Destroy(); err != nil {
		t.Fatal(err)
	}
}

func TestGeneratorDestroyEarly(t *testing.T) {
	unwound := false
	gen, err := NewGenerator[int](func(h Handle) {
		defer func() { unwound = true }()
		for i := 0; ; i++ {
			if err := YieldValue(h, i); err != nil {
				return
			}
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		v, ok := gen.Next()
		if !ok || v != i {
			t.Fatalf("value %d: want=(%d,true) got=(%d,%v)", i, i, v, ok)
		}
	}
	if err := gen.Destroy(); err != nil {
		t.Fatal(err)
	}
	if !unwound {
		t.Error("generator body defer did not run on destroy")
	}
	if err := gen.Destroy(); err != nil {
		t.Errorf("repeated destroy: want=nil got=%v", err)
	}
}
