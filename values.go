package ucoro

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// The typed storage operations copy the raw in-memory representation of a
// value across the suspend point, so T is restricted to plain data: no
// pointers, strings, slices, maps, channels, functions or interfaces at any
// depth. The verdict per type is computed once and cached.
var storableTypes sync.Map // reflect.Type -> bool

func checkStorable(t reflect.Type) error {
	if v, ok := storableTypes.Load(t); ok {
		if v.(bool) {
			return nil
		}
		return fmt.Errorf("%w: %s is not plain data", ErrInvalidArguments, t)
	}
	ok := isPlainData(t)
	storableTypes.Store(t, ok)
	if !ok {
		return fmt.Errorf("%w: %s is not plain data", ErrInvalidArguments, t)
	}
	return nil
}

func isPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlainData(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPlainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

func valueBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// Push appends the raw bytes of v to the coroutine's storage channel. It
// fails with ErrInvalidArguments if T is not plain data and with
// ErrNotEnoughSpace if v does not fit in the remaining capacity.
func Push[T any](h Handle, v T) error {
	if err := h.check(); err != nil {
		return err
	}
	if err := checkStorable(reflect.TypeFor[T]()); err != nil {
		return err
	}
	return h.co.store.push(valueBytes(&v))
}

// Pop removes the most recently pushed value, interpreting its bytes as a
// T. The caller is responsible for popping the same type that was pushed;
// a size mismatch against the stored bytes fails with ErrNotEnoughSpace.
func Pop[T any](h Handle) (T, error) {
	var v T
	if err := h.check(); err != nil {
		return v, err
	}
	if err := checkStorable(reflect.TypeFor[T]()); err != nil {
		return v, err
	}
	dst := valueBytes(&v)
	if err := h.co.store.pop(dst, len(dst)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Peek is Pop without removing the value.
func Peek[T any](h Handle) (T, error) {
	var v T
	if err := h.check(); err != nil {
		return v, err
	}
	if err := checkStorable(reflect.TypeFor[T]()); err != nil {
		return v, err
	}
	dst := valueBytes(&v)
	if err := h.co.store.peek(dst, len(dst)); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// UncheckedPush appends v without validating the handle, the type or the
// capacity. A push past capacity overwrites the canary word, which the next
// checked Yield reports as ErrStackOverflow; pushing far past it is
// undefined behavior.
func UncheckedPush[T any](h Handle, v T) {
	s := &h.co.store
	src := valueBytes(&v)
	copy(s.buf[s.stored:], src)
	s.stored += len(src)
}

// UncheckedPop removes and returns the most recent value with no
// validation. Popping an empty channel is undefined behavior.
func UncheckedPop[T any](h Handle) T {
	var v T
	s := &h.co.store
	dst := valueBytes(&v)
	s.stored -= len(dst)
	copy(dst, s.buf[s.stored:s.stored+len(dst)])
	return v
}
