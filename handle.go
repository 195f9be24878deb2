package ucoro

import "runtime"

// Handle is a non-owning reference to a coroutine. The entry function
// receives the handle of its own coroutine, and Current returns the handle
// of the executing one; either way it exposes the operations that are legal
// from inside: yielding and moving values through the storage channel. The
// zero Handle is invalid and all checked operations on it fail with
// ErrInvalidCoroutine.
type Handle struct {
	co *Coroutine
}

// Valid reports whether the handle refers to a live coroutine.
func (h Handle) Valid() bool {
	return h.co != nil && !h.co.destroyed
}

// Status reports the lifecycle state of the referenced coroutine.
func (h Handle) Status() State { return h.co.Status() }

func (h Handle) check() error {
	if h.co == nil || h.co.destroyed {
		return ErrInvalidCoroutine
	}
	return nil
}

// Yield suspends the coroutine and returns control to whoever resumed it.
// The call returns when the coroutine is next resumed.
//
// Before switching, the coroutine's magic field and storage canary are
// verified; if either was corrupted the switch is refused with
// ErrStackOverflow so the damage does not spread to the resumer. Yield on a
// coroutine that is not the running one fails with ErrNotRunning.
func (h Handle) Yield() error {
	co := h.co
	if co == nil || co.destroyed {
		return ErrInvalidCoroutine
	}
	if co.magic != magicNumber || !co.store.canaryIntact() {
		return ErrStackOverflow
	}
	if co.state != Running {
		return ErrNotRunning
	}

	co.state = Suspended
	co.ctx.switchOut()

	if co.stop {
		runtime.Goexit()
	}
	return nil
}

// UncheckedYield is Yield without state validation or the canary check.
// Callers must have established that the coroutine is the running one;
// violating that is undefined behavior, not a reported error.
func (h Handle) UncheckedYield() {
	co := h.co
	co.state = Suspended
	co.ctx.switchOut()
	if co.stop {
		runtime.Goexit()
	}
}

// PushBytes appends src to the storage channel.
func (h Handle) PushBytes(src []byte) error {
	if err := h.check(); err != nil {
		return err
	}
	return h.co.store.push(src)
}

// PopBytes removes the len(dst) most recently pushed bytes and copies them
// into dst. Last pushed is first popped.
func (h Handle) PopBytes(dst []byte) error {
	if err := h.check(); err != nil {
		return err
	}
	return h.co.store.pop(dst, len(dst))
}

// PeekBytes copies the len(dst) most recently pushed bytes into dst without
// removing them.
func (h Handle) PeekBytes(dst []byte) error {
	if err := h.check(); err != nil {
		return err
	}
	return h.co.store.peek(dst, len(dst))
}

// Drop removes the n most recently pushed bytes without copying them out.
func (h Handle) Drop(n int) error {
	if err := h.check(); err != nil {
		return err
	}
	if n < 0 {
		return ErrInvalidArguments
	}
	return h.co.store.pop(nil, n)
}

// BytesStored returns the number of bytes currently in the storage channel.
func (h Handle) BytesStored() int { return h.co.BytesStored() }

// StorageCapacity returns the fixed capacity of the storage channel.
func (h Handle) StorageCapacity() int { return h.co.StorageCapacity() }

// Coroutine returns the referenced coroutine, or nil for the zero handle.
func (h Handle) Coroutine() *Coroutine { return h.co }
