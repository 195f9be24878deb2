package ucoro

import "errors"

// Every fallible operation reports failure through one of the sentinel
// errors below, possibly wrapped with extra detail; match them with
// errors.Is. None of these conditions are raised as panics because they may
// sit on either side of a coroutine switch.
var (
	// ErrInvalidArguments is returned by New for a nil entry function or a
	// non-positive storage size, and by the typed storage operations for
	// types that are not plain data.
	ErrInvalidArguments = errors.New("ucoro: invalid arguments")

	// ErrOutOfMemory is returned when the allocator cannot provide the
	// coroutine's backing block.
	ErrOutOfMemory = errors.New("ucoro: out of memory")

	// ErrMakeContext is returned when the coroutine's initial execution
	// state cannot be installed, e.g. the allocator produced a block too
	// small to hold the storage region and canary. It is fatal for that
	// coroutine; the coroutine is not created.
	ErrMakeContext = errors.New("ucoro: make context error")

	// ErrSwitchContext is reserved for context switch failures. The channel
	// based switch cannot fail, so it is never produced; it exists so that
	// callers written against the full error taxonomy compile and behave.
	ErrSwitchContext = errors.New("ucoro: switch context error")

	// ErrInvalidCoroutine is returned for operations on a nil handle or on
	// a coroutine that has been destroyed.
	ErrInvalidCoroutine = errors.New("ucoro: invalid coroutine")

	// ErrInvalidPointer is returned for a missing destination or a block
	// unknown to the releasing allocator.
	ErrInvalidPointer = errors.New("ucoro: invalid pointer")

	// ErrNotSuspended is returned by Resume when the coroutine is dead,
	// already running, or blocked on a child. This is the invariant that
	// prevents a coroutine from being entered twice.
	ErrNotSuspended = errors.New("ucoro: coroutine not suspended")

	// ErrNotRunning is returned by Yield when the target coroutine is not
	// the one currently executing.
	ErrNotRunning = errors.New("ucoro: coroutine not running")

	// ErrNotEnoughSpace is returned by storage operations that would
	// overflow the capacity or underflow the stored bytes.
	ErrNotEnoughSpace = errors.New("ucoro: not enough space")

	// ErrInvalidOperation is returned by Destroy on a running coroutine or
	// on one blocked on a child.
	ErrInvalidOperation = errors.New("ucoro: invalid operation")

	// ErrStackOverflow is returned by Yield when the coroutine's magic
	// number or canary word has been corrupted. Detection is best effort:
	// it catches writes past the storage region (typically from the
	// unchecked operations), not corruption that stays in bounds. The
	// coroutine's memory is suspect afterwards; there is no recovery.
	ErrStackOverflow = errors.New("ucoro: stack overflow")
)
