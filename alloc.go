package ucoro

import "fmt"

// Allocator provides the backing memory block that holds a coroutine's
// storage region and canary word. Allocate must return a block of at least
// the requested size; Release is called exactly once per allocated block,
// from Destroy.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Release(block []byte) error
}

// DefaultAllocator backs coroutines created without WithAllocator.
var DefaultAllocator Allocator = HeapAllocator{}

// HeapAllocator allocates blocks on the Go heap and leaves reclamation to
// the garbage collector.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidArguments, size)
	}
	return make([]byte, size), nil
}

func (HeapAllocator) Release(block []byte) error {
	return nil
}

func alignForward(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
