//go:build unix

package ucoro

import (
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator allocates coroutine blocks as anonymous private mappings
// with a PROT_NONE guard page after the usable region, so writes that run
// far past the storage area fault immediately instead of corrupting
// unrelated heap memory. Blocks must be released through the same allocator
// instance.
type MmapAllocator struct {
	mu       sync.Mutex
	mappings map[uintptr][]byte
}

func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{mappings: make(map[uintptr][]byte)}
}

func (a *MmapAllocator) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidArguments, size)
	}
	page := unix.Getpagesize()
	mapped := alignForward(size, page) + page

	mem, err := unix.Mmap(-1, 0, mapped, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrOutOfMemory, err)
	}
	if err := unix.Mprotect(mem[mapped-page:], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(mem)
		return nil, fmt.Errorf("%w: mprotect guard page: %v", ErrOutOfMemory, err)
	}

	block := mem[:size:size]
	a.mu.Lock()
	a.mappings[uintptr(unsafe.Pointer(&mem[0]))] = mem
	a.mu.Unlock()
	return block, nil
}

func (a *MmapAllocator) Release(block []byte) error {
	if len(block) == 0 {
		return fmt.Errorf("%w: empty block", ErrInvalidPointer)
	}
	key := uintptr(unsafe.Pointer(&block[0]))

	a.mu.Lock()
	mem, ok := a.mappings[key]
	delete(a.mappings, key)
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: block not allocated by this allocator", ErrInvalidPointer)
	}
	return unix.Munmap(mem)
}
