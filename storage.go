package ucoro

import (
	"encoding/binary"
	"fmt"
)

const canarySize = 8

// storage is the fixed-capacity LIFO byte channel embedded in a coroutine's
// memory block. It is deliberately a stack, not a queue: values handed
// across a single control transfer are drained in reverse push order, which
// is the only access pattern the coroutine contract needs. All operations
// are a bounds check plus a copy; no allocation.
//
// The block laid out by init holds the capacity region followed by a canary
// word. The checked operations can never reach the canary; the unchecked
// ones can, and a stomped canary is what Yield later reports as
// ErrStackOverflow.
type storage struct {
	buf    []byte // capacity bytes, then the canary word
	size   int    // capacity
	stored int    // cursor, acts as the stack top
}

func (s *storage) init(block []byte, size int) {
	s.buf = block
	s.size = size
	s.stored = 0
	binary.LittleEndian.PutUint64(block[size:size+canarySize], magicNumber)
}

func (s *storage) canaryIntact() bool {
	return binary.LittleEndian.Uint64(s.buf[s.size:s.size+canarySize]) == magicNumber
}

// push appends src at the cursor.
func (s *storage) push(src []byte) error {
	n := len(src)
	if n == 0 {
		return nil
	}
	if s.stored+n > s.size {
		return fmt.Errorf("%w: push of %d bytes with %d of %d in use", ErrNotEnoughSpace, n, s.stored, s.size)
	}
	copy(s.buf[s.stored:], src)
	s.stored += n
	return nil
}

// pop removes the n most recently pushed bytes, copying them into dst when
// one is given. A nil dst discards.
func (s *storage) pop(dst []byte, n int) error {
	if n == 0 {
		return nil
	}
	if n > s.stored {
		return fmt.Errorf("%w: pop of %d bytes with %d stored", ErrNotEnoughSpace, n, s.stored)
	}
	s.stored -= n
	if dst != nil {
		copy(dst, s.buf[s.stored:s.stored+n])
	}
	return nil
}

// peek is pop without advancing the cursor; it requires a destination.
func (s *storage) peek(dst []byte, n int) error {
	if n == 0 {
		return nil
	}
	if n > s.stored {
		return fmt.Errorf("%w: peek of %d bytes with %d stored", ErrNotEnoughSpace, n, s.stored)
	}
	if dst == nil {
		return fmt.Errorf("%w: nil peek destination", ErrInvalidPointer)
	}
	copy(dst, s.buf[s.stored-n:s.stored])
	return nil
}
