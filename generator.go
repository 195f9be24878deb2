package ucoro

import (
	"errors"
	"iter"
)

// YieldValue pushes v and yields, the producer-side idiom of a generator
// body: the consumer's next resume pops exactly the value pushed here.
func YieldValue[T any](h Handle, v T) error {
	if err := Push(h, v); err != nil {
		return err
	}
	return h.Yield()
}

// Generator drives a coroutine whose body repeatedly calls YieldValue,
// turning each resume into "produce the next T or end". The sequence is
// lazy, finite and forward-only; once exhausted it stays exhausted.
//
// The generator owns its coroutine: it destroys it on exhaustion, and
// Destroy abandons an unfinished one early. A body that breaks the
// YieldValue convention (yielding without pushing, or pushing a different
// size) surfaces as a storage error through Err.
type Generator[T any] struct {
	co  *Coroutine
	err error
}

// NewGenerator creates a generator running body. The body does not start
// until the first Next.
func NewGenerator[T any](body func(Handle), opts ...Option) (*Generator[T], error) {
	co, err := New(body, opts...)
	if err != nil {
		return nil, err
	}
	return &Generator[T]{co: co}, nil
}

// Next resumes the coroutine once and returns the value it produced. It
// returns ok=false when the generator is exhausted or a storage error
// occurred; after exhaustion repeated calls keep returning ok=false with a
// nil Err.
func (g *Generator[T]) Next() (T, bool) {
	var zero T
	if g.err != nil || g.co.Done() {
		return zero, false
	}
	if err := g.co.Resume(); err != nil {
		g.err = err
		return zero, false
	}
	if g.co.Done() {
		g.release()
		return zero, false
	}
	v, err := Pop[T](g.co.Handle())
	if err != nil {
		g.err = err
		return zero, false
	}
	return v, true
}

// Done reports whether the underlying coroutine has completed.
func (g *Generator[T]) Done() bool { return g.co.Done() }

// Err returns the first error encountered by Next, if any. Normal
// exhaustion is not an error.
func (g *Generator[T]) Err() error { return g.err }

// Values returns an iterator over the remaining values. Breaking out of the
// range leaves the generator mid-sequence; call Destroy if it will not be
// consumed further.
func (g *Generator[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Destroy releases the underlying coroutine, unwinding it if it has not
// finished. Destroying an already released generator is a no-op.
func (g *Generator[T]) Destroy() error {
	err := g.co.Destroy()
	if errors.Is(err, ErrInvalidCoroutine) {
		return nil
	}
	return err
}

func (g *Generator[T]) release() {
	if err := g.co.Destroy(); err != nil && !errors.Is(err, ErrInvalidCoroutine) {
		g.err = err
	}
}
