package ucoro

import "fmt"

// Size parameters applied by New when the corresponding option is absent.
// Stack sizes below MinStackSize are raised to it, mirroring the clamping
// the descriptor initialization has always done; the storage size must be
// positive.
const (
	DefaultStackSize   = 56 * 1024
	MinStackSize       = 32 * 1024
	DefaultStorageSize = 1024
)

// magicNumber seeds the coroutine's magic field and the canary word after
// the storage region; Yield checks both.
const magicNumber uint64 = 0x7E3CB1A9

// Coroutine is a suspendable unit of execution with a private stack and an
// embedded storage channel. Coroutines start Suspended and are driven with
// Resume; the entry function runs on the coroutine's own stack and hands
// control back through the Yield method of its Handle, or by returning,
// which is terminal.
//
// A coroutine must not be shared between chains of resumes running on
// different goroutines; that discipline is the caller's and is not checked.
type Coroutine struct {
	state State
	entry func(Handle)
	ctx   execContext
	store storage

	// prev links to whichever coroutine resumed this one, nil for an
	// external caller. Maintained only across a switch so that nested
	// resumes restore Normal/Running correctly.
	prev *Coroutine

	alloc     Allocator
	block     []byte
	stackSize int

	magic     uint64
	stop      bool
	destroyed bool
	pan       *panicError
}

type options struct {
	stackSize   int
	storageSize int
	alloc       Allocator
}

type Option func(*options)

// WithStackSize sets the logical stack budget of the coroutine. The backing
// goroutine stack is runtime managed and grows on demand; the value is
// validated and recorded for parity with fixed-stack ports.
func WithStackSize(n int) Option {
	return func(o *options) { o.stackSize = n }
}

// WithStorageSize sets the capacity in bytes of the storage channel.
func WithStorageSize(n int) Option {
	return func(o *options) { o.storageSize = n }
}

// WithAllocator sets the allocator providing the coroutine's backing block.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// New creates a coroutine executing entry, in the Suspended state. The
// entry function does not run until the first Resume.
func New(entry func(Handle), opts ...Option) (*Coroutine, error) {
	if entry == nil {
		return nil, fmt.Errorf("%w: nil entry function", ErrInvalidArguments)
	}

	o := options{
		stackSize:   DefaultStackSize,
		storageSize: DefaultStorageSize,
		alloc:       DefaultAllocator,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.storageSize <= 0 {
		return nil, fmt.Errorf("%w: storage size %d", ErrInvalidArguments, o.storageSize)
	}
	if o.alloc == nil {
		return nil, fmt.Errorf("%w: nil allocator", ErrInvalidArguments)
	}
	switch {
	case o.stackSize <= 0:
		o.stackSize = DefaultStackSize
	case o.stackSize < MinStackSize:
		o.stackSize = MinStackSize
	}
	o.stackSize = alignForward(o.stackSize, 16)

	need := o.storageSize + canarySize
	block, err := o.alloc.Allocate(need)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	if len(block) < need {
		_ = o.alloc.Release(block)
		return nil, fmt.Errorf("%w: allocator returned %d bytes, need %d", ErrMakeContext, len(block), need)
	}

	co := &Coroutine{
		state:     Suspended,
		entry:     entry,
		alloc:     o.alloc,
		block:     block,
		stackSize: o.stackSize,
		magic:     magicNumber,
	}
	co.store.init(block, o.storageSize)
	co.ctx.init()

	go co.run()
	return co, nil
}

// run is the coroutine trampoline. It registers the coroutine in goroutine
// local storage, parks until the first resume, invokes the entry function,
// and on termination marks the coroutine Dead before releasing the resumer.
func (co *Coroutine) run() {
	g := getg()
	storeContext(g, co)
	defer func() {
		co.state = Dead
		if v := recover(); v != nil {
			co.pan = newPanicError(v)
		}
		clearContext(g)
		co.ctx.finish()
	}()

	co.ctx.park()

	if !co.stop {
		co.entry(Handle{co})
	}
}

// Resume transfers control into the coroutine and blocks until it yields or
// completes. It fails with ErrNotSuspended on a coroutine in any other
// state, which is what keeps a coroutine from being entered twice.
//
// If the coroutine body panicked, the panic is rethrown here, on the
// resumer's side of the switch, wrapped in an error carrying the original
// stack.
func (co *Coroutine) Resume() error {
	if co == nil || co.destroyed {
		return ErrInvalidCoroutine
	}
	if co.state != Suspended {
		return ErrNotSuspended
	}

	co.state = Running
	co.jumpIn()

	if p := co.pan; p != nil {
		co.pan = nil
		panic(p)
	}
	return nil
}

// jumpIn performs the switch and maintains the caller link, so a coroutine
// that resumes another is Normal until the child comes back.
func (co *Coroutine) jumpIn() {
	prev := loadContext(getg())
	co.prev = prev
	if prev != nil {
		prev.state = Normal
	}

	co.ctx.switchIn()

	co.prev = nil
	if prev != nil {
		prev.state = Running
	}
}

// Destroy releases the coroutine's resources. The coroutine must be
// Suspended or Dead; destroying a Running coroutine, or one blocked on a
// child, fails with ErrInvalidOperation and changes nothing.
//
// A suspended coroutine is unwound first: it is woken one last time, its
// yield point does not return, and deferred statements in the body run in
// reverse order before the backing goroutine exits.
func (co *Coroutine) Destroy() error {
	if co == nil || co.destroyed {
		return ErrInvalidCoroutine
	}
	if co.state == Running || co.state == Normal {
		return ErrInvalidOperation
	}

	if co.state == Suspended {
		co.stop = true
		co.ctx.switchIn()
		if p := co.pan; p != nil {
			co.pan = nil
			co.destroyed = true
			_ = co.alloc.Release(co.block)
			co.block = nil
			panic(p)
		}
	}

	co.destroyed = true
	block := co.block
	co.block = nil
	return co.alloc.Release(block)
}

// Status reports the coroutine's lifecycle state. A nil or destroyed
// coroutine reports Dead.
func (co *Coroutine) Status() State {
	if co == nil {
		return Dead
	}
	return co.state
}

// Done reports whether the coroutine completed.
func (co *Coroutine) Done() bool { return co.Status() == Dead }

// Suspended reports whether the coroutine is paused and resumable.
func (co *Coroutine) Suspended() bool { return co.Status() == Suspended }

// IsRunning reports whether the coroutine is the one currently executing.
func (co *Coroutine) IsRunning() bool { return co.Status() == Running }

// Handle returns the non-owning reference used for in-coroutine operations
// and for the typed storage functions.
func (co *Coroutine) Handle() Handle { return Handle{co} }

// BytesStored returns the number of bytes currently in the storage channel.
func (co *Coroutine) BytesStored() int {
	if co == nil {
		return 0
	}
	return co.store.stored
}

// StorageCapacity returns the fixed capacity of the storage channel.
func (co *Coroutine) StorageCapacity() int {
	if co == nil {
		return 0
	}
	return co.store.size
}

// StackSize returns the coroutine's stack budget after validation: the
// default when unset, raised to MinStackSize when undersized, 16-aligned.
func (co *Coroutine) StackSize() int {
	if co == nil {
		return 0
	}
	return co.stackSize
}

// Current returns the handle of the coroutine executing on the calling
// goroutine, if any.
func Current() (Handle, bool) {
	if co := loadContext(getg()); co != nil {
		return Handle{co}, true
	}
	return Handle{}, false
}

// Yield suspends the current coroutine, returning control to its resumer.
// It fails with ErrNotRunning when no coroutine is executing on the calling
// goroutine.
func Yield() error {
	h, ok := Current()
	if !ok {
		return ErrNotRunning
	}
	return h.Yield()
}
