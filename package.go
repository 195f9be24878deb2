// Package ucoro implements minimal stackful coroutines: units of execution
// that own a private stack and hand control back and forth through explicit,
// synchronous resume and yield operations.
//
// A coroutine is created with New, which takes the entry function and returns
// a suspended coroutine. Resume transfers control into the coroutine until it
// yields or returns; yield, called through the Handle passed to the entry
// function, transfers control back to whoever resumed. Because a resume call
// blocks until the matching yield, exactly one coroutine executes at a time
// per chain and no locking is needed around coroutine-owned state.
//
// Each coroutine embeds a fixed-capacity LIFO storage channel used to pass
// plain-data values across a suspend point: the resumer pushes arguments
// before Resume and pops results after it returns, while the coroutine body
// does the mirror image through its handle. Generator and TaskRunner are thin
// layers over this contract: Generator turns resume-then-pop into "next value
// or end", and TaskRunner drives a set of coroutines round-robin until all
// have completed.
//
// Coroutines are backed by goroutines parked on an unbuffered channel, the
// runtime's native fiber primitive; no assembly context switch is involved.
// They must be driven to completion or destroyed with Destroy, otherwise the
// backing goroutine and memory block are retained.
package ucoro
