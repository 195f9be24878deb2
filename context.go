package ucoro

// execContext is the execution state of one coroutine switch endpoint. The
// coroutine side is a dedicated goroutine parked on the unbuffered next
// channel; a switch is a send followed by a receive on it. Because the
// channel is unbuffered and only the resumer and the coroutine ever touch
// it, the two sides proceed in strict alternation: control returns to a
// switchIn call site only when the coroutine performs the matching
// switchOut, and vice versa.
type execContext struct {
	next chan struct{}
}

func (c *execContext) init() {
	c.next = make(chan struct{})
}

// park blocks the freshly primed coroutine goroutine until the first
// switchIn. The entry function has not started yet.
func (c *execContext) park() {
	<-c.next
}

// switchIn transfers control to the coroutine and blocks the caller until
// the coroutine switches out or terminates.
func (c *execContext) switchIn() {
	c.next <- struct{}{}
	<-c.next
}

// switchOut transfers control back to the resumer and blocks the coroutine
// until the next switchIn.
func (c *execContext) switchOut() {
	c.next <- struct{}{}
	<-c.next
}

// finish permanently unblocks the resumer once the coroutine has
// terminated. The channel is closed rather than sent to, so a switchIn that
// raced with termination still returns; the state machine guarantees no
// further switchIn reaches the channel after that.
func (c *execContext) finish() {
	close(c.next)
}
