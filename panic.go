package ucoro

import (
	"fmt"
	"runtime/debug"
)

// panicError carries a panic raised in a coroutine body across the switch
// boundary so it can be rethrown on the resumer's side with the original
// stack attached.
type panicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *panicError {
	return &panicError{value: v, stack: debug.Stack()}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("ucoro: coroutine panic: %v", p.value)
}

func (p *panicError) Unwrap() error {
	err, ok := p.value.(error)
	if !ok {
		return nil
	}
	return err
}

// String includes the stack of the coroutine goroutine at the point of the
// panic, which the rethrown panic on the resumer side no longer shows.
func (p *panicError) String() string {
	return fmt.Sprintf("%v\n\n%s", p.value, p.stack)
}
