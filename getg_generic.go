//go:build !amd64 && !arm64

package ucoro

import (
	"bytes"
	"runtime"
	"strconv"
)

// Architectures without an assembly getg derive a goroutine key from the
// header of a stack trace, "goroutine N [...". Slower, but only taken on
// coroutine creation, resume and yield, never on the storage fast path.
func getg() uintptr {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	s := buf[:n]
	s = bytes.TrimPrefix(s, []byte("goroutine "))
	if i := bytes.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	id, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		panic("ucoro: cannot parse goroutine id from stack header")
	}
	return uintptr(id)
}
