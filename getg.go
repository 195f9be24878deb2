//go:build amd64 || arm64

package ucoro

// getg is like the compiler intrinsic runtime.getg which retrieves the
// current goroutine object. The value is only ever used as a key into the
// goroutine local storage, never dereferenced.
//
// https://github.com/golang/go/blob/a2647f08f0c4e540540a7ae1b9ba7e668e6fed80/src/runtime/HACKING.md?plain=1#L44-L54
func getg() uintptr
