package ucoro

import "sync"

// goroutine local storage; the map contains one entry for each goroutine
// that is started to power a coroutine, keyed by getg. A goroutine that has
// no entry is an external caller.
var (
	gmutex sync.RWMutex
	gstate map[uintptr]*Coroutine
)

func loadContext(g uintptr) *Coroutine {
	gmutex.RLock()
	co := gstate[g]
	gmutex.RUnlock()
	return co
}

func storeContext(g uintptr, co *Coroutine) {
	gmutex.Lock()
	if gstate == nil {
		gstate = make(map[uintptr]*Coroutine)
	}
	gstate[g] = co
	gmutex.Unlock()
}

func clearContext(g uintptr) {
	gmutex.Lock()
	delete(gstate, g)
	gmutex.Unlock()
}
