package ucoro

import "testing"

func TestGLS(t *testing.T) {
	c := make(chan *Coroutine)
	co := new(Coroutine)

	go func() {
		defer close(c)
		g := getg()
		storeContext(g, co)
		c <- loadContext(g)
		clearContext(g)
		c <- loadContext(g)
	}()

	if v, ok := <-c; !ok || v != co {
		t.Errorf("unexpected first value: want=(%p,true) got=(%p,%v)", co, v, ok)
	}
	if v, ok := <-c; !ok || v != nil {
		t.Errorf("unexpected second value: want=(nil,true) got=(%p,%v)", v, ok)
	}
	if v, ok := <-c; ok {
		t.Errorf("too many values received: got=(%p,%v)", v, ok)
	}
}

func BenchmarkGLS(b *testing.B) {
	b.Run("getg", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = getg()
			}
		})
	})

	b.Run("loadContext", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			g := getg()
			for pb.Next() {
				_ = loadContext(g)
			}
		})
	})

	b.Run("store load clear", func(b *testing.B) {
		co := new(Coroutine)
		b.RunParallel(func(pb *testing.PB) {
			g := getg()
			for pb.Next() {
				storeContext(g, co)
				loadContext(g)
				clearContext(g)
			}
		})
	})
}
