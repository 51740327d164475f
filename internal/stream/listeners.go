package stream

import (
	"log"
	"sync"
)

// fanout delivers values to registered listeners synchronously and in
// registration order. Inbound events must reach listeners in arrival order,
// so there is no buffering here. A panicking listener is recovered and
// logged so it cannot block delivery to the rest.
type fanout[T any] struct {
	mu  sync.Mutex
	fns []func(T)
}

func (f *fanout[T]) add(fn func(T)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	f.fns = append(f.fns, fn)
	f.mu.Unlock()
}

func (f *fanout[T]) deliver(scope string, v T) {
	f.mu.Lock()
	fns := append(([]func(T))(nil), f.fns...)
	f.mu.Unlock()
	for _, fn := range fns {
		invoke(scope, fn, v)
	}
}

func invoke[T any](scope string, fn func(T), v T) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[stream] recovered panic in %s listener: %v", scope, r)
		}
	}()
	fn(v)
}
