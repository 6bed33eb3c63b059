// internal/pkg/notify/listeners.go
package notify

import "sync"

// Listeners is a synchronous observer registry. Callbacks run on the
// notifying goroutine in registration order.
type Listeners[T any] struct {
	mu        sync.Mutex
	callbacks []func(T)
}

// Add registers a callback. Nil callbacks are ignored.
func (l *Listeners[T]) Add(cb func(T)) {
	if cb == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callbacks = append(l.callbacks, cb)
}

// Notify invokes every registered callback with v. Callbacks added while
// notifying are not called until the next Notify.
func (l *Listeners[T]) Notify(v T) {
	l.mu.Lock()
	callbacks := make([]func(T), len(l.callbacks))
	copy(callbacks, l.callbacks)
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb(v)
	}
}

// Len returns the number of registered callbacks
func (l *Listeners[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.callbacks)
}
