// Package notify delivers events to registered observers synchronously and
// in registration order.
package notify

import "sync"

// Observer receives events of type E.
type Observer[E any] interface {
	Notify(event E)
}

// Func returns a registrable observer backed by fn. Each call yields a
// distinct observer.
func Func[E any](fn func(E)) Observer[E] {
	return &funcObserver[E]{fn: fn}
}

type funcObserver[E any] struct {
	fn func(E)
}

func (o *funcObserver[E]) Notify(event E) { o.fn(event) }

// Hub holds an ordered observer list. Observers are compared by identity,
// so they must be comparable (typically pointers).
type Hub[E any] struct {
	mu        sync.Mutex
	observers []Observer[E]
}

// Add registers o. Registering the same observer twice has no effect.
func (h *Hub[E]) Add(o Observer[E]) {
	if o == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.observers {
		if existing == o {
			return
		}
	}
	h.observers = append(h.observers, o)
}

// Remove unregisters o. Removing an unknown observer is a no-op.
func (h *Hub[E]) Remove(o Observer[E]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.observers {
		if existing == o {
			h.observers = append(h.observers[:i:i], h.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (h *Hub[E]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Publish delivers event to every observer on the calling goroutine. The
// observer list is copied first, so observers may add or remove observers
// while being notified.
func (h *Hub[E]) Publish(event E) {
	h.mu.Lock()
	observers := make([]Observer[E], len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	for _, o := range observers {
		o.Notify(event)
	}
}
