package xrpointer

type callbackEntry[T any] struct {
	id uint32
	fn func(T)
}

// callbackList is an ordered list of subscribers. Callbacks fire in
// registration order.
type callbackList[T any] struct {
	entries []callbackEntry[T]
	nextID  uint32
}

func (l *callbackList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, callbackEntry[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.remove(id) }}
}

// remove drops the entry by building a new slice, so a fire already ranging
// over the old one is unaffected.
func (l *callbackList[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			entries := make([]callbackEntry[T], 0, len(l.entries)-1)
			entries = append(entries, l.entries[:i]...)
			l.entries = append(entries, l.entries[i+1:]...)
			return
		}
	}
}

func (l *callbackList[T]) fire(v T) {
	for _, e := range l.entries {
		e.fn(v)
	}
}

func (l *callbackList[T]) len() int {
	return len(l.entries)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or on the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}
