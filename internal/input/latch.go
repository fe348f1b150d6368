package input

import "sync/atomic"

// Latch is a single-slot mailbox for the most recent action.
// Writes overwrite, reads clear. It is owned by the render loop and handed to the backend
// that produces events; one producer and one consumer may sit on different goroutines.
type Latch struct {
	slot atomic.Uint32
}

// Set overwrites the latched action.
func (l *Latch) Set(a Action) {
	l.slot.Store(uint32(a))
}

// Feed decodes a key event and latches the result.
func (l *Latch) Feed(k Key, s KeyState) {
	l.Set(Decode(k, s))
}

// Consume returns the latched action and resets the slot to None.
func (l *Latch) Consume() Action {
	return Action(l.slot.Swap(uint32(None)))
}

// Peek returns the latched action without clearing it.
func (l *Latch) Peek() Action {
	return Action(l.slot.Load())
}
