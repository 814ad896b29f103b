package toxbind

import (
	"iter"

	"github.com/opd-ai/toxbind/queue"
)

// Iterator yields the events queued on a Tox. It never blocks: Next returns
// false as soon as the queue is empty. Iterators share the receiving end of
// the queue, so a new one can be created every polling round.
type Iterator struct {
	rx *queue.Receiver[Event]
}

// Iter runs one Tick and returns an iterator over the queued events.
func (t *Tox) Iter() *Iterator {
	t.Tick()
	return &Iterator{rx: t.rx}
}

// Next returns the next queued event.
func (it *Iterator) Next() (Event, bool) {
	return it.rx.TryRecv()
}

// Events runs one Tick and yields every queued event:
//
//	for ev := range tox.Events() {
//	    handle(ev)
//	}
func (t *Tox) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		it := t.Iter()
		for {
			ev, ok := it.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Pending returns the number of queued events.
func (t *Tox) Pending() int {
	return t.rx.Len()
}
