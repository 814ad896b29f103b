package toxbind

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// SharedTox lets the core loop and the AV loop use one Tox.
//
// With gives one caller at a time exclusive use of the Tox; a second caller
// blocks until the first returns. The handle is reference counted: Retain
// adds an owner, Release drops one, and the last Release kills the Tox.
type SharedTox struct {
	mu   sync.Mutex
	tox  *Tox
	refs atomic.Int32
}

// NewSharedTox wraps t with a reference count of one.
func NewSharedTox(t *Tox) *SharedTox {
	s := &SharedTox{tox: t}
	s.refs.Store(1)
	return s
}

// Retain adds an owner and returns s.
func (s *SharedTox) Retain() *SharedTox {
	s.refs.Add(1)
	return s
}

// Release drops an owner. The last Release kills the Tox.
func (s *SharedTox) Release() {
	n := s.refs.Add(-1)
	if n > 0 {
		return
	}
	if n < 0 {
		logrus.WithFields(logrus.Fields{
			"function": "SharedTox.Release",
			"refs":     n,
		}).Error("SharedTox released more often than retained")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tox.Kill()
}

// With runs fn with exclusive use of the Tox. It returns ErrToxClosed
// without calling fn once the Tox has been killed.
func (s *SharedTox) With(fn func(t *Tox) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.tox.IsAlive() {
		return ErrToxClosed
	}
	return fn(s.tox)
}

// Tick runs one core iteration under the lock.
func (s *SharedTox) Tick() {
	_ = s.With(func(t *Tox) error {
		t.Tick()
		return nil
	})
}

// Events runs one Tick under the lock and returns the events it produced,
// together with any left in the queue.
func (s *SharedTox) Events() []Event {
	var events []Event
	_ = s.With(func(t *Tox) error {
		for ev := range t.Events() {
			events = append(events, ev)
		}
		return nil
	})
	return events
}

// IterationInterval returns the core engine's suggested wait.
func (s *SharedTox) IterationInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tox.IterationInterval()
}

// Refs returns the current number of owners.
func (s *SharedTox) Refs() int {
	return int(s.refs.Load())
}
