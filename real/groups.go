package real

import (
	"sync"

	"github.com/opd-ai/toxbind/interfaces"
)

// groupAudioSink is the user_data target of one audio conference. The
// native callback stays attached to the conference for as long as the tox
// instance keeps it, which can outlive the AV instance that created it, so
// the AV side only detaches the sink and the core engine releases it.
type groupAudioSink struct {
	mu sync.Mutex
	cb interfaces.GroupAudioCallbacks
}

var _ interfaces.GroupAudioCallbacks = (*groupAudioSink)(nil)

func newGroupAudioSink(cb interfaces.GroupAudioCallbacks) *groupAudioSink {
	return &groupAudioSink{cb: cb}
}

// detach drops every later frame.
func (s *groupAudioSink) detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cb = nil
}

func (s *groupAudioSink) OnGroupAudio(conference, peer uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32) {
	s.mu.Lock()
	cb := s.cb
	s.mu.Unlock()
	if cb == nil {
		return
	}
	cb.OnGroupAudio(conference, peer, pcm, samples, channels, sampleRate)
}

type groupEntry struct {
	sink    *groupAudioSink
	release func()
}

// groupRegistry holds the audio conference sinks of a tox instance, keyed
// by conference number. release frees the native user_data of an entry.
type groupRegistry struct {
	entries map[uint32]groupEntry
}

// add registers a sink. A stale entry under the same number belongs to a
// deleted conference and is released first.
func (r *groupRegistry) add(conference uint32, sink *groupAudioSink, release func()) {
	if r.entries == nil {
		r.entries = make(map[uint32]groupEntry)
	}
	r.remove(conference)
	r.entries[conference] = groupEntry{sink: sink, release: release}
}

// remove releases the sink of a deleted conference.
func (r *groupRegistry) remove(conference uint32) {
	if e, ok := r.entries[conference]; ok {
		delete(r.entries, conference)
		e.release()
	}
}

// detachAll is called when the AV instance goes away. The sinks stay
// allocated because the conferences still reference them.
func (r *groupRegistry) detachAll() {
	for _, e := range r.entries {
		e.sink.detach()
	}
}

// releaseAll is called once the tox instance is gone.
func (r *groupRegistry) releaseAll() {
	for num, e := range r.entries {
		delete(r.entries, num)
		e.release()
	}
}

func (r *groupRegistry) len() int {
	return len(r.entries)
}
