package toxbind

import (
	"sync"
	"time"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

const defaultAVIterationInterval = 20 * time.Millisecond

// ToxAV is a handle to the audio/video engine bound to a Tox.
//
// ToxAV has its own Tick and IterationInterval and is meant to be driven by
// a separate loop. Its events are delivered through the owning Tox's
// iterator. Every delegated call checks that the engine is still alive and
// holds the engine lock for the duration of the call, so Kill cannot run
// underneath it.
type ToxAV struct {
	mu     sync.RWMutex
	engine interfaces.AVEngine

	tox     *Tox
	shared  *SharedTox
	release sync.Once
}

// NewToxAV creates the AV engine for the Tox inside shared. The ToxAV
// retains shared until Kill.
func NewToxAV(shared *SharedTox) (*ToxAV, error) {
	if shared == nil {
		return nil, AVNewNull
	}

	var av *ToxAV
	err := shared.With(func(t *Tox) error {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.engine == nil {
			return ErrToxClosed
		}
		if t.av != nil {
			return AVNewMultiple
		}

		engine, code := t.engine.NewAV()
		if err := check[AVNewError](code); err != nil {
			return err
		}
		if engine == nil {
			return AVNewNull
		}
		engine.RegisterCallbacks(t.bridge)

		av = &ToxAV{engine: engine, tox: t, shared: shared.Retain()}
		t.av = av
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewToxAV",
			"error":    err.Error(),
		}).Error("Failed to create ToxAV instance")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewToxAV",
	}).Info("ToxAV instance created")
	return av, nil
}

// withEngine runs fn with the AV engine, or fails with ErrAVClosed.
func (av *ToxAV) withEngine(fn func(e interfaces.AVEngine) error) error {
	av.mu.RLock()
	defer av.mu.RUnlock()

	if av.engine == nil {
		return ErrAVClosed
	}
	return fn(av.engine)
}

// withCore runs fn holding both the core and the AV lock, in that order.
// Group audio calls touch the core engine and need both.
func (av *ToxAV) withCore(fn func(e interfaces.AVEngine) error) error {
	av.tox.mu.Lock()
	defer av.tox.mu.Unlock()

	if av.tox.engine == nil {
		return ErrAVClosed
	}
	return av.withEngine(fn)
}

// IsAlive reports whether Kill has not been called yet.
func (av *ToxAV) IsAlive() bool {
	av.mu.RLock()
	defer av.mu.RUnlock()
	return av.engine != nil
}

// Tick runs one AV engine iteration.
func (av *ToxAV) Tick() {
	_ = av.withEngine(func(e interfaces.AVEngine) error {
		e.Iterate()
		return nil
	})
}

// IterationInterval is how long the AV loop should wait before the next
// Tick.
func (av *ToxAV) IterationInterval() time.Duration {
	interval := defaultAVIterationInterval
	_ = av.withEngine(func(e interfaces.AVEngine) error {
		interval = time.Duration(e.IterationInterval()) * time.Millisecond
		return nil
	})
	return interval
}

// Wait sleeps for IterationInterval.
func (av *ToxAV) Wait() {
	time.Sleep(av.IterationInterval())
}

// Kill tears down the AV engine and releases the shared Tox. Group audio
// handles fail with ErrAVClosed afterwards.
func (av *ToxAV) Kill() {
	av.killEngine()

	av.release.Do(func() {
		av.tox.mu.Lock()
		if av.tox.av == av {
			av.tox.av = nil
		}
		av.tox.mu.Unlock()

		av.shared.Release()
	})
}

// killEngine kills the engine if it is still alive.
func (av *ToxAV) killEngine() {
	av.mu.Lock()
	defer av.mu.Unlock()

	if av.engine == nil {
		return
	}
	av.engine.Kill()
	av.engine = nil

	logrus.WithFields(logrus.Fields{
		"function": "ToxAV.Kill",
	}).Info("ToxAV instance killed")
}

// Call calls a friend. A bit rate of zero disables that medium.
func (av *ToxAV) Call(friend uint32, audioBitRate, videoBitRate uint32) error {
	err := av.withEngine(func(e interfaces.AVEngine) error {
		return check[CallError](e.Call(friend, audioBitRate, videoBitRate))
	})
	logrus.WithFields(logrus.Fields{
		"function":       "ToxAV.Call",
		"friend_id":      friend,
		"audio_bit_rate": audioBitRate,
		"video_bit_rate": videoBitRate,
		"ok":             err == nil,
	}).Debug("Call requested")
	return err
}

// Answer accepts an incoming call.
func (av *ToxAV) Answer(friend uint32, audioBitRate, videoBitRate uint32) error {
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[AnswerError](e.Answer(friend, audioBitRate, videoBitRate))
	})
}

// Control applies a control command to a call.
func (av *ToxAV) Control(friend uint32, control CallControl) error {
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[CallControlError](e.CallControl(friend, uint32(control)))
	})
}

// SetAudioBitRate changes the audio bit rate of a call. Zero disables
// audio.
func (av *ToxAV) SetAudioBitRate(friend uint32, bitRate uint32) error {
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[BitRateSetError](e.AudioSetBitRate(friend, bitRate))
	})
}

// SetVideoBitRate changes the video bit rate of a call. Zero disables
// video.
func (av *ToxAV) SetVideoBitRate(friend uint32, bitRate uint32) error {
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[BitRateSetError](e.VideoSetBitRate(friend, bitRate))
	})
}

// SendAudioFrame sends interleaved PCM. len(pcm) must be sampleCount *
// channels.
func (av *ToxAV) SendAudioFrame(friend uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32) error {
	if uint64(len(pcm)) < sampleCount*uint64(channels) {
		return SendFrameInvalid
	}
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[SendFrameError](e.AudioSendFrame(friend, pcm, sampleCount, channels, samplingRate))
	})
}

// SendVideoFrame sends a YUV420 frame. y holds width*height bytes, u and v
// a quarter of that each.
func (av *ToxAV) SendVideoFrame(friend uint32, width, height uint16, y, u, v []byte) error {
	luma := int(width) * int(height)
	chroma := (int(width) / 2) * (int(height) / 2)
	if len(y) < luma || len(u) < chroma || len(v) < chroma {
		return SendFrameInvalid
	}
	return av.withEngine(func(e interfaces.AVEngine) error {
		return check[SendFrameError](e.VideoSendFrame(friend, width, height, y, u, v))
	})
}
