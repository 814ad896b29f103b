//go:build libtoxcore

package real

/*
#cgo pkg-config: toxcore
#include <stdlib.h>
#include <tox/tox.h>
#include <tox/toxav.h>

extern void goCall(ToxAV*, uint32_t, bool, bool, void*);
extern void goCallState(ToxAV*, uint32_t, uint32_t, void*);
extern void goAudioBitRate(ToxAV*, uint32_t, uint32_t, void*);
extern void goVideoBitRate(ToxAV*, uint32_t, uint32_t, void*);
extern void goAudioReceiveFrame(ToxAV*, uint32_t, int16_t*, size_t, uint8_t, uint32_t, void*);
extern void goVideoReceiveFrame(ToxAV*, uint32_t, uint16_t, uint16_t, uint8_t*, uint8_t*, uint8_t*, int32_t, int32_t, int32_t, void*);
extern void goGroupAudio(void*, uint32_t, uint32_t, int16_t*, uint32_t, uint8_t, uint32_t, void*);

static void cb_call(ToxAV *av, uint32_t f, bool a, bool v, void *ud) { goCall(av, f, a, v, ud); }
static void cb_call_state(ToxAV *av, uint32_t f, uint32_t s, void *ud) { goCallState(av, f, s, ud); }
static void cb_audio_bit_rate(ToxAV *av, uint32_t f, uint32_t br, void *ud) { goAudioBitRate(av, f, br, ud); }
static void cb_video_bit_rate(ToxAV *av, uint32_t f, uint32_t br, void *ud) { goVideoBitRate(av, f, br, ud); }
static void cb_audio_receive_frame(ToxAV *av, uint32_t f, const int16_t *pcm, size_t n, uint8_t ch, uint32_t rate, void *ud) {
	goAudioReceiveFrame(av, f, (int16_t*)pcm, n, ch, rate, ud);
}
static void cb_video_receive_frame(ToxAV *av, uint32_t f, uint16_t w, uint16_t h,
	const uint8_t *y, const uint8_t *u, const uint8_t *v, int32_t ys, int32_t us, int32_t vs, void *ud) {
	goVideoReceiveFrame(av, f, w, h, (uint8_t*)y, (uint8_t*)u, (uint8_t*)v, ys, us, vs, ud);
}
static void cb_group_audio(void *tox, uint32_t c, uint32_t p, const int16_t *pcm, unsigned int n, uint8_t ch, uint32_t rate, void *ud) {
	goGroupAudio(tox, c, p, (int16_t*)pcm, n, ch, rate, ud);
}

static void install_av_callbacks(ToxAV *av, void *ud) {
	toxav_callback_call(av, cb_call, ud);
	toxav_callback_call_state(av, cb_call_state, ud);
	toxav_callback_audio_bit_rate(av, cb_audio_bit_rate, ud);
	toxav_callback_video_bit_rate(av, cb_video_bit_rate, ud);
	toxav_callback_audio_receive_frame(av, cb_audio_receive_frame, ud);
	toxav_callback_video_receive_frame(av, cb_video_receive_frame, ud);
}

static int32_t add_av_groupchat(Tox *tox, void *ud) {
	return toxav_add_av_groupchat(tox, cb_group_audio, ud);
}

static int32_t join_av_groupchat(Tox *tox, uint32_t f, const uint8_t *cookie, uint16_t n, void *ud) {
	return toxav_join_av_groupchat(tox, f, cookie, n, cb_group_audio, ud);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/sirupsen/logrus"
)

// AVEngine drives the toxav instance of an Engine. It implements
// interfaces.AVEngine.
type AVEngine struct {
	core *Engine
	av   *C.ToxAV

	sink sink
	cb   interfaces.AVCallbacks
}

var _ interfaces.AVEngine = (*AVEngine)(nil)

// sink is a cgo.Handle stored in C memory so it can travel as user_data.
type sink struct {
	handle   cgo.Handle
	userData unsafe.Pointer
}

func newSink(v any) sink {
	s := sink{handle: cgo.NewHandle(v)}
	s.userData = C.malloc(C.size_t(unsafe.Sizeof(s.handle)))
	*(*cgo.Handle)(s.userData) = s.handle
	return s
}

func (s sink) free() {
	s.handle.Delete()
	C.free(s.userData)
}

func sinkValue(userData unsafe.Pointer) any {
	if userData == nil {
		return nil
	}
	return (*(*cgo.Handle)(userData)).Value()
}

func newAVEngine(core *Engine) (*AVEngine, uint32) {
	if core.tox == nil {
		return nil, interfaces.AVNewNull
	}
	if core.av != nil {
		return nil, interfaces.AVNewMultiple
	}

	var err C.TOXAV_ERR_NEW
	av := C.toxav_new(core.tox, &err)
	if av == nil {
		logrus.WithFields(logrus.Fields{
			"function": "newAVEngine",
			"code":     uint32(err),
		}).Error("toxav_new failed")
		return nil, uint32(err)
	}

	e := &AVEngine{core: core, av: av}
	e.sink = newSink(e)
	return e, interfaces.OK
}

func (e *AVEngine) RegisterCallbacks(cb interfaces.AVCallbacks) {
	e.cb = cb
	C.install_av_callbacks(e.av, e.sink.userData)
}

func (e *AVEngine) Iterate() {
	C.toxav_iterate(e.av)
}

func (e *AVEngine) IterationInterval() uint32 {
	return uint32(C.toxav_iteration_interval(e.av))
}

func (e *AVEngine) Kill() {
	if e.av == nil {
		return
	}
	C.toxav_kill(e.av)
	e.av = nil
	e.sink.free()
	// Audio conferences keep their callback inside the tox instance.
	e.core.groups.detachAll()
	if e.core.av == e {
		e.core.av = nil
	}
}

func (e *AVEngine) Call(friend uint32, audioBitRate, videoBitRate uint32) uint32 {
	var err C.TOXAV_ERR_CALL
	C.toxav_call(e.av, C.uint32_t(friend), C.uint32_t(audioBitRate), C.uint32_t(videoBitRate), &err)
	return uint32(err)
}

func (e *AVEngine) Answer(friend uint32, audioBitRate, videoBitRate uint32) uint32 {
	var err C.TOXAV_ERR_ANSWER
	C.toxav_answer(e.av, C.uint32_t(friend), C.uint32_t(audioBitRate), C.uint32_t(videoBitRate), &err)
	return uint32(err)
}

func (e *AVEngine) CallControl(friend uint32, control uint32) uint32 {
	var err C.TOXAV_ERR_CALL_CONTROL
	C.toxav_call_control(e.av, C.uint32_t(friend), C.TOXAV_CALL_CONTROL(control), &err)
	return uint32(err)
}

func (e *AVEngine) AudioSetBitRate(friend uint32, bitRate uint32) uint32 {
	var err C.TOXAV_ERR_BIT_RATE_SET
	C.toxav_audio_set_bit_rate(e.av, C.uint32_t(friend), C.uint32_t(bitRate), &err)
	return uint32(err)
}

func (e *AVEngine) VideoSetBitRate(friend uint32, bitRate uint32) uint32 {
	var err C.TOXAV_ERR_BIT_RATE_SET
	C.toxav_video_set_bit_rate(e.av, C.uint32_t(friend), C.uint32_t(bitRate), &err)
	return uint32(err)
}

func (e *AVEngine) AudioSendFrame(friend uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32) uint32 {
	var data *C.int16_t
	if len(pcm) > 0 {
		data = (*C.int16_t)(unsafe.Pointer(&pcm[0]))
	}
	var err C.TOXAV_ERR_SEND_FRAME
	C.toxav_audio_send_frame(e.av, C.uint32_t(friend), data, C.size_t(sampleCount),
		C.uint8_t(channels), C.uint32_t(samplingRate), &err)
	return uint32(err)
}

func (e *AVEngine) VideoSendFrame(friend uint32, width, height uint16, y, u, v []byte) uint32 {
	var err C.TOXAV_ERR_SEND_FRAME
	C.toxav_video_send_frame(e.av, C.uint32_t(friend), C.uint16_t(width), C.uint16_t(height),
		ptr(y), ptr(u), ptr(v), &err)
	return uint32(err)
}

func (e *AVEngine) AddAVGroupchat(cb interfaces.GroupAudioCallbacks) (uint32, bool) {
	gs := newGroupAudioSink(cb)
	s := newSink(gs)
	num := C.add_av_groupchat(e.core.tox, s.userData)
	if num < 0 {
		s.free()
		return 0, false
	}
	e.core.groups.add(uint32(num), gs, s.free)
	return uint32(num), true
}

func (e *AVEngine) JoinAVGroupchat(friend uint32, cookie []byte, cb interfaces.GroupAudioCallbacks) (uint32, bool) {
	if len(cookie) > 0xFFFF {
		return 0, false
	}
	gs := newGroupAudioSink(cb)
	s := newSink(gs)
	num := C.join_av_groupchat(e.core.tox, C.uint32_t(friend), ptr(cookie), C.uint16_t(len(cookie)), s.userData)
	if num < 0 {
		s.free()
		return 0, false
	}
	e.core.groups.add(uint32(num), gs, s.free)
	return uint32(num), true
}

func (e *AVEngine) GroupSendAudio(conference uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32) bool {
	if len(pcm) == 0 {
		return false
	}
	ret := C.toxav_group_send_audio(e.core.tox, C.uint32_t(conference), (*C.int16_t)(unsafe.Pointer(&pcm[0])),
		C.uint(samples), C.uint8_t(channels), C.uint32_t(sampleRate))
	return ret == 0
}
