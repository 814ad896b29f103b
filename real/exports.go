//go:build libtoxcore

package real

/*
#include <stdint.h>
#include <stdbool.h>
#include <tox/tox.h>
#include <tox/toxav.h>
*/
import "C"

import (
	"unsafe"

	"github.com/opd-ai/toxbind/interfaces"
)

// core returns the sink of the Iterate call in progress, or nil when the
// engine fires outside Iterate.
func core(userData unsafe.Pointer) interfaces.CoreCallbacks {
	e, _ := sinkValue(userData).(*Engine)
	if e == nil {
		return nil
	}
	return e.cb
}

func avSink(userData unsafe.Pointer) interfaces.AVCallbacks {
	e, _ := sinkValue(userData).(*AVEngine)
	if e == nil {
		return nil
	}
	return e.cb
}

func bytesOf(data *C.uint8_t, length C.size_t) []byte {
	if data == nil || length == 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), C.int(length))
}

func pcmOf(data *C.int16_t, n int) []int16 {
	if data == nil || n == 0 {
		return nil
	}
	return append([]int16(nil), unsafe.Slice((*int16)(unsafe.Pointer(data)), n)...)
}

//export goSelfConnectionStatus
func goSelfConnectionStatus(_ *C.Tox, status C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnSelfConnectionStatus(uint32(status))
	}
}

//export goFriendRequest
func goFriendRequest(_ *C.Tox, publicKey *C.uint8_t, message *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendRequest(bytesOf(publicKey, 32), bytesOf(message, length))
	}
}

//export goFriendMessage
func goFriendMessage(_ *C.Tox, friend, kind C.uint32_t, message *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendMessage(uint32(friend), uint32(kind), bytesOf(message, length))
	}
}

//export goFriendName
func goFriendName(_ *C.Tox, friend C.uint32_t, name *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendName(uint32(friend), bytesOf(name, length))
	}
}

//export goFriendStatusMessage
func goFriendStatusMessage(_ *C.Tox, friend C.uint32_t, message *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendStatusMessage(uint32(friend), bytesOf(message, length))
	}
}

//export goFriendStatus
func goFriendStatus(_ *C.Tox, friend, status C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendStatus(uint32(friend), uint32(status))
	}
}

//export goFriendConnectionStatus
func goFriendConnectionStatus(_ *C.Tox, friend, status C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendConnectionStatus(uint32(friend), uint32(status))
	}
}

//export goFriendTyping
func goFriendTyping(_ *C.Tox, friend C.uint32_t, typing C.bool, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendTyping(uint32(friend), bool(typing))
	}
}

//export goFriendReadReceipt
func goFriendReadReceipt(_ *C.Tox, friend, messageID C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendReadReceipt(uint32(friend), uint32(messageID))
	}
}

//export goFileRecvControl
func goFileRecvControl(_ *C.Tox, friend, file, control C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFileRecvControl(uint32(friend), uint32(file), uint32(control))
	}
}

//export goFileChunkRequest
func goFileChunkRequest(_ *C.Tox, friend, file C.uint32_t, position C.uint64_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFileChunkRequest(uint32(friend), uint32(file), uint64(position), uint64(length))
	}
}

//export goFileRecv
func goFileRecv(_ *C.Tox, friend, file, kind C.uint32_t, size C.uint64_t, name *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFileRecv(uint32(friend), uint32(file), uint32(kind), uint64(size), bytesOf(name, length))
	}
}

//export goFileRecvChunk
func goFileRecvChunk(_ *C.Tox, friend, file C.uint32_t, position C.uint64_t, data *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFileRecvChunk(uint32(friend), uint32(file), uint64(position), bytesOf(data, length))
	}
}

//export goConferenceInvite
func goConferenceInvite(_ *C.Tox, friend, kind C.uint32_t, cookie *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferenceInvite(uint32(friend), uint32(kind), bytesOf(cookie, length))
	}
}

//export goConferenceConnected
func goConferenceConnected(_ *C.Tox, conference C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferenceConnected(uint32(conference))
	}
}

//export goConferenceMessage
func goConferenceMessage(_ *C.Tox, conference, peer, kind C.uint32_t, message *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferenceMessage(uint32(conference), uint32(peer), uint32(kind), bytesOf(message, length))
	}
}

//export goConferenceTitle
func goConferenceTitle(_ *C.Tox, conference, peer C.uint32_t, title *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferenceTitle(uint32(conference), uint32(peer), bytesOf(title, length))
	}
}

//export goConferencePeerName
func goConferencePeerName(_ *C.Tox, conference, peer C.uint32_t, name *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferencePeerName(uint32(conference), uint32(peer), bytesOf(name, length))
	}
}

//export goConferencePeerListChanged
func goConferencePeerListChanged(_ *C.Tox, conference C.uint32_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnConferencePeerListChanged(uint32(conference))
	}
}

//export goFriendLossyPacket
func goFriendLossyPacket(_ *C.Tox, friend C.uint32_t, data *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendLossyPacket(uint32(friend), bytesOf(data, length))
	}
}

//export goFriendLosslessPacket
func goFriendLosslessPacket(_ *C.Tox, friend C.uint32_t, data *C.uint8_t, length C.size_t, userData unsafe.Pointer) {
	if cb := core(userData); cb != nil {
		cb.OnFriendLosslessPacket(uint32(friend), bytesOf(data, length))
	}
}

//export goCall
func goCall(_ *C.ToxAV, friend C.uint32_t, audio, video C.bool, userData unsafe.Pointer) {
	if cb := avSink(userData); cb != nil {
		cb.OnCall(uint32(friend), bool(audio), bool(video))
	}
}

//export goCallState
func goCallState(_ *C.ToxAV, friend, state C.uint32_t, userData unsafe.Pointer) {
	if cb := avSink(userData); cb != nil {
		cb.OnCallState(uint32(friend), uint32(state))
	}
}

//export goAudioBitRate
func goAudioBitRate(_ *C.ToxAV, friend, bitRate C.uint32_t, userData unsafe.Pointer) {
	if cb := avSink(userData); cb != nil {
		cb.OnAudioBitRate(uint32(friend), uint32(bitRate))
	}
}

//export goVideoBitRate
func goVideoBitRate(_ *C.ToxAV, friend, bitRate C.uint32_t, userData unsafe.Pointer) {
	if cb := avSink(userData); cb != nil {
		cb.OnVideoBitRate(uint32(friend), uint32(bitRate))
	}
}

//export goAudioReceiveFrame
func goAudioReceiveFrame(_ *C.ToxAV, friend C.uint32_t, pcm *C.int16_t, sampleCount C.size_t, channels C.uint8_t, rate C.uint32_t, userData unsafe.Pointer) {
	if cb := avSink(userData); cb != nil {
		samples := pcmOf(pcm, int(sampleCount)*int(channels))
		cb.OnAudioReceiveFrame(uint32(friend), samples, uint64(sampleCount), uint8(channels), uint32(rate))
	}
}

//export goVideoReceiveFrame
func goVideoReceiveFrame(_ *C.ToxAV, friend C.uint32_t, width, height C.uint16_t, y, u, v *C.uint8_t, yStride, uStride, vStride C.int32_t, userData unsafe.Pointer) {
	cb := avSink(userData)
	if cb == nil {
		return
	}
	h := int(height)
	plane := func(p *C.uint8_t, stride C.int32_t, rows int) []byte {
		n := abs(int(stride)) * rows
		return bytesOf(p, C.size_t(n))
	}
	cb.OnVideoReceiveFrame(uint32(friend), uint16(width), uint16(height),
		plane(y, yStride, h), plane(u, uStride, h/2), plane(v, vStride, h/2),
		int32(yStride), int32(uStride), int32(vStride))
}

//export goGroupAudio
func goGroupAudio(_ unsafe.Pointer, conference, peer C.uint32_t, pcm *C.int16_t, samples C.uint32_t, channels C.uint8_t, rate C.uint32_t, userData unsafe.Pointer) {
	cb, _ := sinkValue(userData).(interfaces.GroupAudioCallbacks)
	if cb == nil {
		return
	}
	cb.OnGroupAudio(uint32(conference), uint32(peer), pcmOf(pcm, int(samples)*int(channels)),
		uint32(samples), uint8(channels), uint32(rate))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
