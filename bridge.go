package toxbind

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/queue"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
)

// eventBridge turns engine callbacks into owned events on the queue. It
// implements every callback interface the engines report to.
//
// Engine buffers are copied before the callback returns. Strings are decoded
// lossily. A discriminant the binding does not know either falls back to a
// default or drops that one event; nothing here fails the tick.
type eventBridge struct {
	tx *queue.Sender[Event]
}

var (
	_ interfaces.CoreCallbacks       = (*eventBridge)(nil)
	_ interfaces.AVCallbacks         = (*eventBridge)(nil)
	_ interfaces.GroupAudioCallbacks = (*eventBridge)(nil)
)

func newEventBridge(tx *queue.Sender[Event]) *eventBridge {
	return &eventBridge{tx: tx}
}

// push enqueues ev. A closed queue means nobody will read the event, so it
// is dropped.
func (b *eventBridge) push(ev Event) {
	if err := b.tx.Send(ev); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "eventBridge.push",
			"event":    fmt.Sprintf("%T", ev),
			"error":    err.Error(),
		}).Debug("Dropping event")
	}
}

func (b *eventBridge) skip(callback string, field string, value uint32) {
	logrus.WithFields(logrus.Fields{
		"function": callback,
		"field":    field,
		"value":    value,
	}).Warn("Skipping event with unknown discriminant")
}

func (b *eventBridge) OnSelfConnectionStatus(status uint32) {
	c, ok := parseConnection(status)
	if !ok {
		b.skip("OnSelfConnectionStatus", "connection", status)
		return
	}
	b.push(&ConnectionStatusEvent{Status: c})
}

func (b *eventBridge) OnFriendRequest(publicKey []byte, message []byte) {
	var pk PublicKey
	if len(publicKey) != len(pk) {
		b.skip("OnFriendRequest", "public_key_length", uint32(len(publicKey)))
		return
	}
	copy(pk[:], publicKey)
	b.push(&FriendRequestEvent{PublicKey: pk, Message: decodeLossy(message)})
}

func (b *eventBridge) OnFriendMessage(friend uint32, kind uint32, message []byte) {
	// Unknown kinds are delivered as normal messages.
	mt, ok := parseMessageType(kind)
	if !ok {
		mt = MessageNormal
	}
	b.push(&FriendMessageEvent{Friend: friend, Kind: mt, Message: decodeLossy(message)})
}

func (b *eventBridge) OnFriendName(friend uint32, name []byte) {
	b.push(&FriendNameEvent{Friend: friend, Name: decodeLossy(name)})
}

func (b *eventBridge) OnFriendStatusMessage(friend uint32, message []byte) {
	b.push(&FriendStatusMessageEvent{Friend: friend, Message: decodeLossy(message)})
}

func (b *eventBridge) OnFriendStatus(friend uint32, status uint32) {
	s, ok := parseUserStatus(status)
	if !ok {
		b.skip("OnFriendStatus", "user_status", status)
		return
	}
	b.push(&FriendStatusEvent{Friend: friend, Status: s})
}

func (b *eventBridge) OnFriendConnectionStatus(friend uint32, status uint32) {
	c, ok := parseConnection(status)
	if !ok {
		b.skip("OnFriendConnectionStatus", "connection", status)
		return
	}
	b.push(&FriendConnectionStatusEvent{Friend: friend, Status: c})
}

func (b *eventBridge) OnFriendTyping(friend uint32, typing bool) {
	b.push(&FriendTypingEvent{Friend: friend, Typing: typing})
}

func (b *eventBridge) OnFriendReadReceipt(friend uint32, messageID uint32) {
	b.push(&FriendReadReceiptEvent{Friend: friend, MessageID: messageID})
}

func (b *eventBridge) OnFileRecvControl(friend, file uint32, control uint32) {
	c, ok := parseFileControl(control)
	if !ok {
		b.skip("OnFileRecvControl", "file_control", control)
		return
	}
	b.push(&FileControlEvent{Friend: friend, File: file, Control: c})
}

func (b *eventBridge) OnFileChunkRequest(friend, file uint32, position uint64, length uint64) {
	b.push(&FileChunkRequestEvent{Friend: friend, File: file, Position: position, Length: length})
}

// File kinds above avatar are application defined, so the kind passes
// through unchanged.
func (b *eventBridge) OnFileRecv(friend, file uint32, kind uint32, size uint64, name []byte) {
	b.push(&FileReceiveEvent{
		Friend: friend,
		File:   file,
		Kind:   FileKind(kind),
		Size:   size,
		Name:   decodeLossy(name),
	})
}

func (b *eventBridge) OnFileRecvChunk(friend, file uint32, position uint64, data []byte) {
	b.push(&FileChunkEvent{Friend: friend, File: file, Position: position, Data: bytes.Clone(data)})
}

func (b *eventBridge) OnConferenceInvite(friend uint32, kind uint32, cookie []byte) {
	ct, ok := parseConferenceType(kind)
	if !ok {
		b.skip("OnConferenceInvite", "conference_type", kind)
		return
	}
	b.push(&ConferenceInviteEvent{Friend: friend, Kind: ct, Cookie: Cookie(bytes.Clone(cookie))})
}

func (b *eventBridge) OnConferenceConnected(conference uint32) {
	b.push(&ConferenceConnectedEvent{Conference: conference})
}

func (b *eventBridge) OnConferenceMessage(conference, peer uint32, kind uint32, message []byte) {
	mt, ok := parseMessageType(kind)
	if !ok {
		mt = MessageNormal
	}
	b.push(&ConferenceMessageEvent{
		Conference: conference,
		Peer:       peer,
		Kind:       mt,
		Message:    decodeLossy(message),
	})
}

func (b *eventBridge) OnConferenceTitle(conference, peer uint32, title []byte) {
	b.push(&ConferenceTitleEvent{Conference: conference, Peer: peer, Title: decodeLossy(title)})
}

func (b *eventBridge) OnConferencePeerName(conference, peer uint32, name []byte) {
	b.push(&ConferencePeerNameEvent{Conference: conference, Peer: peer, Name: decodeLossy(name)})
}

func (b *eventBridge) OnConferencePeerListChanged(conference uint32) {
	b.push(&ConferencePeerListChangedEvent{Conference: conference})
}

func (b *eventBridge) OnFriendLossyPacket(friend uint32, data []byte) {
	b.push(&LossyPacketEvent{Friend: friend, Data: bytes.Clone(data)})
}

func (b *eventBridge) OnFriendLosslessPacket(friend uint32, data []byte) {
	b.push(&LosslessPacketEvent{Friend: friend, Data: bytes.Clone(data)})
}

func (b *eventBridge) OnCall(friend uint32, audioEnabled, videoEnabled bool) {
	b.push(&CallEvent{Friend: friend, Audio: audioEnabled, Video: videoEnabled})
}

func (b *eventBridge) OnCallState(friend uint32, state uint32) {
	b.push(&CallStateEvent{Friend: friend, State: parseCallState(state)})
}

func (b *eventBridge) OnAudioBitRate(friend uint32, bitRate uint32) {
	b.push(&AudioBitRateEvent{Friend: friend, BitRate: bitRate})
}

func (b *eventBridge) OnVideoBitRate(friend uint32, bitRate uint32) {
	b.push(&VideoBitRateEvent{Friend: friend, BitRate: bitRate})
}

func (b *eventBridge) OnAudioReceiveFrame(friend uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32) {
	b.push(&AudioFrameEvent{
		Friend:       friend,
		PCM:          slices.Clone(pcm),
		SampleCount:  sampleCount,
		Channels:     channels,
		SamplingRate: samplingRate,
	})
}

func (b *eventBridge) OnVideoReceiveFrame(friend uint32, width, height uint16, y, u, v []byte, yStride, uStride, vStride int32) {
	b.push(&VideoFrameEvent{
		Friend:  friend,
		Width:   width,
		Height:  height,
		Y:       bytes.Clone(y),
		U:       bytes.Clone(u),
		V:       bytes.Clone(v),
		YStride: yStride,
		UStride: uStride,
		VStride: vStride,
	})
}

func (b *eventBridge) OnGroupAudio(conference, peer uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32) {
	b.push(&GroupAudioEvent{
		Conference: conference,
		Peer:       peer,
		PCM:        slices.Clone(pcm),
		Samples:    samples,
		Channels:   channels,
		SampleRate: sampleRate,
	})
}

// decodeLossy converts engine bytes to a string, replacing invalid UTF-8
// with U+FFFD.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string(bytes.ToValidUTF8(b, []byte(string(utf8.RuneError))))
	}
	return string(out)
}
