package toxbind

import (
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge() (*eventBridge, *queue.Receiver[Event]) {
	tx, rx := queue.New[Event]()
	return newEventBridge(tx), rx
}

func collect(rx *queue.Receiver[Event]) []Event {
	var out []Event
	for {
		ev, ok := rx.TryRecv()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("hello"), "hello"},
		{"multibyte", []byte("héllo wörld"), "héllo wörld"},
		{"empty", nil, ""},
		{"invalid byte", []byte("a\xffb"), "a�b"},
		{"truncated sequence", []byte("ok\xc3"), "ok�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeLossy(tt.in))
		})
	}
}

func TestBridgeSkipsUnknownDiscriminants(t *testing.T) {
	b, rx := newTestBridge()

	b.OnSelfConnectionStatus(7)
	b.OnFriendStatus(0, 9)
	b.OnFriendConnectionStatus(0, 3)
	b.OnFileRecvControl(0, 1, 5)
	b.OnConferenceInvite(0, 4, []byte{1, 2})
	b.OnFriendRequest([]byte{1, 2, 3}, []byte("short key"))

	assert.Empty(t, collect(rx))
}

func TestBridgeDefaultsAndPassThrough(t *testing.T) {
	b, rx := newTestBridge()

	b.OnFriendMessage(2, 42, []byte("odd kind"))
	b.OnConferenceMessage(1, 3, 42, []byte("odd kind"))
	b.OnFileRecv(2, 65536, 77, 10, []byte("custom.bin"))
	b.OnCallState(4, 0xFFFF)

	events := collect(rx)
	require.Len(t, events, 4)

	msg := events[0].(*FriendMessageEvent)
	assert.Equal(t, MessageNormal, msg.Kind)
	assert.Equal(t, "odd kind", msg.Message)

	assert.Equal(t, MessageNormal, events[1].(*ConferenceMessageEvent).Kind)
	assert.Equal(t, FileKind(77), events[2].(*FileReceiveEvent).Kind)

	state := events[3].(*CallStateEvent).State
	assert.Equal(t, callStateMask, state)
	assert.True(t, state.Has(CallStateSendingAudio|CallStateAcceptingVideo))
}

func TestBridgeCopiesPayloads(t *testing.T) {
	b, rx := newTestBridge()

	data := []byte{200, 1, 2}
	pcm := []int16{1, -1, 2, -2}
	cookie := []byte{9, 9, 9}

	b.OnFriendLossyPacket(0, data)
	b.OnAudioReceiveFrame(0, pcm, 2, 2, 48000)
	b.OnConferenceInvite(0, interfaces.ConferenceText, cookie)

	data[1] = 0xAA
	pcm[0] = 100
	cookie[0] = 0

	events := collect(rx)
	require.Len(t, events, 3)
	assert.Equal(t, []byte{200, 1, 2}, events[0].(*LossyPacketEvent).Data)
	assert.Equal(t, []int16{1, -1, 2, -2}, events[1].(*AudioFrameEvent).PCM)
	assert.Equal(t, Cookie{9, 9, 9}, events[2].(*ConferenceInviteEvent).Cookie)
}

func TestBridgeDropsAfterClose(t *testing.T) {
	tx, rx := queue.New[Event]()
	b := newEventBridge(tx)

	b.OnFriendTyping(0, true)
	assert.Equal(t, 1, tx.Close())

	b.OnFriendTyping(0, false)
	assert.Equal(t, 0, rx.Len())
}
