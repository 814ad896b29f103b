package testing

import (
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/stretchr/testify/require"
)

type event struct {
	name string
	args []any
}

type recorder struct {
	events []event
}

func (r *recorder) add(name string, args ...any) {
	r.events = append(r.events, event{name: name, args: args})
}

func (r *recorder) named(name string) []event {
	var out []event
	for _, ev := range r.events {
		if ev.name == name {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) reset() { r.events = nil }

func (r *recorder) OnSelfConnectionStatus(status uint32) { r.add("self_connection", status) }
func (r *recorder) OnFriendRequest(pk, msg []byte)        { r.add("friend_request", pk, msg) }
func (r *recorder) OnFriendMessage(friend, kind uint32, msg []byte) {
	r.add("friend_message", friend, kind, string(msg))
}
func (r *recorder) OnFriendName(friend uint32, name []byte) { r.add("friend_name", friend, string(name)) }
func (r *recorder) OnFriendStatusMessage(friend uint32, msg []byte) {
	r.add("friend_status_message", friend, string(msg))
}
func (r *recorder) OnFriendStatus(friend, status uint32) { r.add("friend_status", friend, status) }
func (r *recorder) OnFriendConnectionStatus(friend, status uint32) {
	r.add("friend_connection", friend, status)
}
func (r *recorder) OnFriendTyping(friend uint32, typing bool) { r.add("friend_typing", friend, typing) }
func (r *recorder) OnFriendReadReceipt(friend, id uint32)    { r.add("read_receipt", friend, id) }
func (r *recorder) OnFileRecvControl(friend, file, control uint32) {
	r.add("file_control", friend, file, control)
}
func (r *recorder) OnFileChunkRequest(friend, file uint32, pos, length uint64) {
	r.add("chunk_request", friend, file, pos, length)
}
func (r *recorder) OnFileRecv(friend, file, kind uint32, size uint64, name []byte) {
	r.add("file_recv", friend, file, kind, size, string(name))
}
func (r *recorder) OnFileRecvChunk(friend, file uint32, pos uint64, data []byte) {
	r.add("file_chunk", friend, file, pos, data)
}
func (r *recorder) OnConferenceInvite(friend, kind uint32, cookie []byte) {
	r.add("conference_invite", friend, kind, cookie)
}
func (r *recorder) OnConferenceConnected(conf uint32) { r.add("conference_connected", conf) }
func (r *recorder) OnConferenceMessage(conf, peer, kind uint32, msg []byte) {
	r.add("conference_message", conf, peer, kind, string(msg))
}
func (r *recorder) OnConferenceTitle(conf, peer uint32, title []byte) {
	r.add("conference_title", conf, peer, string(title))
}
func (r *recorder) OnConferencePeerName(conf, peer uint32, name []byte) {
	r.add("conference_peer_name", conf, peer, string(name))
}
func (r *recorder) OnConferencePeerListChanged(conf uint32) { r.add("conference_peer_list", conf) }
func (r *recorder) OnFriendLossyPacket(friend uint32, data []byte) {
	r.add("lossy_packet", friend, data)
}
func (r *recorder) OnFriendLosslessPacket(friend uint32, data []byte) {
	r.add("lossless_packet", friend, data)
}

func (r *recorder) OnCall(friend uint32, audio, video bool)   { r.add("call", friend, audio, video) }
func (r *recorder) OnCallState(friend, state uint32)          { r.add("call_state", friend, state) }
func (r *recorder) OnAudioBitRate(friend, bitRate uint32)     { r.add("audio_bit_rate", friend, bitRate) }
func (r *recorder) OnVideoBitRate(friend, bitRate uint32)     { r.add("video_bit_rate", friend, bitRate) }
func (r *recorder) OnAudioReceiveFrame(friend uint32, pcm []int16, count uint64, channels uint8, rate uint32) {
	r.add("audio_frame", friend, pcm, count, channels, rate)
}
func (r *recorder) OnVideoReceiveFrame(friend uint32, w, h uint16, y, u, v []byte, ys, us, vs int32) {
	r.add("video_frame", friend, w, h, y, u, v, ys)
}

func (r *recorder) OnGroupAudio(conf, peer uint32, pcm []int16, samples uint32, channels uint8, rate uint32) {
	r.add("group_audio", conf, peer, pcm, samples, channels, rate)
}

var (
	_ interfaces.CoreCallbacks       = (*recorder)(nil)
	_ interfaces.AVCallbacks         = (*recorder)(nil)
	_ interfaces.GroupAudioCallbacks = (*recorder)(nil)
)

func testNetwork() *Network {
	return NewNetwork(&interfaces.EngineConfig{
		UseSimulation:       true,
		IterationInterval:   5,
		AVIterationInterval: 5,
	})
}

func defaultOptions() *interfaces.EngineOptions {
	return &interfaces.EngineOptions{UDPEnabled: true, IPv6Enabled: true}
}

func newEngine(t *testing.T, n *Network) *Engine {
	t.Helper()
	e, code := n.NewEngine(defaultOptions())
	require.Equal(t, interfaces.OK, code)
	t.Cleanup(e.Kill)
	return e.(*Engine)
}

// befriend connects a and b and drains both inboxes.
func befriend(t *testing.T, a, b *Engine) (aNum, bNum uint32) {
	t.Helper()
	require.Equal(t, interfaces.OK, a.Bootstrap("node.example", 33445, [32]byte{}))
	require.Equal(t, interfaces.OK, b.Bootstrap("node.example", 33445, [32]byte{}))

	aNum, code := a.FriendAdd(b.SelfAddress(), []byte("hello"))
	require.Equal(t, interfaces.OK, code)
	bNum, code = b.FriendAddNorequest(a.SelfPublicKey())
	require.Equal(t, interfaces.OK, code)

	a.Iterate(&recorder{})
	b.Iterate(&recorder{})
	return aNum, bNum
}
