package testing

import (
	"crypto/rand"
	"encoding/binary"
	"slices"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/pion/rtp"
	"github.com/sirupsen/logrus"
)

const (
	audioPayloadType = 111
	videoPayloadType = 96

	minAudioBitRate = 6
	maxAudioBitRate = 510
)

var validSamplingRates = []uint32{8000, 12000, 16000, 24000, 48000}

// AVEngine is a simulated audio/video engine. Frames travel between peers
// as marshalled RTP packets. It implements interfaces.AVEngine.
type AVEngine struct {
	core *Engine

	cb     interfaces.AVCallbacks
	calls  map[uint32]*call
	inbox  []func(cb interfaces.AVCallbacks)
	killed bool

	ssrc uint32
	seq  uint16
}

type call struct {
	incoming     bool
	answered     bool
	audioBitRate uint32
	videoBitRate uint32
	audioMuted   bool
	videoHidden  bool
	paused       bool
}

// state is the call state flags the peer observes for this side.
func (c *call) state() uint32 {
	if c.paused {
		return 0
	}
	var s uint32
	if c.audioBitRate > 0 {
		s |= interfaces.CallStateAcceptingAudio
		if !c.audioMuted {
			s |= interfaces.CallStateSendingAudio
		}
	}
	if c.videoBitRate > 0 {
		s |= interfaces.CallStateAcceptingVideo
		if !c.videoHidden {
			s |= interfaces.CallStateSendingVideo
		}
	}
	return s
}

var _ interfaces.AVEngine = (*AVEngine)(nil)

func newAVEngine(core *Engine) *AVEngine {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return &AVEngine{
		core:  core,
		calls: make(map[uint32]*call),
		ssrc:  binary.BigEndian.Uint32(b[:]),
	}
}

func (a *AVEngine) post(fn func(cb interfaces.AVCallbacks)) {
	if a.killed {
		return
	}
	a.inbox = append(a.inbox, fn)
}

func (a *AVEngine) RegisterCallbacks(cb interfaces.AVCallbacks) {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()
	a.cb = cb
}

func (a *AVEngine) Iterate() {
	a.core.net.mu.Lock()
	if a.killed {
		a.core.net.mu.Unlock()
		return
	}
	pending := a.inbox
	a.inbox = nil
	cb := a.cb
	a.core.net.mu.Unlock()

	if cb == nil {
		return
	}
	for _, fire := range pending {
		fire(cb)
	}
}

func (a *AVEngine) IterationInterval() uint32 {
	return uint32(a.core.net.config.AVIterationInterval)
}

func (a *AVEngine) Kill() {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()
	a.shutdown()
}

// shutdown ends every call. Caller holds the network lock.
func (a *AVEngine) shutdown() {
	if a.killed {
		return
	}
	for num := range a.calls {
		a.hangUp(num)
	}
	a.killed = true
	a.inbox = nil

	logrus.WithFields(logrus.Fields{
		"function":   "AVEngine.Kill",
		"public_key": shortKey(a.core.publicKey),
	}).Info("Simulated AV engine killed")
}

// peerAV returns the peer AV engine for friend num and our number there.
func (a *AVEngine) peerAV(num uint32) (*AVEngine, uint32) {
	f := a.core.friendAt(num)
	if f == nil {
		return nil, 0
	}
	peer, pn, _ := a.core.peerOf(f)
	if peer == nil || peer.av == nil || peer.av.killed {
		return nil, 0
	}
	return peer.av, pn
}

// hangUp ends the call with friend num and tells the peer.
func (a *AVEngine) hangUp(num uint32) {
	delete(a.calls, num)
	if peer, pn := a.peerAV(num); peer != nil {
		if _, ok := peer.calls[pn]; ok {
			delete(peer.calls, pn)
			peer.post(func(cb interfaces.AVCallbacks) { cb.OnCallState(pn, interfaces.CallStateFinished) })
		}
	}
}

// dropCall ends a call locally after the friend went away.
func (a *AVEngine) dropCall(num uint32) {
	if a == nil || a.killed {
		return
	}
	if _, ok := a.calls[num]; !ok {
		return
	}
	delete(a.calls, num)
	a.post(func(cb interfaces.AVCallbacks) { cb.OnCallState(num, interfaces.CallStateFinished) })
}

func audioBitRateValid(br uint32) bool {
	return br == 0 || (br >= minAudioBitRate && br <= maxAudioBitRate)
}

func (a *AVEngine) Call(num uint32, audioBitRate, videoBitRate uint32) uint32 {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()

	if a.killed {
		return interfaces.CallSync
	}
	f := a.core.friendAt(num)
	if f == nil {
		return interfaces.CallFriendNotFound
	}
	if f.connection == interfaces.ConnectionNone {
		return interfaces.CallFriendNotConnected
	}
	if _, busy := a.calls[num]; busy {
		return interfaces.CallFriendAlreadyInCall
	}
	if !audioBitRateValid(audioBitRate) {
		return interfaces.CallInvalidBitRate
	}

	a.calls[num] = &call{audioBitRate: audioBitRate, videoBitRate: videoBitRate}
	if peer, pn := a.peerAV(num); peer != nil {
		peer.calls[pn] = &call{incoming: true}
		audio, video := audioBitRate > 0, videoBitRate > 0
		peer.post(func(cb interfaces.AVCallbacks) { cb.OnCall(pn, audio, video) })
	}
	a.core.net.record("call", a.core.publicKey, f.publicKey, 0, true)
	return interfaces.OK
}

func (a *AVEngine) Answer(num uint32, audioBitRate, videoBitRate uint32) uint32 {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()

	if a.killed {
		return interfaces.AnswerSync
	}
	if a.core.friendAt(num) == nil {
		return interfaces.AnswerFriendNotFound
	}
	c := a.calls[num]
	if c == nil || !c.incoming || c.answered {
		return interfaces.AnswerFriendNotCalling
	}
	if !audioBitRateValid(audioBitRate) {
		return interfaces.AnswerInvalidBitRate
	}

	c.answered = true
	c.audioBitRate = audioBitRate
	c.videoBitRate = videoBitRate
	if peer, pn := a.peerAV(num); peer != nil {
		if pc := peer.calls[pn]; pc != nil {
			pc.answered = true
			state := c.state()
			peer.post(func(cb interfaces.AVCallbacks) { cb.OnCallState(pn, state) })
		}
	}
	return interfaces.OK
}

func (a *AVEngine) CallControl(num uint32, control uint32) uint32 {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()

	if a.killed {
		return interfaces.CallControlErrSync
	}
	if a.core.friendAt(num) == nil {
		return interfaces.CallControlErrFriendNotFound
	}
	c := a.calls[num]
	if c == nil {
		return interfaces.CallControlErrFriendNotInCall
	}
	if control == interfaces.CallControlCancel {
		a.hangUp(num)
		return interfaces.OK
	}
	if !c.answered {
		return interfaces.CallControlErrInvalidTransition
	}

	flip := func(flag *bool, want bool) bool {
		if *flag == want {
			return false
		}
		*flag = want
		return true
	}
	var ok bool
	switch control {
	case interfaces.CallControlResume:
		ok = flip(&c.paused, false)
	case interfaces.CallControlPause:
		ok = flip(&c.paused, true)
	case interfaces.CallControlMuteAudio:
		ok = flip(&c.audioMuted, true)
	case interfaces.CallControlUnmuteAudio:
		ok = flip(&c.audioMuted, false)
	case interfaces.CallControlHideVideo:
		ok = flip(&c.videoHidden, true)
	case interfaces.CallControlShowVideo:
		ok = flip(&c.videoHidden, false)
	}
	if !ok {
		return interfaces.CallControlErrInvalidTransition
	}

	if peer, pn := a.peerAV(num); peer != nil {
		state := c.state()
		peer.post(func(cb interfaces.AVCallbacks) { cb.OnCallState(pn, state) })
	}
	return interfaces.OK
}

func (a *AVEngine) setBitRate(num, bitRate uint32, audio bool) uint32 {
	a.core.net.mu.Lock()
	defer a.core.net.mu.Unlock()

	if a.killed {
		return interfaces.BitRateSetSync
	}
	if audio && !audioBitRateValid(bitRate) {
		return interfaces.BitRateSetInvalidBitRate
	}
	if a.core.friendAt(num) == nil {
		return interfaces.BitRateSetFriendNotFound
	}
	c := a.calls[num]
	if c == nil {
		return interfaces.BitRateSetFriendNotInCall
	}

	// The engine confirms every applied rate through the bit rate callback.
	if audio {
		c.audioBitRate = bitRate
		a.post(func(cb interfaces.AVCallbacks) { cb.OnAudioBitRate(num, bitRate) })
	} else {
		c.videoBitRate = bitRate
		a.post(func(cb interfaces.AVCallbacks) { cb.OnVideoBitRate(num, bitRate) })
	}
	return interfaces.OK
}

func (a *AVEngine) AudioSetBitRate(num uint32, bitRate uint32) uint32 {
	return a.setBitRate(num, bitRate, true)
}

func (a *AVEngine) VideoSetBitRate(num uint32, bitRate uint32) uint32 {
	return a.setBitRate(num, bitRate, false)
}

// activeCall resolves an answered call for frame sending.
func (a *AVEngine) activeCall(num uint32) (*call, uint32) {
	if a.killed {
		return nil, interfaces.SendFrameSync
	}
	if a.core.friendAt(num) == nil {
		return nil, interfaces.SendFrameFriendNotFound
	}
	c := a.calls[num]
	if c == nil || !c.answered {
		return nil, interfaces.SendFrameFriendNotInCall
	}
	return c, interfaces.OK
}

func (a *AVEngine) packet(payloadType uint8, timestamp uint32, payload []byte) ([]byte, error) {
	a.seq++
	p := rtp.Packet{
		Header: rtp.Header{
			Version:        2,
			Marker:         true,
			PayloadType:    payloadType,
			SequenceNumber: a.seq,
			Timestamp:      timestamp,
			SSRC:           a.ssrc,
		},
		Payload: payload,
	}
	return p.Marshal()
}

func (a *AVEngine) AudioSendFrame(num uint32, pcm []int16, sampleCount uint64, channels uint8, samplingRate uint32) uint32 {
	n := a.core.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c, code := a.activeCall(num)
	if c == nil {
		return code
	}
	if pcm == nil {
		return interfaces.SendFrameNull
	}
	if channels < 1 || channels > 2 || sampleCount == 0 ||
		!slices.Contains(validSamplingRates, samplingRate) ||
		uint64(len(pcm)) < sampleCount*uint64(channels) {
		return interfaces.SendFrameInvalid
	}
	if c.paused || c.audioMuted || c.audioBitRate == 0 {
		return interfaces.SendFramePayloadTypeDisabled
	}

	samples := pcm[:sampleCount*uint64(channels)]
	payload := make([]byte, 5, 5+2*len(samples))
	payload[0] = channels
	binary.BigEndian.PutUint32(payload[1:5], samplingRate)
	for _, s := range samples {
		payload = binary.LittleEndian.AppendUint16(payload, uint16(s))
	}
	raw, err := a.packet(audioPayloadType, uint32(a.seq)*uint32(sampleCount), payload)
	if err != nil {
		return interfaces.SendFrameRTPFailed
	}

	if peer, pn := a.peerAV(num); peer != nil {
		peer.post(func(cb interfaces.AVCallbacks) { deliverAudio(cb, pn, raw) })
		n.record("audio_frame", a.core.publicKey, peer.core.publicKey, len(raw), true)
	}
	return interfaces.OK
}

func deliverAudio(cb interfaces.AVCallbacks, num uint32, raw []byte) {
	var p rtp.Packet
	if err := p.Unmarshal(raw); err != nil || len(p.Payload) < 5 {
		return
	}
	channels := p.Payload[0]
	rate := binary.BigEndian.Uint32(p.Payload[1:5])
	body := p.Payload[5:]
	pcm := make([]int16, len(body)/2)
	for i := range pcm {
		pcm[i] = int16(binary.LittleEndian.Uint16(body[2*i:]))
	}
	cb.OnAudioReceiveFrame(num, pcm, uint64(len(pcm)/int(channels)), channels, rate)
}

func (a *AVEngine) VideoSendFrame(num uint32, width, height uint16, y, u, v []byte) uint32 {
	n := a.core.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c, code := a.activeCall(num)
	if c == nil {
		return code
	}
	if y == nil || u == nil || v == nil {
		return interfaces.SendFrameNull
	}
	luma := int(width) * int(height)
	chroma := (int(width) / 2) * (int(height) / 2)
	if luma == 0 || len(y) < luma || len(u) < chroma || len(v) < chroma {
		return interfaces.SendFrameInvalid
	}
	if c.paused || c.videoHidden || c.videoBitRate == 0 {
		return interfaces.SendFramePayloadTypeDisabled
	}

	payload := make([]byte, 4, 4+luma+2*chroma)
	binary.BigEndian.PutUint16(payload[0:2], width)
	binary.BigEndian.PutUint16(payload[2:4], height)
	payload = append(payload, y[:luma]...)
	payload = append(payload, u[:chroma]...)
	payload = append(payload, v[:chroma]...)
	raw, err := a.packet(videoPayloadType, uint32(a.seq), payload)
	if err != nil {
		return interfaces.SendFrameRTPFailed
	}

	if peer, pn := a.peerAV(num); peer != nil {
		peer.post(func(cb interfaces.AVCallbacks) { deliverVideo(cb, pn, raw) })
		n.record("video_frame", a.core.publicKey, peer.core.publicKey, len(raw), true)
	}
	return interfaces.OK
}

func deliverVideo(cb interfaces.AVCallbacks, num uint32, raw []byte) {
	var p rtp.Packet
	if err := p.Unmarshal(raw); err != nil || len(p.Payload) < 4 {
		return
	}
	width := binary.BigEndian.Uint16(p.Payload[0:2])
	height := binary.BigEndian.Uint16(p.Payload[2:4])
	luma := int(width) * int(height)
	chroma := (int(width) / 2) * (int(height) / 2)
	body := p.Payload[4:]
	if len(body) < luma+2*chroma {
		return
	}
	y := body[:luma]
	u := body[luma : luma+chroma]
	v := body[luma+chroma : luma+2*chroma]
	cb.OnVideoReceiveFrame(num, width, height, y, u, v, int32(width), int32(width/2), int32(width/2))
}

func (a *AVEngine) AddAVGroupchat(cb interfaces.GroupAudioCallbacks) (uint32, bool) {
	n := a.core.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if a.killed || a.core.killed {
		return 0, false
	}
	return n.createConference(a.core, interfaces.ConferenceAV, cb), true
}

func (a *AVEngine) JoinAVGroupchat(num uint32, cookie []byte, cb interfaces.GroupAudioCallbacks) (uint32, bool) {
	n := a.core.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if a.killed {
		return 0, false
	}
	c, _ := n.findInvite(a.core, num, cookie, interfaces.ConferenceAV)
	if c == nil {
		return 0, false
	}
	return n.joinConference(a.core, c, cb), true
}

func (a *AVEngine) GroupSendAudio(num uint32, pcm []int16, samples uint32, channels uint8, sampleRate uint32) bool {
	n := a.core.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if a.killed {
		return false
	}
	c := a.core.conferenceAt(num)
	if c == nil || c.kind != interfaces.ConferenceAV {
		return false
	}
	if channels < 1 || channels > 2 || samples == 0 ||
		!slices.Contains(validSamplingRates, sampleRate) ||
		uint64(len(pcm)) < uint64(samples)*uint64(channels) {
		return false
	}

	sender := uint32(c.peerIndex(a.core))
	frame := pcm[:uint64(samples)*uint64(channels)]
	for _, m := range c.members {
		if m.engine == a.core || m.audio == nil {
			continue
		}
		theirs := m.engine.conferenceNumber(c)
		audio := m.audio
		data := slices.Clone(frame)
		// Group audio fires from the core iteration.
		m.engine.post(func(interfaces.CoreCallbacks) {
			audio.OnGroupAudio(theirs, sender, data, samples, channels, sampleRate)
		})
		n.record("group_audio", a.core.publicKey, m.engine.publicKey, 2*len(data), true)
	}
	return true
}
