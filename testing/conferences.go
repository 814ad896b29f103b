package testing

import (
	"bytes"
	"crypto/rand"
	"slices"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/sirupsen/logrus"
)

// cookieSize is the invite cookie length: conference id plus kind.
const cookieSize = limits.ConferenceIDSize + 1

// conference is shared by every member engine. Peer numbers are indexes
// into members and shift when a member leaves.
type conference struct {
	id      [32]byte
	kind    uint32
	title   []byte
	members []*member
}

type member struct {
	engine *Engine
	audio  interfaces.GroupAudioCallbacks
}

func (c *conference) cookie() []byte {
	cookie := make([]byte, 0, cookieSize)
	cookie = append(cookie, c.id[:]...)
	return append(cookie, byte(c.kind))
}

func (c *conference) peerIndex(e *Engine) int {
	return slices.IndexFunc(c.members, func(m *member) bool { return m.engine == e })
}

func (e *Engine) conferenceAt(num uint32) *conference {
	if int64(num) >= int64(len(e.conferences)) {
		return nil
	}
	return e.conferences[num]
}

func (e *Engine) conferenceNumber(c *conference) uint32 {
	return uint32(slices.Index(e.conferences, c))
}

func (e *Engine) addConference(c *conference) uint32 {
	for i, slot := range e.conferences {
		if slot == nil {
			e.conferences[i] = c
			return uint32(i)
		}
	}
	e.conferences = append(e.conferences, c)
	return uint32(len(e.conferences) - 1)
}

// createConference makes a new conference with e as its only member.
// Caller holds n.mu.
func (n *Network) createConference(e *Engine, kind uint32, audio interfaces.GroupAudioCallbacks) uint32 {
	c := &conference{kind: kind}
	for {
		_, _ = rand.Read(c.id[:])
		if _, taken := n.conferences[c.id]; !taken {
			break
		}
	}
	n.conferences[c.id] = c
	c.members = append(c.members, &member{engine: e, audio: audio})
	num := e.addConference(c)

	logrus.WithFields(logrus.Fields{
		"function":      "Network.createConference",
		"conference_id": shortKey(c.id),
		"kind":          kind,
	}).Debug("Conference created")
	return num
}

// joinConference adds e to c and announces it to the other members.
// Caller holds n.mu.
func (n *Network) joinConference(e *Engine, c *conference, audio interfaces.GroupAudioCallbacks) uint32 {
	c.members = append(c.members, &member{engine: e, audio: audio})
	num := e.addConference(c)
	joined := uint32(len(c.members) - 1)

	e.post(func(cb interfaces.CoreCallbacks) { cb.OnConferenceConnected(num) })
	for i, m := range c.members {
		other := m.engine
		theirs := other.conferenceNumber(c)
		other.post(func(cb interfaces.CoreCallbacks) { cb.OnConferencePeerListChanged(theirs) })
		if other == e {
			continue
		}
		if len(other.name) > 0 {
			peer := uint32(i)
			name := bytes.Clone(other.name)
			e.post(func(cb interfaces.CoreCallbacks) { cb.OnConferencePeerName(num, peer, name) })
		}
		if len(e.name) > 0 {
			name := bytes.Clone(e.name)
			other.post(func(cb interfaces.CoreCallbacks) { cb.OnConferencePeerName(theirs, joined, name) })
		}
	}
	return num
}

// leaveConference removes e from c. An empty conference disappears.
// Caller holds n.mu.
func (n *Network) leaveConference(e *Engine, c *conference) {
	if idx := c.peerIndex(e); idx >= 0 {
		c.members = slices.Delete(c.members, idx, idx+1)
	}
	if num := slices.Index(e.conferences, c); num >= 0 {
		e.conferences[num] = nil
	}
	if len(c.members) == 0 {
		delete(n.conferences, c.id)
		return
	}
	for _, m := range c.members {
		theirs := m.engine.conferenceNumber(c)
		m.engine.post(func(cb interfaces.CoreCallbacks) { cb.OnConferencePeerListChanged(theirs) })
	}
}

// findInvite resolves an invite cookie. Caller holds n.mu.
func (n *Network) findInvite(e *Engine, friendNum uint32, cookie []byte, kind uint32) (*conference, uint32) {
	f := e.friendAt(friendNum)
	if f == nil {
		return nil, interfaces.ConferenceJoinFriendNotFound
	}
	if len(cookie) != cookieSize {
		return nil, interfaces.ConferenceJoinInvalidLength
	}
	if uint32(cookie[cookieSize-1]) != kind {
		return nil, interfaces.ConferenceJoinWrongType
	}
	if peer, _, _ := e.peerOf(f); peer == nil {
		return nil, interfaces.ConferenceJoinFailSend
	}
	c := n.conferences[[32]byte(cookie[:limits.ConferenceIDSize])]
	if c == nil {
		return nil, interfaces.ConferenceJoinFailSend
	}
	if c.peerIndex(e) >= 0 {
		return nil, interfaces.ConferenceJoinDuplicate
	}
	return c, interfaces.OK
}

func (e *Engine) ConferenceNew() (uint32, uint32) {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if e.killed {
		return 0, interfaces.ConferenceNewInit
	}
	return n.createConference(e, interfaces.ConferenceText, nil), interfaces.OK
}

func (e *Engine) ConferenceDelete(num uint32) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return interfaces.ConferenceDeleteConferenceNotFound
	}
	n.leaveConference(e, c)
	return interfaces.OK
}

// peerAt resolves conference num and peer. Caller holds n.mu.
func (e *Engine) peerAt(num, peer uint32) (*member, uint32) {
	c := e.conferenceAt(num)
	if c == nil {
		return nil, interfaces.ConferencePeerQueryConferenceNotFound
	}
	if int64(peer) >= int64(len(c.members)) {
		return nil, interfaces.ConferencePeerQueryPeerNotFound
	}
	return c.members[peer], interfaces.OK
}

func (e *Engine) ConferencePeerCount(num uint32) (uint32, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return 0, interfaces.ConferencePeerQueryConferenceNotFound
	}
	return uint32(len(c.members)), interfaces.OK
}

func (e *Engine) ConferencePeerName(num, peer uint32) ([]byte, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	m, code := e.peerAt(num, peer)
	if m == nil {
		return nil, code
	}
	return bytes.Clone(m.engine.name), interfaces.OK
}

func (e *Engine) ConferencePeerPublicKey(num, peer uint32) ([32]byte, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	m, code := e.peerAt(num, peer)
	if m == nil {
		return [32]byte{}, code
	}
	return m.engine.publicKey, interfaces.OK
}

func (e *Engine) ConferencePeerNumberIsOurs(num, peer uint32) (bool, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	m, code := e.peerAt(num, peer)
	if m == nil {
		return false, code
	}
	return m.engine == e, interfaces.OK
}

func (e *Engine) ConferenceInvite(friendNum, num uint32) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return interfaces.ConferenceInviteConferenceNotFound
	}
	f := e.friendAt(friendNum)
	if f == nil {
		return interfaces.ConferenceInviteFailSend
	}
	peer, pn, _ := e.peerOf(f)
	if peer == nil {
		return interfaces.ConferenceInviteFailSend
	}

	kind := c.kind
	cookie := c.cookie()
	peer.post(func(cb interfaces.CoreCallbacks) { cb.OnConferenceInvite(pn, kind, cookie) })
	n.record("conference_invite", e.publicKey, peer.publicKey, len(cookie), true)
	return interfaces.OK
}

func (e *Engine) ConferenceJoin(friendNum uint32, cookie []byte) (uint32, uint32) {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c, code := n.findInvite(e, friendNum, cookie, interfaces.ConferenceText)
	if c == nil {
		return 0, code
	}
	return n.joinConference(e, c, nil), interfaces.OK
}

func (e *Engine) ConferenceSendMessage(num uint32, kind uint32, message []byte) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return interfaces.ConferenceSendMessageConferenceNotFound
	}
	if len(message) > limits.MaxMessageLength {
		return interfaces.ConferenceSendMessageTooLong
	}
	sender := uint32(c.peerIndex(e))

	// Conferences echo messages back to their sender.
	for _, m := range c.members {
		theirs := m.engine.conferenceNumber(c)
		msg := bytes.Clone(message)
		m.engine.post(func(cb interfaces.CoreCallbacks) { cb.OnConferenceMessage(theirs, sender, kind, msg) })
		n.record("conference_message", e.publicKey, m.engine.publicKey, len(message), true)
	}
	return interfaces.OK
}

func (e *Engine) ConferenceTitle(num uint32) ([]byte, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return nil, interfaces.ConferenceTitleConferenceNotFound
	}
	return bytes.Clone(c.title), interfaces.OK
}

func (e *Engine) ConferenceSetTitle(num uint32, title []byte) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return interfaces.ConferenceTitleConferenceNotFound
	}
	if len(title) == 0 || len(title) > limits.MaxNameLength {
		return interfaces.ConferenceTitleInvalidLength
	}
	c.title = bytes.Clone(title)
	setter := uint32(c.peerIndex(e))
	for _, m := range c.members {
		if m.engine == e {
			continue
		}
		theirs := m.engine.conferenceNumber(c)
		v := bytes.Clone(title)
		m.engine.post(func(cb interfaces.CoreCallbacks) { cb.OnConferenceTitle(theirs, setter, v) })
	}
	return interfaces.OK
}

func (e *Engine) ConferenceChatlist() []uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	list := make([]uint32, 0, len(e.conferences))
	for i, c := range e.conferences {
		if c != nil {
			list = append(list, uint32(i))
		}
	}
	return list
}

func (e *Engine) ConferenceType(num uint32) (uint32, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return 0, interfaces.ConferenceGetTypeConferenceNotFound
	}
	return c.kind, interfaces.OK
}

func (e *Engine) ConferenceID(num uint32) ([32]byte, bool) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	c := e.conferenceAt(num)
	if c == nil {
		return [32]byte{}, false
	}
	return c.id, true
}

func (e *Engine) ConferenceByID(id [32]byte) (uint32, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	for i, c := range e.conferences {
		if c != nil && c.id == id {
			return uint32(i), interfaces.OK
		}
	}
	return 0, interfaces.ConferenceByIDNotFound
}

// announceName tells every conference e is in about a new name. Caller
// holds n.mu.
func (e *Engine) announceName() {
	for _, c := range e.conferences {
		if c == nil {
			continue
		}
		peer := uint32(c.peerIndex(e))
		for _, m := range c.members {
			if m.engine == e {
				continue
			}
			theirs := m.engine.conferenceNumber(c)
			name := bytes.Clone(e.name)
			m.engine.post(func(cb interfaces.CoreCallbacks) { cb.OnConferencePeerName(theirs, peer, name) })
		}
	}
}
