package testing

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"slices"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/sirupsen/logrus"
)

// Engine is a simulated core engine. It implements interfaces.Engine.
type Engine struct {
	net *Network
	udp bool

	publicKey     [32]byte
	secretKey     [32]byte
	nospam        uint32
	name          []byte
	statusMessage []byte
	status        uint32

	online bool
	killed bool

	friends     []*friend
	conferences []*conference

	inbox      []func(cb interfaces.CoreCallbacks)
	av         *AVEngine
	iterations uint64
}

type friend struct {
	publicKey     [32]byte
	name          []byte
	statusMessage []byte
	status        uint32
	connection    uint32
	typing        bool
	lastOnline    uint64

	request     *friendRequest
	nextMessage uint32

	sending   map[uint32]*transfer
	receiving map[uint32]*transfer
}

type friendRequest struct {
	nospam  uint32
	message []byte
}

var _ interfaces.Engine = (*Engine)(nil)

func (e *Engine) generateKeys() error {
	var sk [32]byte
	if _, err := rand.Read(sk[:]); err != nil {
		return err
	}
	e.nospam = randomNospam()
	return e.setSecretKey(sk)
}

func (e *Engine) setSecretKey(sk [32]byte) error {
	pk, err := publicKeyOf(sk)
	if err != nil {
		return err
	}
	e.secretKey = sk
	e.publicKey = pk
	return nil
}

// post queues fn for the next Iterate. Caller holds the network lock.
func (e *Engine) post(fn func(cb interfaces.CoreCallbacks)) {
	if e.killed {
		return
	}
	e.inbox = append(e.inbox, fn)
}

// Inject queues a raw callback invocation for the next Iterate. Tests use
// it to feed the binding values no well-behaved engine would produce.
func (e *Engine) Inject(fn func(cb interfaces.CoreCallbacks)) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	e.post(fn)
}

// Pending reports how many callback invocations are queued.
func (e *Engine) Pending() int {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return len(e.inbox)
}

// Iterations reports how many times Iterate ran.
func (e *Engine) Iterations() uint64 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.iterations
}

func (e *Engine) Iterate(cb interfaces.CoreCallbacks) {
	e.net.mu.Lock()
	if e.killed {
		e.net.mu.Unlock()
		return
	}
	e.iterations++
	e.requestChunks()
	pending := e.inbox
	e.inbox = nil
	e.net.mu.Unlock()

	for _, fire := range pending {
		fire(cb)
	}
}

func (e *Engine) IterationInterval() uint32 {
	return uint32(e.net.config.IterationInterval)
}

func (e *Engine) Kill() {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if e.killed {
		return
	}
	if e.av != nil {
		e.av.shutdown()
	}
	for _, c := range e.conferences {
		if c != nil {
			n.leaveConference(e, c)
		}
	}
	e.online = false
	n.refreshLinks(e)
	e.killed = true
	e.inbox = nil
	if n.engines[e.publicKey] == e {
		delete(n.engines, e.publicKey)
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Engine.Kill",
		"public_key": shortKey(e.publicKey),
	}).Info("Simulated engine killed")
}

func (e *Engine) Bootstrap(host string, port uint16, publicKey [32]byte) uint32 {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")
	return e.connect("bootstrap", host, port)
}

func (e *Engine) AddTCPRelay(host string, port uint16, publicKey [32]byte) uint32 {
	logrus.Warn("SIMULATION FUNCTION - NOT A REAL OPERATION")
	return e.connect("tcp_relay", host, port)
}

func (e *Engine) connect(kind, host string, port uint16) uint32 {
	if host == "" || len(host) > limits.MaxHostnameLength {
		return interfaces.BootstrapBadHost
	}
	if port == 0 {
		return interfaces.BootstrapBadPort
	}

	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	n.record(kind, e.publicKey, [32]byte{}, 0, true)
	if e.online {
		return interfaces.OK
	}
	e.online = true
	status := e.selfConnection()
	e.post(func(cb interfaces.CoreCallbacks) {
		cb.OnSelfConnectionStatus(status)
	})
	n.refreshLinks(e)
	n.deliverRequests()
	return interfaces.OK
}

func (e *Engine) selfConnection() uint32 {
	switch {
	case !e.online:
		return interfaces.ConnectionNone
	case e.udp:
		return interfaces.ConnectionUDP
	default:
		return interfaces.ConnectionTCP
	}
}

func (e *Engine) SelfConnectionStatus() uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.selfConnection()
}

func (e *Engine) SelfAddress() [38]byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return makeAddress(e.publicKey, e.nospam)
}

func makeAddress(pk [32]byte, nospam uint32) [38]byte {
	var addr [38]byte
	copy(addr[:32], pk[:])
	binary.BigEndian.PutUint32(addr[32:36], nospam)
	addr[36], addr[37] = checksum(addr[:36])
	return addr
}

func checksum(b []byte) (byte, byte) {
	var sum [2]byte
	for i, c := range b {
		sum[i%2] ^= c
	}
	return sum[0], sum[1]
}

func (e *Engine) SelfNospam() uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.nospam
}

func (e *Engine) SelfSetNospam(nospam uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	e.nospam = nospam
}

func (e *Engine) SelfPublicKey() [32]byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.publicKey
}

func (e *Engine) SelfSecretKey() [32]byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.secretKey
}

func (e *Engine) SelfSetName(name []byte) uint32 {
	if !limits.FitsField(name, limits.MaxNameLength) {
		return interfaces.SetInfoTooLong
	}
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	e.name = bytes.Clone(name)
	e.eachPeer(func(peer *Engine, num uint32, f *friend) {
		f.name = bytes.Clone(name)
		v := bytes.Clone(name)
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendName(num, v) })
	})
	e.announceName()
	return interfaces.OK
}

func (e *Engine) SelfName() []byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return bytes.Clone(e.name)
}

func (e *Engine) SelfSetStatusMessage(message []byte) uint32 {
	if !limits.FitsField(message, limits.MaxStatusMessageLength) {
		return interfaces.SetInfoTooLong
	}
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	e.statusMessage = bytes.Clone(message)
	e.eachPeer(func(peer *Engine, num uint32, f *friend) {
		f.statusMessage = bytes.Clone(message)
		v := bytes.Clone(message)
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendStatusMessage(num, v) })
	})
	return interfaces.OK
}

func (e *Engine) SelfStatusMessage() []byte {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return bytes.Clone(e.statusMessage)
}

func (e *Engine) SelfSetStatus(status uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	e.status = status
	e.eachPeer(func(peer *Engine, num uint32, f *friend) {
		f.status = status
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendStatus(num, status) })
	})
}

func (e *Engine) SelfStatus() uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.status
}

// eachPeer calls fn for every connected friend with the peer engine, our
// number in its friend list and its record of us. Caller holds the network
// lock.
func (e *Engine) eachPeer(fn func(peer *Engine, num uint32, f *friend)) {
	for _, f := range e.friends {
		if f == nil || f.connection == interfaces.ConnectionNone {
			continue
		}
		peer := e.net.reachable(f.publicKey)
		if peer == nil {
			continue
		}
		if num, back := peer.friendByKey(e.publicKey); back != nil {
			fn(peer, num, back)
		}
	}
}

// announceTo pushes our profile to peer, which knows us as friend num.
func (e *Engine) announceTo(peer *Engine, num uint32, f *friend) {
	f.name = bytes.Clone(e.name)
	f.statusMessage = bytes.Clone(e.statusMessage)
	f.status = e.status

	if len(e.name) > 0 {
		v := bytes.Clone(e.name)
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendName(num, v) })
	}
	if len(e.statusMessage) > 0 {
		v := bytes.Clone(e.statusMessage)
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendStatusMessage(num, v) })
	}
	if e.status != interfaces.UserStatusNone {
		status := e.status
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendStatus(num, status) })
	}
}

func (e *Engine) setFriendConnection(num uint32, f *friend, conn uint32) {
	if f.connection == conn {
		return
	}
	f.connection = conn
	f.lastOnline = uint64(e.net.now().Unix())
	if conn == interfaces.ConnectionNone {
		f.typing = false
		f.sending = nil
		f.receiving = nil
		if e.av != nil {
			e.av.dropCall(num)
		}
	}
	e.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendConnectionStatus(num, conn) })
}

func (e *Engine) friendByKey(pk [32]byte) (uint32, *friend) {
	for i, f := range e.friends {
		if f != nil && f.publicKey == pk {
			return uint32(i), f
		}
	}
	return 0, nil
}

func (e *Engine) friendAt(num uint32) *friend {
	if int64(num) >= int64(len(e.friends)) {
		return nil
	}
	return e.friends[num]
}

func (e *Engine) addFriend(f *friend) uint32 {
	for i, slot := range e.friends {
		if slot == nil {
			e.friends[i] = f
			return uint32(i)
		}
	}
	e.friends = append(e.friends, f)
	return uint32(len(e.friends) - 1)
}

func (e *Engine) friendList() []uint32 {
	list := make([]uint32, 0, len(e.friends))
	for i, f := range e.friends {
		if f != nil {
			list = append(list, uint32(i))
		}
	}
	return list
}

// peerOf returns the connected engine behind friend num and our number in
// its friend list.
func (e *Engine) peerOf(f *friend) (*Engine, uint32, *friend) {
	if f.connection == interfaces.ConnectionNone {
		return nil, 0, nil
	}
	peer := e.net.reachable(f.publicKey)
	if peer == nil {
		return nil, 0, nil
	}
	num, back := peer.friendByKey(e.publicKey)
	if back == nil {
		return nil, 0, nil
	}
	return peer, num, back
}

func (e *Engine) FriendAdd(address [38]byte, message []byte) (uint32, uint32) {
	if a, b := checksum(address[:36]); a != address[36] || b != address[37] {
		return 0, interfaces.FriendAddBadChecksum
	}
	if len(message) == 0 {
		return 0, interfaces.FriendAddNoMessage
	}
	if len(message) > limits.MaxFriendRequestLength {
		return 0, interfaces.FriendAddTooLong
	}

	var pk [32]byte
	copy(pk[:], address[:32])
	nospam := binary.BigEndian.Uint32(address[32:36])

	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if pk == e.publicKey {
		return 0, interfaces.FriendAddOwnKey
	}
	if _, f := e.friendByKey(pk); f != nil {
		if f.request != nil && f.request.nospam != nospam {
			f.request.nospam = nospam
			return 0, interfaces.FriendAddSetNewNospam
		}
		return 0, interfaces.FriendAddAlreadySent
	}

	num := e.addFriend(&friend{
		publicKey: pk,
		request:   &friendRequest{nospam: nospam, message: bytes.Clone(message)},
	})
	if e.online {
		n.deliverRequests()
		n.refreshLinks(e)
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Engine.FriendAdd",
		"friend_id":  num,
		"public_key": shortKey(pk),
	}).Debug("Friend request queued")
	return num, interfaces.OK
}

func (e *Engine) FriendAddNorequest(publicKey [32]byte) (uint32, uint32) {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	if publicKey == e.publicKey {
		return 0, interfaces.FriendAddOwnKey
	}
	if _, f := e.friendByKey(publicKey); f != nil {
		return 0, interfaces.FriendAddAlreadySent
	}
	num := e.addFriend(&friend{publicKey: publicKey})
	n.refreshLinks(e)
	return num, interfaces.OK
}

func (e *Engine) FriendDelete(num uint32) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.FriendDeleteFriendNotFound
	}
	if e.av != nil {
		e.av.dropCall(num)
	}
	e.friends[num] = nil
	if peer := n.reachable(f.publicKey); peer != nil {
		if pn, pf := peer.friendByKey(e.publicKey); pf != nil {
			peer.setFriendConnection(pn, pf, interfaces.ConnectionNone)
		}
	}
	return interfaces.OK
}

func (e *Engine) FriendByPublicKey(publicKey [32]byte) (uint32, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	num, f := e.friendByKey(publicKey)
	if f == nil {
		return 0, interfaces.FriendByPublicKeyNotFound
	}
	return num, interfaces.OK
}

func (e *Engine) FriendExists(num uint32) bool {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.friendAt(num) != nil
}

func (e *Engine) FriendList() []uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()
	return e.friendList()
}

func (e *Engine) FriendPublicKey(num uint32) ([32]byte, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return [32]byte{}, interfaces.FriendGetFriendNotFound
	}
	return f.publicKey, interfaces.OK
}

func (e *Engine) FriendLastOnline(num uint32) (uint64, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return 0, interfaces.FriendGetFriendNotFound
	}
	return f.lastOnline, interfaces.OK
}

// queryFriend runs fn on friend num under the network lock.
func queryFriend[T any](e *Engine, num uint32, fn func(f *friend) T) (T, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		var zero T
		return zero, interfaces.FriendQueryFriendNotFound
	}
	return fn(f), interfaces.OK
}

func (e *Engine) FriendName(num uint32) ([]byte, uint32) {
	return queryFriend(e, num, func(f *friend) []byte { return bytes.Clone(f.name) })
}

func (e *Engine) FriendStatusMessage(num uint32) ([]byte, uint32) {
	return queryFriend(e, num, func(f *friend) []byte { return bytes.Clone(f.statusMessage) })
}

func (e *Engine) FriendStatus(num uint32) (uint32, uint32) {
	return queryFriend(e, num, func(f *friend) uint32 { return f.status })
}

func (e *Engine) FriendConnectionStatus(num uint32) (uint32, uint32) {
	return queryFriend(e, num, func(f *friend) uint32 { return f.connection })
}

func (e *Engine) FriendTyping(num uint32) (bool, uint32) {
	return queryFriend(e, num, func(f *friend) bool { return f.typing })
}

func (e *Engine) SelfSetTyping(num uint32, typing bool) uint32 {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.SetTypingFriendNotFound
	}
	if peer, pn, back := e.peerOf(f); peer != nil && back.typing != typing {
		back.typing = typing
		peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendTyping(pn, typing) })
	}
	return interfaces.OK
}

func (e *Engine) FriendSendMessage(num uint32, kind uint32, message []byte) (uint32, uint32) {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return 0, interfaces.FriendSendMessageFriendNotFound
	}
	peer, pn, _ := e.peerOf(f)
	if peer == nil {
		return 0, interfaces.FriendSendMessageFriendNotConnected
	}
	if len(message) == 0 {
		return 0, interfaces.FriendSendMessageEmpty
	}
	if len(message) > limits.MaxMessageLength {
		return 0, interfaces.FriendSendMessageTooLong
	}

	f.nextMessage++
	id := f.nextMessage
	msg := bytes.Clone(message)
	peer.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendMessage(pn, kind, msg) })
	e.post(func(cb interfaces.CoreCallbacks) { cb.OnFriendReadReceipt(num, id) })
	n.record("message", e.publicKey, peer.publicKey, len(message), true)
	return id, interfaces.OK
}

// Custom packet id ranges accepted by the native library.
const (
	lossyFirst    = 200
	lossyLast     = 254
	losslessFirst = 160
	losslessLast  = 191
)

func (e *Engine) FriendSendLossyPacket(num uint32, data []byte) uint32 {
	return e.sendCustom(num, data, lossyFirst, lossyLast, "lossy_packet",
		func(cb interfaces.CoreCallbacks, friend uint32, d []byte) { cb.OnFriendLossyPacket(friend, d) })
}

func (e *Engine) FriendSendLosslessPacket(num uint32, data []byte) uint32 {
	return e.sendCustom(num, data, losslessFirst, losslessLast, "lossless_packet",
		func(cb interfaces.CoreCallbacks, friend uint32, d []byte) { cb.OnFriendLosslessPacket(friend, d) })
}

func (e *Engine) sendCustom(num uint32, data []byte, first, last byte, kind string, fire func(interfaces.CoreCallbacks, uint32, []byte)) uint32 {
	n := e.net
	n.mu.Lock()
	defer n.mu.Unlock()

	f := e.friendAt(num)
	if f == nil {
		return interfaces.FriendCustomPacketFriendNotFound
	}
	if len(data) == 0 {
		return interfaces.FriendCustomPacketEmpty
	}
	if data[0] < first || data[0] > last {
		return interfaces.FriendCustomPacketInvalid
	}
	if len(data) > limits.MaxCustomPacketSize {
		return interfaces.FriendCustomPacketTooLong
	}
	peer, pn, _ := e.peerOf(f)
	if peer == nil {
		return interfaces.FriendCustomPacketFriendNotConnected
	}

	d := slices.Clone(data)
	peer.post(func(cb interfaces.CoreCallbacks) { fire(cb, pn, d) })
	n.record(kind, e.publicKey, peer.publicKey, len(data), true)
	return interfaces.OK
}

func (e *Engine) NewAV() (interfaces.AVEngine, uint32) {
	e.net.mu.Lock()
	defer e.net.mu.Unlock()

	if e.killed {
		return nil, interfaces.AVNewNull
	}
	if e.av != nil && !e.av.killed {
		return nil, interfaces.AVNewMultiple
	}
	e.av = newAVEngine(e)
	return e.av, interfaces.OK
}
