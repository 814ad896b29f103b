package testing

import (
	"bytes"
	"testing"

	"github.com/opd-ai/toxbind/encryptsave"
	"github.com/opd-ai/toxbind/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineOptions(t *testing.T) {
	n := testNetwork()

	tests := []struct {
		name string
		opts *interfaces.EngineOptions
		want uint32
	}{
		{"nil", nil, interfaces.NewNull},
		{"bad proxy type", &interfaces.EngineOptions{ProxyType: 9}, interfaces.NewProxyBadType},
		{"proxy without host", &interfaces.EngineOptions{ProxyType: interfaces.ProxySOCKS5, ProxyPort: 9050}, interfaces.NewProxyBadHost},
		{"proxy without port", &interfaces.EngineOptions{ProxyType: interfaces.ProxyHTTP, ProxyHost: "127.0.0.1"}, interfaces.NewProxyBadPort},
		{"short secret key", &interfaces.EngineOptions{SavedataType: interfaces.SavedataSecretKey, Savedata: []byte{1}}, interfaces.NewNull},
		{"garbage savedata", &interfaces.EngineOptions{SavedataType: interfaces.SavedataToxSave, Savedata: []byte("{")}, interfaces.NewLoadBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, code := n.NewEngine(tt.opts)
			assert.Nil(t, e)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestSecretKeySavedata(t *testing.T) {
	n := testNetwork()
	first := newEngine(t, n)
	sk := first.SelfSecretKey()
	first.Kill()

	e, code := n.NewEngine(&interfaces.EngineOptions{
		SavedataType: interfaces.SavedataSecretKey,
		Savedata:     sk[:],
	})
	require.Equal(t, interfaces.OK, code)
	defer e.Kill()
	assert.Equal(t, first.SelfPublicKey(), e.SelfPublicKey())
}

func TestAddressChecksum(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)

	addr := e.SelfAddress()
	assert.Equal(t, e.SelfPublicKey(), [32]byte(addr[:32]))

	e.SelfSetNospam(0xDEADBEEF)
	addr = e.SelfAddress()
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, addr[32:36])

	other := newEngine(t, n)
	addr[37] ^= 0xff
	_, code := other.FriendAdd(addr, []byte("hi"))
	assert.Equal(t, interfaces.FriendAddBadChecksum, code)
}

func TestBootstrap(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)

	assert.Equal(t, interfaces.BootstrapBadHost, e.Bootstrap("", 33445, [32]byte{}))
	assert.Equal(t, interfaces.BootstrapBadPort, e.Bootstrap("node", 0, [32]byte{}))
	assert.Equal(t, interfaces.ConnectionNone, e.SelfConnectionStatus())

	require.Equal(t, interfaces.OK, e.Bootstrap("node", 33445, [32]byte{}))
	assert.Equal(t, interfaces.ConnectionUDP, e.SelfConnectionStatus())

	r := &recorder{}
	e.Iterate(r)
	require.Len(t, r.events, 1)
	assert.Equal(t, event{"self_connection", []any{interfaces.ConnectionUDP}}, r.events[0])
}

func TestFriendRequestFlow(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	require.Equal(t, interfaces.OK, alice.Bootstrap("node", 1, [32]byte{}))
	require.Equal(t, interfaces.OK, bob.Bootstrap("node", 1, [32]byte{}))

	num, code := alice.FriendAdd(bob.SelfAddress(), []byte("let's chat"))
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, uint32(0), num)

	_, code = alice.FriendAdd(bob.SelfAddress(), []byte("again"))
	assert.Equal(t, interfaces.FriendAddAlreadySent, code)
	_, code = alice.FriendAdd(alice.SelfAddress(), []byte("me"))
	assert.Equal(t, interfaces.FriendAddOwnKey, code)

	r := &recorder{}
	bob.Iterate(r)
	reqs := r.named("friend_request")
	require.Len(t, reqs, 1)
	pk := alice.SelfPublicKey()
	assert.Equal(t, pk[:], reqs[0].args[0])
	assert.Equal(t, []byte("let's chat"), reqs[0].args[1])

	_, code = bob.FriendAddNorequest(pk)
	require.Equal(t, interfaces.OK, code)

	ra := &recorder{}
	alice.Iterate(ra)
	assert.Equal(t, []event{{"friend_connection", []any{uint32(0), interfaces.ConnectionUDP}}}, ra.named("friend_connection"))

	conn, code := bob.FriendConnectionStatus(0)
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, interfaces.ConnectionUDP, conn)
}

func TestMutualFriendAddSkipsRequestEvent(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)

	_, code := alice.FriendAdd(bob.SelfAddress(), []byte("hi bob"))
	require.Equal(t, interfaces.OK, code)
	_, code = bob.FriendAdd(alice.SelfAddress(), []byte("hi alice"))
	require.Equal(t, interfaces.OK, code)

	require.Equal(t, interfaces.OK, alice.Bootstrap("node", 1, [32]byte{}))
	require.Equal(t, interfaces.OK, bob.Bootstrap("node", 1, [32]byte{}))

	ra, rb := &recorder{}, &recorder{}
	alice.Iterate(ra)
	bob.Iterate(rb)
	assert.Empty(t, ra.named("friend_request"))
	assert.Empty(t, rb.named("friend_request"))

	for _, e := range []*Engine{alice, bob} {
		conn, code := e.FriendConnectionStatus(0)
		require.Equal(t, interfaces.OK, code)
		assert.Equal(t, interfaces.ConnectionUDP, conn)
	}
}

func TestFriendRequestWrongNospam(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	require.Equal(t, interfaces.OK, bob.Bootstrap("node", 1, [32]byte{}))

	addr := bob.SelfAddress()
	bob.SelfSetNospam(bob.SelfNospam() + 1)

	_, code := alice.FriendAdd(addr, []byte("hi"))
	require.Equal(t, interfaces.OK, code)
	require.Equal(t, interfaces.OK, alice.Bootstrap("node", 1, [32]byte{}))

	r := &recorder{}
	bob.Iterate(r)
	assert.Empty(t, r.named("friend_request"))

	log := n.GetDeliveryLog()
	require.NotEmpty(t, log)
	assert.False(t, log[len(log)-1].Success)
}

func TestPendingRequestDeliveredOnBootstrap(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	require.Equal(t, interfaces.OK, alice.Bootstrap("node", 1, [32]byte{}))

	_, code := alice.FriendAdd(bob.SelfAddress(), []byte("later"))
	require.Equal(t, interfaces.OK, code)

	r := &recorder{}
	bob.Iterate(r)
	assert.Empty(t, r.named("friend_request"))

	require.Equal(t, interfaces.OK, bob.Bootstrap("node", 1, [32]byte{}))
	bob.Iterate(r)
	assert.Len(t, r.named("friend_request"), 1)
}

func TestMessagesAndReceipts(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	id1, code := alice.FriendSendMessage(aNum, interfaces.MessageNormal, []byte("one"))
	require.Equal(t, interfaces.OK, code)
	id2, code := alice.FriendSendMessage(aNum, interfaces.MessageAction, []byte("two"))
	require.Equal(t, interfaces.OK, code)
	assert.NotEqual(t, id1, id2)

	_, code = alice.FriendSendMessage(aNum, interfaces.MessageNormal, nil)
	assert.Equal(t, interfaces.FriendSendMessageEmpty, code)
	_, code = alice.FriendSendMessage(aNum, interfaces.MessageNormal, bytes.Repeat([]byte("a"), 1373))
	assert.Equal(t, interfaces.FriendSendMessageTooLong, code)
	_, code = alice.FriendSendMessage(42, interfaces.MessageNormal, []byte("x"))
	assert.Equal(t, interfaces.FriendSendMessageFriendNotFound, code)

	r := &recorder{}
	bob.Iterate(r)
	assert.Equal(t, []event{
		{"friend_message", []any{bNum, interfaces.MessageNormal, "one"}},
		{"friend_message", []any{bNum, interfaces.MessageAction, "two"}},
	}, r.named("friend_message"))

	ra := &recorder{}
	alice.Iterate(ra)
	assert.Equal(t, []event{
		{"read_receipt", []any{aNum, id1}},
		{"read_receipt", []any{aNum, id2}},
	}, ra.named("read_receipt"))
}

func TestProfilePropagation(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	require.Equal(t, interfaces.OK, alice.SelfSetName([]byte("Alice")))
	aNum, bNum := befriend(t, alice, bob)

	name, code := bob.FriendName(bNum)
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, []byte("Alice"), name)

	require.Equal(t, interfaces.OK, alice.SelfSetStatusMessage([]byte("busy coding")))
	alice.SelfSetStatus(interfaces.UserStatusBusy)
	require.Equal(t, interfaces.OK, alice.SelfSetTyping(aNum, true))
	assert.Equal(t, interfaces.SetInfoTooLong, alice.SelfSetName(bytes.Repeat([]byte("n"), 129)))

	r := &recorder{}
	bob.Iterate(r)
	assert.Equal(t, []event{
		{"friend_status_message", []any{bNum, "busy coding"}},
		{"friend_status", []any{bNum, interfaces.UserStatusBusy}},
		{"friend_typing", []any{bNum, true}},
	}, r.events)

	typing, code := bob.FriendTyping(bNum)
	require.Equal(t, interfaces.OK, code)
	assert.True(t, typing)
}

func TestFriendDeleteAndKill(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, _ := befriend(t, alice, bob)

	bob.Kill()

	r := &recorder{}
	alice.Iterate(r)
	assert.Equal(t, []event{{"friend_connection", []any{aNum, interfaces.ConnectionNone}}}, r.events)

	last, code := alice.FriendLastOnline(aNum)
	require.Equal(t, interfaces.OK, code)
	assert.NotZero(t, last)

	require.Equal(t, interfaces.OK, alice.FriendDelete(aNum))
	assert.False(t, alice.FriendExists(aNum))
	assert.Equal(t, interfaces.FriendDeleteFriendNotFound, alice.FriendDelete(aNum))
	assert.Empty(t, alice.FriendList())
}

func TestFriendNumbersReuseSlots(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)

	a, _ := e.FriendAddNorequest([32]byte{1})
	b, _ := e.FriendAddNorequest([32]byte{2})
	require.Equal(t, interfaces.OK, e.FriendDelete(a))
	c, _ := e.FriendAddNorequest([32]byte{3})

	assert.Equal(t, a, c)
	assert.Equal(t, []uint32{a, b}, e.FriendList())

	num, code := e.FriendByPublicKey([32]byte{2})
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, b, num)
	_, code = e.FriendByPublicKey([32]byte{9})
	assert.Equal(t, interfaces.FriendByPublicKeyNotFound, code)
}

func TestCustomPackets(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, bNum := befriend(t, alice, bob)

	assert.Equal(t, interfaces.FriendCustomPacketInvalid, alice.FriendSendLossyPacket(aNum, []byte{160, 1}))
	assert.Equal(t, interfaces.FriendCustomPacketInvalid, alice.FriendSendLosslessPacket(aNum, []byte{200, 1}))
	assert.Equal(t, interfaces.FriendCustomPacketEmpty, alice.FriendSendLossyPacket(aNum, nil))
	assert.Equal(t, interfaces.FriendCustomPacketFriendNotFound, alice.FriendSendLossyPacket(7, []byte{200}))

	require.Equal(t, interfaces.OK, alice.FriendSendLossyPacket(aNum, []byte{200, 1, 2}))
	require.Equal(t, interfaces.OK, alice.FriendSendLosslessPacket(aNum, []byte{160, 3}))

	r := &recorder{}
	bob.Iterate(r)
	assert.Equal(t, []event{
		{"lossy_packet", []any{bNum, []byte{200, 1, 2}}},
		{"lossless_packet", []any{bNum, []byte{160, 3}}},
	}, r.events)
}

func TestSavedataRoundTrip(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	require.Equal(t, interfaces.OK, alice.SelfSetName([]byte("Alice")))
	befriend(t, alice, bob)

	data := alice.Savedata()
	alice.Kill()

	e, code := n.NewEngine(&interfaces.EngineOptions{SavedataType: interfaces.SavedataToxSave, Savedata: data})
	require.Equal(t, interfaces.OK, code)
	defer e.Kill()

	assert.Equal(t, alice.SelfAddress(), e.SelfAddress())
	assert.Equal(t, []byte("Alice"), e.SelfName())
	num, code := e.FriendByPublicKey(bob.SelfPublicKey())
	require.Equal(t, interfaces.OK, code)
	assert.Equal(t, uint32(0), num)
}

func TestEncryptedSavedataRejected(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)

	data, err := encryptsave.PassEncrypt([]byte("pw"), e.Savedata())
	require.NoError(t, err)

	_, code := n.NewEngine(&interfaces.EngineOptions{SavedataType: interfaces.SavedataToxSave, Savedata: data})
	assert.Equal(t, interfaces.NewLoadEncrypted, code)
}

func TestInject(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)

	e.Inject(func(cb interfaces.CoreCallbacks) { cb.OnFriendStatus(3, 99) })
	e.Inject(func(cb interfaces.CoreCallbacks) { cb.OnFriendName(3, []byte{0xff}) })
	assert.Equal(t, 2, e.Pending())

	r := &recorder{}
	e.Iterate(r)
	assert.Equal(t, []event{
		{"friend_status", []any{uint32(3), uint32(99)}},
		{"friend_name", []any{uint32(3), "\xff"}},
	}, r.events)
	assert.Zero(t, e.Pending())
	assert.Equal(t, uint64(1), e.Iterations())
}

func TestKilledEngineIgnoresIterate(t *testing.T) {
	n := testNetwork()
	e := newEngine(t, n)
	e.Inject(func(cb interfaces.CoreCallbacks) { cb.OnSelfConnectionStatus(1) })
	e.Kill()

	r := &recorder{}
	e.Iterate(r)
	assert.Empty(t, r.events)
	_, ok := n.Engine(e.SelfPublicKey())
	assert.False(t, ok)
}

func TestNetworkStats(t *testing.T) {
	n := testNetwork()
	alice, bob := newEngine(t, n), newEngine(t, n)
	aNum, _ := befriend(t, alice, bob)
	n.ClearDeliveryLog()

	_, code := alice.FriendSendMessage(aNum, interfaces.MessageNormal, []byte("hey"))
	require.Equal(t, interfaces.OK, code)

	stats := n.GetStats()
	assert.Equal(t, 2, stats.Engines)
	assert.Equal(t, 1, stats.TotalDeliveries)
	assert.Equal(t, 1, stats.SuccessfulDeliveries)
	assert.Equal(t, 5, stats.IterationInterval)
	assert.Equal(t, uint32(5), alice.IterationInterval())
}
