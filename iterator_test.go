package toxbind

import (
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterEmpty(t *testing.T) {
	tox := newTox(t, newNetwork())

	it := tox.Iter()
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, tox.Pending())
	assert.Empty(t, drain(tox))
}

func TestEventsKeepEngineOrder(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)

	var ids []uint32
	for _, text := range []string{"one", "two", "three"} {
		id, err := alice.SendFriendMessage(bNum, MessageNormal, text)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	var texts []string
	for _, ev := range eventsOf[*FriendMessageEvent](drain(bob)) {
		assert.Equal(t, aNum, ev.Friend)
		texts = append(texts, ev.Message)
	}
	assert.Equal(t, []string{"one", "two", "three"}, texts)

	var receipts []uint32
	for _, ev := range eventsOf[*FriendReadReceiptEvent](drain(alice)) {
		receipts = append(receipts, ev.MessageID)
	}
	assert.Equal(t, ids, receipts)
}

func TestIteratorStopsEarly(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, _ := connect(t, alice, bob)

	for range 3 {
		_, err := alice.SendFriendMessage(bNum, MessageAction, "waves")
		require.NoError(t, err)
	}

	for range bob.Events() {
		break
	}
	assert.Equal(t, 2, bob.Pending())

	it := bob.Iter()
	n := 0
	for {
		ev, ok := it.Next()
		if !ok {
			break
		}
		assert.Equal(t, MessageAction, ev.(*FriendMessageEvent).Kind)
		n++
	}
	assert.Equal(t, 2, n)
}

func TestKillDiscardsQueuedEvents(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, _ := connect(t, alice, bob)

	_, err := alice.SendFriendMessage(bNum, MessageNormal, "first")
	require.NoError(t, err)
	_, err = alice.SendFriendMessage(bNum, MessageNormal, "second")
	require.NoError(t, err)

	bob.Tick()
	assert.Equal(t, 2, bob.Pending())

	bob.Kill()
	assert.Equal(t, 0, bob.Pending())
	assert.Empty(t, drain(bob))
}

func TestInjectedEventsAreTranslated(t *testing.T) {
	network := newNetwork()
	tox := newTox(t, network)
	engine := simEngine(t, network, tox)

	engine.Inject(func(cb interfaces.CoreCallbacks) {
		cb.OnFriendStatus(0, 99)
		cb.OnFriendMessage(0, 7, []byte("caf\xe9"))
		cb.OnFriendConnectionStatus(0, interfaces.ConnectionTCP)
	})

	events := drain(tox)
	require.Len(t, events, 2)

	msg := events[0].(*FriendMessageEvent)
	assert.Equal(t, MessageNormal, msg.Kind)
	assert.Equal(t, "caf�", msg.Message)

	assert.Equal(t, &FriendConnectionStatusEvent{Friend: 0, Status: ConnectionTCP}, events[1])
}
