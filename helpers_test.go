package toxbind

import (
	"testing"

	"github.com/opd-ai/toxbind/interfaces"
	toxtest "github.com/opd-ai/toxbind/testing"
	"github.com/stretchr/testify/require"
)

func newNetwork() *toxtest.Network {
	return toxtest.NewNetwork(&interfaces.EngineConfig{
		UseSimulation:       true,
		IterationInterval:   5,
		AVIterationInterval: 5,
	})
}

func simOptions(network *toxtest.Network) *Options {
	opts := NewOptions()
	opts.Engine = network.NewEngine
	return opts
}

func newTox(t *testing.T, network *toxtest.Network) *Tox {
	t.Helper()
	tox, err := New(simOptions(network), nil)
	require.NoError(t, err)
	t.Cleanup(tox.Kill)
	return tox
}

func goOnline(t *testing.T, tox *Tox) {
	t.Helper()
	require.NoError(t, tox.Bootstrap("node.example", 33445, PublicKey{}))
}

func drain(tox *Tox) []Event {
	var events []Event
	for ev := range tox.Events() {
		events = append(events, ev)
	}
	return events
}

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

// connect makes a and b online friends and drains both queues. It returns
// b's number in a's friend list and a's number in b's.
func connect(t *testing.T, a, b *Tox) (bNum, aNum uint32) {
	t.Helper()
	goOnline(t, a)
	goOnline(t, b)

	bNum, err := a.AddFriend(b.Address(), "hello")
	require.NoError(t, err)
	aNum, err = b.AddFriendNoRequest(a.PublicKey())
	require.NoError(t, err)

	drain(a)
	drain(b)
	return bNum, aNum
}

func simEngine(t *testing.T, network *toxtest.Network, tox *Tox) *toxtest.Engine {
	t.Helper()
	e, ok := network.Engine(tox.PublicKey())
	require.True(t, ok)
	return e
}
