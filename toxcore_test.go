package toxbind

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/opd-ai/toxbind/encryptsave"
	"github.com/opd-ai/toxbind/limits"
	"github.com/opd-ai/toxbind/real"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndKill(t *testing.T) {
	tox := newTox(t, newNetwork())

	assert.True(t, tox.IsAlive())
	assert.Equal(t, 5*time.Millisecond, tox.IterationInterval())
	assert.True(t, tox.Address().Valid())
	assert.Equal(t, tox.PublicKey(), tox.Address().PublicKey())
	assert.Equal(t, ConnectionNone, tox.SelfConnectionStatus())

	tox.Kill()
	tox.Kill()

	assert.False(t, tox.IsAlive())
	assert.Equal(t, defaultIterationInterval, tox.IterationInterval())
	assert.Nil(t, tox.Save())
	assert.ErrorIs(t, tox.SetName("late"), ErrToxClosed)
	_, err := tox.AddFriendNoRequest(PublicKey{1})
	assert.ErrorIs(t, err, ErrToxClosed)
	_, err = tox.SendFriendMessage(0, MessageNormal, "hi")
	assert.ErrorIs(t, err, ErrToxClosed)
	assert.Empty(t, tox.FriendList())

	tox.Tick()
	_, ok := tox.Iter().Next()
	assert.False(t, ok)
}

func TestNewWithoutBackend(t *testing.T) {
	if real.Available {
		t.Skip("libtoxcore is compiled in")
	}

	opts := NewOptions()
	opts.Engine = real.NewEngine
	tox, err := New(opts, nil)
	assert.Nil(t, tox)
	assert.ErrorIs(t, err, InitBackendUnavailable)
	assert.Equal(t, "tox new: no engine backend is available", err.Error())
}

func TestNewRejectsBadProxy(t *testing.T) {
	opts := simOptions(newNetwork())
	opts.Proxy = &ProxyOptions{Type: ProxyType(9), Host: "proxy.example", Port: 8080}

	_, err := New(opts, nil)
	assert.ErrorIs(t, err, InitProxyBadType)
}

func TestNewWithSecretKey(t *testing.T) {
	first := newTox(t, newNetwork())
	sk := first.SecretKey()

	opts := simOptions(newNetwork())
	opts.SecretKey = &sk
	second, err := New(opts, nil)
	require.NoError(t, err)
	defer second.Kill()

	assert.Equal(t, first.PublicKey(), second.PublicKey())
	assert.Equal(t, sk, second.SecretKey())
}

func TestSaveAndRestore(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, _ := connect(t, alice, bob)

	require.NoError(t, alice.SetName("alice"))
	require.NoError(t, alice.SetStatusMessage("around"))
	require.NoError(t, alice.SetNospam(0xCAFEBABE))
	data := alice.Save()
	require.NotEmpty(t, data)

	restored, err := New(simOptions(newNetwork()), data)
	require.NoError(t, err)
	defer restored.Kill()

	assert.Equal(t, alice.PublicKey(), restored.PublicKey())
	assert.Equal(t, alice.SecretKey(), restored.SecretKey())
	assert.Equal(t, "alice", restored.Name())
	assert.Equal(t, "around", restored.StatusMessage())
	assert.Equal(t, uint32(0xCAFEBABE), restored.Nospam())
	assert.Equal(t, []uint32{bNum}, restored.FriendList())

	pk, err := restored.FriendPublicKey(bNum)
	require.NoError(t, err)
	assert.Equal(t, bob.PublicKey(), pk)
}

func TestRestoreRejectsEncryptedAndCorruptSavedata(t *testing.T) {
	tox := newTox(t, newNetwork())

	encrypted, err := encryptsave.PassEncrypt([]byte("correct horse"), tox.Save())
	require.NoError(t, err)

	_, err = New(simOptions(newNetwork()), encrypted)
	assert.ErrorIs(t, err, InitLoadEncrypted)

	_, err = New(simOptions(newNetwork()), []byte("not a savefile"))
	assert.ErrorIs(t, err, InitLoadBadFormat)

	plain, err := encryptsave.PassDecrypt([]byte("correct horse"), encrypted)
	require.NoError(t, err)
	restored, err := New(simOptions(newNetwork()), plain)
	require.NoError(t, err)
	defer restored.Kill()
	assert.Equal(t, tox.PublicKey(), restored.PublicKey())
}

func TestBootstrap(t *testing.T) {
	tox := newTox(t, newNetwork())

	tests := []struct {
		name string
		host string
		port uint16
		want error
	}{
		{"empty host", "", 33445, BootstrapBadHost},
		{"zero port", "node.example", 0, BootstrapBadPort},
		{"host too long", strings.Repeat("a", limits.MaxHostnameLength+1), 33445, BootstrapBadHost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tox.Bootstrap(tt.host, tt.port, PublicKey{}), tt.want)
			assert.ErrorIs(t, tox.AddTCPRelay(tt.host, tt.port, PublicKey{}), tt.want)
		})
	}

	require.NoError(t, tox.Bootstrap("node.example", 33445, PublicKey{}))
	assert.Equal(t, ConnectionUDP, tox.SelfConnectionStatus())

	events := eventsOf[*ConnectionStatusEvent](drain(tox))
	require.Len(t, events, 1)
	assert.Equal(t, ConnectionUDP, events[0].Status)
}

func TestSelfInfo(t *testing.T) {
	tox := newTox(t, newNetwork())

	require.NoError(t, tox.SetName("Tox User"))
	assert.Equal(t, "Tox User", tox.Name())
	assert.ErrorIs(t, tox.SetName(strings.Repeat("n", limits.MaxNameLength+1)), SetInfoTooLong)
	assert.Equal(t, "Tox User", tox.Name())

	require.NoError(t, tox.SetStatusMessage("busy hacking"))
	assert.Equal(t, "busy hacking", tox.StatusMessage())
	assert.ErrorIs(t, tox.SetStatusMessage(strings.Repeat("s", limits.MaxStatusMessageLength+1)), SetInfoTooLong)

	require.NoError(t, tox.SetStatus(UserStatusBusy))
	assert.Equal(t, UserStatusBusy, tox.Status())

	require.NoError(t, tox.SetNospam(0x01020304))
	assert.Equal(t, uint32(0x01020304), tox.Nospam())
	assert.Equal(t, uint32(0x01020304), tox.Address().Nospam())
	assert.True(t, tox.Address().Valid())
}

func TestErrorsAreComparable(t *testing.T) {
	var err error = FriendAddOwnKey
	assert.True(t, errors.Is(err, FriendAddOwnKey))
	assert.False(t, errors.Is(err, FriendAddNoMessage))

	var target FriendAddError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, FriendAddOwnKey, target)
}
