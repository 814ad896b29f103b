package toxbind

import (
	"strings"
	"testing"

	"github.com/opd-ai/toxbind/limits"
	"github.com/opd-ai/toxbind/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// joinedConference creates a text conference on alice and has bob join it.
func joinedConference(t *testing.T, alice, bob *Tox, bNum, aNum uint32) (aConf, bConf uint32) {
	t.Helper()
	aConf, err := alice.NewConference()
	require.NoError(t, err)
	require.NoError(t, alice.InviteToConference(bNum, aConf))

	invites := eventsOf[*ConferenceInviteEvent](drain(bob))
	require.Len(t, invites, 1)
	assert.Equal(t, aNum, invites[0].Friend)
	assert.Equal(t, ConferenceText, invites[0].Kind)

	bConf, err = bob.JoinConference(aNum, invites[0].Cookie)
	require.NoError(t, err)
	return aConf, bConf
}

func TestConferenceJoin(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)
	require.NoError(t, alice.SetName("Alice"))
	drain(bob)

	aConf, bConf := joinedConference(t, alice, bob, bNum, aNum)

	events := drain(bob)
	assert.Equal(t, []*ConferenceConnectedEvent{{Conference: bConf}}, eventsOf[*ConferenceConnectedEvent](events))
	assert.Equal(t, []*ConferencePeerNameEvent{{Conference: bConf, Peer: 0, Name: "Alice"}},
		eventsOf[*ConferencePeerNameEvent](events))
	assert.NotEmpty(t, eventsOf[*ConferencePeerListChangedEvent](events))
	assert.Equal(t, []*ConferencePeerListChangedEvent{{Conference: aConf}},
		eventsOf[*ConferencePeerListChangedEvent](drain(alice)))

	count, err := alice.ConferencePeerCount(aConf)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)
	count, err = bob.ConferencePeerCount(bConf)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)

	name, err := bob.ConferencePeerName(bConf, 0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	pk, err := bob.ConferencePeerPublicKey(bConf, 0)
	require.NoError(t, err)
	assert.Equal(t, alice.PublicKey(), pk)

	ours, err := bob.ConferencePeerIsOurs(bConf, 1)
	require.NoError(t, err)
	assert.True(t, ours)
	ours, err = bob.ConferencePeerIsOurs(bConf, 0)
	require.NoError(t, err)
	assert.False(t, ours)

	_, err = bob.ConferencePeerName(bConf, 5)
	assert.ErrorIs(t, err, ConferencePeerQueryPeerNotFound)
	_, err = bob.ConferencePeerCount(99)
	assert.ErrorIs(t, err, ConferencePeerQueryConferenceNotFound)

	id, ok := alice.ConferenceID(aConf)
	require.True(t, ok)
	got, err := bob.ConferenceByID(id)
	require.NoError(t, err)
	assert.Equal(t, bConf, got)

	kind, err := bob.ConferenceType(bConf)
	require.NoError(t, err)
	assert.Equal(t, ConferenceText, kind)
	assert.Equal(t, []uint32{aConf}, alice.ConferenceList())
}

func TestConferenceJoinErrors(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)

	assert.ErrorIs(t, alice.InviteToConference(bNum, 99), ConferenceInviteConferenceNotFound)

	aConf, err := alice.NewConference()
	require.NoError(t, err)
	assert.ErrorIs(t, alice.InviteToConference(42, aConf), ConferenceInviteFailSend)
	require.NoError(t, alice.InviteToConference(bNum, aConf))
	cookie := eventsOf[*ConferenceInviteEvent](drain(bob))[0].Cookie

	_, err = bob.JoinConference(aNum, Cookie{1, 2, 3})
	assert.ErrorIs(t, err, ConferenceJoinInvalidLength)

	wrongType := append(Cookie(nil), cookie...)
	wrongType[len(wrongType)-1] = byte(ConferenceAV)
	_, err = bob.JoinConference(aNum, wrongType)
	assert.ErrorIs(t, err, ConferenceJoinWrongType)

	_, err = bob.JoinConference(42, cookie)
	assert.ErrorIs(t, err, ConferenceJoinFriendNotFound)

	_, err = bob.JoinConference(aNum, cookie)
	require.NoError(t, err)
	_, err = bob.JoinConference(aNum, cookie)
	assert.ErrorIs(t, err, ConferenceJoinDuplicate)
}

func TestConferenceMessagesAndTitle(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)
	aConf, bConf := joinedConference(t, alice, bob, bNum, aNum)
	drain(alice)
	drain(bob)

	require.NoError(t, alice.SetConferenceTitle(aConf, "Book club"))
	assert.Equal(t, []*ConferenceTitleEvent{{Conference: bConf, Peer: 0, Title: "Book club"}},
		eventsOf[*ConferenceTitleEvent](drain(bob)))
	assert.Empty(t, eventsOf[*ConferenceTitleEvent](drain(alice)))

	title, err := bob.ConferenceTitle(bConf)
	require.NoError(t, err)
	assert.Equal(t, "Book club", title)
	assert.ErrorIs(t, alice.SetConferenceTitle(aConf, ""), ConferenceTitleInvalidLength)

	require.NoError(t, bob.SendConferenceMessage(bConf, MessageAction, "waves"))

	want := &ConferenceMessageEvent{Conference: aConf, Peer: 1, Kind: MessageAction, Message: "waves"}
	assert.Equal(t, []*ConferenceMessageEvent{want}, eventsOf[*ConferenceMessageEvent](drain(alice)))

	// The sender sees its own message too.
	echo := eventsOf[*ConferenceMessageEvent](drain(bob))
	require.Len(t, echo, 1)
	ours, err := bob.ConferencePeerIsOurs(bConf, echo[0].Peer)
	require.NoError(t, err)
	assert.True(t, ours)

	assert.ErrorIs(t, bob.SendConferenceMessage(bConf, MessageNormal, strings.Repeat("x", limits.MaxMessageLength+1)),
		ConferenceSendMessageTooLong)
	assert.ErrorIs(t, bob.SendConferenceMessage(99, MessageNormal, "hi"), ConferenceSendMessageConferenceNotFound)
}

func TestSendConferenceMessageSplit(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)
	_, bConf := joinedConference(t, alice, bob, bNum, aNum)
	drain(alice)

	text := strings.Repeat("naïve café ", 300)
	want := messaging.Split(text, limits.ConferenceSplitLength)
	require.Greater(t, len(want), 1)

	n, err := bob.SendConferenceMessageSplit(bConf, MessageNormal, text)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)

	var got []string
	for _, ev := range eventsOf[*ConferenceMessageEvent](drain(alice)) {
		got = append(got, ev.Message)
	}
	assert.Equal(t, want, got)

	n, err = bob.SendConferenceMessageSplit(99, MessageNormal, text)
	assert.ErrorIs(t, err, ConferenceSendMessageConferenceNotFound)
	assert.Zero(t, n)

	n, err = bob.SendConferenceMessageSplit(bConf, MessageNormal, "")
	assert.ErrorIs(t, err, limits.ErrMessageEmpty)
	assert.Zero(t, n)
	assert.Empty(t, eventsOf[*ConferenceMessageEvent](drain(alice)))
}

func TestDeleteConference(t *testing.T) {
	network := newNetwork()
	alice := newTox(t, network)
	bob := newTox(t, network)
	bNum, aNum := connect(t, alice, bob)
	aConf, bConf := joinedConference(t, alice, bob, bNum, aNum)
	id, _ := alice.ConferenceID(aConf)
	drain(alice)

	require.NoError(t, bob.DeleteConference(bConf))
	assert.ErrorIs(t, bob.DeleteConference(bConf), ConferenceDeleteNotFound)
	assert.Equal(t, []*ConferencePeerListChangedEvent{{Conference: aConf}},
		eventsOf[*ConferencePeerListChangedEvent](drain(alice)))

	count, err := alice.ConferencePeerCount(aConf)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count)

	_, err = bob.ConferenceTitle(bConf)
	assert.ErrorIs(t, err, ConferenceTitleConferenceNotFound)
	_, err = bob.ConferenceByID(id)
	assert.ErrorIs(t, err, ConferenceByIDNotFound)
	_, err = bob.ConferenceType(bConf)
	assert.ErrorIs(t, err, ConferenceGetTypeNotFound)
	assert.Empty(t, bob.ConferenceList())
}
