package toxbind

import (
	"fmt"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/opd-ai/toxbind/messaging"
	"github.com/sirupsen/logrus"
)

// NewConference creates a text conference and returns its number.
func (t *Tox) NewConference() (uint32, error) {
	var conference uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.ConferenceNew()
		conference = n
		return check[ConferenceNewError](code)
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"function":      "NewConference",
		"conference_id": conference,
	}).Info("Conference created")
	return conference, nil
}

// DeleteConference leaves a conference.
func (t *Tox) DeleteConference(conference uint32) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[ConferenceDeleteError](e.ConferenceDelete(conference))
	})
}

// ConferencePeerCount returns the number of peers, this client included.
func (t *Tox) ConferencePeerCount(conference uint32) (uint32, error) {
	var count uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.ConferencePeerCount(conference)
		count = n
		return check[ConferencePeerQueryError](code)
	})
	return count, err
}

// ConferencePeerName returns a peer's name.
func (t *Tox) ConferencePeerName(conference, peer uint32) (string, error) {
	var name string
	err := t.withEngine(func(e interfaces.Engine) error {
		b, code := e.ConferencePeerName(conference, peer)
		name = decodeLossy(b)
		return check[ConferencePeerQueryError](code)
	})
	return name, err
}

// ConferencePeerPublicKey returns a peer's public key.
func (t *Tox) ConferencePeerPublicKey(conference, peer uint32) (PublicKey, error) {
	var pk PublicKey
	err := t.withEngine(func(e interfaces.Engine) error {
		key, code := e.ConferencePeerPublicKey(conference, peer)
		pk = key
		return check[ConferencePeerQueryError](code)
	})
	return pk, err
}

// ConferencePeerIsOurs reports whether peer is this client.
func (t *Tox) ConferencePeerIsOurs(conference, peer uint32) (bool, error) {
	var ours bool
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.ConferencePeerNumberIsOurs(conference, peer)
		ours = v
		return check[ConferencePeerQueryError](code)
	})
	return ours, err
}

// InviteToConference invites a friend.
func (t *Tox) InviteToConference(friend, conference uint32) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[ConferenceInviteError](e.ConferenceInvite(friend, conference))
	})
}

// JoinConference joins a text conference with the cookie from a
// ConferenceInviteEvent.
func (t *Tox) JoinConference(friend uint32, cookie Cookie) (uint32, error) {
	var conference uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.ConferenceJoin(friend, cookie)
		conference = n
		return check[ConferenceJoinError](code)
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"function":      "JoinConference",
		"friend_id":     friend,
		"conference_id": conference,
	}).Info("Joined conference")
	return conference, nil
}

// SendConferenceMessage sends one message to a conference.
func (t *Tox) SendConferenceMessage(conference uint32, kind MessageType, message string) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[ConferenceSendMessageError](e.ConferenceSendMessage(conference, uint32(kind), []byte(message)))
	})
}

// SendConferenceMessageSplit sends message as consecutive conference
// messages split with messaging.ConferenceSplit. It returns the number of
// chunks sent before any failure. The conference status codes have no empty
// message case, so an empty message fails with limits.ErrMessageEmpty.
func (t *Tox) SendConferenceMessageSplit(conference uint32, kind MessageType, message string) (int, error) {
	if message == "" {
		return 0, fmt.Errorf("send conference message: %w", limits.ErrMessageEmpty)
	}

	sent := 0
	for chunk := range messaging.ConferenceSplit(message).All() {
		if err := t.SendConferenceMessage(conference, kind, chunk); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// ConferenceTitle returns a conference's title.
func (t *Tox) ConferenceTitle(conference uint32) (string, error) {
	var title string
	err := t.withEngine(func(e interfaces.Engine) error {
		b, code := e.ConferenceTitle(conference)
		title = decodeLossy(b)
		return check[ConferenceTitleError](code)
	})
	return title, err
}

// SetConferenceTitle changes a conference's title.
func (t *Tox) SetConferenceTitle(conference uint32, title string) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[ConferenceTitleError](e.ConferenceSetTitle(conference, []byte(title)))
	})
}

// ConferenceList returns every conference number.
func (t *Tox) ConferenceList() []uint32 {
	var list []uint32
	_ = t.withEngine(func(e interfaces.Engine) error {
		list = e.ConferenceChatlist()
		return nil
	})
	return list
}

// ConferenceType returns whether a conference is text-only or audio.
func (t *Tox) ConferenceType(conference uint32) (ConferenceType, error) {
	kind := ConferenceText
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.ConferenceType(conference)
		if ct, ok := parseConferenceType(v); ok {
			kind = ct
		}
		return check[ConferenceGetTypeError](code)
	})
	return kind, err
}

// ConferenceID returns the persistent identifier of a conference.
func (t *Tox) ConferenceID(conference uint32) (ConferenceID, bool) {
	var id ConferenceID
	var ok bool
	_ = t.withEngine(func(e interfaces.Engine) error {
		id, ok = e.ConferenceID(conference)
		return nil
	})
	return id, ok
}

// ConferenceByID returns the conference number for a persistent identifier.
func (t *Tox) ConferenceByID(id ConferenceID) (uint32, error) {
	var conference uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.ConferenceByID(id)
		conference = n
		return check[ConferenceByIDError](code)
	})
	return conference, err
}
