package toxbind

import (
	"time"

	"github.com/opd-ai/toxbind/interfaces"
	"github.com/opd-ai/toxbind/limits"
	"github.com/opd-ai/toxbind/messaging"
	"github.com/sirupsen/logrus"
)

// AddFriend sends a friend request to address and returns the new friend
// number.
func (t *Tox) AddFriend(address Address, message string) (uint32, error) {
	if !address.Valid() {
		return 0, FriendAddBadChecksum
	}
	if len(message) == 0 {
		return 0, FriendAddNoMessage
	}
	if len(message) > limits.MaxFriendRequestLength {
		return 0, FriendAddTooLong
	}

	var friend uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.FriendAdd(address, []byte(message))
		friend = n
		return check[FriendAddError](code)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":   "AddFriend",
			"public_key": address.PublicKey().String(),
			"error":      err.Error(),
		}).Warn("Friend request not sent")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"function":   "AddFriend",
		"friend_id":  friend,
		"public_key": address.PublicKey().String(),
	}).Info("Friend request sent")
	return friend, nil
}

// AddFriendNoRequest adds a friend without sending a request, typically to
// accept an incoming FriendRequestEvent.
func (t *Tox) AddFriendNoRequest(publicKey PublicKey) (uint32, error) {
	var friend uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.FriendAddNorequest(publicKey)
		friend = n
		return check[FriendAddError](code)
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"function":   "AddFriendNoRequest",
		"friend_id":  friend,
		"public_key": publicKey.String(),
	}).Info("Friend added")
	return friend, nil
}

// DeleteFriend removes a friend.
func (t *Tox) DeleteFriend(friend uint32) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[FriendDeleteError](e.FriendDelete(friend))
	})
}

// FriendByPublicKey returns the friend number for a public key.
func (t *Tox) FriendByPublicKey(publicKey PublicKey) (uint32, error) {
	var friend uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.FriendByPublicKey(publicKey)
		friend = n
		return check[FriendByPublicKeyError](code)
	})
	return friend, err
}

// FriendExists reports whether friend is a valid friend number.
func (t *Tox) FriendExists(friend uint32) bool {
	var ok bool
	_ = t.withEngine(func(e interfaces.Engine) error {
		ok = e.FriendExists(friend)
		return nil
	})
	return ok
}

// FriendList returns every friend number.
func (t *Tox) FriendList() []uint32 {
	var list []uint32
	_ = t.withEngine(func(e interfaces.Engine) error {
		list = e.FriendList()
		return nil
	})
	return list
}

// FriendPublicKey returns a friend's public key.
func (t *Tox) FriendPublicKey(friend uint32) (PublicKey, error) {
	var pk PublicKey
	err := t.withEngine(func(e interfaces.Engine) error {
		key, code := e.FriendPublicKey(friend)
		pk = key
		return check[FriendGetError](code)
	})
	return pk, err
}

// FriendLastOnline returns when a friend was last seen online.
func (t *Tox) FriendLastOnline(friend uint32) (time.Time, error) {
	var last time.Time
	err := t.withEngine(func(e interfaces.Engine) error {
		ts, code := e.FriendLastOnline(friend)
		if ts > 0 {
			last = time.Unix(int64(ts), 0)
		}
		return check[FriendGetError](code)
	})
	return last, err
}

// FriendName returns a friend's name.
func (t *Tox) FriendName(friend uint32) (string, error) {
	return t.friendString(friend, interfaces.Engine.FriendName)
}

// FriendStatusMessage returns a friend's status message.
func (t *Tox) FriendStatusMessage(friend uint32) (string, error) {
	return t.friendString(friend, interfaces.Engine.FriendStatusMessage)
}

func (t *Tox) friendString(friend uint32, get func(interfaces.Engine, uint32) ([]byte, uint32)) (string, error) {
	var s string
	err := t.withEngine(func(e interfaces.Engine) error {
		b, code := get(e, friend)
		s = decodeLossy(b)
		return check[FriendQueryError](code)
	})
	return s, err
}

// FriendStatus returns a friend's presence.
func (t *Tox) FriendStatus(friend uint32) (UserStatus, error) {
	status := UserStatusNone
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.FriendStatus(friend)
		if s, ok := parseUserStatus(v); ok {
			status = s
		}
		return check[FriendQueryError](code)
	})
	return status, err
}

// FriendConnectionStatus returns how a friend is connected, if at all.
func (t *Tox) FriendConnectionStatus(friend uint32) (Connection, error) {
	status := ConnectionNone
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.FriendConnectionStatus(friend)
		if c, ok := parseConnection(v); ok {
			status = c
		}
		return check[FriendQueryError](code)
	})
	return status, err
}

// FriendTyping reports whether a friend is typing.
func (t *Tox) FriendTyping(friend uint32) (bool, error) {
	var typing bool
	err := t.withEngine(func(e interfaces.Engine) error {
		v, code := e.FriendTyping(friend)
		typing = v
		return check[FriendQueryError](code)
	})
	return typing, err
}

// SetTyping tells a friend whether this user is typing.
func (t *Tox) SetTyping(friend uint32, typing bool) error {
	return t.withEngine(func(e interfaces.Engine) error {
		return check[SetTypingError](e.SelfSetTyping(friend, typing))
	})
}

// SendFriendMessage sends one message and returns its message id, which a
// later FriendReadReceiptEvent refers to. Messages longer than
// limits.MaxMessageLength fail with FriendSendMessageTooLong; use
// SendFriendMessageSplit for those.
func (t *Tox) SendFriendMessage(friend uint32, kind MessageType, message string) (uint32, error) {
	var id uint32
	err := t.withEngine(func(e interfaces.Engine) error {
		n, code := e.FriendSendMessage(friend, uint32(kind), []byte(message))
		id = n
		return check[FriendSendMessageError](code)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":  "SendFriendMessage",
			"friend_id": friend,
			"length":    len(message),
			"error":     err.Error(),
		}).Debug("Message not sent")
		return 0, err
	}
	return id, nil
}

// SendFriendMessageSplit sends message as consecutive messages, split with
// messaging.FriendSplit. It stops at the first failure and returns the ids of
// the chunks sent so far.
func (t *Tox) SendFriendMessageSplit(friend uint32, kind MessageType, message string) ([]uint32, error) {
	if message == "" {
		return nil, FriendSendMessageEmpty
	}

	var ids []uint32
	for chunk := range messaging.FriendSplit(message).All() {
		id, err := t.SendFriendMessage(friend, kind, chunk)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
