// Package limits provides centralized size limits shared by the binding and
// the engines behind it. The values mirror the TOX_MAX_* constants of the
// native library so both sides agree on what is too long.
package limits

import (
	"errors"
	"fmt"
)

const (
	// PublicKeySize is the size of a long-term public key.
	PublicKeySize = 32

	// SecretKeySize is the size of a long-term secret key.
	SecretKeySize = 32

	// NospamSize is the size of the nospam value embedded in an address.
	NospamSize = 4

	// AddressSize is public key + nospam + 2 byte checksum.
	AddressSize = PublicKeySize + NospamSize + 2

	// FileIDLength is the size of a file transfer identifier.
	FileIDLength = 32

	// ConferenceIDSize is the size of a conference identifier.
	ConferenceIDSize = 32

	// MaxNameLength is the maximum length of a nickname.
	MaxNameLength = 128

	// MaxStatusMessageLength is the maximum length of a status message.
	MaxStatusMessageLength = 1007

	// MaxFriendRequestLength is the maximum length of a friend request message.
	MaxFriendRequestLength = 1016

	// MaxMessageLength is the largest message the engine accepts in one frame.
	MaxMessageLength = 1372

	// MaxCustomPacketSize is the largest lossy or lossless custom packet.
	MaxCustomPacketSize = 1373

	// MaxFilenameLength is the maximum length of a file name in a transfer.
	MaxFilenameLength = 255

	// MaxHostnameLength is the maximum length of a bootstrap or relay host.
	MaxHostnameLength = 255

	// FriendSplitLength is the chunk budget used when splitting long direct
	// messages.
	FriendSplitLength = 1368

	// ConferenceSplitLength is the chunk budget used when splitting long
	// conference messages. Conference relays add more framing than direct
	// messages do.
	ConferenceSplitLength = 1300
)

var (
	// ErrMessageEmpty indicates an empty message was provided
	ErrMessageEmpty = errors.New("empty message")

	// ErrMessageTooLarge indicates message exceeds maximum size
	ErrMessageTooLarge = errors.New("message too large")
)

// ValidateMessageSize validates a message against the specified maximum size.
// Returns an error with context including the actual and maximum sizes.
func ValidateMessageSize(message []byte, maxSize int) error {
	if len(message) == 0 {
		return ErrMessageEmpty
	}
	if len(message) > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrMessageTooLarge, len(message), maxSize)
	}
	return nil
}

// ValidateFriendMessage validates a direct message against MaxMessageLength.
func ValidateFriendMessage(message []byte) error {
	return ValidateMessageSize(message, MaxMessageLength)
}

// ValidateCustomPacket validates a custom packet against MaxCustomPacketSize.
func ValidateCustomPacket(packet []byte) error {
	return ValidateMessageSize(packet, MaxCustomPacketSize)
}

// FitsField reports whether a value may be stored in a field of the given
// maximum length. Empty values always fit.
func FitsField(value []byte, maxSize int) bool {
	return len(value) <= maxSize
}
