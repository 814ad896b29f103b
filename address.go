package toxbind

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/opd-ai/toxbind/limits"
)

var (
	// ErrInvalidHex is returned when an identifier is not valid hexadecimal.
	ErrInvalidHex = errors.New("invalid hex encoding")

	// ErrInvalidLength is returned when an identifier has the wrong size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrBadChecksum is returned when an address checksum does not match.
	ErrBadChecksum = errors.New("address checksum mismatch")
)

// PublicKey is a long-term public key.
type PublicKey [limits.PublicKeySize]byte

// SecretKey is a long-term secret key.
type SecretKey [limits.SecretKeySize]byte

// FileID identifies a file transfer across restarts.
type FileID [limits.FileIDLength]byte

// ConferenceID identifies a conference across restarts.
type ConferenceID [limits.ConferenceIDSize]byte

// Cookie is the opaque invitation data needed to join a conference.
type Cookie []byte

// Address is what a user shares so others can add them: public key, nospam
// and a two byte checksum.
type Address [limits.AddressSize]byte

// NewAddress builds an address with a valid checksum.
func NewAddress(pk PublicKey, nospam uint32) Address {
	var a Address
	copy(a[:limits.PublicKeySize], pk[:])
	binary.BigEndian.PutUint32(a[limits.PublicKeySize:], nospam)
	sum := a.checksum()
	copy(a[limits.PublicKeySize+limits.NospamSize:], sum[:])
	return a
}

// ParseAddress parses the 76 character hex form and verifies the checksum.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := decodeHex(a[:], s); err != nil {
		return a, fmt.Errorf("parse address: %w", err)
	}
	if !a.Valid() {
		return a, fmt.Errorf("parse address: %w", ErrBadChecksum)
	}
	return a, nil
}

// PublicKey returns the key part of the address.
func (a Address) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk[:], a[:limits.PublicKeySize])
	return pk
}

// Nospam returns the nospam part of the address.
func (a Address) Nospam() uint32 {
	return binary.BigEndian.Uint32(a[limits.PublicKeySize:])
}

// Valid reports whether the checksum matches.
func (a Address) Valid() bool {
	sum := a.checksum()
	return sum[0] == a[limits.AddressSize-2] && sum[1] == a[limits.AddressSize-1]
}

func (a Address) checksum() [2]byte {
	var sum [2]byte
	for i := 0; i < limits.PublicKeySize+limits.NospamSize; i++ {
		sum[i%2] ^= a[i]
	}
	return sum
}

func (a Address) String() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

// ParsePublicKey parses the 64 character hex form of a public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey
	if err := decodeHex(pk[:], s); err != nil {
		return pk, fmt.Errorf("parse public key: %w", err)
	}
	return pk, nil
}

func (pk PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(pk[:]))
}

func (id FileID) String() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func (id ConferenceID) String() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func decodeHex(dst []byte, s string) error {
	if len(s) != hex.EncodedLen(len(dst)) {
		return fmt.Errorf("%w: got %d hex characters, want %d", ErrInvalidLength, len(s), hex.EncodedLen(len(dst)))
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return nil
}
