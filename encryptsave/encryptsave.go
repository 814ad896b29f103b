// Package encryptsave encrypts and decrypts Tox savedata with a
// passphrase. The format is the one produced by toxencryptsave, so files
// are interchangeable with other Tox clients.
package encryptsave

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	// Magic prefixes every encrypted blob.
	Magic = "toxEsave"

	MagicLength = len(Magic)
	SaltLength  = 32
	KeyLength   = 32
	NonceLength = 24
	MACLength   = secretbox.Overhead

	// ExtraLength is how much longer ciphertext is than plaintext.
	ExtraLength = MagicLength + SaltLength + NonceLength + MACLength
)

// scrypt parameters used by toxencryptsave.
const (
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// PassKey is a key derived from a passphrase and a salt. Deriving is
// slow on purpose; keep a PassKey around to encrypt repeatedly.
type PassKey struct {
	salt [SaltLength]byte
	key  [KeyLength]byte
}

// NewPassKey derives a key using a random salt.
func NewPassKey(passphrase []byte) (*PassKey, error) {
	var salt [SaltLength]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, KeyDerivationFailed
	}
	return PassKeyWithSalt(passphrase, salt)
}

// PassKeyWithSalt derives a key using the given salt.
func PassKeyWithSalt(passphrase []byte, salt [SaltLength]byte) (*PassKey, error) {
	if passphrase == nil {
		return nil, KeyDerivationNull
	}

	hashed := sha256.Sum256(passphrase)
	derived, err := scrypt.Key(hashed[:], salt[:], scryptN, scryptR, scryptP, KeyLength)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "PassKeyWithSalt",
			"error":    err.Error(),
		}).Error("scrypt key derivation failed")
		return nil, KeyDerivationFailed
	}

	k := &PassKey{salt: salt}
	copy(k.key[:], derived)
	return k, nil
}

// PassKeyFromData derives a key using the salt stored in encrypted data.
func PassKeyFromData(passphrase, data []byte) (*PassKey, error) {
	salt, err := Salt(data)
	if err != nil {
		return nil, KeyDerivationFailed
	}
	return PassKeyWithSalt(passphrase, salt)
}

// Salt returns the salt of the key.
func (k *PassKey) Salt() [SaltLength]byte {
	return k.salt
}

// Encrypt encrypts plaintext. The result is len(plaintext)+ExtraLength
// bytes. Empty plaintext is rejected with EncryptionNull.
func (k *PassKey) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, EncryptionNull
	}

	var nonce [NonceLength]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, EncryptionFailed
	}

	out := make([]byte, 0, len(plaintext)+ExtraLength)
	out = append(out, Magic...)
	out = append(out, k.salt[:]...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plaintext, &nonce, &k.key), nil
}

// Decrypt decrypts data produced by Encrypt with the same key.
func (k *PassKey) Decrypt(data []byte) ([]byte, error) {
	if data == nil {
		return nil, DecryptionNull
	}
	if len(data) <= ExtraLength {
		return nil, DecryptionInvalidLength
	}
	if !IsEncrypted(data) {
		return nil, DecryptionBadFormat
	}

	var nonce [NonceLength]byte
	offset := MagicLength + SaltLength
	copy(nonce[:], data[offset:offset+NonceLength])

	plain, ok := secretbox.Open(nil, data[offset+NonceLength:], &nonce, &k.key)
	if !ok {
		return nil, DecryptionFailed
	}
	return plain, nil
}

// PassEncrypt derives a key with a fresh salt and encrypts data with it.
func PassEncrypt(passphrase, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, EncryptionNull
	}
	k, err := NewPassKey(passphrase)
	if err != nil {
		if err == KeyDerivationNull {
			return nil, EncryptionNull
		}
		return nil, EncryptionKeyDerivationFailed
	}
	return k.Encrypt(data)
}

// PassDecrypt derives the key from the salt in data and decrypts it.
func PassDecrypt(passphrase, data []byte) ([]byte, error) {
	if data == nil || passphrase == nil {
		return nil, DecryptionNull
	}
	if len(data) <= ExtraLength {
		return nil, DecryptionInvalidLength
	}
	if !IsEncrypted(data) {
		return nil, DecryptionBadFormat
	}
	k, err := PassKeyFromData(passphrase, data)
	if err != nil {
		return nil, DecryptionKeyDerivationFailed
	}
	return k.Decrypt(data)
}

// IsEncrypted reports whether data starts with the encryption magic.
func IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Magic))
}

// Salt returns the salt stored in encrypted data.
func Salt(data []byte) ([SaltLength]byte, error) {
	var salt [SaltLength]byte
	if data == nil {
		return salt, GetSaltNull
	}
	if len(data) < MagicLength+SaltLength || !IsEncrypted(data) {
		return salt, GetSaltBadFormat
	}
	copy(salt[:], data[MagicLength:MagicLength+SaltLength])
	return salt, nil
}
