package encryptsave

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassKeyRoundTrip(t *testing.T) {
	passphrase := []byte("toxbind is good")
	data := []byte("toxbind is a Go binding for toxcore.")

	key, err := NewPassKey(passphrase)
	require.NoError(t, err)
	ciphertext, err := key.Encrypt(data)
	require.NoError(t, err)
	assert.Len(t, ciphertext, len(data)+ExtraLength)
	assert.True(t, IsEncrypted(ciphertext))

	k, err := PassKeyFromData(passphrase, ciphertext)
	require.NoError(t, err)
	plaintext, err := k.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, data, plaintext)
}

func TestPassEncryptDecrypt(t *testing.T) {
	data := bytes.Repeat([]byte{0xA5}, 4096)

	ciphertext, err := PassEncrypt([]byte("secret"), data)
	require.NoError(t, err)

	plaintext, err := PassDecrypt([]byte("secret"), ciphertext)
	require.NoError(t, err)
	assert.Equal(t, data, plaintext)

	_, err = PassDecrypt([]byte("wrong"), ciphertext)
	assert.Equal(t, DecryptionFailed, err)
}

func TestEncryptRejectsEmptyData(t *testing.T) {
	k, err := NewPassKey([]byte("pw"))
	require.NoError(t, err)

	for _, data := range [][]byte{nil, {}} {
		_, err := k.Encrypt(data)
		assert.Equal(t, EncryptionNull, err)
		_, err = PassEncrypt([]byte("pw"), data)
		assert.Equal(t, EncryptionNull, err)
	}

	// The smallest blob Encrypt produces must decrypt again.
	ciphertext, err := k.Encrypt([]byte{0})
	require.NoError(t, err)
	plaintext, err := k.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, plaintext)
}

func TestSaltIsStored(t *testing.T) {
	k, err := NewPassKey([]byte("pw"))
	require.NoError(t, err)

	ciphertext, err := k.Encrypt([]byte("x"))
	require.NoError(t, err)

	salt, err := Salt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, k.Salt(), salt)

	same, err := PassKeyWithSalt([]byte("pw"), salt)
	require.NoError(t, err)
	assert.Equal(t, k.key, same.key)
}

func TestDecryptErrors(t *testing.T) {
	k, err := PassKeyWithSalt([]byte("pw"), [SaltLength]byte{1})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
		want DecryptionError
	}{
		{"nil", nil, DecryptionNull},
		{"short", []byte(Magic), DecryptionInvalidLength},
		{"plain", bytes.Repeat([]byte("a"), ExtraLength+10), DecryptionBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := k.Decrypt(tt.data)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestTamperedCiphertext(t *testing.T) {
	ciphertext, err := PassEncrypt([]byte("pw"), []byte("savedata"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0xff
	_, err = PassDecrypt([]byte("pw"), ciphertext)
	assert.True(t, errors.Is(err, DecryptionFailed))
}

func TestSaltErrors(t *testing.T) {
	_, err := Salt(nil)
	assert.Equal(t, GetSaltNull, err)

	_, err = Salt([]byte("not encrypted at all, just long enough to have a salt"))
	assert.Equal(t, GetSaltBadFormat, err)
}

func TestIsEncrypted(t *testing.T) {
	assert.False(t, IsEncrypted(nil))
	assert.False(t, IsEncrypted([]byte("toxEsav")))
	assert.True(t, IsEncrypted([]byte("toxEsave")))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "decryption: wrong passphrase or corrupted data", DecryptionFailed.Error())
	assert.Equal(t, "get salt: unknown error (9)", GetSaltError(9).Error())
}
