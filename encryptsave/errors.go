package encryptsave

import "fmt"

func describe(op string, reasons []string, code uint32) string {
	if int(code) < len(reasons) && reasons[code] != "" {
		return op + ": " + reasons[code]
	}
	return fmt.Sprintf("%s: unknown error (%d)", op, code)
}

// KeyDerivationError is returned when a passphrase cannot be turned into
// a PassKey.
type KeyDerivationError uint32

const (
	KeyDerivationNull KeyDerivationError = iota + 1
	KeyDerivationFailed
)

var keyDerivationReasons = []string{
	KeyDerivationNull:   "a required argument was missing",
	KeyDerivationFailed: "key derivation failed",
}

func (e KeyDerivationError) Error() string {
	return describe("key derivation", keyDerivationReasons, uint32(e))
}

// EncryptionError is returned by the encrypting functions.
type EncryptionError uint32

const (
	EncryptionNull EncryptionError = iota + 1
	EncryptionKeyDerivationFailed
	EncryptionFailed
)

var encryptionReasons = []string{
	EncryptionNull:                "a required argument was missing",
	EncryptionKeyDerivationFailed: "key derivation failed",
	EncryptionFailed:              "encryption failed",
}

func (e EncryptionError) Error() string {
	return describe("encryption", encryptionReasons, uint32(e))
}

// DecryptionError is returned by the decrypting functions.
type DecryptionError uint32

const (
	DecryptionNull DecryptionError = iota + 1
	DecryptionInvalidLength
	DecryptionBadFormat
	DecryptionKeyDerivationFailed
	DecryptionFailed
)

var decryptionReasons = []string{
	DecryptionNull:                "a required argument was missing",
	DecryptionInvalidLength:       "data is shorter than the encryption overhead",
	DecryptionBadFormat:           "data is not in the encrypted format",
	DecryptionKeyDerivationFailed: "key derivation failed",
	DecryptionFailed:              "wrong passphrase or corrupted data",
}

func (e DecryptionError) Error() string {
	return describe("decryption", decryptionReasons, uint32(e))
}

// GetSaltError is returned by Salt.
type GetSaltError uint32

const (
	GetSaltNull GetSaltError = iota + 1
	GetSaltBadFormat
)

var getSaltReasons = []string{
	GetSaltNull:      "a required argument was missing",
	GetSaltBadFormat: "data is not in the encrypted format",
}

func (e GetSaltError) Error() string {
	return describe("get salt", getSaltReasons, uint32(e))
}
