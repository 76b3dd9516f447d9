package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/YanLien/SaltPass/internal/security"
)

const (
	KeySize    = 32     // AES-256 key size
	NonceSize  = 12     // GCM nonce size
	TagSize    = 16     // GCM authentication tag size
	Iterations = 100000 // PBKDF2 iterations for the storage key
)

// Fixed PBKDF2 salt for the storage key. The store file carries no header,
// so the salt must be a constant; changing it orphans every existing store.
var kdfSalt = []byte("saltpass-storage-salt")

var (
	ErrMalformedEncoding = errors.New("malformed base64 encoding")
	ErrInvalidCiphertext = errors.New("ciphertext too short")
	ErrAuthFailed        = errors.New("authentication failed: wrong password or corrupted data")
)

// DeriveKey derives the AES-256 storage key from the user's encryption
// password. This is independent of the master-salt derivation pipeline;
// the two secrets must never be conflated.
func DeriveKey(password []byte) []byte {
	return pbkdf2.Key(password, kdfSalt, Iterations, KeySize, sha256.New)
}

// Encrypt seals plaintext with AES-256-GCM under a password-derived key
// and returns base64(nonce || ciphertext || tag). A fresh random nonce is
// generated on every call, so output differs even for identical inputs.
func Encrypt(password, plaintext []byte) (string, error) {
	key := DeriveKey(password)
	defer security.ClearBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Failures are typed: ErrMalformedEncoding for
// bad base64, ErrInvalidCiphertext for input shorter than a nonce, and
// ErrAuthFailed when the GCM tag does not verify. No partial plaintext is
// ever returned.
func Decrypt(password []byte, encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	if len(data) < NonceSize {
		return nil, ErrInvalidCiphertext
	}

	key := DeriveKey(password)
	defer security.ClearBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := data[:NonceSize]
	ciphertext := data[NonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
