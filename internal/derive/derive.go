package derive

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// KeyLen is the raw key size every algorithm produces.
const KeyLen = 32

// Fixed cost parameters. These are baked in: changing any of them changes
// every password derived with the affected algorithm, so they must stay
// stable across versions.
const (
	argonMemory  = 64 * 1024 // KiB
	argonTime    = 2
	argonThreads = 1

	pbkdf2Iterations = 10000

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// Derive produces the 32-byte raw key for (secret, identifier) under the
// given algorithm. It is pure and deterministic: identical inputs always
// yield identical output. A derivation that cannot complete is a fatal
// configuration error; there is never a fallback to another algorithm,
// since that would silently change passwords for existing entries.
func Derive(secret, identifier []byte, algo Algorithm) ([]byte, error) {
	switch algo {
	case HmacSha256:
		mac := hmac.New(sha256.New, secret)
		mac.Write(identifier)
		return mac.Sum(nil), nil
	case Argon2i:
		return argon2.Key(identifier, secret, argonTime, argonMemory, argonThreads, KeyLen), nil
	case Argon2id:
		return argon2.IDKey(identifier, secret, argonTime, argonMemory, argonThreads, KeyLen), nil
	case Pbkdf2:
		return pbkdf2.Key(identifier, secret, pbkdf2Iterations, KeyLen, sha256.New), nil
	case Scrypt:
		key, err := scrypt.Key(identifier, secret, scryptN, scryptR, scryptP, KeyLen)
		if err != nil {
			return nil, fmt.Errorf("scrypt derivation failed: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// DeriveAndFormat runs the full pipeline: derive the raw key, then format
// it into a typeable password of the requested length.
func DeriveAndFormat(secret, identifier []byte, algo Algorithm, length int) (string, error) {
	raw, err := Derive(secret, identifier, algo)
	if err != nil {
		return "", err
	}
	return Format(raw, length), nil
}
