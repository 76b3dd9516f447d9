// Package crypto encrypts the feature store with AES-256-GCM.
//
// Encryption uses:
//   - 32-byte key derived from the store password via PBKDF2-HMAC-SHA256
//     (fixed salt, 100,000 iterations)
//   - 12-byte random nonce per encryption operation
//   - base64(nonce || ciphertext || tag) as the on-disk representation
//
// Encryption is intentionally non-deterministic (fresh nonce every call).
// This is the opposite of the password derivation pipeline in the derive
// package, which must be deterministic; the two key derivations use
// independent secrets and must stay separate.
package crypto
