// Package security provides memory hygiene helpers for secret material.
//
// The master salt and the storage encryption password must never outlive
// the operation that needed them. Secret wraps their backing buffer and
// zeroes it on Destroy; every acquisition site pairs with a deferred
// Destroy so early error returns cannot leak the bytes.
package security
