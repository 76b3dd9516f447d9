// Package core ties the derivation pipeline and the store together into a
// session.
//
// A Session is created at startup with an open store, receives the master
// salt once the user has entered it, and exposes the operations the CLI
// needs: generate a password for a stored or ad-hoc feature, add or remove
// catalog entries, and export the store as TOML. Closing the session
// zeroizes the salt and the store's encryption password.
package core
