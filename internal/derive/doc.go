// Package derive generates deterministic passwords from a master salt and
// a feature identifier.
//
// The pipeline is derive-then-format: one of five fixed-parameter KDFs
// (HMAC-SHA256, Argon2i, Argon2id, PBKDF2, scrypt) maps (salt, feature)
// to 32 raw bytes, and Format turns those bytes into a password with
// guaranteed character-class coverage. Both stages are pure functions;
// given the same inputs they produce the same password forever, which is
// the whole point: nothing needs to be stored except the feature name and
// the algorithm tag.
package derive
