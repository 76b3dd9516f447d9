// Package storage persists the feature catalog to a single file under
// ~/.saltpass, serialized as JSON or TOML and optionally encrypted with
// the storage cipher.
//
// Format and encryption are fixed per store. The file name encodes both:
// features.json, features.toml, features.json.enc, features.toml.enc.
// A missing file is the first-run case and loads as an empty catalog.
package storage
