package derive

import (
	"errors"
	"fmt"
)

// Algorithm selects the key-derivation function for a catalog entry. The
// tag is chosen once when the entry is created and stored with it, so that
// regeneration always reproduces the same password.
type Algorithm int

const (
	HmacSha256 Algorithm = iota // fast, the default
	Argon2i
	Argon2id
	Pbkdf2
	Scrypt
)

var ErrUnknownAlgorithm = errors.New("unknown derivation algorithm")

var algorithmNames = map[Algorithm]string{
	HmacSha256: "HmacSha256",
	Argon2i:    "Argon2i",
	Argon2id:   "Argon2id",
	Pbkdf2:     "Pbkdf2",
	Scrypt:     "Scrypt",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists all supported tags in display order.
func Algorithms() []Algorithm {
	return []Algorithm{HmacSha256, Argon2i, Argon2id, Pbkdf2, Scrypt}
}

// ParseAlgorithm resolves a serialized tag name. Matching is exact: the
// names are part of the on-disk format and the CLI surface.
func ParseAlgorithm(name string) (Algorithm, error) {
	for tag, n := range algorithmNames {
		if n == name {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText serializes the tag as its name for JSON and TOML.
func (a Algorithm) MarshalText() ([]byte, error) {
	name, ok := algorithmNames[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(name), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	tag, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = tag
	return nil
}
