package security

// Secret holds sensitive bytes (the master salt or an encryption password)
// and guarantees they are overwritten with zeros when no longer needed.
// Go strings may leave copies behind after logical release, so callers must
// hand ownership of a byte slice to NewSecret and never retain the original.
type Secret struct {
	data []byte
}

// NewSecret takes ownership of b. The caller must not use b afterwards.
func NewSecret(b []byte) *Secret {
	return &Secret{data: b}
}

// SecretFromString copies s into a freshly allocated buffer. The string
// itself cannot be zeroed; prefer NewSecret with bytes read directly from
// the terminal where possible.
func SecretFromString(s string) *Secret {
	b := make([]byte, len(s))
	copy(b, s)
	return &Secret{data: b}
}

// Bytes returns the backing buffer. The returned slice is only valid until
// Destroy is called.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

// Len reports the secret length in bytes.
func (s *Secret) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Destroy overwrites the backing memory with zeros and drops the reference.
// It is safe to call more than once and on a nil Secret.
func (s *Secret) Destroy() {
	if s == nil {
		return
	}
	ClearBytes(s.data)
	s.data = nil
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
