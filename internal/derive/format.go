package derive

import "encoding/base64"

// Password length bounds. Requested lengths are clamped into this range
// before anything else.
const (
	MinLength = 12
	MaxLength = 64
)

var specials = []byte("!@#$%^&*")

// Format turns raw key bytes into a typeable password of exactly length
// characters (clamped to [MinLength, MaxLength], and bounded by how much
// material the base64 stream yields). The exact mapping below is a
// compatibility contract: any change silently changes every password
// users have already derived.
//
// The raw bytes are base64-encoded and scanned left to right. Letters and
// digits pass through; '+', '/' and '=' map into the specials set using
// the emitted-character count as an offset; anything else is dropped.
// Afterwards, missing character classes are patched in place: uppercase
// the first character, write a digit at position 1, write '!' at position
// 2. The patches are applied in exactly this order and do not re-check
// what they overwrite; a patch can clobber the only member of another
// class, and that behavior is load-bearing for existing passwords.
func Format(raw []byte, length int) string {
	if length < MinLength {
		length = MinLength
	}
	if length > MaxLength {
		length = MaxLength
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	out := make([]byte, 0, length)
	idx := 0
	var hasUpper, hasDigit, hasSpecial bool

	for i := 0; i < len(encoded) && len(out) < length; i++ {
		ch := encoded[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
			out = append(out, ch)
			idx++
		case ch >= 'a' && ch <= 'z':
			out = append(out, ch)
			idx++
		case ch >= '0' && ch <= '9':
			hasDigit = true
			out = append(out, ch)
			idx++
		case ch == '+' || ch == '/' || ch == '=':
			hasSpecial = true
			out = append(out, mapSpecial(ch, idx))
			idx++
		}
	}

	if !hasUpper && len(out) > 0 {
		out[0] = toUpper(out[0])
	}
	if !hasDigit && len(out) > 1 {
		out[1] = byte('0' + idx%10)
	}
	if !hasSpecial && len(out) > 2 {
		out[2] = '!'
	}

	if len(out) > length {
		out = out[:length]
	}
	return string(out)
}

func mapSpecial(ch byte, idx int) byte {
	switch ch {
	case '+':
		return specials[idx%len(specials)]
	case '/':
		return specials[(idx+1)%len(specials)]
	case '=':
		return specials[(idx+2)%len(specials)]
	}
	return '!'
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}
	return ch
}
