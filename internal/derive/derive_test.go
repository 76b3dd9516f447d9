package derive

import (
	"bytes"
	"testing"
)

func TestDeriveDeterministic(t *testing.T) {
	secret := []byte("my-secret-salt")
	identifier := []byte("github.com")

	for _, algo := range Algorithms() {
		first, err := Derive(secret, identifier, algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed: %v", algo, err)
		}
		if len(first) != KeyLen {
			t.Errorf("Derive(%s) returned %d bytes, want %d", algo, len(first), KeyLen)
		}

		second, err := Derive(secret, identifier, algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed on second call: %v", algo, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("Derive(%s) is not deterministic", algo)
		}
	}
}

func TestDeriveDistinguishesInputs(t *testing.T) {
	for _, algo := range Algorithms() {
		base, err := Derive([]byte("secret"), []byte("github.com"), algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed: %v", algo, err)
		}

		otherID, err := Derive([]byte("secret"), []byte("google.com"), algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed: %v", algo, err)
		}
		if bytes.Equal(base, otherID) {
			t.Errorf("Derive(%s): different identifiers produced the same key", algo)
		}

		otherSecret, err := Derive([]byte("secret2"), []byte("github.com"), algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed: %v", algo, err)
		}
		if bytes.Equal(base, otherSecret) {
			t.Errorf("Derive(%s): different secrets produced the same key", algo)
		}
	}
}

func TestDeriveAlgorithmsDiffer(t *testing.T) {
	secret := []byte("secret")
	identifier := []byte("github.com")

	seen := make(map[string]Algorithm)
	for _, algo := range Algorithms() {
		key, err := Derive(secret, identifier, algo)
		if err != nil {
			t.Fatalf("Derive(%s) failed: %v", algo, err)
		}
		if prev, dup := seen[string(key)]; dup {
			t.Errorf("algorithms %s and %s produced the same key", prev, algo)
		}
		seen[string(key)] = algo
	}
}

func TestDeriveUnknownAlgorithm(t *testing.T) {
	if _, err := Derive([]byte("s"), []byte("id"), Algorithm(99)); err == nil {
		t.Error("expected an error for an unknown algorithm tag")
	}
}

func TestDeriveAndFormatScenario(t *testing.T) {
	secret := []byte("my-secret-salt")

	pwd1, err := DeriveAndFormat(secret, []byte("github.com"), HmacSha256, 16)
	if err != nil {
		t.Fatalf("DeriveAndFormat failed: %v", err)
	}
	pwd2, err := DeriveAndFormat(secret, []byte("github.com"), HmacSha256, 16)
	if err != nil {
		t.Fatalf("DeriveAndFormat failed: %v", err)
	}

	if pwd1 != pwd2 {
		t.Errorf("same inputs produced different passwords: %q vs %q", pwd1, pwd2)
	}
	if len(pwd1) != 16 {
		t.Errorf("password length = %d, want 16", len(pwd1))
	}
	assertClassCoverage(t, pwd1)

	other, err := DeriveAndFormat(secret, []byte("google.com"), HmacSha256, 16)
	if err != nil {
		t.Fatalf("DeriveAndFormat failed: %v", err)
	}
	if other == pwd1 {
		t.Error("different identifiers produced the same password")
	}

	otherSalt, err := DeriveAndFormat([]byte("salt2"), []byte("github.com"), HmacSha256, 16)
	if err != nil {
		t.Fatalf("DeriveAndFormat failed: %v", err)
	}
	if otherSalt == pwd1 {
		t.Error("different secrets produced the same password")
	}
}

func TestAlgorithmTextRoundTrip(t *testing.T) {
	names := map[Algorithm]string{
		HmacSha256: "HmacSha256",
		Argon2i:    "Argon2i",
		Argon2id:   "Argon2id",
		Pbkdf2:     "Pbkdf2",
		Scrypt:     "Scrypt",
	}

	for algo, name := range names {
		text, err := algo.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) failed: %v", algo, err)
		}
		if string(text) != name {
			t.Errorf("MarshalText(%s) = %q, want %q", algo, text, name)
		}

		var parsed Algorithm
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if parsed != algo {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, parsed, algo)
		}
	}
}

func TestParseAlgorithmRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "hmacsha256", "SHA256", "argon2"} {
		if _, err := ParseAlgorithm(name); err == nil {
			t.Errorf("ParseAlgorithm(%q) should fail", name)
		}
	}
}
