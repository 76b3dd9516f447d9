package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YanLien/SaltPass/internal/catalog"
	"github.com/YanLien/SaltPass/internal/derive"
	"github.com/YanLien/SaltPass/internal/security"
	"github.com/YanLien/SaltPass/internal/storage"
)

func newTestSession(t *testing.T, encrypted bool) *Session {
	t.Helper()

	ext := "json"
	if encrypted {
		ext = "json.enc"
	}
	path := filepath.Join(t.TempDir(), "features."+ext)

	store := storage.New(path, storage.FormatJSON, encrypted)
	if encrypted {
		store.SetPassword(security.SecretFromString("store-pw"))
	}

	session, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return session
}

func TestSessionAddListRemove(t *testing.T) {
	session := newTestSession(t, false)
	defer session.Close()

	if len(session.Entries()) != 0 {
		t.Fatal("new session should start with an empty catalog")
	}

	if err := session.AddEntry("GitHub", "github.com", derive.HmacSha256, ""); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if err := session.AddEntry("Google", "google.com", derive.Pbkdf2, "work"); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	entries := session.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Feature != "github.com" || entries[1].Feature != "google.com" {
		t.Error("entries out of insertion order")
	}

	// The catalog must be persisted, not just held in memory.
	if _, err := os.Stat(session.StorePath()); err != nil {
		t.Errorf("store file should exist after AddEntry: %v", err)
	}

	removed, err := session.RemoveEntry(0)
	if err != nil {
		t.Fatalf("RemoveEntry failed: %v", err)
	}
	if removed.Name != "GitHub" {
		t.Errorf("removed %q, want GitHub", removed.Name)
	}
	if len(session.Entries()) != 1 {
		t.Error("entry not removed")
	}

	if _, err := session.RemoveEntry(5); !errors.Is(err, catalog.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSessionGenerate(t *testing.T) {
	session := newTestSession(t, false)
	defer session.Close()

	if _, err := session.Generate("github.com", derive.HmacSha256, 16); !errors.Is(err, ErrNoSecret) {
		t.Errorf("expected ErrNoSecret before SetSecret, got %v", err)
	}

	session.SetSecret(security.SecretFromString("my-secret-salt"))

	direct, err := session.Generate("github.com", derive.HmacSha256, 16)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(direct) != 16 {
		t.Errorf("password length = %d, want 16", len(direct))
	}

	if err := session.AddEntry("GitHub", "github.com", derive.HmacSha256, ""); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	viaEntry, err := session.GenerateEntry(0, 16)
	if err != nil {
		t.Fatalf("GenerateEntry failed: %v", err)
	}

	if direct != viaEntry {
		t.Errorf("entry-based and direct generation disagree: %q vs %q", direct, viaEntry)
	}

	if _, err := session.GenerateEntry(7, 16); !errors.Is(err, catalog.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSessionCloseDestroysSecret(t *testing.T) {
	session := newTestSession(t, false)

	backing := []byte("my-secret-salt")
	session.SetSecret(security.NewSecret(backing))
	session.Close()

	for i, b := range backing {
		if b != 0 {
			t.Fatalf("secret backing[%d] = %x after Close, want 0", i, b)
		}
	}
	if _, err := session.Generate("github.com", derive.HmacSha256, 16); !errors.Is(err, ErrNoSecret) {
		t.Errorf("expected ErrNoSecret after Close, got %v", err)
	}
}

func TestSessionEncryptedPersistence(t *testing.T) {
	session := newTestSession(t, true)
	path := session.StorePath()

	if err := session.AddEntry("GitHub", "github.com", derive.Argon2id, "hint"); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	session.Close()

	store := storage.New(path, storage.FormatJSON, true)
	store.SetPassword(security.SecretFromString("store-pw"))
	reopened, err := NewSession(store)
	if err != nil {
		t.Fatalf("reopening session failed: %v", err)
	}
	defer reopened.Close()

	entries := reopened.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries after reopen, want 1", len(entries))
	}
	e := entries[0]
	if e.Name != "GitHub" || e.Feature != "github.com" || e.Algorithm != derive.Argon2id {
		t.Errorf("entry fields not preserved: %+v", e)
	}
	if e.Hint == nil || *e.Hint != "hint" {
		t.Error("hint not preserved")
	}
}

func TestSessionExport(t *testing.T) {
	session := newTestSession(t, true)
	defer session.Close()

	if err := session.AddEntry("GitHub", "github.com", derive.HmacSha256, ""); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	text, err := session.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(text, "github.com") {
		t.Errorf("export missing entry: %q", text)
	}
}
