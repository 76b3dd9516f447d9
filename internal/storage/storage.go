package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/YanLien/SaltPass/internal/catalog"
	"github.com/YanLien/SaltPass/internal/crypto"
	"github.com/YanLien/SaltPass/internal/security"
)

const (
	DirName        = ".saltpass"
	FileBase       = "features"
	DirPermSecure  = 0700 // Directory: owner rwx only
	FilePermSecure = 0600 // File: owner rw only
)

var (
	ErrPasswordRequired = errors.New("encryption password not set")
	ErrStoreNotFound    = errors.New("store file not found")
	ErrUnknownFormat    = errors.New("unknown storage format")
)

// Format selects the serialization used for the catalog on disk.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
)

func (f Format) Extension() string {
	if f == FormatTOML {
		return "toml"
	}
	return "json"
}

func (f Format) String() string {
	return f.Extension()
}

// ParseFormat resolves a format name ("json" or "toml"), case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Store persists the feature catalog as a single file: raw serialized text
// in plaintext mode, or the storage cipher's base64 blob in encrypted
// mode. Format and encryption are fixed when the store is created and must
// match what was used to write the file.
type Store struct {
	path      string
	format    Format
	encrypted bool
	password  *security.Secret
}

func New(path string, format Format, encrypted bool) *Store {
	return &Store{
		path:      path,
		format:    format,
		encrypted: encrypted,
	}
}

// SetPassword hands the store its encryption password. The store takes
// ownership; Close destroys it.
func (s *Store) SetPassword(p *security.Secret) {
	s.password = p
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Encrypted() bool {
	return s.encrypted
}

// Close zeroizes the encryption password, if any.
func (s *Store) Close() {
	s.password.Destroy()
	s.password = nil
}

// DefaultPath returns ~/.saltpass/features.<ext>[.enc], creating the
// directory if needed.
func DefaultPath(format Format, encrypted bool) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory not found: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, DirPermSecure); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	ext := format.Extension()
	if encrypted {
		ext += ".enc"
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", FileBase, ext)), nil
}

// Load reads the catalog from disk. A missing file is not an error: it is
// the first-run case and yields an empty catalog.
func (s *Store) Load() (*catalog.Catalog, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.New(), nil
		}
		return nil, err
	}

	if s.encrypted {
		if s.password == nil {
			return nil, ErrPasswordRequired
		}
		plaintext, err := crypto.Decrypt(s.password.Bytes(), string(content))
		if err != nil {
			return nil, err
		}
		return unmarshalCatalog(plaintext, s.format)
	}

	return unmarshalCatalog(content, s.format)
}

// Save writes the catalog to disk, replacing the previous blob.
func (s *Store) Save(c *catalog.Catalog) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, DirPermSecure); err != nil {
			return err
		}
	}

	data, err := marshalCatalog(c, s.format)
	if err != nil {
		return err
	}

	content := data
	if s.encrypted {
		if s.password == nil {
			return ErrPasswordRequired
		}
		encoded, err := crypto.Encrypt(s.password.Bytes(), data)
		if err != nil {
			return err
		}
		content = []byte(encoded)
	}

	return os.WriteFile(s.path, content, FilePermSecure)
}

// ExportPlaintext decrypts the stored blob if needed and renders it as
// TOML regardless of the configured format, for human inspection. The
// stored file is never touched.
func (s *Store) ExportPlaintext() (string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrStoreNotFound
		}
		return "", err
	}

	text := content
	if s.encrypted {
		if s.password == nil {
			return "", ErrPasswordRequired
		}
		plaintext, err := crypto.Decrypt(s.password.Bytes(), string(content))
		if err != nil {
			return "", err
		}
		text = plaintext
	}

	if s.format == FormatTOML {
		return string(text), nil
	}

	c, err := unmarshalCatalog(text, FormatJSON)
	if err != nil {
		return "", err
	}
	rendered, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render TOML: %w", err)
	}
	return string(rendered), nil
}
