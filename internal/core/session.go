package core

import (
	"errors"

	"github.com/YanLien/SaltPass/internal/catalog"
	"github.com/YanLien/SaltPass/internal/derive"
	"github.com/YanLien/SaltPass/internal/security"
	"github.com/YanLien/SaltPass/internal/storage"
)

var ErrNoSecret = errors.New("master salt not set")

// Session holds the state of one interactive run: the master salt and the
// open store. It is constructed explicitly at startup and must be closed
// at exit; Close zeroizes the salt and the store's encryption password.
type Session struct {
	secret  *security.Secret
	store   *storage.Store
	catalog *catalog.Catalog
}

// NewSession opens the store and loads the catalog.
func NewSession(store *storage.Store) (*Session, error) {
	c, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{
		store:   store,
		catalog: c,
	}, nil
}

// SetSecret hands the session the master salt. The session takes
// ownership and destroys it on Close.
func (s *Session) SetSecret(secret *security.Secret) {
	s.secret = secret
}

// Close releases all secret material held by the session.
func (s *Session) Close() {
	s.secret.Destroy()
	s.secret = nil
	if s.store != nil {
		s.store.Close()
	}
}

// Generate derives the password for an arbitrary identifier with the
// given algorithm and length, using the session's master salt.
func (s *Session) Generate(identifier string, algo derive.Algorithm, length int) (string, error) {
	if s.secret == nil {
		return "", ErrNoSecret
	}
	return derive.DeriveAndFormat(s.secret.Bytes(), []byte(identifier), algo, length)
}

// GenerateEntry derives the password for a stored catalog entry, using
// the algorithm recorded when the entry was created.
func (s *Session) GenerateEntry(index int, length int) (string, error) {
	if index < 0 || index >= s.catalog.Len() {
		return "", catalog.ErrIndexOutOfRange
	}
	e := s.catalog.Features[index]
	return s.Generate(e.Feature, e.Algorithm, length)
}

// AddEntry appends a feature to the catalog and persists it.
func (s *Session) AddEntry(name, feature string, algo derive.Algorithm, hint string) error {
	s.catalog.Add(catalog.NewEntry(name, feature, algo, hint))
	return s.store.Save(s.catalog)
}

// RemoveEntry deletes the feature at index and persists the catalog.
func (s *Session) RemoveEntry(index int) (catalog.Entry, error) {
	removed, err := s.catalog.Remove(index)
	if err != nil {
		return catalog.Entry{}, err
	}
	if err := s.store.Save(s.catalog); err != nil {
		return catalog.Entry{}, err
	}
	return removed, nil
}

// Entries returns the catalog contents in insertion order.
func (s *Session) Entries() []catalog.Entry {
	return s.catalog.Features
}

// FindFeature returns the index of the first entry with the given feature
// identifier, or -1 if none is stored.
func (s *Session) FindFeature(feature string) int {
	return s.catalog.FindByFeature(feature)
}

// Export renders the stored catalog as TOML for inspection, decrypting
// if necessary. The stored blob itself is not modified.
func (s *Session) Export() (string, error) {
	return s.store.ExportPlaintext()
}

// StorePath reports where the catalog is persisted.
func (s *Session) StorePath() string {
	return s.store.Path()
}
