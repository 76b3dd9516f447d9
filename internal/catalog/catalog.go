package catalog

import (
	"errors"
	"time"

	"github.com/YanLien/SaltPass/internal/derive"
)

var ErrIndexOutOfRange = errors.New("feature index out of range")

// Entry is one stored feature. Entries are immutable once created; the
// only mutation the catalog supports is removal by index.
type Entry struct {
	Name      string           `json:"name" toml:"name"`
	Feature   string           `json:"feature" toml:"feature"`
	Algorithm derive.Algorithm `json:"algorithm" toml:"algorithm"`
	Created   time.Time        `json:"created" toml:"created"`
	Hint      *string          `json:"hint,omitempty" toml:"hint,omitempty"`
}

// NewEntry creates an entry with the creation time set to now (UTC). An
// empty hint is stored as absent.
func NewEntry(name, feature string, algo derive.Algorithm, hint string) Entry {
	e := Entry{
		Name:      name,
		Feature:   feature,
		Algorithm: algo,
		Created:   time.Now().UTC(),
	}
	if hint != "" {
		e.Hint = &hint
	}
	return e
}

// Catalog is the ordered collection of features persisted to disk.
// Insertion order is display order and deletion-index order.
type Catalog struct {
	Features []Entry `json:"features" toml:"features"`
}

func New() *Catalog {
	return &Catalog{Features: []Entry{}}
}

func (c *Catalog) Add(e Entry) {
	c.Features = append(c.Features, e)
}

// Remove deletes the entry at index, preserving the order of the rest.
func (c *Catalog) Remove(index int) (Entry, error) {
	if index < 0 || index >= len(c.Features) {
		return Entry{}, ErrIndexOutOfRange
	}
	removed := c.Features[index]
	c.Features = append(c.Features[:index], c.Features[index+1:]...)
	return removed, nil
}

func (c *Catalog) Len() int {
	return len(c.Features)
}

// FindByFeature returns the index of the first entry with the given
// feature identifier, or -1.
func (c *Catalog) FindByFeature(feature string) int {
	for i, e := range c.Features {
		if e.Feature == feature {
			return i
		}
	}
	return -1
}
