package storage

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/YanLien/SaltPass/internal/catalog"
)

func marshalCatalog(c *catalog.Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

// unmarshalCatalog parses serialized catalog text. A failure here usually
// means the file was written with a different format or encryption setting
// than the store was opened with; the parse error carries that context.
func unmarshalCatalog(data []byte, format Format) (*catalog.Catalog, error) {
	c := catalog.New()
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, c)
	case FormatTOML:
		err = toml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog (format or encryption mismatch?): %w", err)
	}
	if c.Features == nil {
		c.Features = []catalog.Entry{}
	}
	return c, nil
}
