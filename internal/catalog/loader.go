package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// catalogFile is the on-disk JSON shape of the content catalog.
type catalogFile struct {
	Words  []*domain.Word  `json:"words"`
	Phases []*domain.Phase `json:"phases"`
}

// LoadFromFile reads a catalog JSON file and builds an immutable
// in-memory catalog from it.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	c, err := New(file.Words, file.Phases)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return c, nil
}
