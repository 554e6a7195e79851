// Package catalog provides read-only access to the vocabulary content:
// words and learning phases. The engine consumes the catalog but never
// writes to it; in production it is loaded once from a JSON file at
// startup.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Catalog lookup errors.
var (
	// ErrWordNotFound is returned when a word id is not in the catalog.
	ErrWordNotFound = errors.New("word not found in catalog")

	// ErrPhaseNotFound is returned when a phase id is not in the catalog.
	ErrPhaseNotFound = errors.New("phase not found in catalog")
)

// WordCatalog is the read-only word lookup interface.
type WordCatalog interface {
	// Word returns the word with the given id.
	// Returns ErrWordNotFound if the id is unknown.
	Word(id string) (*domain.Word, error)

	// Words returns all catalog words in catalog order.
	Words() []*domain.Word
}

// PhaseCatalog is the read-only phase lookup interface.
type PhaseCatalog interface {
	// Phase returns the phase with the given id.
	// Returns ErrPhaseNotFound if the id is unknown.
	Phase(id int) (*domain.Phase, error)

	// Phases returns all phases ordered by ascending id.
	Phases() []*domain.Phase
}

// Catalog is an immutable in-memory catalog satisfying both interfaces.
type Catalog struct {
	words      []*domain.Word
	wordsByID  map[string]*domain.Word
	phases     []*domain.Phase
	phasesByID map[int]*domain.Phase
}

var (
	_ WordCatalog  = (*Catalog)(nil)
	_ PhaseCatalog = (*Catalog)(nil)
)

// New builds a catalog from word and phase lists. Words keep their
// given order; phases are sorted by ascending id. Returns an error on
// invalid or duplicate entries.
func New(words []*domain.Word, phases []*domain.Phase) (*Catalog, error) {
	c := &Catalog{
		wordsByID:  make(map[string]*domain.Word, len(words)),
		phasesByID: make(map[int]*domain.Phase, len(phases)),
	}

	for _, w := range words {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("invalid word %q: %w", w.ID, err)
		}
		if _, ok := c.wordsByID[w.ID]; ok {
			return nil, fmt.Errorf("duplicate word id %q", w.ID)
		}
		c.words = append(c.words, w)
		c.wordsByID[w.ID] = w
	}

	for _, p := range phases {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid phase %d: %w", p.ID, err)
		}
		if _, ok := c.phasesByID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate phase id %d", p.ID)
		}
		c.phases = append(c.phases, p)
		c.phasesByID[p.ID] = p
	}
	sort.Slice(c.phases, func(i, j int) bool { return c.phases[i].ID < c.phases[j].ID })

	return c, nil
}

// Word implements WordCatalog.Word.
func (c *Catalog) Word(id string) (*domain.Word, error) {
	w, ok := c.wordsByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, id)
	}
	return w, nil
}

// Words implements WordCatalog.Words.
func (c *Catalog) Words() []*domain.Word {
	return c.words
}

// Phase implements PhaseCatalog.Phase.
func (c *Catalog) Phase(id int) (*domain.Phase, error) {
	p, ok := c.phasesByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPhaseNotFound, id)
	}
	return p, nil
}

// Phases implements PhaseCatalog.Phases.
func (c *Catalog) Phases() []*domain.Phase {
	return c.phases
}
