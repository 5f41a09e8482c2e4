package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"

	"github.com/aliskhannn/jagd-quiz-bot/internal/domain/entities"
)

var (
	ErrCatalogEmpty    = errors.New("catalog has no questions")
	ErrInvalidQuestion = errors.New("invalid question")
)

// CatalogRepository provides the question catalog produced by the
// authoring step. The catalog is read once and never modified.
type CatalogRepository struct {
	catalog *entities.Catalog
}

// NewCatalogRepository loads and validates the catalog JSON file at path.
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{catalog: catalog}, nil
}

// ParseCatalog decodes and validates catalog JSON.
func ParseCatalog(data []byte) (*entities.Catalog, error) {
	var catalog entities.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	if err := Validate(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// Validate reports every problem of the catalog at once.
func Validate(c *entities.Catalog) error {
	if len(c.Questions) == 0 {
		return ErrCatalogEmpty
	}

	var result *multierror.Error
	first := c.Questions[0].Nr
	for i, q := range c.Questions {
		if q.Nr != first+i {
			result = multierror.Append(result, fmt.Errorf("%w %d: expected ordinal %d", ErrInvalidQuestion, q.Nr, first+i))
		}
		if len(q.Text) == 0 {
			result = multierror.Append(result, fmt.Errorf("%w %d: empty text", ErrInvalidQuestion, q.Nr))
		}

		switch q.Type {
		case entities.QuestionSingle, entities.QuestionMultiple:
			if err := validateChoice(q); err != nil {
				result = multierror.Append(result, err)
			}
		case entities.QuestionVisualization:
			if len(q.Options) > 0 {
				result = multierror.Append(result, fmt.Errorf("%w %d: visualization with options", ErrInvalidQuestion, q.Nr))
			}
		default:
			result = multierror.Append(result, fmt.Errorf("%w %d: unknown type %q", ErrInvalidQuestion, q.Nr, q.Type))
		}
	}

	return result.ErrorOrNil()
}

func validateChoice(q entities.CatalogQuestion) error {
	if len(q.Options) == 0 || len(q.Options) > entities.MaxOptions {
		return fmt.Errorf("%w %d: %d options, expected 1..%d", ErrInvalidQuestion, q.Nr, len(q.Options), entities.MaxOptions)
	}

	correct := 0
	for _, o := range q.Options {
		if o.Correct {
			correct++
		}
	}

	switch {
	case correct == 0:
		return fmt.Errorf("%w %d: no correct option", ErrInvalidQuestion, q.Nr)
	case q.Type == entities.QuestionSingle && correct != 1:
		return fmt.Errorf("%w %d: single choice with %d correct options", ErrInvalidQuestion, q.Nr, correct)
	}
	return nil
}

// Title returns the catalog title.
func (r *CatalogRepository) Title() string {
	return r.catalog.Title
}

// Languages returns the languages the catalog content is rendered in.
func (r *CatalogRepository) Languages() []string {
	return r.catalog.Languages
}

// Panels returns a fresh panel sequence for a new session.
func (r *CatalogRepository) Panels() []*entities.Panel {
	return r.catalog.Panels()
}
