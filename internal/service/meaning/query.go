package meaning

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a meaning by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Meaning, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	m, err := s.meanings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meaning: %w", err)
	}
	return m, nil
}

// ListByLemma returns the meanings of a lemma ordered by priority.
func (s *Service) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error) {
	if domain.IsBlank(lemmaID) {
		return nil, domain.NewValidationError("lemma_id", "required")
	}
	items, err := s.meanings.ListByLemma(ctx, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("list meanings: %w", err)
	}
	return items, nil
}

// ListPublishedByLemma returns the meanings of a PUBLISHED lemma. An
// unpublished lemma is reported as not found.
func (s *Service) ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.Meaning, error) {
	if domain.IsBlank(lemmaID) {
		return nil, domain.NewValidationError("lemma_id", "required")
	}
	l, err := s.lemmas.GetByID(ctx, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("get lemma: %w", err)
	}
	if !l.IsPublished() {
		return nil, fmt.Errorf("get lemma: lemma %s: %w", lemmaID, domain.ErrNotFound)
	}
	return s.ListByLemma(ctx, lemmaID)
}
