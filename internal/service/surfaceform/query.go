package surfaceform

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a surface form by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.SurfaceForm, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	f, err := s.forms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get surface form: %w", err)
	}
	return f, nil
}

// ListByLemma returns the forms of a lemma ordered by form_native.
func (s *Service) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error) {
	if domain.IsBlank(lemmaID) {
		return nil, domain.NewValidationError("lemma_id", "required")
	}
	items, err := s.forms.ListByLemma(ctx, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("list surface forms: %w", err)
	}
	return items, nil
}

// ListPublishedByLemma returns the forms of a PUBLISHED lemma.
func (s *Service) ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.SurfaceForm, error) {
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
