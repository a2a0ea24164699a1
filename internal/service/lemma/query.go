package lemma

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a lemma by id regardless of status.
func (s *Service) Get(ctx context.Context, id string) (*domain.Lemma, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	l, err := s.lemmas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lemma: %w", err)
	}
	return l, nil
}

// List returns lemmas of an enabled language, optionally narrowed to one status.
func (s *Service) List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) (*domain.Page[*domain.Lemma], error) {
	filter.Language = strings.TrimSpace(filter.Language)
	if filter.Language == "" {
		return nil, domain.NewValidationError("language", "required")
	}
	if err := s.languages.RequireEnabled(ctx, filter.Language); err != nil {
		return nil, err
	}
	page = page.Normalize()

	items, total, err := s.lemmas.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list lemmas: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// GetPublished returns a lemma only if it is PUBLISHED. Missing and
// unpublished ids yield the same ErrNotFound.
func (s *Service) GetPublished(ctx context.Context, id string) (*domain.Lemma, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.IsPublished() {
		return nil, fmt.Errorf("get lemma: lemma %s: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

// ListPublishedByLanguage returns the PUBLISHED lemmas of a language.
func (s *Service) ListPublishedByLanguage(ctx context.Context, language string, page domain.PageRequest) (*domain.Page[*domain.Lemma], error) {
	published := domain.StatusPublished
	return s.List(ctx, domain.ContentFilter{Language: language, Status: &published}, page)
}
