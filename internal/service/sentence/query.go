package sentence

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a sentence by id regardless of status.
func (s *Service) Get(ctx context.Context, id string) (*domain.UsageSentence, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	v, err := s.sentences.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	return v, nil
}

// List returns sentences of an enabled language, optionally narrowed to one status.
func (s *Service) List(ctx context.Context, filter domain.ContentFilter, page domain.PageRequest) (*domain.Page[*domain.UsageSentence], error) {
	filter.Language = strings.TrimSpace(filter.Language)
	if err := s.languages.RequireEnabled(ctx, filter.Language); err != nil {
		return nil, err
	}
	page = page.Normalize()

	items, total, err := s.sentences.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// GetPublished returns a sentence only if it is PUBLISHED. Missing and
// unpublished ids yield the same ErrNotFound.
func (s *Service) GetPublished(ctx context.Context, id string) (*domain.UsageSentence, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsPublished() {
		return nil, fmt.Errorf("get sentence: usage_sentence %s: %w", id, domain.ErrNotFound)
	}
	return v, nil
}

// ListPublishedByLanguage returns the PUBLISHED sentences of a language.
func (s *Service) ListPublishedByLanguage(ctx context.Context, language string, page domain.PageRequest) (*domain.Page[*domain.UsageSentence], error) {
	published := domain.StatusPublished
	return s.List(ctx, domain.ContentFilter{Language: language, Status: &published}, page)
}
