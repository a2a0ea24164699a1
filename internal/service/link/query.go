package link

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a link by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.LemmaSentenceLink, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	l, err := s.links.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}
	return l, nil
}

// ListByLemma returns the links of a lemma, newest first.
func (s *Service) ListByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error) {
	if domain.IsBlank(lemmaID) {
		return nil, domain.NewValidationError("lemma_id", "required")
	}
	items, err := s.links.ListByLemma(ctx, lemmaID)
	if err != nil {
		return nil, fmt.Errorf("list links by lemma: %w", err)
	}
	return items, nil
}

// ListBySentence returns the links of a sentence, newest first.
func (s *Service) ListBySentence(ctx context.Context, sentenceID string) ([]*domain.LemmaSentenceLink, error) {
	if domain.IsBlank(sentenceID) {
		return nil, domain.NewValidationError("sentence_id", "required")
	}
	items, err := s.links.ListBySentence(ctx, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("list links by sentence: %w", err)
	}
	return items, nil
}

// ListPublishedByLemma returns the links of a PUBLISHED lemma whose sentence
// is also PUBLISHED. Links to sentences that have since disappeared are skipped.
func (s *Service) ListPublishedByLemma(ctx context.Context, lemmaID string) ([]*domain.LemmaSentenceLink, error) {
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

	all, err := s.ListByLemma(ctx, lemmaID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.LemmaSentenceLink, 0, len(all))
	for _, link := range all {
		sentence, err := s.sentences.GetByID(ctx, link.SentenceID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get sentence: %w", err)
		}
		if sentence.IsPublished() {
			out = append(out, link)
		}
	}
	return out, nil
}
