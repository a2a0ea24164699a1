package pronunciation

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Get returns a pronunciation by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Pronunciation, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	p, err := s.pronunciations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get pronunciation: %w", err)
	}
	return p, nil
}

// ListByOwner returns the recordings of an owner in any status, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerType, ownerID string) ([]*domain.Pronunciation, error) {
	ot, err := domain.ParseOwnerType(ownerType)
	if err != nil {
		return nil, err
	}
	if domain.IsBlank(ownerID) {
		return nil, domain.NewValidationError("owner_id", "required")
	}
	items, err := s.pronunciations.ListByOwner(ctx, ot, strings.TrimSpace(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list pronunciations: %w", err)
	}
	return items, nil
}

// ListPublicByOwner returns the recordings of a PUBLISHED owner. Missing and
// unpublished owners yield the same ErrNotFound.
func (s *Service) ListPublicByOwner(ctx context.Context, ownerType, ownerID string) ([]*domain.Pronunciation, error) {
	ot, err := domain.ParseOwnerType(ownerType)
	if err != nil {
		return nil, err
	}
	if domain.IsBlank(ownerID) {
		return nil, domain.NewValidationError("owner_id", "required")
	}
	ownerID = strings.TrimSpace(ownerID)

	o, err := s.lookupOwner(ctx, ot, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get %s owner: %w", strings.ToLower(ot.String()), err)
	}
	if !o.published {
		return nil, fmt.Errorf("get %s owner %s: %w", strings.ToLower(ot.String()), ownerID, domain.ErrNotFound)
	}

	items, err := s.pronunciations.ListByOwner(ctx, ot, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pronunciations: %w", err)
	}
	return items, nil
}
