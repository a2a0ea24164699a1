package link

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Create links a lemma to a sentence. A pair may be linked only once and
// both ends must be in enabled languages.
func (s *Service) Create(ctx context.Context, actor string, input CreateInput) (*domain.LemmaSentenceLink, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	linkType, err := domain.ParseLinkType(input.LinkType)
	if err != nil {
		return nil, err
	}

	link := &domain.LemmaSentenceLink{
		LemmaID:       strings.TrimSpace(input.LemmaID),
		SentenceID:    strings.TrimSpace(input.SentenceID),
		SurfaceFormID: domain.TrimToNil(input.SurfaceFormID),
		LinkType:      linkType,
	}

	var created *domain.LemmaSentenceLink
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.links.ExistsByPair(txCtx, link.LemmaID, link.SentenceID)
		if err != nil {
			return fmt.Errorf("check link uniqueness: %w", err)
		}
		if exists {
			return domain.NewConflictError(domain.EntityTypeLemmaSentenceLink, "lemmaId", link.LemmaID, "sentenceId", link.SentenceID)
		}

		if err := s.requireEnabledEnds(txCtx, link.LemmaID, link.SentenceID); err != nil {
			return err
		}

		created, err = s.links.Create(txCtx, actor, link)
		if err != nil {
			return fmt.Errorf("create link: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemmaSentenceLink,
			EntityID:   created.ID,
			EventType:  domain.EntityTypeLemmaSentenceLink.Event(domain.ActionCreated),
			Actor:      actor,
			Details:    details(created),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "link created",
		slog.String("link_id", created.ID),
		slog.String("lemma_id", created.LemmaID),
		slog.String("sentence_id", created.SentenceID),
	)
	return created, nil
}

// Update changes the surface form reference and/or link type.
func (s *Service) Update(ctx context.Context, actor string, input UpdateInput) (*domain.LemmaSentenceLink, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var linkType *domain.LinkType
	if input.LinkType != nil {
		lt, err := domain.ParseLinkType(*input.LinkType)
		if err != nil {
			return nil, err
		}
		linkType = &lt
	}

	var updated *domain.LemmaSentenceLink
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.links.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get link: %w", err)
		}
		if err := domain.CheckVersion(input.ExpectedVersion, current.Auditable); err != nil {
			return err
		}
		if err := s.requireEnabledEnds(txCtx, current.LemmaID, current.SentenceID); err != nil {
			return err
		}
		before := snapshot{SurfaceFormID: current.SurfaceFormID, LinkType: current.LinkType}

		next := *current
		if input.SurfaceFormID != nil {
			next.SurfaceFormID = domain.TrimToNil(input.SurfaceFormID)
		}
		if linkType != nil {
			next.LinkType = *linkType
		}

		updated, err = s.links.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update link: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemmaSentenceLink,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeLemmaSentenceLink.Event(domain.ActionUpdated),
			Actor:      actor,
			Details: map[string]any{
				"lemmaId":    updated.LemmaID,
				"sentenceId": updated.SentenceID,
				"before":     before,
				"after":      snapshot{SurfaceFormID: updated.SurfaceFormID, LinkType: updated.LinkType},
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "link updated", slog.String("link_id", updated.ID))
	return updated, nil
}

// Delete removes a link.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.links.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get link: %w", err)
		}
		if err := s.links.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete link: %w", err)
		}
		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemmaSentenceLink,
			EntityID:   id,
			EventType:  domain.EntityTypeLemmaSentenceLink.Event(domain.ActionDeleted),
			Actor:      actor,
			Details:    details(removed),
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "link deleted",
		slog.String("link_id", id),
		slog.String("actor", actor),
	)
	return nil
}
