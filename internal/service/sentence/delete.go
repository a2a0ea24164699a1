package sentence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Delete removes a sentence that no link or pronunciation references.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.sentences.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sentence: %w", err)
		}

		deps, err := s.sentences.Dependents(txCtx, id)
		if err != nil {
			return fmt.Errorf("check sentence dependents: %w", err)
		}
		if len(deps) > 0 {
			return &domain.InUseError{Entity: domain.EntityTypeUsageSentence, ID: id, Dependents: deps}
		}

		if err := s.sentences.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete sentence: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeUsageSentence,
			EntityID:   id,
			EventType:  domain.EntityTypeUsageSentence.Event(domain.ActionDeleted),
			Actor:      actor,
			Details:    summary(removed),
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "sentence deleted",
		slog.String("sentence_id", id),
		slog.String("actor", actor),
	)
	return nil
}
