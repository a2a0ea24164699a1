package lemma

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
)

// Delete removes a lemma that nothing references any more. While meanings,
// surface forms, links or pronunciations remain it fails with an InUseError.
// The audit event carries a snapshot of the removed lemma.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	if domain.IsBlank(id) {
		return domain.NewValidationError("id", "required")
	}

	var removed *domain.Lemma
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.lemmas.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get lemma: %w", err)
		}

		deps, err := s.lemmas.Dependents(txCtx, id)
		if err != nil {
			return fmt.Errorf("check lemma dependents: %w", err)
		}
		if len(deps) > 0 {
			return &domain.InUseError{Entity: domain.EntityTypeLemma, ID: id, Dependents: deps}
		}

		if err := s.lemmas.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete lemma: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemma,
			EntityID:   id,
			EventType:  domain.EntityTypeLemma.Event(domain.ActionDeleted),
			Actor:      actor,
			Details: map[string]any{
				"language":    removed.Language,
				"lemmaNative": removed.LemmaNative,
				"status":      removed.Status,
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lemma deleted",
		slog.String("lemma_id", id),
		slog.String("actor", actor),
	)
	return nil
}
