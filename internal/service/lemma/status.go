package lemma

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bhashamitra-backend/internal/domain"
	"github.com/heartmarshall/bhashamitra-backend/internal/service/workflow"
)

// SetStatus moves a lemma through the editorial workflow.
func (s *Service) SetStatus(ctx context.Context, actor, id string, status domain.EditorialStatus) (*domain.Lemma, error) {
	if domain.IsBlank(id) {
		return nil, domain.NewValidationError("id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	var (
		updated *domain.Lemma
		from    domain.EditorialStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.lemmas.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get lemma: %w", err)
		}
		from = current.Status

		if err := workflow.CheckTransition(from, status); err != nil {
			return err
		}

		next := *current
		next.Status = status
		updated, err = s.lemmas.Update(txCtx, actor, &next)
		if err != nil {
			return fmt.Errorf("update lemma status: %w", err)
		}

		return s.audit.Record(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeLemma,
			EntityID:   updated.ID,
			EventType:  domain.EntityTypeLemma.Event(domain.ActionStatusChanged),
			Actor:      actor,
			Details:    workflow.StatusChange{From: from, To: updated.Status},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lemma status changed",
		slog.String("lemma_id", id),
		slog.String("from", from.String()),
		slog.String("to", status.String()),
		slog.String("actor", actor),
	)
	return updated, nil
}

// Archive retires a lemma from public view.
func (s *Service) Archive(ctx context.Context, actor, id string) (*domain.Lemma, error) {
	return s.SetStatus(ctx, actor, id, domain.StatusArchived)
}

// Unarchive returns a lemma to target, REVIEW when target is nil.
func (s *Service) Unarchive(ctx context.Context, actor, id string, target *domain.EditorialStatus) (*domain.Lemma, error) {
	status, err := workflow.UnarchiveTarget(target)
	if err != nil {
		return nil, err
	}
	return s.SetStatus(ctx, actor, id, status)
}
